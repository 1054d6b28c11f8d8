package headless

import (
	"sync"
	"time"
)

// Loop runs functions one at a time on a dedicated goroutine.
type Loop struct {
	mu     sync.Mutex
	tasks  []func()
	closed bool
	wake   chan struct{}
	done   chan struct{}
}

// NewLoop starts a loop.
func NewLoop() *Loop {
	l := &Loop{
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
	go l.run()
	return l
}

// Do queues fn and returns immediately. Functions run in the order they
// were queued. Calls after Close are dropped.
func (l *Loop) Do(fn func()) {
	l.post(fn)
}

func (l *Loop) post(fn func()) bool {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return false
	}
	l.tasks = append(l.tasks, fn)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
	return true
}

// Sync runs fn on the loop and waits for it. Never call it from the loop.
func (l *Loop) Sync(fn func()) {
	finished := make(chan struct{})
	if !l.post(func() {
		defer close(finished)
		fn()
	}) {
		return
	}
	<-finished
}

// After queues fn once d has elapsed.
func (l *Loop) After(d time.Duration, fn func()) {
	time.AfterFunc(d, func() { l.Do(fn) })
}

// Close runs whatever is already queued, then stops the loop.
func (l *Loop) Close() {
	l.mu.Lock()
	l.closed = true
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
	<-l.done
}

func (l *Loop) run() {
	defer close(l.done)

	for {
		l.mu.Lock()
		tasks := l.tasks
		l.tasks = nil
		closed := l.closed
		l.mu.Unlock()

		for _, fn := range tasks {
			fn()
		}

		if len(tasks) == 0 {
			if closed {
				return
			}
			<-l.wake
		}
	}
}
