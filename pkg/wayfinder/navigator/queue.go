package navigator

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/BrandonKowalski/wayfinder/pkg/wayfinder/route"
)

type op int

const (
	opNavigate op = iota
	opShow
	opHide
)

func (o op) String() string {
	switch o {
	case opNavigate:
		return "navigate"
	case opShow:
		return "show"
	case opHide:
		return "hide"
	default:
		return fmt.Sprintf("op(%d)", int(o))
	}
}

// batch is one caller request waiting for the worker. The target route is
// resolved against the live tree only when the batch is dequeued.
type batch struct {
	id       string
	op       op
	target   route.Route      // opNavigate
	show     route.Route      // opShow
	hide     route.Identifier // opHide
	animated bool
	payload  any
	atomic   bool
	enqueued time.Time
	future   *Future
}

// resolve computes the route this batch reconciles toward, given the live route.
func (b *batch) resolve(live route.Route) (route.Route, error) {
	switch b.op {
	case opShow:
		return live.Append(b.show...), nil

	case opHide:
		id := b.hide
		if id == "" {
			leaf, ok := live.Leaf()
			if !ok {
				return nil, ErrEmptyRoute
			}
			id = leaf
		}
		target, ok := live.TruncateBefore(id)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrNotInRoute, id)
		}
		if len(target) == 0 {
			return nil, ErrHideRoot
		}
		return target, nil

	default:
		if len(b.target) == 0 {
			return nil, ErrEmptyRoute
		}
		return b.target, nil
	}
}

func (n *Navigator) enqueue(b *batch) *Future {
	b.id = uuid.NewString()
	b.enqueued = time.Now()
	b.future = newFuture()

	n.mu.Lock()
	if n.closing {
		n.mu.Unlock()
		b.future.resolve(Result{Batch: b.id}, ErrStopped)
		return b.future
	}
	n.queue = append(n.queue, b)
	depth := len(n.queue)
	n.mu.Unlock()

	n.metrics.setPending(depth)
	n.logger.Debug("Queued navigation batch", "batch", b.id, "op", b.op.String(), "pending", depth)
	n.signal()

	return b.future
}

func (n *Navigator) signal() {
	select {
	case n.wake <- struct{}{}:
	default:
	}
}

// next blocks until a batch is queued. It returns false once Stop has been
// called and the queue is empty.
func (n *Navigator) next() (*batch, bool) {
	for {
		n.mu.Lock()
		if len(n.queue) > 0 {
			b := n.queue[0]
			n.queue[0] = nil
			n.queue = n.queue[1:]
			depth := len(n.queue)
			n.mu.Unlock()

			n.metrics.setPending(depth)
			return b, true
		}
		closing := n.closing
		n.mu.Unlock()

		if closing {
			return nil, false
		}
		<-n.wake
	}
}

func (n *Navigator) run() {
	defer close(n.stopped)

	for {
		b, ok := n.next()
		if !ok {
			n.logger.Debug("Navigator worker stopped")
			return
		}
		n.apply(b)
	}
}
