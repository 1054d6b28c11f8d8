package navigator

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/atomic"

	"github.com/BrandonKowalski/wayfinder/pkg/wayfinder/constants"
	"github.com/BrandonKowalski/wayfinder/pkg/wayfinder/internal"
	"github.com/BrandonKowalski/wayfinder/pkg/wayfinder/route"
	"github.com/BrandonKowalski/wayfinder/pkg/wayfinder/routable"
)

const tracerName = "github.com/BrandonKowalski/wayfinder/pkg/wayfinder/navigator"

// UIThread runs functions on the thread that owns the screen tree.
// Do may return before fn has run, but functions must run in call order.
type UIThread interface {
	Do(fn func())
}

// Surface exposes the root of the live screen tree.
type Surface interface {
	// Root returns the installed root screen, or nil before the first install.
	Root() routable.Routable
}

// RootInstaller is the fallback for shows no live screen accepts and the
// only receiver of root changes. It must call done exactly once when it
// returns true.
type RootInstaller interface {
	InstallRoot(id route.Identifier, context any, done routable.Completion) bool
}

// RootInstallerFunc adapts a function to RootInstaller.
type RootInstallerFunc func(id route.Identifier, context any, done routable.Completion) bool

func (f RootInstallerFunc) InstallRoot(id route.Identifier, context any, done routable.Completion) bool {
	return f(id, context, done)
}

// Stats is a point-in-time view of the navigator counters.
type Stats struct {
	Batches   int64
	Changes   int64
	TimedOut  int64
	Unhandled int64
	Pending   int
}

// Navigator reconciles the live screen tree against requested routes.
type Navigator struct {
	// Configuration
	ui        UIThread
	logger    *slog.Logger
	timeout   time.Duration
	fatal     FatalHandler
	metrics   *Metrics
	tracer    trace.Tracer
	onApplied func(route.Route)

	// Set once by Start
	installer RootInstaller
	surface   Surface
	started   atomic.Bool

	// Queue
	mu      sync.Mutex
	queue   []*batch
	closing bool
	wake    chan struct{}
	stopped chan struct{}

	currentMu sync.RWMutex
	current   route.Route

	// Stats
	batches   atomic.Int64
	changes   atomic.Int64
	timeouts  atomic.Int64
	unhandled atomic.Int64
}

// New creates a navigator that performs mutations through ui.
// Nothing runs until Start.
func New(ui UIThread, opts ...Option) *Navigator {
	n := &Navigator{
		ui:      ui,
		logger:  internal.GetInternalLogger(),
		timeout: constants.DefaultTransitionTimeout,
		tracer:  otel.Tracer(tracerName),
		wake:    make(chan struct{}, 1),
		stopped: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(n)
	}
	if n.fatal == nil {
		n.fatal = n.panicOnFatal
	}
	return n
}

func (n *Navigator) panicOnFatal(err error) {
	n.logger.Error("Navigation configuration error", "error", err)
	panic(err)
}

// Start installs the initial screen through installer and starts the worker.
// It must be called exactly once, before any other navigation call.
func (n *Navigator) Start(installer RootInstaller, surface Surface, initial route.Identifier) *Future {
	if !n.started.CompareAndSwap(false, true) {
		n.fatal(ErrAlreadyStarted)
		return resolvedFuture(ErrAlreadyStarted)
	}

	n.installer = installer
	n.surface = surface

	n.logger.Debug("Starting navigator", "initial", initial, "timeout", n.timeout)
	go n.run()

	return n.enqueue(&batch{op: opNavigate, target: route.New(initial)})
}

// ChangeRoute reconciles the live tree toward to.
func (n *Navigator) ChangeRoute(to route.Route, animated bool, payload any) *Future {
	return n.submit(&batch{op: opNavigate, target: to.Clone(), animated: animated, payload: payload})
}

// Show appends ids above the live leaf.
func (n *Navigator) Show(ids []route.Identifier, animated bool, payload any) *Future {
	return n.submit(&batch{op: opShow, show: route.New(ids...), animated: animated, payload: payload})
}

// Hide truncates the live route back to, and excluding, the last occurrence
// of id. An empty id hides the live leaf. With atomicHide set, the removal is
// issued as a single hide of the lowest removed screen.
func (n *Navigator) Hide(id route.Identifier, animated bool, payload any, atomicHide bool) *Future {
	return n.submit(&batch{op: opHide, hide: id, animated: animated, payload: payload, atomic: atomicHide})
}

func (n *Navigator) submit(b *batch) *Future {
	if !n.started.Load() {
		n.fatal(ErrNotStarted)
		return resolvedFuture(ErrNotStarted)
	}
	return n.enqueue(b)
}

// Current returns the live route recorded after the most recent batch.
func (n *Navigator) Current() route.Route {
	n.currentMu.RLock()
	defer n.currentMu.RUnlock()
	return n.current.Clone()
}

func (n *Navigator) setCurrent(r route.Route) {
	n.currentMu.Lock()
	n.current = r
	n.currentMu.Unlock()
}

// Stats returns the navigator counters.
func (n *Navigator) Stats() Stats {
	n.mu.Lock()
	pending := len(n.queue)
	n.mu.Unlock()

	return Stats{
		Batches:   n.batches.Load(),
		Changes:   n.changes.Load(),
		TimedOut:  n.timeouts.Load(),
		Unhandled: n.unhandled.Load(),
		Pending:   pending,
	}
}

// Stop refuses new requests, lets every queued batch finish, and waits for
// the worker to exit or ctx to end.
func (n *Navigator) Stop(ctx context.Context) error {
	if !n.started.Load() {
		return ErrNotStarted
	}

	n.mu.Lock()
	n.closing = true
	n.mu.Unlock()
	n.signal()

	select {
	case <-n.stopped:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
