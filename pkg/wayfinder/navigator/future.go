package navigator

import (
	"context"

	"github.com/BrandonKowalski/wayfinder/pkg/wayfinder/reconcile"
	"github.com/BrandonKowalski/wayfinder/pkg/wayfinder/route"
)

// Result describes a batch after it has run.
type Result struct {
	Batch    string                  // Batch ID, also used in logs and spans
	Target   route.Route             // Route the batch reconciled toward
	Applied  route.Route             // Live route once the batch finished
	Changes  []reconcile.RouteChange // Changes performed, in order
	TimedOut int                     // Changes that hit the timeout
}

// Future resolves when a batch has been fully applied.
type Future struct {
	done   chan struct{}
	result Result
	err    error
}

func newFuture() *Future {
	return &Future{done: make(chan struct{})}
}

func resolvedFuture(err error) *Future {
	f := newFuture()
	f.resolve(Result{}, err)
	return f
}

func (f *Future) resolve(r Result, err error) {
	f.result = r
	f.err = err
	close(f.done)
}

// Done is closed once the batch has finished.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Wait blocks until the batch finishes or ctx ends.
// A non-nil error other than ctx.Err() means the batch was a no-op.
func (f *Future) Wait(ctx context.Context) (Result, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-ctx.Done():
		return Result{}, ctx.Err()
	}
}
