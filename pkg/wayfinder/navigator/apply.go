package navigator

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/BrandonKowalski/wayfinder/pkg/wayfinder/reconcile"
	"github.com/BrandonKowalski/wayfinder/pkg/wayfinder/route"
	"github.com/BrandonKowalski/wayfinder/pkg/wayfinder/routable"
)

// outcome is how a single route change ended.
type outcome int

const (
	outcomeCompleted outcome = iota
	outcomeTimeout
	outcomeUnhandled
	outcomeSkipped
)

func (o outcome) String() string {
	switch o {
	case outcomeCompleted:
		return "completed"
	case outcomeTimeout:
		return "timeout"
	case outcomeUnhandled:
		return "unhandled"
	default:
		return "skipped"
	}
}

// apply runs one batch to completion on the worker. Everything the batch
// records (span, metrics, Current, OnApplied) is settled before its Future
// resolves.
func (n *Navigator) apply(b *batch) {
	ctx, span := n.tracer.Start(context.Background(), "navigator."+b.op.String(),
		trace.WithAttributes(attribute.String("wayfinder.batch", b.id)))

	n.batches.Inc()
	n.metrics.batch(b.op)

	result, err := n.reconcileBatch(ctx, span, b)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()

	n.setCurrent(result.Applied)
	if err == nil && n.onApplied != nil {
		n.onApplied(result.Applied.Clone())
	}

	b.future.resolve(result, err)
}

func (n *Navigator) reconcileBatch(ctx context.Context, span trace.Span, b *batch) (Result, error) {
	result := Result{Batch: b.id}

	chain := n.snapshot()
	live := routable.Identifiers(chain)

	target, err := b.resolve(live)
	if err != nil {
		n.logger.Warn("Skipping navigation batch", "batch", b.id, "op", b.op.String(), "live", live.String(), "error", err)
		result.Applied = live
		return result, err
	}
	result.Target = target
	span.SetAttributes(
		attribute.String("wayfinder.live", live.String()),
		attribute.String("wayfinder.target", target.String()),
	)

	changes := reconcile.Diff(chain, target, b.atomic)
	n.logger.Debug("Applying navigation batch",
		"batch", b.id,
		"op", b.op.String(),
		"live", live.String(),
		"target", target.String(),
		"changes", len(changes),
		"queued_for", time.Since(b.enqueued))

	structural := false
	for _, c := range changes {
		n.perform(ctx, b, c, &result)
		if k := c.Kind(); k == reconcile.KindChange || k == reconcile.KindRootChange {
			structural = true
		}
	}
	if structural {
		n.followUp(ctx, b, target, &result)
	}

	result.Applied = routable.Identifiers(n.snapshot())
	if !result.Applied.HasPrefix(target) {
		n.logger.Warn("Live route differs from target after batch",
			"batch", b.id, "target", target.String(), "applied", result.Applied.String())
	}
	return result, nil
}

// followUp builds whatever a change or root change left out. A handler that
// swaps a subtree only knows the first diverging identifier, so the rest of
// the target is shown here. A live chain that runs past the target is left
// alone: containers such as tab bars always show a default child.
func (n *Navigator) followUp(ctx context.Context, b *batch, target route.Route, result *Result) {
	for _, c := range reconcile.Diff(n.snapshot(), target, false) {
		switch c.(type) {
		case reconcile.Show:
			n.perform(ctx, b, c, result)
		case reconcile.Hide:
			n.logger.Debug("Keeping default child beyond target", "batch", b.id, "change", c.String())
			return
		default:
			n.logger.Warn("Subtree diverged after change", "batch", b.id, "change", c.String())
			return
		}
	}
}

// snapshot reads the live chain on the UI thread.
func (n *Navigator) snapshot() []routable.Routable {
	ch := make(chan []routable.Routable, 1)
	n.ui.Do(func() {
		ch <- routable.Chain(n.surface.Root())
	})
	return <-ch
}

// perform dispatches one change to the UI thread and waits for its
// completion or the timeout, whichever comes first.
func (n *Navigator) perform(ctx context.Context, b *batch, c reconcile.RouteChange, result *Result) {
	_, span := n.tracer.Start(ctx, "navigator.change", trace.WithAttributes(
		attribute.String("wayfinder.change", c.String()),
		attribute.String("wayfinder.kind", c.Kind().String()),
	))
	defer span.End()

	start := time.Now()

	// One slot per change: a completion arriving after the timeout lands here
	// and is dropped with the channel.
	signal := make(chan outcome, 1)
	var once sync.Once
	finish := func(o outcome) {
		once.Do(func() { signal <- o })
	}

	n.ui.Do(func() {
		n.dispatch(b, c, finish)
	})

	timer := time.NewTimer(n.timeout)
	defer timer.Stop()

	var o outcome
	select {
	case o = <-signal:
	case <-timer.C:
		o = outcomeTimeout
		n.timeouts.Inc()
		result.TimedOut++
		n.logger.Warn("Route change did not complete in time; continuing",
			"batch", b.id, "change", c.String(), "timeout", n.timeout)
	}

	if o != outcomeCompleted && o != outcomeSkipped {
		span.SetStatus(codes.Error, o.String())
	}

	n.changes.Inc()
	result.Changes = append(result.Changes, c)
	n.metrics.change(c.Kind(), o, time.Since(start))
	n.logger.Debug("Route change finished",
		"batch", b.id, "change", c.String(), "outcome", o.String(), "elapsed", time.Since(start))
}

// dispatch resolves the handler for c and starts the transition.
// Runs on the UI thread.
func (n *Navigator) dispatch(b *batch, c reconcile.RouteChange, finish func(outcome)) {
	done := func() { finish(outcomeCompleted) }

	switch c := c.(type) {
	case reconcile.Show:
		chain := routable.Chain(n.surface.Root())
		if offerShow(chain, c.Identifier, b, done) {
			return
		}
		if n.installer.InstallRoot(c.Identifier, b.payload, done) {
			return
		}
		n.reportUnhandled(&UnhandledTransitionError{Op: "show", Identifier: c.Identifier, Route: routable.Identifiers(chain)}, finish)

	case reconcile.Hide:
		chain := routable.Chain(n.surface.Root())
		idx := routable.IndexOf(chain, c.Handler)
		if idx < 0 {
			n.logger.Debug("Hide target already removed", "batch", b.id, "identifier", c.Handler.RouteIdentifier())
			finish(outcomeSkipped)
			return
		}
		req := routable.Request{
			Identifier: c.Handler.RouteIdentifier(),
			From:       c.Handler,
			Animated:   b.animated,
			Context:    b.payload,
		}
		for i := idx; i >= 0; i-- {
			if chain[i].Hide(req, done) {
				return
			}
		}
		n.reportUnhandled(&UnhandledTransitionError{Op: "hide", Identifier: req.Identifier, Route: routable.Identifiers(chain)}, finish)

	case reconcile.Change:
		req := routable.ChangeRequest{
			From:     c.From,
			To:       c.To,
			Animated: b.animated,
			Context:  b.payload,
		}
		if c.Handler.Change(req, done) {
			return
		}
		n.reportUnhandled(&UnhandledTransitionError{Op: "change", Identifier: c.To, Route: routable.Identifiers(routable.Chain(n.surface.Root()))}, finish)

	case reconcile.RootChange:
		if n.installer.InstallRoot(c.To, b.payload, done) {
			return
		}
		n.reportUnhandled(&UnhandledTransitionError{Op: "root_change", Identifier: c.To, Route: routable.Identifiers(routable.Chain(n.surface.Root()))}, finish)
	}
}

// offerShow asks the chain, leaf first, to show id on top of the leaf.
func offerShow(chain []routable.Routable, id route.Identifier, b *batch, done routable.Completion) bool {
	if len(chain) == 0 {
		return false
	}
	req := routable.Request{
		Identifier: id,
		From:       chain[len(chain)-1],
		Animated:   b.animated,
		Context:    b.payload,
	}
	for i := len(chain) - 1; i >= 0; i-- {
		if chain[i].Show(req, done) {
			return true
		}
	}
	return false
}

func (n *Navigator) reportUnhandled(err *UnhandledTransitionError, finish func(outcome)) {
	n.unhandled.Inc()
	n.fatal(err)
	finish(outcomeUnhandled)
}
