package navigator

import (
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/BrandonKowalski/wayfinder/pkg/wayfinder/route"
)

// FatalHandler receives configuration errors the navigator cannot recover
// from. The default logs the error and panics.
type FatalHandler func(err error)

// Option configures a Navigator.
type Option func(*Navigator)

// WithTimeout sets the ceiling on a single route change.
func WithTimeout(timeout time.Duration) Option {
	return func(n *Navigator) {
		if timeout > 0 {
			n.timeout = timeout
		}
	}
}

// WithLogger replaces the internal wayfinder logger.
func WithLogger(logger *slog.Logger) Option {
	return func(n *Navigator) {
		if logger != nil {
			n.logger = logger
		}
	}
}

// WithFatalHandler replaces the panic on unhandled transitions and lifecycle
// misuse. If the handler returns, the offending change is treated as done.
func WithFatalHandler(h FatalHandler) Option {
	return func(n *Navigator) {
		n.fatal = h
	}
}

// WithMetrics records batch and change metrics.
func WithMetrics(m *Metrics) Option {
	return func(n *Navigator) {
		n.metrics = m
	}
}

// WithTracer emits a span per batch and per change.
func WithTracer(t trace.Tracer) Option {
	return func(n *Navigator) {
		if t != nil {
			n.tracer = t
		}
	}
}

// OnApplied registers a callback invoked on the worker after every batch with
// the live route it left behind.
func OnApplied(fn func(route.Route)) Option {
	return func(n *Navigator) {
		n.onApplied = fn
	}
}
