package navigator

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/BrandonKowalski/wayfinder/pkg/wayfinder/reconcile"
)

// Metrics provides Prometheus metrics for a Navigator.
// A nil *Metrics records nothing.
type Metrics struct {
	batches  *prometheus.CounterVec
	changes  *prometheus.CounterVec
	duration *prometheus.HistogramVec
	pending  prometheus.Gauge
}

// NewMetrics creates the navigator collectors under the given namespace.
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		batches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "navigator",
				Name:      "batches_total",
				Help:      "Total number of navigation batches processed",
			},
			[]string{"op"},
		),
		changes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "navigator",
				Name:      "changes_total",
				Help:      "Total number of route changes performed",
			},
			[]string{"kind", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "navigator",
				Name:      "change_duration_seconds",
				Help:      "Time from dispatching a route change to its completion",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"kind"},
		),
		pending: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "navigator",
				Name:      "pending_batches",
				Help:      "Batches queued behind the one in flight",
			},
		),
	}
}

// Collectors returns every collector, for registration.
func (m *Metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{m.batches, m.changes, m.duration, m.pending}
}

// Register adds the collectors to reg.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range m.Collectors() {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

func (m *Metrics) batch(op op) {
	if m == nil {
		return
	}
	m.batches.WithLabelValues(op.String()).Inc()
}

func (m *Metrics) change(kind reconcile.Kind, o outcome, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.changes.WithLabelValues(kind.String(), o.String()).Inc()
	m.duration.WithLabelValues(kind.String()).Observe(elapsed.Seconds())
}

func (m *Metrics) setPending(depth int) {
	if m == nil {
		return
	}
	m.pending.Set(float64(depth))
}
