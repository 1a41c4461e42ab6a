package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// EngineMetrics records intent throughput and checkout volume.
type EngineMetrics struct {
	duration    *prometheus.HistogramVec
	intents     *prometheus.CounterVec
	failures    *prometheus.CounterVec
	orderTotals prometheus.Histogram
}

// NewEngineMetrics registers the engine metrics on the provided registerer.
func NewEngineMetrics(reg prometheus.Registerer) *EngineMetrics {
	if reg == nil {
		return &EngineMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "intent_duration_seconds",
		Help:    "Duration of engine intents in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"intent"})
	intents := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "intent_total",
		Help: "Engine intents processed.",
	}, []string{"intent"})
	failures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "intent_failure_total",
		Help: "Engine intents that returned an error.",
	}, []string{"intent"})
	orderTotals := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "order_grand_total",
		Help:    "Grand totals of placed orders.",
		Buckets: prometheus.ExponentialBuckets(1, 4, 8),
	})
	reg.MustRegister(duration, intents, failures, orderTotals)
	return &EngineMetrics{
		duration:    duration,
		intents:     intents,
		failures:    failures,
		orderTotals: orderTotals,
	}
}

// ObserveDuration records the duration for the named intent.
func (e *EngineMetrics) ObserveDuration(intent string, duration time.Duration) {
	if e == nil || e.duration == nil {
		return
	}
	e.duration.WithLabelValues(normalizeLabel(intent)).Observe(duration.Seconds())
}

// IncIntent increments the processed counter for the named intent.
func (e *EngineMetrics) IncIntent(intent string) {
	if e == nil || e.intents == nil {
		return
	}
	e.intents.WithLabelValues(normalizeLabel(intent)).Inc()
}

// IncFailure increments the failure counter for the named intent.
func (e *EngineMetrics) IncFailure(intent string) {
	if e == nil || e.failures == nil {
		return
	}
	e.failures.WithLabelValues(normalizeLabel(intent)).Inc()
}

// ObserveOrderTotal records the grand total of a placed order.
func (e *EngineMetrics) ObserveOrderTotal(total float64) {
	if e == nil || e.orderTotals == nil {
		return
	}
	e.orderTotals.Observe(total)
}

func normalizeLabel(intent string) string {
	if intent == "" {
		return "unknown"
	}
	return intent
}
