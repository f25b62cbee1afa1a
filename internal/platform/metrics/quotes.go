// Package metrics provides Prometheus collectors for business operations.
// HTTP-level metrics live in the telemetry package; these cover quote generation only.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels for quote generation.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// QuoteMetrics records quote generation outcomes and upstream latency.
type QuoteMetrics struct {
	generations *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

// NewQuoteMetrics creates quote collectors and registers them with reg.
// Pass prometheus.DefaultRegisterer in production and a fresh registry in tests.
func NewQuoteMetrics(reg prometheus.Registerer) (*QuoteMetrics, error) {
	m := &QuoteMetrics{
		generations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "quote_generations_total",
			Help: "Total number of quote generation attempts by outcome.",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "quote_generation_duration_seconds",
			Help:    "Time spent generating a quote, including the upstream call.",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
		}, []string{"outcome"}),
	}

	for _, c := range []prometheus.Collector{m.generations, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Observe records one generation attempt. A nil receiver is a no-op.
func (m *QuoteMetrics) Observe(err error, elapsed time.Duration) {
	if m == nil {
		return
	}

	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	}

	m.generations.WithLabelValues(outcome).Inc()
	m.duration.WithLabelValues(outcome).Observe(elapsed.Seconds())
}
