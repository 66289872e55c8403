package markov

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	pathPrimary  = "primary"
	pathFallback = "fallback"
)

// Metrics counts generated values per path and records how many primary
// attempts each call needed.
type Metrics struct {
	generated *prometheus.CounterVec
	attempts  prometheus.Histogram
}

// NewMetrics creates and registers the generator collectors:
//
//	passgen_markov_generated_total{path="primary|fallback"}
//	passgen_markov_attempts
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		return nil, ErrNilRegisterer
	}

	m := &Metrics{
		generated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "passgen",
				Subsystem: "markov",
				Name:      "generated_total",
				Help:      "Generated values by code path.",
			},
			[]string{"path"},
		),
		attempts: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "passgen",
			Subsystem: "markov",
			Name:      "attempts",
			Help:      "Primary attempts consumed per generated value.",
			Buckets:   []float64{1, 2, 5, 10, 25, 50, maxAttempts},
		}),
	}

	for _, c := range []prometheus.Collector{m.generated, m.attempts} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("markov: register metrics: %w", err)
		}
	}

	// Expose both series from the start.
	m.generated.WithLabelValues(pathPrimary)
	m.generated.WithLabelValues(pathFallback)

	return m, nil
}

func (m *Metrics) observe(path string, attempts int) {
	if m == nil {
		return
	}
	m.generated.WithLabelValues(path).Inc()
	m.attempts.Observe(float64(attempts))
}
