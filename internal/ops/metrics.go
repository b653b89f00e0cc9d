package ops

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts pipeline outcomes.
type Metrics struct {
	Runs            *prometheus.CounterVec
	GateRejections  *prometheus.CounterVec
	ServiceFailures *prometheus.CounterVec
	SlugRetries     *prometheus.CounterVec
	Duration        *prometheus.HistogramVec
}

// NewMetrics creates the pipeline collectors and registers them with reg.
// A nil reg leaves them unregistered, which is what most tests want.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "facet_generation_runs_total",
				Help: "Persisted generation runs by archetype and content source",
			},
			[]string{"archetype", "source"},
		),
		GateRejections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "facet_quality_gate_rejections_total",
				Help: "Generated drafts rejected by the quality gate",
			},
			[]string{"archetype", "attempt"},
		),
		ServiceFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "facet_textgen_failures_total",
				Help: "Text generation calls that failed or timed out",
			},
			[]string{"archetype"},
		),
		SlugRetries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "facet_slug_conflict_retries_total",
				Help: "Post writes retried after a duplicate slug",
			},
			[]string{"archetype"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "facet_generation_duration_seconds",
				Help:    "Wall time of a generation run",
				Buckets: []float64{0.1, 0.5, 1, 5, 15, 30, 60, 120},
			},
			[]string{"archetype"},
		),
	}

	if reg != nil {
		reg.MustRegister(m.Runs, m.GateRejections, m.ServiceFailures, m.SlugRetries, m.Duration)
	}
	return m
}
