package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the lifecycle sweeps.
type Metrics struct {
	SweepRuns     *prometheus.CounterVec
	SweepFailures *prometheus.CounterVec
	SweepMoved    *prometheus.CounterVec
	SweepDuration prometheus.Histogram
}

// New creates a new Metrics instance with all lifecycle metrics registered.
func New() *Metrics {
	return &Metrics{
		SweepRuns: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "newsdesk_lifecycle_sweep_runs_total",
			Help: "Total number of sweep executions by sweep name",
		}, []string{"sweep"}),
		SweepFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "newsdesk_lifecycle_sweep_failures_total",
			Help: "Total number of failed sweep executions by sweep name",
		}, []string{"sweep"}),
		SweepMoved: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "newsdesk_lifecycle_sweep_moved_total",
			Help: "Total number of articles moved between tiers by sweep name",
		}, []string{"sweep"}),
		SweepDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "newsdesk_lifecycle_sweep_duration_seconds",
			Help:    "Duration of lifecycle sweep executions",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 15, 60},
		}),
	}
}

// IncrementRun records one sweep execution.
func (m *Metrics) IncrementRun(sweep string) {
	m.SweepRuns.WithLabelValues(sweep).Inc()
}

// IncrementFailure records one failed sweep execution.
func (m *Metrics) IncrementFailure(sweep string) {
	m.SweepFailures.WithLabelValues(sweep).Inc()
}

// AddMoved records how many articles a sweep moved.
func (m *Metrics) AddMoved(sweep string, n int64) {
	m.SweepMoved.WithLabelValues(sweep).Add(float64(n))
}

// ObserveSweep records a sweep duration in seconds.
func (m *Metrics) ObserveSweep(seconds float64) {
	m.SweepDuration.Observe(seconds)
}
