package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the audit pipeline.
type Metrics struct {
	Recorded  *prometheus.CounterVec
	Dropped   prometheus.Counter
	Purged    prometheus.Counter
	Published prometheus.Counter
}

// New creates a new Metrics instance with all audit pipeline metrics registered.
func New() *Metrics {
	return &Metrics{
		Recorded: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "newsdesk_audit_entries_recorded_total",
			Help: "Total number of audit entries accepted into the buffer",
		}, []string{"action"}),
		Dropped: promauto.NewCounter(prometheus.CounterOpts{
			Name: "newsdesk_audit_entries_dropped_total",
			Help: "Total number of audit entries dropped because the buffer was full",
		}),
		Purged: promauto.NewCounter(prometheus.CounterOpts{
			Name: "newsdesk_audit_entries_purged_total",
			Help: "Total number of audit entries removed by retention purges",
		}),
		Published: promauto.NewCounter(prometheus.CounterOpts{
			Name: "newsdesk_audit_entries_published_total",
			Help: "Total number of audit entries handed to the Kafka producer",
		}),
	}
}

// IncrementRecorded records an entry accepted into the buffer.
func (m *Metrics) IncrementRecorded(action string) {
	m.Recorded.WithLabelValues(action).Inc()
}

// IncrementDropped records an entry dropped on a full buffer.
func (m *Metrics) IncrementDropped() {
	m.Dropped.Inc()
}

// AddPurged records entries removed by a retention purge.
func (m *Metrics) AddPurged(n int64) {
	m.Purged.Add(float64(n))
}

// IncrementPublished records an entry handed to the Kafka producer.
func (m *Metrics) IncrementPublished() {
	m.Published.Inc()
}
