package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the article module.
// Tracks workflow transition counts and read path durations.
type Metrics struct {
	Transitions       *prometheus.CounterVec
	ListDuration      prometheus.Histogram
	RelatedDuration   prometheus.Histogram
	RelatedCacheHits  prometheus.Counter
	RelatedCacheMisses prometheus.Counter
}

// New creates a new Metrics instance with all article module metrics registered.
func New() *Metrics {
	return &Metrics{
		Transitions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "newsdesk_article_transitions_total",
			Help: "Total number of editorial workflow transitions by action",
		}, []string{"action"}),
		ListDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "newsdesk_article_list_duration_seconds",
			Help:    "Duration of article list queries (public feed critical path)",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
		RelatedDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "newsdesk_article_related_duration_seconds",
			Help:    "Duration of related-article lookups including cache",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
		RelatedCacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "newsdesk_article_related_cache_hits_total",
			Help: "Total number of related-article lookups served from cache",
		}),
		RelatedCacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "newsdesk_article_related_cache_misses_total",
			Help: "Total number of related-article lookups that went to the store",
		}),
	}
}

// IncrementTransition records one workflow transition.
func (m *Metrics) IncrementTransition(action string) {
	m.Transitions.WithLabelValues(action).Inc()
}

// ObserveList records the duration of a list query.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveList(start time.Time) {
	m.ListDuration.Observe(time.Since(start).Seconds())
}

// ObserveRelated records the duration of a related-articles lookup.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveRelated(start time.Time) {
	m.RelatedDuration.Observe(time.Since(start).Seconds())
}

// IncrementRelatedCacheHit records a cache-served related lookup.
func (m *Metrics) IncrementRelatedCacheHit() {
	m.RelatedCacheHits.Inc()
}

// IncrementRelatedCacheMiss records a store-served related lookup.
func (m *Metrics) IncrementRelatedCacheMiss() {
	m.RelatedCacheMisses.Inc()
}
