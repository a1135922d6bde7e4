package audit

import (
	"context"
	"log/slog"
	"time"

	"newsdesk/internal/audit/metrics"
)

// DefaultRetention keeps one year of audit history.
const DefaultRetention = 365 * 24 * time.Hour

// Purger deletes audit entries past the retention window on a fixed
// interval. Purge failures are logged and retried on the next tick.
type Purger struct {
	store     Store
	retention time.Duration
	interval  time.Duration
	logger    *slog.Logger
	metrics   *metrics.Metrics
}

type PurgerOption func(*Purger)

func WithPurgerLogger(logger *slog.Logger) PurgerOption {
	return func(p *Purger) { p.logger = logger }
}

func WithRetention(d time.Duration) PurgerOption {
	return func(p *Purger) {
		if d > 0 {
			p.retention = d
		}
	}
}

func WithPurgeInterval(d time.Duration) PurgerOption {
	return func(p *Purger) {
		if d > 0 {
			p.interval = d
		}
	}
}

func WithPurgerMetrics(m *metrics.Metrics) PurgerOption {
	return func(p *Purger) { p.metrics = m }
}

func NewPurger(store Store, opts ...PurgerOption) *Purger {
	p := &Purger{
		store:     store,
		retention: DefaultRetention,
		interval:  24 * time.Hour,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run purges on startup and then once per interval until the context is
// cancelled.
func (p *Purger) Run(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.purgeOnce(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			p.purgeOnce(ctx)
		}
	}
}

func (p *Purger) purgeOnce(ctx context.Context) {
	cutoff := time.Now().Add(-p.retention)
	purged, err := p.store.PurgeOlderThan(ctx, cutoff)
	if err != nil {
		p.logger.ErrorContext(ctx, "audit retention purge failed", "error", err)
		return
	}
	if purged > 0 {
		p.logger.InfoContext(ctx, "audit retention purge complete",
			"purged", purged, "cutoff", cutoff)
		if p.metrics != nil {
			p.metrics.AddPurged(purged)
		}
	}
}
