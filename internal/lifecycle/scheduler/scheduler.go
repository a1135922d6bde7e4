// Package scheduler triggers the lifecycle sweeps on wall-clock cadence:
// the hot -> archive sweep daily, the archive -> cold sweep on the first
// day of each month. The sweep logic itself lives in the service so it can
// be invoked directly by tests and admin endpoints.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"newsdesk/internal/lifecycle/service"
)

// Sweeper defines the sweep entry points the scheduler triggers.
type Sweeper interface {
	RunHotToArchive(ctx context.Context) (service.SweepReport, error)
	RunArchiveToCold(ctx context.Context) (service.SweepReport, error)
}

const (
	defaultInterval = 24 * time.Hour
	sweepTimeout    = 5 * time.Minute
)

type Scheduler struct {
	sweeper  Sweeper
	interval time.Duration
	logger   *slog.Logger

	// lastCold guards against running the monthly sweep more than once
	// when ticks land on the 1st repeatedly.
	lastCold time.Time
}

type Option func(*Scheduler)

func WithInterval(d time.Duration) Option {
	return func(s *Scheduler) {
		if d > 0 {
			s.interval = d
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Scheduler) { s.logger = logger }
}

func New(sweeper Sweeper, opts ...Option) *Scheduler {
	s := &Scheduler{
		sweeper:  sweeper,
		interval: defaultInterval,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start runs the sweep loop until the context is cancelled. Sweep errors
// are logged and deferred to the next tick, never fatal.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("lifecycle scheduler started", "interval", s.interval)

	s.tick(ctx, time.Now())

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("lifecycle scheduler stopped")
			return ctx.Err()
		case now := <-ticker.C:
			s.tick(ctx, now)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context, now time.Time) {
	sweepCtx, cancel := context.WithTimeout(ctx, sweepTimeout)
	defer cancel()

	if _, err := s.sweeper.RunHotToArchive(sweepCtx); err != nil {
		s.logger.Error("hot to archive sweep failed", "error", err)
	}

	if now.Day() == 1 && !sameMonth(s.lastCold, now) {
		if _, err := s.sweeper.RunArchiveToCold(sweepCtx); err != nil {
			s.logger.Error("archive to cold sweep failed", "error", err)
			return
		}
		s.lastCold = now
	}
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
