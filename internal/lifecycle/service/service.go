// Package service owns the retention tiering of published articles: the
// config singleton, the two age-based sweeps, and the manual bulk stage
// operations. Sweeps are plain methods so a scheduler, an admin endpoint,
// and a test can all invoke the same code path.
package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"log/slog"
	"time"

	articlemodels "newsdesk/internal/article/models"
	articlestore "newsdesk/internal/article/store"
	"newsdesk/internal/audit"
	lifecyclemetrics "newsdesk/internal/lifecycle/metrics"
	"newsdesk/internal/lifecycle/models"
	"newsdesk/pkg/domain"
)

// ConfigStore persists the lifecycle config singleton. Get creates the
// singleton with defaults on first access.
type ConfigStore interface {
	Get(ctx context.Context) (*models.Config, error)
	Save(ctx context.Context, cfg *models.Config) error
}

// ArticleStageStore is the slice of the article store the sweeps need. The
// article stores implement it alongside their main contract.
type ArticleStageStore interface {
	AdvanceStage(ctx context.Context, from, to articlemodels.Stage, cutoff time.Time, reason articlemodels.ArchiveReason, now time.Time) (int64, error)
	ArchiveByIDs(ctx context.Context, ids []domain.ArticleID, reason articlemodels.ArchiveReason, now time.Time) (int64, error)
	RestoreStageByIDs(ctx context.Context, ids []domain.ArticleID, now time.Time) (int64, error)
	StageCounts(ctx context.Context) (articlestore.StageCounts, error)
}

// Recorder accepts fire-and-forget audit entries.
type Recorder interface {
	Record(ctx context.Context, action audit.Action, targetType audit.TargetType, targetID, targetName string, detail map[string]any)
}

// Service runs the lifecycle sweeps and manages the config singleton.
type Service struct {
	config   ConfigStore
	articles ArticleStageStore
	recorder Recorder
	logger   *slog.Logger
	metrics  *lifecyclemetrics.Metrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithRecorder(r Recorder) Option {
	return func(s *Service) { s.recorder = r }
}

func WithMetrics(m *lifecyclemetrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// New constructs a Service.
func New(config ConfigStore, articles ArticleStageStore, opts ...Option) *Service {
	s := &Service{
		config:   config,
		articles: articles,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) record(ctx context.Context, action audit.Action, detail map[string]any) {
	if s.recorder != nil {
		s.recorder.Record(ctx, action, audit.TargetLifecycle, "lifecycle", "lifecycle config", detail)
	}
}
