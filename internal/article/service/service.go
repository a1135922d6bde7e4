// Package service orchestrates the editorial workflow and the read side of
// the article catalog. Authorization and state guards live on the domain
// model; this layer loads, guards, applies, persists, and records.
package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks Recorder,HomepageCleaner,RelatedCache

import (
	"context"
	"log/slog"
	"time"

	articlemetrics "newsdesk/internal/article/metrics"
	"newsdesk/internal/article/models"
	"newsdesk/internal/article/store"
	"newsdesk/internal/audit"
	"newsdesk/pkg/domain"
)

// ArticleStore is the persistence contract the service depends on. Both the
// in-memory store and the Postgres store satisfy it.
type ArticleStore interface {
	Create(ctx context.Context, a *models.Article) error
	FindByID(ctx context.Context, id domain.ArticleID) (*models.Article, error)
	FindBySlug(ctx context.Context, slug string) (*models.Article, error)
	Update(ctx context.Context, a *models.Article) error
	Delete(ctx context.Context, id domain.ArticleID) error
	List(ctx context.Context, q store.ListQuery) ([]*models.Article, int64, error)
	IncrementViews(ctx context.Context, id domain.ArticleID) (int64, error)
	Stats(ctx context.Context, author *domain.UserID) (store.Stats, error)
	RankBySharedTags(ctx context.Context, exclude domain.ArticleID, tags []string, limit int) ([]*models.Article, error)
	RecentByCategory(ctx context.Context, category domain.CategoryID, exclude []domain.ArticleID, limit int) ([]*models.Article, error)
}

// Recorder accepts fire-and-forget audit entries.
type Recorder interface {
	Record(ctx context.Context, action audit.Action, targetType audit.TargetType, targetID, targetName string, detail map[string]any)
}

// HomepageCleaner removes an article from any homepage slot it occupies.
// Used when an article is deleted so the front page never points at a
// missing piece.
type HomepageCleaner interface {
	ClearSlots(ctx context.Context, id domain.ArticleID) error
}

// RelatedCache caches computed related-article lists.
type RelatedCache interface {
	Get(ctx context.Context, id domain.ArticleID) ([]*models.Article, bool)
	Set(ctx context.Context, id domain.ArticleID, related []*models.Article)
	Invalidate(ctx context.Context, ids ...domain.ArticleID)
}

// Service orchestrates article commands and queries.
type Service struct {
	articles ArticleStore
	recorder Recorder
	homepage HomepageCleaner
	cache    RelatedCache
	logger   *slog.Logger
	metrics  *articlemetrics.Metrics

	relatedLimit int
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithRecorder(r Recorder) Option {
	return func(s *Service) { s.recorder = r }
}

func WithHomepageCleaner(h HomepageCleaner) Option {
	return func(s *Service) { s.homepage = h }
}

func WithRelatedCache(c RelatedCache) Option {
	return func(s *Service) { s.cache = c }
}

func WithMetrics(m *articlemetrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func WithRelatedLimit(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.relatedLimit = n
		}
	}
}

// New constructs a Service.
func New(articles ArticleStore, opts ...Option) *Service {
	s := &Service{
		articles:     articles,
		logger:       slog.Default(),
		relatedLimit: defaultRelatedLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) record(ctx context.Context, action audit.Action, id domain.ArticleID, slug string, detail map[string]any) {
	if s.recorder != nil {
		s.recorder.Record(ctx, action, audit.TargetArticle, id.String(), slug, detail)
	}
}

func (s *Service) incrementTransition(action string) {
	if s.metrics != nil {
		s.metrics.IncrementTransition(action)
	}
}

func (s *Service) invalidateRelated(ctx context.Context, ids ...domain.ArticleID) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, ids...)
	}
}

func (s *Service) observeList(start time.Time) {
	if s.metrics != nil {
		s.metrics.ObserveList(start)
	}
}
