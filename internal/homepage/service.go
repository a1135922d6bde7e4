package homepage

import (
	"context"
	"errors"
	"log/slog"

	articlemodels "newsdesk/internal/article/models"
	"newsdesk/internal/audit"
	"newsdesk/pkg/domain"
	dErrors "newsdesk/pkg/domain-errors"
	"newsdesk/pkg/platform/sentinel"
	"newsdesk/pkg/requestcontext"
)

// Store persists the slot singleton.
type Store interface {
	Get(ctx context.Context) (*Config, error)
	Save(ctx context.Context, cfg *Config) error
}

// ArticleFinder resolves slot candidates so only live articles can be
// placed on the front page.
type ArticleFinder interface {
	FindByID(ctx context.Context, id domain.ArticleID) (*articlemodels.Article, error)
}

// Recorder accepts fire-and-forget audit entries.
type Recorder interface {
	Record(ctx context.Context, action audit.Action, targetType audit.TargetType, targetID, targetName string, detail map[string]any)
}

// Service manages the homepage slots.
type Service struct {
	store    Store
	articles ArticleFinder
	recorder Recorder
	logger   *slog.Logger
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithRecorder(r Recorder) Option {
	return func(s *Service) { s.recorder = r }
}

// NewService constructs a homepage service.
func NewService(store Store, articles ArticleFinder, opts ...Option) *Service {
	s := &Service{
		store:    store,
		articles: articles,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) record(ctx context.Context, detail map[string]any) {
	if s.recorder != nil {
		s.recorder.Record(ctx, audit.ActionHomepageUpdated, audit.TargetHomepage, "homepage", "homepage", detail)
	}
}

// Get returns the current slot configuration. Staff only.
func (s *Service) Get(ctx context.Context) (*Config, error) {
	actor := requestcontext.Actor(ctx)
	if actor == nil {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "authentication required")
	}
	cfg, err := s.store.Get(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load homepage config")
	}
	return cfg, nil
}

// SetSlotsRequest replaces the slot assignment wholesale.
type SetSlotsRequest struct {
	Hero        *domain.ArticleID  `json:"hero,omitempty"`
	SubFeatured []domain.ArticleID `json:"sub_featured"`
}

// SetSlots replaces the hero and sub-featured assignment. Every referenced
// article must be published and not deleted.
func (s *Service) SetSlots(ctx context.Context, req SetSlotsRequest) (*Config, error) {
	actor := requestcontext.Actor(ctx)
	if actor == nil {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "authentication required")
	}
	if !actor.EditorOrAbove() {
		return nil, dErrors.New(dErrors.CodeForbidden, "homepage slots require editor role")
	}
	if len(req.SubFeatured) > MaxSubFeatured {
		return nil, dErrors.New(dErrors.CodeValidation, "too many sub-featured articles")
	}

	seen := make(map[domain.ArticleID]bool, len(req.SubFeatured)+1)
	check := func(id domain.ArticleID) error {
		if seen[id] {
			return dErrors.New(dErrors.CodeValidation, "article assigned to more than one slot")
		}
		seen[id] = true
		a, err := s.articles.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				return dErrors.New(dErrors.CodeNotFound, "slot article not found")
			}
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to resolve slot article")
		}
		if !a.IsPublished() {
			return dErrors.New(dErrors.CodeConflict, "only published articles can occupy homepage slots")
		}
		return nil
	}

	if req.Hero != nil {
		if err := check(*req.Hero); err != nil {
			return nil, err
		}
	}
	for _, id := range req.SubFeatured {
		if err := check(id); err != nil {
			return nil, err
		}
	}

	cfg, err := s.store.Get(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load homepage config")
	}
	cfg.Hero = req.Hero
	cfg.SubFeatured = append([]domain.ArticleID{}, req.SubFeatured...)
	cfg.UpdatedBy = &actor.ID
	cfg.UpdatedAt = requestcontext.Now(ctx)

	if err := s.store.Save(ctx, cfg); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save homepage config")
	}

	s.record(ctx, map[string]any{"sub_featured": len(cfg.SubFeatured), "has_hero": cfg.Hero != nil})
	return cfg, nil
}

// Occupies reports whether the article currently holds any homepage slot.
func (s *Service) Occupies(ctx context.Context, id domain.ArticleID) (bool, error) {
	cfg, err := s.store.Get(ctx)
	if err != nil {
		return false, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load homepage config")
	}
	return cfg.Occupies(id), nil
}

// ClearSlots removes the article from every slot it holds. Called by the
// article workflow on deletion; a no-op when the article holds no slot.
func (s *Service) ClearSlots(ctx context.Context, id domain.ArticleID) error {
	cfg, err := s.store.Get(ctx)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load homepage config")
	}
	if !cfg.Remove(id) {
		return nil
	}
	cfg.UpdatedAt = requestcontext.Now(ctx)
	if err := s.store.Save(ctx, cfg); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to save homepage config")
	}

	s.logger.InfoContext(ctx, "cleared homepage slots", "article_id", id)
	s.record(ctx, map[string]any{"cleared": id.String()})
	return nil
}
