package service

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"newsdesk/internal/article/models"
	"newsdesk/internal/article/policy"
	"newsdesk/internal/article/store"
	"newsdesk/pkg/domain"
	dErrors "newsdesk/pkg/domain-errors"
	"newsdesk/pkg/requestcontext"
)

const (
	defaultPageSize     = 10
	maxPageSize         = 100
	defaultRelatedLimit = 4
)

var tracer = otel.Tracer("newsdesk/article")

// ListParams carries the caller-facing list filters. Role restrictions are
// derived from the context actor, never from the params.
type ListParams struct {
	Status   string
	Category string
	Tag      string
	Search   string
	Trending *bool
	Featured *bool
	Stage    string

	CreatedFrom *time.Time
	CreatedTo   *time.Time

	Page  int
	Limit int
}

// ListResult is one page of articles plus pagination facts.
type ListResult struct {
	Items []*models.Article `json:"items"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Pages int               `json:"pages"`
	Limit int               `json:"limit"`
}

// List returns one page of articles visible to the context actor.
func (s *Service) List(ctx context.Context, params ListParams) (*ListResult, error) {
	start := time.Now()
	defer s.observeList(start)

	ctx, span := tracer.Start(ctx, "article.List",
		trace.WithAttributes(attribute.String("requested_status", params.Status)))
	defer span.End()

	actor := requestcontext.Actor(ctx)
	q := store.ListQuery{
		Predicate:   policy.ForList(actor, params.Status),
		Tag:         params.Tag,
		Search:      params.Search,
		Trending:    params.Trending,
		Featured:    params.Featured,
		CreatedFrom: params.CreatedFrom,
		CreatedTo:   params.CreatedTo,
		Page:        params.Page,
		Limit:       params.Limit,
	}

	if params.Category != "" {
		category, err := domain.ParseCategoryID(params.Category)
		if err != nil {
			return nil, dErrors.New(dErrors.CodeValidation, "invalid category id")
		}
		q.Category = &category
	}
	if params.Stage != "" {
		stage, err := models.ParseStage(params.Stage)
		if err != nil {
			return nil, err
		}
		q.Stage = stage
	}
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = defaultPageSize
	}
	if q.Limit > maxPageSize {
		q.Limit = maxPageSize
	}

	items, total, err := s.articles.List(ctx, q)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list articles")
	}

	pages := int((total + int64(q.Limit) - 1) / int64(q.Limit))
	return &ListResult{Items: items, Total: total, Page: q.Page, Pages: pages, Limit: q.Limit}, nil
}

// GetBySlug resolves the public article page. Published articles count a
// view on every fetch; unpublished ones are visible to staff only and are
// reported as missing to everyone else.
func (s *Service) GetBySlug(ctx context.Context, slug string) (*models.Article, error) {
	ctx, span := tracer.Start(ctx, "article.GetBySlug",
		trace.WithAttributes(attribute.String("slug", slug)))
	defer span.End()

	article, err := s.articles.FindBySlug(ctx, slug)
	if err != nil {
		return nil, wrapArticleErr(err)
	}

	if !article.IsPublished() {
		if requestcontext.Actor(ctx) == nil {
			// Don't leak the slug's existence to the public.
			return nil, dErrors.New(dErrors.CodeNotFound, "article not found")
		}
		return article, nil
	}

	views, err := s.articles.IncrementViews(ctx, article.ID)
	if err != nil {
		// The page still renders; the counter catches up on the next view.
		s.logger.WarnContext(ctx, "failed to increment views",
			"article_id", article.ID, "error", err)
	} else {
		article.Views = views
	}
	return article, nil
}

// GetByID serves the editing surface. Editors and superadmins reach any
// article (including trashed ones); writers only their own.
func (s *Service) GetByID(ctx context.Context, id domain.ArticleID) (*models.Article, error) {
	actor, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}

	article, err := s.articles.FindByID(ctx, id)
	if err != nil {
		return nil, wrapArticleErr(err)
	}
	if !actor.EditorOrAbove() && article.Author != actor.ID {
		return nil, dErrors.New(dErrors.CodeForbidden, "you can only view your own articles")
	}
	return article, nil
}

// Related returns up to the configured number of published articles related
// to the given one: shared-tag matches ranked by overlap first, padded with
// recent articles from the same category when the tag matches run short.
func (s *Service) Related(ctx context.Context, id domain.ArticleID) ([]*models.Article, error) {
	start := time.Now()
	defer func() {
		if s.metrics != nil {
			s.metrics.ObserveRelated(start)
		}
	}()

	ctx, span := tracer.Start(ctx, "article.Related",
		trace.WithAttributes(attribute.String("article_id", id.String())))
	defer span.End()

	source, err := s.articles.FindByID(ctx, id)
	if err != nil {
		return nil, wrapArticleErr(err)
	}
	if !source.IsPublished() {
		return nil, dErrors.New(dErrors.CodeNotFound, "article not found")
	}

	if s.cache != nil {
		if related, ok := s.cache.Get(ctx, id); ok {
			if s.metrics != nil {
				s.metrics.IncrementRelatedCacheHit()
			}
			span.SetAttributes(attribute.Bool("cache_hit", true))
			return related, nil
		}
		if s.metrics != nil {
			s.metrics.IncrementRelatedCacheMiss()
		}
	}

	related, err := s.computeRelated(ctx, source)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to compute related articles")
	}

	if s.cache != nil {
		s.cache.Set(ctx, id, related)
	}
	return related, nil
}

func (s *Service) computeRelated(ctx context.Context, source *models.Article) ([]*models.Article, error) {
	related := []*models.Article{}
	if len(source.Tags) > 0 {
		byTags, err := s.articles.RankBySharedTags(ctx, source.ID, source.Tags, s.relatedLimit)
		if err != nil {
			return nil, err
		}
		related = byTags
	}

	if len(related) < s.relatedLimit && source.Category != nil {
		exclude := make([]domain.ArticleID, 0, len(related)+1)
		exclude = append(exclude, source.ID)
		for _, a := range related {
			exclude = append(exclude, a.ID)
		}
		backfill, err := s.articles.RecentByCategory(ctx, *source.Category, exclude, s.relatedLimit-len(related))
		if err != nil {
			return nil, err
		}
		related = append(related, backfill...)
	}
	return related, nil
}

// Stats returns dashboard counts. Writers get numbers for their own work
// only; editors and superadmins see the whole desk.
func (s *Service) Stats(ctx context.Context) (store.Stats, error) {
	actor, err := requireActor(ctx)
	if err != nil {
		return store.Stats{}, err
	}

	p := policy.ForStats(actor)
	stats, err := s.articles.Stats(ctx, p.Author)
	if err != nil {
		return store.Stats{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load article stats")
	}
	return stats, nil
}
