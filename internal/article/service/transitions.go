package service

import (
	"context"
	"errors"
	"time"

	"newsdesk/internal/article/models"
	"newsdesk/internal/audit"
	"newsdesk/pkg/domain"
	dErrors "newsdesk/pkg/domain-errors"
	"newsdesk/pkg/platform/sentinel"
	pstrings "newsdesk/pkg/platform/strings"
	"newsdesk/pkg/requestcontext"
)

func wrapArticleErr(err error) error {
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		return dErrors.New(dErrors.CodeNotFound, "article not found")
	case errors.Is(err, sentinel.ErrConflict):
		return dErrors.New(dErrors.CodeConflict, "slug is already in use")
	default:
		return dErrors.Wrap(err, dErrors.CodeInternal, "article storage failed")
	}
}

func requireActor(ctx context.Context) (*domain.Actor, error) {
	actor := requestcontext.Actor(ctx)
	if actor == nil {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "authentication required")
	}
	return actor, nil
}

// Create validates the payload, constructs the draft (or, with publish_now,
// the live article) and persists it.
func (s *Service) Create(ctx context.Context, req models.CreateArticleRequest) (*models.Article, error) {
	actor, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeValidation, "invalid article payload")
	}

	params := models.NewArticleParams{
		Title:         req.Title,
		Slug:          req.Slug,
		Intro:         req.Intro,
		Content:       req.Content,
		Excerpt:       req.Excerpt,
		FeaturedImage: req.FeaturedImage,
		ImageAlt:      req.ImageAlt,
		Tags:          req.Tags,
		Country:       req.Country,
		IsTrending:    req.IsTrending,
		IsFeatured:    req.IsFeatured,
		// Publish date and home feed visibility default to on.
		ShowPublishDate: req.ShowPublishDate == nil || *req.ShowPublishDate,
		ShowInHomeFeed:  req.ShowInHomeFeed == nil || *req.ShowInHomeFeed,
		PublishNow:      req.PublishNow,
	}
	if req.Category != "" {
		category, err := domain.ParseCategoryID(req.Category)
		if err != nil {
			return nil, dErrors.New(dErrors.CodeValidation, "invalid category id")
		}
		params.Category = &category
	}

	article, err := models.NewArticle(domain.NewArticleID(), actor, params, requestcontext.Now(ctx))
	if err != nil {
		return nil, err
	}

	if err := s.articles.Create(ctx, article); err != nil {
		return nil, wrapArticleErr(err)
	}

	s.record(ctx, audit.ActionArticleCreated, article.ID, article.Slug, map[string]any{
		"status": article.Status,
	})
	s.incrementTransition("create")
	if article.IsPublished() {
		s.record(ctx, audit.ActionArticlePublished, article.ID, article.Slug, map[string]any{"via": "direct_publish"})
		s.incrementTransition("publish")
	}

	s.logger.InfoContext(ctx, "article created",
		"article_id", article.ID, "slug", article.Slug, "status", article.Status)
	return article, nil
}

// Update applies a partial edit. Only the fields present in the payload are
// touched; the set of changed field names is appended to the article's
// update history. Writers may edit their own drafts only; a status value in
// a writer's payload is dropped, not rejected.
func (s *Service) Update(ctx context.Context, id domain.ArticleID, req models.UpdateArticleRequest) (*models.Article, error) {
	actor, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeValidation, "invalid article payload")
	}

	article, err := s.articles.FindByID(ctx, id)
	if err != nil {
		return nil, wrapArticleErr(err)
	}
	if err := article.CanUpdate(actor); err != nil {
		return nil, err
	}

	changed, err := applyUpdate(article, actor, req)
	if err != nil {
		return nil, err
	}
	if len(changed) == 0 {
		return article, nil
	}

	article.RecordUpdate(actor, changed, requestcontext.Now(ctx))
	if err := s.articles.Update(ctx, article); err != nil {
		return nil, wrapArticleErr(err)
	}

	s.record(ctx, audit.ActionArticleUpdated, article.ID, article.Slug, map[string]any{"changed": changed})
	s.incrementTransition("update")
	s.invalidateRelated(ctx, article.ID)
	return article, nil
}

// applyUpdate copies the supplied fields onto the article and returns the
// names of fields that actually changed.
func applyUpdate(a *models.Article, actor *domain.Actor, req models.UpdateArticleRequest) ([]string, error) {
	var changed []string
	note := func(field string) { changed = append(changed, field) }

	if req.Title != nil && *req.Title != a.Title {
		a.Title = *req.Title
		a.RetitleSlug()
		note("title")
	}
	if req.Slug != nil && *req.Slug != a.Slug {
		a.SetSlug(*req.Slug)
		note("slug")
	}
	if req.Intro != nil && *req.Intro != a.Intro {
		a.Intro = *req.Intro
		note("intro")
	}
	if req.Content != nil && *req.Content != a.Content {
		a.Content = *req.Content
		if req.Excerpt == nil {
			a.Excerpt = models.DeriveExcerpt(a.Content)
		}
		note("content")
	}
	if req.Excerpt != nil && *req.Excerpt != a.Excerpt {
		a.Excerpt = *req.Excerpt
		note("excerpt")
	}
	if req.FeaturedImage != nil && *req.FeaturedImage != a.FeaturedImage {
		a.FeaturedImage = *req.FeaturedImage
		note("featured_image")
	}
	if req.ImageAlt != nil && *req.ImageAlt != a.ImageAlt {
		a.ImageAlt = *req.ImageAlt
		note("image_alt")
	}
	if req.Category != nil {
		if *req.Category == "" {
			if a.Category != nil {
				a.Category = nil
				note("category")
			}
		} else {
			category, err := domain.ParseCategoryID(*req.Category)
			if err != nil {
				return nil, dErrors.New(dErrors.CodeValidation, "invalid category id")
			}
			if a.Category == nil || *a.Category != category {
				a.Category = &category
				note("category")
			}
		}
	}
	if req.Tags != nil {
		a.Tags = pstrings.DedupeAndTrim(*req.Tags)
		note("tags")
	}
	if req.Country != nil && *req.Country != a.Country {
		a.Country = *req.Country
		note("country")
	}
	if req.IsTrending != nil && *req.IsTrending != a.IsTrending {
		a.IsTrending = *req.IsTrending
		note("is_trending")
	}
	if req.IsFeatured != nil && *req.IsFeatured != a.IsFeatured {
		a.IsFeatured = *req.IsFeatured
		note("is_featured")
	}
	if req.ShowPublishDate != nil && *req.ShowPublishDate != a.ShowPublishDate {
		a.ShowPublishDate = *req.ShowPublishDate
		note("show_publish_date")
	}
	if req.ShowInHomeFeed != nil && *req.ShowInHomeFeed != a.ShowInHomeFeed {
		a.ShowInHomeFeed = *req.ShowInHomeFeed
		note("show_in_home_feed")
	}

	// Writers can't change status through the edit endpoint; the value is
	// silently dropped so shared tooling doesn't have to branch per role.
	if req.Status != nil && actor.EditorOrAbove() {
		status, err := models.ParseStatus(*req.Status)
		if err != nil {
			return nil, err
		}
		if status != a.Status {
			a.Status = status
			note("status")
		}
	}

	return changed, nil
}

// Submit moves a draft into review.
func (s *Service) Submit(ctx context.Context, id domain.ArticleID) (*models.Article, error) {
	return s.transition(ctx, id, "submit", audit.ActionArticleSubmitted, nil,
		func(a *models.Article, actor *domain.Actor) error { return a.CanSubmit(actor) },
		func(a *models.Article, _ *domain.Actor, now time.Time) { a.ApplySubmit(now) },
	)
}

// Approve publishes an article from review (or straight from draft).
func (s *Service) Approve(ctx context.Context, id domain.ArticleID) (*models.Article, error) {
	return s.transition(ctx, id, "approve", audit.ActionArticleApproved, nil,
		func(a *models.Article, actor *domain.Actor) error { return a.CanApprove(actor) },
		func(a *models.Article, actor *domain.Actor, now time.Time) { a.ApplyApprove(actor, now) },
	)
}

// Reject returns an article to draft. The reason lands in the audit trail,
// not on the article.
func (s *Service) Reject(ctx context.Context, id domain.ArticleID, reason string) (*models.Article, error) {
	detail := map[string]any{}
	if reason != "" {
		detail["reason"] = reason
	}
	return s.transition(ctx, id, "reject", audit.ActionArticleRejected, detail,
		func(a *models.Article, actor *domain.Actor) error { return a.CanReject(actor) },
		func(a *models.Article, _ *domain.Actor, now time.Time) { a.ApplyReject(now) },
	)
}

// TogglePublish flips between published and draft.
func (s *Service) TogglePublish(ctx context.Context, id domain.ArticleID) (*models.Article, error) {
	actor, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}
	article, err := s.articles.FindByID(ctx, id)
	if err != nil {
		return nil, wrapArticleErr(err)
	}
	if err := article.CanTogglePublish(actor); err != nil {
		return nil, err
	}

	action := article.ApplyTogglePublish(actor, requestcontext.Now(ctx))
	if err := s.articles.Update(ctx, article); err != nil {
		return nil, wrapArticleErr(err)
	}

	auditAction := audit.ActionArticlePublished
	if action == "unpublish" {
		auditAction = audit.ActionArticleUnpublished
	}
	s.record(ctx, auditAction, article.ID, article.Slug, nil)
	s.incrementTransition(action)
	s.invalidateRelated(ctx, article.ID)

	s.logger.InfoContext(ctx, "article publish toggled",
		"article_id", article.ID, "action", action)
	return article, nil
}

// SoftDelete hides an article and vacates any homepage slot it held.
func (s *Service) SoftDelete(ctx context.Context, id domain.ArticleID) (*models.Article, error) {
	article, err := s.transition(ctx, id, "soft_delete", audit.ActionArticleSoftDeleted, nil,
		func(a *models.Article, actor *domain.Actor) error { return a.CanSoftDelete(actor) },
		func(a *models.Article, actor *domain.Actor, now time.Time) { a.ApplySoftDelete(actor, now) },
	)
	if err != nil {
		return nil, err
	}

	s.clearHomepageSlots(ctx, article.ID)
	s.invalidateRelated(ctx, article.ID)
	return article, nil
}

// Restore brings a soft-deleted article back as a draft.
func (s *Service) Restore(ctx context.Context, id domain.ArticleID) (*models.Article, error) {
	return s.transition(ctx, id, "restore", audit.ActionArticleRestored, nil,
		func(a *models.Article, actor *domain.Actor) error { return a.CanRestore(actor) },
		func(a *models.Article, _ *domain.Actor, now time.Time) { a.ApplyRestore(now) },
	)
}

// HardDelete permanently removes an article. Published articles are fair
// game; the row, its history, and its homepage slots all go.
func (s *Service) HardDelete(ctx context.Context, id domain.ArticleID) error {
	actor, err := requireActor(ctx)
	if err != nil {
		return err
	}
	article, err := s.articles.FindByID(ctx, id)
	if err != nil {
		return wrapArticleErr(err)
	}
	if err := article.CanHardDelete(actor); err != nil {
		return err
	}

	if err := s.articles.Delete(ctx, id); err != nil {
		return wrapArticleErr(err)
	}

	s.clearHomepageSlots(ctx, id)
	s.invalidateRelated(ctx, id)
	s.record(ctx, audit.ActionArticleHardDeleted, id, article.Slug, nil)
	s.incrementTransition("hard_delete")

	s.logger.InfoContext(ctx, "article permanently deleted",
		"article_id", id, "slug", article.Slug)
	return nil
}

// Archive manually moves a single published article from hot to archive.
func (s *Service) Archive(ctx context.Context, id domain.ArticleID) (*models.Article, error) {
	return s.transition(ctx, id, "archive", audit.ActionArticleArchived,
		map[string]any{"reason": models.ArchiveReasonManual},
		func(a *models.Article, actor *domain.Actor) error {
			if !actor.EditorOrAbove() {
				return dErrors.New(dErrors.CodeForbidden, "archiving articles requires editor role")
			}
			return a.CanArchive()
		},
		func(a *models.Article, _ *domain.Actor, now time.Time) {
			a.ApplyArchive(models.ArchiveReasonManual, now)
		},
	)
}

// RestoreStage manually resets an archived or cold article back to hot.
func (s *Service) RestoreStage(ctx context.Context, id domain.ArticleID) (*models.Article, error) {
	return s.transition(ctx, id, "restore_stage", audit.ActionArticleStageRestored, nil,
		func(a *models.Article, actor *domain.Actor) error {
			if !actor.EditorOrAbove() {
				return dErrors.New(dErrors.CodeForbidden, "restoring articles requires editor role")
			}
			return a.CanRestoreStage()
		},
		func(a *models.Article, _ *domain.Actor, now time.Time) { a.ApplyRestoreStage(now) },
	)
}

func (s *Service) clearHomepageSlots(ctx context.Context, id domain.ArticleID) {
	if s.homepage == nil {
		return
	}
	if err := s.homepage.ClearSlots(ctx, id); err != nil {
		// The delete already happened; a stale homepage slot is repairable,
		// a failed delete is not.
		s.logger.ErrorContext(ctx, "failed to clear homepage slots",
			"article_id", id, "error", err)
	}
}

// transition runs the shared load-guard-apply-persist-record sequence.
func (s *Service) transition(
	ctx context.Context,
	id domain.ArticleID,
	name string,
	auditAction audit.Action,
	detail map[string]any,
	guard func(*models.Article, *domain.Actor) error,
	apply func(*models.Article, *domain.Actor, time.Time),
) (*models.Article, error) {
	actor, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}
	article, err := s.articles.FindByID(ctx, id)
	if err != nil {
		return nil, wrapArticleErr(err)
	}
	if err := guard(article, actor); err != nil {
		return nil, err
	}

	apply(article, actor, requestcontext.Now(ctx))
	if err := s.articles.Update(ctx, article); err != nil {
		return nil, wrapArticleErr(err)
	}

	s.record(ctx, auditAction, article.ID, article.Slug, detail)
	s.incrementTransition(name)

	s.logger.InfoContext(ctx, "article transition applied",
		"article_id", article.ID, "transition", name, "status", article.Status)
	return article, nil
}
