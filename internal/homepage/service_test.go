package homepage_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	articlemodels "newsdesk/internal/article/models"
	articlestore "newsdesk/internal/article/store"
	"newsdesk/internal/homepage"
	"newsdesk/pkg/domain"
	dErrors "newsdesk/pkg/domain-errors"
	"newsdesk/pkg/requestcontext"
)

type HomepageSuite struct {
	suite.Suite
	articles *articlestore.InMemory
	service  *homepage.Service
	editor   *domain.Actor
	now      time.Time
}

func TestHomepageSuite(t *testing.T) {
	suite.Run(t, new(HomepageSuite))
}

func (s *HomepageSuite) SetupTest() {
	s.articles = articlestore.NewInMemory()
	s.service = homepage.NewService(homepage.NewMemoryStore(), s.articles)
	s.editor = &domain.Actor{ID: domain.NewUserID(), Name: "ed", Role: domain.RoleEditor}
	s.now = time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
}

func (s *HomepageSuite) ctxFor(actor *domain.Actor) context.Context {
	ctx := requestcontext.WithActor(context.Background(), actor)
	return requestcontext.WithTime(ctx, s.now)
}

func (s *HomepageSuite) seedPublished(slug string) *articlemodels.Article {
	publishedAt := s.now.Add(-time.Hour)
	a := &articlemodels.Article{
		ID:            domain.NewArticleID(),
		Slug:          slug,
		Title:         "Title " + slug,
		Content:       "Body " + slug,
		FeaturedImage: "https://img.example/x.jpg",
		Status:        articlemodels.StatusPublished,
		Stage:         articlemodels.StageHot,
		Author:        domain.NewUserID(),
		PublishedAt:   &publishedAt,
		CreatedAt:     publishedAt,
		UpdatedAt:     publishedAt,
	}
	s.Require().NoError(s.articles.Create(context.Background(), a))
	return a
}

func (s *HomepageSuite) seedDraft(slug string) *articlemodels.Article {
	a := &articlemodels.Article{
		ID:            domain.NewArticleID(),
		Slug:          slug,
		Title:         "Title " + slug,
		Content:       "Body " + slug,
		FeaturedImage: "https://img.example/x.jpg",
		Status:        articlemodels.StatusDraft,
		Author:        domain.NewUserID(),
		CreatedAt:     s.now,
		UpdatedAt:     s.now,
	}
	s.Require().NoError(s.articles.Create(context.Background(), a))
	return a
}

func (s *HomepageSuite) TestSetSlots() {
	hero := s.seedPublished("hero-story")
	sub := s.seedPublished("sub-story")

	s.Run("editor assigns hero and sub-featured", func() {
		cfg, err := s.service.SetSlots(s.ctxFor(s.editor), homepage.SetSlotsRequest{
			Hero:        &hero.ID,
			SubFeatured: []domain.ArticleID{sub.ID},
		})
		s.Require().NoError(err)
		s.Require().NotNil(cfg.Hero)
		s.Equal(hero.ID, *cfg.Hero)
		s.Len(cfg.SubFeatured, 1)
	})

	s.Run("anonymous is rejected", func() {
		_, err := s.service.SetSlots(s.ctxFor(nil), homepage.SetSlotsRequest{})
		s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	s.Run("writers may not curate", func() {
		writer := &domain.Actor{ID: domain.NewUserID(), Role: domain.RoleWriter}
		_, err := s.service.SetSlots(s.ctxFor(writer), homepage.SetSlotsRequest{Hero: &hero.ID})
		s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
	})

	s.Run("drafts cannot occupy slots", func() {
		draft := s.seedDraft("unready")
		_, err := s.service.SetSlots(s.ctxFor(s.editor), homepage.SetSlotsRequest{Hero: &draft.ID})
		s.True(dErrors.HasCode(err, dErrors.CodeConflict))
	})

	s.Run("unknown article is not found", func() {
		ghost := domain.NewArticleID()
		_, err := s.service.SetSlots(s.ctxFor(s.editor), homepage.SetSlotsRequest{Hero: &ghost})
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("one article cannot hold two slots", func() {
		_, err := s.service.SetSlots(s.ctxFor(s.editor), homepage.SetSlotsRequest{
			Hero:        &hero.ID,
			SubFeatured: []domain.ArticleID{hero.ID},
		})
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})
}

func (s *HomepageSuite) TestOccupiesAndClear() {
	hero := s.seedPublished("front-page-lead")
	sub := s.seedPublished("second-billing")
	bystander := s.seedPublished("not-placed")

	_, err := s.service.SetSlots(s.ctxFor(s.editor), homepage.SetSlotsRequest{
		Hero:        &hero.ID,
		SubFeatured: []domain.ArticleID{sub.ID},
	})
	s.Require().NoError(err)

	s.Run("occupies reflects assignment", func() {
		occupied, err := s.service.Occupies(s.ctxFor(nil), hero.ID)
		s.Require().NoError(err)
		s.True(occupied)

		occupied, err = s.service.Occupies(s.ctxFor(nil), bystander.ID)
		s.Require().NoError(err)
		s.False(occupied)
	})

	s.Run("clearing the hero empties the slot and keeps the rest", func() {
		s.Require().NoError(s.service.ClearSlots(s.ctxFor(nil), hero.ID))

		cfg, err := s.service.Get(s.ctxFor(s.editor))
		s.Require().NoError(err)
		s.Nil(cfg.Hero)
		s.Len(cfg.SubFeatured, 1)
	})

	s.Run("clearing an unplaced article is a no-op", func() {
		s.Require().NoError(s.service.ClearSlots(s.ctxFor(nil), bystander.ID))
	})
}
