package handler_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"

	articlemodels "newsdesk/internal/article/models"
	articlestore "newsdesk/internal/article/store"
	"newsdesk/internal/lifecycle/handler"
	"newsdesk/internal/lifecycle/models"
	"newsdesk/internal/lifecycle/service"
	"newsdesk/internal/lifecycle/store"
	"newsdesk/pkg/domain"
	"newsdesk/pkg/testutil"
)

type HandlerSuite struct {
	suite.Suite
	router   chi.Router
	articles *articlestore.InMemory
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupTest() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.articles = articlestore.NewInMemory()
	svc := service.New(store.NewInMemory(), s.articles, service.WithLogger(logger))

	s.router = chi.NewRouter()
	handler.New(svc, logger).Register(s.router)
}

func (s *HandlerSuite) seedPublished(slug string, daysOld int, stage articlemodels.Stage) *articlemodels.Article {
	publishedAt := time.Now().AddDate(0, 0, -daysOld)
	a := &articlemodels.Article{
		ID:            domain.NewArticleID(),
		Slug:          slug,
		Title:         "Title " + slug,
		Content:       "Body " + slug,
		FeaturedImage: "https://img.example/x.jpg",
		Status:        articlemodels.StatusPublished,
		Stage:         stage,
		Author:        domain.NewUserID(),
		PublishedAt:   &publishedAt,
		CreatedAt:     publishedAt,
		UpdatedAt:     publishedAt,
	}
	s.Require().NoError(s.articles.Create(context.Background(), a))
	return a
}

func (s *HandlerSuite) TestConfigEndpoints() {
	s.Run("superadmin reads defaults", func() {
		req := testutil.NewRequest(s.T(), http.MethodGet, "/lifecycle/config")
		rr := testutil.DoRequest(s.router, testutil.AsRole(req, domain.RoleSuperadmin))
		testutil.AssertStatusOK(s.T(), rr)
		cfg := testutil.UnmarshalResponse[models.Config](s.T(), rr)
		s.Equal(models.DefaultHotToArchiveDays, cfg.HotToArchiveDays)
	})

	s.Run("editor is forbidden", func() {
		req := testutil.NewRequest(s.T(), http.MethodGet, "/lifecycle/config")
		rr := testutil.DoRequest(s.router, testutil.AsRole(req, domain.RoleEditor))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusForbidden, "forbidden")
	})

	s.Run("update with out-of-range value fails", func() {
		req := testutil.NewJSONRequest(s.T(), http.MethodPut, "/lifecycle/config",
			map[string]any{"hot_to_archive_days": 9999})
		rr := testutil.DoRequest(s.router, testutil.AsRole(req, domain.RoleSuperadmin))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusUnprocessableEntity, "validation_failed")
	})

	s.Run("update persists", func() {
		req := testutil.NewJSONRequest(s.T(), http.MethodPut, "/lifecycle/config",
			map[string]any{"hot_to_archive_days": 30})
		rr := testutil.DoRequest(s.router, testutil.AsRole(req, domain.RoleSuperadmin))
		testutil.AssertStatusOK(s.T(), rr)
		cfg := testutil.UnmarshalResponse[models.Config](s.T(), rr)
		s.Equal(30, cfg.HotToArchiveDays)
	})
}

func (s *HandlerSuite) TestStageEndpoints() {
	hot := s.seedPublished("hot-piece", 5, articlemodels.StageHot)
	s.seedPublished("cold-piece", 900, articlemodels.StageCold)

	s.Run("stage counts for editors", func() {
		req := testutil.NewRequest(s.T(), http.MethodGet, "/lifecycle/stages")
		rr := testutil.DoRequest(s.router, testutil.AsRole(req, domain.RoleEditor))
		testutil.AssertStatusOK(s.T(), rr)
		testutil.AssertJSONContains(s.T(), rr, "hot", float64(1))
		testutil.AssertJSONContains(s.T(), rr, "cold", float64(1))
	})

	s.Run("bulk archive", func() {
		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/lifecycle/archive",
			map[string]any{"article_ids": []string{hot.ID.String()}, "reason": "manual"})
		rr := testutil.DoRequest(s.router, testutil.AsRole(req, domain.RoleEditor))
		testutil.AssertStatusOK(s.T(), rr)
		testutil.AssertJSONContains(s.T(), rr, "archived", float64(1))
	})

	s.Run("bulk restore", func() {
		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/lifecycle/restore",
			map[string]any{"article_ids": []string{hot.ID.String()}})
		rr := testutil.DoRequest(s.router, testutil.AsRole(req, domain.RoleEditor))
		testutil.AssertStatusOK(s.T(), rr)
		testutil.AssertJSONContains(s.T(), rr, "restored", float64(1))
	})
}

func (s *HandlerSuite) TestSweepEndpoints() {
	s.seedPublished("due-for-archive", 91, articlemodels.StageHot)

	s.Run("anonymous cannot trigger sweeps", func() {
		req := testutil.NewRequest(s.T(), http.MethodPost, "/lifecycle/sweep/hot-to-archive")
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatusAndError(s.T(), rr, http.StatusUnauthorized, "unauthorized")
	})

	s.Run("editor cannot trigger sweeps", func() {
		req := testutil.NewRequest(s.T(), http.MethodPost, "/lifecycle/sweep/hot-to-archive")
		rr := testutil.DoRequest(s.router, testutil.AsRole(req, domain.RoleEditor))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusForbidden, "forbidden")
	})

	s.Run("superadmin runs the sweep and gets a report", func() {
		req := testutil.NewRequest(s.T(), http.MethodPost, "/lifecycle/sweep/hot-to-archive")
		rr := testutil.DoRequest(s.router, testutil.AsRole(req, domain.RoleSuperadmin))
		testutil.AssertStatusOK(s.T(), rr)
		report := testutil.UnmarshalResponse[service.SweepReport](s.T(), rr)
		s.Equal(int64(1), report.Moved)
	})
}
