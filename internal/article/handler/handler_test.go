package handler_test

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"

	"newsdesk/internal/article/handler"
	"newsdesk/internal/article/models"
	"newsdesk/internal/article/service"
	"newsdesk/internal/article/store"
	"newsdesk/pkg/domain"
	"newsdesk/pkg/testutil"
)

// HandlerSuite drives the article routes end to end against the real
// service and the in-memory store, the same way the router wires them.
type HandlerSuite struct {
	suite.Suite
	router chi.Router
	writer *domain.Actor
	editor *domain.Actor
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupTest() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.New(store.NewInMemory(), service.WithLogger(logger))

	s.router = chi.NewRouter()
	handler.New(svc, logger).Register(s.router)

	s.writer = &domain.Actor{ID: domain.NewUserID(), Name: "wren", Role: domain.RoleWriter}
	s.editor = &domain.Actor{ID: domain.NewUserID(), Name: "ed", Role: domain.RoleEditor}
}

func createPayload(title string) map[string]any {
	return map[string]any{
		"title":          title,
		"content":        "Body copy long enough to matter.",
		"featured_image": "https://img.example/lead.jpg",
	}
}

func (s *HandlerSuite) create(actor *domain.Actor, title string) *models.Article {
	req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/articles", createPayload(title))
	rr := testutil.DoRequest(s.router, testutil.WithActor(req, actor))
	testutil.AssertStatus(s.T(), rr, http.StatusCreated)
	return testutil.UnmarshalResponse[models.Article](s.T(), rr)
}

func (s *HandlerSuite) post(actor *domain.Actor, path string) *models.Article {
	req := testutil.NewRequest(s.T(), http.MethodPost, path)
	rr := testutil.DoRequest(s.router, testutil.WithActor(req, actor))
	testutil.AssertStatusOK(s.T(), rr)
	return testutil.UnmarshalResponse[models.Article](s.T(), rr)
}

func (s *HandlerSuite) TestCreate() {
	s.Run("writer creates a draft", func() {
		article := s.create(s.writer, "Council Approves Budget")
		s.Equal("council-approves-budget", article.Slug)
		s.Equal(models.StatusDraft, article.Status)
		s.Equal(s.writer.ID, article.Author)
	})

	s.Run("anonymous is rejected", func() {
		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/articles", createPayload("Nope"))
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatusAndError(s.T(), rr, http.StatusUnauthorized, "unauthorized")
	})

	s.Run("malformed body is a bad request", func() {
		req := testutil.NewRequestWithBody(s.T(), http.MethodPost, "/articles", "{not json")
		rr := testutil.DoRequest(s.router, testutil.WithActor(req, s.writer))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "bad_request")
	})

	s.Run("missing fields fail validation", func() {
		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/articles", map[string]any{"title": "No body"})
		rr := testutil.DoRequest(s.router, testutil.WithActor(req, s.writer))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusUnprocessableEntity, "validation_failed")
	})

	s.Run("duplicate slug conflicts", func() {
		s.create(s.writer, "Unique Headline")
		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/articles", createPayload("Unique Headline"))
		rr := testutil.DoRequest(s.router, testutil.WithActor(req, s.writer))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusConflict, "conflict")
	})
}

func (s *HandlerSuite) TestWorkflowRoutes() {
	article := s.create(s.writer, "Harbor Expansion Plan")
	base := "/articles/" + article.ID.String()

	submitted := s.post(s.writer, base+"/submit")
	s.Equal(models.StatusReview, submitted.Status)

	approved := s.post(s.editor, base+"/approve")
	s.Equal(models.StatusPublished, approved.Status)
	s.Require().NotNil(approved.PublishedAt)

	toggled := s.post(s.editor, base+"/toggle-publish")
	s.Equal(models.StatusDraft, toggled.Status)

	s.Run("writer cannot approve", func() {
		other := s.create(s.writer, "Second Piece")
		s.post(s.writer, "/articles/"+other.ID.String()+"/submit")

		req := testutil.NewRequest(s.T(), http.MethodPost, "/articles/"+other.ID.String()+"/approve")
		rr := testutil.DoRequest(s.router, testutil.WithActor(req, s.writer))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusForbidden, "forbidden")
	})
}

func (s *HandlerSuite) TestReject() {
	article := s.create(s.writer, "Contested Claim")
	base := "/articles/" + article.ID.String()
	s.post(s.writer, base+"/submit")

	s.Run("with a reason body", func() {
		req := testutil.NewJSONRequest(s.T(), http.MethodPost, base+"/reject",
			map[string]string{"reason": "needs a second source"})
		rr := testutil.DoRequest(s.router, testutil.WithActor(req, s.editor))
		testutil.AssertStatusOK(s.T(), rr)
		got := testutil.UnmarshalResponse[models.Article](s.T(), rr)
		s.Equal(models.StatusDraft, got.Status)
	})

	s.Run("a bare POST also rejects", func() {
		s.post(s.writer, base+"/submit")
		req := testutil.NewRequest(s.T(), http.MethodPost, base+"/reject")
		rr := testutil.DoRequest(s.router, testutil.WithActor(req, s.editor))
		testutil.AssertStatusOK(s.T(), rr)
	})
}

func (s *HandlerSuite) TestUpdate() {
	article := s.create(s.writer, "Original Title")

	req := testutil.NewJSONRequest(s.T(), http.MethodPut, "/articles/"+article.ID.String(),
		map[string]string{"title": "Sharper Title"})
	rr := testutil.DoRequest(s.router, testutil.WithActor(req, s.writer))
	testutil.AssertStatusOK(s.T(), rr)

	got := testutil.UnmarshalResponse[models.Article](s.T(), rr)
	s.Equal("Sharper Title", got.Title)
	s.Equal("sharper-title", got.Slug)
}

func (s *HandlerSuite) TestReadRoutes() {
	article := s.create(s.writer, "Ferry Timetable Changes")
	base := "/articles/" + article.ID.String()
	s.post(s.writer, base+"/submit")
	s.post(s.editor, base+"/approve")

	s.Run("guest list sees only published", func() {
		s.create(s.writer, "Unfinished Draft")
		rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/articles?status=all"))
		testutil.AssertStatusOK(s.T(), rr)
		result := testutil.UnmarshalResponse[service.ListResult](s.T(), rr)
		s.Equal(int64(1), result.Total)
		s.Equal("ferry-timetable-changes", result.Items[0].Slug)
	})

	s.Run("fetch by slug counts a view", func() {
		rr := testutil.DoRequest(s.router,
			testutil.NewRequest(s.T(), http.MethodGet, "/articles/slug/ferry-timetable-changes"))
		testutil.AssertStatusOK(s.T(), rr)
		got := testutil.UnmarshalResponse[models.Article](s.T(), rr)
		s.Equal(int64(1), got.Views)
	})

	s.Run("get by id requires auth", func() {
		rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, base))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusUnauthorized, "unauthorized")
	})

	s.Run("invalid article id is a bad request", func() {
		req := testutil.NewRequest(s.T(), http.MethodGet, "/articles/not-a-uuid")
		rr := testutil.DoRequest(s.router, testutil.AsRole(req, domain.RoleEditor))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "bad_request")
	})

	s.Run("unknown id is not found", func() {
		req := testutil.NewRequest(s.T(), http.MethodGet, "/articles/"+domain.NewArticleID().String())
		rr := testutil.DoRequest(s.router, testutil.AsRole(req, domain.RoleEditor))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusNotFound, "not_found")
	})

	s.Run("bad boolean filter is a bad request", func() {
		rr := testutil.DoRequest(s.router,
			testutil.NewRequest(s.T(), http.MethodGet, "/articles?trending=maybe"))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "bad_request")
	})

	s.Run("stats require auth", func() {
		rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/articles/stats"))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusUnauthorized, "unauthorized")

		req := testutil.NewRequest(s.T(), http.MethodGet, "/articles/stats")
		rr = testutil.DoRequest(s.router, testutil.WithActor(req, s.editor))
		testutil.AssertStatusOK(s.T(), rr)
		testutil.AssertJSONContains(s.T(), rr, "published", float64(1))
	})
}

func (s *HandlerSuite) TestDeleteRoutes() {
	super := &domain.Actor{ID: domain.NewUserID(), Name: "root", Role: domain.RoleSuperadmin}
	article := s.create(s.writer, "Retracted Story")
	base := "/articles/" + article.ID.String()

	s.Run("soft delete then restore", func() {
		req := testutil.NewRequest(s.T(), http.MethodDelete, base)
		rr := testutil.DoRequest(s.router, testutil.WithActor(req, super))
		testutil.AssertStatusOK(s.T(), rr)
		got := testutil.UnmarshalResponse[models.Article](s.T(), rr)
		s.True(got.IsDeleted)

		restored := s.post(super, base+"/restore")
		s.False(restored.IsDeleted)
		s.Equal(models.StatusDraft, restored.Status)
	})

	s.Run("hard delete returns no content", func() {
		req := testutil.NewRequest(s.T(), http.MethodDelete, base+"/permanent")
		rr := testutil.DoRequest(s.router, testutil.WithActor(req, super))
		testutil.AssertStatus(s.T(), rr, http.StatusNoContent)

		lookup := testutil.NewRequest(s.T(), http.MethodGet, base)
		rr = testutil.DoRequest(s.router, testutil.WithActor(lookup, super))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusNotFound, "not_found")
	})
}
