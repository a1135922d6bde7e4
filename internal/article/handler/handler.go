// Package handler wires the article endpoints to the service. Route-level
// auth only distinguishes anonymous from authenticated; role checks belong
// to the domain guards.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"newsdesk/internal/article/models"
	"newsdesk/internal/article/service"
	"newsdesk/internal/article/store"
	"newsdesk/pkg/domain"
	dErrors "newsdesk/pkg/domain-errors"
	"newsdesk/pkg/platform/httputil"
	"newsdesk/pkg/requestcontext"
)

// Service defines the article operations the handler depends on.
type Service interface {
	Create(ctx context.Context, req models.CreateArticleRequest) (*models.Article, error)
	Update(ctx context.Context, id domain.ArticleID, req models.UpdateArticleRequest) (*models.Article, error)
	Submit(ctx context.Context, id domain.ArticleID) (*models.Article, error)
	Approve(ctx context.Context, id domain.ArticleID) (*models.Article, error)
	Reject(ctx context.Context, id domain.ArticleID, reason string) (*models.Article, error)
	TogglePublish(ctx context.Context, id domain.ArticleID) (*models.Article, error)
	SoftDelete(ctx context.Context, id domain.ArticleID) (*models.Article, error)
	Restore(ctx context.Context, id domain.ArticleID) (*models.Article, error)
	HardDelete(ctx context.Context, id domain.ArticleID) error
	Archive(ctx context.Context, id domain.ArticleID) (*models.Article, error)
	RestoreStage(ctx context.Context, id domain.ArticleID) (*models.Article, error)

	List(ctx context.Context, params service.ListParams) (*service.ListResult, error)
	GetBySlug(ctx context.Context, slug string) (*models.Article, error)
	GetByID(ctx context.Context, id domain.ArticleID) (*models.Article, error)
	Related(ctx context.Context, id domain.ArticleID) ([]*models.Article, error)
	Stats(ctx context.Context) (store.Stats, error)
}

// Handler wires article endpoints to the article service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs an article handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts article endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/articles", func(r chi.Router) {
		r.Get("/", h.HandleList)
		r.Post("/", h.HandleCreate)
		r.Get("/stats", h.HandleStats)
		r.Get("/slug/{slug}", h.HandleGetBySlug)

		r.Route("/{articleID}", func(r chi.Router) {
			r.Get("/", h.HandleGetByID)
			r.Put("/", h.HandleUpdate)
			r.Delete("/", h.HandleSoftDelete)
			r.Get("/related", h.HandleRelated)
			r.Post("/submit", h.HandleSubmit)
			r.Post("/approve", h.HandleApprove)
			r.Post("/reject", h.HandleReject)
			r.Post("/toggle-publish", h.HandleTogglePublish)
			r.Post("/restore", h.HandleRestore)
			r.Delete("/permanent", h.HandleHardDelete)
			r.Post("/archive", h.HandleArchive)
			r.Post("/restore-stage", h.HandleRestoreStage)
		})
	})
}

func articleID(r *http.Request) (domain.ArticleID, error) {
	id, err := domain.ParseArticleID(chi.URLParam(r, "articleID"))
	if err != nil {
		return domain.ArticleID{}, dErrors.New(dErrors.CodeBadRequest, "invalid article id")
	}
	return id, nil
}

func parseBoolFilter(raw string) (*bool, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, dErrors.New(dErrors.CodeBadRequest, "invalid boolean filter")
	}
	return &v, nil
}

// HandleList handles GET /articles requests.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	trending, err := parseBoolFilter(q.Get("trending"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	featured, err := parseBoolFilter(q.Get("featured"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	params := service.ListParams{
		Status:   q.Get("status"),
		Category: q.Get("category"),
		Tag:      q.Get("tag"),
		Search:   q.Get("search"),
		Trending: trending,
		Featured: featured,
		Stage:    q.Get("stage"),
	}
	params.Page, _ = strconv.Atoi(q.Get("page"))
	params.Limit, _ = strconv.Atoi(q.Get("limit"))

	if raw := q.Get("created_from"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid created_from timestamp"))
			return
		}
		params.CreatedFrom = &t
	}
	if raw := q.Get("created_to"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid created_to timestamp"))
			return
		}
		params.CreatedTo = &t
	}

	result, err := h.service.List(r.Context(), params)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, result)
}

// HandleCreate handles POST /articles requests.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, err := httputil.Decode[models.CreateArticleRequest](r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	article, err := h.service.Create(ctx, req)
	if err != nil {
		h.logger.ErrorContext(ctx, "article creation failed",
			"request_id", requestcontext.RequestID(ctx), "error", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, article)
}

// HandleUpdate handles PUT /articles/{articleID} requests.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := articleID(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, err := httputil.Decode[models.UpdateArticleRequest](r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	article, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, article)
}

// HandleGetBySlug handles GET /articles/slug/{slug} requests.
func (h *Handler) HandleGetBySlug(w http.ResponseWriter, r *http.Request) {
	article, err := h.service.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, article)
}

// HandleGetByID handles GET /articles/{articleID} requests.
func (h *Handler) HandleGetByID(w http.ResponseWriter, r *http.Request) {
	id, err := articleID(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	article, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, article)
}

// HandleRelated handles GET /articles/{articleID}/related requests.
func (h *Handler) HandleRelated(w http.ResponseWriter, r *http.Request) {
	id, err := articleID(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	related, err := h.service.Related(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"related": related})
}

// HandleStats handles GET /articles/stats requests.
func (h *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, stats)
}

func (h *Handler) handleTransition(w http.ResponseWriter, r *http.Request,
	transition func(context.Context, domain.ArticleID) (*models.Article, error),
) {
	id, err := articleID(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	article, err := transition(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, article)
}

// HandleSubmit handles POST /articles/{articleID}/submit requests.
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	h.handleTransition(w, r, h.service.Submit)
}

// HandleApprove handles POST /articles/{articleID}/approve requests.
func (h *Handler) HandleApprove(w http.ResponseWriter, r *http.Request) {
	h.handleTransition(w, r, h.service.Approve)
}

// RejectRequest carries the optional rejection reason.
type RejectRequest struct {
	Reason string `json:"reason,omitempty"`
}

// HandleReject handles POST /articles/{articleID}/reject requests.
func (h *Handler) HandleReject(w http.ResponseWriter, r *http.Request) {
	id, err := articleID(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	// The body is optional; a bare POST rejects without a reason.
	var req RejectRequest
	if r.Body != nil && r.ContentLength != 0 {
		req, err = httputil.Decode[RejectRequest](r)
		if err != nil {
			httputil.WriteError(w, err)
			return
		}
	}

	article, err := h.service.Reject(r.Context(), id, req.Reason)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, article)
}

// HandleTogglePublish handles POST /articles/{articleID}/toggle-publish requests.
func (h *Handler) HandleTogglePublish(w http.ResponseWriter, r *http.Request) {
	h.handleTransition(w, r, h.service.TogglePublish)
}

// HandleSoftDelete handles DELETE /articles/{articleID} requests.
func (h *Handler) HandleSoftDelete(w http.ResponseWriter, r *http.Request) {
	h.handleTransition(w, r, h.service.SoftDelete)
}

// HandleRestore handles POST /articles/{articleID}/restore requests.
func (h *Handler) HandleRestore(w http.ResponseWriter, r *http.Request) {
	h.handleTransition(w, r, h.service.Restore)
}

// HandleHardDelete handles DELETE /articles/{articleID}/permanent requests.
func (h *Handler) HandleHardDelete(w http.ResponseWriter, r *http.Request) {
	id, err := articleID(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := h.service.HardDelete(r.Context(), id); err != nil {
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleArchive handles POST /articles/{articleID}/archive requests.
func (h *Handler) HandleArchive(w http.ResponseWriter, r *http.Request) {
	h.handleTransition(w, r, h.service.Archive)
}

// HandleRestoreStage handles POST /articles/{articleID}/restore-stage requests.
func (h *Handler) HandleRestoreStage(w http.ResponseWriter, r *http.Request) {
	h.handleTransition(w, r, h.service.RestoreStage)
}
