// Package handler exposes the lifecycle admin endpoints: the config
// singleton, the stage dashboard, manual bulk stage moves, and on-demand
// sweep triggers for external schedulers.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	articlemodels "newsdesk/internal/article/models"
	articlestore "newsdesk/internal/article/store"
	"newsdesk/internal/lifecycle/models"
	"newsdesk/internal/lifecycle/service"
	"newsdesk/pkg/domain"
	dErrors "newsdesk/pkg/domain-errors"
	"newsdesk/pkg/platform/httputil"
	"newsdesk/pkg/requestcontext"
)

// Service defines the lifecycle operations the handler depends on.
type Service interface {
	GetConfig(ctx context.Context) (*models.Config, error)
	UpdateConfig(ctx context.Context, req models.UpdateConfigRequest) (*models.Config, error)
	StageCounts(ctx context.Context) (articlestore.StageCounts, error)
	Archive(ctx context.Context, ids []domain.ArticleID, reason articlemodels.ArchiveReason) (int64, error)
	RestoreStage(ctx context.Context, ids []domain.ArticleID) (int64, error)
	RunHotToArchive(ctx context.Context) (service.SweepReport, error)
	RunArchiveToCold(ctx context.Context) (service.SweepReport, error)
}

// Handler wires lifecycle endpoints to the lifecycle service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a lifecycle handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts lifecycle endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/lifecycle", func(r chi.Router) {
		r.Get("/config", h.HandleGetConfig)
		r.Put("/config", h.HandleUpdateConfig)
		r.Get("/stages", h.HandleStageCounts)
		r.Post("/archive", h.HandleArchive)
		r.Post("/restore", h.HandleRestoreStage)
		r.Post("/sweep/hot-to-archive", h.HandleSweepHotToArchive)
		r.Post("/sweep/archive-to-cold", h.HandleSweepArchiveToCold)
	})
}

// HandleGetConfig handles GET /lifecycle/config requests.
func (h *Handler) HandleGetConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.service.GetConfig(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, cfg)
}

// HandleUpdateConfig handles PUT /lifecycle/config requests.
func (h *Handler) HandleUpdateConfig(w http.ResponseWriter, r *http.Request) {
	req, err := httputil.Decode[models.UpdateConfigRequest](r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	cfg, err := h.service.UpdateConfig(r.Context(), req)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, cfg)
}

// HandleStageCounts handles GET /lifecycle/stages requests.
func (h *Handler) HandleStageCounts(w http.ResponseWriter, r *http.Request) {
	counts, err := h.service.StageCounts(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, counts)
}

// BulkStageRequest carries the ids for a manual bulk stage operation.
type BulkStageRequest struct {
	ArticleIDs []domain.ArticleID `json:"article_ids"`
	Reason     string             `json:"reason,omitempty"`
}

// HandleArchive handles POST /lifecycle/archive requests.
func (h *Handler) HandleArchive(w http.ResponseWriter, r *http.Request) {
	req, err := httputil.Decode[BulkStageRequest](r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	moved, err := h.service.Archive(r.Context(), req.ArticleIDs, articlemodels.ArchiveReason(req.Reason))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"archived": moved})
}

// HandleRestoreStage handles POST /lifecycle/restore requests.
func (h *Handler) HandleRestoreStage(w http.ResponseWriter, r *http.Request) {
	req, err := httputil.Decode[BulkStageRequest](r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	moved, err := h.service.RestoreStage(r.Context(), req.ArticleIDs)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"restored": moved})
}

// Sweep triggers are superadmin-only; the in-process scheduler calls the
// service directly and never passes through here.
func (h *Handler) handleSweep(w http.ResponseWriter, r *http.Request,
	run func(context.Context) (service.SweepReport, error),
) {
	actor := requestcontext.Actor(r.Context())
	if actor == nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "authentication required"))
		return
	}
	if !actor.IsSuperadmin() {
		httputil.WriteError(w, dErrors.New(dErrors.CodeForbidden, "running sweeps requires superadmin role"))
		return
	}

	report, err := run(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "manual sweep failed", "error", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, report)
}

// HandleSweepHotToArchive handles POST /lifecycle/sweep/hot-to-archive requests.
func (h *Handler) HandleSweepHotToArchive(w http.ResponseWriter, r *http.Request) {
	h.handleSweep(w, r, h.service.RunHotToArchive)
}

// HandleSweepArchiveToCold handles POST /lifecycle/sweep/archive-to-cold requests.
func (h *Handler) HandleSweepArchiveToCold(w http.ResponseWriter, r *http.Request) {
	h.handleSweep(w, r, h.service.RunArchiveToCold)
}
