// Package handler exposes the audit trail over HTTP. All routes require
// superadmin; the trail exists for accountability, not public consumption.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"newsdesk/internal/audit"
	"newsdesk/pkg/domain"
	dErrors "newsdesk/pkg/domain-errors"
	"newsdesk/pkg/platform/httputil"
	"newsdesk/pkg/requestcontext"
)

const maxListLimit = 200

// Store is the read side of the audit trail.
type Store interface {
	List(ctx context.Context, q audit.ListQuery) ([]audit.Entry, error)
}

// Handler wires audit trail endpoints to the store.
type Handler struct {
	store  Store
	logger *slog.Logger
}

// New constructs an audit handler with its dependencies.
func New(store Store, logger *slog.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

// Register mounts audit endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/audit", h.HandleList)
}

// HandleList handles GET /audit requests with optional actor, action, and
// target filters.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actor := requestcontext.Actor(ctx)
	if actor == nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "authentication required"))
		return
	}
	if !actor.IsSuperadmin() {
		httputil.WriteError(w, dErrors.New(dErrors.CodeForbidden, "viewing the audit trail requires superadmin role"))
		return
	}

	q := audit.ListQuery{
		Action:     audit.Action(r.URL.Query().Get("action")),
		TargetType: audit.TargetType(r.URL.Query().Get("target_type")),
		TargetID:   r.URL.Query().Get("target_id"),
		Limit:      50,
	}

	if raw := r.URL.Query().Get("actor_id"); raw != "" {
		actorID, err := domain.ParseUserID(raw)
		if err != nil {
			httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid actor_id"))
			return
		}
		q.Actor = &actorID
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > maxListLimit {
			httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "limit must be between 1 and 200"))
			return
		}
		q.Limit = limit
	}

	entries, err := h.store.List(ctx, q)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list audit entries",
			"request_id", requestcontext.RequestID(ctx), "error", err)
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list audit entries"))
		return
	}
	if entries == nil {
		entries = []audit.Entry{}
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]any{"entries": entries})
}
