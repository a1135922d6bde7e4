// Package http assembles the middleware chain and every feature router
// into the server's single handler.
package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	articlehandler "newsdesk/internal/article/handler"
	audithandler "newsdesk/internal/audit/handler"
	lifecyclehandler "newsdesk/internal/lifecycle/handler"
	"newsdesk/internal/platform/middleware"
	"newsdesk/pkg/platform/httputil"
)

// Registrar mounts a feature's routes on the router.
type Registrar interface {
	Register(r chi.Router)
}

// HealthChecker reports whether a backing service is reachable.
type HealthChecker func(ctx context.Context) error

// Deps carries everything the router needs.
type Deps struct {
	Articles  *articlehandler.Handler
	Lifecycle *lifecyclehandler.Handler
	Audit     *audithandler.Handler

	Auth   middleware.ActorValidator
	Logger *slog.Logger

	// Health checks by dependency name; nil checks are skipped.
	Health map[string]HealthChecker
}

// NewRouter wires the middleware chain and all feature endpoints.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RequestTime)
	r.Use(middleware.ClientMetadata)
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.Logger(deps.Logger))

	r.Get("/healthz", handleHealth(deps.Health))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(api chi.Router) {
		api.Use(middleware.OptionalAuth(deps.Auth, deps.Logger))

		deps.Articles.Register(api)
		deps.Lifecycle.Register(api)
		deps.Audit.Register(api)
	})

	return r
}

func handleHealth(checks map[string]HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]string{}
		healthy := true
		for name, check := range checks {
			if check == nil {
				continue
			}
			if err := check(r.Context()); err != nil {
				status[name] = err.Error()
				healthy = false
				continue
			}
			status[name] = "ok"
		}

		code := http.StatusOK
		if !healthy {
			code = http.StatusServiceUnavailable
		}
		httputil.WriteJSON(w, code, map[string]any{"healthy": healthy, "checks": status})
	}
}
