package middleware

import (
	"log/slog"
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"newsdesk/pkg/requestcontext"
)

// Logger emits one structured line per request with status, duration, and
// the acting user when present.
func Logger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			ctx := r.Context()
			attrs := []any{
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", requestcontext.RequestID(ctx),
				"client_ip", requestcontext.ClientIP(ctx),
			}
			if actor := requestcontext.Actor(ctx); actor != nil {
				attrs = append(attrs, "actor_id", actor.ID, "actor_role", actor.Role)
			}

			if ww.Status() >= http.StatusInternalServerError {
				logger.ErrorContext(ctx, "request completed", attrs...)
				return
			}
			logger.InfoContext(ctx, "request completed", attrs...)
		})
	}
}
