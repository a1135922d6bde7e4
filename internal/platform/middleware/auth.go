// Package middleware holds the HTTP middleware chain: authentication,
// request identity, client metadata, logging, and panic recovery. All
// request-scoped values travel through pkg/requestcontext.
package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"newsdesk/pkg/domain"
	dErrors "newsdesk/pkg/domain-errors"
	"newsdesk/pkg/platform/httputil"
	"newsdesk/pkg/requestcontext"
)

// ActorValidator resolves a bearer token into the acting staff member.
type ActorValidator interface {
	ValidateActor(tokenString string) (*domain.Actor, error)
}

func bearerToken(r *http.Request) (string, bool) {
	return strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
}

// OptionalAuth attaches an actor to the context when a valid bearer token
// is present and lets anonymous requests through untouched. A token that is
// present but invalid is still a hard 401: a stale token should surface,
// not silently downgrade to the guest view.
func OptionalAuth(validator ActorValidator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			actor, err := validator.ValidateActor(token)
			if err != nil {
				logger.WarnContext(r.Context(), "rejected invalid token",
					"request_id", requestcontext.RequestID(r.Context()), "error", err)
				httputil.WriteError(w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(requestcontext.WithActor(r.Context(), actor)))
		})
	}
}

// RequireAuth is OptionalAuth plus a hard requirement that an actor is
// present. Mounted on routes that never serve the public.
func RequireAuth(validator ActorValidator, logger *slog.Logger) func(http.Handler) http.Handler {
	optional := OptionalAuth(validator, logger)
	return func(next http.Handler) http.Handler {
		return optional(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if requestcontext.Actor(r.Context()) == nil {
				httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "authentication required"))
				return
			}
			next.ServeHTTP(w, r)
		}))
	}
}
