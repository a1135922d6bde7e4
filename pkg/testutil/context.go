package testutil

import (
	"net/http"

	"newsdesk/pkg/domain"
	"newsdesk/pkg/requestcontext"
)

// WithActor attaches a staff actor to the request context.
// This simulates what the auth middleware would do for authenticated requests.
func WithActor(req *http.Request, actor *domain.Actor) *http.Request {
	ctx := requestcontext.WithActor(req.Context(), actor)
	return req.WithContext(ctx)
}

// AsRole attaches a fresh actor with the given role to the request context.
func AsRole(req *http.Request, role domain.Role) *http.Request {
	return WithActor(req, &domain.Actor{
		ID:   domain.NewUserID(),
		Name: "test-" + role.String(),
		Role: role,
	})
}
