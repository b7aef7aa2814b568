package handler

import (
	"context"
	"net/http"
)

// contextKey keeps our context keys from colliding with other packages.
type contextKey string

const sessionContextKey = contextKey("session")

// contextSetSession returns a copy of the request carrying s.
func (h *Handler) contextSetSession(r *http.Request, s *Session) *http.Request {
	ctx := context.WithValue(r.Context(), sessionContextKey, s)
	return r.WithContext(ctx)
}

// contextGetSession retrieves the session set by the session middleware. A missing
// session means a route was registered without that middleware.
func (h *Handler) contextGetSession(r *http.Request) *Session {
	s, ok := r.Context().Value(sessionContextKey).(*Session)
	if !ok {
		panic("missing session value in request context")
	}
	return s
}
