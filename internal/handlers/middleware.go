package handlers

import (
	"context"
	"net/http"
	"strings"

	"gitlab.com/classhub-2025.net/internal/core/services/session"
	"gitlab.com/classhub-2025.net/internal/domain"
	"gitlab.com/classhub-2025.net/internal/handlers/response"
)

type contextKey string

const sessionContextKey contextKey = "userSession"

type MiddlewareProvider struct {
	sessionService session.ISessionService
}

func New(sessionService session.ISessionService) *MiddlewareProvider {
	return &MiddlewareProvider{
		sessionService: sessionService,
	}
}

// SessionMiddleware resolves the bearer token to a user session before the
// handler runs. Stale tokens (superseded by a newer login) fail here.
func (m *MiddlewareProvider) SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.WriteError(w, response.ErrorMessage{
				Message:    "Authorization header missing",
				StatusCode: http.StatusUnauthorized,
			})
			return
		}

		// Extract token from "Bearer <token>"
		token := strings.TrimPrefix(authHeader, "Bearer ")
		sess, err := m.sessionService.Verify(r.Context(), token)
		if err != nil {
			response.WriteTypedError(w, err)
			return
		}

		ctx := context.WithValue(r.Context(), sessionContextKey, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionFromContext returns the session injected by SessionMiddleware.
func SessionFromContext(ctx context.Context) (*domain.UserSession, bool) {
	sess, ok := ctx.Value(sessionContextKey).(*domain.UserSession)
	return sess, ok
}

// BearerToken extracts the raw bearer token from a request, for handlers
// that verify the session themselves as part of a mutation.
func BearerToken(r *http.Request) string {
	return strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
}
