package utils

import (
	"context"
	"net/http"

	"github.com/andrewpaige1/panelverse-api/models"
)

type contextKey string

const sessionKey contextKey = "session"

// WithSession attaches the authenticated session to ctx.
func WithSession(ctx context.Context, session *models.Session) context.Context {
	return context.WithValue(ctx, sessionKey, session)
}

// GetSession returns the session attached by the session middleware.
func GetSession(r *http.Request) (*models.Session, bool) {
	session, ok := r.Context().Value(sessionKey).(*models.Session)
	if !ok || session == nil {
		return nil, false
	}
	return session, true
}
