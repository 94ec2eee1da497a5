package middleware

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/andrewpaige1/panelverse-api/auth"
	"github.com/andrewpaige1/panelverse-api/services"
	"github.com/andrewpaige1/panelverse-api/utils"
)

// SessionCookie is the cookie carrying the signed session token.
const SessionCookie = "session_token"

// RequireSession resolves the session token from the cookie or a bearer header
// and attaches the live session, with its user, to the request context.
func RequireSession(svc *services.Service, secretKey []byte) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			tokenString := tokenFromRequest(r)
			if tokenString == "" {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			subject, err := auth.VerifyToken(secretKey, tokenString)
			if err != nil {
				log.Printf("RequireSession: invalid token: %v", err)
				http.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}
			sessionID, err := uuid.Parse(subject)
			if err != nil {
				http.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			session, err := svc.GetSession(r.Context(), sessionID)
			if err != nil {
				if errors.Is(err, services.ErrNotFound) {
					// Replaced by a newer login.
					http.Error(w, "Session expired", http.StatusUnauthorized)
					return
				}
				log.Printf("RequireSession: failed to load session %s: %v", sessionID, err)
				http.Error(w, "Internal server error", http.StatusInternalServerError)
				return
			}

			next.ServeHTTP(w, r.WithContext(utils.WithSession(r.Context(), session)))
		}
	}
}

func tokenFromRequest(r *http.Request) string {
	if cookie, err := r.Cookie(SessionCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	header := r.Header.Get("Authorization")
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}
