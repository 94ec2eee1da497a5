package handlers

import (
	"log"
	"net/http"

	"github.com/andrewpaige1/panelverse-api/auth"
	"github.com/andrewpaige1/panelverse-api/middleware"
	"github.com/andrewpaige1/panelverse-api/models"
	"github.com/andrewpaige1/panelverse-api/utils"
)

type sessionResponse struct {
	Session *models.Session `json:"session"`
	User    models.User     `json:"user"`
	Token   string          `json:"token,omitempty"`
}

// POST /api/sessions
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, "CreateSession", err)
		return
	}

	session, err := h.Service.CreateSession(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, "CreateSession", err)
		return
	}

	tokenString, err := auth.CreateToken(h.JWTSecret, session.ID.String(), h.SessionTTL)
	if err != nil {
		log.Println("CreateSession: token generation error:", err)
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    tokenString,
		Path:     "/",
		Domain:   h.Env.Domain,
		HttpOnly: true,
		Secure:   h.Env.CookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(h.SessionTTL.Seconds()),
	})

	log.Printf("CreateSession: user %s logged in", session.UserID)
	writeJSON(w, http.StatusOK, sessionResponse{Session: session, User: session.User, Token: tokenString})
}

// GET /api/sessions/current
func (h *Handler) GetCurrentSession(w http.ResponseWriter, r *http.Request) {
	session, ok := utils.GetSession(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{Session: session, User: session.User})
}
