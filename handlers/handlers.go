package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/andrewpaige1/panelverse-api/config"
	"github.com/andrewpaige1/panelverse-api/services"
)

type Handler struct {
	Service    *services.Service
	JWTSecret  []byte
	SessionTTL time.Duration
	Env        config.Environment
}

func NewHandler(svc *services.Service, jwtSecret []byte, sessionTTL time.Duration, env config.Environment) *Handler {
	return &Handler{Service: svc, JWTSecret: jwtSecret, SessionTTL: sessionTTL, Env: env}
}

// RegisterRoutes mounts every endpoint on mux. requireSession guards the routes that act as a user.
func (h *Handler) RegisterRoutes(mux *http.ServeMux, requireSession func(http.HandlerFunc) http.HandlerFunc) {
	// Users
	mux.HandleFunc("POST /api/users", h.CreateUser)
	mux.HandleFunc("GET /api/users/{userID}", h.GetUser)
	mux.HandleFunc("GET /api/users/{userID}/panel-sets", h.GetPanelSetsForUser)

	// Sessions
	mux.HandleFunc("POST /api/sessions", h.CreateSession)
	mux.HandleFunc("GET /api/sessions/current", requireSession(h.GetCurrentSession))

	// Panel sets
	mux.HandleFunc("GET /api/panel-sets/trunks", h.GetTrunks)
	mux.HandleFunc("POST /api/panel-sets", requireSession(h.CreatePanelSet))
	mux.HandleFunc("GET /api/panel-sets/{panelSetID}", h.GetPanelSet)
	mux.HandleFunc("GET /api/panel-sets/{panelSetID}/panels", h.GetPanelsForPanelSet)
	mux.HandleFunc("GET /api/panel-sets/{panelSetID}/tree", h.GetTree)

	// Panels
	mux.HandleFunc("POST /api/panels", requireSession(h.CreatePanel))
	mux.HandleFunc("GET /api/panels/{panelID}", h.GetPanel)
	mux.HandleFunc("GET /api/panels/{panelID}/hooks", h.GetHooksForPanel)
	mux.HandleFunc("GET /api/panels/{panelID}/image", h.GetPanelImage)

	// Hooks
	mux.HandleFunc("POST /api/hooks", requireSession(h.CreateHook))
	mux.HandleFunc("GET /api/hooks/{hookID}", h.GetHook)
	mux.HandleFunc("PUT /api/hooks/{hookID}/next-panel-set", requireSession(h.AddSetToHook))

	// Publish
	mux.HandleFunc("POST /api/publish", requireSession(h.Publish))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("writeJSON: failed to encode response: %v", err)
	}
}

// writeError maps a service error kind to its HTTP status.
func writeError(w http.ResponseWriter, op string, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrConflict):
		status = http.StatusConflict
	}

	log.Printf("%s: %v", op, err)
	if status == http.StatusInternalServerError {
		http.Error(w, "Internal server error", status)
		return
	}
	http.Error(w, err.Error(), status)
}

func decodeBody(r *http.Request, v any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		return fmt.Errorf("%w: invalid request body: %v", services.ErrValidation, err)
	}
	return nil
}

func pathID(r *http.Request, name string) (uint, error) {
	raw := r.PathValue(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%w: %s %q is not a valid id", services.ErrValidation, name, raw)
	}
	return uint(id), nil
}

func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	raw := r.PathValue(name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s %q is not a valid id", services.ErrValidation, name, raw)
	}
	return id, nil
}
