package handlers

import (
	"net/http"

	"github.com/andrewpaige1/panelverse-api/services"
)

// POST /api/users
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req services.CreateUserInput
	if err := decodeBody(r, &req); err != nil {
		writeError(w, "CreateUser", err)
		return
	}

	user, err := h.Service.CreateUser(r.Context(), req)
	if err != nil {
		writeError(w, "CreateUser", err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathUUID(r, "userID")
	if err != nil {
		writeError(w, "GetUser", err)
		return
	}

	user, err := h.Service.GetUser(r.Context(), userID)
	if err != nil {
		writeError(w, "GetUser", err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// GET /api/users/{userID}/panel-sets
func (h *Handler) GetPanelSetsForUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathUUID(r, "userID")
	if err != nil {
		writeError(w, "GetPanelSetsForUser", err)
		return
	}

	sets, err := h.Service.ListPanelSetsByUser(r.Context(), userID)
	if err != nil {
		writeError(w, "GetPanelSetsForUser", err)
		return
	}
	writeJSON(w, http.StatusOK, sets)
}
