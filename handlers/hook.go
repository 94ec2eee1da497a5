package handlers

import (
	"net/http"

	"github.com/andrewpaige1/panelverse-api/services"
)

// POST /api/hooks
func (h *Handler) CreateHook(w http.ResponseWriter, r *http.Request) {
	var req services.CreateHookInput
	if err := decodeBody(r, &req); err != nil {
		writeError(w, "CreateHook", err)
		return
	}

	hook, err := h.Service.CreateHook(r.Context(), req)
	if err != nil {
		writeError(w, "CreateHook", err)
		return
	}
	writeJSON(w, http.StatusOK, hook)
}

func (h *Handler) GetHook(w http.ResponseWriter, r *http.Request) {
	hookID, err := pathID(r, "hookID")
	if err != nil {
		writeError(w, "GetHook", err)
		return
	}

	hook, err := h.Service.GetHook(r.Context(), hookID)
	if err != nil {
		writeError(w, "GetHook", err)
		return
	}
	writeJSON(w, http.StatusOK, hook)
}

// PUT /api/hooks/{hookID}/next-panel-set
func (h *Handler) AddSetToHook(w http.ResponseWriter, r *http.Request) {
	hookID, err := pathID(r, "hookID")
	if err != nil {
		writeError(w, "AddSetToHook", err)
		return
	}

	var req struct {
		PanelSetID uint `json:"panel_set_id"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, "AddSetToHook", err)
		return
	}
	if req.PanelSetID == 0 {
		http.Error(w, "panel_set_id is required", http.StatusBadRequest)
		return
	}

	hook, err := h.Service.AddSetToHook(r.Context(), hookID, req.PanelSetID)
	if err != nil {
		writeError(w, "AddSetToHook", err)
		return
	}
	writeJSON(w, http.StatusOK, hook)
}
