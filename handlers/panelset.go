package handlers

import (
	"net/http"

	"github.com/andrewpaige1/panelverse-api/utils"
)

// POST /api/panel-sets
func (h *Handler) CreatePanelSet(w http.ResponseWriter, r *http.Request) {
	session, ok := utils.GetSession(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req struct {
		Name *string `json:"name"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, "CreatePanelSet", err)
		return
	}

	set, err := h.Service.CreatePanelSet(r.Context(), session.UserID, req.Name)
	if err != nil {
		writeError(w, "CreatePanelSet", err)
		return
	}
	writeJSON(w, http.StatusOK, set)
}

// GET /api/panel-sets/{panelSetID}
func (h *Handler) GetPanelSet(w http.ResponseWriter, r *http.Request) {
	panelSetID, err := pathID(r, "panelSetID")
	if err != nil {
		writeError(w, "GetPanelSet", err)
		return
	}

	set, err := h.Service.GetPanelSet(r.Context(), panelSetID)
	if err != nil {
		writeError(w, "GetPanelSet", err)
		return
	}
	writeJSON(w, http.StatusOK, set)
}

// GET /api/panel-sets/{panelSetID}/panels
func (h *Handler) GetPanelsForPanelSet(w http.ResponseWriter, r *http.Request) {
	panelSetID, err := pathID(r, "panelSetID")
	if err != nil {
		writeError(w, "GetPanelsForPanelSet", err)
		return
	}

	panels, err := h.Service.ListPanelsByPanelSet(r.Context(), panelSetID)
	if err != nil {
		writeError(w, "GetPanelsForPanelSet", err)
		return
	}
	writeJSON(w, http.StatusOK, panels)
}

// GET /api/panel-sets/{panelSetID}/tree
func (h *Handler) GetTree(w http.ResponseWriter, r *http.Request) {
	panelSetID, err := pathID(r, "panelSetID")
	if err != nil {
		writeError(w, "GetTree", err)
		return
	}

	nodes, err := h.Service.Tree(r.Context(), panelSetID)
	if err != nil {
		writeError(w, "GetTree", err)
		return
	}
	writeJSON(w, http.StatusOK, nodes)
}

// GET /api/panel-sets/trunks
func (h *Handler) GetTrunks(w http.ResponseWriter, r *http.Request) {
	sets, err := h.Service.ListTrunks(r.Context())
	if err != nil {
		writeError(w, "GetTrunks", err)
		return
	}
	writeJSON(w, http.StatusOK, sets)
}
