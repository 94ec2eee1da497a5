package handlers

import (
	"net/http"

	"github.com/andrewpaige1/panelverse-api/services"
)

// POST /api/panels
func (h *Handler) CreatePanel(w http.ResponseWriter, r *http.Request) {
	var req services.CreatePanelInput
	if err := decodeBody(r, &req); err != nil {
		writeError(w, "CreatePanel", err)
		return
	}

	panel, err := h.Service.CreatePanel(r.Context(), req)
	if err != nil {
		writeError(w, "CreatePanel", err)
		return
	}
	writeJSON(w, http.StatusOK, panel)
}

func (h *Handler) GetPanel(w http.ResponseWriter, r *http.Request) {
	panelID, err := pathID(r, "panelID")
	if err != nil {
		writeError(w, "GetPanel", err)
		return
	}

	panel, err := h.Service.GetPanel(r.Context(), panelID)
	if err != nil {
		writeError(w, "GetPanel", err)
		return
	}
	writeJSON(w, http.StatusOK, panel)
}

// GET /api/panels/{panelID}/hooks
func (h *Handler) GetHooksForPanel(w http.ResponseWriter, r *http.Request) {
	panelID, err := pathID(r, "panelID")
	if err != nil {
		writeError(w, "GetHooksForPanel", err)
		return
	}

	hooks, err := h.Service.ListHooksByPanel(r.Context(), panelID)
	if err != nil {
		writeError(w, "GetHooksForPanel", err)
		return
	}
	writeJSON(w, http.StatusOK, hooks)
}

// GET /api/panels/{panelID}/image redirects to a signed URL for the panel image.
func (h *Handler) GetPanelImage(w http.ResponseWriter, r *http.Request) {
	panelID, err := pathID(r, "panelID")
	if err != nil {
		writeError(w, "GetPanelImage", err)
		return
	}

	signed, err := h.Service.PanelImageURL(r.Context(), panelID)
	if err != nil {
		writeError(w, "GetPanelImage", err)
		return
	}
	http.Redirect(w, r, signed, http.StatusFound)
}
