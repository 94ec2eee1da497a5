package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"

	"github.com/andrewpaige1/panelverse-api/services"
	"github.com/andrewpaige1/panelverse-api/utils"
)

const (
	maxPublishBytes = 30 << 20
	maxImageBytes   = 10 << 20
)

type publishRequest struct {
	Name   *string                   `json:"name"`
	HookID *uint                     `json:"hook_id"`
	Hooks  []services.HookDescriptor `json:"hooks"`
}

// POST /api/publish
//
// Multipart form: three "images" files in panel order and a "data" field
// holding {"hook_id": ..., "hooks": [{"position": [...], "panel_index": n}, ...]}.
func (h *Handler) Publish(w http.ResponseWriter, r *http.Request) {
	session, ok := utils.GetSession(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxPublishBytes)
	if err := r.ParseMultipartForm(maxPublishBytes); err != nil {
		log.Printf("Publish: invalid multipart form: %v", err)
		http.Error(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	var req publishRequest
	if err := json.Unmarshal([]byte(r.FormValue("data")), &req); err != nil {
		log.Printf("Publish: invalid data field: %v", err)
		http.Error(w, fmt.Sprintf("Invalid data field: %v", err), http.StatusBadRequest)
		return
	}

	images, err := readImages(r.MultipartForm.File["images"])
	if err != nil {
		log.Printf("Publish: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.Service.Publish(r.Context(), services.PublishInput{
		AuthorID: session.UserID,
		Name:     req.Name,
		HookID:   req.HookID,
		Hooks:    req.Hooks,
		Images:   images,
	})
	if err != nil {
		writeError(w, "Publish", err)
		return
	}

	log.Printf("Publish: created panel set %d for user %s", result.PanelSetID, session.UserID)
	writeJSON(w, http.StatusOK, result)
}

func readImages(files []*multipart.FileHeader) ([]services.ImageUpload, error) {
	images := make([]services.ImageUpload, 0, len(files))
	for i, fh := range files {
		if fh.Size > maxImageBytes {
			return nil, fmt.Errorf("image %d is larger than %d bytes", i, maxImageBytes)
		}

		f, err := fh.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open image %d: %w", i, err)
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read image %d: %w", i, err)
		}

		mimeType := fh.Header.Get("Content-Type")
		if mimeType == "" || mimeType == "application/octet-stream" {
			mimeType = http.DetectContentType(data)
		}

		images = append(images, services.ImageUpload{Filename: fh.Filename, MimeType: mimeType, Data: data})
	}
	return images, nil
}
