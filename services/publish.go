package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"gorm.io/gorm"

	"github.com/andrewpaige1/panelverse-api/models"
	"github.com/andrewpaige1/panelverse-api/storage"
)

// HookDescriptor places a new hook on one of the three published panels.
type HookDescriptor struct {
	Position   []PointInput `json:"position" validate:"required,min=3,dive"`
	PanelIndex *int         `json:"panel_index" validate:"required,min=0,max=2"`
}

// ImageUpload is one panel image in publish order.
type ImageUpload struct {
	Filename string `json:"filename"`
	MimeType string `json:"mime_type" validate:"required,startswith=image/"`
	Data     []byte `json:"data" validate:"required"`
}

type PublishInput struct {
	AuthorID uuid.UUID        `json:"author_id"`
	Name     *string          `json:"name"`
	HookID   *uint            `json:"hook_id"`
	Hooks    []HookDescriptor `json:"hooks" validate:"len=3,dive"`
	Images   []ImageUpload    `json:"images" validate:"len=3,dive"`
}

type PublishResult struct {
	PanelSetID uint     `json:"panel_set_id"`
	HookID     *uint    `json:"hook_id"`
	PanelIDs   []uint   `json:"panel_ids"`
	ImageURLs  []string `json:"image_urls"`
	HookIDs    []uint   `json:"hook_ids"`
}

// pendingPublish is written to the image store before the first upload and
// removed once the publish commits or is compensated. Markers left behind by a
// crash are cleaned up by SweepPendingPublishes.
type pendingPublish struct {
	ID         string    `json:"id"`
	AuthorID   uuid.UUID `json:"author_id"`
	PanelSetID uint      `json:"panel_set_id"`
	ImageKeys  []string  `json:"image_keys"`
	CreatedAt  time.Time `json:"created_at"`
}

const pendingPublishPrefix = "pending/"

func (p pendingPublish) key() string {
	return pendingPublishPrefix + p.ID + ".json"
}

// Publish creates a panel set, its three panels, their hooks and the three
// backing images as one unit, optionally linking the new set beneath HookID.
// The relational writes share one transaction that stays open while the images
// upload; any failure rolls it back and removes images already uploaded.
func (s *Service) Publish(ctx context.Context, in PublishInput) (*PublishResult, error) {
	if err := firstError(
		func() error { return validateStruct(in) },
		func() error { return ensureImagePayloads(in.Images) },
	); err != nil {
		return nil, err
	}

	tx := s.DB.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, storeError("begin publish", tx.Error)
	}

	result, keys, err := s.writePublish(tx, in)
	if err != nil {
		tx.Rollback()
		log.Printf("Publish: rolled back for author %s: %v", in.AuthorID, err)
		return nil, err
	}

	marker := pendingPublish{AuthorID: in.AuthorID, PanelSetID: result.PanelSetID, ImageKeys: keys, CreatedAt: s.now()}
	if err := s.writeMarker(ctx, &marker); err != nil {
		tx.Rollback()
		log.Printf("Publish: rolled back panel set %d: %v", result.PanelSetID, err)
		return nil, err
	}

	uploaded, err := s.uploadImages(ctx, keys, in.Images)
	if err != nil {
		tx.Rollback()
		log.Printf("Publish: rolled back panel set %d after upload failure: %v", result.PanelSetID, err)
		s.discardImages(ctx, uploaded, marker)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		log.Printf("Publish: commit failed for panel set %d: %v", result.PanelSetID, err)
		s.discardImages(ctx, keys, marker)
		return nil, storeError("commit publish", err)
	}

	if _, err := s.Images.Delete(ctx, marker.key()); err != nil {
		log.Printf("Publish: failed to remove marker %s: %v", marker.key(), err)
	}
	return result, nil
}

// writePublish performs the relational steps inside tx and returns the image keys to upload.
func (s *Service) writePublish(tx *gorm.DB, in PublishInput) (*PublishResult, []string, error) {
	set, err := s.createPanelSet(tx, in.AuthorID, in.Name)
	if err != nil {
		return nil, nil, err
	}

	if in.HookID != nil {
		if _, err := s.attachSetToHook(tx, *in.HookID, set.ID); err != nil {
			return nil, nil, err
		}
	}

	keys := make([]string, models.PanelsPerSet)
	for i := range keys {
		keys[i] = storage.NewImageKey(set.ID)
	}

	result := &PublishResult{
		PanelSetID: set.ID,
		HookID:     in.HookID,
		PanelIDs:   make([]uint, 0, models.PanelsPerSet),
		ImageURLs:  make([]string, 0, models.PanelsPerSet),
		HookIDs:    make([]uint, 0, len(in.Hooks)),
	}

	panels := make([]models.Panel, models.PanelsPerSet)
	for i := range panels {
		panels[i] = models.Panel{Image: s.Images.URL(keys[i]), Index: i, PanelSetID: set.ID}
		if err := tx.Create(&panels[i]).Error; err != nil {
			return nil, nil, storeError("create panel", err)
		}
		result.PanelIDs = append(result.PanelIDs, panels[i].ID)
		result.ImageURLs = append(result.ImageURLs, panels[i].Image)
	}

	for _, desc := range in.Hooks {
		if err := ValidatePanelIndex(*desc.PanelIndex); err != nil {
			return nil, nil, err
		}
		hook, err := s.createHook(tx, panels[*desc.PanelIndex].ID, Points(desc.Position))
		if err != nil {
			return nil, nil, err
		}
		result.HookIDs = append(result.HookIDs, hook.ID)
	}

	return result, keys, nil
}

func (s *Service) writeMarker(ctx context.Context, marker *pendingPublish) error {
	id, err := gonanoid.New()
	if err != nil {
		return fmt.Errorf("%w: generate marker id: %v", ErrInternal, err)
	}
	marker.ID = id

	data, err := json.Marshal(marker)
	if err != nil {
		return imageStoreError("encode marker", marker.key(), err)
	}
	if _, err := s.Images.Put(ctx, marker.key(), data, "application/json"); err != nil {
		return imageStoreError("write marker", marker.key(), err)
	}
	return nil
}

// uploadImages stores images in order and returns the keys that were written before any failure.
func (s *Service) uploadImages(ctx context.Context, keys []string, images []ImageUpload) ([]string, error) {
	timeout := s.UploadTimeout
	if timeout <= 0 {
		timeout = defaultUploadTimeout
	}

	uploaded := make([]string, 0, len(keys))
	for i, key := range keys {
		uploadCtx, cancel := context.WithTimeout(ctx, timeout)
		_, err := s.Images.Put(uploadCtx, key, images[i].Data, images[i].MimeType)
		cancel()
		if err != nil {
			return uploaded, imageStoreError("upload", key, err)
		}
		uploaded = append(uploaded, key)
	}
	return uploaded, nil
}

// discardImages is best effort: whatever cannot be deleted stays listed in the marker for the sweeper.
func (s *Service) discardImages(ctx context.Context, keys []string, marker pendingPublish) {
	failed := false
	for _, key := range keys {
		if _, err := s.Images.Delete(ctx, key); err != nil {
			log.Printf("Publish: failed to delete image %s: %v", key, err)
			failed = true
		}
	}
	if failed {
		return
	}
	if _, err := s.Images.Delete(ctx, marker.key()); err != nil {
		log.Printf("Publish: failed to remove marker %s: %v", marker.key(), err)
	}
}

func ensureImagePayloads(images []ImageUpload) error {
	for i, img := range images {
		if len(img.Data) == 0 {
			return validationError("images[%d] is empty", i)
		}
	}
	return nil
}
