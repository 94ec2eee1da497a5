package services

import (
	"context"
	"errors"
	"net/url"
	"path"

	"gorm.io/gorm"

	"github.com/andrewpaige1/panelverse-api/models"
)

type CreatePanelInput struct {
	PanelSetID uint   `json:"panel_set_id" validate:"required"`
	Index      *int   `json:"index" validate:"required,min=0,max=2"`
	Image      string `json:"image" validate:"required,url,max=2048"`
}

func (s *Service) CreatePanel(ctx context.Context, in CreatePanelInput) (*models.Panel, error) {
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	db := s.DB.WithContext(ctx)
	if err := ensureExists[models.PanelSet](db, "panel set", in.PanelSetID); err != nil {
		return nil, err
	}

	panel := models.Panel{Image: in.Image, Index: *in.Index, PanelSetID: in.PanelSetID}
	if err := db.Create(&panel).Error; err != nil {
		return nil, storeError("create panel", err)
	}
	return &panel, nil
}

// GetPanel returns the panel with its hooks.
func (s *Service) GetPanel(ctx context.Context, id uint) (*models.Panel, error) {
	var panel models.Panel
	err := s.DB.WithContext(ctx).
		Preload("Hooks", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		First(&panel, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundError("panel %d does not exist", id)
		}
		return nil, storeError("get panel", err)
	}
	return &panel, nil
}

// ListPanelsByPanelSet returns the panels of a set in index order.
func (s *Service) ListPanelsByPanelSet(ctx context.Context, panelSetID uint) ([]models.Panel, error) {
	db := s.DB.WithContext(ctx)
	if err := ensureExists[models.PanelSet](db, "panel set", panelSetID); err != nil {
		return nil, err
	}

	panels := []models.Panel{}
	if err := orderPanels(db.Where("panel_set_id = ?", panelSetID)).Find(&panels).Error; err != nil {
		return nil, storeError("list panels", err)
	}
	return panels, nil
}

// PanelImageURL returns a time-limited URL for the panel's image.
func (s *Service) PanelImageURL(ctx context.Context, panelID uint) (string, error) {
	var panel models.Panel
	if err := s.DB.WithContext(ctx).First(&panel, panelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", notFoundError("panel %d does not exist", panelID)
		}
		return "", storeError("get panel", err)
	}

	key, err := imageKeyFromURL(panel.Image)
	if err != nil {
		return "", validationError("panel %d has no stored image: %v", panelID, err)
	}
	signed, err := s.Images.SignedURL(ctx, key)
	if err != nil {
		return "", imageStoreError("sign", key, err)
	}
	return signed, nil
}

// imageKeyFromURL recovers the store key from the last path segment of an image URL.
func imageKeyFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	escaped := path.Base(u.EscapedPath())
	key, err := url.PathUnescape(escaped)
	if err != nil {
		return "", err
	}
	if key == "" || key == "." || key == "/" {
		return "", errors.New("empty image key")
	}
	return key, nil
}
