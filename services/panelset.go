package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/andrewpaige1/panelverse-api/models"
)

const maxPanelSetName = 100

func (s *Service) CreatePanelSet(ctx context.Context, authorID uuid.UUID, name *string) (*models.PanelSet, error) {
	return s.createPanelSet(s.DB.WithContext(ctx), authorID, name)
}

func (s *Service) createPanelSet(tx *gorm.DB, authorID uuid.UUID, name *string) (*models.PanelSet, error) {
	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if len([]rune(trimmed)) > maxPanelSetName {
			return nil, validationError("name must be at most %d characters", maxPanelSetName)
		}
		name = &trimmed
	}
	if err := ensureExists[models.User](tx, "user", authorID); err != nil {
		return nil, err
	}

	set := models.PanelSet{AuthorID: authorID, Name: name}
	if err := tx.Create(&set).Error; err != nil {
		return nil, storeError("create panel set", err)
	}
	return &set, nil
}

// GetPanelSet returns the panel set with its panels (in index order) and their hooks.
func (s *Service) GetPanelSet(ctx context.Context, id uint) (*models.PanelSet, error) {
	var set models.PanelSet
	err := s.DB.WithContext(ctx).
		Preload("Panels", orderPanels).
		Preload("Panels.Hooks", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		First(&set, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundError("panel set %d does not exist", id)
		}
		return nil, storeError("get panel set", err)
	}
	return &set, nil
}

// ListPanelSetsByUser returns an empty slice for a user without panel sets
// and ErrNotFound for a missing user.
func (s *Service) ListPanelSetsByUser(ctx context.Context, userID uuid.UUID) ([]models.PanelSet, error) {
	db := s.DB.WithContext(ctx)
	if err := ensureExists[models.User](db, "user", userID); err != nil {
		return nil, err
	}

	sets := []models.PanelSet{}
	if err := db.Where("author_id = ?", userID).Order("id").Find(&sets).Error; err != nil {
		return nil, storeError("list panel sets", err)
	}
	return sets, nil
}

// ListTrunks returns the panel sets no hook points to, newest first.
func (s *Service) ListTrunks(ctx context.Context) ([]models.PanelSet, error) {
	sets := []models.PanelSet{}
	err := s.DB.WithContext(ctx).
		Where("NOT EXISTS (SELECT 1 FROM hooks WHERE hooks.next_panel_set_id = panel_sets.id)").
		Order("created_at DESC").Order("id DESC").
		Find(&sets).Error
	if err != nil {
		return nil, storeError("list trunks", err)
	}
	return sets, nil
}

func orderPanels(db *gorm.DB) *gorm.DB {
	return db.Order(clause.OrderByColumn{Column: clause.Column{Name: "index"}}).Order("id")
}
