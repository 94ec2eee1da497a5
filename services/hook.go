package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/andrewpaige1/panelverse-api/models"
)

type CreateHookInput struct {
	CurrentPanelID uint         `json:"current_panel_id" validate:"required"`
	Position       []PointInput `json:"position"`
}

func (s *Service) CreateHook(ctx context.Context, in CreateHookInput) (*models.Hook, error) {
	if err := firstError(
		func() error { return validateStruct(in) },
		func() error { return ValidatePosition(in.Position) },
	); err != nil {
		return nil, err
	}
	return s.createHook(s.DB.WithContext(ctx), in.CurrentPanelID, Points(in.Position))
}

// createHook anchors an unlinked hook to a panel. Links are only added by attachSetToHook.
func (s *Service) createHook(tx *gorm.DB, panelID uint, position []models.Point) (*models.Hook, error) {
	if err := ensureExists[models.Panel](tx, "panel", panelID); err != nil {
		return nil, err
	}

	hook := models.Hook{Position: position, CurrentPanelID: panelID}
	if err := tx.Create(&hook).Error; err != nil {
		return nil, storeError("create hook", err)
	}
	return &hook, nil
}

func (s *Service) GetHook(ctx context.Context, id uint) (*models.Hook, error) {
	var hook models.Hook
	if err := s.DB.WithContext(ctx).First(&hook, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundError("hook %d does not exist", id)
		}
		return nil, storeError("get hook", err)
	}
	return &hook, nil
}

// ListHooksByPanel returns an empty slice for a panel without hooks and
// ErrNotFound for a missing panel.
func (s *Service) ListHooksByPanel(ctx context.Context, panelID uint) ([]models.Hook, error) {
	db := s.DB.WithContext(ctx)
	if err := ensureExists[models.Panel](db, "panel", panelID); err != nil {
		return nil, err
	}

	hooks := []models.Hook{}
	if err := db.Where("current_panel_id = ?", panelID).Order("id").Find(&hooks).Error; err != nil {
		return nil, storeError("list hooks", err)
	}
	return hooks, nil
}

// AddSetToHook links an existing panel set beneath a hook.
func (s *Service) AddSetToHook(ctx context.Context, hookID, panelSetID uint) (*models.Hook, error) {
	var hook *models.Hook
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		hook, err = s.attachSetToHook(tx, hookID, panelSetID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return hook, nil
}

// attachSetToHook sets hook.next_panel_set_id exactly once. A hook that already
// links somewhere, or a panel set already hanging under another hook, is a conflict.
// Linking a set under its own subtree is rejected so the graph stays a tree.
func (s *Service) attachSetToHook(tx *gorm.DB, hookID, panelSetID uint) (*models.Hook, error) {
	var hook models.Hook
	if err := tx.Preload("CurrentPanel").First(&hook, hookID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundError("hook %d does not exist", hookID)
		}
		return nil, storeError("get hook", err)
	}
	if hook.NextPanelSetID != nil {
		return nil, conflictError("hook %d already links to panel set %d", hookID, *hook.NextPanelSetID)
	}

	subtree, err := s.tree(tx, panelSetID)
	if err != nil {
		return nil, err
	}
	for _, node := range subtree {
		if node.PanelSetID == hook.CurrentPanel.PanelSetID {
			return nil, validationError("linking panel set %d under hook %d would create a cycle", panelSetID, hookID)
		}
	}

	res := tx.Model(&models.Hook{}).
		Where("id = ? AND next_panel_set_id IS NULL", hookID).
		Update("next_panel_set_id", panelSetID)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return nil, conflictError("panel set %d already hangs under another hook", panelSetID)
		}
		return nil, storeError("link hook", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, conflictError("hook %d was linked concurrently", hookID)
	}

	hook.NextPanelSetID = &panelSetID
	return &hook, nil
}
