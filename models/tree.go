package models

import (
	"time"

	"github.com/google/uuid"
)

// TreeNode is one row of a story tree walk.
type TreeNode struct {
	PanelSetID       uint      `json:"panel_set_id"`
	ParentPanelSetID *uint     `json:"parent_panel_set_id"`
	AuthorID         uuid.UUID `json:"author_id"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
	Level            int       `json:"level"`
	Path             string    `json:"path"`
}
