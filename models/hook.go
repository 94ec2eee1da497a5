package models

import (
	"time"

	"gorm.io/datatypes"
)

// Point is one vertex of a hook polygon, serialized as {"x": ..., "y": ...}.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Hook is a clickable polygon on a panel. NextPanelSetID is unique so a panel set
// hangs under at most one hook, which keeps the story graph a tree.
type Hook struct {
	ID             uint                       `gorm:"primaryKey" json:"id"`
	Position       datatypes.JSONSlice[Point] `gorm:"not null" json:"position"`
	CurrentPanelID uint                       `gorm:"not null;index" json:"current_panel_id"`
	CurrentPanel   Panel                      `gorm:"foreignKey:CurrentPanelID" json:"-"`
	NextPanelSetID *uint                      `gorm:"uniqueIndex" json:"next_panel_set_id"`
	NextPanelSet   *PanelSet                  `gorm:"foreignKey:NextPanelSetID" json:"-"`
	CreatedAt      time.Time                  `json:"created_at"`
	UpdatedAt      time.Time                  `json:"updated_at"`
}
