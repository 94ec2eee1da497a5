package models

import "time"

// PanelsPerSet is the number of panels every published panel set carries.
const PanelsPerSet = 3

// Panel is a single comic image at position Index (0-2) of its panel set.
// (panel_set_id, index) is indexed but not unique.
type Panel struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Image      string    `gorm:"not null;size:2048" json:"image"`
	Index      int       `gorm:"not null;index:idx_panels_set_index,priority:2" json:"index"`
	PanelSetID uint      `gorm:"not null;index:idx_panels_set_index,priority:1" json:"panel_set_id"`
	PanelSet   PanelSet  `gorm:"foreignKey:PanelSetID" json:"-"`
	Hooks      []Hook    `gorm:"foreignKey:CurrentPanelID" json:"hooks,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
