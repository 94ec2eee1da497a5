package models

import (
	"time"

	"github.com/google/uuid"
)

// PanelSet is one branch of a story: three panels shown in sequence.
// A panel set no hook points to is a trunk.
type PanelSet struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	AuthorID  uuid.UUID `gorm:"type:uuid;not null;index" json:"author_id"`
	Author    User      `gorm:"foreignKey:AuthorID" json:"-"`
	Name      *string   `gorm:"size:100" json:"name"`
	Panels    []Panel   `gorm:"foreignKey:PanelSetID" json:"panels,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
