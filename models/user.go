package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a user in the system
type User struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	DisplayName    string     `gorm:"not null;size:30" json:"display_name"`
	Email          string     `gorm:"uniqueIndex;not null;size:320" json:"email"`
	PasswordHash   string     `gorm:"not null;size:255" json:"-"`
	ProfilePicture *string    `gorm:"size:1024" json:"profile_picture"`
	PanelSets      []PanelSet `gorm:"foreignKey:AuthorID" json:"panel_sets,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
