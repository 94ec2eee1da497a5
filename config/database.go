package config

import (
	"fmt"

	"github.com/andrewpaige1/panelverse-api/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Open connects to the configured database. Duplicate-key and not-found errors
// come back as gorm.ErrDuplicatedKey and gorm.ErrRecordNotFound.
func Open(cfg DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "postgres":
		dialector = postgres.Open(cfg.URL)
	case "sqlite":
		dialector = sqlite.Open(cfg.URL)
	default:
		return nil, fmt.Errorf("unknown database driver: %s", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the five tables.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(&models.User{}, &models.Session{}, &models.PanelSet{}, &models.Panel{}, &models.Hook{})
	if err != nil {
		return fmt.Errorf("failed to auto migrate database: %w", err)
	}
	return nil
}
