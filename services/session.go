package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/andrewpaige1/panelverse-api/models"
)

var errInvalidCredentials = validationError("invalid email or password")

// CreateSession logs a user in. Any earlier session of the user is removed so
// at most one stays live.
func (s *Service) CreateSession(ctx context.Context, email, password string) (*models.Session, error) {
	db := s.DB.WithContext(ctx)

	var user models.User
	if err := db.Where("email = ?", normalizeEmail(email)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errInvalidCredentials
		}
		return nil, storeError("look up user", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, errInvalidCredentials
	}

	session := models.Session{UserID: user.ID}
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.Session{}).Error; err != nil {
			return err
		}
		return tx.Create(&session).Error
	})
	if err != nil {
		return nil, storeError("create session", err)
	}

	session.User = user
	return &session, nil
}

// GetSession returns the session with its user loaded.
func (s *Service) GetSession(ctx context.Context, id uuid.UUID) (*models.Session, error) {
	var session models.Session
	if err := s.DB.WithContext(ctx).Preload("User").First(&session, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundError("session %s does not exist", id)
		}
		return nil, storeError("get session", err)
	}
	return &session, nil
}
