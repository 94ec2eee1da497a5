package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/andrewpaige1/panelverse-api/models"
)

type CreateUserInput struct {
	DisplayName    string  `json:"display_name" validate:"required,min=1,max=30"`
	Email          string  `json:"email" validate:"required,email,max=320"`
	Password       string  `json:"password" validate:"required,min=8,max=72"`
	ProfilePicture *string `json:"profile_picture" validate:"omitempty,url"`
}

func (s *Service) CreateUser(ctx context.Context, in CreateUserInput) (*models.User, error) {
	in.DisplayName = strings.TrimSpace(in.DisplayName)
	in.Email = normalizeEmail(in.Email)
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	db := s.DB.WithContext(ctx)

	var existing int64
	if err := db.Model(&models.User{}).Where("email = ?", in.Email).Count(&existing).Error; err != nil {
		return nil, storeError("look up email", err)
	}
	if existing > 0 {
		return nil, conflictError("email %s is already registered", in.Email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.PasswordCost)
	if err != nil {
		return nil, fmt.Errorf("%w: hash password: %v", ErrInternal, err)
	}

	user := models.User{
		DisplayName:    in.DisplayName,
		Email:          in.Email,
		PasswordHash:   string(hash),
		ProfilePicture: in.ProfilePicture,
	}
	if err := db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, conflictError("email %s is already registered", in.Email)
		}
		return nil, storeError("create user", err)
	}
	return &user, nil
}

func (s *Service) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.DB.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundError("user %s does not exist", id)
		}
		return nil, storeError("get user", err)
	}
	return &user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
