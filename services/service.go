package services

import (
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/andrewpaige1/panelverse-api/storage"
)

const (
	defaultMaxTreeDepth  = 1000
	defaultUploadTimeout = 30 * time.Second
)

// Service holds the store handles every operation runs against.
type Service struct {
	DB     *gorm.DB
	Images storage.ImageStore

	// MaxTreeDepth bounds the recursive tree walk.
	MaxTreeDepth int
	// UploadTimeout bounds each image upload made while a publish transaction is open.
	UploadTimeout time.Duration
	PasswordCost  int
	Clock         func() time.Time
}

func NewService(db *gorm.DB, images storage.ImageStore) *Service {
	return &Service{
		DB:            db,
		Images:        images,
		MaxTreeDepth:  defaultMaxTreeDepth,
		UploadTimeout: defaultUploadTimeout,
		PasswordCost:  bcrypt.DefaultCost,
		Clock:         time.Now,
	}
}

func (s *Service) now() time.Time {
	if s.Clock == nil {
		return time.Now()
	}
	return s.Clock()
}

// ensureExists reports ErrNotFound when no row of T has the given id.
func ensureExists[T any](tx *gorm.DB, entity string, id any) error {
	var count int64
	if err := tx.Model(new(T)).Where("id = ?", id).Count(&count).Error; err != nil {
		return storeError("look up "+entity, err)
	}
	if count == 0 {
		return notFoundError("%s %v does not exist", entity, id)
	}
	return nil
}
