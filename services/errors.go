package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Error kinds returned by every service call. Handlers map them to HTTP statuses.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrInternal   = errors.New("internal error")

	// ErrImageStore marks failures of the image store so they can be told apart
	// from relational failures.
	ErrImageStore = errors.New("image store")
)

func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func notFoundError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

func conflictError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConflict, fmt.Sprintf(format, args...))
}

// storeError translates a gorm error into the service error kinds.
func storeError(op string, err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %s", ErrNotFound, op)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %s: %v", ErrConflict, op, err)
	default:
		return fmt.Errorf("%w: %s: %v", ErrInternal, op, err)
	}
}

func imageStoreError(op, key string, err error) error {
	return fmt.Errorf("%w: %s %s: %v", ErrImageStore, op, key, err)
}
