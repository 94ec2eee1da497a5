package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ImageStore is the blob store holding panel images and publish markers.
type ImageStore interface {
	// Put stores data under key and returns the key.
	Put(ctx context.Context, key string, data []byte, mimeType string) (string, error)
	// Get returns the bytes stored under key.
	Get(ctx context.Context, key string) ([]byte, error)
	// SignedURL returns a time-limited URL for reading key.
	SignedURL(ctx context.Context, key string) (string, error)
	// Delete removes key and returns it. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) (string, error)
	// List returns the objects whose key starts with prefix.
	List(ctx context.Context, prefix string) ([]Object, error)
	// URL computes the public URL of key without contacting the store.
	URL(key string) string
}

// Object describes one stored blob.
type Object struct {
	Key          string
	LastModified time.Time
}

var ErrObjectNotFound = errors.New("object does not exist")

// NewImageKey returns a globally unique key scoped to a panel set: "{panelSetID}_{uuid}".
func NewImageKey(panelSetID uint) string {
	return fmt.Sprintf("%d_%s", panelSetID, uuid.NewString())
}
