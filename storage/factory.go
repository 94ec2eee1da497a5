package storage

import (
	"context"
	"fmt"

	"github.com/andrewpaige1/panelverse-api/config"
)

// NewImageStoreFromConfig creates an ImageStore based on the configured backend.
func NewImageStoreFromConfig(ctx context.Context, cfg *config.Config) (ImageStore, error) {
	images := cfg.Images
	switch images.Backend {
	case "memory":
		return NewMemoryStore(images.PublicBaseURL), nil
	case "s3":
		return NewS3Store(ctx, cfg.Environment().IsDevelopment, S3Options{
			Bucket:        images.Bucket,
			Region:        images.Region,
			Endpoint:      images.Endpoint,
			PublicBaseURL: images.PublicBaseURL,
			SignedURLTTL:  config.Duration(images.SignedURLTTL),
		})
	default:
		return nil, fmt.Errorf("unknown image backend: %s", images.Backend)
	}
}
