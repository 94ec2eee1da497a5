package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/andrewpaige1/panelverse-api/models"
	"github.com/andrewpaige1/panelverse-api/storage"
)

// SweepReport summarizes one sweep over pending publish markers.
type SweepReport struct {
	Markers       int `json:"markers"`
	Committed     int `json:"committed"`
	Abandoned     int `json:"abandoned"`
	ImagesDeleted int `json:"images_deleted"`
}

// SweepPendingPublishes removes markers older than olderThan. When no panel
// references the marker's images the publish never committed and its images
// are deleted too.
func (s *Service) SweepPendingPublishes(ctx context.Context, olderThan time.Duration) (SweepReport, error) {
	var report SweepReport

	objects, err := s.Images.List(ctx, pendingPublishPrefix)
	if err != nil {
		return report, imageStoreError("list", pendingPublishPrefix, err)
	}

	cutoff := s.now().Add(-olderThan)
	for _, obj := range objects {
		if obj.LastModified.After(cutoff) {
			continue
		}
		report.Markers++

		data, err := s.Images.Get(ctx, obj.Key)
		if err != nil {
			if errors.Is(err, storage.ErrObjectNotFound) {
				continue
			}
			return report, imageStoreError("read marker", obj.Key, err)
		}

		var marker pendingPublish
		if err := json.Unmarshal(data, &marker); err != nil {
			log.Printf("SweepPendingPublishes: dropping unreadable marker %s: %v", obj.Key, err)
		} else {
			committed, err := s.imagesReferenced(ctx, marker.ImageKeys)
			if err != nil {
				return report, err
			}
			if committed {
				report.Committed++
			} else {
				report.Abandoned++
				for _, key := range marker.ImageKeys {
					if _, err := s.Images.Delete(ctx, key); err != nil {
						return report, imageStoreError("delete", key, err)
					}
					report.ImagesDeleted++
				}
				log.Printf("SweepPendingPublishes: removed %d images of abandoned panel set %d", len(marker.ImageKeys), marker.PanelSetID)
			}
		}

		if _, err := s.Images.Delete(ctx, obj.Key); err != nil {
			return report, imageStoreError("delete marker", obj.Key, err)
		}
	}
	return report, nil
}

func (s *Service) imagesReferenced(ctx context.Context, keys []string) (bool, error) {
	if len(keys) == 0 {
		return false, nil
	}
	urls := make([]string, len(keys))
	for i, key := range keys {
		urls[i] = s.Images.URL(key)
	}

	var count int64
	if err := s.DB.WithContext(ctx).Model(&models.Panel{}).Where("image IN ?", urls).Count(&count).Error; err != nil {
		return false, storeError("look up panel images", err)
	}
	return count > 0, nil
}
