// Package videos stores cached video embed metadata, keyed by
// (provider, video id). Entries are shared across workouts and expire on
// their own TTL.
package videos

import (
	"context"
	"time"

	"github.com/Moha-Why/WorkOut-sub000/internal/client/models"
)

// Repository describes the cached-video namespace.
type Repository interface {
	// Upsert inserts or replaces an entry by its composite key.
	Upsert(ctx context.Context, v *models.CachedVideo) error

	// Get returns an entry, or common.ErrNotFound on a miss.
	Get(ctx context.Context, provider, videoID string) (*models.CachedVideo, error)

	// GetAll returns every cached video entry.
	GetAll(ctx context.Context) ([]models.CachedVideo, error)

	// Exists reports whether metadata for a video is cached.
	Exists(ctx context.Context, provider, videoID string) (bool, error)

	// Delete removes one entry.
	Delete(ctx context.Context, provider, videoID string) error

	// DeleteCachedBefore removes entries cached before the cutoff and
	// returns how many were removed.
	DeleteCachedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
