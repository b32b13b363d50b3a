// Package exercises stores cached exercise definitions for offline use.
package exercises

import (
	"context"
	"time"

	"github.com/Moha-Why/WorkOut-sub000/internal/client/models"
)

// Repository describes the exercise cache namespace. Implementations are
// backed by a local SQLite database, or by the no-op fallback when persistent
// storage is unavailable.
type Repository interface {
	// Upsert inserts or replaces a cached exercise by id.
	Upsert(ctx context.Context, e *models.CachedExercise) error

	// GetByID returns a cached exercise, or common.ErrNotFound on a miss.
	GetByID(ctx context.Context, id string) (*models.CachedExercise, error)

	// GetAll returns every cached exercise.
	GetAll(ctx context.Context) ([]models.CachedExercise, error)

	// Exists reports whether an exercise is cached, without decoding it.
	Exists(ctx context.Context, id string) (bool, error)

	// DeleteByID removes one cached exercise.
	DeleteByID(ctx context.Context, id string) error

	// DeleteCachedBefore removes entries cached before the cutoff and
	// returns how many were removed. Used by the TTL sweep.
	DeleteCachedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
