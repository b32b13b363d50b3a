// Package workouts stores downloaded workouts, exercise lists embedded, for
// offline use.
package workouts

import (
	"context"
	"time"

	"github.com/Moha-Why/WorkOut-sub000/internal/client/models"
)

// Repository describes the workout cache namespace.
type Repository interface {
	// Upsert inserts or replaces a cached workout by id. The exercise list
	// travels inside the workout payload, so the write is a single row and
	// either fully lands or fully fails.
	Upsert(ctx context.Context, w *models.CachedWorkout) error

	// GetByID returns a cached workout, or common.ErrNotFound on a miss.
	GetByID(ctx context.Context, id string) (*models.CachedWorkout, error)

	// GetAll returns every cached workout.
	GetAll(ctx context.Context) ([]models.CachedWorkout, error)

	// Exists reports whether a workout is cached, without decoding it.
	Exists(ctx context.Context, id string) (bool, error)

	// MarkCompleted sets the local completion shadow. The shadow fields are
	// the only in-place mutation a cache entry ever sees.
	MarkCompleted(ctx context.Context, id string, completedAt time.Time) error

	// DeleteByID removes one cached workout.
	DeleteByID(ctx context.Context, id string) error

	// DeleteCachedBefore removes entries cached before the cutoff and
	// returns how many were removed.
	DeleteCachedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
