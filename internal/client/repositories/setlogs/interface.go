// Package setlogs is the append-only journal of completed sets. Every row is
// an immutable fact identified by a client-generated id; only the synced flag
// ever changes.
package setlogs

import (
	"context"

	"github.com/Moha-Why/WorkOut-sub000/internal/client/models"
)

// Repository describes journal storage.
type Repository interface {
	// Insert appends one entry. Re-inserting an existing id is a no-op, so a
	// crashed-and-replayed write cannot duplicate a fact.
	Insert(ctx context.Context, e *models.SetLog) error

	// GetByID returns one entry, or common.ErrNotFound.
	GetByID(ctx context.Context, id string) (*models.SetLog, error)

	// Index-backed lookups.
	GetByWorkout(ctx context.Context, workoutID string) ([]models.SetLog, error)
	GetByExercise(ctx context.Context, exerciseID string) ([]models.SetLog, error)
	GetByUser(ctx context.Context, userID string) ([]models.SetLog, error)

	// GetPending returns the sync backlog (synced = false).
	GetPending(ctx context.Context) ([]models.SetLog, error)

	// CountPending counts the backlog without loading rows.
	CountPending(ctx context.Context) (int, error)

	// MarkSynced flips the synced flag. Marking an already-synced entry is a
	// no-op, not an error.
	MarkSynced(ctx context.Context, id string) error

	// GetByExerciseExcludingWorkout returns logs for an exercise across all
	// workouts except the given one, most recent first. Feeds the
	// "last time you did this" pre-fill.
	GetByExerciseExcludingWorkout(ctx context.Context, exerciseID, excludeWorkoutID string) ([]models.SetLog, error)
}
