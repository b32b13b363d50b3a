// Package completions stores workout-finished events awaiting upload. Unlike
// set logs, a completion has no other local representation, so a synced row
// is deleted instead of flagged.
package completions

import (
	"context"

	"github.com/Moha-Why/WorkOut-sub000/internal/client/models"
)

// Repository describes pending-completion storage.
type Repository interface {
	// Insert records one completion. Re-inserting an existing id is a no-op.
	Insert(ctx context.Context, c *models.PendingCompletion) error

	// GetPending returns completions awaiting upload.
	GetPending(ctx context.Context) ([]models.PendingCompletion, error)

	// CountPending counts the backlog without loading rows.
	CountPending(ctx context.Context) (int, error)

	// DeleteByID removes a completion once its remote insert is confirmed.
	DeleteByID(ctx context.Context, id string) error
}
