// Package remote defines the collaborator interface for the backend data
// store and its Postgres implementation. The sync engine only needs
// idempotent inserts: submitting the same client-generated id twice must
// leave exactly one remote row and report success both times.
package remote

import (
	"context"

	"github.com/Moha-Why/WorkOut-sub000/internal/client/models"
)

// Store is the remote data store reachable when online.
type Store interface {
	// Ping probes reachability; used by the online-state watcher.
	Ping(ctx context.Context) error

	// InsertSetLog writes one set log, idempotent on its id.
	InsertSetLog(ctx context.Context, e *models.SetLog) error

	// InsertCompletion writes one workout completion, idempotent on its id.
	InsertCompletion(ctx context.Context, c *models.PendingCompletion) error

	// SetLogExists reports whether a row with the given id already exists.
	// Hardening hook for backends whose insert is not natively idempotent;
	// the Postgres implementation never needs it on the sync path.
	SetLogExists(ctx context.Context, id string) (bool, error)

	// Close releases the underlying connections.
	Close()
}
