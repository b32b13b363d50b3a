package models

import "time"

// Item types recorded in SyncError.Type.
const (
	SyncItemSetLog     = "set_log"
	SyncItemCompletion = "workout_completion"
)

// SyncError describes one pending item that exhausted its retries during a
// sync pass. The item itself stays pending for the next pass.
type SyncError struct {
	ID        string
	Type      string
	Message   string
	Timestamp time.Time
}

// SyncStatus is the process-wide, non-persisted view of the sync engine,
// recomputed after every pass. Read by UI layers only.
type SyncStatus struct {
	IsSyncing    bool
	LastSync     *time.Time
	PendingCount int
	Errors       []SyncError
}
