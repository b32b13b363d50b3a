// Package common defines shared constants and sentinel errors used across the
// offline core. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Local storage could not be opened; repositories degrade to no-ops.
	ErrStoreUnavailable = errors.New("local store unavailable")

	// Sync-engine flow control.
	ErrSyncInProgress = errors.New("sync already in progress")
	ErrOffline        = errors.New("remote store unreachable")

	// Validation errors.
	ErrMissingID     = errors.New("missing id")
	ErrMissingUserID = errors.New("missing user id")
)
