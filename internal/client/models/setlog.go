package models

import "time"

// SetLog is one completed set, recorded as an immutable fact the moment the
// user finishes it. The id is generated client-side so the same logical entry
// survives retries and the inline-then-backlog double-send without creating a
// second remote row: the remote insert is idempotent on this id.
//
// Synced is the only mutable field; it flips to true once the remote insert
// is confirmed.
type SetLog struct {
	ID          string
	UserID      string
	WorkoutID   string
	ExerciseID  string
	SetNumber   int
	Weight      *float64
	Reps        int
	RPE         *float64
	CompletedAt time.Time
	Notes       *string
	Synced      bool
}

// PendingCompletion is a workout-finished event recorded while offline (or
// where the immediate online write failed). Same idempotency contract as
// SetLog. Unlike set logs it has no other local representation, so a synced
// completion is deleted rather than flagged.
type PendingCompletion struct {
	ID          string
	WorkoutID   string
	UserID      string
	CompletedAt time.Time
	Synced      bool
}
