package models

import "time"

// Workout is a coach-assigned workout with its exercise list embedded,
// so a single cached row is enough to render the whole session offline.
type Workout struct {
	ID        string     `json:"id"`
	ProgramID string     `json:"program_id,omitempty"`
	Name      string     `json:"name"`
	Exercises []Exercise `json:"exercises"`
}

// CachedWorkout wraps a Workout persisted for offline use.
//
// IsCompleted/CompletedAt shadow the server-side completion state. They are
// set locally when the workout is finished while offline and are the only
// fields of a cache entry ever mutated in place.
type CachedWorkout struct {
	Workout
	CachedAt    time.Time
	IsCompleted bool
	CompletedAt *time.Time
}

// Program groups workouts assigned by a coach.
type Program struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	CoachID    string   `json:"coach_id,omitempty"`
	WorkoutIDs []string `json:"workout_ids,omitempty"`
}

// CachedProgram wraps a Program persisted for offline use.
type CachedProgram struct {
	Program
	CachedAt time.Time
}
