// Package models defines client-side data models for the offline workout
// core: cached entities, the set-log journal, and sync bookkeeping.
package models

import "time"

// Exercise is the coach-authored exercise definition as served by the
// backend. The video fields reference an embedded player, not raw bytes.
type Exercise struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	MuscleGroup   string `json:"muscle_group,omitempty"`
	VideoProvider string `json:"video_provider,omitempty"`
	VideoID       string `json:"video_id,omitempty"`
}

// CachedExercise wraps an Exercise persisted for offline use.
type CachedExercise struct {
	Exercise
	CachedAt time.Time
}
