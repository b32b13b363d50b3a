package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Moha-Why/WorkOut-sub000/internal/client/models"
	"github.com/Moha-Why/WorkOut-sub000/internal/client/store"
	"github.com/Moha-Why/WorkOut-sub000/internal/logging"
)

// Download pipeline statuses reported through ProgressFunc.
const (
	DownloadStatusDownloading = "downloading"
	DownloadStatusCompleted   = "completed"
	DownloadStatusError       = "error"
)

// DownloadProgress is a snapshot pushed to the UI while a workout downloads.
type DownloadProgress struct {
	WorkoutID           string
	Status              string
	TotalExercises      int
	DownloadedExercises int
	TotalVideos         int
	CachedVideos        int
	CurrentItem         string
	Err                 error
}

// ProgressFunc receives progress snapshots. May be nil.
type ProgressFunc func(DownloadProgress)

// BatchResult summarizes a multi-workout download.
type BatchResult struct {
	Succeeded int
	Failed    int
}

// DownloadService materializes workouts into the local store for offline use.
type DownloadService struct {
	store *store.Store
	now   func() time.Time
	log   logging.Logger
}

func NewDownloadService(st *store.Store, log logging.Logger) *DownloadService {
	return &DownloadService{store: st, now: time.Now, log: log}
}

// DownloadWorkout persists the workout (exercise list embedded, one row, so
// the write either fully lands or fully fails) plus per-exercise cache rows
// and best-effort video metadata. Success is defined purely by the workout
// write; a video failure is logged and skipped.
func (s *DownloadService) DownloadWorkout(ctx context.Context, w models.Workout, onProgress ProgressFunc) bool {
	report := func(p DownloadProgress) {
		if onProgress != nil {
			p.WorkoutID = w.ID
			p.TotalExercises = len(w.Exercises)
			p.TotalVideos = countVideos(w.Exercises)
			onProgress(p)
		}
	}

	report(DownloadProgress{Status: DownloadStatusDownloading, CurrentItem: w.Name})

	now := s.now()
	cached := &models.CachedWorkout{Workout: w, CachedAt: now}
	if err := s.store.Workouts.Upsert(ctx, cached); err != nil {
		s.log.Error(ctx, "workout download failed", "workout_id", w.ID, "error", err)
		report(DownloadProgress{Status: DownloadStatusError, Err: err})
		return false
	}

	// Exercise metadata travels with the workout row, so it is all
	// available the moment the row lands.
	report(DownloadProgress{
		Status:              DownloadStatusDownloading,
		DownloadedExercises: len(w.Exercises),
		CurrentItem:         w.Name,
	})

	cachedVideos := 0
	for _, ex := range w.Exercises {
		if err := s.store.Exercises.Upsert(ctx, &models.CachedExercise{Exercise: ex, CachedAt: now}); err != nil {
			s.log.Warn(ctx, "exercise cache write failed", "exercise_id", ex.ID, "error", err)
		}

		if ex.VideoProvider == "" || ex.VideoID == "" {
			continue
		}
		report(DownloadProgress{
			Status:              DownloadStatusDownloading,
			DownloadedExercises: len(w.Exercises),
			CachedVideos:        cachedVideos,
			CurrentItem:         ex.Name,
		})
		if err := s.cacheVideo(ctx, ex, now); err != nil {
			s.log.Warn(ctx, "video metadata cache failed",
				"exercise_id", ex.ID, "provider", ex.VideoProvider, "error", err)
			continue
		}
		cachedVideos++
	}

	report(DownloadProgress{
		Status:              DownloadStatusCompleted,
		DownloadedExercises: len(w.Exercises),
		CachedVideos:        cachedVideos,
	})
	return true
}

// DownloadWorkouts downloads a list sequentially. One workout's failure does
// not abort the batch.
func (s *DownloadService) DownloadWorkouts(ctx context.Context, list []models.Workout, onProgress ProgressFunc) BatchResult {
	var res BatchResult
	for _, w := range list {
		if s.DownloadWorkout(ctx, w, onProgress) {
			res.Succeeded++
		} else {
			res.Failed++
		}
	}
	return res
}

func (s *DownloadService) cacheVideo(ctx context.Context, ex models.Exercise, now time.Time) error {
	url, err := embedURL(ex.VideoProvider, ex.VideoID)
	if err != nil {
		return err
	}
	return s.store.Videos.Upsert(ctx, &models.CachedVideo{
		Provider: ex.VideoProvider,
		VideoID:  ex.VideoID,
		EmbedURL: url,
		CachedAt: now,
	})
}

// embedURL builds the player reference for a provider-hosted video. Byte
// delivery stays with the platform HTTP cache.
func embedURL(provider, videoID string) (string, error) {
	switch provider {
	case "youtube":
		return "https://www.youtube.com/embed/" + videoID, nil
	case "vimeo":
		return "https://player.vimeo.com/video/" + videoID, nil
	default:
		return "", fmt.Errorf("unknown video provider: %q", provider)
	}
}

func countVideos(exs []models.Exercise) int {
	n := 0
	for _, ex := range exs {
		if ex.VideoProvider != "" && ex.VideoID != "" {
			n++
		}
	}
	return n
}
