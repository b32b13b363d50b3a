// Package services contains the offline core's business logic: cache policy,
// the download pipeline, the set-log journal, and the sync engine.
package services

import (
	"context"
	"time"

	"github.com/Moha-Why/WorkOut-sub000/internal/client/store"
	"github.com/Moha-Why/WorkOut-sub000/internal/logging"
)

// DefaultCacheTTL is how long a cached entity stays valid without a refresh.
const DefaultCacheTTL = 7 * 24 * time.Hour

// estimatedExerciseBytes is the flat per-exercise heuristic used only for the
// storage-quota pre-check, not for accounting.
const estimatedExerciseBytes int64 = 100 * 1024

// QuotaChecker reports free storage on the host, when the host can tell.
type QuotaChecker interface {
	// Available returns free bytes and whether the number is trustworthy.
	Available() (int64, bool)
}

// CacheService decides what to keep, for how long, and whether there's room.
type CacheService struct {
	store *store.Store
	quota QuotaChecker
	ttl   time.Duration
	now   func() time.Time
	log   logging.Logger
}

func NewCacheService(st *store.Store, quota QuotaChecker, ttl time.Duration, log logging.Logger) *CacheService {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CacheService{store: st, quota: quota, ttl: ttl, now: time.Now, log: log}
}

// IsExpired reports whether an entity cached at the given time is past TTL.
func (s *CacheService) IsExpired(cachedAt time.Time) bool {
	return s.now().Sub(cachedAt) > s.ttl
}

// SweepExpired deletes exercises, workouts and cached videos past TTL and
// returns how many entries went away. Programs are not swept; they carry no
// payload worth reclaiming.
func (s *CacheService) SweepExpired(ctx context.Context) (int64, error) {
	cutoff := s.now().Add(-s.ttl)

	var removed int64
	n, err := s.store.Exercises.DeleteCachedBefore(ctx, cutoff)
	if err != nil {
		return removed, err
	}
	removed += n

	n, err = s.store.Workouts.DeleteCachedBefore(ctx, cutoff)
	if err != nil {
		return removed, err
	}
	removed += n

	n, err = s.store.Videos.DeleteCachedBefore(ctx, cutoff)
	if err != nil {
		return removed, err
	}
	removed += n

	if removed > 0 {
		s.log.Info(ctx, "expired cache entries removed", "count", removed)
	}
	return removed, nil
}

// EstimateSize returns a rough byte estimate for caching the given number of
// exercises.
func (s *CacheService) EstimateSize(exerciseCount int) int64 {
	return int64(exerciseCount) * estimatedExerciseBytes
}

// HasEnoughStorage checks the host's free space against requiredBytes. When
// the host cannot report quota, it fails open so downloads are never blocked
// by a missing API.
func (s *CacheService) HasEnoughStorage(requiredBytes int64) bool {
	if s.quota == nil {
		return true
	}
	free, ok := s.quota.Available()
	if !ok {
		return true
	}
	return free >= requiredBytes
}

// IsWorkoutCached reports whether a workout is downloaded; drives the
// "downloaded" badge.
func (s *CacheService) IsWorkoutCached(ctx context.Context, workoutID string) bool {
	ok, err := s.store.Workouts.Exists(ctx, workoutID)
	if err != nil {
		s.log.Warn(ctx, "workout cache check failed", "workout_id", workoutID, "error", err)
		return false
	}
	return ok
}

// IsExerciseCached reports whether an exercise is downloaded.
func (s *CacheService) IsExerciseCached(ctx context.Context, exerciseID string) bool {
	ok, err := s.store.Exercises.Exists(ctx, exerciseID)
	if err != nil {
		s.log.Warn(ctx, "exercise cache check failed", "exercise_id", exerciseID, "error", err)
		return false
	}
	return ok
}

// ClearOfflineData wipes every local table atomically.
func (s *CacheService) ClearOfflineData(ctx context.Context) error {
	return s.store.ClearAll(ctx)
}
