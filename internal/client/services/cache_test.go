package services

import (
	"context"
	"testing"
	"time"

	"github.com/Moha-Why/WorkOut-sub000/internal/client/identity"
	"github.com/Moha-Why/WorkOut-sub000/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeQuota struct {
	free int64
	ok   bool
}

func (f fakeQuota) Available() (int64, bool) { return f.free, f.ok }

func TestSweepExpired_RemovesOnlyStaleEntries(t *testing.T) {
	st := newTestStore(t)
	c := NewCacheService(st, nil, DefaultCacheTTL, testLogger())
	ctx := context.Background()

	now := time.Now()
	stale := now.Add(-8 * 24 * time.Hour)
	fresh := now.Add(-6 * 24 * time.Hour)

	require.NoError(t, st.Exercises.Upsert(ctx, &models.CachedExercise{
		Exercise: models.Exercise{ID: "stale-ex", Name: "Stale"}, CachedAt: stale,
	}))
	require.NoError(t, st.Exercises.Upsert(ctx, &models.CachedExercise{
		Exercise: models.Exercise{ID: "fresh-ex", Name: "Fresh"}, CachedAt: fresh,
	}))
	require.NoError(t, st.Workouts.Upsert(ctx, &models.CachedWorkout{
		Workout: models.Workout{ID: "stale-w", Name: "Old"}, CachedAt: stale,
	}))
	require.NoError(t, st.Videos.Upsert(ctx, &models.CachedVideo{
		Provider: "youtube", VideoID: "stale-v", EmbedURL: "u", CachedAt: stale,
	}))

	removed, err := c.SweepExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)

	assert.False(t, c.IsExerciseCached(ctx, "stale-ex"))
	assert.True(t, c.IsExerciseCached(ctx, "fresh-ex"))
	assert.False(t, c.IsWorkoutCached(ctx, "stale-w"))
}

func TestIsExpired(t *testing.T) {
	c := NewCacheService(nil, nil, DefaultCacheTTL, testLogger())
	now := time.Now()
	c.now = func() time.Time { return now }

	assert.True(t, c.IsExpired(now.Add(-8*24*time.Hour)))
	assert.False(t, c.IsExpired(now.Add(-6*24*time.Hour)))
}

func TestEstimateSize(t *testing.T) {
	c := NewCacheService(nil, nil, DefaultCacheTTL, testLogger())

	assert.Equal(t, int64(0), c.EstimateSize(0))
	assert.Equal(t, int64(100*1024*12), c.EstimateSize(12))
}

func TestHasEnoughStorage(t *testing.T) {
	log := testLogger()

	// no checker wired: fail open
	assert.True(t, NewCacheService(nil, nil, DefaultCacheTTL, log).HasEnoughStorage(1<<40))

	// checker cannot tell: fail open
	c := NewCacheService(nil, fakeQuota{free: 0, ok: false}, DefaultCacheTTL, log)
	assert.True(t, c.HasEnoughStorage(1<<40))

	// checker reports a real number
	c = NewCacheService(nil, fakeQuota{free: 10 * 1024 * 1024, ok: true}, DefaultCacheTTL, log)
	assert.True(t, c.HasEnoughStorage(5*1024*1024))
	assert.False(t, c.HasEnoughStorage(20*1024*1024))
}

func TestClearOfflineData_WipesEverything(t *testing.T) {
	st := newTestStore(t)
	c := NewCacheService(st, nil, DefaultCacheTTL, testLogger())
	j := NewJournalService(st, identity.Static("user-1"), nil, testLogger())
	ctx := context.Background()

	require.NoError(t, st.Workouts.Upsert(ctx, &models.CachedWorkout{
		Workout: models.Workout{ID: "w1", Name: "Push Day"}, CachedAt: time.Now(),
	}))
	_, err := j.LogSet(ctx, models.SetLog{WorkoutID: "w1", ExerciseID: "bench", SetNumber: 1, Reps: 8})
	require.NoError(t, err)

	require.NoError(t, c.ClearOfflineData(ctx))

	assert.False(t, c.IsWorkoutCached(ctx, "w1"))
	n, err := j.PendingCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}
