package setlogs

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/Moha-Why/WorkOut-sub000/internal/client/models"
	"github.com/Moha-Why/WorkOut-sub000/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE set_logs (
  id           TEXT PRIMARY KEY,
  user_id      TEXT NOT NULL,
  workout_id   TEXT NOT NULL,
  exercise_id  TEXT NOT NULL,
  set_number   INTEGER NOT NULL,
  weight       REAL,
  reps         INTEGER NOT NULL,
  rpe          REAL,
  completed_at TEXT NOT NULL,
  notes        TEXT,
  synced       INTEGER NOT NULL DEFAULT 0
);
`)
	require.NoError(t, err)

	return db
}

func ptr[T any](v T) *T { return &v }

func sampleLog(id string) *models.SetLog {
	return &models.SetLog{
		ID:          id,
		UserID:      "user-1",
		WorkoutID:   "workout-1",
		ExerciseID:  "bench-press",
		SetNumber:   1,
		Weight:      ptr(60.0),
		Reps:        8,
		CompletedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestInsert_RetrievableByAllIndexes(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	e := sampleLog("log-1")
	require.NoError(t, r.Insert(ctx, e))

	got, err := r.GetByID(ctx, "log-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", got.UserID)
	assert.Equal(t, 60.0, *got.Weight)
	assert.Nil(t, got.RPE)
	assert.False(t, got.Synced)

	byWorkout, err := r.GetByWorkout(ctx, "workout-1")
	require.NoError(t, err)
	require.Len(t, byWorkout, 1)

	byExercise, err := r.GetByExercise(ctx, "bench-press")
	require.NoError(t, err)
	require.Len(t, byExercise, 1)

	byUser, err := r.GetByUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, byUser, 1)
}

func TestInsert_DuplicateIDIsNoop(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	e := sampleLog("log-1")
	require.NoError(t, r.Insert(ctx, e))

	dup := sampleLog("log-1")
	dup.Reps = 99
	require.NoError(t, r.Insert(ctx, dup))

	got, err := r.GetByID(ctx, "log-1")
	require.NoError(t, err)
	assert.Equal(t, 8, got.Reps) // original row untouched
}

func TestInsert_Validation(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	e := sampleLog("")
	require.ErrorIs(t, r.Insert(ctx, e), common.ErrMissingID)

	e = sampleLog("log-1")
	e.UserID = ""
	require.ErrorIs(t, r.Insert(ctx, e), common.ErrMissingUserID)
}

func TestGetByID_NotFound(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	_, err := r.GetByID(context.Background(), "missing")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestPending_AndMarkSynced(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	a := sampleLog("log-a")
	b := sampleLog("log-b")
	b.Synced = true
	require.NoError(t, r.Insert(ctx, a))
	require.NoError(t, r.Insert(ctx, b))

	pending, err := r.GetPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "log-a", pending[0].ID)

	n, err := r.CountPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	require.NoError(t, r.MarkSynced(ctx, "log-a"))
	// idempotent: second mark is a no-op, not an error
	require.NoError(t, r.MarkSynced(ctx, "log-a"))

	n, err = r.CountPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestGetByExerciseExcludingWorkout_MostRecentFirst(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	day1 := sampleLog("log-day1")
	day1.WorkoutID = "workout-day1"
	day1.Weight = ptr(50.0)
	day1.CompletedAt = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	day2 := sampleLog("log-day2")
	day2.WorkoutID = "workout-day2"
	day2.Weight = ptr(55.0)
	day2.CompletedAt = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	current := sampleLog("log-day3")
	current.WorkoutID = "workout-day3"
	current.Weight = ptr(60.0)
	current.CompletedAt = time.Date(2026, 3, 3, 10, 0, 0, 0, time.UTC)

	for _, e := range []*models.SetLog{day1, day2, current} {
		require.NoError(t, r.Insert(ctx, e))
	}

	logs, err := r.GetByExerciseExcludingWorkout(ctx, "bench-press", "workout-day3")
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "log-day2", logs[0].ID) // most recent first
	assert.Equal(t, "log-day1", logs[1].ID)
}
