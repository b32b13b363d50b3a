package completions

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/Moha-Why/WorkOut-sub000/internal/client/models"
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
CREATE TABLE pending_completions (
  id           TEXT PRIMARY KEY,
  workout_id   TEXT NOT NULL,
  user_id      TEXT NOT NULL,
  completed_at TEXT NOT NULL,
  synced       INTEGER NOT NULL DEFAULT 0
);
`)
	require.NoError(t, err)

	return db
}

func TestInsert_AndPendingLifecycle(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	c := &models.PendingCompletion{
		ID:          "comp-1",
		WorkoutID:   "workout-1",
		UserID:      "user-1",
		CompletedAt: time.Date(2026, 3, 1, 19, 0, 0, 0, time.UTC),
	}
	require.NoError(t, r.Insert(ctx, c))
	// duplicate id is swallowed
	require.NoError(t, r.Insert(ctx, c))

	pending, err := r.GetPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "workout-1", pending[0].WorkoutID)

	n, err := r.CountPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	require.NoError(t, r.DeleteByID(ctx, "comp-1"))

	n, err = r.CountPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}
