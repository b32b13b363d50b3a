package workouts

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Moha-Why/WorkOut-sub000/internal/client/models"
	"github.com/Moha-Why/WorkOut-sub000/internal/common"
	"github.com/Moha-Why/WorkOut-sub000/internal/dbx"
	"github.com/Moha-Why/WorkOut-sub000/internal/timex"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Upsert(ctx context.Context, w *models.CachedWorkout) error {
	if w.ID == "" {
		return common.ErrMissingID
	}
	data, err := json.Marshal(w.Workout)
	if err != nil {
		return fmt.Errorf("failed to encode workout: %w", err)
	}
	var completedAt any
	if w.CompletedAt != nil {
		completedAt = timex.FormatSortable(*w.CompletedAt)
	}
	query := `INSERT INTO workouts (id, data, cached_at, is_completed, completed_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET data = excluded.data,
			cached_at = excluded.cached_at,
			is_completed = excluded.is_completed,
			completed_at = excluded.completed_at`
	_, err = r.db.ExecContext(ctx, query,
		w.ID, string(data), timex.FormatSortable(w.CachedAt), boolToInt(w.IsCompleted), completedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert workout: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.CachedWorkout, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT data, cached_at, is_completed, completed_at FROM workouts WHERE id = ?`, id)
	item, err := scanWorkout(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("failed to select workout: %w", err)
	}
	return item, nil
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.CachedWorkout, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT data, cached_at, is_completed, completed_at FROM workouts`)
	if err != nil {
		return nil, fmt.Errorf("failed to select workouts: %w", err)
	}
	defer rows.Close()

	var result []models.CachedWorkout
	for rows.Next() {
		item, err := scanWorkout(rows.Scan)
		if err != nil {
			return nil, err
		}
		result = append(result, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) Exists(ctx context.Context, id string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM workouts WHERE id = ?`, id).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("failed to check workout: %w", err)
	}
	return n > 0, nil
}

func (r *SQLiteRepository) MarkCompleted(ctx context.Context, id string, completedAt time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE workouts SET is_completed = 1, completed_at = ? WHERE id = ?`,
		timex.FormatSortable(completedAt), id)
	if err != nil {
		return fmt.Errorf("failed to mark workout completed: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) DeleteByID(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM workouts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete workout: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) DeleteCachedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM workouts WHERE cached_at < ?`, timex.FormatSortable(cutoff))
	if err != nil {
		return 0, fmt.Errorf("failed to expire workouts: %w", err)
	}
	return res.RowsAffected()
}

func scanWorkout(scan func(dest ...any) error) (*models.CachedWorkout, error) {
	var data, cachedAt string
	var completed int
	var completedAt sql.NullString
	if err := scan(&data, &cachedAt, &completed, &completedAt); err != nil {
		return nil, err
	}

	var item models.CachedWorkout
	if err := json.Unmarshal([]byte(data), &item.Workout); err != nil {
		return nil, fmt.Errorf("failed to decode workout: %w", err)
	}
	ts, err := timex.ParseSortable(cachedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse cached_at: %w", err)
	}
	item.CachedAt = ts
	item.IsCompleted = completed != 0
	if completedAt.Valid {
		ct, err := timex.ParseSortable(completedAt.String)
		if err != nil {
			return nil, fmt.Errorf("failed to parse completed_at: %w", err)
		}
		item.CompletedAt = &ct
	}
	return &item, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
