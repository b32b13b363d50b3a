package exercises

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

func (r *SQLiteRepository) Upsert(ctx context.Context, e *models.CachedExercise) error {
	if e.ID == "" {
		return common.ErrMissingID
	}
	data, err := json.Marshal(e.Exercise)
	if err != nil {
		return fmt.Errorf("failed to encode exercise: %w", err)
	}
	query := `INSERT INTO exercises (id, data, cached_at) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET data = excluded.data, cached_at = excluded.cached_at`
	_, err = r.db.ExecContext(ctx, query, e.ID, string(data), timex.FormatSortable(e.CachedAt))
	if err != nil {
		return fmt.Errorf("failed to upsert exercise: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.CachedExercise, error) {
	row := r.db.QueryRowContext(ctx, `SELECT data, cached_at FROM exercises WHERE id = ?`, id)
	var data, cachedAt string
	if err := row.Scan(&data, &cachedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("failed to select exercise: %w", err)
	}
	return decode(data, cachedAt)
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.CachedExercise, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT data, cached_at FROM exercises`)
	if err != nil {
		return nil, fmt.Errorf("failed to select exercises: %w", err)
	}
	defer rows.Close()

	var result []models.CachedExercise
	for rows.Next() {
		var data, cachedAt string
		if err := rows.Scan(&data, &cachedAt); err != nil {
			return nil, err
		}
		item, err := decode(data, cachedAt)
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
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM exercises WHERE id = ?`, id).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("failed to check exercise: %w", err)
	}
	return n > 0, nil
}

func (r *SQLiteRepository) DeleteByID(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM exercises WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete exercise: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) DeleteCachedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM exercises WHERE cached_at < ?`, timex.FormatSortable(cutoff))
	if err != nil {
		return 0, fmt.Errorf("failed to expire exercises: %w", err)
	}
	return res.RowsAffected()
}

func decode(data, cachedAt string) (*models.CachedExercise, error) {
	var item models.CachedExercise
	if err := json.Unmarshal([]byte(data), &item.Exercise); err != nil {
		return nil, fmt.Errorf("failed to decode exercise: %w", err)
	}
	ts, err := timex.ParseSortable(cachedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse cached_at: %w", err)
	}
	item.CachedAt = ts
	return &item, nil
}
