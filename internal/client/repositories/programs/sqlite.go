package programs

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

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

func (r *SQLiteRepository) Upsert(ctx context.Context, p *models.CachedProgram) error {
	if p.ID == "" {
		return common.ErrMissingID
	}
	data, err := json.Marshal(p.Program)
	if err != nil {
		return fmt.Errorf("failed to encode program: %w", err)
	}
	query := `INSERT INTO programs (id, data, cached_at) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET data = excluded.data, cached_at = excluded.cached_at`
	_, err = r.db.ExecContext(ctx, query, p.ID, string(data), timex.FormatSortable(p.CachedAt))
	if err != nil {
		return fmt.Errorf("failed to upsert program: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.CachedProgram, error) {
	row := r.db.QueryRowContext(ctx, `SELECT data, cached_at FROM programs WHERE id = ?`, id)
	var data, cachedAt string
	if err := row.Scan(&data, &cachedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("failed to select program: %w", err)
	}
	return decode(data, cachedAt)
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.CachedProgram, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT data, cached_at FROM programs`)
	if err != nil {
		return nil, fmt.Errorf("failed to select programs: %w", err)
	}
	defer rows.Close()

	var result []models.CachedProgram
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

func (r *SQLiteRepository) DeleteByID(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM programs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete program: %w", err)
	}
	return nil
}

func decode(data, cachedAt string) (*models.CachedProgram, error) {
	var item models.CachedProgram
	if err := json.Unmarshal([]byte(data), &item.Program); err != nil {
		return nil, fmt.Errorf("failed to decode program: %w", err)
	}
	ts, err := timex.ParseSortable(cachedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse cached_at: %w", err)
	}
	item.CachedAt = ts
	return &item, nil
}
