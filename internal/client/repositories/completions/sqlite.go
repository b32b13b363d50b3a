package completions

import (
	"context"
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

func (r *SQLiteRepository) Insert(ctx context.Context, c *models.PendingCompletion) error {
	if c.ID == "" {
		return common.ErrMissingID
	}
	if c.UserID == "" {
		return common.ErrMissingUserID
	}
	query := `INSERT INTO pending_completions (id, workout_id, user_id, completed_at, synced)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING`
	_, err := r.db.ExecContext(ctx, query,
		c.ID, c.WorkoutID, c.UserID, timex.FormatSortable(c.CompletedAt), boolToInt(c.Synced))
	if err != nil {
		return fmt.Errorf("failed to insert pending completion: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetPending(ctx context.Context) ([]models.PendingCompletion, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, workout_id, user_id, completed_at, synced
		 FROM pending_completions WHERE synced = 0 ORDER BY completed_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to select pending completions: %w", err)
	}
	defer rows.Close()

	var result []models.PendingCompletion
	for rows.Next() {
		var item models.PendingCompletion
		var completedAt string
		var synced int
		if err := rows.Scan(&item.ID, &item.WorkoutID, &item.UserID, &completedAt, &synced); err != nil {
			return nil, err
		}
		ts, err := timex.ParseSortable(completedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse completed_at: %w", err)
		}
		item.CompletedAt = ts
		item.Synced = synced != 0
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) CountPending(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM pending_completions WHERE synced = 0`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending completions: %w", err)
	}
	return n, nil
}

func (r *SQLiteRepository) DeleteByID(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM pending_completions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete pending completion: %w", err)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
