package setlogs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Moha-Why/WorkOut-sub000/internal/client/models"
	"github.com/Moha-Why/WorkOut-sub000/internal/common"
	"github.com/Moha-Why/WorkOut-sub000/internal/dbx"
	"github.com/Moha-Why/WorkOut-sub000/internal/timex"
)

const columns = `id, user_id, workout_id, exercise_id, set_number, weight, reps, rpe, completed_at, notes, synced`

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Insert(ctx context.Context, e *models.SetLog) error {
	if e.ID == "" {
		return common.ErrMissingID
	}
	if e.UserID == "" {
		return common.ErrMissingUserID
	}
	query := `INSERT INTO set_logs (` + columns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING`
	_, err := r.db.ExecContext(ctx, query,
		e.ID, e.UserID, e.WorkoutID, e.ExerciseID, e.SetNumber,
		e.Weight, e.Reps, e.RPE, timex.FormatSortable(e.CompletedAt), e.Notes,
		boolToInt(e.Synced))
	if err != nil {
		return fmt.Errorf("failed to insert set log: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.SetLog, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+columns+` FROM set_logs WHERE id = ?`, id)
	item, err := scanSetLog(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("failed to select set log: %w", err)
	}
	return item, nil
}

func (r *SQLiteRepository) GetByWorkout(ctx context.Context, workoutID string) ([]models.SetLog, error) {
	return r.query(ctx, `SELECT `+columns+` FROM set_logs WHERE workout_id = ? ORDER BY completed_at`, workoutID)
}

func (r *SQLiteRepository) GetByExercise(ctx context.Context, exerciseID string) ([]models.SetLog, error) {
	return r.query(ctx, `SELECT `+columns+` FROM set_logs WHERE exercise_id = ? ORDER BY completed_at`, exerciseID)
}

func (r *SQLiteRepository) GetByUser(ctx context.Context, userID string) ([]models.SetLog, error) {
	return r.query(ctx, `SELECT `+columns+` FROM set_logs WHERE user_id = ? ORDER BY completed_at`, userID)
}

func (r *SQLiteRepository) GetPending(ctx context.Context) ([]models.SetLog, error) {
	return r.query(ctx, `SELECT `+columns+` FROM set_logs WHERE synced = 0 ORDER BY completed_at`)
}

func (r *SQLiteRepository) CountPending(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM set_logs WHERE synced = 0`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending set logs: %w", err)
	}
	return n, nil
}

func (r *SQLiteRepository) MarkSynced(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE set_logs SET synced = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to mark set log synced: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetByExerciseExcludingWorkout(ctx context.Context, exerciseID, excludeWorkoutID string) ([]models.SetLog, error) {
	return r.query(ctx,
		`SELECT `+columns+` FROM set_logs
		 WHERE exercise_id = ? AND workout_id <> ?
		 ORDER BY completed_at DESC`,
		exerciseID, excludeWorkoutID)
}

func (r *SQLiteRepository) query(ctx context.Context, q string, args ...any) ([]models.SetLog, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select set logs: %w", err)
	}
	defer rows.Close()

	var result []models.SetLog
	for rows.Next() {
		item, err := scanSetLog(rows.Scan)
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

func scanSetLog(scan func(dest ...any) error) (*models.SetLog, error) {
	var item models.SetLog
	var completedAt string
	var synced int
	if err := scan(&item.ID, &item.UserID, &item.WorkoutID, &item.ExerciseID,
		&item.SetNumber, &item.Weight, &item.Reps, &item.RPE,
		&completedAt, &item.Notes, &synced); err != nil {
		return nil, err
	}
	ts, err := timex.ParseSortable(completedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse completed_at: %w", err)
	}
	item.CompletedAt = ts
	item.Synced = synced != 0
	return &item, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
