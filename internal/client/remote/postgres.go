package remote

import (
	"context"
	"fmt"

	"github.com/Moha-Why/WorkOut-sub000/internal/client/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore talks to the backend's relational store over pgx.
// ON CONFLICT DO NOTHING on the client-generated primary key gives the
// idempotent-insert contract the sync engine relies on.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore connects to the backend at dsn.
func NewPostgresStore(ctx context.Context, dsn string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to remote store: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *PostgresStore) InsertSetLog(ctx context.Context, e *models.SetLog) error {
	query := `INSERT INTO set_logs
		(id, user_id, workout_id, exercise_id, set_number, weight, reps, rpe, completed_at, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO NOTHING`
	_, err := s.pool.Exec(ctx, query,
		e.ID, e.UserID, e.WorkoutID, e.ExerciseID, e.SetNumber,
		e.Weight, e.Reps, e.RPE, e.CompletedAt.UTC(), e.Notes)
	if err != nil {
		return fmt.Errorf("failed to insert set log: %w", err)
	}
	return nil
}

func (s *PostgresStore) InsertCompletion(ctx context.Context, c *models.PendingCompletion) error {
	query := `INSERT INTO workout_completions (id, workout_id, user_id, completed_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO NOTHING`
	_, err := s.pool.Exec(ctx, query, c.ID, c.WorkoutID, c.UserID, c.CompletedAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to insert workout completion: %w", err)
	}
	return nil
}

func (s *PostgresStore) SetLogExists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM set_logs WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check set log: %w", err)
	}
	return exists, nil
}

func (s *PostgresStore) Close() {
	s.pool.Close()
}
