// Package store opens the local offline database, runs goose migrations, and
// hands out the per-table repositories. When the database cannot be opened
// (read-only media, missing driver support on the host, corrupt file) it
// degrades to no-op repositories instead of failing the host application.
package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Moha-Why/WorkOut-sub000/internal/client/migrations"
	"github.com/Moha-Why/WorkOut-sub000/internal/client/repositories/completions"
	"github.com/Moha-Why/WorkOut-sub000/internal/client/repositories/exercises"
	"github.com/Moha-Why/WorkOut-sub000/internal/client/repositories/programs"
	"github.com/Moha-Why/WorkOut-sub000/internal/client/repositories/setlogs"
	"github.com/Moha-Why/WorkOut-sub000/internal/client/repositories/videos"
	"github.com/Moha-Why/WorkOut-sub000/internal/client/repositories/workouts"
	"github.com/Moha-Why/WorkOut-sub000/internal/dbx"
	"github.com/Moha-Why/WorkOut-sub000/internal/logging"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// Store aggregates the local repositories over one sqlite database.
type Store struct {
	Exercises   exercises.Repository
	Workouts    workouts.Repository
	Programs    programs.Repository
	Videos      videos.Repository
	SetLogs     setlogs.Repository
	Completions completions.Repository

	db  *sql.DB
	log logging.Logger
}

// RunMigrations applies the embedded goose migrations. The goose version
// table carries the store's schema version; re-opening with a newer build
// applies only the missing steps and never touches existing data.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// Open opens (or creates) the database at dsn and wires the repositories.
// Any failure is logged and produces a no-op store: reads return empty
// results, writes are dropped, and the host keeps running.
func Open(ctx context.Context, dsn string, log logging.Logger) *Store {
	if dsn == "" {
		log.Warn(ctx, "no database path configured, offline storage disabled")
		return newNoop(log)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Error(ctx, "failed to open local database, offline storage disabled", "error", err)
		return newNoop(log)
	}
	// modernc sqlite serializes writes itself; one connection avoids
	// SQLITE_BUSY under interleaved async access.
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		log.Error(ctx, "failed to migrate local database, offline storage disabled", "error", err)
		_ = db.Close()
		return newNoop(log)
	}

	return &Store{
		Exercises:   exercises.NewSQLiteRepository(db),
		Workouts:    workouts.NewSQLiteRepository(db),
		Programs:    programs.NewSQLiteRepository(db),
		Videos:      videos.NewSQLiteRepository(db),
		SetLogs:     setlogs.NewSQLiteRepository(db),
		Completions: completions.NewSQLiteRepository(db),
		db:          db,
		log:         log,
	}
}

func newNoop(log logging.Logger) *Store {
	return &Store{
		Exercises:   exercises.NewNoopRepository(),
		Workouts:    workouts.NewNoopRepository(),
		Programs:    programs.NewNoopRepository(),
		Videos:      videos.NewNoopRepository(),
		SetLogs:     setlogs.NewNoopRepository(),
		Completions: completions.NewNoopRepository(),
		log:         log,
	}
}

// Available reports whether persistent storage is actually backing the store.
func (s *Store) Available() bool {
	return s.db != nil
}

// ClearAll wipes every table in one transaction, so concurrent readers see
// either the full data set or none of it. This is the "delete all offline
// data" operation.
func (s *Store) ClearAll(ctx context.Context) error {
	if s.db == nil {
		return nil
	}
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for _, table := range []string{
			"exercises", "workouts", "programs", "cached_videos",
			"set_logs", "pending_completions",
		} {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
				return fmt.Errorf("failed to clear %s: %w", table, err)
			}
		}
		return nil
	})
}

// Close closes the underlying database, if any.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
