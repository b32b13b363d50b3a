package services

import (
	"context"
	"time"

	"github.com/Moha-Why/WorkOut-sub000/internal/client/identity"
	"github.com/Moha-Why/WorkOut-sub000/internal/client/models"
	"github.com/Moha-Why/WorkOut-sub000/internal/client/store"
	"github.com/Moha-Why/WorkOut-sub000/internal/logging"
	"github.com/google/uuid"
)

// JournalService records every completed set (and workout completion) as an
// immutable, uniquely identified fact, independent of connectivity.
//
// Writes are optimistic: the caller shows the set as logged immediately and
// the returned error is the reconciliation signal. A non-nil error means the
// fact was not persisted and the optimistic view should be reverted.
type JournalService struct {
	store    *store.Store
	identity identity.Provider
	syncer   *SyncService // optional; enables the inline sync attempt
	now      func() time.Time
	log      logging.Logger
}

func NewJournalService(st *store.Store, id identity.Provider, syncer *SyncService, log logging.Logger) *JournalService {
	return &JournalService{store: st, identity: id, syncer: syncer, now: time.Now, log: log}
}

// LogSet appends one completed set. Missing fields are filled in: a
// client-generated id (the idempotency key for every remote send), the
// current user, and the completion time. If the remote is reachable the
// entry is pushed inline; an inline failure leaves it pending for the next
// full pass and is not an error here.
func (s *JournalService) LogSet(ctx context.Context, entry models.SetLog) (*models.SetLog, error) {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.UserID == "" {
		userID, err := s.identity.UserID(ctx)
		if err != nil {
			return nil, err
		}
		entry.UserID = userID
	}
	if entry.CompletedAt.IsZero() {
		entry.CompletedAt = s.now()
	}
	entry.Synced = false

	if err := s.store.SetLogs.Insert(ctx, &entry); err != nil {
		return nil, err
	}

	if s.syncer != nil && s.syncer.Online() {
		if err := s.syncer.SyncSetLog(ctx, &entry); err != nil {
			s.log.Warn(ctx, "inline sync failed, set log stays pending",
				"set_log_id", entry.ID, "error", err)
		}
	}

	return &entry, nil
}

// SaveSetLog writes an entry with the synced flag as given. Pass
// initiallySynced=true only when a remote write is already confirmed.
func (s *JournalService) SaveSetLog(ctx context.Context, entry models.SetLog, initiallySynced bool) error {
	entry.Synced = initiallySynced
	return s.store.SetLogs.Insert(ctx, &entry)
}

// CompleteWorkout records a workout-finished event, sets the local
// completion shadow on the cached workout, and attempts an inline push.
func (s *JournalService) CompleteWorkout(ctx context.Context, workoutID string) (*models.PendingCompletion, error) {
	userID, err := s.identity.UserID(ctx)
	if err != nil {
		return nil, err
	}

	c := &models.PendingCompletion{
		ID:          uuid.NewString(),
		WorkoutID:   workoutID,
		UserID:      userID,
		CompletedAt: s.now(),
	}
	if err := s.store.Completions.Insert(ctx, c); err != nil {
		return nil, err
	}

	if err := s.store.Workouts.MarkCompleted(ctx, workoutID, c.CompletedAt); err != nil {
		s.log.Warn(ctx, "failed to set completion shadow", "workout_id", workoutID, "error", err)
	}

	if s.syncer != nil && s.syncer.Online() {
		if err := s.syncer.SyncCompletion(ctx, c); err != nil {
			s.log.Warn(ctx, "inline sync failed, completion stays pending",
				"completion_id", c.ID, "error", err)
		}
	}

	return c, nil
}

// LogsForWorkout returns all sets recorded for a workout.
func (s *JournalService) LogsForWorkout(ctx context.Context, workoutID string) ([]models.SetLog, error) {
	return s.store.SetLogs.GetByWorkout(ctx, workoutID)
}

// LogsForExercise returns all sets recorded for an exercise.
func (s *JournalService) LogsForExercise(ctx context.Context, exerciseID string) ([]models.SetLog, error) {
	return s.store.SetLogs.GetByExercise(ctx, exerciseID)
}

// LogsForUser returns all sets recorded by a user.
func (s *JournalService) LogsForUser(ctx context.Context, userID string) ([]models.SetLog, error) {
	return s.store.SetLogs.GetByUser(ctx, userID)
}

// PendingLogs returns the sync backlog.
func (s *JournalService) PendingLogs(ctx context.Context) ([]models.SetLog, error) {
	return s.store.SetLogs.GetPending(ctx)
}

// MarkSynced flips an entry's synced flag; idempotent.
func (s *JournalService) MarkSynced(ctx context.Context, id string) error {
	return s.store.SetLogs.MarkSynced(ctx, id)
}

// PendingCount is the cheap badge count: unsynced set logs plus unsynced
// completions, counted by index without loading rows.
func (s *JournalService) PendingCount(ctx context.Context) (int, error) {
	logs, err := s.store.SetLogs.CountPending(ctx)
	if err != nil {
		return 0, err
	}
	comps, err := s.store.Completions.CountPending(ctx)
	if err != nil {
		return 0, err
	}
	return logs + comps, nil
}

// PreviousLogsForExercise returns the most recent log per set number for an
// exercise, across all workouts except the one in progress. Zero history
// yields an empty map.
func (s *JournalService) PreviousLogsForExercise(ctx context.Context, exerciseID, excludeWorkoutID string) (map[int]models.SetLog, error) {
	logs, err := s.store.SetLogs.GetByExerciseExcludingWorkout(ctx, exerciseID, excludeWorkoutID)
	if err != nil {
		return nil, err
	}
	result := make(map[int]models.SetLog, len(logs))
	for _, l := range logs {
		// Rows arrive most recent first; the first hit per set number wins.
		if _, ok := result[l.SetNumber]; !ok {
			result[l.SetNumber] = l
		}
	}
	return result, nil
}
