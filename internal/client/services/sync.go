package services

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Moha-Why/WorkOut-sub000/internal/client/models"
	"github.com/Moha-Why/WorkOut-sub000/internal/client/remote"
	"github.com/Moha-Why/WorkOut-sub000/internal/client/store"
	"github.com/Moha-Why/WorkOut-sub000/internal/common"
	"github.com/Moha-Why/WorkOut-sub000/internal/logging"
	"github.com/Moha-Why/WorkOut-sub000/internal/retryx"
)

// DefaultRemoteCallTimeout bounds a single remote insert so a hung call
// cannot hold the sync pass open forever.
const DefaultRemoteCallTimeout = 10 * time.Second

// SyncService reconciles unsynced local facts with the remote store. One
// state object per engine instance; status is read through Status() or a
// Subscribe() channel, never through package globals.
//
// A pass runs single-flight: calling SyncAll while one is in flight returns
// the in-progress status without starting another scan. Items within a pass
// sync sequentially and independently; a failed item is recorded and stays
// pending, never discarded.
type SyncService struct {
	remote      remote.Store
	store       *store.Store
	policy      retryx.Policy
	callTimeout time.Duration
	now         func() time.Time
	log         logging.Logger

	online atomic.Bool

	mu       sync.Mutex
	syncing  bool
	lastSync *time.Time
	errors   []models.SyncError
	pending  int
	subs     []chan models.SyncStatus
}

func NewSyncService(rs remote.Store, st *store.Store, policy retryx.Policy, callTimeout time.Duration, log logging.Logger) *SyncService {
	if callTimeout <= 0 {
		callTimeout = DefaultRemoteCallTimeout
	}
	return &SyncService{
		remote:      rs,
		store:       st,
		policy:      policy,
		callTimeout: callTimeout,
		now:         time.Now,
		log:         log,
	}
}

// Online reports the last observed connectivity state.
func (s *SyncService) Online() bool {
	return s.online.Load()
}

func (s *SyncService) setOnline(v bool) {
	s.online.Store(v)
}

// Status returns a snapshot of the engine state.
func (s *SyncService) Status() models.SyncStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.statusLocked()
}

func (s *SyncService) statusLocked() models.SyncStatus {
	st := models.SyncStatus{
		IsSyncing:    s.syncing,
		LastSync:     s.lastSync,
		PendingCount: s.pending,
	}
	st.Errors = append(st.Errors, s.errors...)
	return st
}

// Subscribe returns a channel that receives the status after every completed
// pass. Slow consumers miss intermediate updates rather than blocking sync.
func (s *SyncService) Subscribe() <-chan models.SyncStatus {
	ch := make(chan models.SyncStatus, 1)
	s.mu.Lock()
	s.subs = append(s.subs, ch)
	s.mu.Unlock()
	return ch
}

func (s *SyncService) notify(st models.SyncStatus) {
	s.mu.Lock()
	subs := s.subs
	s.mu.Unlock()
	for _, ch := range subs {
		select {
		case ch <- st:
		default:
		}
	}
}

// SyncAll runs one full backlog pass: every pending completion and set log is
// pushed to the remote store, each wrapped in the shared retry policy. The
// pending count is recomputed from the store afterwards so writes that
// happened during the pass are reflected.
func (s *SyncService) SyncAll(ctx context.Context) models.SyncStatus {
	if !s.Online() {
		return s.Status()
	}

	s.mu.Lock()
	if s.syncing {
		st := s.statusLocked()
		s.mu.Unlock()
		return st
	}
	s.syncing = true
	s.errors = nil
	s.mu.Unlock()

	pendingCompletions, err := s.store.Completions.GetPending(ctx)
	if err != nil {
		s.log.Error(ctx, "failed to load pending completions", "error", err)
	}
	pendingLogs, err := s.store.SetLogs.GetPending(ctx)
	if err != nil {
		s.log.Error(ctx, "failed to load pending set logs", "error", err)
	}

	for i := range pendingCompletions {
		c := pendingCompletions[i]
		if err := s.syncItem(ctx, func(ctx context.Context) error {
			return s.pushCompletion(ctx, &c)
		}); err != nil {
			s.recordError(c.ID, models.SyncItemCompletion, err)
		}
	}

	for i := range pendingLogs {
		e := pendingLogs[i]
		if err := s.syncItem(ctx, func(ctx context.Context) error {
			return s.pushSetLog(ctx, &e)
		}); err != nil {
			s.recordError(e.ID, models.SyncItemSetLog, err)
		}
	}

	count := s.countPending(ctx)
	now := s.now()

	s.mu.Lock()
	s.syncing = false
	s.lastSync = &now
	s.pending = count
	st := s.statusLocked()
	s.mu.Unlock()

	s.notify(st)
	return st
}

// SyncSetLog pushes one entry inline, right after its optimistic local
// write, skipping the backlog scan. On failure the entry simply stays
// unsynced for the next full pass.
func (s *SyncService) SyncSetLog(ctx context.Context, e *models.SetLog) error {
	if !s.Online() {
		return common.ErrOffline
	}
	return s.pushSetLog(ctx, e)
}

// SyncCompletion is the inline counterpart for workout completions.
func (s *SyncService) SyncCompletion(ctx context.Context, c *models.PendingCompletion) error {
	if !s.Online() {
		return common.ErrOffline
	}
	return s.pushCompletion(ctx, c)
}

// syncItem runs one item's push, converting a panic from malformed data into
// an error-list entry instead of killing the pass.
func (s *SyncService) syncItem(ctx context.Context, push func(ctx context.Context) error) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic during sync: %v", p)
		}
	}()
	return push(ctx)
}

func (s *SyncService) pushSetLog(ctx context.Context, e *models.SetLog) error {
	err := retryx.Do(ctx, s.policy, func(ctx context.Context) error {
		cctx, cancel := context.WithTimeout(ctx, s.callTimeout)
		defer cancel()
		return s.remote.InsertSetLog(cctx, e)
	})
	if err != nil {
		return err
	}
	if err := s.store.SetLogs.MarkSynced(ctx, e.ID); err != nil {
		// The remote row exists; the idempotent insert absorbs the
		// re-send this will cause on the next pass.
		return err
	}
	e.Synced = true
	return nil
}

func (s *SyncService) pushCompletion(ctx context.Context, c *models.PendingCompletion) error {
	err := retryx.Do(ctx, s.policy, func(ctx context.Context) error {
		cctx, cancel := context.WithTimeout(ctx, s.callTimeout)
		defer cancel()
		return s.remote.InsertCompletion(cctx, c)
	})
	if err != nil {
		return err
	}
	if err := s.store.Completions.DeleteByID(ctx, c.ID); err != nil {
		return err
	}
	c.Synced = true
	return nil
}

func (s *SyncService) recordError(id, itemType string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errors = append(s.errors, models.SyncError{
		ID:        id,
		Type:      itemType,
		Message:   err.Error(),
		Timestamp: s.now(),
	})
}

func (s *SyncService) countPending(ctx context.Context) int {
	logs, err := s.store.SetLogs.CountPending(ctx)
	if err != nil {
		s.log.Warn(ctx, "failed to count pending set logs", "error", err)
	}
	comps, err := s.store.Completions.CountPending(ctx)
	if err != nil {
		s.log.Warn(ctx, "failed to count pending completions", "error", err)
	}
	return logs + comps
}
