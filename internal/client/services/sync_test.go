package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Moha-Why/WorkOut-sub000/internal/client/identity"
	"github.com/Moha-Why/WorkOut-sub000/internal/client/models"
	"github.com/Moha-Why/WorkOut-sub000/internal/common"
	"github.com/Moha-Why/WorkOut-sub000/internal/retryx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errRemoteDown = errors.New("remote unavailable")

func testPolicy() retryx.Policy {
	return retryx.Policy{MaxRetries: 1, BaseDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond}
}

func newSyncFixture(t *testing.T) (*SyncService, *fakeRemote, *JournalService) {
	t.Helper()
	st := newTestStore(t)
	fr := newFakeRemote()
	sync := NewSyncService(fr, st, testPolicy(), time.Second, testLogger())
	sync.setOnline(true)
	journal := NewJournalService(st, identity.Static("user-1"), nil, testLogger())
	return sync, fr, journal
}

func TestSyncAll_PushesBacklogAndFlagsSynced(t *testing.T) {
	sync, fr, journal := newSyncFixture(t)
	ctx := context.Background()

	e1, err := journal.LogSet(ctx, models.SetLog{WorkoutID: "w1", ExerciseID: "bench", SetNumber: 1, Reps: 8})
	require.NoError(t, err)
	e2, err := journal.LogSet(ctx, models.SetLog{WorkoutID: "w1", ExerciseID: "bench", SetNumber: 2, Reps: 6})
	require.NoError(t, err)

	c, err := journal.CompleteWorkout(ctx, "w1")
	require.NoError(t, err)

	st := sync.SyncAll(ctx)

	assert.False(t, st.IsSyncing)
	assert.Empty(t, st.Errors)
	assert.Equal(t, 0, st.PendingCount)
	require.NotNil(t, st.LastSync)

	assert.Equal(t, 2, fr.logRowCount())
	assert.True(t, fr.compRows[c.ID])

	// flags are persisted, not just in-memory
	got, err := journal.PendingLogs(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
	for _, id := range []string{e1.ID, e2.ID} {
		l, err := sync.store.SetLogs.GetByID(ctx, id)
		require.NoError(t, err)
		assert.True(t, l.Synced)
	}

	// the synced completion row is removed, not flagged
	n, err := sync.store.Completions.CountPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestSyncSetLog_DuplicateSendInsertsOnce(t *testing.T) {
	sync, fr, journal := newSyncFixture(t)
	ctx := context.Background()

	e, err := journal.LogSet(ctx, models.SetLog{WorkoutID: "w1", ExerciseID: "bench", SetNumber: 1, Reps: 8})
	require.NoError(t, err)
	require.NoError(t, sync.SyncSetLog(ctx, e))

	// a lost ack makes the client re-send the same id
	require.NoError(t, sync.SyncSetLog(ctx, e))

	assert.Equal(t, 2, fr.calls())
	assert.Equal(t, 1, fr.logRowCount())
}

func TestSyncAll_FailureKeepsEntriesPending(t *testing.T) {
	sync, fr, journal := newSyncFixture(t)
	ctx := context.Background()

	fr.failInserts = true
	sync.setOnline(false)
	_, err := journal.LogSet(ctx, models.SetLog{WorkoutID: "w1", ExerciseID: "bench", SetNumber: 1, Reps: 8})
	require.NoError(t, err)
	sync.setOnline(true)

	st := sync.SyncAll(ctx)

	require.Len(t, st.Errors, 1)
	assert.Equal(t, models.SyncItemSetLog, st.Errors[0].Type)
	assert.Equal(t, 1, st.PendingCount)

	pending, err := journal.PendingLogs(ctx)
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	// once the remote recovers the same entry goes through
	fr.failInserts = false
	st = sync.SyncAll(ctx)
	assert.Empty(t, st.Errors)
	assert.Equal(t, 0, st.PendingCount)
	assert.Equal(t, 1, fr.logRowCount())
}

func TestSyncAll_OfflineReturnsWithoutScanning(t *testing.T) {
	sync, fr, journal := newSyncFixture(t)
	ctx := context.Background()

	sync.setOnline(false)
	_, err := journal.LogSet(ctx, models.SetLog{WorkoutID: "w1", ExerciseID: "bench", SetNumber: 1, Reps: 8})
	require.NoError(t, err)

	st := sync.SyncAll(ctx)
	assert.Nil(t, st.LastSync)
	assert.Equal(t, 0, fr.calls())
}

func TestSyncAll_SingleFlight(t *testing.T) {
	sync, fr, journal := newSyncFixture(t)
	ctx := context.Background()

	_, err := journal.LogSet(ctx, models.SetLog{WorkoutID: "w1", ExerciseID: "bench", SetNumber: 1, Reps: 8})
	require.NoError(t, err)

	fr.started = make(chan struct{}, 1)
	fr.release = make(chan struct{})

	done := make(chan models.SyncStatus, 1)
	go func() {
		done <- sync.SyncAll(ctx)
	}()

	<-fr.started

	// a second pass while the first is in flight reports in-progress
	// without touching the remote again
	st := sync.SyncAll(ctx)
	assert.True(t, st.IsSyncing)

	close(fr.release)
	final := <-done
	assert.False(t, final.IsSyncing)
	assert.Equal(t, 1, fr.logRowCount())
}

func TestSyncSetLog_Offline(t *testing.T) {
	sync, _, _ := newSyncFixture(t)
	sync.setOnline(false)

	err := sync.SyncSetLog(context.Background(), &models.SetLog{ID: "x"})
	require.ErrorIs(t, err, common.ErrOffline)
}

func TestSubscribe_ReceivesStatusAfterPass(t *testing.T) {
	sync, _, journal := newSyncFixture(t)
	ctx := context.Background()

	ch := sync.Subscribe()

	_, err := journal.LogSet(ctx, models.SetLog{WorkoutID: "w1", ExerciseID: "bench", SetNumber: 1, Reps: 8})
	require.NoError(t, err)
	sync.SyncAll(ctx)

	select {
	case st := <-ch:
		assert.Equal(t, 0, st.PendingCount)
	case <-time.After(time.Second):
		t.Fatal("no status notification after sync pass")
	}
}

func TestScenario_OfflineLoggingThenReconnect(t *testing.T) {
	sync, fr, _ := newSyncFixture(t)
	ctx := context.Background()

	// journal wired to the syncer, starting offline
	journal := NewJournalService(sync.store, identity.Static("user-1"), sync, testLogger())
	sync.setOnline(false)

	for i := 1; i <= 3; i++ {
		_, err := journal.LogSet(ctx, models.SetLog{WorkoutID: "w1", ExerciseID: "squat", SetNumber: i, Reps: 5})
		require.NoError(t, err)
	}
	assert.Equal(t, 0, fr.calls())

	n, err := journal.PendingCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	sync.setOnline(true)
	st := sync.SyncAll(ctx)

	assert.Empty(t, st.Errors)
	assert.Equal(t, 0, st.PendingCount)
	assert.Equal(t, 3, fr.logRowCount())
}
