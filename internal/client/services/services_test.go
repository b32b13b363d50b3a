package services

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/Moha-Why/WorkOut-sub000/internal/client/models"
	"github.com/Moha-Why/WorkOut-sub000/internal/client/store"
	"github.com/Moha-Why/WorkOut-sub000/internal/logging"
	"github.com/stretchr/testify/require"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// newTestStore opens a migrated in-memory store unique to the test.
func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	st := store.Open(context.Background(), dsn, testLogger())
	require.True(t, st.Available())
	t.Cleanup(func() { _ = st.Close() })
	return st
}

// fakeRemote is an in-memory remote store with idempotent inserts, optional
// failure injection, and a block hook for single-flight tests.
type fakeRemote struct {
	mu       sync.Mutex
	logRows  map[string]bool
	compRows map[string]bool
	logCalls int

	failInserts bool
	pingErr     error

	// when set, InsertSetLog signals started and waits for release
	started chan struct{}
	release chan struct{}
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{
		logRows:  make(map[string]bool),
		compRows: make(map[string]bool),
	}
}

func (f *fakeRemote) Ping(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pingErr
}

func (f *fakeRemote) setPingErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pingErr = err
}

func (f *fakeRemote) InsertSetLog(_ context.Context, e *models.SetLog) error {
	if f.started != nil {
		select {
		case f.started <- struct{}{}:
		default:
		}
	}
	if f.release != nil {
		<-f.release
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.logCalls++
	if f.failInserts {
		return errRemoteDown
	}
	f.logRows[e.ID] = true
	return nil
}

func (f *fakeRemote) InsertCompletion(_ context.Context, c *models.PendingCompletion) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failInserts {
		return errRemoteDown
	}
	f.compRows[c.ID] = true
	return nil
}

func (f *fakeRemote) SetLogExists(_ context.Context, id string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.logRows[id], nil
}

func (f *fakeRemote) Close() {}

func (f *fakeRemote) logRowCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.logRows)
}

func (f *fakeRemote) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.logCalls
}
