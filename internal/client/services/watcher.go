package services

import (
	"context"
	"time"

	"github.com/Moha-Why/WorkOut-sub000/internal/client/remote"
	"github.com/Moha-Why/WorkOut-sub000/internal/logging"
)

const defaultPingTimeout = 3 * time.Second

// Watcher owns the two background sync triggers: it probes the remote store
// on a short interval and fires a full pass on the offline-to-online edge,
// and it runs a periodic full pass as a safety net while online.
type Watcher struct {
	sync          *SyncService
	remote        remote.Store
	checkInterval time.Duration
	syncInterval  time.Duration
	pingTimeout   time.Duration
	log           logging.Logger
}

func NewWatcher(sync *SyncService, rs remote.Store, checkInterval, syncInterval time.Duration, log logging.Logger) *Watcher {
	return &Watcher{
		sync:          sync,
		remote:        rs,
		checkInterval: checkInterval,
		syncInterval:  syncInterval,
		pingTimeout:   defaultPingTimeout,
		log:           log,
	}
}

// Run blocks until ctx is canceled. An initial probe runs immediately so a
// client that starts online does not wait a full check interval to sync.
func (w *Watcher) Run(ctx context.Context) {
	w.probe(ctx)

	check := time.NewTicker(w.checkInterval)
	defer check.Stop()
	full := time.NewTicker(w.syncInterval)
	defer full.Stop()

	for {
		select {
		case <-check.C:
			w.probe(ctx)
		case <-full.C:
			if w.sync.Online() {
				w.sync.SyncAll(ctx)
			}
		case <-ctx.Done():
			return
		}
	}
}

func (w *Watcher) probe(ctx context.Context) {
	pctx, cancel := context.WithTimeout(ctx, w.pingTimeout)
	err := w.remote.Ping(pctx)
	cancel()

	online := err == nil
	was := w.sync.Online()
	w.sync.setOnline(online)

	switch {
	case online && !was:
		w.log.Info(ctx, "back online, syncing backlog")
		w.sync.SyncAll(ctx)
	case !online && was:
		w.log.Info(ctx, "connection lost, entering offline mode")
	}
}
