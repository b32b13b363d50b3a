package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/Moha-Why/WorkOut-sub000/internal/client/config"
	"github.com/Moha-Why/WorkOut-sub000/internal/client/identity"
	"github.com/Moha-Why/WorkOut-sub000/internal/client/remote"
	"github.com/Moha-Why/WorkOut-sub000/internal/client/services"
	"github.com/Moha-Why/WorkOut-sub000/internal/client/store"
	"github.com/Moha-Why/WorkOut-sub000/internal/logging"
	"github.com/Moha-Why/WorkOut-sub000/internal/retryx"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	logger := logging.NewDefault()

	st := store.Open(ctx, cfg.DatabasePath, logger)
	defer st.Close()

	cache := services.NewCacheService(st, services.StatfsQuota{Path: "."}, cfg.CacheTTL, logger)
	if _, err := cache.SweepExpired(ctx); err != nil {
		logger.Warn(ctx, "cache sweep failed", "error", err)
	}

	if cfg.RemoteDSN == "" {
		logger.Warn(ctx, "no remote DSN configured, running offline-only")
		<-ctx.Done()
		return
	}

	rs, err := remote.NewPostgresStore(ctx, cfg.RemoteDSN)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer rs.Close()

	var id identity.Provider
	switch {
	case cfg.UserID != "":
		id = identity.Static(cfg.UserID)
	case cfg.AccessToken != "":
		id = identity.NewTokenProvider(cfg.AccessToken)
	default:
		log.Fatal("either a user id or an access token is required")
	}

	policy := retryx.Policy{
		MaxRetries: cfg.MaxRetries,
		BaseDelay:  cfg.RetryBaseDelay,
		MaxDelay:   cfg.RetryMaxDelay,
	}
	syncer := services.NewSyncService(rs, st, policy, cfg.RemoteCallTimeout, logger)
	journal := services.NewJournalService(st, id, syncer, logger)

	go func() {
		for status := range pump(ctx, syncer.Subscribe()) {
			logger.Info(ctx, "sync pass finished",
				"pending", status.PendingCount, "errors", len(status.Errors))
		}
	}()

	if n, err := journal.PendingCount(ctx); err == nil && n > 0 {
		logger.Info(ctx, "pending items awaiting sync", "count", n)
	}

	watcher := services.NewWatcher(syncer, rs, cfg.OnlineCheckInterval, cfg.SyncInterval, logger)
	logger.Info(ctx, "offline sync client started", "db", cfg.DatabasePath)
	watcher.Run(ctx)
}

// pump closes the returned channel on ctx cancellation so the status loop
// above exits cleanly.
func pump[T any](ctx context.Context, in <-chan T) <-chan T {
	out := make(chan T)
	go func() {
		defer close(out)
		for {
			select {
			case v := <-in:
				select {
				case out <- v:
				case <-ctx.Done():
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}
