// Package check contains paid-check use cases.
package check

import (
	"context"
	"log/slog"
	"time"

	"github.com/household-budget/backend/internal/application/adapter"
)

// SyncWorker replays cache-only paid-check mutations into the durable store
// once it comes back. While the database is down, marks and unmarks land in
// the cache and are queued as dirty; this worker drains that queue.
type SyncWorker struct {
	checkRepo    adapter.PaidCheckRepository
	checkCache   adapter.PaidCheckCache
	pollInterval time.Duration
}

// SyncWorkerConfig holds configuration for the sync worker.
type SyncWorkerConfig struct {
	PollInterval time.Duration
}

// DefaultSyncWorkerConfig returns the default sync worker configuration.
func DefaultSyncWorkerConfig() SyncWorkerConfig {
	return SyncWorkerConfig{
		PollInterval: 10 * time.Second,
	}
}

// NewSyncWorker creates a new paid-check sync worker.
func NewSyncWorker(checkRepo adapter.PaidCheckRepository, checkCache adapter.PaidCheckCache, config SyncWorkerConfig) *SyncWorker {
	return &SyncWorker{
		checkRepo:    checkRepo,
		checkCache:   checkCache,
		pollInterval: config.PollInterval,
	}
}

// Start begins the worker loop. It blocks until the context is cancelled.
func (w *SyncWorker) Start(ctx context.Context) {
	slog.Info("Paid-check sync worker started",
		"poll_interval", w.pollInterval,
	)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	// Drain immediately on start, then on ticker
	w.drain(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Paid-check sync worker shutting down")
			return
		case <-ticker.C:
			w.drain(ctx)
		}
	}
}

// drain replays every queued mutation. A replay failure leaves the entry in
// the queue for the next tick; clearing only happens after the durable store
// accepts the write.
func (w *SyncWorker) drain(ctx context.Context) {
	dirty, err := w.checkCache.DirtyChecks(ctx)
	if err != nil {
		slog.Error("Failed to read paid-check replay queue", "error", err)
		return
	}

	if len(dirty) == 0 {
		return
	}

	slog.Debug("Replaying paid-check mutations", "count", len(dirty))

	for _, entry := range dirty {
		select {
		case <-ctx.Done():
			return
		default:
		}

		check := entry.Check
		var replayErr error
		if entry.Deleted {
			replayErr = w.checkRepo.Delete(ctx, &check)
		} else {
			replayErr = w.checkRepo.Save(ctx, &check)
		}
		if replayErr != nil {
			slog.Warn("Paid-check replay failed, will retry",
				"bill_key", check.BillKey,
				"period", check.PeriodKey(),
				"error", replayErr,
			)
			continue
		}

		if err := w.checkCache.ClearDirty(ctx, &check, entry.Deleted); err != nil {
			slog.Error("Failed to clear replayed paid-check",
				"bill_key", check.BillKey,
				"error", err,
			)
		}
	}
}

// DrainNow replays all queued mutations immediately (useful for testing).
func (w *SyncWorker) DrainNow(ctx context.Context) {
	w.drain(ctx)
}
