// Package check contains paid-check use cases: marking bills paid within a
// pay period, with a cache fallback that keeps working while the database is
// down.
package check

import (
	"context"
	"log/slog"

	"github.com/household-budget/backend/internal/application/adapter"
	"github.com/household-budget/backend/internal/domain/entity"
	domainerror "github.com/household-budget/backend/internal/domain/error"
)

// writeThrough applies a check mutation to the durable store and mirrors it
// into the cache. A durable-store failure downgrades to cache-only: the
// mutation is queued as dirty so the sync worker can replay it later. Only
// when both stores fail does the caller see an error.
func writeThrough(ctx context.Context, repo adapter.PaidCheckRepository, cache adapter.PaidCheckCache, logger *slog.Logger, check *entity.PaidCheck, deleted bool) error {
	var repoErr error
	if deleted {
		repoErr = repo.Delete(ctx, check)
	} else {
		repoErr = repo.Save(ctx, check)
	}

	var cacheErr error
	if deleted {
		cacheErr = cache.Delete(ctx, check)
	} else {
		cacheErr = cache.Save(ctx, check)
	}

	if repoErr == nil {
		if cacheErr != nil {
			logger.Warn("paid-check cache write failed",
				slog.String("bill_key", check.BillKey),
				slog.String("error", cacheErr.Error()))
		}
		return nil
	}

	if cacheErr != nil {
		return domainerror.ErrCheckStoreUnavailable
	}

	logger.Warn("durable paid-check write failed, queued for replay",
		slog.String("bill_key", check.BillKey),
		slog.String("period", check.PeriodKey()),
		slog.String("error", repoErr.Error()))

	if err := cache.MarkDirty(ctx, check, deleted); err != nil {
		logger.Error("failed to queue paid-check for replay",
			slog.String("bill_key", check.BillKey),
			slog.String("error", err.Error()))
	}
	return nil
}

// ReadPeriod reads the paid set for one period, preferring the durable store
// and falling back to the cache when it is unreachable.
func ReadPeriod(ctx context.Context, repo adapter.PaidCheckRepository, cache adapter.PaidCheckCache, logger *slog.Logger, year, month, period int) ([]*entity.PaidCheck, error) {
	checks, err := repo.FindByPeriod(ctx, year, month, period)
	if err == nil {
		dirty, dirtyErr := cache.DirtyChecks(ctx)
		if dirtyErr != nil {
			logger.Warn("paid-check replay queue unreadable, serving durable reads as-is",
				slog.String("error", dirtyErr.Error()))
			return checks, nil
		}
		return overlayDirty(checks, dirty, year, month, period), nil
	}

	logger.Warn("durable paid-check read failed, serving from cache",
		slog.Int("year", year),
		slog.Int("month", month),
		slog.Int("period", period),
		slog.String("error", err.Error()))

	cached, cacheErr := cache.FindByPeriod(ctx, year, month, period)
	if cacheErr != nil {
		return nil, domainerror.ErrCheckStoreUnavailable
	}
	return cached, nil
}

// overlayDirty applies queued mutations for the period on top of a durable
// read, so marks and unmarks made while the database was down stay visible
// until the sync worker replays them.
func overlayDirty(checks []*entity.PaidCheck, dirty []adapter.DirtyCheck, year, month, period int) []*entity.PaidCheck {
	pending := make(map[string]bool)
	for _, d := range dirty {
		if d.Check.Year == year && d.Check.Month == month && d.Check.Period == period {
			pending[d.Check.BillKey] = d.Deleted
		}
	}
	if len(pending) == 0 {
		return checks
	}

	merged := make([]*entity.PaidCheck, 0, len(checks)+len(pending))
	seen := make(map[string]bool, len(checks))
	for _, check := range checks {
		seen[check.BillKey] = true
		if deleted, ok := pending[check.BillKey]; ok && deleted {
			continue
		}
		merged = append(merged, check)
	}
	for billKey, deleted := range pending {
		if !deleted && !seen[billKey] {
			merged = append(merged, &entity.PaidCheck{Year: year, Month: month, Period: period, BillKey: billKey})
		}
	}
	return merged
}
