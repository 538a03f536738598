package adapter

import (
	"context"

	"github.com/household-budget/backend/internal/domain/entity"
)

// PaidCheckRepository is the durable store for paid bill checks.
type PaidCheckRepository interface {
	// FindByPeriod retrieves all checks for a given year, month and period.
	FindByPeriod(ctx context.Context, year, month, period int) ([]*entity.PaidCheck, error)

	// Save records a check; saving an already recorded check is a no-op.
	Save(ctx context.Context, check *entity.PaidCheck) error

	// Delete removes a check; deleting an absent check is a no-op.
	Delete(ctx context.Context, check *entity.PaidCheck) error
}

// PaidCheckCache is the fast fallback store for paid bill checks. It keeps
// serving reads and accepting writes while the durable store is down, and
// tracks which entries still need to be replayed.
type PaidCheckCache interface {
	// FindByPeriod retrieves all cached checks for a given year, month and period.
	FindByPeriod(ctx context.Context, year, month, period int) ([]*entity.PaidCheck, error)

	// Save records a check in the cache.
	Save(ctx context.Context, check *entity.PaidCheck) error

	// Delete removes a check from the cache.
	Delete(ctx context.Context, check *entity.PaidCheck) error

	// MarkDirty queues a check mutation for replay against the durable store.
	// Deleted reports whether the mutation was a removal.
	MarkDirty(ctx context.Context, check *entity.PaidCheck, deleted bool) error

	// DirtyChecks returns all queued mutations.
	DirtyChecks(ctx context.Context) ([]DirtyCheck, error)

	// ClearDirty removes a replayed mutation from the queue. The entry is
	// removed only while it still holds the replayed state; a mutation queued
	// for the same check after the replay read stays for the next pass.
	ClearDirty(ctx context.Context, check *entity.PaidCheck, deleted bool) error
}

// DirtyCheck is a cached check mutation awaiting replay.
type DirtyCheck struct {
	Check   entity.PaidCheck
	Deleted bool
}
