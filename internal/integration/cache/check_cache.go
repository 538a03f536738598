// Package cache implements the Redis-backed paid-check fallback store.
package cache

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/household-budget/backend/internal/application/adapter"
	"github.com/household-budget/backend/internal/domain/entity"
)

const (
	// periodKeyPrefix namespaces the per-period sets of paid bill keys.
	periodKeyPrefix = "paidchecks:"
	// dirtyKey is the hash of mutations awaiting replay into the database.
	dirtyKey = "paidchecks:dirty"

	dirtySaved   = "saved"
	dirtyDeleted = "deleted"
)

// checkCache implements the adapter.PaidCheckCache interface on Redis. Each
// period is a set of bill keys; the dirty hash records which mutations have
// not yet reached the durable store.
type checkCache struct {
	client *redis.Client
}

// NewCheckCache creates a new Redis paid-check cache instance.
func NewCheckCache(client *redis.Client) adapter.PaidCheckCache {
	return &checkCache{
		client: client,
	}
}

func periodKey(year, month, period int) string {
	return fmt.Sprintf("%s%d-%d-%d", periodKeyPrefix, year, month, period)
}

func dirtyField(check *entity.PaidCheck) string {
	return fmt.Sprintf("%d:%d:%d:%s", check.Year, check.Month, check.Period, check.BillKey)
}

// FindByPeriod retrieves all cached checks for a given year, month and period.
func (c *checkCache) FindByPeriod(ctx context.Context, year, month, period int) ([]*entity.PaidCheck, error) {
	members, err := c.client.SMembers(ctx, periodKey(year, month, period)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read cached checks: %w", err)
	}

	checks := make([]*entity.PaidCheck, len(members))
	for i, billKey := range members {
		checks[i] = &entity.PaidCheck{Year: year, Month: month, Period: period, BillKey: billKey}
	}
	return checks, nil
}

// Save records a check in the cache.
func (c *checkCache) Save(ctx context.Context, check *entity.PaidCheck) error {
	key := periodKey(check.Year, check.Month, check.Period)
	if err := c.client.SAdd(ctx, key, check.BillKey).Err(); err != nil {
		return fmt.Errorf("failed to cache check: %w", err)
	}
	return nil
}

// Delete removes a check from the cache.
func (c *checkCache) Delete(ctx context.Context, check *entity.PaidCheck) error {
	key := periodKey(check.Year, check.Month, check.Period)
	if err := c.client.SRem(ctx, key, check.BillKey).Err(); err != nil {
		return fmt.Errorf("failed to remove cached check: %w", err)
	}
	return nil
}

// MarkDirty queues a check mutation for replay against the durable store.
func (c *checkCache) MarkDirty(ctx context.Context, check *entity.PaidCheck, deleted bool) error {
	state := dirtySaved
	if deleted {
		state = dirtyDeleted
	}
	if err := c.client.HSet(ctx, dirtyKey, dirtyField(check), state).Err(); err != nil {
		return fmt.Errorf("failed to queue check for replay: %w", err)
	}
	return nil
}

// DirtyChecks returns all queued mutations.
func (c *checkCache) DirtyChecks(ctx context.Context) ([]adapter.DirtyCheck, error) {
	fields, err := c.client.HGetAll(ctx, dirtyKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read replay queue: %w", err)
	}

	dirty := make([]adapter.DirtyCheck, 0, len(fields))
	for field, state := range fields {
		check, err := parseDirtyField(field)
		if err != nil {
			// A malformed field cannot be replayed; drop it rather than
			// blocking the queue forever.
			c.client.HDel(ctx, dirtyKey, field)
			continue
		}
		dirty = append(dirty, adapter.DirtyCheck{
			Check:   check,
			Deleted: state == dirtyDeleted,
		})
	}
	return dirty, nil
}

// clearDirtyScript deletes a queue field only while it still holds the
// replayed state, so a mutation queued after the replay read survives.
var clearDirtyScript = redis.NewScript(`
if redis.call("hget", KEYS[1], ARGV[1]) == ARGV[2] then
	return redis.call("hdel", KEYS[1], ARGV[1])
end
return 0
`)

// ClearDirty removes a replayed mutation from the queue, unless the entry
// was overwritten with a newer state since the replay read it.
func (c *checkCache) ClearDirty(ctx context.Context, check *entity.PaidCheck, deleted bool) error {
	state := dirtySaved
	if deleted {
		state = dirtyDeleted
	}
	err := clearDirtyScript.Run(ctx, c.client, []string{dirtyKey}, dirtyField(check), state).Err()
	if err != nil {
		return fmt.Errorf("failed to clear replayed check: %w", err)
	}
	return nil
}

// parseDirtyField decodes "year:month:period:billkey". Bill keys never
// contain colons, so the split is unambiguous.
func parseDirtyField(field string) (entity.PaidCheck, error) {
	parts := strings.SplitN(field, ":", 4)
	if len(parts) != 4 {
		return entity.PaidCheck{}, fmt.Errorf("malformed dirty field: %q", field)
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return entity.PaidCheck{}, fmt.Errorf("malformed year in dirty field: %q", field)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return entity.PaidCheck{}, fmt.Errorf("malformed month in dirty field: %q", field)
	}
	period, err := strconv.Atoi(parts[2])
	if err != nil {
		return entity.PaidCheck{}, fmt.Errorf("malformed period in dirty field: %q", field)
	}

	return entity.PaidCheck{Year: year, Month: month, Period: period, BillKey: parts[3]}, nil
}
