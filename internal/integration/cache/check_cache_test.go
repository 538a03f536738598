// Package cache implements the Redis-backed paid-check fallback store.
package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/household-budget/backend/internal/domain/entity"
)

func newTestCache(t *testing.T) *checkCache {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return &checkCache{client: client}
}

func TestCheckCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	cache := newTestCache(t)

	check := &entity.PaidCheck{Year: 2026, Month: 3, Period: 1, BillKey: "rent"}

	if err := cache.Save(ctx, check); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	checks, err := cache.FindByPeriod(ctx, 2026, 3, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(checks) != 1 || checks[0].BillKey != "rent" {
		t.Fatalf("expected rent check, got %+v", checks)
	}

	other, err := cache.FindByPeriod(ctx, 2026, 3, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(other) != 0 {
		t.Errorf("expected empty period 2, got %d checks", len(other))
	}

	if err := cache.Delete(ctx, check); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	checks, err = cache.FindByPeriod(ctx, 2026, 3, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(checks) != 0 {
		t.Errorf("expected no checks after delete, got %d", len(checks))
	}
}

func TestCheckCacheDirtyQueue(t *testing.T) {
	ctx := context.Background()
	cache := newTestCache(t)

	saved := &entity.PaidCheck{Year: 2026, Month: 3, Period: 1, BillKey: "rent"}
	deleted := &entity.PaidCheck{Year: 2026, Month: 3, Period: 2, BillKey: "card-abc"}

	if err := cache.MarkDirty(ctx, saved, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := cache.MarkDirty(ctx, deleted, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	dirty, err := cache.DirtyChecks(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(dirty) != 2 {
		t.Fatalf("expected 2 dirty entries, got %d", len(dirty))
	}

	byKey := map[string]bool{}
	for _, d := range dirty {
		byKey[d.Check.BillKey] = d.Deleted
		if d.Check.Year != 2026 || d.Check.Month != 3 {
			t.Errorf("period fields lost in round trip: %+v", d.Check)
		}
	}
	if byKey["rent"] {
		t.Error("expected rent entry to be a save")
	}
	if !byKey["card-abc"] {
		t.Error("expected card-abc entry to be a delete")
	}

	if err := cache.ClearDirty(ctx, saved, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dirty, err = cache.DirtyChecks(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(dirty) != 1 {
		t.Errorf("expected 1 dirty entry after clear, got %d", len(dirty))
	}
}

func TestCheckCacheDirtyOverwrite(t *testing.T) {
	ctx := context.Background()
	cache := newTestCache(t)

	check := &entity.PaidCheck{Year: 2026, Month: 3, Period: 1, BillKey: "rent"}

	// Mark then unmark while the database is down: the delete supersedes
	// the save for the same key.
	if err := cache.MarkDirty(ctx, check, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := cache.MarkDirty(ctx, check, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	dirty, err := cache.DirtyChecks(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(dirty) != 1 {
		t.Fatalf("expected 1 dirty entry, got %d", len(dirty))
	}
	if !dirty[0].Deleted {
		t.Error("expected the later delete to win")
	}
}

func TestCheckCacheClearDirtyKeepsNewerState(t *testing.T) {
	ctx := context.Background()
	cache := newTestCache(t)

	check := &entity.PaidCheck{Year: 2026, Month: 3, Period: 1, BillKey: "rent"}

	// An unmark queued after the save was read for replay must not be
	// cleared along with it.
	if err := cache.MarkDirty(ctx, check, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := cache.MarkDirty(ctx, check, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := cache.ClearDirty(ctx, check, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dirty, err := cache.DirtyChecks(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(dirty) != 1 {
		t.Fatalf("expected the delete to remain queued, got %d entries", len(dirty))
	}
	if !dirty[0].Deleted {
		t.Error("expected the remaining entry to be the delete")
	}

	if err := cache.ClearDirty(ctx, check, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dirty, err = cache.DirtyChecks(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(dirty) != 0 {
		t.Errorf("expected empty queue, got %d entries", len(dirty))
	}
}
