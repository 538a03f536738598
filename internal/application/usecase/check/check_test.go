// Package check contains paid-check use cases.
package check

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/household-budget/backend/internal/application/adapter"
	"github.com/household-budget/backend/internal/domain/entity"
	domainerror "github.com/household-budget/backend/internal/domain/error"
)

var errDown = errors.New("store down")

type fakeCheckRepo struct {
	checks map[string]map[string]bool
	down   bool
	onSave func()
}

func newFakeCheckRepo() *fakeCheckRepo {
	return &fakeCheckRepo{checks: map[string]map[string]bool{}}
}

func (f *fakeCheckRepo) FindByPeriod(ctx context.Context, year, month, period int) ([]*entity.PaidCheck, error) {
	if f.down {
		return nil, errDown
	}
	key := entity.PaidCheck{Year: year, Month: month, Period: period}.PeriodKey()
	var out []*entity.PaidCheck
	for billKey := range f.checks[key] {
		out = append(out, &entity.PaidCheck{Year: year, Month: month, Period: period, BillKey: billKey})
	}
	return out, nil
}

func (f *fakeCheckRepo) Save(ctx context.Context, check *entity.PaidCheck) error {
	if f.down {
		return errDown
	}
	key := check.PeriodKey()
	if f.checks[key] == nil {
		f.checks[key] = map[string]bool{}
	}
	f.checks[key][check.BillKey] = true
	if f.onSave != nil {
		f.onSave()
	}
	return nil
}

func (f *fakeCheckRepo) Delete(ctx context.Context, check *entity.PaidCheck) error {
	if f.down {
		return errDown
	}
	delete(f.checks[check.PeriodKey()], check.BillKey)
	return nil
}

func (f *fakeCheckRepo) has(check entity.PaidCheck) bool {
	return f.checks[check.PeriodKey()][check.BillKey]
}

type fakeCheckCache struct {
	checks map[string]map[string]bool
	dirty  map[string]adapter.DirtyCheck
	down   bool
}

func newFakeCheckCache() *fakeCheckCache {
	return &fakeCheckCache{
		checks: map[string]map[string]bool{},
		dirty:  map[string]adapter.DirtyCheck{},
	}
}

func (f *fakeCheckCache) FindByPeriod(ctx context.Context, year, month, period int) ([]*entity.PaidCheck, error) {
	if f.down {
		return nil, errDown
	}
	key := entity.PaidCheck{Year: year, Month: month, Period: period}.PeriodKey()
	var out []*entity.PaidCheck
	for billKey := range f.checks[key] {
		out = append(out, &entity.PaidCheck{Year: year, Month: month, Period: period, BillKey: billKey})
	}
	return out, nil
}

func (f *fakeCheckCache) Save(ctx context.Context, check *entity.PaidCheck) error {
	if f.down {
		return errDown
	}
	key := check.PeriodKey()
	if f.checks[key] == nil {
		f.checks[key] = map[string]bool{}
	}
	f.checks[key][check.BillKey] = true
	return nil
}

func (f *fakeCheckCache) Delete(ctx context.Context, check *entity.PaidCheck) error {
	if f.down {
		return errDown
	}
	delete(f.checks[check.PeriodKey()], check.BillKey)
	return nil
}

func (f *fakeCheckCache) MarkDirty(ctx context.Context, check *entity.PaidCheck, deleted bool) error {
	if f.down {
		return errDown
	}
	f.dirty[check.PeriodKey()+":"+check.BillKey] = adapter.DirtyCheck{Check: *check, Deleted: deleted}
	return nil
}

func (f *fakeCheckCache) DirtyChecks(ctx context.Context) ([]adapter.DirtyCheck, error) {
	if f.down {
		return nil, errDown
	}
	var out []adapter.DirtyCheck
	for _, d := range f.dirty {
		out = append(out, d)
	}
	return out, nil
}

func (f *fakeCheckCache) ClearDirty(ctx context.Context, check *entity.PaidCheck, deleted bool) error {
	key := check.PeriodKey() + ":" + check.BillKey
	if entry, ok := f.dirty[key]; ok && entry.Deleted == deleted {
		delete(f.dirty, key)
	}
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestMarkCheck(t *testing.T) {
	ctx := context.Background()

	t.Run("writes to both stores", func(t *testing.T) {
		repo := newFakeCheckRepo()
		cache := newFakeCheckCache()
		uc := NewMarkCheckUseCase(repo, cache, testLogger())

		out, err := uc.Execute(ctx, MarkCheckInput{Year: 2026, Month: 3, Period: 1, BillKey: "rent"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !repo.has(*out.Check) {
			t.Error("expected check in durable store")
		}
		if !cache.checks["2026-3-1"]["rent"] {
			t.Error("expected check in cache")
		}
		if len(cache.dirty) != 0 {
			t.Error("expected no dirty entries when durable write succeeds")
		}
	})

	t.Run("is idempotent", func(t *testing.T) {
		repo := newFakeCheckRepo()
		cache := newFakeCheckCache()
		uc := NewMarkCheckUseCase(repo, cache, testLogger())

		input := MarkCheckInput{Year: 2026, Month: 3, Period: 1, BillKey: "rent"}
		for i := 0; i < 2; i++ {
			if _, err := uc.Execute(ctx, input); err != nil {
				t.Fatalf("unexpected error on mark %d: %v", i, err)
			}
		}
		if len(repo.checks["2026-3-1"]) != 1 {
			t.Errorf("expected 1 check, got %d", len(repo.checks["2026-3-1"]))
		}
	})

	t.Run("falls back to cache when database is down", func(t *testing.T) {
		repo := newFakeCheckRepo()
		repo.down = true
		cache := newFakeCheckCache()
		uc := NewMarkCheckUseCase(repo, cache, testLogger())

		if _, err := uc.Execute(ctx, MarkCheckInput{Year: 2026, Month: 3, Period: 1, BillKey: "rent"}); err != nil {
			t.Fatalf("expected cache fallback, got error: %v", err)
		}
		if !cache.checks["2026-3-1"]["rent"] {
			t.Error("expected check in cache")
		}
		if len(cache.dirty) != 1 {
			t.Fatalf("expected 1 dirty entry, got %d", len(cache.dirty))
		}
	})

	t.Run("fails when both stores are down", func(t *testing.T) {
		repo := newFakeCheckRepo()
		repo.down = true
		cache := newFakeCheckCache()
		cache.down = true
		uc := NewMarkCheckUseCase(repo, cache, testLogger())

		_, err := uc.Execute(ctx, MarkCheckInput{Year: 2026, Month: 3, Period: 1, BillKey: "rent"})
		if !errors.Is(err, domainerror.ErrCheckStoreUnavailable) {
			t.Errorf("expected ErrCheckStoreUnavailable, got %v", err)
		}
	})

	t.Run("rejects malformed keys", func(t *testing.T) {
		uc := NewMarkCheckUseCase(newFakeCheckRepo(), newFakeCheckCache(), testLogger())

		cases := []MarkCheckInput{
			{Year: 2026, Month: 13, Period: 1, BillKey: "rent"},
			{Year: 2026, Month: 3, Period: 3, BillKey: "rent"},
			{Year: 2026, Month: 3, Period: 1, BillKey: ""},
		}
		for _, input := range cases {
			if _, err := uc.Execute(ctx, input); !errors.Is(err, domainerror.ErrInvalidCheckKey) {
				t.Errorf("input %+v: expected ErrInvalidCheckKey, got %v", input, err)
			}
		}
	})
}

func TestUnmarkCheck(t *testing.T) {
	ctx := context.Background()

	t.Run("removes from both stores", func(t *testing.T) {
		repo := newFakeCheckRepo()
		cache := newFakeCheckCache()
		mark := NewMarkCheckUseCase(repo, cache, testLogger())
		unmark := NewUnmarkCheckUseCase(repo, cache, testLogger())

		if _, err := mark.Execute(ctx, MarkCheckInput{Year: 2026, Month: 3, Period: 2, BillKey: "water"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := unmark.Execute(ctx, UnmarkCheckInput{Year: 2026, Month: 3, Period: 2, BillKey: "water"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.has(entity.PaidCheck{Year: 2026, Month: 3, Period: 2, BillKey: "water"}) {
			t.Error("expected check removed from durable store")
		}
		if cache.checks["2026-3-2"]["water"] {
			t.Error("expected check removed from cache")
		}
	})

	t.Run("unmarking an unpaid bill succeeds", func(t *testing.T) {
		uc := NewUnmarkCheckUseCase(newFakeCheckRepo(), newFakeCheckCache(), testLogger())
		out, err := uc.Execute(ctx, UnmarkCheckInput{Year: 2026, Month: 3, Period: 1, BillKey: "absent"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Success {
			t.Error("expected success")
		}
	})
}

func TestListChecks(t *testing.T) {
	ctx := context.Background()

	t.Run("prefers durable store", func(t *testing.T) {
		repo := newFakeCheckRepo()
		cache := newFakeCheckCache()
		mark := NewMarkCheckUseCase(repo, cache, testLogger())
		for _, key := range []string{"rent", "water"} {
			if _, err := mark.Execute(ctx, MarkCheckInput{Year: 2026, Month: 4, Period: 1, BillKey: key}); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}

		out, err := NewListChecksUseCase(repo, cache, testLogger()).Execute(ctx, ListChecksInput{Year: 2026, Month: 4, Period: 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Checks) != 2 {
			t.Errorf("expected 2 checks, got %d", len(out.Checks))
		}
	})

	t.Run("serves from cache when database is down", func(t *testing.T) {
		repo := newFakeCheckRepo()
		cache := newFakeCheckCache()
		mark := NewMarkCheckUseCase(repo, cache, testLogger())
		if _, err := mark.Execute(ctx, MarkCheckInput{Year: 2026, Month: 4, Period: 2, BillKey: "rent"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		repo.down = true
		out, err := NewListChecksUseCase(repo, cache, testLogger()).Execute(ctx, ListChecksInput{Year: 2026, Month: 4, Period: 2})
		if err != nil {
			t.Fatalf("expected cache fallback, got error: %v", err)
		}
		if len(out.Checks) != 1 {
			t.Errorf("expected 1 cached check, got %d", len(out.Checks))
		}
	})

	t.Run("overlays queued mutations onto durable reads", func(t *testing.T) {
		repo := newFakeCheckRepo()
		cache := newFakeCheckCache()
		mark := NewMarkCheckUseCase(repo, cache, testLogger())
		unmark := NewUnmarkCheckUseCase(repo, cache, testLogger())

		if _, err := mark.Execute(ctx, MarkCheckInput{Year: 2026, Month: 6, Period: 1, BillKey: "water"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Mutations made while the database is down land in the replay queue.
		repo.down = true
		if _, err := mark.Execute(ctx, MarkCheckInput{Year: 2026, Month: 6, Period: 1, BillKey: "rent"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := unmark.Execute(ctx, UnmarkCheckInput{Year: 2026, Month: 6, Period: 1, BillKey: "water"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// The database recovers before the sync worker runs; reads still
		// reflect the queued mark and unmark.
		repo.down = false
		out, err := NewListChecksUseCase(repo, cache, testLogger()).Execute(ctx, ListChecksInput{Year: 2026, Month: 6, Period: 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Checks) != 1 {
			t.Fatalf("expected 1 check, got %d", len(out.Checks))
		}
		if out.Checks[0].BillKey != "rent" {
			t.Errorf("expected queued mark for rent, got %q", out.Checks[0].BillKey)
		}
	})
}

func TestSyncWorkerDrain(t *testing.T) {
	ctx := context.Background()

	t.Run("replays queued saves and deletes", func(t *testing.T) {
		repo := newFakeCheckRepo()
		cache := newFakeCheckCache()
		mark := NewMarkCheckUseCase(repo, cache, testLogger())
		unmark := NewUnmarkCheckUseCase(repo, cache, testLogger())

		// Seed a durable check, then take the database down.
		if _, err := mark.Execute(ctx, MarkCheckInput{Year: 2026, Month: 5, Period: 1, BillKey: "water"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		repo.down = true

		if _, err := mark.Execute(ctx, MarkCheckInput{Year: 2026, Month: 5, Period: 1, BillKey: "rent"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := unmark.Execute(ctx, UnmarkCheckInput{Year: 2026, Month: 5, Period: 1, BillKey: "water"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cache.dirty) != 2 {
			t.Fatalf("expected 2 dirty entries, got %d", len(cache.dirty))
		}

		repo.down = false
		NewSyncWorker(repo, cache, DefaultSyncWorkerConfig()).DrainNow(ctx)

		if !repo.has(entity.PaidCheck{Year: 2026, Month: 5, Period: 1, BillKey: "rent"}) {
			t.Error("expected replayed save in durable store")
		}
		if repo.has(entity.PaidCheck{Year: 2026, Month: 5, Period: 1, BillKey: "water"}) {
			t.Error("expected replayed delete in durable store")
		}
		if len(cache.dirty) != 0 {
			t.Errorf("expected replay queue drained, got %d entries", len(cache.dirty))
		}
	})

	t.Run("keeps queue when database is still down", func(t *testing.T) {
		repo := newFakeCheckRepo()
		repo.down = true
		cache := newFakeCheckCache()
		mark := NewMarkCheckUseCase(repo, cache, testLogger())

		if _, err := mark.Execute(ctx, MarkCheckInput{Year: 2026, Month: 5, Period: 2, BillKey: "rent"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		NewSyncWorker(repo, cache, DefaultSyncWorkerConfig()).DrainNow(ctx)

		if len(cache.dirty) != 1 {
			t.Errorf("expected dirty entry retained, got %d", len(cache.dirty))
		}
	})

	t.Run("keeps a mutation queued during replay", func(t *testing.T) {
		repo := newFakeCheckRepo()
		repo.down = true
		cache := newFakeCheckCache()
		mark := NewMarkCheckUseCase(repo, cache, testLogger())

		if _, err := mark.Execute(ctx, MarkCheckInput{Year: 2026, Month: 5, Period: 1, BillKey: "rent"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// An unmark for the same bill is queued while the replayed save is
		// in flight; it must survive the clear that follows the replay.
		repo.down = false
		repo.onSave = func() {
			requeued := entity.PaidCheck{Year: 2026, Month: 5, Period: 1, BillKey: "rent"}
			if err := cache.MarkDirty(ctx, &requeued, true); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		}
		NewSyncWorker(repo, cache, DefaultSyncWorkerConfig()).DrainNow(ctx)

		entry, ok := cache.dirty["2026-5-1:rent"]
		if !ok {
			t.Fatal("expected queued unmark to survive the replay")
		}
		if !entry.Deleted {
			t.Error("expected surviving entry to be the unmark")
		}
	})
}
