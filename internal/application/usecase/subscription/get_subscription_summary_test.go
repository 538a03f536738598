// Package subscription contains subscription use cases.
package subscription

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-budget/backend/internal/domain/entity"
	domainerror "github.com/household-budget/backend/internal/domain/error"
)

type fakeSubRepo struct {
	subs []*entity.Subscription
}

func (f *fakeSubRepo) FindActive(ctx context.Context) ([]*entity.Subscription, error) {
	return f.subs, nil
}

func (f *fakeSubRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Subscription, error) {
	for _, s := range f.subs {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, domainerror.ErrSubscriptionNotFound
}

func (f *fakeSubRepo) Create(ctx context.Context, sub *entity.Subscription) error {
	f.subs = append(f.subs, sub)
	return nil
}

func (f *fakeSubRepo) Update(ctx context.Context, sub *entity.Subscription) error { return nil }
func (f *fakeSubRepo) Delete(ctx context.Context, id uuid.UUID) error             { return nil }

func money(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestGetSubscriptionSummary(t *testing.T) {
	due := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	repo := &fakeSubRepo{subs: []*entity.Subscription{
		entity.NewSubscription("Streaming", money("15"), due, entity.FrequencyMonthly),
		entity.NewSubscription("Pest Control", money("120"), due, entity.FrequencyQuarterly),
		entity.NewSubscription("Costco", money("65"), due, entity.FrequencyYearly),
		entity.NewSubscription("Car Insurance", money("600"), due, entity.FrequencySemiAnnual),
	}}

	out, err := NewGetSubscriptionSummaryUseCase(repo).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 15*12 + 120*4 + 65*1 + 600*2 = 180 + 480 + 65 + 1200 = 1925
	if !out.AnnualTotal.Equal(money("1925")) {
		t.Errorf("expected annual total 1925, got %s", out.AnnualTotal)
	}

	expectedMonthly := money("1925").Div(decimal.NewFromInt(12))
	if !out.MonthlyAverage.Equal(expectedMonthly) {
		t.Errorf("expected monthly average %s, got %s", expectedMonthly, out.MonthlyAverage)
	}

	if !out.ByFrequency[entity.FrequencyMonthly].Equal(money("180")) {
		t.Errorf("expected monthly bucket 180, got %s", out.ByFrequency[entity.FrequencyMonthly])
	}
	if !out.ByFrequency[entity.FrequencySemiAnnual].Equal(money("1200")) {
		t.Errorf("expected semi-annual bucket 1200, got %s", out.ByFrequency[entity.FrequencySemiAnnual])
	}
}

func TestGetSubscriptionSummaryEmpty(t *testing.T) {
	out, err := NewGetSubscriptionSummaryUseCase(&fakeSubRepo{}).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.AnnualTotal.IsZero() {
		t.Errorf("expected zero annual total, got %s", out.AnnualTotal)
	}
	if !out.MonthlyAverage.IsZero() {
		t.Errorf("expected zero monthly average, got %s", out.MonthlyAverage)
	}
}
