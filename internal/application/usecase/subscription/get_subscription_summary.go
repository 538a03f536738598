// Package subscription contains subscription use cases.
package subscription

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/household-budget/backend/internal/application/adapter"
	"github.com/household-budget/backend/internal/domain/entity"
)

// GetSubscriptionSummaryOutput represents the annualized subscription totals.
type GetSubscriptionSummaryOutput struct {
	Subscriptions []*entity.Subscription
	// AnnualTotal sums each subscription's amount times its renewals per
	// year; MonthlyAverage is that total spread evenly over 12 months.
	AnnualTotal    decimal.Decimal
	MonthlyAverage decimal.Decimal
	ByFrequency    map[entity.SubscriptionFrequency]decimal.Decimal
}

// GetSubscriptionSummaryUseCase computes annualized subscription spend.
type GetSubscriptionSummaryUseCase struct {
	subRepo adapter.SubscriptionRepository
}

// NewGetSubscriptionSummaryUseCase creates a new GetSubscriptionSummaryUseCase instance.
func NewGetSubscriptionSummaryUseCase(subRepo adapter.SubscriptionRepository) *GetSubscriptionSummaryUseCase {
	return &GetSubscriptionSummaryUseCase{
		subRepo: subRepo,
	}
}

// Execute builds the subscription summary.
func (uc *GetSubscriptionSummaryUseCase) Execute(ctx context.Context) (*GetSubscriptionSummaryOutput, error) {
	subs, err := uc.subRepo.FindActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	out := &GetSubscriptionSummaryOutput{
		Subscriptions: subs,
		AnnualTotal:   decimal.Zero,
		ByFrequency:   map[entity.SubscriptionFrequency]decimal.Decimal{},
	}

	for _, sub := range subs {
		annual := sub.Amount.Mul(decimal.NewFromInt(int64(sub.Frequency.RenewalsPerYear())))
		out.AnnualTotal = out.AnnualTotal.Add(annual)

		current, ok := out.ByFrequency[sub.Frequency]
		if !ok {
			current = decimal.Zero
		}
		out.ByFrequency[sub.Frequency] = current.Add(annual)
	}

	out.MonthlyAverage = out.AnnualTotal.Div(decimal.NewFromInt(12))
	return out, nil
}
