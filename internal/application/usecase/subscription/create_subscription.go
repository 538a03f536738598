// Package subscription contains subscription use cases.
package subscription

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/household-budget/backend/internal/application/adapter"
	"github.com/household-budget/backend/internal/domain/entity"
	domainerror "github.com/household-budget/backend/internal/domain/error"
)

// CreateSubscriptionInput represents the input for subscription creation.
type CreateSubscriptionInput struct {
	Name      string
	Amount    decimal.Decimal
	DueDate   time.Time
	Frequency entity.SubscriptionFrequency
}

// CreateSubscriptionOutput represents the output of subscription creation.
type CreateSubscriptionOutput struct {
	Subscription *entity.Subscription
}

// CreateSubscriptionUseCase handles subscription creation logic.
type CreateSubscriptionUseCase struct {
	subRepo adapter.SubscriptionRepository
}

// NewCreateSubscriptionUseCase creates a new CreateSubscriptionUseCase instance.
func NewCreateSubscriptionUseCase(subRepo adapter.SubscriptionRepository) *CreateSubscriptionUseCase {
	return &CreateSubscriptionUseCase{
		subRepo: subRepo,
	}
}

// Execute performs the subscription creation.
func (uc *CreateSubscriptionUseCase) Execute(ctx context.Context, input CreateSubscriptionInput) (*CreateSubscriptionOutput, error) {
	if input.Name == "" {
		return nil, domainerror.NewBillError(
			domainerror.ErrCodeMissingBillFields,
			"subscription name must not be empty",
			nil,
		)
	}
	if input.Amount.IsNegative() {
		return nil, domainerror.NewBillError(
			domainerror.ErrCodeNegativeAmount,
			"subscription amount must not be negative",
			domainerror.ErrNegativeAmount,
		)
	}
	if !input.Frequency.IsValid() {
		return nil, domainerror.ErrInvalidFrequency
	}

	sub := entity.NewSubscription(input.Name, input.Amount, input.DueDate, input.Frequency)

	if err := uc.subRepo.Create(ctx, sub); err != nil {
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}

	return &CreateSubscriptionOutput{
		Subscription: sub,
	}, nil
}
