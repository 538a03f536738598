// Package subscription contains subscription use cases.
package subscription

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-budget/backend/internal/application/adapter"
	"github.com/household-budget/backend/internal/domain/entity"
	domainerror "github.com/household-budget/backend/internal/domain/error"
)

// UpdateSubscriptionInput represents the input for subscription update. Nil
// fields are left unchanged.
type UpdateSubscriptionInput struct {
	SubscriptionID uuid.UUID
	Name           *string
	Amount         *decimal.Decimal
	DueDate        *time.Time
	Frequency      *entity.SubscriptionFrequency
	Active         *bool
}

// UpdateSubscriptionOutput represents the output of subscription update.
type UpdateSubscriptionOutput struct {
	Subscription *entity.Subscription
}

// UpdateSubscriptionUseCase handles subscription update logic.
type UpdateSubscriptionUseCase struct {
	subRepo adapter.SubscriptionRepository
}

// NewUpdateSubscriptionUseCase creates a new UpdateSubscriptionUseCase instance.
func NewUpdateSubscriptionUseCase(subRepo adapter.SubscriptionRepository) *UpdateSubscriptionUseCase {
	return &UpdateSubscriptionUseCase{
		subRepo: subRepo,
	}
}

// Execute performs the subscription update.
func (uc *UpdateSubscriptionUseCase) Execute(ctx context.Context, input UpdateSubscriptionInput) (*UpdateSubscriptionOutput, error) {
	sub, err := uc.subRepo.FindByID(ctx, input.SubscriptionID)
	if err != nil {
		if errors.Is(err, domainerror.ErrSubscriptionNotFound) {
			return nil, domainerror.ErrSubscriptionNotFound
		}
		return nil, fmt.Errorf("failed to find subscription: %w", err)
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, domainerror.NewBillError(
				domainerror.ErrCodeMissingBillFields,
				"subscription name must not be empty",
				nil,
			)
		}
		sub.Name = *input.Name
	}
	if input.Amount != nil {
		if input.Amount.IsNegative() {
			return nil, domainerror.NewBillError(
				domainerror.ErrCodeNegativeAmount,
				"subscription amount must not be negative",
				domainerror.ErrNegativeAmount,
			)
		}
		sub.Amount = *input.Amount
	}
	if input.DueDate != nil {
		sub.DueDate = *input.DueDate
	}
	if input.Frequency != nil {
		if !input.Frequency.IsValid() {
			return nil, domainerror.ErrInvalidFrequency
		}
		sub.Frequency = *input.Frequency
	}
	if input.Active != nil {
		sub.Active = *input.Active
	}

	sub.UpdatedAt = time.Now().UTC()

	if err := uc.subRepo.Update(ctx, sub); err != nil {
		return nil, fmt.Errorf("failed to update subscription: %w", err)
	}

	return &UpdateSubscriptionOutput{
		Subscription: sub,
	}, nil
}
