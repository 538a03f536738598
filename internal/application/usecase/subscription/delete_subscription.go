// Package subscription contains subscription use cases.
package subscription

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/household-budget/backend/internal/application/adapter"
	domainerror "github.com/household-budget/backend/internal/domain/error"
)

// DeleteSubscriptionInput represents the input for subscription deletion.
type DeleteSubscriptionInput struct {
	SubscriptionID uuid.UUID
}

// DeleteSubscriptionOutput represents the output of subscription deletion.
type DeleteSubscriptionOutput struct {
	Success bool
}

// DeleteSubscriptionUseCase handles subscription deletion logic.
type DeleteSubscriptionUseCase struct {
	subRepo adapter.SubscriptionRepository
}

// NewDeleteSubscriptionUseCase creates a new DeleteSubscriptionUseCase instance.
func NewDeleteSubscriptionUseCase(subRepo adapter.SubscriptionRepository) *DeleteSubscriptionUseCase {
	return &DeleteSubscriptionUseCase{
		subRepo: subRepo,
	}
}

// Execute performs the subscription deletion.
func (uc *DeleteSubscriptionUseCase) Execute(ctx context.Context, input DeleteSubscriptionInput) (*DeleteSubscriptionOutput, error) {
	if _, err := uc.subRepo.FindByID(ctx, input.SubscriptionID); err != nil {
		if errors.Is(err, domainerror.ErrSubscriptionNotFound) {
			return nil, domainerror.ErrSubscriptionNotFound
		}
		return nil, fmt.Errorf("failed to find subscription: %w", err)
	}

	if err := uc.subRepo.Delete(ctx, input.SubscriptionID); err != nil {
		return nil, fmt.Errorf("failed to delete subscription: %w", err)
	}

	return &DeleteSubscriptionOutput{
		Success: true,
	}, nil
}
