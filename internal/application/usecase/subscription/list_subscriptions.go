// Package subscription contains subscription use cases.
package subscription

import (
	"context"
	"fmt"

	"github.com/household-budget/backend/internal/application/adapter"
	"github.com/household-budget/backend/internal/domain/entity"
)

// ListSubscriptionsOutput represents the output of listing subscriptions.
type ListSubscriptionsOutput struct {
	Subscriptions []*entity.Subscription
}

// ListSubscriptionsUseCase handles listing active subscriptions.
type ListSubscriptionsUseCase struct {
	subRepo adapter.SubscriptionRepository
}

// NewListSubscriptionsUseCase creates a new ListSubscriptionsUseCase instance.
func NewListSubscriptionsUseCase(subRepo adapter.SubscriptionRepository) *ListSubscriptionsUseCase {
	return &ListSubscriptionsUseCase{
		subRepo: subRepo,
	}
}

// Execute lists all active subscriptions.
func (uc *ListSubscriptionsUseCase) Execute(ctx context.Context) (*ListSubscriptionsOutput, error) {
	subs, err := uc.subRepo.FindActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	return &ListSubscriptionsOutput{
		Subscriptions: subs,
	}, nil
}
