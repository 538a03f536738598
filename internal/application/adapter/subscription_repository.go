// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/household-budget/backend/internal/domain/entity"
)

// SubscriptionRepository defines the interface for subscription persistence.
type SubscriptionRepository interface {
	// FindActive retrieves active subscriptions ordered by frequency then
	// due date.
	FindActive(ctx context.Context) ([]*entity.Subscription, error)

	// FindByID retrieves a subscription by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Subscription, error)

	// Create creates a new subscription.
	Create(ctx context.Context, sub *entity.Subscription) error

	// Update updates an existing subscription.
	Update(ctx context.Context, sub *entity.Subscription) error

	// Delete removes a subscription.
	Delete(ctx context.Context, id uuid.UUID) error
}
