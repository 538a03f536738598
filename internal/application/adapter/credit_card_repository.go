// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/household-budget/backend/internal/domain/entity"
)

// CreditCardRepository defines the interface for credit card persistence.
type CreditCardRepository interface {
	// FindActive retrieves all active credit cards ordered by name.
	FindActive(ctx context.Context) ([]*entity.CreditCard, error)

	// FindByID retrieves a credit card by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CreditCard, error)

	// Create creates a new credit card.
	Create(ctx context.Context, card *entity.CreditCard) error

	// Update updates an existing credit card.
	Update(ctx context.Context, card *entity.CreditCard) error

	// Delete removes a credit card.
	Delete(ctx context.Context, id uuid.UUID) error
}
