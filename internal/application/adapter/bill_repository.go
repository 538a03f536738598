// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/household-budget/backend/internal/domain/entity"
)

// BillRepository defines the interface for bill persistence operations.
type BillRepository interface {
	// FindActive retrieves all active bills ordered by due day.
	FindActive(ctx context.Context) ([]*entity.Bill, error)

	// FindByID retrieves a bill by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error)

	// Create creates a new bill.
	Create(ctx context.Context, bill *entity.Bill) error

	// Update updates an existing bill.
	Update(ctx context.Context, bill *entity.Bill) error

	// Delete removes a bill.
	Delete(ctx context.Context, id uuid.UUID) error
}
