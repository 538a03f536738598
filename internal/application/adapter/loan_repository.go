// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/household-budget/backend/internal/domain/entity"
)

// LoanRepository defines the interface for loan persistence operations.
type LoanRepository interface {
	// FindActive retrieves all active loans ordered by name.
	FindActive(ctx context.Context) ([]*entity.Loan, error)

	// FindByID retrieves a loan by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Loan, error)

	// Create creates a new loan.
	Create(ctx context.Context, loan *entity.Loan) error

	// Update updates an existing loan.
	Update(ctx context.Context, loan *entity.Loan) error

	// Delete removes a loan.
	Delete(ctx context.Context, id uuid.UUID) error
}
