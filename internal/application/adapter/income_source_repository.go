// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/household-budget/backend/internal/domain/entity"
)

// IncomeSourceRepository defines the interface for income source persistence.
type IncomeSourceRepository interface {
	// FindAll retrieves all income sources ordered by creation time, so a
	// duplicated person row resolves deterministically (first row wins).
	FindAll(ctx context.Context) ([]*entity.IncomeSource, error)

	// FindByID retrieves an income source by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.IncomeSource, error)

	// Update updates an existing income source.
	Update(ctx context.Context, source *entity.IncomeSource) error
}
