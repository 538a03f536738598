package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/household-budget/backend/internal/domain/entity"
)

// SavingsGoalRepository defines the interface for savings goal persistence.
type SavingsGoalRepository interface {
	// FindActive retrieves active goals ordered by target date.
	FindActive(ctx context.Context) ([]*entity.SavingsGoal, error)

	// FindByID retrieves a goal by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.SavingsGoal, error)

	// Create creates a new goal.
	Create(ctx context.Context, goal *entity.SavingsGoal) error

	// Update updates an existing goal.
	Update(ctx context.Context, goal *entity.SavingsGoal) error

	// Delete removes a goal.
	Delete(ctx context.Context, id uuid.UUID) error
}
