// Package savingsgoal contains savings goal use cases.
package savingsgoal

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/household-budget/backend/internal/application/adapter"
	domainerror "github.com/household-budget/backend/internal/domain/error"
)

// DeleteSavingsGoalInput represents the input for savings goal deletion.
type DeleteSavingsGoalInput struct {
	GoalID uuid.UUID
}

// DeleteSavingsGoalOutput represents the output of savings goal deletion.
type DeleteSavingsGoalOutput struct {
	Success bool
}

// DeleteSavingsGoalUseCase handles savings goal deletion logic.
type DeleteSavingsGoalUseCase struct {
	goalRepo adapter.SavingsGoalRepository
}

// NewDeleteSavingsGoalUseCase creates a new DeleteSavingsGoalUseCase instance.
func NewDeleteSavingsGoalUseCase(goalRepo adapter.SavingsGoalRepository) *DeleteSavingsGoalUseCase {
	return &DeleteSavingsGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the savings goal deletion.
func (uc *DeleteSavingsGoalUseCase) Execute(ctx context.Context, input DeleteSavingsGoalInput) (*DeleteSavingsGoalOutput, error) {
	if _, err := uc.goalRepo.FindByID(ctx, input.GoalID); err != nil {
		if errors.Is(err, domainerror.ErrSavingsGoalNotFound) {
			return nil, domainerror.ErrSavingsGoalNotFound
		}
		return nil, fmt.Errorf("failed to find savings goal: %w", err)
	}

	if err := uc.goalRepo.Delete(ctx, input.GoalID); err != nil {
		return nil, fmt.Errorf("failed to delete savings goal: %w", err)
	}

	return &DeleteSavingsGoalOutput{
		Success: true,
	}, nil
}
