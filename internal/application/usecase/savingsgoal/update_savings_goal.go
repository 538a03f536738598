// Package savingsgoal contains savings goal use cases.
package savingsgoal

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

// UpdateSavingsGoalInput represents the input for savings goal update. Nil
// fields are left unchanged; ClearContribution removes the fixed monthly
// contribution.
type UpdateSavingsGoalInput struct {
	GoalID              uuid.UUID
	Name                *string
	TargetAmount        *decimal.Decimal
	TargetDate          *time.Time
	CurrentSaved        *decimal.Decimal
	MonthlyContribution *decimal.Decimal
	ClearContribution   bool
	Notes               *string
	Active              *bool
}

// UpdateSavingsGoalOutput represents the output of savings goal update.
type UpdateSavingsGoalOutput struct {
	Goal *entity.SavingsGoal
}

// UpdateSavingsGoalUseCase handles savings goal update logic.
type UpdateSavingsGoalUseCase struct {
	goalRepo adapter.SavingsGoalRepository
}

// NewUpdateSavingsGoalUseCase creates a new UpdateSavingsGoalUseCase instance.
func NewUpdateSavingsGoalUseCase(goalRepo adapter.SavingsGoalRepository) *UpdateSavingsGoalUseCase {
	return &UpdateSavingsGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the savings goal update. Completion is derived, never set
// directly: a goal whose saved amount reaches its target is marked complete,
// and drops back to incomplete if the target moves above it again.
func (uc *UpdateSavingsGoalUseCase) Execute(ctx context.Context, input UpdateSavingsGoalInput) (*UpdateSavingsGoalOutput, error) {
	goal, err := uc.goalRepo.FindByID(ctx, input.GoalID)
	if err != nil {
		if errors.Is(err, domainerror.ErrSavingsGoalNotFound) {
			return nil, domainerror.ErrSavingsGoalNotFound
		}
		return nil, fmt.Errorf("failed to find savings goal: %w", err)
	}

	if input.Name != nil {
		goal.Name = *input.Name
	}
	if input.TargetAmount != nil {
		if !input.TargetAmount.IsPositive() {
			return nil, domainerror.ErrInvalidTargetAmount
		}
		goal.TargetAmount = *input.TargetAmount
	}
	if input.TargetDate != nil {
		goal.TargetDate = *input.TargetDate
	}
	if input.CurrentSaved != nil {
		if input.CurrentSaved.IsNegative() {
			return nil, domainerror.NewBillError(
				domainerror.ErrCodeNegativeAmount,
				"saved amount must not be negative",
				domainerror.ErrNegativeAmount,
			)
		}
		goal.CurrentSaved = *input.CurrentSaved
	}
	if input.ClearContribution {
		goal.MonthlyContribution = nil
	} else if input.MonthlyContribution != nil {
		contribution := *input.MonthlyContribution
		goal.MonthlyContribution = &contribution
	}
	if input.Notes != nil {
		goal.Notes = *input.Notes
	}
	if input.Active != nil {
		goal.Active = *input.Active
	}

	goal.Completed = goal.CurrentSaved.GreaterThanOrEqual(goal.TargetAmount)
	goal.UpdatedAt = time.Now().UTC()

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update savings goal: %w", err)
	}

	return &UpdateSavingsGoalOutput{
		Goal: goal,
	}, nil
}
