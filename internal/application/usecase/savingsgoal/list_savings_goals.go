// Package savingsgoal contains savings goal use cases.
package savingsgoal

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/household-budget/backend/internal/application/adapter"
	"github.com/household-budget/backend/internal/domain/entity"
)

// GoalSummary is one goal with its derived progress figures.
type GoalSummary struct {
	Goal      *entity.SavingsGoal
	Remaining decimal.Decimal
	Progress  decimal.Decimal
}

// ListSavingsGoalsOutput represents the output of listing savings goals.
type ListSavingsGoalsOutput struct {
	Goals       []GoalSummary
	TotalTarget decimal.Decimal
	TotalSaved  decimal.Decimal
}

// ListSavingsGoalsUseCase handles listing savings goals with progress.
type ListSavingsGoalsUseCase struct {
	goalRepo adapter.SavingsGoalRepository
}

// NewListSavingsGoalsUseCase creates a new ListSavingsGoalsUseCase instance.
func NewListSavingsGoalsUseCase(goalRepo adapter.SavingsGoalRepository) *ListSavingsGoalsUseCase {
	return &ListSavingsGoalsUseCase{
		goalRepo: goalRepo,
	}
}

// Execute lists all active goals ordered by target date.
func (uc *ListSavingsGoalsUseCase) Execute(ctx context.Context) (*ListSavingsGoalsOutput, error) {
	goals, err := uc.goalRepo.FindActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list savings goals: %w", err)
	}

	out := &ListSavingsGoalsOutput{
		Goals:       make([]GoalSummary, 0, len(goals)),
		TotalTarget: decimal.Zero,
		TotalSaved:  decimal.Zero,
	}
	for _, goal := range goals {
		out.Goals = append(out.Goals, GoalSummary{
			Goal:      goal,
			Remaining: goal.Remaining(),
			Progress:  goal.Progress(),
		})
		out.TotalTarget = out.TotalTarget.Add(goal.TargetAmount)
		out.TotalSaved = out.TotalSaved.Add(goal.CurrentSaved)
	}

	return out, nil
}
