// Package savingsgoal contains savings goal use cases.
package savingsgoal

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/household-budget/backend/internal/application/adapter"
	"github.com/household-budget/backend/internal/domain/entity"
	domainerror "github.com/household-budget/backend/internal/domain/error"
)

// CreateSavingsGoalInput represents the input for savings goal creation.
type CreateSavingsGoalInput struct {
	Name                string
	TargetAmount        decimal.Decimal
	TargetDate          time.Time
	CurrentSaved        decimal.Decimal
	MonthlyContribution *decimal.Decimal
	Notes               string
}

// CreateSavingsGoalOutput represents the output of savings goal creation.
type CreateSavingsGoalOutput struct {
	Goal *entity.SavingsGoal
}

// CreateSavingsGoalUseCase handles savings goal creation logic.
type CreateSavingsGoalUseCase struct {
	goalRepo adapter.SavingsGoalRepository
}

// NewCreateSavingsGoalUseCase creates a new CreateSavingsGoalUseCase instance.
func NewCreateSavingsGoalUseCase(goalRepo adapter.SavingsGoalRepository) *CreateSavingsGoalUseCase {
	return &CreateSavingsGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the savings goal creation.
func (uc *CreateSavingsGoalUseCase) Execute(ctx context.Context, input CreateSavingsGoalInput) (*CreateSavingsGoalOutput, error) {
	if input.Name == "" {
		return nil, domainerror.NewBillError(
			domainerror.ErrCodeMissingBillFields,
			"goal name must not be empty",
			nil,
		)
	}
	if !input.TargetAmount.IsPositive() {
		return nil, domainerror.ErrInvalidTargetAmount
	}
	if input.CurrentSaved.IsNegative() {
		return nil, domainerror.NewBillError(
			domainerror.ErrCodeNegativeAmount,
			"saved amount must not be negative",
			domainerror.ErrNegativeAmount,
		)
	}

	goal := entity.NewSavingsGoal(
		input.Name,
		input.TargetAmount,
		input.TargetDate,
		input.CurrentSaved,
		input.MonthlyContribution,
		input.Notes,
	)

	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create savings goal: %w", err)
	}

	return &CreateSavingsGoalOutput{
		Goal: goal,
	}, nil
}
