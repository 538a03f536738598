// Package income contains income source use cases.
package income

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

// UpdateIncomeSourceInput represents the input for income source update.
// Nil fields are left unchanged.
type UpdateIncomeSourceInput struct {
	SourceID     uuid.UUID
	Amount       *decimal.Decimal
	NextPayDate  *time.Time
	ClearPayDate bool
	PayDayOfWeek *string
}

// UpdateIncomeSourceOutput represents the output of income source update.
type UpdateIncomeSourceOutput struct {
	Source *entity.IncomeSource
}

// UpdateIncomeSourceUseCase handles income source update logic.
type UpdateIncomeSourceUseCase struct {
	incomeRepo adapter.IncomeSourceRepository
}

// NewUpdateIncomeSourceUseCase creates a new UpdateIncomeSourceUseCase instance.
func NewUpdateIncomeSourceUseCase(incomeRepo adapter.IncomeSourceRepository) *UpdateIncomeSourceUseCase {
	return &UpdateIncomeSourceUseCase{
		incomeRepo: incomeRepo,
	}
}

// Execute performs the income source update.
func (uc *UpdateIncomeSourceUseCase) Execute(ctx context.Context, input UpdateIncomeSourceInput) (*UpdateIncomeSourceOutput, error) {
	source, err := uc.incomeRepo.FindByID(ctx, input.SourceID)
	if err != nil {
		if errors.Is(err, domainerror.ErrIncomeSourceNotFound) {
			return nil, domainerror.ErrIncomeSourceNotFound
		}
		return nil, fmt.Errorf("failed to find income source: %w", err)
	}

	if input.Amount != nil {
		if input.Amount.IsNegative() {
			return nil, domainerror.NewBillError(
				domainerror.ErrCodeNegativeAmount,
				"paycheck amount must not be negative",
				domainerror.ErrNegativeAmount,
			)
		}
		source.Amount = *input.Amount
	}

	// ClearPayDate takes precedence: it unconfigures payroll entirely.
	if input.ClearPayDate {
		source.NextPayDate = nil
	} else if input.NextPayDate != nil {
		anchor := *input.NextPayDate
		source.NextPayDate = &anchor
	}

	if input.PayDayOfWeek != nil {
		source.PayDayOfWeek = *input.PayDayOfWeek
	}

	source.UpdatedAt = time.Now().UTC()

	if err := uc.incomeRepo.Update(ctx, source); err != nil {
		return nil, fmt.Errorf("failed to update income source: %w", err)
	}

	return &UpdateIncomeSourceOutput{
		Source: source,
	}, nil
}
