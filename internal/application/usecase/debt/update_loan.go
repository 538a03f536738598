// Package debt contains credit card and loan use cases.
package debt

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

// UpdateLoanInput represents the input for loan update. Nil fields are left
// unchanged.
type UpdateLoanInput struct {
	LoanID         uuid.UUID
	Name           *string
	Balance        *decimal.Decimal
	MonthlyPayment *decimal.Decimal
	APR            *decimal.Decimal
	DueDate        *int
	Active         *bool
}

// UpdateLoanOutput represents the output of loan update.
type UpdateLoanOutput struct {
	Loan *entity.Loan
}

// UpdateLoanUseCase handles loan update logic.
type UpdateLoanUseCase struct {
	loanRepo adapter.LoanRepository
}

// NewUpdateLoanUseCase creates a new UpdateLoanUseCase instance.
func NewUpdateLoanUseCase(loanRepo adapter.LoanRepository) *UpdateLoanUseCase {
	return &UpdateLoanUseCase{
		loanRepo: loanRepo,
	}
}

// Execute performs the loan update.
func (uc *UpdateLoanUseCase) Execute(ctx context.Context, input UpdateLoanInput) (*UpdateLoanOutput, error) {
	loan, err := uc.loanRepo.FindByID(ctx, input.LoanID)
	if err != nil {
		if errors.Is(err, domainerror.ErrLoanNotFound) {
			return nil, domainerror.ErrLoanNotFound
		}
		return nil, fmt.Errorf("failed to find loan: %w", err)
	}

	if input.Name != nil {
		loan.Name = *input.Name
	}
	if input.Balance != nil {
		loan.Balance = *input.Balance
	}
	if input.MonthlyPayment != nil {
		loan.MonthlyPayment = *input.MonthlyPayment
	}
	if input.APR != nil {
		loan.APR = *input.APR
	}
	if input.DueDate != nil {
		loan.DueDate = *input.DueDate
	}
	if input.Active != nil {
		loan.Active = *input.Active
	}

	if err := validateLoanFields(loan.Name, loan.Balance, loan.MonthlyPayment, loan.DueDate); err != nil {
		return nil, err
	}

	loan.UpdatedAt = time.Now().UTC()

	if err := uc.loanRepo.Update(ctx, loan); err != nil {
		return nil, fmt.Errorf("failed to update loan: %w", err)
	}

	return &UpdateLoanOutput{
		Loan: loan,
	}, nil
}
