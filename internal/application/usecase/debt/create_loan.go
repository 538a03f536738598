// Package debt contains credit card and loan use cases.
package debt

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/household-budget/backend/internal/application/adapter"
	"github.com/household-budget/backend/internal/domain/entity"
	domainerror "github.com/household-budget/backend/internal/domain/error"
)

// CreateLoanInput represents the input for loan creation.
type CreateLoanInput struct {
	Name           string
	Balance        decimal.Decimal
	MonthlyPayment decimal.Decimal
	APR            decimal.Decimal
	DueDate        int
}

// CreateLoanOutput represents the output of loan creation.
type CreateLoanOutput struct {
	Loan *entity.Loan
}

// CreateLoanUseCase handles loan creation logic.
type CreateLoanUseCase struct {
	loanRepo adapter.LoanRepository
}

// NewCreateLoanUseCase creates a new CreateLoanUseCase instance.
func NewCreateLoanUseCase(loanRepo adapter.LoanRepository) *CreateLoanUseCase {
	return &CreateLoanUseCase{
		loanRepo: loanRepo,
	}
}

// Execute performs the loan creation.
func (uc *CreateLoanUseCase) Execute(ctx context.Context, input CreateLoanInput) (*CreateLoanOutput, error) {
	if err := validateLoanFields(input.Name, input.Balance, input.MonthlyPayment, input.DueDate); err != nil {
		return nil, err
	}

	loan := entity.NewLoan(
		input.Name,
		input.Balance,
		input.MonthlyPayment,
		input.APR,
		input.DueDate,
	)

	if err := uc.loanRepo.Create(ctx, loan); err != nil {
		return nil, fmt.Errorf("failed to create loan: %w", err)
	}

	return &CreateLoanOutput{
		Loan: loan,
	}, nil
}

func validateLoanFields(name string, balance, monthlyPayment decimal.Decimal, dueDate int) error {
	if name == "" {
		return domainerror.NewBillError(
			domainerror.ErrCodeMissingBillFields,
			"loan name must not be empty",
			nil,
		)
	}
	if balance.IsNegative() || monthlyPayment.IsNegative() {
		return domainerror.NewBillError(
			domainerror.ErrCodeNegativeAmount,
			"balance and monthly payment must not be negative",
			domainerror.ErrNegativeAmount,
		)
	}
	if dueDate < 1 || dueDate > 31 {
		return domainerror.NewBillError(
			domainerror.ErrCodeInvalidDueDate,
			"due date must be a day of month between 1 and 31",
			domainerror.ErrInvalidDueDate,
		)
	}
	return nil
}
