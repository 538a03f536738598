// Package debt contains credit card and loan use cases.
package debt

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/household-budget/backend/internal/application/adapter"
	domainerror "github.com/household-budget/backend/internal/domain/error"
)

// DeleteLoanInput represents the input for loan deletion.
type DeleteLoanInput struct {
	LoanID uuid.UUID
}

// DeleteLoanOutput represents the output of loan deletion.
type DeleteLoanOutput struct {
	Success bool
}

// DeleteLoanUseCase handles loan deletion logic.
type DeleteLoanUseCase struct {
	loanRepo adapter.LoanRepository
}

// NewDeleteLoanUseCase creates a new DeleteLoanUseCase instance.
func NewDeleteLoanUseCase(loanRepo adapter.LoanRepository) *DeleteLoanUseCase {
	return &DeleteLoanUseCase{
		loanRepo: loanRepo,
	}
}

// Execute performs the loan deletion.
func (uc *DeleteLoanUseCase) Execute(ctx context.Context, input DeleteLoanInput) (*DeleteLoanOutput, error) {
	if _, err := uc.loanRepo.FindByID(ctx, input.LoanID); err != nil {
		if errors.Is(err, domainerror.ErrLoanNotFound) {
			return nil, domainerror.ErrLoanNotFound
		}
		return nil, fmt.Errorf("failed to find loan: %w", err)
	}

	if err := uc.loanRepo.Delete(ctx, input.LoanID); err != nil {
		return nil, fmt.Errorf("failed to delete loan: %w", err)
	}

	return &DeleteLoanOutput{
		Success: true,
	}, nil
}
