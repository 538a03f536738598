// Package bill contains recurring bill use cases.
package bill

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/household-budget/backend/internal/application/adapter"
	domainerror "github.com/household-budget/backend/internal/domain/error"
)

// DeleteBillInput represents the input for bill deletion.
type DeleteBillInput struct {
	BillID uuid.UUID
}

// DeleteBillOutput represents the output of bill deletion.
type DeleteBillOutput struct {
	Success bool
}

// DeleteBillUseCase handles bill deletion logic.
type DeleteBillUseCase struct {
	billRepo adapter.BillRepository
}

// NewDeleteBillUseCase creates a new DeleteBillUseCase instance.
func NewDeleteBillUseCase(billRepo adapter.BillRepository) *DeleteBillUseCase {
	return &DeleteBillUseCase{
		billRepo: billRepo,
	}
}

// Execute performs the bill deletion.
func (uc *DeleteBillUseCase) Execute(ctx context.Context, input DeleteBillInput) (*DeleteBillOutput, error) {
	if _, err := uc.billRepo.FindByID(ctx, input.BillID); err != nil {
		if errors.Is(err, domainerror.ErrBillNotFound) {
			return nil, domainerror.NewBillError(
				domainerror.ErrCodeBillNotFound,
				"bill not found",
				domainerror.ErrBillNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find bill: %w", err)
	}

	if err := uc.billRepo.Delete(ctx, input.BillID); err != nil {
		return nil, fmt.Errorf("failed to delete bill: %w", err)
	}

	return &DeleteBillOutput{
		Success: true,
	}, nil
}
