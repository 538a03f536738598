// Package bill contains recurring bill use cases.
package bill

import (
	"context"
	"fmt"

	"github.com/household-budget/backend/internal/application/adapter"
	"github.com/household-budget/backend/internal/domain/entity"
)

// ListBillsOutput represents the output of listing bills.
type ListBillsOutput struct {
	Bills []*entity.Bill
}

// ListBillsUseCase handles listing active bills.
type ListBillsUseCase struct {
	billRepo adapter.BillRepository
}

// NewListBillsUseCase creates a new ListBillsUseCase instance.
func NewListBillsUseCase(billRepo adapter.BillRepository) *ListBillsUseCase {
	return &ListBillsUseCase{
		billRepo: billRepo,
	}
}

// Execute lists all active bills ordered by due day.
func (uc *ListBillsUseCase) Execute(ctx context.Context) (*ListBillsOutput, error) {
	bills, err := uc.billRepo.FindActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}

	return &ListBillsOutput{
		Bills: bills,
	}, nil
}
