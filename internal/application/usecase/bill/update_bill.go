// Package bill contains recurring bill use cases.
package bill

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

// UpdateBillInput represents the input for bill update. Nil fields are left
// unchanged; ClearAmount switches the bill back to "varies".
type UpdateBillInput struct {
	BillID        uuid.UUID
	Name          *string
	DefaultAmount *decimal.Decimal
	ClearAmount   bool
	DueDate       *int
	Category      *entity.BillCategory
	PaidBy        *entity.Person
	PaymentMethod *string
	Active        *bool
}

// UpdateBillOutput represents the output of bill update.
type UpdateBillOutput struct {
	Bill *entity.Bill
}

// UpdateBillUseCase handles bill update logic.
type UpdateBillUseCase struct {
	billRepo adapter.BillRepository
}

// NewUpdateBillUseCase creates a new UpdateBillUseCase instance.
func NewUpdateBillUseCase(billRepo adapter.BillRepository) *UpdateBillUseCase {
	return &UpdateBillUseCase{
		billRepo: billRepo,
	}
}

// Execute performs the bill update.
func (uc *UpdateBillUseCase) Execute(ctx context.Context, input UpdateBillInput) (*UpdateBillOutput, error) {
	bill, err := uc.billRepo.FindByID(ctx, input.BillID)
	if err != nil {
		if errors.Is(err, domainerror.ErrBillNotFound) {
			return nil, domainerror.NewBillError(
				domainerror.ErrCodeBillNotFound,
				"bill not found",
				domainerror.ErrBillNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find bill: %w", err)
	}

	if input.Name != nil {
		bill.Name = *input.Name
	}
	if input.ClearAmount {
		bill.DefaultAmount = nil
		bill.Varies = true
	} else if input.DefaultAmount != nil {
		amount := *input.DefaultAmount
		bill.DefaultAmount = &amount
		bill.Varies = false
	}
	if input.DueDate != nil {
		bill.DueDate = *input.DueDate
	}
	if input.Category != nil {
		bill.Category = *input.Category
	}
	if input.PaidBy != nil {
		bill.PaidBy = *input.PaidBy
	}
	if input.PaymentMethod != nil {
		bill.PaymentMethod = *input.PaymentMethod
	}
	if input.Active != nil {
		bill.Active = *input.Active
	}

	if err := validateBillFields(bill.Name, bill.DefaultAmount, bill.DueDate, bill.Category, bill.PaidBy); err != nil {
		return nil, err
	}

	bill.UpdatedAt = time.Now().UTC()

	if err := uc.billRepo.Update(ctx, bill); err != nil {
		return nil, fmt.Errorf("failed to update bill: %w", err)
	}

	return &UpdateBillOutput{
		Bill: bill,
	}, nil
}
