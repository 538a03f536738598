// Package bill contains recurring bill use cases.
package bill

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/household-budget/backend/internal/application/adapter"
	"github.com/household-budget/backend/internal/domain/entity"
	domainerror "github.com/household-budget/backend/internal/domain/error"
)

// MaxBillNameLength is the maximum allowed length for bill names.
const MaxBillNameLength = 100

// CreateBillInput represents the input for bill creation.
type CreateBillInput struct {
	Name string
	// DefaultAmount is nil for bills whose amount varies month to month.
	DefaultAmount *decimal.Decimal
	DueDate       int
	Category      entity.BillCategory
	PaidBy        entity.Person
	PaymentMethod string
}

// CreateBillOutput represents the output of bill creation.
type CreateBillOutput struct {
	Bill *entity.Bill
}

// CreateBillUseCase handles bill creation logic.
type CreateBillUseCase struct {
	billRepo adapter.BillRepository
}

// NewCreateBillUseCase creates a new CreateBillUseCase instance.
func NewCreateBillUseCase(billRepo adapter.BillRepository) *CreateBillUseCase {
	return &CreateBillUseCase{
		billRepo: billRepo,
	}
}

// Execute performs the bill creation.
func (uc *CreateBillUseCase) Execute(ctx context.Context, input CreateBillInput) (*CreateBillOutput, error) {
	if err := validateBillFields(input.Name, input.DefaultAmount, input.DueDate, input.Category, input.PaidBy); err != nil {
		return nil, err
	}

	bill := entity.NewBill(
		input.Name,
		input.DefaultAmount,
		input.DueDate,
		input.Category,
		input.PaidBy,
		input.PaymentMethod,
	)

	if err := uc.billRepo.Create(ctx, bill); err != nil {
		return nil, fmt.Errorf("failed to create bill: %w", err)
	}

	return &CreateBillOutput{
		Bill: bill,
	}, nil
}

// validateBillFields checks the constraints shared by bill creation and update.
func validateBillFields(name string, amount *decimal.Decimal, dueDate int, category entity.BillCategory, paidBy entity.Person) error {
	if name == "" || len(name) > MaxBillNameLength {
		return domainerror.NewBillError(
			domainerror.ErrCodeMissingBillFields,
			fmt.Sprintf("bill name must be between 1 and %d characters", MaxBillNameLength),
			nil,
		)
	}

	if amount != nil && amount.IsNegative() {
		return domainerror.NewBillError(
			domainerror.ErrCodeNegativeAmount,
			"bill amount must not be negative",
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

	if !category.IsValid() {
		return domainerror.NewBillError(
			domainerror.ErrCodeInvalidBillCategory,
			"unknown bill category",
			domainerror.ErrInvalidBillCategory,
		)
	}

	if !paidBy.IsValid() {
		return domainerror.NewBillError(
			domainerror.ErrCodeInvalidPerson,
			"paid_by must identify one of the two partners",
			domainerror.ErrInvalidPerson,
		)
	}

	return nil
}
