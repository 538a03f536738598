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

// CreateCreditCardInput represents the input for credit card creation.
type CreateCreditCardInput struct {
	Name        string
	Balance     decimal.Decimal
	CreditLimit *decimal.Decimal
	MinPayment  decimal.Decimal
	APR         decimal.Decimal
	DueDate     int
	OwnedBy     entity.Person
}

// CreateCreditCardOutput represents the output of credit card creation.
type CreateCreditCardOutput struct {
	Card *entity.CreditCard
}

// CreateCreditCardUseCase handles credit card creation logic.
type CreateCreditCardUseCase struct {
	cardRepo adapter.CreditCardRepository
}

// NewCreateCreditCardUseCase creates a new CreateCreditCardUseCase instance.
func NewCreateCreditCardUseCase(cardRepo adapter.CreditCardRepository) *CreateCreditCardUseCase {
	return &CreateCreditCardUseCase{
		cardRepo: cardRepo,
	}
}

// Execute performs the credit card creation.
func (uc *CreateCreditCardUseCase) Execute(ctx context.Context, input CreateCreditCardInput) (*CreateCreditCardOutput, error) {
	if err := validateCardFields(input.Name, input.Balance, input.MinPayment, input.DueDate, input.OwnedBy); err != nil {
		return nil, err
	}

	card := entity.NewCreditCard(
		input.Name,
		input.Balance,
		input.CreditLimit,
		input.MinPayment,
		input.APR,
		input.DueDate,
		input.OwnedBy,
	)

	if err := uc.cardRepo.Create(ctx, card); err != nil {
		return nil, fmt.Errorf("failed to create credit card: %w", err)
	}

	return &CreateCreditCardOutput{
		Card: card,
	}, nil
}

func validateCardFields(name string, balance, minPayment decimal.Decimal, dueDate int, ownedBy entity.Person) error {
	if name == "" {
		return domainerror.NewBillError(
			domainerror.ErrCodeMissingBillFields,
			"credit card name must not be empty",
			nil,
		)
	}
	if balance.IsNegative() || minPayment.IsNegative() {
		return domainerror.NewBillError(
			domainerror.ErrCodeNegativeAmount,
			"balance and minimum payment must not be negative",
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
	if !ownedBy.IsValid() {
		return domainerror.NewBillError(
			domainerror.ErrCodeInvalidPerson,
			"owned_by must identify one of the two partners",
			domainerror.ErrInvalidPerson,
		)
	}
	return nil
}
