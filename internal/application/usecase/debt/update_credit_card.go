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

// UpdateCreditCardInput represents the input for credit card update. Nil
// fields are left unchanged; ClearCreditLimit removes the limit.
type UpdateCreditCardInput struct {
	CardID           uuid.UUID
	Name             *string
	Balance          *decimal.Decimal
	CreditLimit      *decimal.Decimal
	ClearCreditLimit bool
	MinPayment       *decimal.Decimal
	APR              *decimal.Decimal
	DueDate          *int
	OwnedBy          *entity.Person
	Active           *bool
}

// UpdateCreditCardOutput represents the output of credit card update.
type UpdateCreditCardOutput struct {
	Card *entity.CreditCard
}

// UpdateCreditCardUseCase handles credit card update logic.
type UpdateCreditCardUseCase struct {
	cardRepo adapter.CreditCardRepository
}

// NewUpdateCreditCardUseCase creates a new UpdateCreditCardUseCase instance.
func NewUpdateCreditCardUseCase(cardRepo adapter.CreditCardRepository) *UpdateCreditCardUseCase {
	return &UpdateCreditCardUseCase{
		cardRepo: cardRepo,
	}
}

// Execute performs the credit card update.
func (uc *UpdateCreditCardUseCase) Execute(ctx context.Context, input UpdateCreditCardInput) (*UpdateCreditCardOutput, error) {
	card, err := uc.cardRepo.FindByID(ctx, input.CardID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCreditCardNotFound) {
			return nil, domainerror.ErrCreditCardNotFound
		}
		return nil, fmt.Errorf("failed to find credit card: %w", err)
	}

	if input.Name != nil {
		card.Name = *input.Name
	}
	if input.Balance != nil {
		card.Balance = *input.Balance
	}
	if input.ClearCreditLimit {
		card.CreditLimit = nil
	} else if input.CreditLimit != nil {
		limit := *input.CreditLimit
		card.CreditLimit = &limit
	}
	if input.MinPayment != nil {
		card.MinPayment = *input.MinPayment
	}
	if input.APR != nil {
		card.APR = *input.APR
	}
	if input.DueDate != nil {
		card.DueDate = *input.DueDate
	}
	if input.OwnedBy != nil {
		card.OwnedBy = *input.OwnedBy
	}
	if input.Active != nil {
		card.Active = *input.Active
	}

	if err := validateCardFields(card.Name, card.Balance, card.MinPayment, card.DueDate, card.OwnedBy); err != nil {
		return nil, err
	}

	card.UpdatedAt = time.Now().UTC()

	if err := uc.cardRepo.Update(ctx, card); err != nil {
		return nil, fmt.Errorf("failed to update credit card: %w", err)
	}

	return &UpdateCreditCardOutput{
		Card: card,
	}, nil
}
