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

// DeleteCreditCardInput represents the input for credit card deletion.
type DeleteCreditCardInput struct {
	CardID uuid.UUID
}

// DeleteCreditCardOutput represents the output of credit card deletion.
type DeleteCreditCardOutput struct {
	Success bool
}

// DeleteCreditCardUseCase handles credit card deletion logic.
type DeleteCreditCardUseCase struct {
	cardRepo adapter.CreditCardRepository
}

// NewDeleteCreditCardUseCase creates a new DeleteCreditCardUseCase instance.
func NewDeleteCreditCardUseCase(cardRepo adapter.CreditCardRepository) *DeleteCreditCardUseCase {
	return &DeleteCreditCardUseCase{
		cardRepo: cardRepo,
	}
}

// Execute performs the credit card deletion.
func (uc *DeleteCreditCardUseCase) Execute(ctx context.Context, input DeleteCreditCardInput) (*DeleteCreditCardOutput, error) {
	if _, err := uc.cardRepo.FindByID(ctx, input.CardID); err != nil {
		if errors.Is(err, domainerror.ErrCreditCardNotFound) {
			return nil, domainerror.ErrCreditCardNotFound
		}
		return nil, fmt.Errorf("failed to find credit card: %w", err)
	}

	if err := uc.cardRepo.Delete(ctx, input.CardID); err != nil {
		return nil, fmt.Errorf("failed to delete credit card: %w", err)
	}

	return &DeleteCreditCardOutput{
		Success: true,
	}, nil
}
