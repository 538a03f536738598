// Package check contains paid-check use cases.
package check

import (
	"context"
	"log/slog"

	"github.com/household-budget/backend/internal/application/adapter"
	"github.com/household-budget/backend/internal/domain/entity"
	domainerror "github.com/household-budget/backend/internal/domain/error"
)

// MarkCheckInput represents the input for marking a bill paid.
type MarkCheckInput struct {
	Year    int
	Month   int
	Period  int
	BillKey string
}

// MarkCheckOutput represents the output of marking a bill paid.
type MarkCheckOutput struct {
	Check *entity.PaidCheck
}

// MarkCheckUseCase records one bill as paid within a pay period. Marking is
// idempotent: re-marking a paid bill changes nothing.
type MarkCheckUseCase struct {
	checkRepo  adapter.PaidCheckRepository
	checkCache adapter.PaidCheckCache
	logger     *slog.Logger
}

// NewMarkCheckUseCase creates a new MarkCheckUseCase instance.
func NewMarkCheckUseCase(checkRepo adapter.PaidCheckRepository, checkCache adapter.PaidCheckCache, logger *slog.Logger) *MarkCheckUseCase {
	return &MarkCheckUseCase{
		checkRepo:  checkRepo,
		checkCache: checkCache,
		logger:     logger,
	}
}

// Execute marks the bill paid.
func (uc *MarkCheckUseCase) Execute(ctx context.Context, input MarkCheckInput) (*MarkCheckOutput, error) {
	check := &entity.PaidCheck{
		Year:    input.Year,
		Month:   input.Month,
		Period:  input.Period,
		BillKey: input.BillKey,
	}
	if !check.Valid() {
		return nil, domainerror.ErrInvalidCheckKey
	}

	if err := writeThrough(ctx, uc.checkRepo, uc.checkCache, uc.logger, check, false); err != nil {
		return nil, err
	}

	return &MarkCheckOutput{
		Check: check,
	}, nil
}
