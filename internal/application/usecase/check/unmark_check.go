// Package check contains paid-check use cases.
package check

import (
	"context"
	"log/slog"

	"github.com/household-budget/backend/internal/application/adapter"
	"github.com/household-budget/backend/internal/domain/entity"
	domainerror "github.com/household-budget/backend/internal/domain/error"
)

// UnmarkCheckInput represents the input for unmarking a paid bill.
type UnmarkCheckInput struct {
	Year    int
	Month   int
	Period  int
	BillKey string
}

// UnmarkCheckOutput represents the output of unmarking a paid bill.
type UnmarkCheckOutput struct {
	Success bool
}

// UnmarkCheckUseCase removes a paid mark. Unmarking an unpaid bill is a
// no-op, not an error.
type UnmarkCheckUseCase struct {
	checkRepo  adapter.PaidCheckRepository
	checkCache adapter.PaidCheckCache
	logger     *slog.Logger
}

// NewUnmarkCheckUseCase creates a new UnmarkCheckUseCase instance.
func NewUnmarkCheckUseCase(checkRepo adapter.PaidCheckRepository, checkCache adapter.PaidCheckCache, logger *slog.Logger) *UnmarkCheckUseCase {
	return &UnmarkCheckUseCase{
		checkRepo:  checkRepo,
		checkCache: checkCache,
		logger:     logger,
	}
}

// Execute removes the paid mark.
func (uc *UnmarkCheckUseCase) Execute(ctx context.Context, input UnmarkCheckInput) (*UnmarkCheckOutput, error) {
	check := &entity.PaidCheck{
		Year:    input.Year,
		Month:   input.Month,
		Period:  input.Period,
		BillKey: input.BillKey,
	}
	if !check.Valid() {
		return nil, domainerror.ErrInvalidCheckKey
	}

	if err := writeThrough(ctx, uc.checkRepo, uc.checkCache, uc.logger, check, true); err != nil {
		return nil, err
	}

	return &UnmarkCheckOutput{
		Success: true,
	}, nil
}
