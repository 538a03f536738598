// Package check contains paid-check use cases.
package check

import (
	"context"
	"log/slog"

	"github.com/household-budget/backend/internal/application/adapter"
	"github.com/household-budget/backend/internal/domain/entity"
	domainerror "github.com/household-budget/backend/internal/domain/error"
)

// ListChecksInput represents the input for listing paid checks.
type ListChecksInput struct {
	Year   int
	Month  int
	Period int
}

// ListChecksOutput represents the output of listing paid checks.
type ListChecksOutput struct {
	Checks []*entity.PaidCheck
}

// ListChecksUseCase lists which bills are marked paid in one pay period.
type ListChecksUseCase struct {
	checkRepo  adapter.PaidCheckRepository
	checkCache adapter.PaidCheckCache
	logger     *slog.Logger
}

// NewListChecksUseCase creates a new ListChecksUseCase instance.
func NewListChecksUseCase(checkRepo adapter.PaidCheckRepository, checkCache adapter.PaidCheckCache, logger *slog.Logger) *ListChecksUseCase {
	return &ListChecksUseCase{
		checkRepo:  checkRepo,
		checkCache: checkCache,
		logger:     logger,
	}
}

// Execute lists the period's paid checks.
func (uc *ListChecksUseCase) Execute(ctx context.Context, input ListChecksInput) (*ListChecksOutput, error) {
	probe := entity.PaidCheck{Year: input.Year, Month: input.Month, Period: input.Period, BillKey: "probe"}
	if !probe.Valid() {
		return nil, domainerror.ErrInvalidCheckKey
	}

	checks, err := ReadPeriod(ctx, uc.checkRepo, uc.checkCache, uc.logger, input.Year, input.Month, input.Period)
	if err != nil {
		return nil, err
	}

	return &ListChecksOutput{
		Checks: checks,
	}, nil
}
