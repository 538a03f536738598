// Package income contains income source use cases.
package income

import (
	"context"
	"fmt"

	"github.com/household-budget/backend/internal/application/adapter"
	"github.com/household-budget/backend/internal/domain/entity"
)

// ListIncomeSourcesOutput represents the output of listing income sources.
type ListIncomeSourcesOutput struct {
	Sources []*entity.IncomeSource
}

// ListIncomeSourcesUseCase handles listing both partners' income sources.
type ListIncomeSourcesUseCase struct {
	incomeRepo adapter.IncomeSourceRepository
}

// NewListIncomeSourcesUseCase creates a new ListIncomeSourcesUseCase instance.
func NewListIncomeSourcesUseCase(incomeRepo adapter.IncomeSourceRepository) *ListIncomeSourcesUseCase {
	return &ListIncomeSourcesUseCase{
		incomeRepo: incomeRepo,
	}
}

// Execute lists all income sources.
func (uc *ListIncomeSourcesUseCase) Execute(ctx context.Context) (*ListIncomeSourcesOutput, error) {
	sources, err := uc.incomeRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list income sources: %w", err)
	}

	return &ListIncomeSourcesOutput{
		Sources: sources,
	}, nil
}
