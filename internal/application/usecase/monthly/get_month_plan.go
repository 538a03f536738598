// Package monthly assembles the month plan: both pay periods with projected
// paychecks, assigned bills, paid marks and the balancing transfer.
package monthly

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/household-budget/backend/internal/application/adapter"
	"github.com/household-budget/backend/internal/application/usecase/check"
	"github.com/household-budget/backend/internal/domain/payperiod"
)

// GetMonthPlanInput represents the input for the month plan.
type GetMonthPlanInput struct {
	Year  int
	Month time.Month
}

// BillStatus is one assigned bill line with its paid mark.
type BillStatus struct {
	Line payperiod.BillLine
	Paid bool
}

// PeriodPlan is the full picture of one pay period.
type PeriodPlan struct {
	Period      payperiod.Period
	Income      payperiod.Income
	Bills       []BillStatus
	Transfer    payperiod.Transfer
	PaidCount   int
	PaidTotal   decimal.Decimal
	UnpaidTotal decimal.Decimal
	// Current marks the period containing today.
	Current bool
}

// GetMonthPlanOutput represents the output of the month plan.
type GetMonthPlanOutput struct {
	Year    int
	Month   time.Month
	Periods [2]PeriodPlan
}

// GetMonthPlanUseCase builds the month plan from income sources, bills,
// debts and paid checks.
type GetMonthPlanUseCase struct {
	incomeRepo adapter.IncomeSourceRepository
	billRepo   adapter.BillRepository
	cardRepo   adapter.CreditCardRepository
	loanRepo   adapter.LoanRepository
	checkRepo  adapter.PaidCheckRepository
	checkCache adapter.PaidCheckCache
	clock      adapter.Clock
	logger     *slog.Logger
}

// NewGetMonthPlanUseCase creates a new GetMonthPlanUseCase instance.
func NewGetMonthPlanUseCase(
	incomeRepo adapter.IncomeSourceRepository,
	billRepo adapter.BillRepository,
	cardRepo adapter.CreditCardRepository,
	loanRepo adapter.LoanRepository,
	checkRepo adapter.PaidCheckRepository,
	checkCache adapter.PaidCheckCache,
	clock adapter.Clock,
	logger *slog.Logger,
) *GetMonthPlanUseCase {
	return &GetMonthPlanUseCase{
		incomeRepo: incomeRepo,
		billRepo:   billRepo,
		cardRepo:   cardRepo,
		loanRepo:   loanRepo,
		checkRepo:  checkRepo,
		checkCache: checkCache,
		clock:      clock,
		logger:     logger,
	}
}

// Execute builds the plan for the given month.
func (uc *GetMonthPlanUseCase) Execute(ctx context.Context, input GetMonthPlanInput) (*GetMonthPlanOutput, error) {
	if input.Month < time.January || input.Month > time.December {
		return nil, fmt.Errorf("invalid month: %d", input.Month)
	}

	sources, err := uc.incomeRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load income sources: %w", err)
	}
	bills, err := uc.billRepo.FindActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load bills: %w", err)
	}
	cards, err := uc.cardRepo.FindActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load credit cards: %w", err)
	}
	loans, err := uc.loanRepo.FindActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load loans: %w", err)
	}

	lines := payperiod.CombineBills(bills, cards, loans)
	periods := payperiod.PeriodsForMonth(input.Year, input.Month)
	today := payperiod.DateOnly(uc.clock.Now())

	out := &GetMonthPlanOutput{
		Year:  input.Year,
		Month: input.Month,
	}

	for i, period := range periods {
		paid, err := check.ReadPeriod(ctx, uc.checkRepo, uc.checkCache, uc.logger, input.Year, int(input.Month), period.Index)
		if err != nil {
			return nil, fmt.Errorf("failed to load paid checks: %w", err)
		}
		paidKeys := make(map[string]bool, len(paid))
		for _, c := range paid {
			paidKeys[c.BillKey] = true
		}

		income := payperiod.PeriodIncome(period, sources)
		assigned := payperiod.AssignToPeriod(lines, period)

		plan := PeriodPlan{
			Period:      period,
			Income:      income,
			Bills:       make([]BillStatus, 0, len(assigned)),
			Transfer:    payperiod.ComputeTransfer(income, assigned),
			PaidTotal:   decimal.Zero,
			UnpaidTotal: decimal.Zero,
			Current:     period.Contains(today),
		}

		for _, line := range assigned {
			isPaid := paidKeys[line.Key]
			plan.Bills = append(plan.Bills, BillStatus{Line: line, Paid: isPaid})
			if isPaid {
				plan.PaidCount++
				plan.PaidTotal = plan.PaidTotal.Add(line.Amount)
			} else {
				plan.UnpaidTotal = plan.UnpaidTotal.Add(line.Amount)
			}
		}

		out.Periods[i] = plan
	}

	return out, nil
}
