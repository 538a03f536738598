// Package dashboard assembles the landing page overview.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/household-budget/backend/internal/application/adapter"
	"github.com/household-budget/backend/internal/application/usecase/check"
	"github.com/household-budget/backend/internal/domain/entity"
	"github.com/household-budget/backend/internal/domain/payperiod"
)

// BonusPaycheck flags a month in which a partner receives a third paycheck.
// On a bi-weekly cadence most months hold two paychecks; twice a year a
// month holds three.
type BonusPaycheck struct {
	Person        entity.Person
	PaycheckCount int
	ExtraAmount   decimal.Decimal
}

// GetOverviewOutput represents the dashboard overview.
type GetOverviewOutput struct {
	Today  time.Time
	Period payperiod.Period

	Income payperiod.Income
	Bills  []payperiod.BillLine
	// PaidKeys holds the bill keys already marked paid this period.
	PaidKeys    map[string]bool
	Transfer    payperiod.Transfer
	PaidCount   int
	UnpaidCount int
	UnpaidTotal decimal.Decimal

	MonthlyBillTotal decimal.Decimal

	TotalCardBalance decimal.Decimal
	TotalLoanBalance decimal.Decimal
	// CreditUtilization is total card balance over total limit as a
	// percentage, nil when no card carries a limit.
	CreditUtilization *decimal.Decimal

	SubscriptionMonthlyAverage decimal.Decimal

	SavingsTarget decimal.Decimal
	SavingsSaved  decimal.Decimal

	BonusPaychecks []BonusPaycheck
}

// GetOverviewUseCase builds the dashboard overview for the current pay
// period.
type GetOverviewUseCase struct {
	incomeRepo adapter.IncomeSourceRepository
	billRepo   adapter.BillRepository
	cardRepo   adapter.CreditCardRepository
	loanRepo   adapter.LoanRepository
	subRepo    adapter.SubscriptionRepository
	goalRepo   adapter.SavingsGoalRepository
	checkRepo  adapter.PaidCheckRepository
	checkCache adapter.PaidCheckCache
	clock      adapter.Clock
	logger     *slog.Logger
}

// NewGetOverviewUseCase creates a new GetOverviewUseCase instance.
func NewGetOverviewUseCase(
	incomeRepo adapter.IncomeSourceRepository,
	billRepo adapter.BillRepository,
	cardRepo adapter.CreditCardRepository,
	loanRepo adapter.LoanRepository,
	subRepo adapter.SubscriptionRepository,
	goalRepo adapter.SavingsGoalRepository,
	checkRepo adapter.PaidCheckRepository,
	checkCache adapter.PaidCheckCache,
	clock adapter.Clock,
	logger *slog.Logger,
) *GetOverviewUseCase {
	return &GetOverviewUseCase{
		incomeRepo: incomeRepo,
		billRepo:   billRepo,
		cardRepo:   cardRepo,
		loanRepo:   loanRepo,
		subRepo:    subRepo,
		goalRepo:   goalRepo,
		checkRepo:  checkRepo,
		checkCache: checkCache,
		clock:      clock,
		logger:     logger,
	}
}

// Execute builds the overview.
func (uc *GetOverviewUseCase) Execute(ctx context.Context) (*GetOverviewOutput, error) {
	today := payperiod.DateOnly(uc.clock.Now())
	period := payperiod.CurrentPeriod(today)

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
	subs, err := uc.subRepo.FindActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load subscriptions: %w", err)
	}
	goals, err := uc.goalRepo.FindActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load savings goals: %w", err)
	}

	lines := payperiod.CombineBills(bills, cards, loans)
	assigned := payperiod.AssignToPeriod(lines, period)
	income := payperiod.PeriodIncome(period, sources)

	paid, err := check.ReadPeriod(ctx, uc.checkRepo, uc.checkCache, uc.logger,
		today.Year(), int(today.Month()), period.Index)
	if err != nil {
		return nil, fmt.Errorf("failed to load paid checks: %w", err)
	}
	paidKeys := make(map[string]bool, len(paid))
	for _, c := range paid {
		paidKeys[c.BillKey] = true
	}

	out := &GetOverviewOutput{
		Today:            today,
		Period:           period,
		Income:           income,
		Bills:            assigned,
		PaidKeys:         paidKeys,
		Transfer:         payperiod.ComputeTransfer(income, assigned),
		UnpaidTotal:      decimal.Zero,
		MonthlyBillTotal: decimal.Zero,
		TotalCardBalance: decimal.Zero,
		TotalLoanBalance: decimal.Zero,
		SavingsTarget:    decimal.Zero,
		SavingsSaved:     decimal.Zero,
	}

	for _, line := range assigned {
		if paidKeys[line.Key] {
			out.PaidCount++
		} else {
			out.UnpaidCount++
			out.UnpaidTotal = out.UnpaidTotal.Add(line.Amount)
		}
	}

	for _, line := range lines {
		out.MonthlyBillTotal = out.MonthlyBillTotal.Add(line.Amount)
	}

	totalLimit := decimal.Zero
	for _, card := range cards {
		out.TotalCardBalance = out.TotalCardBalance.Add(card.Balance)
		if card.CreditLimit != nil && card.CreditLimit.IsPositive() {
			totalLimit = totalLimit.Add(*card.CreditLimit)
		}
	}
	if totalLimit.IsPositive() {
		utilization := out.TotalCardBalance.Div(totalLimit).Mul(decimal.NewFromInt(100))
		out.CreditUtilization = &utilization
	}
	for _, loan := range loans {
		out.TotalLoanBalance = out.TotalLoanBalance.Add(loan.Balance)
	}

	annual := decimal.Zero
	for _, sub := range subs {
		annual = annual.Add(sub.Amount.Mul(decimal.NewFromInt(int64(sub.Frequency.RenewalsPerYear()))))
	}
	out.SubscriptionMonthlyAverage = annual.Div(decimal.NewFromInt(12))

	for _, goal := range goals {
		out.SavingsTarget = out.SavingsTarget.Add(goal.TargetAmount)
		out.SavingsSaved = out.SavingsSaved.Add(goal.CurrentSaved)
	}

	out.BonusPaychecks = bonusPaychecks(today, sources)

	return out, nil
}

// bonusPaychecks projects each partner's paychecks across the whole current
// month and reports partners landing three.
func bonusPaychecks(today time.Time, sources []*entity.IncomeSource) []BonusPaycheck {
	periods := payperiod.PeriodsForMonth(today.Year(), today.Month())
	monthStart := periods[0].Start
	monthEnd := periods[1].End

	var bonuses []BonusPaycheck
	seen := map[entity.Person]bool{}
	for _, source := range sources {
		if source == nil || source.NextPayDate == nil || seen[source.Person] {
			continue
		}
		seen[source.Person] = true

		checks := payperiod.ProjectPaychecks(monthStart, monthEnd, *source.NextPayDate, source.Amount)
		if len(checks) >= 3 {
			bonuses = append(bonuses, BonusPaycheck{
				Person:        source.Person,
				PaycheckCount: len(checks),
				ExtraAmount:   source.Amount,
			})
		}
	}
	return bonuses
}
