// Package debt contains credit card and loan use cases.
package debt

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/household-budget/backend/internal/application/adapter"
	"github.com/household-budget/backend/internal/domain/entity"
)

// CardSummary is one credit card with its derived utilization figures.
type CardSummary struct {
	Card *entity.CreditCard
	// Utilization is balance over limit as a percentage, nil for cards
	// without a credit limit.
	Utilization *decimal.Decimal
}

// PersonDebt aggregates one partner's card debt.
type PersonDebt struct {
	Person      entity.Person
	CardBalance decimal.Decimal
	MinPayments decimal.Decimal
}

// GetDebtSummaryOutput represents the output of the debt summary.
type GetDebtSummaryOutput struct {
	Cards []CardSummary
	Loans []*entity.Loan

	TotalCardBalance   decimal.Decimal
	TotalCreditLimit   decimal.Decimal
	TotalLoanBalance   decimal.Decimal
	TotalDebt          decimal.Decimal
	TotalMinPayments   decimal.Decimal
	TotalLoanPayments  decimal.Decimal
	// OverallUtilization is total card balance over total limit, nil when
	// no card carries a limit.
	OverallUtilization *decimal.Decimal

	ByPerson []PersonDebt
}

// GetDebtSummaryUseCase assembles the debt page: all cards and loans with
// balances, utilization and per-partner totals.
type GetDebtSummaryUseCase struct {
	cardRepo adapter.CreditCardRepository
	loanRepo adapter.LoanRepository
}

// NewGetDebtSummaryUseCase creates a new GetDebtSummaryUseCase instance.
func NewGetDebtSummaryUseCase(cardRepo adapter.CreditCardRepository, loanRepo adapter.LoanRepository) *GetDebtSummaryUseCase {
	return &GetDebtSummaryUseCase{
		cardRepo: cardRepo,
		loanRepo: loanRepo,
	}
}

// Execute builds the debt summary.
func (uc *GetDebtSummaryUseCase) Execute(ctx context.Context) (*GetDebtSummaryOutput, error) {
	cards, err := uc.cardRepo.FindActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list credit cards: %w", err)
	}
	loans, err := uc.loanRepo.FindActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list loans: %w", err)
	}

	out := &GetDebtSummaryOutput{
		Cards:             make([]CardSummary, 0, len(cards)),
		Loans:             loans,
		TotalCardBalance:  decimal.Zero,
		TotalCreditLimit:  decimal.Zero,
		TotalLoanBalance:  decimal.Zero,
		TotalMinPayments:  decimal.Zero,
		TotalLoanPayments: decimal.Zero,
	}

	perPerson := map[entity.Person]*PersonDebt{}
	for _, p := range entity.Persons() {
		perPerson[p] = &PersonDebt{Person: p, CardBalance: decimal.Zero, MinPayments: decimal.Zero}
	}

	hundred := decimal.NewFromInt(100)
	for _, card := range cards {
		summary := CardSummary{Card: card}
		if card.CreditLimit != nil && card.CreditLimit.IsPositive() {
			util := card.Balance.Div(*card.CreditLimit).Mul(hundred)
			summary.Utilization = &util
			out.TotalCreditLimit = out.TotalCreditLimit.Add(*card.CreditLimit)
		}
		out.Cards = append(out.Cards, summary)

		out.TotalCardBalance = out.TotalCardBalance.Add(card.Balance)
		out.TotalMinPayments = out.TotalMinPayments.Add(card.MinPayment)

		if debt, ok := perPerson[card.OwnedBy]; ok {
			debt.CardBalance = debt.CardBalance.Add(card.Balance)
			debt.MinPayments = debt.MinPayments.Add(card.MinPayment)
		}
	}

	for _, loan := range loans {
		out.TotalLoanBalance = out.TotalLoanBalance.Add(loan.Balance)
		out.TotalLoanPayments = out.TotalLoanPayments.Add(loan.MonthlyPayment)
	}

	out.TotalDebt = out.TotalCardBalance.Add(out.TotalLoanBalance)
	if out.TotalCreditLimit.IsPositive() {
		overall := out.TotalCardBalance.Div(out.TotalCreditLimit).Mul(hundred)
		out.OverallUtilization = &overall
	}

	for _, p := range entity.Persons() {
		out.ByPerson = append(out.ByPerson, *perPerson[p])
	}

	return out, nil
}
