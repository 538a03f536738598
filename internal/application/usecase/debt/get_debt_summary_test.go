// Package debt contains credit card and loan use cases.
package debt

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-budget/backend/internal/domain/entity"
	domainerror "github.com/household-budget/backend/internal/domain/error"
)

type fakeCardRepo struct {
	cards []*entity.CreditCard
}

func (f *fakeCardRepo) FindActive(ctx context.Context) ([]*entity.CreditCard, error) {
	return f.cards, nil
}

func (f *fakeCardRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.CreditCard, error) {
	for _, c := range f.cards {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, domainerror.ErrCreditCardNotFound
}

func (f *fakeCardRepo) Create(ctx context.Context, card *entity.CreditCard) error {
	f.cards = append(f.cards, card)
	return nil
}

func (f *fakeCardRepo) Update(ctx context.Context, card *entity.CreditCard) error { return nil }
func (f *fakeCardRepo) Delete(ctx context.Context, id uuid.UUID) error            { return nil }

type fakeLoanRepo struct {
	loans []*entity.Loan
}

func (f *fakeLoanRepo) FindActive(ctx context.Context) ([]*entity.Loan, error) {
	return f.loans, nil
}

func (f *fakeLoanRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Loan, error) {
	for _, l := range f.loans {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, domainerror.ErrLoanNotFound
}

func (f *fakeLoanRepo) Create(ctx context.Context, loan *entity.Loan) error {
	f.loans = append(f.loans, loan)
	return nil
}

func (f *fakeLoanRepo) Update(ctx context.Context, loan *entity.Loan) error { return nil }
func (f *fakeLoanRepo) Delete(ctx context.Context, id uuid.UUID) error      { return nil }

func money(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func moneyPtr(s string) *decimal.Decimal {
	d := money(s)
	return &d
}

func TestGetDebtSummary(t *testing.T) {
	limit := money("10000")
	visa := entity.NewCreditCard("Visa", money("2500"), &limit, money("75"), money("24.99"), 10, entity.PersonA)
	noLimit := entity.NewCreditCard("Store Card", money("500"), nil, money("25"), money("29.99"), 20, entity.PersonB)
	carLoan := entity.NewLoan("Car Loan", money("12000"), money("350"), money("6.5"), 5)

	uc := NewGetDebtSummaryUseCase(
		&fakeCardRepo{cards: []*entity.CreditCard{visa, noLimit}},
		&fakeLoanRepo{loans: []*entity.Loan{carLoan}},
	)

	out, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("totals", func(t *testing.T) {
		if !out.TotalCardBalance.Equal(money("3000")) {
			t.Errorf("expected card balance 3000, got %s", out.TotalCardBalance)
		}
		if !out.TotalLoanBalance.Equal(money("12000")) {
			t.Errorf("expected loan balance 12000, got %s", out.TotalLoanBalance)
		}
		if !out.TotalDebt.Equal(money("15000")) {
			t.Errorf("expected total debt 15000, got %s", out.TotalDebt)
		}
		if !out.TotalMinPayments.Equal(money("100")) {
			t.Errorf("expected min payments 100, got %s", out.TotalMinPayments)
		}
		if !out.TotalLoanPayments.Equal(money("350")) {
			t.Errorf("expected loan payments 350, got %s", out.TotalLoanPayments)
		}
	})

	t.Run("utilization only for cards with a limit", func(t *testing.T) {
		if len(out.Cards) != 2 {
			t.Fatalf("expected 2 cards, got %d", len(out.Cards))
		}
		if out.Cards[0].Utilization == nil {
			t.Fatal("expected utilization for card with limit")
		}
		if !out.Cards[0].Utilization.Equal(money("25")) {
			t.Errorf("expected utilization 25, got %s", out.Cards[0].Utilization)
		}
		if out.Cards[1].Utilization != nil {
			t.Error("expected nil utilization for card without limit")
		}
	})

	t.Run("overall utilization over summed limits", func(t *testing.T) {
		if out.OverallUtilization == nil {
			t.Fatal("expected overall utilization")
		}
		if !out.OverallUtilization.Equal(money("30")) {
			t.Errorf("expected overall utilization 30, got %s", out.OverallUtilization)
		}
	})

	t.Run("per-partner card totals", func(t *testing.T) {
		if len(out.ByPerson) != 2 {
			t.Fatalf("expected 2 partners, got %d", len(out.ByPerson))
		}
		if !out.ByPerson[0].CardBalance.Equal(money("2500")) {
			t.Errorf("expected person_a balance 2500, got %s", out.ByPerson[0].CardBalance)
		}
		if !out.ByPerson[1].MinPayments.Equal(money("25")) {
			t.Errorf("expected person_b min payments 25, got %s", out.ByPerson[1].MinPayments)
		}
	})
}

func TestGetDebtSummaryNoLimits(t *testing.T) {
	card := entity.NewCreditCard("Store Card", money("500"), nil, money("25"), money("29.99"), 20, entity.PersonA)

	uc := NewGetDebtSummaryUseCase(
		&fakeCardRepo{cards: []*entity.CreditCard{card}},
		&fakeLoanRepo{},
	)

	out, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.OverallUtilization != nil {
		t.Error("expected nil overall utilization when no card has a limit")
	}
}
