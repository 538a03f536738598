// Package monthly assembles the month plan.
package monthly

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-budget/backend/internal/application/adapter"
	"github.com/household-budget/backend/internal/domain/entity"
	domainerror "github.com/household-budget/backend/internal/domain/error"
	"github.com/household-budget/backend/internal/domain/payperiod"
)

type fakeIncomeRepo struct {
	sources []*entity.IncomeSource
}

func (f *fakeIncomeRepo) FindAll(ctx context.Context) ([]*entity.IncomeSource, error) {
	return f.sources, nil
}

func (f *fakeIncomeRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.IncomeSource, error) {
	for _, s := range f.sources {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, domainerror.ErrIncomeSourceNotFound
}

func (f *fakeIncomeRepo) Update(ctx context.Context, source *entity.IncomeSource) error { return nil }

type fakeBillRepo struct {
	bills []*entity.Bill
}

func (f *fakeBillRepo) FindActive(ctx context.Context) ([]*entity.Bill, error) { return f.bills, nil }
func (f *fakeBillRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	return nil, domainerror.ErrBillNotFound
}
func (f *fakeBillRepo) Create(ctx context.Context, bill *entity.Bill) error { return nil }
func (f *fakeBillRepo) Update(ctx context.Context, bill *entity.Bill) error { return nil }
func (f *fakeBillRepo) Delete(ctx context.Context, id uuid.UUID) error      { return nil }

type fakeCardRepo struct {
	cards []*entity.CreditCard
}

func (f *fakeCardRepo) FindActive(ctx context.Context) ([]*entity.CreditCard, error) {
	return f.cards, nil
}
func (f *fakeCardRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.CreditCard, error) {
	return nil, domainerror.ErrCreditCardNotFound
}
func (f *fakeCardRepo) Create(ctx context.Context, card *entity.CreditCard) error { return nil }
func (f *fakeCardRepo) Update(ctx context.Context, card *entity.CreditCard) error { return nil }
func (f *fakeCardRepo) Delete(ctx context.Context, id uuid.UUID) error            { return nil }

type fakeLoanRepo struct {
	loans []*entity.Loan
}

func (f *fakeLoanRepo) FindActive(ctx context.Context) ([]*entity.Loan, error) { return f.loans, nil }
func (f *fakeLoanRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Loan, error) {
	return nil, domainerror.ErrLoanNotFound
}
func (f *fakeLoanRepo) Create(ctx context.Context, loan *entity.Loan) error { return nil }
func (f *fakeLoanRepo) Update(ctx context.Context, loan *entity.Loan) error { return nil }
func (f *fakeLoanRepo) Delete(ctx context.Context, id uuid.UUID) error      { return nil }

type memCheckStore struct {
	checks map[string]map[string]bool
}

func newMemCheckStore() *memCheckStore {
	return &memCheckStore{checks: map[string]map[string]bool{}}
}

func (m *memCheckStore) FindByPeriod(ctx context.Context, year, month, period int) ([]*entity.PaidCheck, error) {
	key := entity.PaidCheck{Year: year, Month: month, Period: period}.PeriodKey()
	var out []*entity.PaidCheck
	for billKey := range m.checks[key] {
		out = append(out, &entity.PaidCheck{Year: year, Month: month, Period: period, BillKey: billKey})
	}
	return out, nil
}

func (m *memCheckStore) Save(ctx context.Context, check *entity.PaidCheck) error {
	key := check.PeriodKey()
	if m.checks[key] == nil {
		m.checks[key] = map[string]bool{}
	}
	m.checks[key][check.BillKey] = true
	return nil
}

func (m *memCheckStore) Delete(ctx context.Context, check *entity.PaidCheck) error {
	delete(m.checks[check.PeriodKey()], check.BillKey)
	return nil
}

func (m *memCheckStore) MarkDirty(ctx context.Context, check *entity.PaidCheck, deleted bool) error {
	return nil
}

func (m *memCheckStore) DirtyChecks(ctx context.Context) ([]adapter.DirtyCheck, error) {
	return nil, nil
}

func (m *memCheckStore) ClearDirty(ctx context.Context, check *entity.PaidCheck, deleted bool) error {
	return nil
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

func money(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func moneyPtr(s string) *decimal.Decimal {
	d := money(s)
	return &d
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestGetMonthPlan(t *testing.T) {
	ctx := context.Background()

	// Person A is paid 2000 every other Friday anchored Jan 2 2026; person B
	// is paid 1500 anchored Jan 9 2026.
	anchorA := date(2026, time.January, 2)
	anchorB := date(2026, time.January, 9)
	sources := []*entity.IncomeSource{
		entity.NewIncomeSource(entity.PersonA, money("2000"), &anchorA, "Friday"),
		entity.NewIncomeSource(entity.PersonB, money("1500"), &anchorB, "Friday"),
	}

	rent := entity.NewBill("Rent", moneyPtr("1800"), 1, entity.BillCategoryRent, entity.PersonA, "checking")
	water := entity.NewBill("Water", moneyPtr("60"), 20, entity.BillCategoryUtility, entity.PersonB, "checking")
	bills := []*entity.Bill{rent, water}

	limit := money("5000")
	visa := entity.NewCreditCard("Visa", money("1200"), &limit, money("50"), money("22.9"), 18, entity.PersonB)

	store := newMemCheckStore()
	clock := fixedClock{now: date(2026, time.January, 10)}

	uc := NewGetMonthPlanUseCase(
		&fakeIncomeRepo{sources: sources},
		&fakeBillRepo{bills: bills},
		&fakeCardRepo{cards: []*entity.CreditCard{visa}},
		&fakeLoanRepo{},
		store, store, clock, testLogger(),
	)

	out, err := uc.Execute(ctx, GetMonthPlanInput{Year: 2026, Month: time.January})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p1 := out.Periods[0]
	p2 := out.Periods[1]

	t.Run("income projected per period", func(t *testing.T) {
		// Jan 1-15: A on the 2nd, B on the 9th. Jan 16-31: A on the 16th
		// and 30th, B on the 23rd.
		if !p1.Income.PersonA.Total.Equal(money("2000")) {
			t.Errorf("expected person_a 2000 in period 1, got %s", p1.Income.PersonA.Total)
		}
		if !p1.Income.PersonB.Total.Equal(money("1500")) {
			t.Errorf("expected person_b 1500 in period 1, got %s", p1.Income.PersonB.Total)
		}
		if !p2.Income.PersonA.Total.Equal(money("4000")) {
			t.Errorf("expected person_a 4000 in period 2, got %s", p2.Income.PersonA.Total)
		}
		if len(p2.Income.PersonA.Paychecks) != 2 {
			t.Errorf("expected 2 paychecks for person_a in period 2, got %d", len(p2.Income.PersonA.Paychecks))
		}
	})

	t.Run("bills assigned by due day", func(t *testing.T) {
		if len(p1.Bills) != 1 || p1.Bills[0].Line.Name != "Rent" {
			t.Fatalf("expected only Rent in period 1, got %+v", p1.Bills)
		}
		if len(p2.Bills) != 2 {
			t.Fatalf("expected Visa and Water in period 2, got %d bills", len(p2.Bills))
		}
		if p2.Bills[0].Line.Name != "Visa" || p2.Bills[1].Line.Name != "Water" {
			t.Errorf("expected due-day order Visa then Water, got %s then %s",
				p2.Bills[0].Line.Name, p2.Bills[1].Line.Name)
		}
	})

	t.Run("transfer balances the period", func(t *testing.T) {
		// Period 1: A has 2000 income and 1800 bills, B has 1500 and none.
		if p1.Transfer.Direction != payperiod.TransferNone {
			t.Errorf("expected no transfer in period 1, got %s", p1.Transfer.Direction)
		}
		if !p1.Transfer.Leftover.Equal(money("1700")) {
			t.Errorf("expected leftover 1700 in period 1, got %s", p1.Transfer.Leftover)
		}
	})

	t.Run("paid marks flow into the plan", func(t *testing.T) {
		if err := store.Save(ctx, &entity.PaidCheck{Year: 2026, Month: 1, Period: 1, BillKey: rent.ID.String()}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out, err := uc.Execute(ctx, GetMonthPlanInput{Year: 2026, Month: time.January})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		p1 := out.Periods[0]
		if p1.PaidCount != 1 {
			t.Errorf("expected 1 paid bill, got %d", p1.PaidCount)
		}
		if !p1.Bills[0].Paid {
			t.Error("expected Rent marked paid")
		}
		if !p1.PaidTotal.Equal(money("1800")) {
			t.Errorf("expected paid total 1800, got %s", p1.PaidTotal)
		}
		if !p1.UnpaidTotal.IsZero() {
			t.Errorf("expected unpaid total 0, got %s", p1.UnpaidTotal)
		}
	})

	t.Run("current period follows the clock", func(t *testing.T) {
		if !p1.Current {
			t.Error("expected period 1 current on Jan 10")
		}
		if p2.Current {
			t.Error("expected period 2 not current on Jan 10")
		}
	})

	t.Run("rejects invalid month", func(t *testing.T) {
		if _, err := uc.Execute(ctx, GetMonthPlanInput{Year: 2026, Month: time.Month(13)}); err == nil {
			t.Error("expected error for month 13")
		}
	})
}

func TestGetMonthPlanDeficit(t *testing.T) {
	ctx := context.Background()

	anchorA := date(2026, time.January, 2)
	anchorB := date(2026, time.January, 9)
	sources := []*entity.IncomeSource{
		entity.NewIncomeSource(entity.PersonA, money("3000"), &anchorA, ""),
		entity.NewIncomeSource(entity.PersonB, money("500"), &anchorB, ""),
	}
	bills := []*entity.Bill{
		entity.NewBill("Daycare", moneyPtr("1200"), 5, entity.BillCategoryPersonal, entity.PersonB, "checking"),
	}

	store := newMemCheckStore()
	uc := NewGetMonthPlanUseCase(
		&fakeIncomeRepo{sources: sources},
		&fakeBillRepo{bills: bills},
		&fakeCardRepo{},
		&fakeLoanRepo{},
		store, store, fixedClock{now: date(2026, time.January, 10)}, testLogger(),
	)

	out, err := uc.Execute(ctx, GetMonthPlanInput{Year: 2026, Month: time.January})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	transfer := out.Periods[0].Transfer
	if transfer.Direction != payperiod.TransferAtoB {
		t.Errorf("expected transfer from person_a to person_b, got %s", transfer.Direction)
	}
	if !transfer.Amount.Equal(money("700")) {
		t.Errorf("expected transfer amount 700, got %s", transfer.Amount)
	}
	if transfer.DoubleDeficit {
		t.Error("expected no double deficit")
	}
}
