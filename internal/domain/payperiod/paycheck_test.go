package payperiod

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/household-budget/backend/internal/domain/entity"
)

func TestProjectPaychecks(t *testing.T) {
	amount := decimal.NewFromInt(2000)

	tests := []struct {
		name      string
		start     time.Time
		end       time.Time
		anchor    time.Time
		wantDates []time.Time
	}{
		{
			name:      "anchor inside first half of january",
			start:     date(2024, time.January, 1),
			end:       date(2024, time.January, 15),
			anchor:    date(2024, time.January, 5),
			wantDates: []time.Time{date(2024, time.January, 5)},
		},
		{
			name:      "same anchor projected into second half",
			start:     date(2024, time.January, 16),
			end:       date(2024, time.January, 31),
			anchor:    date(2024, time.January, 5),
			wantDates: []time.Time{date(2024, time.January, 19)},
		},
		{
			name:      "anchor a month before the window",
			start:     date(2024, time.February, 1),
			end:       date(2024, time.February, 15),
			anchor:    date(2024, time.January, 1),
			wantDates: []time.Time{date(2024, time.February, 12)},
		},
		{
			name:      "anchor after the window projects backwards",
			start:     date(2024, time.January, 1),
			end:       date(2024, time.January, 15),
			anchor:    date(2024, time.March, 15),
			wantDates: []time.Time{date(2024, time.January, 5)},
		},
		{
			name:      "anchor on the window start is included",
			start:     date(2024, time.January, 1),
			end:       date(2024, time.January, 15),
			anchor:    date(2024, time.January, 1),
			wantDates: []time.Time{date(2024, time.January, 1), date(2024, time.January, 15)},
		},
		{
			name:      "anchor on the window end is included",
			start:     date(2024, time.January, 2),
			end:       date(2024, time.January, 15),
			anchor:    date(2024, time.January, 15),
			wantDates: []time.Time{date(2024, time.January, 15)},
		},
		{
			name:      "zero anchor means payroll not configured",
			start:     date(2024, time.January, 1),
			end:       date(2024, time.January, 15),
			anchor:    time.Time{},
			wantDates: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ProjectPaychecks(tt.start, tt.end, tt.anchor, amount)

			if len(got) != len(tt.wantDates) {
				t.Fatalf("got %d paychecks, want %d: %v", len(got), len(tt.wantDates), got)
			}
			for i, check := range got {
				if !check.Date.Equal(tt.wantDates[i]) {
					t.Errorf("paycheck %d date = %v, want %v", i, check.Date, tt.wantDates[i])
				}
				if !check.Amount.Equal(amount) {
					t.Errorf("paycheck %d amount = %s, want %s", i, check.Amount, amount)
				}
			}
		})
	}
}

func TestProjectPaychecks_BonusThirdPaycheck(t *testing.T) {
	// A full 31-day month aligned with the anchor holds three paychecks:
	// the bonus-paycheck month.
	amount := decimal.NewFromInt(1000)
	got := ProjectPaychecks(date(2024, time.January, 1), date(2024, time.January, 31), date(2024, time.January, 1), amount)

	want := []time.Time{
		date(2024, time.January, 1),
		date(2024, time.January, 15),
		date(2024, time.January, 29),
	}
	if len(got) != 3 {
		t.Fatalf("got %d paychecks, want 3: %v", len(got), got)
	}
	total := decimal.Zero
	for i, check := range got {
		if !check.Date.Equal(want[i]) {
			t.Errorf("paycheck %d date = %v, want %v", i, check.Date, want[i])
		}
		total = total.Add(check.Amount)
	}
	if !total.Equal(decimal.NewFromInt(3000)) {
		t.Errorf("total = %s, want 3000", total)
	}
}

func TestProjectPaychecks_PhaseEnumeration(t *testing.T) {
	// Sweep the whole phase space against both half-month window shapes.
	// Every result must stay in the window and on the 14-day grid; a
	// half-month window can never hold more than two paychecks.
	amount := decimal.NewFromInt(500)
	windows := []struct {
		name  string
		start time.Time
		end   time.Time
	}{
		{"15-day first half", date(2024, time.March, 1), date(2024, time.March, 15)},
		{"16-day second half", date(2024, time.March, 16), date(2024, time.March, 31)},
	}

	for _, w := range windows {
		t.Run(w.name, func(t *testing.T) {
			for offset := 0; offset < payCycleDays; offset++ {
				anchor := w.start.AddDate(0, 0, offset)
				got := ProjectPaychecks(w.start, w.end, anchor, amount)

				if len(got) < 1 || len(got) > 2 {
					t.Errorf("offset %d: got %d paychecks, want 1 or 2", offset, len(got))
				}
				for _, check := range got {
					if check.Date.Before(w.start) || check.Date.After(w.end) {
						t.Errorf("offset %d: date %v outside window", offset, check.Date)
					}
					if daysBetween(anchor, check.Date)%payCycleDays != 0 {
						t.Errorf("offset %d: date %v not congruent to anchor mod 14 days", offset, check.Date)
					}
				}
			}
		})
	}
}

func TestProjectPaychecks_CapOnMalformedWindow(t *testing.T) {
	// A year-long window is not a valid pay period; the safety cap bounds
	// the projection instead of looping 26 times.
	got := ProjectPaychecks(date(2024, time.January, 1), date(2024, time.December, 31), date(2024, time.January, 1), decimal.NewFromInt(100))
	if len(got) != maxPaychecksPerWindow {
		t.Errorf("got %d paychecks, want the cap of %d", len(got), maxPaychecksPerWindow)
	}
}

func TestPeriodIncome(t *testing.T) {
	janFive := date(2024, time.January, 5)
	janTwelve := date(2024, time.January, 12)
	period := PeriodsForMonth(2024, time.January)[0]

	sources := []*entity.IncomeSource{
		{Person: entity.PersonA, Amount: decimal.NewFromInt(2000), NextPayDate: &janFive},
		{Person: entity.PersonB, Amount: decimal.NewFromInt(1500), NextPayDate: &janTwelve},
	}

	income := PeriodIncome(period, sources)

	if len(income.PersonA.Paychecks) != 1 || !income.PersonA.Paychecks[0].Date.Equal(janFive) {
		t.Errorf("person A paychecks = %v, want one on Jan 5", income.PersonA.Paychecks)
	}
	if !income.PersonA.Total.Equal(decimal.NewFromInt(2000)) {
		t.Errorf("person A total = %s, want 2000", income.PersonA.Total)
	}
	if !income.PersonB.Total.Equal(decimal.NewFromInt(1500)) {
		t.Errorf("person B total = %s, want 1500", income.PersonB.Total)
	}
	if !income.Total.Equal(decimal.NewFromInt(3500)) {
		t.Errorf("combined total = %s, want 3500", income.Total)
	}
}

func TestPeriodIncome_DuplicateSourceFirstWins(t *testing.T) {
	janFive := date(2024, time.January, 5)
	period := PeriodsForMonth(2024, time.January)[0]

	sources := []*entity.IncomeSource{
		{Person: entity.PersonA, Amount: decimal.NewFromInt(2000), NextPayDate: &janFive},
		{Person: entity.PersonA, Amount: decimal.NewFromInt(9999), NextPayDate: &janFive},
	}

	income := PeriodIncome(period, sources)
	if !income.PersonA.Total.Equal(decimal.NewFromInt(2000)) {
		t.Errorf("person A total = %s, want the first row's 2000", income.PersonA.Total)
	}
}

func TestPeriodIncome_MissingAnchor(t *testing.T) {
	period := PeriodsForMonth(2024, time.January)[0]

	sources := []*entity.IncomeSource{
		{Person: entity.PersonA, Amount: decimal.NewFromInt(2000), NextPayDate: nil},
	}

	income := PeriodIncome(period, sources)
	if len(income.PersonA.Paychecks) != 0 {
		t.Errorf("expected no paychecks without an anchor, got %v", income.PersonA.Paychecks)
	}
	if !income.Total.IsZero() {
		t.Errorf("combined total = %s, want 0", income.Total)
	}
}

func TestPeriodIncome_Determinism(t *testing.T) {
	// Same inputs twice must give identical projections; nothing in the
	// calculation may read the clock.
	janFive := date(2024, time.January, 5)
	period := PeriodsForMonth(2024, time.January)[1]
	sources := []*entity.IncomeSource{
		{Person: entity.PersonA, Amount: decimal.NewFromInt(2000), NextPayDate: &janFive},
	}

	first := PeriodIncome(period, sources)
	second := PeriodIncome(period, sources)

	if !first.Total.Equal(second.Total) || len(first.PersonA.Paychecks) != len(second.PersonA.Paychecks) {
		t.Error("repeated projection produced different results")
	}
}
