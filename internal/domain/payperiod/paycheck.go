package payperiod

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/household-budget/backend/internal/domain/entity"
)

const (
	// payCycleDays is the fixed bi-weekly paycheck cadence.
	payCycleDays = 14

	// maxPaychecksPerWindow bounds the projection loop. A 14-day cadence can
	// land at most 3 times in a 31-day window, so the cap never binds on
	// well-formed input; it only guards against malformed windows.
	maxPaychecksPerWindow = 10
)

// Paycheck is a single projected paycheck occurrence. Paychecks are derived
// values, recomputed on demand from an income source's anchor date.
type Paycheck struct {
	Date   time.Time
	Amount decimal.Decimal
}

// ProjectPaychecks enumerates every occurrence of anchor+14k days (k any
// integer, so the anchor may lie before or after the window) that falls
// within [windowStart, windowEnd], inclusive on both ends, in chronological
// order. A zero anchor means payroll is not configured and yields no
// paychecks.
func ProjectPaychecks(windowStart, windowEnd, anchor time.Time, amount decimal.Decimal) []Paycheck {
	if anchor.IsZero() {
		return nil
	}

	start := DateOnly(windowStart)
	end := DateOnly(windowEnd)
	candidate := firstOnOrAfter(DateOnly(anchor), start)

	var checks []Paycheck
	for !candidate.After(end) && len(checks) < maxPaychecksPerWindow {
		checks = append(checks, Paycheck{Date: candidate, Amount: amount})
		candidate = candidate.AddDate(0, 0, payCycleDays)
	}
	return checks
}

// firstOnOrAfter returns the earliest anchor+14k that is on or after start,
// stepping by whole pay cycles in either direction.
func firstOnOrAfter(anchor, start time.Time) time.Time {
	days := daysBetween(anchor, start)
	cycles := days / payCycleDays
	if days%payCycleDays != 0 && days < 0 {
		cycles--
	}

	candidate := anchor.AddDate(0, 0, cycles*payCycleDays)
	if candidate.Before(start) {
		candidate = candidate.AddDate(0, 0, payCycleDays)
	}
	return candidate
}

// daysBetween returns the whole days from a to b; negative when b precedes a.
// Both arguments must already be midnight-UTC dates.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}

// PersonIncome holds one partner's projected paychecks within a period.
type PersonIncome struct {
	Person    entity.Person
	Paychecks []Paycheck
	Total     decimal.Decimal
}

// Income holds both partners' projected income for one period.
type Income struct {
	PersonA PersonIncome
	PersonB PersonIncome
	Total   decimal.Decimal
}

// ByPerson returns the income for the given partner.
func (i Income) ByPerson(p entity.Person) PersonIncome {
	if p == entity.PersonB {
		return i.PersonB
	}
	return i.PersonA
}

// PeriodIncome projects every income source's paychecks into the period and
// totals them per partner. When a partner has more than one source row, the
// first one wins; duplicates are a data-entry accident, not a feature.
func PeriodIncome(period Period, sources []*entity.IncomeSource) Income {
	income := Income{
		PersonA: PersonIncome{Person: entity.PersonA, Total: decimal.Zero},
		PersonB: PersonIncome{Person: entity.PersonB, Total: decimal.Zero},
	}

	seen := map[entity.Person]bool{}
	for _, source := range sources {
		if source == nil || seen[source.Person] {
			continue
		}
		seen[source.Person] = true

		anchor := time.Time{}
		if source.NextPayDate != nil {
			anchor = *source.NextPayDate
		}
		checks := ProjectPaychecks(period.Start, period.End, anchor, source.Amount)

		total := decimal.Zero
		for _, check := range checks {
			total = total.Add(check.Amount)
		}

		personIncome := PersonIncome{Person: source.Person, Paychecks: checks, Total: total}
		switch source.Person {
		case entity.PersonA:
			income.PersonA = personIncome
		case entity.PersonB:
			income.PersonB = personIncome
		}
	}

	income.Total = income.PersonA.Total.Add(income.PersonB.Total)
	return income
}
