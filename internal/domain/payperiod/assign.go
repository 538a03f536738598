package payperiod

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/household-budget/backend/internal/domain/entity"
)

// BillLine is a bill flattened for period math: either a regular bill row or
// a synthetic line derived from a credit card's minimum payment or a loan's
// monthly payment. Key is stable across months and doubles as the paid-check
// bill key.
type BillLine struct {
	Key      string
	Name     string
	Amount   decimal.Decimal
	DueDate  int
	Category entity.BillCategory
	PaidBy   entity.Person
}

// AssignToPeriod filters bill lines into the given period by due day. Day 15
// belongs to period 1 and day 16 onward to period 2, matching the period
// boundaries themselves, so a bill due on any day of the month lands in
// exactly one period.
func AssignToPeriod(lines []BillLine, period Period) []BillLine {
	var assigned []BillLine
	for _, line := range lines {
		if line.DueDate < 1 || line.DueDate > 31 {
			continue
		}
		inFirst := line.DueDate <= 15
		if (period.Index == 1) == inFirst {
			assigned = append(assigned, line)
		}
	}
	return assigned
}

// CombineBills merges regular bills with synthetic debt lines into a single
// bill list, sorted by due day. Regular bills already categorized as credit
// cards or loans are excluded so a card tracked on the debt page is never
// counted twice. Cards and loans without a payment due are dropped; regular
// bills with a nil amount stay, counting as zero.
func CombineBills(bills []*entity.Bill, cards []*entity.CreditCard, loans []*entity.Loan) []BillLine {
	var lines []BillLine

	for _, card := range cards {
		if card == nil || !card.MinPayment.IsPositive() {
			continue
		}
		lines = append(lines, BillLine{
			Key:      "card-" + card.ID.String(),
			Name:     card.Name,
			Amount:   card.MinPayment,
			DueDate:  card.DueDate,
			Category: entity.BillCategoryCreditCard,
			PaidBy:   card.OwnedBy,
		})
	}

	for _, loan := range loans {
		if loan == nil || !loan.MonthlyPayment.IsPositive() {
			continue
		}
		lines = append(lines, BillLine{
			Key:      "loan-" + loan.ID.String(),
			Name:     loan.Name,
			Amount:   loan.MonthlyPayment,
			DueDate:  loan.DueDate,
			Category: entity.BillCategoryLoan,
			PaidBy:   entity.PersonA,
		})
	}

	for _, bill := range bills {
		if bill == nil || !bill.Active {
			continue
		}
		if bill.Category == entity.BillCategoryCreditCard || bill.Category == entity.BillCategoryLoan {
			continue
		}
		lines = append(lines, BillLine{
			Key:      bill.ID.String(),
			Name:     bill.Name,
			Amount:   bill.Amount(),
			DueDate:  bill.DueDate,
			Category: bill.Category,
			PaidBy:   bill.PaidBy,
		})
	}

	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].DueDate < lines[j].DueDate
	})
	return lines
}
