package payperiod

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-budget/backend/internal/domain/entity"
)

func billLine(dueDate int) BillLine {
	return BillLine{
		Key:      fmt.Sprintf("bill-%d", dueDate),
		Name:     fmt.Sprintf("bill due %d", dueDate),
		Amount:   decimal.NewFromInt(100),
		DueDate:  dueDate,
		Category: entity.BillCategoryUtility,
		PaidBy:   entity.PersonA,
	}
}

func TestAssignToPeriod_Boundary(t *testing.T) {
	periods := PeriodsForMonth(2024, time.March)

	tests := []struct {
		dueDate    int
		wantPeriod int
	}{
		{1, 1},
		{14, 1},
		{15, 1}, // day 15 belongs to period 1, matching the period bounds
		{16, 2},
		{31, 2},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("due date %d", tt.dueDate), func(t *testing.T) {
			lines := []BillLine{billLine(tt.dueDate)}

			inFirst := AssignToPeriod(lines, periods[0])
			inSecond := AssignToPeriod(lines, periods[1])

			if tt.wantPeriod == 1 && (len(inFirst) != 1 || len(inSecond) != 0) {
				t.Errorf("due %d landed in period 2", tt.dueDate)
			}
			if tt.wantPeriod == 2 && (len(inFirst) != 0 || len(inSecond) != 1) {
				t.Errorf("due %d landed in period 1", tt.dueDate)
			}
		})
	}
}

func TestAssignToPeriod_PartitionsAllDueDates(t *testing.T) {
	// Every due day 1..31 lands in exactly one of the two periods: no
	// duplicates, no omissions.
	var lines []BillLine
	for day := 1; day <= 31; day++ {
		lines = append(lines, billLine(day))
	}
	periods := PeriodsForMonth(2024, time.March)

	first := AssignToPeriod(lines, periods[0])
	second := AssignToPeriod(lines, periods[1])

	if len(first)+len(second) != len(lines) {
		t.Fatalf("partition covers %d lines, want %d", len(first)+len(second), len(lines))
	}

	seen := map[string]bool{}
	for _, line := range append(first, second...) {
		if seen[line.Key] {
			t.Errorf("line %s assigned to both periods", line.Key)
		}
		seen[line.Key] = true
	}
}

func TestAssignToPeriod_Idempotent(t *testing.T) {
	lines := []BillLine{billLine(3), billLine(15), billLine(20)}
	period := PeriodsForMonth(2024, time.March)[0]

	once := AssignToPeriod(lines, period)
	twice := AssignToPeriod(once, period)

	if len(once) != len(twice) {
		t.Fatalf("assignment not idempotent: %d then %d lines", len(once), len(twice))
	}
	for i := range once {
		if once[i].Key != twice[i].Key {
			t.Errorf("line %d changed between applications", i)
		}
	}
}

func TestAssignToPeriod_DropsInvalidDueDates(t *testing.T) {
	lines := []BillLine{billLine(0), billLine(32), billLine(10)}
	periods := PeriodsForMonth(2024, time.March)

	first := AssignToPeriod(lines, periods[0])
	second := AssignToPeriod(lines, periods[1])

	if len(first) != 1 || len(second) != 0 {
		t.Errorf("expected only the valid line to be assigned, got %d and %d", len(first), len(second))
	}
}

func TestCombineBills(t *testing.T) {
	amount := decimal.NewFromInt(50)
	cardID := uuid.New()
	loanID := uuid.New()

	bills := []*entity.Bill{
		{ID: uuid.New(), Name: "Rent", DefaultAmount: &amount, DueDate: 1, Category: entity.BillCategoryRent, PaidBy: entity.PersonA, Active: true},
		// A varies bill without an override counts as zero, not an error.
		{ID: uuid.New(), Name: "Water", DefaultAmount: nil, DueDate: 20, Category: entity.BillCategoryUtility, PaidBy: entity.PersonB, Active: true, Varies: true},
		// Cards tracked on the debt page also appear as generic bills; the
		// generic copy must be dropped to avoid double counting.
		{ID: uuid.New(), Name: "Visa (bill copy)", DefaultAmount: &amount, DueDate: 10, Category: entity.BillCategoryCreditCard, PaidBy: entity.PersonA, Active: true},
		{ID: uuid.New(), Name: "Inactive", DefaultAmount: &amount, DueDate: 5, Category: entity.BillCategoryPersonal, PaidBy: entity.PersonA, Active: false},
	}
	cards := []*entity.CreditCard{
		{ID: cardID, Name: "Visa", MinPayment: decimal.NewFromInt(35), DueDate: 10, OwnedBy: entity.PersonA},
		{ID: uuid.New(), Name: "Paid off", MinPayment: decimal.Zero, DueDate: 12, OwnedBy: entity.PersonB},
	}
	loans := []*entity.Loan{
		{ID: loanID, Name: "Car", MonthlyPayment: decimal.NewFromInt(300), DueDate: 22},
	}

	lines := CombineBills(bills, cards, loans)

	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4: %+v", len(lines), lines)
	}

	byKey := map[string]BillLine{}
	for _, line := range lines {
		byKey[line.Key] = line
	}

	if _, ok := byKey["card-"+cardID.String()]; !ok {
		t.Error("missing synthetic card line")
	}
	if line, ok := byKey["loan-"+loanID.String()]; !ok || line.Category != entity.BillCategoryLoan {
		t.Error("missing or miscategorized synthetic loan line")
	}
	for key, line := range byKey {
		if line.Name == "Visa (bill copy)" {
			t.Errorf("generic credit-card bill %s not de-duplicated", key)
		}
		if line.Name == "Inactive" {
			t.Error("inactive bill included")
		}
	}
	if line := byKey["card-"+cardID.String()]; !line.Amount.Equal(decimal.NewFromInt(35)) {
		t.Errorf("card line amount = %s, want the minimum payment", line.Amount)
	}

	// Sorted by due day.
	for i := 1; i < len(lines); i++ {
		if lines[i-1].DueDate > lines[i].DueDate {
			t.Errorf("lines not sorted by due day: %d before %d", lines[i-1].DueDate, lines[i].DueDate)
		}
	}
}
