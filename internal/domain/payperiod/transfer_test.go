package payperiod

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/household-budget/backend/internal/domain/entity"
)

func incomeOf(personA, personB int64) Income {
	a := decimal.NewFromInt(personA)
	b := decimal.NewFromInt(personB)
	return Income{
		PersonA: PersonIncome{Person: entity.PersonA, Total: a},
		PersonB: PersonIncome{Person: entity.PersonB, Total: b},
		Total:   a.Add(b),
	}
}

func paidBy(person entity.Person, amount int64) BillLine {
	return BillLine{
		Key:     string(person) + "-bill",
		Name:    "bill",
		Amount:  decimal.NewFromInt(amount),
		DueDate: 5,
		PaidBy:  person,
	}
}

func TestComputeTransfer(t *testing.T) {
	tests := []struct {
		name            string
		income          Income
		bills           []BillLine
		wantAmount      int64
		wantDirection   TransferDirection
		wantLeftover    int64
		wantDoubleDefct bool
	}{
		{
			name:          "person B short by 500",
			income:        incomeOf(2000, 1000),
			bills:         []BillLine{paidBy(entity.PersonA, 800), paidBy(entity.PersonB, 1500)},
			wantAmount:    500,
			wantDirection: TransferAtoB,
			wantLeftover:  700,
		},
		{
			name:          "person A short by 300",
			income:        incomeOf(1000, 2000),
			bills:         []BillLine{paidBy(entity.PersonA, 1300), paidBy(entity.PersonB, 200)},
			wantAmount:    300,
			wantDirection: TransferBtoA,
			wantLeftover:  1500,
		},
		{
			name:          "both cover their own bills",
			income:        incomeOf(2000, 2000),
			bills:         []BillLine{paidBy(entity.PersonA, 1000), paidBy(entity.PersonB, 1500)},
			wantAmount:    0,
			wantDirection: TransferNone,
			wantLeftover:  1500,
		},
		{
			name:          "no bills at all",
			income:        incomeOf(2000, 2000),
			bills:         nil,
			wantAmount:    0,
			wantDirection: TransferNone,
			wantLeftover:  4000,
		},
		{
			name:            "both in deficit reports person B first",
			income:          incomeOf(100, 100),
			bills:           []BillLine{paidBy(entity.PersonA, 400), paidBy(entity.PersonB, 300)},
			wantAmount:      200,
			wantDirection:   TransferAtoB,
			wantLeftover:    -500,
			wantDoubleDefct: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTransfer(tt.income, tt.bills)

			if !got.Amount.Equal(decimal.NewFromInt(tt.wantAmount)) {
				t.Errorf("transfer amount = %s, want %d", got.Amount, tt.wantAmount)
			}
			if got.Direction != tt.wantDirection {
				t.Errorf("direction = %q, want %q", got.Direction, tt.wantDirection)
			}
			if !got.Leftover.Equal(decimal.NewFromInt(tt.wantLeftover)) {
				t.Errorf("leftover = %s, want %d", got.Leftover, tt.wantLeftover)
			}
			if got.DoubleDeficit != tt.wantDoubleDefct {
				t.Errorf("double deficit = %v, want %v", got.DoubleDeficit, tt.wantDoubleDefct)
			}
		})
	}
}

func TestComputeTransfer_Totals(t *testing.T) {
	income := incomeOf(2500, 1800)
	bills := []BillLine{
		paidBy(entity.PersonA, 900),
		paidBy(entity.PersonB, 600),
		{Key: "varies", Name: "varies", Amount: decimal.Zero, DueDate: 3, PaidBy: entity.PersonB},
	}

	got := ComputeTransfer(income, bills)

	if !got.PersonABills.Equal(decimal.NewFromInt(900)) {
		t.Errorf("person A bills = %s, want 900", got.PersonABills)
	}
	if !got.PersonBBills.Equal(decimal.NewFromInt(600)) {
		t.Errorf("person B bills = %s, want 600 (zero-amount line counts as zero)", got.PersonBBills)
	}
	if !got.TotalBills.Equal(decimal.NewFromInt(1500)) {
		t.Errorf("total bills = %s, want 1500", got.TotalBills)
	}
	// Leftover is income minus bills for the whole household, regardless of
	// the transfer between partners.
	if !got.Leftover.Equal(decimal.NewFromInt(2800)) {
		t.Errorf("leftover = %s, want 2800", got.Leftover)
	}
	if !got.PersonABalance.Equal(decimal.NewFromInt(1600)) {
		t.Errorf("person A balance = %s, want 1600", got.PersonABalance)
	}
	if !got.PersonBBalance.Equal(decimal.NewFromInt(1200)) {
		t.Errorf("person B balance = %s, want 1200", got.PersonBBalance)
	}
}
