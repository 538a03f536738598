package payperiod

import (
	"github.com/shopspring/decimal"

	"github.com/household-budget/backend/internal/domain/entity"
)

// TransferDirection names who sends money to whom to balance a period.
type TransferDirection string

const (
	TransferNone TransferDirection = ""
	TransferAtoB TransferDirection = "person_a_to_person_b"
	TransferBtoA TransferDirection = "person_b_to_person_a"
)

// Transfer is the settled view of one pay period: what each partner owes in
// bills, where their balance lands after income, and the single transfer
// that covers any shortfall.
type Transfer struct {
	PersonABills   decimal.Decimal
	PersonBBills   decimal.Decimal
	PersonABalance decimal.Decimal
	PersonBBalance decimal.Decimal
	Amount         decimal.Decimal
	Direction      TransferDirection
	TotalBills     decimal.Decimal
	// Leftover is the whole-household figure: combined income minus all
	// assigned bills, independent of who pays what.
	Leftover decimal.Decimal
	// DoubleDeficit is set when both partners run a deficit at once. The
	// single-transfer answer below still follows the person-B-first policy,
	// but the situation is surfaced instead of silently resolved.
	DoubleDeficit bool
}

// ComputeTransfer partitions the assigned bills by payer and derives each
// partner's balance and the single transfer needed to cover a shortfall.
// Person B's deficit is checked first; when both balances are negative only
// person B's deficit drives the transfer and DoubleDeficit flags the case.
func ComputeTransfer(income Income, assigned []BillLine) Transfer {
	personABills := decimal.Zero
	personBBills := decimal.Zero
	for _, line := range assigned {
		switch line.PaidBy {
		case entity.PersonB:
			personBBills = personBBills.Add(line.Amount)
		default:
			personABills = personABills.Add(line.Amount)
		}
	}

	personABalance := income.PersonA.Total.Sub(personABills)
	personBBalance := income.PersonB.Total.Sub(personBBills)

	transfer := Transfer{
		PersonABills:   personABills,
		PersonBBills:   personBBills,
		PersonABalance: personABalance,
		PersonBBalance: personBBalance,
		Amount:         decimal.Zero,
		Direction:      TransferNone,
		TotalBills:     personABills.Add(personBBills),
		DoubleDeficit:  personABalance.IsNegative() && personBBalance.IsNegative(),
	}
	transfer.Leftover = income.Total.Sub(transfer.TotalBills)

	if personBBalance.IsNegative() {
		transfer.Amount = personBBalance.Abs()
		transfer.Direction = TransferAtoB
	} else if personABalance.IsNegative() {
		transfer.Amount = personABalance.Abs()
		transfer.Direction = TransferBtoA
	}

	return transfer
}
