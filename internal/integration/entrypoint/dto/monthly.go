// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/shopspring/decimal"

	"github.com/household-budget/backend/internal/application/usecase/monthly"
	"github.com/household-budget/backend/internal/domain/payperiod"
)

// PeriodResponse represents a pay period's bounds in API responses.
type PeriodResponse struct {
	Index int    `json:"index"`
	Start string `json:"start"`
	End   string `json:"end"`
	Label string `json:"label"`
}

// PaycheckResponse represents a single projected paycheck.
type PaycheckResponse struct {
	Date   string          `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

// PersonIncomeResponse represents one partner's projected income for a period.
type PersonIncomeResponse struct {
	Person    string             `json:"person"`
	Paychecks []PaycheckResponse `json:"paychecks"`
	Total     decimal.Decimal    `json:"total"`
}

// IncomeResponse represents both partners' projected income for a period.
type IncomeResponse struct {
	PersonA PersonIncomeResponse `json:"person_a"`
	PersonB PersonIncomeResponse `json:"person_b"`
	Total   decimal.Decimal      `json:"total"`
}

// TransferResponse represents the balancing transfer for a period.
type TransferResponse struct {
	PersonABills   decimal.Decimal `json:"person_a_bills"`
	PersonBBills   decimal.Decimal `json:"person_b_bills"`
	PersonABalance decimal.Decimal `json:"person_a_balance"`
	PersonBBalance decimal.Decimal `json:"person_b_balance"`
	Amount         decimal.Decimal `json:"amount"`
	Direction      string          `json:"direction"`
	TotalBills     decimal.Decimal `json:"total_bills"`
	Leftover       decimal.Decimal `json:"leftover"`
	DoubleDeficit  bool            `json:"double_deficit"`
}

// BillLineResponse represents one bill assigned to a period.
type BillLineResponse struct {
	Key      string          `json:"key"`
	Name     string          `json:"name"`
	Amount   decimal.Decimal `json:"amount"`
	DueDate  int             `json:"due_date"`
	Category string          `json:"category"`
	PaidBy   string          `json:"paid_by"`
	Paid     bool            `json:"paid"`
}

// PeriodPlanResponse represents the full picture of one pay period.
type PeriodPlanResponse struct {
	Period      PeriodResponse     `json:"period"`
	Income      IncomeResponse     `json:"income"`
	Bills       []BillLineResponse `json:"bills"`
	Transfer    TransferResponse   `json:"transfer"`
	PaidCount   int                `json:"paid_count"`
	PaidTotal   decimal.Decimal    `json:"paid_total"`
	UnpaidTotal decimal.Decimal    `json:"unpaid_total"`
	Current     bool               `json:"current"`
}

// MonthPlanResponse represents the response for the month plan.
type MonthPlanResponse struct {
	Year    int                  `json:"year"`
	Month   int                  `json:"month"`
	Periods []PeriodPlanResponse `json:"periods"`
}

// ToPeriodResponse converts a pay period to a PeriodResponse DTO.
func ToPeriodResponse(period payperiod.Period) PeriodResponse {
	return PeriodResponse{
		Index: period.Index,
		Start: period.Start.Format(DateLayout),
		End:   period.End.Format(DateLayout),
		Label: period.Label,
	}
}

// ToIncomeResponse converts a period's projected income to a DTO.
func ToIncomeResponse(income payperiod.Income) IncomeResponse {
	return IncomeResponse{
		PersonA: toPersonIncomeResponse(income.PersonA),
		PersonB: toPersonIncomeResponse(income.PersonB),
		Total:   income.Total,
	}
}

func toPersonIncomeResponse(personIncome payperiod.PersonIncome) PersonIncomeResponse {
	paychecks := make([]PaycheckResponse, len(personIncome.Paychecks))
	for i, paycheck := range personIncome.Paychecks {
		paychecks[i] = PaycheckResponse{
			Date:   paycheck.Date.Format(DateLayout),
			Amount: paycheck.Amount,
		}
	}
	return PersonIncomeResponse{
		Person:    string(personIncome.Person),
		Paychecks: paychecks,
		Total:     personIncome.Total,
	}
}

// ToTransferResponse converts a balancing transfer to a TransferResponse DTO.
func ToTransferResponse(transfer payperiod.Transfer) TransferResponse {
	return TransferResponse{
		PersonABills:   transfer.PersonABills,
		PersonBBills:   transfer.PersonBBills,
		PersonABalance: transfer.PersonABalance,
		PersonBBalance: transfer.PersonBBalance,
		Amount:         transfer.Amount,
		Direction:      string(transfer.Direction),
		TotalBills:     transfer.TotalBills,
		Leftover:       transfer.Leftover,
		DoubleDeficit:  transfer.DoubleDeficit,
	}
}

// ToBillLineResponse converts an assigned bill line to a DTO.
func ToBillLineResponse(line payperiod.BillLine, paid bool) BillLineResponse {
	return BillLineResponse{
		Key:      line.Key,
		Name:     line.Name,
		Amount:   line.Amount,
		DueDate:  line.DueDate,
		Category: string(line.Category),
		PaidBy:   string(line.PaidBy),
		Paid:     paid,
	}
}

// ToMonthPlanResponse converts a month plan output to a MonthPlanResponse DTO.
func ToMonthPlanResponse(output *monthly.GetMonthPlanOutput) MonthPlanResponse {
	periods := make([]PeriodPlanResponse, len(output.Periods))
	for i, plan := range output.Periods {
		bills := make([]BillLineResponse, len(plan.Bills))
		for j, status := range plan.Bills {
			bills[j] = ToBillLineResponse(status.Line, status.Paid)
		}
		periods[i] = PeriodPlanResponse{
			Period:      ToPeriodResponse(plan.Period),
			Income:      ToIncomeResponse(plan.Income),
			Bills:       bills,
			Transfer:    ToTransferResponse(plan.Transfer),
			PaidCount:   plan.PaidCount,
			PaidTotal:   plan.PaidTotal,
			UnpaidTotal: plan.UnpaidTotal,
			Current:     plan.Current,
		}
	}
	return MonthPlanResponse{
		Year:    output.Year,
		Month:   int(output.Month),
		Periods: periods,
	}
}
