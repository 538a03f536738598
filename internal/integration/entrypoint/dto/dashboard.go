// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/shopspring/decimal"

	"github.com/household-budget/backend/internal/application/usecase/dashboard"
)

// BonusPaycheckResponse flags a partner's three-paycheck month.
type BonusPaycheckResponse struct {
	Person        string          `json:"person"`
	PaycheckCount int             `json:"paycheck_count"`
	ExtraAmount   decimal.Decimal `json:"extra_amount"`
}

// OverviewResponse represents the dashboard overview.
type OverviewResponse struct {
	Today  string         `json:"today"`
	Period PeriodResponse `json:"period"`

	Income      IncomeResponse     `json:"income"`
	Bills       []BillLineResponse `json:"bills"`
	Transfer    TransferResponse   `json:"transfer"`
	PaidCount   int                `json:"paid_count"`
	UnpaidCount int                `json:"unpaid_count"`
	UnpaidTotal decimal.Decimal    `json:"unpaid_total"`

	MonthlyBillTotal decimal.Decimal `json:"monthly_bill_total"`

	TotalCardBalance  decimal.Decimal  `json:"total_card_balance"`
	TotalLoanBalance  decimal.Decimal  `json:"total_loan_balance"`
	CreditUtilization *decimal.Decimal `json:"credit_utilization,omitempty"`

	SubscriptionMonthlyAverage decimal.Decimal `json:"subscription_monthly_average"`

	SavingsTarget decimal.Decimal `json:"savings_target"`
	SavingsSaved  decimal.Decimal `json:"savings_saved"`

	BonusPaychecks []BonusPaycheckResponse `json:"bonus_paychecks"`
}

// ToOverviewResponse converts a dashboard overview output to a DTO.
func ToOverviewResponse(output *dashboard.GetOverviewOutput) OverviewResponse {
	bills := make([]BillLineResponse, len(output.Bills))
	for i, line := range output.Bills {
		bills[i] = ToBillLineResponse(line, output.PaidKeys[line.Key])
	}

	bonuses := make([]BonusPaycheckResponse, len(output.BonusPaychecks))
	for i, bonus := range output.BonusPaychecks {
		bonuses[i] = BonusPaycheckResponse{
			Person:        string(bonus.Person),
			PaycheckCount: bonus.PaycheckCount,
			ExtraAmount:   bonus.ExtraAmount,
		}
	}

	return OverviewResponse{
		Today:                      output.Today.Format(DateLayout),
		Period:                     ToPeriodResponse(output.Period),
		Income:                     ToIncomeResponse(output.Income),
		Bills:                      bills,
		Transfer:                   ToTransferResponse(output.Transfer),
		PaidCount:                  output.PaidCount,
		UnpaidCount:                output.UnpaidCount,
		UnpaidTotal:                output.UnpaidTotal,
		MonthlyBillTotal:           output.MonthlyBillTotal,
		TotalCardBalance:           output.TotalCardBalance,
		TotalLoanBalance:           output.TotalLoanBalance,
		CreditUtilization:          output.CreditUtilization,
		SubscriptionMonthlyAverage: output.SubscriptionMonthlyAverage,
		SavingsTarget:              output.SavingsTarget,
		SavingsSaved:               output.SavingsSaved,
		BonusPaychecks:             bonuses,
	}
}
