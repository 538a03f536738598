// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/household-budget/backend/internal/application/usecase/debt"
	"github.com/household-budget/backend/internal/domain/entity"
)

// CreateCreditCardRequest represents the request body for credit card creation.
type CreateCreditCardRequest struct {
	Name        string           `json:"name" binding:"required,min=1,max=100"`
	Balance     decimal.Decimal  `json:"balance"`
	CreditLimit *decimal.Decimal `json:"credit_limit,omitempty"`
	MinPayment  decimal.Decimal  `json:"min_payment"`
	APR         decimal.Decimal  `json:"apr"`
	DueDate     int              `json:"due_date" binding:"required,min=1,max=31"`
	OwnedBy     string           `json:"owned_by" binding:"required"`
}

// UpdateCreditCardRequest represents the request body for credit card update.
// Omitted fields are left unchanged; clear_credit_limit removes the limit.
type UpdateCreditCardRequest struct {
	Name             *string          `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Balance          *decimal.Decimal `json:"balance,omitempty"`
	CreditLimit      *decimal.Decimal `json:"credit_limit,omitempty"`
	ClearCreditLimit bool             `json:"clear_credit_limit,omitempty"`
	MinPayment       *decimal.Decimal `json:"min_payment,omitempty"`
	APR              *decimal.Decimal `json:"apr,omitempty"`
	DueDate          *int             `json:"due_date,omitempty" binding:"omitempty,min=1,max=31"`
	OwnedBy          *string          `json:"owned_by,omitempty"`
	Active           *bool            `json:"active,omitempty"`
}

// CreateLoanRequest represents the request body for loan creation.
type CreateLoanRequest struct {
	Name           string          `json:"name" binding:"required,min=1,max=100"`
	Balance        decimal.Decimal `json:"balance"`
	MonthlyPayment decimal.Decimal `json:"monthly_payment"`
	APR            decimal.Decimal `json:"apr"`
	DueDate        int             `json:"due_date" binding:"required,min=1,max=31"`
}

// UpdateLoanRequest represents the request body for loan update. Omitted
// fields are left unchanged.
type UpdateLoanRequest struct {
	Name           *string          `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Balance        *decimal.Decimal `json:"balance,omitempty"`
	MonthlyPayment *decimal.Decimal `json:"monthly_payment,omitempty"`
	APR            *decimal.Decimal `json:"apr,omitempty"`
	DueDate        *int             `json:"due_date,omitempty" binding:"omitempty,min=1,max=31"`
	Active         *bool            `json:"active,omitempty"`
}

// CreditCardResponse represents a single credit card in API responses.
type CreditCardResponse struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Balance     decimal.Decimal  `json:"balance"`
	CreditLimit *decimal.Decimal `json:"credit_limit"`
	MinPayment  decimal.Decimal  `json:"min_payment"`
	APR         decimal.Decimal  `json:"apr"`
	DueDate     int              `json:"due_date"`
	OwnedBy     string           `json:"owned_by"`
	// Utilization is balance over limit as a percentage, omitted for
	// cards without a credit limit.
	Utilization *decimal.Decimal `json:"utilization,omitempty"`
	Active      bool             `json:"active"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// LoanResponse represents a single loan in API responses.
type LoanResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Balance        decimal.Decimal `json:"balance"`
	MonthlyPayment decimal.Decimal `json:"monthly_payment"`
	APR            decimal.Decimal `json:"apr"`
	DueDate        int             `json:"due_date"`
	Active         bool            `json:"active"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// PersonDebtResponse represents one partner's card debt aggregates.
type PersonDebtResponse struct {
	Person      string          `json:"person"`
	CardBalance decimal.Decimal `json:"card_balance"`
	MinPayments decimal.Decimal `json:"min_payments"`
}

// DebtSummaryResponse represents the response for the debt summary.
type DebtSummaryResponse struct {
	Cards []CreditCardResponse `json:"cards"`
	Loans []LoanResponse       `json:"loans"`

	TotalCardBalance   decimal.Decimal      `json:"total_card_balance"`
	TotalCreditLimit   decimal.Decimal      `json:"total_credit_limit"`
	TotalLoanBalance   decimal.Decimal      `json:"total_loan_balance"`
	TotalDebt          decimal.Decimal      `json:"total_debt"`
	TotalMinPayments   decimal.Decimal      `json:"total_min_payments"`
	TotalLoanPayments  decimal.Decimal      `json:"total_loan_payments"`
	OverallUtilization *decimal.Decimal     `json:"overall_utilization,omitempty"`
	ByPerson           []PersonDebtResponse `json:"by_person"`
}

// ToCreditCardResponse converts a domain CreditCard entity to a DTO.
func ToCreditCardResponse(card *entity.CreditCard) CreditCardResponse {
	return CreditCardResponse{
		ID:          card.ID.String(),
		Name:        card.Name,
		Balance:     card.Balance,
		CreditLimit: card.CreditLimit,
		MinPayment:  card.MinPayment,
		APR:         card.APR,
		DueDate:     card.DueDate,
		OwnedBy:     string(card.OwnedBy),
		Active:      card.Active,
		CreatedAt:   card.CreatedAt,
		UpdatedAt:   card.UpdatedAt,
	}
}

// ToLoanResponse converts a domain Loan entity to a DTO.
func ToLoanResponse(loan *entity.Loan) LoanResponse {
	return LoanResponse{
		ID:             loan.ID.String(),
		Name:           loan.Name,
		Balance:        loan.Balance,
		MonthlyPayment: loan.MonthlyPayment,
		APR:            loan.APR,
		DueDate:        loan.DueDate,
		Active:         loan.Active,
		CreatedAt:      loan.CreatedAt,
		UpdatedAt:      loan.UpdatedAt,
	}
}

// ToDebtSummaryResponse converts a debt summary output to a DTO.
func ToDebtSummaryResponse(output *debt.GetDebtSummaryOutput) DebtSummaryResponse {
	cards := make([]CreditCardResponse, len(output.Cards))
	for i, summary := range output.Cards {
		card := ToCreditCardResponse(summary.Card)
		card.Utilization = summary.Utilization
		cards[i] = card
	}

	loans := make([]LoanResponse, len(output.Loans))
	for i, loan := range output.Loans {
		loans[i] = ToLoanResponse(loan)
	}

	byPerson := make([]PersonDebtResponse, len(output.ByPerson))
	for i, person := range output.ByPerson {
		byPerson[i] = PersonDebtResponse{
			Person:      string(person.Person),
			CardBalance: person.CardBalance,
			MinPayments: person.MinPayments,
		}
	}

	return DebtSummaryResponse{
		Cards:              cards,
		Loans:              loans,
		TotalCardBalance:   output.TotalCardBalance,
		TotalCreditLimit:   output.TotalCreditLimit,
		TotalLoanBalance:   output.TotalLoanBalance,
		TotalDebt:          output.TotalDebt,
		TotalMinPayments:   output.TotalMinPayments,
		TotalLoanPayments:  output.TotalLoanPayments,
		OverallUtilization: output.OverallUtilization,
		ByPerson:           byPerson,
	}
}
