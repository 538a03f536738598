// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Loan represents an installment loan tracked on the debt page. Its monthly
// payment is folded into pay-period bill lists as a synthetic bill.
type Loan struct {
	ID             uuid.UUID
	Name           string
	Balance        decimal.Decimal
	MonthlyPayment decimal.Decimal
	APR            decimal.Decimal
	// DueDate is a day of month in [1,31].
	DueDate   int
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewLoan creates a new Loan entity.
func NewLoan(name string, balance, monthlyPayment, apr decimal.Decimal, dueDate int) *Loan {
	now := time.Now().UTC()

	return &Loan{
		ID:             uuid.New(),
		Name:           name,
		Balance:        balance,
		MonthlyPayment: monthlyPayment,
		APR:            apr,
		DueDate:        dueDate,
		Active:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
