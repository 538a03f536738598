// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreditCard represents a credit card tracked on the debt page. Its minimum
// payment is folded into pay-period bill lists as a synthetic bill.
type CreditCard struct {
	ID      uuid.UUID
	Name    string
	Balance decimal.Decimal
	// CreditLimit is nil when the user has not entered a limit; utilization
	// is only reported for cards with a limit.
	CreditLimit *decimal.Decimal
	MinPayment  decimal.Decimal
	APR         decimal.Decimal
	// DueDate is a day of month in [1,31].
	DueDate   int
	OwnedBy   Person
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCreditCard creates a new CreditCard entity.
func NewCreditCard(name string, balance decimal.Decimal, creditLimit *decimal.Decimal, minPayment, apr decimal.Decimal, dueDate int, ownedBy Person) *CreditCard {
	now := time.Now().UTC()

	return &CreditCard{
		ID:          uuid.New(),
		Name:        name,
		Balance:     balance,
		CreditLimit: creditLimit,
		MinPayment:  minPayment,
		APR:         apr,
		DueDate:     dueDate,
		OwnedBy:     ownedBy,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
