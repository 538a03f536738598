// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// IncomeSource represents one partner's bi-weekly payroll configuration.
// Only the anchor date and paycheck amount are stored; individual paychecks
// are always recomputed from these, never persisted.
type IncomeSource struct {
	ID     uuid.UUID
	Person Person
	// Amount is the value of a single paycheck, never negative.
	Amount decimal.Decimal
	// NextPayDate anchors the 14-day cadence. A nil value means payroll is
	// not configured yet; projections treat it as "no paychecks".
	NextPayDate *time.Time
	// PayDayOfWeek is an optional hint entered by the user ("Friday"). It is
	// kept for display but does not drive any calculation.
	PayDayOfWeek string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewIncomeSource creates a new IncomeSource entity.
func NewIncomeSource(person Person, amount decimal.Decimal, nextPayDate *time.Time, payDayOfWeek string) *IncomeSource {
	now := time.Now().UTC()

	return &IncomeSource{
		ID:           uuid.New(),
		Person:       person,
		Amount:       amount,
		NextPayDate:  nextPayDate,
		PayDayOfWeek: payDayOfWeek,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
