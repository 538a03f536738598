// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SavingsGoal represents a future expense the household is saving toward.
type SavingsGoal struct {
	ID           uuid.UUID
	Name         string
	TargetAmount decimal.Decimal
	TargetDate   time.Time
	CurrentSaved decimal.Decimal
	// MonthlyContribution is nil when the user has not committed to a fixed
	// monthly amount.
	MonthlyContribution *decimal.Decimal
	Notes               string
	Active              bool
	Completed           bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// NewSavingsGoal creates a new SavingsGoal entity.
func NewSavingsGoal(name string, targetAmount decimal.Decimal, targetDate time.Time, currentSaved decimal.Decimal, monthlyContribution *decimal.Decimal, notes string) *SavingsGoal {
	now := time.Now().UTC()

	return &SavingsGoal{
		ID:                  uuid.New(),
		Name:                name,
		TargetAmount:        targetAmount,
		TargetDate:          targetDate,
		CurrentSaved:        currentSaved,
		MonthlyContribution: monthlyContribution,
		Notes:               notes,
		Active:              true,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}

// Remaining returns how much is still needed to reach the target.
func (g *SavingsGoal) Remaining() decimal.Decimal {
	return g.TargetAmount.Sub(g.CurrentSaved)
}

// Progress returns the saved fraction as a percentage in [0,100+). A zero
// target reports zero progress rather than dividing by zero.
func (g *SavingsGoal) Progress() decimal.Decimal {
	if g.TargetAmount.IsZero() {
		return decimal.Zero
	}
	return g.CurrentSaved.Div(g.TargetAmount).Mul(decimal.NewFromInt(100))
}
