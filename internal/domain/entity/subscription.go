// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SubscriptionFrequency represents how often a subscription renews.
type SubscriptionFrequency string

const (
	FrequencyMonthly    SubscriptionFrequency = "monthly"
	FrequencyQuarterly  SubscriptionFrequency = "quarterly"
	FrequencySemiAnnual SubscriptionFrequency = "semi_annual"
	FrequencyYearly     SubscriptionFrequency = "yearly"
)

// IsValid reports whether the frequency is one of the known values.
func (f SubscriptionFrequency) IsValid() bool {
	switch f {
	case FrequencyMonthly, FrequencyQuarterly, FrequencySemiAnnual, FrequencyYearly:
		return true
	}
	return false
}

// RenewalsPerYear returns how many times a subscription with this frequency
// bills in a calendar year.
func (f SubscriptionFrequency) RenewalsPerYear() int {
	switch f {
	case FrequencyMonthly:
		return 12
	case FrequencyQuarterly:
		return 4
	case FrequencySemiAnnual:
		return 2
	case FrequencyYearly:
		return 1
	}
	return 0
}

// Subscription represents a recurring subscription service.
type Subscription struct {
	ID        uuid.UUID
	Name      string
	Amount    decimal.Decimal
	DueDate   time.Time
	Frequency SubscriptionFrequency
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewSubscription creates a new Subscription entity.
func NewSubscription(name string, amount decimal.Decimal, dueDate time.Time, frequency SubscriptionFrequency) *Subscription {
	now := time.Now().UTC()

	return &Subscription{
		ID:        uuid.New(),
		Name:      name,
		Amount:    amount,
		DueDate:   dueDate,
		Frequency: frequency,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
