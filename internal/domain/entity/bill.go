// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BillCategory represents the category of a recurring bill.
type BillCategory string

const (
	BillCategoryRent       BillCategory = "rent"
	BillCategoryCreditCard BillCategory = "credit_card"
	BillCategoryUtility    BillCategory = "utility"
	BillCategoryLoan       BillCategory = "loan"
	BillCategoryPersonal   BillCategory = "personal"
	BillCategoryInvestment BillCategory = "investment"
	BillCategoryOther      BillCategory = "other"
)

// IsValid reports whether the category is one of the known values.
func (c BillCategory) IsValid() bool {
	switch c {
	case BillCategoryRent, BillCategoryCreditCard, BillCategoryUtility,
		BillCategoryLoan, BillCategoryPersonal, BillCategoryInvestment,
		BillCategoryOther:
		return true
	}
	return false
}

// Bill represents a recurring monthly bill.
type Bill struct {
	ID   uuid.UUID
	Name string
	// DefaultAmount is nil when the bill varies month to month and the user
	// has not entered an override. Calculations treat nil as zero.
	DefaultAmount *decimal.Decimal
	// DueDate is a day of month in [1,31], not a full date.
	DueDate       int
	Category      BillCategory
	PaidBy        Person
	PaymentMethod string
	// Varies marks bills whose amount changes every month.
	Varies    bool
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBill creates a new Bill entity.
func NewBill(name string, defaultAmount *decimal.Decimal, dueDate int, category BillCategory, paidBy Person, paymentMethod string) *Bill {
	now := time.Now().UTC()

	return &Bill{
		ID:            uuid.New(),
		Name:          name,
		DefaultAmount: defaultAmount,
		DueDate:       dueDate,
		Category:      category,
		PaidBy:        paidBy,
		PaymentMethod: paymentMethod,
		Varies:        defaultAmount == nil,
		Active:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Amount returns the bill's amount with nil resolved to zero, keeping
// downstream arithmetic total-safe for "varies" bills without an override.
func (b *Bill) Amount() decimal.Decimal {
	if b.DefaultAmount == nil {
		return decimal.Zero
	}
	return *b.DefaultAmount
}
