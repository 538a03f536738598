// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-budget/backend/internal/domain/entity"
)

// BillModel represents the bills table in the database.
type BillModel struct {
	ID            uuid.UUID        `gorm:"type:uuid;primaryKey"`
	Name          string           `gorm:"type:varchar(100);not null"`
	DefaultAmount *decimal.Decimal `gorm:"type:decimal(12,2)"`
	DueDate       int              `gorm:"not null"`
	Category      string           `gorm:"type:varchar(20);not null"`
	PaidBy        string           `gorm:"type:varchar(10);not null;index"`
	PaymentMethod string           `gorm:"type:varchar(50)"`
	Varies        bool             `gorm:"not null;default:false"`
	Active        bool             `gorm:"not null;default:true;index"`
	CreatedAt     time.Time        `gorm:"not null"`
	UpdatedAt     time.Time        `gorm:"not null"`
}

// TableName returns the table name for the BillModel.
func (BillModel) TableName() string {
	return "bills"
}

// ToEntity converts a BillModel to a domain Bill entity.
func (m *BillModel) ToEntity() *entity.Bill {
	return &entity.Bill{
		ID:            m.ID,
		Name:          m.Name,
		DefaultAmount: m.DefaultAmount,
		DueDate:       m.DueDate,
		Category:      entity.BillCategory(m.Category),
		PaidBy:        entity.Person(m.PaidBy),
		PaymentMethod: m.PaymentMethod,
		Varies:        m.Varies,
		Active:        m.Active,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// BillFromEntity creates a BillModel from a domain Bill entity.
func BillFromEntity(bill *entity.Bill) *BillModel {
	return &BillModel{
		ID:            bill.ID,
		Name:          bill.Name,
		DefaultAmount: bill.DefaultAmount,
		DueDate:       bill.DueDate,
		Category:      string(bill.Category),
		PaidBy:        string(bill.PaidBy),
		PaymentMethod: bill.PaymentMethod,
		Varies:        bill.Varies,
		Active:        bill.Active,
		CreatedAt:     bill.CreatedAt,
		UpdatedAt:     bill.UpdatedAt,
	}
}
