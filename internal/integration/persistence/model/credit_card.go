// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-budget/backend/internal/domain/entity"
)

// CreditCardModel represents the credit_cards table in the database.
type CreditCardModel struct {
	ID          uuid.UUID        `gorm:"type:uuid;primaryKey"`
	Name        string           `gorm:"type:varchar(100);not null"`
	Balance     decimal.Decimal  `gorm:"type:decimal(12,2);not null"`
	CreditLimit *decimal.Decimal `gorm:"type:decimal(12,2)"`
	MinPayment  decimal.Decimal  `gorm:"type:decimal(12,2);not null"`
	APR         decimal.Decimal  `gorm:"type:decimal(5,2);not null"`
	DueDate     int              `gorm:"not null"`
	OwnedBy     string           `gorm:"type:varchar(10);not null;index"`
	Active      bool             `gorm:"not null;default:true;index"`
	CreatedAt   time.Time        `gorm:"not null"`
	UpdatedAt   time.Time        `gorm:"not null"`
}

// TableName returns the table name for the CreditCardModel.
func (CreditCardModel) TableName() string {
	return "credit_cards"
}

// ToEntity converts a CreditCardModel to a domain CreditCard entity.
func (m *CreditCardModel) ToEntity() *entity.CreditCard {
	return &entity.CreditCard{
		ID:          m.ID,
		Name:        m.Name,
		Balance:     m.Balance,
		CreditLimit: m.CreditLimit,
		MinPayment:  m.MinPayment,
		APR:         m.APR,
		DueDate:     m.DueDate,
		OwnedBy:     entity.Person(m.OwnedBy),
		Active:      m.Active,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// CreditCardFromEntity creates a CreditCardModel from a domain entity.
func CreditCardFromEntity(card *entity.CreditCard) *CreditCardModel {
	return &CreditCardModel{
		ID:          card.ID,
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
