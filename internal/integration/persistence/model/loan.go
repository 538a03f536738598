// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-budget/backend/internal/domain/entity"
)

// LoanModel represents the loans table in the database.
type LoanModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name           string          `gorm:"type:varchar(100);not null"`
	Balance        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	MonthlyPayment decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	APR            decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	DueDate        int             `gorm:"not null"`
	Active         bool            `gorm:"not null;default:true;index"`
	CreatedAt      time.Time       `gorm:"not null"`
	UpdatedAt      time.Time       `gorm:"not null"`
}

// TableName returns the table name for the LoanModel.
func (LoanModel) TableName() string {
	return "loans"
}

// ToEntity converts a LoanModel to a domain Loan entity.
func (m *LoanModel) ToEntity() *entity.Loan {
	return &entity.Loan{
		ID:             m.ID,
		Name:           m.Name,
		Balance:        m.Balance,
		MonthlyPayment: m.MonthlyPayment,
		APR:            m.APR,
		DueDate:        m.DueDate,
		Active:         m.Active,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// LoanFromEntity creates a LoanModel from a domain Loan entity.
func LoanFromEntity(loan *entity.Loan) *LoanModel {
	return &LoanModel{
		ID:             loan.ID,
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
