// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-budget/backend/internal/domain/entity"
)

// IncomeSourceModel represents the income_sources table in the database.
type IncomeSourceModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Person       string          `gorm:"type:varchar(10);not null;index"`
	Amount       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	NextPayDate  *time.Time      `gorm:"type:date"`
	PayDayOfWeek string          `gorm:"type:varchar(10)"`
	CreatedAt    time.Time       `gorm:"not null"`
	UpdatedAt    time.Time       `gorm:"not null"`
}

// TableName returns the table name for the IncomeSourceModel.
func (IncomeSourceModel) TableName() string {
	return "income_sources"
}

// ToEntity converts an IncomeSourceModel to a domain IncomeSource entity.
func (m *IncomeSourceModel) ToEntity() *entity.IncomeSource {
	return &entity.IncomeSource{
		ID:           m.ID,
		Person:       entity.Person(m.Person),
		Amount:       m.Amount,
		NextPayDate:  m.NextPayDate,
		PayDayOfWeek: m.PayDayOfWeek,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// IncomeSourceFromEntity creates an IncomeSourceModel from a domain entity.
func IncomeSourceFromEntity(source *entity.IncomeSource) *IncomeSourceModel {
	return &IncomeSourceModel{
		ID:           source.ID,
		Person:       string(source.Person),
		Amount:       source.Amount,
		NextPayDate:  source.NextPayDate,
		PayDayOfWeek: source.PayDayOfWeek,
		CreatedAt:    source.CreatedAt,
		UpdatedAt:    source.UpdatedAt,
	}
}
