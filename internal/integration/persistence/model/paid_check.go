// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/household-budget/backend/internal/domain/entity"
)

// PaidCheckModel represents the paid_checks table in the database. The
// composite primary key makes marking a bill paid naturally idempotent.
type PaidCheckModel struct {
	Year      int       `gorm:"primaryKey;autoIncrement:false"`
	Month     int       `gorm:"primaryKey;autoIncrement:false"`
	Period    int       `gorm:"primaryKey;autoIncrement:false"`
	BillKey   string    `gorm:"type:varchar(64);primaryKey"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the PaidCheckModel.
func (PaidCheckModel) TableName() string {
	return "paid_checks"
}

// ToEntity converts a PaidCheckModel to a domain PaidCheck entity.
func (m *PaidCheckModel) ToEntity() *entity.PaidCheck {
	return &entity.PaidCheck{
		Year:    m.Year,
		Month:   m.Month,
		Period:  m.Period,
		BillKey: m.BillKey,
	}
}

// PaidCheckFromEntity creates a PaidCheckModel from a domain entity.
func PaidCheckFromEntity(check *entity.PaidCheck) *PaidCheckModel {
	return &PaidCheckModel{
		Year:      check.Year,
		Month:     check.Month,
		Period:    check.Period,
		BillKey:   check.BillKey,
		CreatedAt: time.Now().UTC(),
	}
}
