// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-budget/backend/internal/domain/entity"
)

// SavingsGoalModel represents the savings_goals table in the database.
type SavingsGoalModel struct {
	ID                  uuid.UUID        `gorm:"type:uuid;primaryKey"`
	Name                string           `gorm:"type:varchar(100);not null"`
	TargetAmount        decimal.Decimal  `gorm:"type:decimal(12,2);not null"`
	TargetDate          time.Time        `gorm:"type:date;not null;index"`
	CurrentSaved        decimal.Decimal  `gorm:"type:decimal(12,2);not null"`
	MonthlyContribution *decimal.Decimal `gorm:"type:decimal(12,2)"`
	Notes               string           `gorm:"type:text"`
	Active              bool             `gorm:"not null;default:true;index"`
	Completed           bool             `gorm:"not null;default:false"`
	CreatedAt           time.Time        `gorm:"not null"`
	UpdatedAt           time.Time        `gorm:"not null"`
}

// TableName returns the table name for the SavingsGoalModel.
func (SavingsGoalModel) TableName() string {
	return "savings_goals"
}

// ToEntity converts a SavingsGoalModel to a domain SavingsGoal entity.
func (m *SavingsGoalModel) ToEntity() *entity.SavingsGoal {
	return &entity.SavingsGoal{
		ID:                  m.ID,
		Name:                m.Name,
		TargetAmount:        m.TargetAmount,
		TargetDate:          m.TargetDate,
		CurrentSaved:        m.CurrentSaved,
		MonthlyContribution: m.MonthlyContribution,
		Notes:               m.Notes,
		Active:              m.Active,
		Completed:           m.Completed,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

// SavingsGoalFromEntity creates a SavingsGoalModel from a domain entity.
func SavingsGoalFromEntity(goal *entity.SavingsGoal) *SavingsGoalModel {
	return &SavingsGoalModel{
		ID:                  goal.ID,
		Name:                goal.Name,
		TargetAmount:        goal.TargetAmount,
		TargetDate:          goal.TargetDate,
		CurrentSaved:        goal.CurrentSaved,
		MonthlyContribution: goal.MonthlyContribution,
		Notes:               goal.Notes,
		Active:              goal.Active,
		Completed:           goal.Completed,
		CreatedAt:           goal.CreatedAt,
		UpdatedAt:           goal.UpdatedAt,
	}
}
