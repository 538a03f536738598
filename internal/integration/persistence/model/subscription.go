// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-budget/backend/internal/domain/entity"
)

// SubscriptionModel represents the subscriptions table in the database.
type SubscriptionModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name      string          `gorm:"type:varchar(100);not null"`
	Amount    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	DueDate   time.Time       `gorm:"type:date;not null"`
	Frequency string          `gorm:"type:varchar(15);not null"`
	Active    bool            `gorm:"not null;default:true;index"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for the SubscriptionModel.
func (SubscriptionModel) TableName() string {
	return "subscriptions"
}

// ToEntity converts a SubscriptionModel to a domain Subscription entity.
func (m *SubscriptionModel) ToEntity() *entity.Subscription {
	return &entity.Subscription{
		ID:        m.ID,
		Name:      m.Name,
		Amount:    m.Amount,
		DueDate:   m.DueDate,
		Frequency: entity.SubscriptionFrequency(m.Frequency),
		Active:    m.Active,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// SubscriptionFromEntity creates a SubscriptionModel from a domain entity.
func SubscriptionFromEntity(sub *entity.Subscription) *SubscriptionModel {
	return &SubscriptionModel{
		ID:        sub.ID,
		Name:      sub.Name,
		Amount:    sub.Amount,
		DueDate:   sub.DueDate,
		Frequency: string(sub.Frequency),
		Active:    sub.Active,
		CreatedAt: sub.CreatedAt,
		UpdatedAt: sub.UpdatedAt,
	}
}
