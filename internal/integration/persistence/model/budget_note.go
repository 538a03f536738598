// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/household-budget/backend/internal/domain/entity"
)

// BudgetNoteModel represents the budget_notes table in the database.
type BudgetNoteModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title     string    `gorm:"type:varchar(200);not null"`
	Content   string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null;index"`
}

// TableName returns the table name for the BudgetNoteModel.
func (BudgetNoteModel) TableName() string {
	return "budget_notes"
}

// ToEntity converts a BudgetNoteModel to a domain BudgetNote entity.
func (m *BudgetNoteModel) ToEntity() *entity.BudgetNote {
	return &entity.BudgetNote{
		ID:        m.ID,
		Title:     m.Title,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// BudgetNoteFromEntity creates a BudgetNoteModel from a domain entity.
func BudgetNoteFromEntity(note *entity.BudgetNote) *BudgetNoteModel {
	return &BudgetNoteModel{
		ID:        note.ID,
		Title:     note.Title,
		Content:   note.Content,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}
