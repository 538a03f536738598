// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// BudgetNote is a free-form planning note on the budget planning page.
type BudgetNote struct {
	ID        uuid.UUID
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBudgetNote creates a new BudgetNote entity.
func NewBudgetNote(title, content string) *BudgetNote {
	now := time.Now().UTC()

	return &BudgetNote{
		ID:        uuid.New(),
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
