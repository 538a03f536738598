package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/household-budget/backend/internal/domain/entity"
)

// BudgetNoteRepository defines the interface for budget note persistence.
type BudgetNoteRepository interface {
	// FindAll retrieves all notes, most recently updated first.
	FindAll(ctx context.Context) ([]*entity.BudgetNote, error)

	// FindByID retrieves a note by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.BudgetNote, error)

	// Create creates a new note.
	Create(ctx context.Context, note *entity.BudgetNote) error

	// Update updates an existing note.
	Update(ctx context.Context, note *entity.BudgetNote) error

	// Delete removes a note.
	Delete(ctx context.Context, id uuid.UUID) error
}
