// Package note contains budget note use cases.
package note

import (
	"context"
	"fmt"

	"github.com/household-budget/backend/internal/application/adapter"
	"github.com/household-budget/backend/internal/domain/entity"
)

// ListNotesOutput represents the output of listing notes.
type ListNotesOutput struct {
	Notes []*entity.BudgetNote
}

// ListNotesUseCase handles listing budget notes.
type ListNotesUseCase struct {
	noteRepo adapter.BudgetNoteRepository
}

// NewListNotesUseCase creates a new ListNotesUseCase instance.
func NewListNotesUseCase(noteRepo adapter.BudgetNoteRepository) *ListNotesUseCase {
	return &ListNotesUseCase{
		noteRepo: noteRepo,
	}
}

// Execute lists all notes, most recently updated first.
func (uc *ListNotesUseCase) Execute(ctx context.Context) (*ListNotesOutput, error) {
	notes, err := uc.noteRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	return &ListNotesOutput{
		Notes: notes,
	}, nil
}
