// Package note contains budget note use cases.
package note

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/household-budget/backend/internal/application/adapter"
	domainerror "github.com/household-budget/backend/internal/domain/error"
)

// DeleteNoteInput represents the input for note deletion.
type DeleteNoteInput struct {
	NoteID uuid.UUID
}

// DeleteNoteOutput represents the output of note deletion.
type DeleteNoteOutput struct {
	Success bool
}

// DeleteNoteUseCase handles note deletion logic.
type DeleteNoteUseCase struct {
	noteRepo adapter.BudgetNoteRepository
}

// NewDeleteNoteUseCase creates a new DeleteNoteUseCase instance.
func NewDeleteNoteUseCase(noteRepo adapter.BudgetNoteRepository) *DeleteNoteUseCase {
	return &DeleteNoteUseCase{
		noteRepo: noteRepo,
	}
}

// Execute performs the note deletion.
func (uc *DeleteNoteUseCase) Execute(ctx context.Context, input DeleteNoteInput) (*DeleteNoteOutput, error) {
	if _, err := uc.noteRepo.FindByID(ctx, input.NoteID); err != nil {
		if errors.Is(err, domainerror.ErrNoteNotFound) {
			return nil, domainerror.ErrNoteNotFound
		}
		return nil, fmt.Errorf("failed to find note: %w", err)
	}

	if err := uc.noteRepo.Delete(ctx, input.NoteID); err != nil {
		return nil, fmt.Errorf("failed to delete note: %w", err)
	}

	return &DeleteNoteOutput{
		Success: true,
	}, nil
}
