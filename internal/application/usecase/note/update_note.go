// Package note contains budget note use cases.
package note

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/household-budget/backend/internal/application/adapter"
	"github.com/household-budget/backend/internal/domain/entity"
	domainerror "github.com/household-budget/backend/internal/domain/error"
)

// UpdateNoteInput represents the input for note update. Nil fields are left
// unchanged.
type UpdateNoteInput struct {
	NoteID  uuid.UUID
	Title   *string
	Content *string
}

// UpdateNoteOutput represents the output of note update.
type UpdateNoteOutput struct {
	Note *entity.BudgetNote
}

// UpdateNoteUseCase handles note update logic.
type UpdateNoteUseCase struct {
	noteRepo adapter.BudgetNoteRepository
}

// NewUpdateNoteUseCase creates a new UpdateNoteUseCase instance.
func NewUpdateNoteUseCase(noteRepo adapter.BudgetNoteRepository) *UpdateNoteUseCase {
	return &UpdateNoteUseCase{
		noteRepo: noteRepo,
	}
}

// Execute performs the note update.
func (uc *UpdateNoteUseCase) Execute(ctx context.Context, input UpdateNoteInput) (*UpdateNoteOutput, error) {
	note, err := uc.noteRepo.FindByID(ctx, input.NoteID)
	if err != nil {
		if errors.Is(err, domainerror.ErrNoteNotFound) {
			return nil, domainerror.ErrNoteNotFound
		}
		return nil, fmt.Errorf("failed to find note: %w", err)
	}

	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, domainerror.ErrEmptyNoteTitle
		}
		note.Title = *input.Title
	}
	if input.Content != nil {
		note.Content = *input.Content
	}

	note.UpdatedAt = time.Now().UTC()

	if err := uc.noteRepo.Update(ctx, note); err != nil {
		return nil, fmt.Errorf("failed to update note: %w", err)
	}

	return &UpdateNoteOutput{
		Note: note,
	}, nil
}
