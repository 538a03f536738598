// Package note contains budget note use cases.
package note

import (
	"context"
	"fmt"
	"strings"

	"github.com/household-budget/backend/internal/application/adapter"
	"github.com/household-budget/backend/internal/domain/entity"
	domainerror "github.com/household-budget/backend/internal/domain/error"
)

// CreateNoteInput represents the input for note creation.
type CreateNoteInput struct {
	Title   string
	Content string
}

// CreateNoteOutput represents the output of note creation.
type CreateNoteOutput struct {
	Note *entity.BudgetNote
}

// CreateNoteUseCase handles note creation logic.
type CreateNoteUseCase struct {
	noteRepo adapter.BudgetNoteRepository
}

// NewCreateNoteUseCase creates a new CreateNoteUseCase instance.
func NewCreateNoteUseCase(noteRepo adapter.BudgetNoteRepository) *CreateNoteUseCase {
	return &CreateNoteUseCase{
		noteRepo: noteRepo,
	}
}

// Execute performs the note creation.
func (uc *CreateNoteUseCase) Execute(ctx context.Context, input CreateNoteInput) (*CreateNoteOutput, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, domainerror.ErrEmptyNoteTitle
	}

	note := entity.NewBudgetNote(input.Title, input.Content)

	if err := uc.noteRepo.Create(ctx, note); err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	return &CreateNoteOutput{
		Note: note,
	}, nil
}
