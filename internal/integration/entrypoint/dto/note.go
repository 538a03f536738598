// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/household-budget/backend/internal/domain/entity"
)

// CreateNoteRequest represents the request body for note creation.
type CreateNoteRequest struct {
	Title   string `json:"title" binding:"required,min=1,max=200"`
	Content string `json:"content,omitempty"`
}

// UpdateNoteRequest represents the request body for note update. Omitted
// fields are left unchanged.
type UpdateNoteRequest struct {
	Title   *string `json:"title,omitempty" binding:"omitempty,min=1,max=200"`
	Content *string `json:"content,omitempty"`
}

// NoteResponse represents a single budget note in API responses.
type NoteResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NoteListResponse represents the response for listing budget notes.
type NoteListResponse struct {
	Notes []NoteResponse `json:"notes"`
}

// ToNoteResponse converts a domain BudgetNote entity to a NoteResponse DTO.
func ToNoteResponse(note *entity.BudgetNote) NoteResponse {
	return NoteResponse{
		ID:        note.ID.String(),
		Title:     note.Title,
		Content:   note.Content,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}

// ToNoteListResponse converts a list of budget notes to a NoteListResponse.
func ToNoteListResponse(notes []*entity.BudgetNote) NoteListResponse {
	responses := make([]NoteResponse, len(notes))
	for i, note := range notes {
		responses[i] = ToNoteResponse(note)
	}
	return NoteListResponse{
		Notes: responses,
	}
}
