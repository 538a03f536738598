// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/household-budget/backend/internal/application/usecase/note"
	domainerror "github.com/household-budget/backend/internal/domain/error"
	"github.com/household-budget/backend/internal/integration/entrypoint/dto"
)

// NoteController handles budget note endpoints.
type NoteController struct {
	listUseCase   *note.ListNotesUseCase
	createUseCase *note.CreateNoteUseCase
	updateUseCase *note.UpdateNoteUseCase
	deleteUseCase *note.DeleteNoteUseCase
}

// NewNoteController creates a new note controller instance.
func NewNoteController(
	listUseCase *note.ListNotesUseCase,
	createUseCase *note.CreateNoteUseCase,
	updateUseCase *note.UpdateNoteUseCase,
	deleteUseCase *note.DeleteNoteUseCase,
) *NoteController {
	return &NoteController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /notes requests.
func (c *NoteController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve notes",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToNoteListResponse(output.Notes))
}

// Create handles POST /notes requests.
func (c *NoteController) Create(ctx *gin.Context) {
	var req dto.CreateNoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := note.CreateNoteInput{
		Title:   req.Title,
		Content: req.Content,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleNoteError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToNoteResponse(output.Note))
}

// Update handles PATCH /notes/:id requests.
func (c *NoteController) Update(ctx *gin.Context) {
	noteID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid note ID format",
		})
		return
	}

	var req dto.UpdateNoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := note.UpdateNoteInput{
		NoteID:  noteID,
		Title:   req.Title,
		Content: req.Content,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleNoteError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToNoteResponse(output.Note))
}

// Delete handles DELETE /notes/:id requests.
func (c *NoteController) Delete(ctx *gin.Context) {
	noteID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid note ID format",
		})
		return
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), note.DeleteNoteInput{NoteID: noteID}); err != nil {
		c.handleNoteError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleNoteError handles note errors and returns appropriate HTTP responses.
func (c *NoteController) handleNoteError(ctx *gin.Context, err error) {
	if errors.Is(err, domainerror.ErrNoteNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Note not found",
		})
		return
	}
	if errors.Is(err, domainerror.ErrEmptyNoteTitle) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Note title must not be empty",
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
