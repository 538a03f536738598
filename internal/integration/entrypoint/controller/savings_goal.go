// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/household-budget/backend/internal/application/usecase/savingsgoal"
	domainerror "github.com/household-budget/backend/internal/domain/error"
	"github.com/household-budget/backend/internal/integration/entrypoint/dto"
)

// SavingsGoalController handles savings goal endpoints.
type SavingsGoalController struct {
	listUseCase   *savingsgoal.ListSavingsGoalsUseCase
	createUseCase *savingsgoal.CreateSavingsGoalUseCase
	updateUseCase *savingsgoal.UpdateSavingsGoalUseCase
	deleteUseCase *savingsgoal.DeleteSavingsGoalUseCase
}

// NewSavingsGoalController creates a new savings goal controller instance.
func NewSavingsGoalController(
	listUseCase *savingsgoal.ListSavingsGoalsUseCase,
	createUseCase *savingsgoal.CreateSavingsGoalUseCase,
	updateUseCase *savingsgoal.UpdateSavingsGoalUseCase,
	deleteUseCase *savingsgoal.DeleteSavingsGoalUseCase,
) *SavingsGoalController {
	return &SavingsGoalController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /savings-goals requests.
func (c *SavingsGoalController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve savings goals",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSavingsGoalListResponse(output))
}

// Create handles POST /savings-goals requests.
func (c *SavingsGoalController) Create(ctx *gin.Context) {
	var req dto.CreateSavingsGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	targetDate, err := time.Parse(dto.DateLayout, req.TargetDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid target date, expected YYYY-MM-DD",
		})
		return
	}

	input := savingsgoal.CreateSavingsGoalInput{
		Name:                req.Name,
		TargetAmount:        req.TargetAmount,
		TargetDate:          targetDate,
		CurrentSaved:        req.CurrentSaved,
		MonthlyContribution: req.MonthlyContribution,
		Notes:               req.Notes,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSavingsGoalResponse(output.Goal))
}

// Update handles PATCH /savings-goals/:id requests.
func (c *SavingsGoalController) Update(ctx *gin.Context) {
	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid savings goal ID format",
		})
		return
	}

	var req dto.UpdateSavingsGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := savingsgoal.UpdateSavingsGoalInput{
		GoalID:              goalID,
		Name:                req.Name,
		TargetAmount:        req.TargetAmount,
		CurrentSaved:        req.CurrentSaved,
		MonthlyContribution: req.MonthlyContribution,
		ClearContribution:   req.ClearContribution,
		Notes:               req.Notes,
		Active:              req.Active,
	}
	if req.TargetDate != nil {
		targetDate, err := time.Parse(dto.DateLayout, *req.TargetDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid target date, expected YYYY-MM-DD",
			})
			return
		}
		input.TargetDate = &targetDate
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSavingsGoalResponse(output.Goal))
}

// Delete handles DELETE /savings-goals/:id requests.
func (c *SavingsGoalController) Delete(ctx *gin.Context) {
	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid savings goal ID format",
		})
		return
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), savingsgoal.DeleteSavingsGoalInput{GoalID: goalID}); err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleGoalError handles savings goal errors and returns appropriate HTTP responses.
func (c *SavingsGoalController) handleGoalError(ctx *gin.Context, err error) {
	if errors.Is(err, domainerror.ErrSavingsGoalNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Savings goal not found",
		})
		return
	}
	if errors.Is(err, domainerror.ErrInvalidTargetAmount) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Target amount must be greater than zero",
		})
		return
	}

	var billErr *domainerror.BillError
	if errors.As(err, &billErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: billErr.Message,
			Code:  string(billErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
