// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/household-budget/backend/internal/application/usecase/income"
	domainerror "github.com/household-budget/backend/internal/domain/error"
	"github.com/household-budget/backend/internal/integration/entrypoint/dto"
)

// IncomeController handles income source endpoints.
type IncomeController struct {
	listUseCase   *income.ListIncomeSourcesUseCase
	updateUseCase *income.UpdateIncomeSourceUseCase
}

// NewIncomeController creates a new income controller instance.
func NewIncomeController(
	listUseCase *income.ListIncomeSourcesUseCase,
	updateUseCase *income.UpdateIncomeSourceUseCase,
) *IncomeController {
	return &IncomeController{
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
	}
}

// List handles GET /income-sources requests.
func (c *IncomeController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve income sources",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToIncomeSourceListResponse(output.Sources))
}

// Update handles PATCH /income-sources/:id requests.
func (c *IncomeController) Update(ctx *gin.Context) {
	sourceID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid income source ID format",
		})
		return
	}

	var req dto.UpdateIncomeSourceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := income.UpdateIncomeSourceInput{
		SourceID:     sourceID,
		Amount:       req.Amount,
		ClearPayDate: req.ClearPayDate,
		PayDayOfWeek: req.PayDayOfWeek,
	}

	if req.NextPayDate != nil {
		payDate, err := time.Parse(dto.DateLayout, *req.NextPayDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid next pay date, expected YYYY-MM-DD",
			})
			return
		}
		input.NextPayDate = &payDate
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleIncomeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToIncomeSourceResponse(output.Source))
}

// handleIncomeError handles income source errors and returns appropriate HTTP responses.
func (c *IncomeController) handleIncomeError(ctx *gin.Context, err error) {
	if errors.Is(err, domainerror.ErrIncomeSourceNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Income source not found",
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
