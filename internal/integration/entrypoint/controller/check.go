// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/household-budget/backend/internal/application/usecase/check"
	domainerror "github.com/household-budget/backend/internal/domain/error"
	"github.com/household-budget/backend/internal/integration/entrypoint/dto"
)

// CheckController handles paid-check endpoints.
type CheckController struct {
	listUseCase   *check.ListChecksUseCase
	markUseCase   *check.MarkCheckUseCase
	unmarkUseCase *check.UnmarkCheckUseCase
}

// NewCheckController creates a new check controller instance.
func NewCheckController(
	listUseCase *check.ListChecksUseCase,
	markUseCase *check.MarkCheckUseCase,
	unmarkUseCase *check.UnmarkCheckUseCase,
) *CheckController {
	return &CheckController{
		listUseCase:   listUseCase,
		markUseCase:   markUseCase,
		unmarkUseCase: unmarkUseCase,
	}
}

// List handles GET /months/:year/:month/periods/:period/checks requests.
func (c *CheckController) List(ctx *gin.Context) {
	year, month, period, ok := c.parsePeriodParams(ctx)
	if !ok {
		return
	}

	input := check.ListChecksInput{
		Year:   year,
		Month:  month,
		Period: period,
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCheckError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCheckListResponse(output.Checks))
}

// Mark handles POST /months/:year/:month/periods/:period/checks requests.
func (c *CheckController) Mark(ctx *gin.Context) {
	year, month, period, ok := c.parsePeriodParams(ctx)
	if !ok {
		return
	}

	var req dto.MarkCheckRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := check.MarkCheckInput{
		Year:    year,
		Month:   month,
		Period:  period,
		BillKey: req.BillKey,
	}

	output, err := c.markUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCheckError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCheckResponse(output.Check))
}

// Unmark handles DELETE /months/:year/:month/periods/:period/checks/:billKey requests.
func (c *CheckController) Unmark(ctx *gin.Context) {
	year, month, period, ok := c.parsePeriodParams(ctx)
	if !ok {
		return
	}

	input := check.UnmarkCheckInput{
		Year:    year,
		Month:   month,
		Period:  period,
		BillKey: ctx.Param("billKey"),
	}

	if _, err := c.unmarkUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleCheckError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// parsePeriodParams extracts year, month and period from the URL. It writes
// the error response itself when a param is not numeric.
func (c *CheckController) parsePeriodParams(ctx *gin.Context) (year, month, period int, ok bool) {
	year, errYear := strconv.Atoi(ctx.Param("year"))
	month, errMonth := strconv.Atoi(ctx.Param("month"))
	period, errPeriod := strconv.Atoi(ctx.Param("period"))
	if errYear != nil || errMonth != nil || errPeriod != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Year, month and period must be numeric",
			Code:  string(domainerror.ErrCodeInvalidCheckKey),
		})
		return 0, 0, 0, false
	}
	return year, month, period, true
}

// handleCheckError handles paid-check errors and returns appropriate HTTP responses.
func (c *CheckController) handleCheckError(ctx *gin.Context, err error) {
	if errors.Is(err, domainerror.ErrInvalidCheckKey) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid paid-check key",
			Code:  string(domainerror.ErrCodeInvalidCheckKey),
		})
		return
	}
	if errors.Is(err, domainerror.ErrCheckStoreUnavailable) {
		ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
			Error: "Paid-check storage is unavailable",
			Code:  string(domainerror.ErrCodeCheckStoreUnavailable),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
