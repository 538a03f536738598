// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/household-budget/backend/internal/application/usecase/monthly"
	domainerror "github.com/household-budget/backend/internal/domain/error"
	"github.com/household-budget/backend/internal/integration/entrypoint/dto"
)

// MonthlyController handles month plan endpoints.
type MonthlyController struct {
	planUseCase *monthly.GetMonthPlanUseCase
}

// NewMonthlyController creates a new monthly controller instance.
func NewMonthlyController(planUseCase *monthly.GetMonthPlanUseCase) *MonthlyController {
	return &MonthlyController{
		planUseCase: planUseCase,
	}
}

// Plan handles GET /months/:year/:month requests.
func (c *MonthlyController) Plan(ctx *gin.Context) {
	year, errYear := strconv.Atoi(ctx.Param("year"))
	month, errMonth := strconv.Atoi(ctx.Param("month"))
	if errYear != nil || errMonth != nil || month < 1 || month > 12 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Year and month must be numeric, month between 1 and 12",
		})
		return
	}

	input := monthly.GetMonthPlanInput{
		Year:  year,
		Month: time.Month(month),
	}

	output, err := c.planUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		if errors.Is(err, domainerror.ErrCheckStoreUnavailable) {
			ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
				Error: "Paid-check storage is unavailable",
				Code:  string(domainerror.ErrCodeCheckStoreUnavailable),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to build month plan",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthPlanResponse(output))
}
