// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/household-budget/backend/internal/application/usecase/export"
	"github.com/household-budget/backend/internal/integration/entrypoint/dto"
)

// ExportController handles data export endpoints.
type ExportController struct {
	snapshotUseCase *export.ExportSnapshotUseCase
}

// NewExportController creates a new export controller instance.
func NewExportController(snapshotUseCase *export.ExportSnapshotUseCase) *ExportController {
	return &ExportController{
		snapshotUseCase: snapshotUseCase,
	}
}

// Snapshot handles GET /export requests. The response downloads as a JSON
// file so the household keeps an offline backup.
func (c *ExportController) Snapshot(ctx *gin.Context) {
	output, err := c.snapshotUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to export data",
		})
		return
	}

	filename := fmt.Sprintf("budget-export-%s.json", output.Snapshot.ExportedAt.Format("2006-01-02"))
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.JSON(http.StatusOK, output.Snapshot)
}
