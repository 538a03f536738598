// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/household-budget/backend/internal/application/usecase/bill"
	"github.com/household-budget/backend/internal/domain/entity"
	domainerror "github.com/household-budget/backend/internal/domain/error"
	"github.com/household-budget/backend/internal/integration/entrypoint/dto"
)

// BillController handles bill endpoints.
type BillController struct {
	listUseCase   *bill.ListBillsUseCase
	createUseCase *bill.CreateBillUseCase
	updateUseCase *bill.UpdateBillUseCase
	deleteUseCase *bill.DeleteBillUseCase
}

// NewBillController creates a new bill controller instance.
func NewBillController(
	listUseCase *bill.ListBillsUseCase,
	createUseCase *bill.CreateBillUseCase,
	updateUseCase *bill.UpdateBillUseCase,
	deleteUseCase *bill.DeleteBillUseCase,
) *BillController {
	return &BillController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /bills requests.
func (c *BillController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve bills",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBillListResponse(output.Bills))
}

// Create handles POST /bills requests.
func (c *BillController) Create(ctx *gin.Context) {
	var req dto.CreateBillRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingBillFields),
		})
		return
	}

	input := bill.CreateBillInput{
		Name:          req.Name,
		DefaultAmount: req.DefaultAmount,
		DueDate:       req.DueDate,
		Category:      entity.BillCategory(req.Category),
		PaidBy:        entity.Person(req.PaidBy),
		PaymentMethod: req.PaymentMethod,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBillError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBillResponse(output.Bill))
}

// Update handles PATCH /bills/:id requests.
func (c *BillController) Update(ctx *gin.Context) {
	billID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid bill ID format",
		})
		return
	}

	var req dto.UpdateBillRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := bill.UpdateBillInput{
		BillID:        billID,
		Name:          req.Name,
		DefaultAmount: req.DefaultAmount,
		ClearAmount:   req.ClearAmount,
		DueDate:       req.DueDate,
		PaymentMethod: req.PaymentMethod,
		Active:        req.Active,
	}
	if req.Category != nil {
		category := entity.BillCategory(*req.Category)
		input.Category = &category
	}
	if req.PaidBy != nil {
		paidBy := entity.Person(*req.PaidBy)
		input.PaidBy = &paidBy
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBillError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBillResponse(output.Bill))
}

// Delete handles DELETE /bills/:id requests.
func (c *BillController) Delete(ctx *gin.Context) {
	billID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid bill ID format",
		})
		return
	}

	input := bill.DeleteBillInput{
		BillID: billID,
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleBillError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleBillError handles bill errors and returns appropriate HTTP responses.
func (c *BillController) handleBillError(ctx *gin.Context, err error) {
	var billErr *domainerror.BillError
	if errors.As(err, &billErr) {
		statusCode := c.getStatusCodeForBillError(billErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: billErr.Message,
			Code:  string(billErr.Code),
		})
		return
	}

	if errors.Is(err, domainerror.ErrBillNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Bill not found",
			Code:  string(domainerror.ErrCodeBillNotFound),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForBillError maps bill error codes to HTTP status codes.
func (c *BillController) getStatusCodeForBillError(code domainerror.BillErrorCode) int {
	switch code {
	case domainerror.ErrCodeBillNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidDueDate,
		domainerror.ErrCodeInvalidBillCategory,
		domainerror.ErrCodeInvalidPerson,
		domainerror.ErrCodeNegativeAmount,
		domainerror.ErrCodeMissingBillFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
