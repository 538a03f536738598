// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/household-budget/backend/internal/application/usecase/debt"
	"github.com/household-budget/backend/internal/domain/entity"
	domainerror "github.com/household-budget/backend/internal/domain/error"
	"github.com/household-budget/backend/internal/integration/entrypoint/dto"
)

// DebtController handles credit card and loan endpoints.
type DebtController struct {
	summaryUseCase      *debt.GetDebtSummaryUseCase
	createCardUseCase   *debt.CreateCreditCardUseCase
	updateCardUseCase   *debt.UpdateCreditCardUseCase
	deleteCardUseCase   *debt.DeleteCreditCardUseCase
	createLoanUseCase   *debt.CreateLoanUseCase
	updateLoanUseCase   *debt.UpdateLoanUseCase
	deleteLoanUseCase   *debt.DeleteLoanUseCase
}

// NewDebtController creates a new debt controller instance.
func NewDebtController(
	summaryUseCase *debt.GetDebtSummaryUseCase,
	createCardUseCase *debt.CreateCreditCardUseCase,
	updateCardUseCase *debt.UpdateCreditCardUseCase,
	deleteCardUseCase *debt.DeleteCreditCardUseCase,
	createLoanUseCase *debt.CreateLoanUseCase,
	updateLoanUseCase *debt.UpdateLoanUseCase,
	deleteLoanUseCase *debt.DeleteLoanUseCase,
) *DebtController {
	return &DebtController{
		summaryUseCase:    summaryUseCase,
		createCardUseCase: createCardUseCase,
		updateCardUseCase: updateCardUseCase,
		deleteCardUseCase: deleteCardUseCase,
		createLoanUseCase: createLoanUseCase,
		updateLoanUseCase: updateLoanUseCase,
		deleteLoanUseCase: deleteLoanUseCase,
	}
}

// Summary handles GET /debts requests.
func (c *DebtController) Summary(ctx *gin.Context) {
	output, err := c.summaryUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve debt summary",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDebtSummaryResponse(output))
}

// CreateCard handles POST /debts/cards requests.
func (c *DebtController) CreateCard(ctx *gin.Context) {
	var req dto.CreateCreditCardRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingBillFields),
		})
		return
	}

	input := debt.CreateCreditCardInput{
		Name:        req.Name,
		Balance:     req.Balance,
		CreditLimit: req.CreditLimit,
		MinPayment:  req.MinPayment,
		APR:         req.APR,
		DueDate:     req.DueDate,
		OwnedBy:     entity.Person(req.OwnedBy),
	}

	output, err := c.createCardUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleDebtError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCreditCardResponse(output.Card))
}

// UpdateCard handles PATCH /debts/cards/:id requests.
func (c *DebtController) UpdateCard(ctx *gin.Context) {
	cardID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid credit card ID format",
		})
		return
	}

	var req dto.UpdateCreditCardRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := debt.UpdateCreditCardInput{
		CardID:           cardID,
		Name:             req.Name,
		Balance:          req.Balance,
		CreditLimit:      req.CreditLimit,
		ClearCreditLimit: req.ClearCreditLimit,
		MinPayment:       req.MinPayment,
		APR:              req.APR,
		DueDate:          req.DueDate,
		Active:           req.Active,
	}
	if req.OwnedBy != nil {
		ownedBy := entity.Person(*req.OwnedBy)
		input.OwnedBy = &ownedBy
	}

	output, err := c.updateCardUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleDebtError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCreditCardResponse(output.Card))
}

// DeleteCard handles DELETE /debts/cards/:id requests.
func (c *DebtController) DeleteCard(ctx *gin.Context) {
	cardID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid credit card ID format",
		})
		return
	}

	if _, err := c.deleteCardUseCase.Execute(ctx.Request.Context(), debt.DeleteCreditCardInput{CardID: cardID}); err != nil {
		c.handleDebtError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// CreateLoan handles POST /debts/loans requests.
func (c *DebtController) CreateLoan(ctx *gin.Context) {
	var req dto.CreateLoanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingBillFields),
		})
		return
	}

	input := debt.CreateLoanInput{
		Name:           req.Name,
		Balance:        req.Balance,
		MonthlyPayment: req.MonthlyPayment,
		APR:            req.APR,
		DueDate:        req.DueDate,
	}

	output, err := c.createLoanUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleDebtError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToLoanResponse(output.Loan))
}

// UpdateLoan handles PATCH /debts/loans/:id requests.
func (c *DebtController) UpdateLoan(ctx *gin.Context) {
	loanID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid loan ID format",
		})
		return
	}

	var req dto.UpdateLoanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := debt.UpdateLoanInput{
		LoanID:         loanID,
		Name:           req.Name,
		Balance:        req.Balance,
		MonthlyPayment: req.MonthlyPayment,
		APR:            req.APR,
		DueDate:        req.DueDate,
		Active:         req.Active,
	}

	output, err := c.updateLoanUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleDebtError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLoanResponse(output.Loan))
}

// DeleteLoan handles DELETE /debts/loans/:id requests.
func (c *DebtController) DeleteLoan(ctx *gin.Context) {
	loanID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid loan ID format",
		})
		return
	}

	if _, err := c.deleteLoanUseCase.Execute(ctx.Request.Context(), debt.DeleteLoanInput{LoanID: loanID}); err != nil {
		c.handleDebtError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleDebtError handles debt errors and returns appropriate HTTP responses.
func (c *DebtController) handleDebtError(ctx *gin.Context, err error) {
	if errors.Is(err, domainerror.ErrCreditCardNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Credit card not found",
		})
		return
	}
	if errors.Is(err, domainerror.ErrLoanNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Loan not found",
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
