// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/household-budget/backend/internal/domain/entity"
)

// CreateBillRequest represents the request body for bill creation.
type CreateBillRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
	// DefaultAmount is omitted for bills whose amount varies month to month.
	DefaultAmount *decimal.Decimal `json:"default_amount,omitempty"`
	DueDate       int              `json:"due_date" binding:"required,min=1,max=31"`
	Category      string           `json:"category" binding:"required"`
	PaidBy        string           `json:"paid_by" binding:"required"`
	PaymentMethod string           `json:"payment_method,omitempty"`
}

// UpdateBillRequest represents the request body for bill update. Omitted
// fields are left unchanged; clear_amount switches the bill back to varying.
type UpdateBillRequest struct {
	Name          *string          `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	DefaultAmount *decimal.Decimal `json:"default_amount,omitempty"`
	ClearAmount   bool             `json:"clear_amount,omitempty"`
	DueDate       *int             `json:"due_date,omitempty" binding:"omitempty,min=1,max=31"`
	Category      *string          `json:"category,omitempty"`
	PaidBy        *string          `json:"paid_by,omitempty"`
	PaymentMethod *string          `json:"payment_method,omitempty"`
	Active        *bool            `json:"active,omitempty"`
}

// BillResponse represents a single bill in API responses.
type BillResponse struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	DefaultAmount *decimal.Decimal `json:"default_amount"`
	DueDate       int              `json:"due_date"`
	Category      string           `json:"category"`
	PaidBy        string           `json:"paid_by"`
	PaymentMethod string           `json:"payment_method"`
	Varies        bool             `json:"varies"`
	Active        bool             `json:"active"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// BillListResponse represents the response for listing bills.
type BillListResponse struct {
	Bills []BillResponse `json:"bills"`
}

// ToBillResponse converts a domain Bill entity to a BillResponse DTO.
func ToBillResponse(bill *entity.Bill) BillResponse {
	return BillResponse{
		ID:            bill.ID.String(),
		Name:          bill.Name,
		DefaultAmount: bill.DefaultAmount,
		DueDate:       bill.DueDate,
		Category:      string(bill.Category),
		PaidBy:        string(bill.PaidBy),
		PaymentMethod: bill.PaymentMethod,
		Varies:        bill.Varies,
		Active:        bill.Active,
		CreatedAt:     bill.CreatedAt,
		UpdatedAt:     bill.UpdatedAt,
	}
}

// ToBillListResponse converts a list of bills to a BillListResponse.
func ToBillListResponse(bills []*entity.Bill) BillListResponse {
	responses := make([]BillResponse, len(bills))
	for i, bill := range bills {
		responses[i] = ToBillResponse(bill)
	}
	return BillListResponse{
		Bills: responses,
	}
}
