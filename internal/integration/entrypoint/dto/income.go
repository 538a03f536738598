// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/household-budget/backend/internal/domain/entity"
)

// UpdateIncomeSourceRequest represents the request body for income source
// update. Omitted fields are left unchanged.
type UpdateIncomeSourceRequest struct {
	Amount *decimal.Decimal `json:"amount,omitempty"`
	// NextPayDate is a calendar date in YYYY-MM-DD format.
	NextPayDate  *string `json:"next_pay_date,omitempty"`
	ClearPayDate bool    `json:"clear_pay_date,omitempty"`
	PayDayOfWeek *string `json:"pay_day_of_week,omitempty"`
}

// IncomeSourceResponse represents a single income source in API responses.
type IncomeSourceResponse struct {
	ID           string          `json:"id"`
	Person       string          `json:"person"`
	Amount       decimal.Decimal `json:"amount"`
	NextPayDate  *string         `json:"next_pay_date"`
	PayDayOfWeek string          `json:"pay_day_of_week"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// IncomeSourceListResponse represents the response for listing income sources.
type IncomeSourceListResponse struct {
	Sources []IncomeSourceResponse `json:"sources"`
}

// ToIncomeSourceResponse converts a domain IncomeSource entity to a DTO.
func ToIncomeSourceResponse(source *entity.IncomeSource) IncomeSourceResponse {
	var payDate *string
	if source.NextPayDate != nil {
		formatted := source.NextPayDate.Format(DateLayout)
		payDate = &formatted
	}
	return IncomeSourceResponse{
		ID:           source.ID.String(),
		Person:       string(source.Person),
		Amount:       source.Amount,
		NextPayDate:  payDate,
		PayDayOfWeek: source.PayDayOfWeek,
		CreatedAt:    source.CreatedAt,
		UpdatedAt:    source.UpdatedAt,
	}
}

// ToIncomeSourceListResponse converts a list of income sources to a DTO.
func ToIncomeSourceListResponse(sources []*entity.IncomeSource) IncomeSourceListResponse {
	responses := make([]IncomeSourceResponse, len(sources))
	for i, source := range sources {
		responses[i] = ToIncomeSourceResponse(source)
	}
	return IncomeSourceListResponse{
		Sources: responses,
	}
}
