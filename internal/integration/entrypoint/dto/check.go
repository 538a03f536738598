// Package dto defines data transfer objects for API requests and responses.
package dto

import "github.com/household-budget/backend/internal/domain/entity"

// MarkCheckRequest represents the request body for marking a bill paid.
type MarkCheckRequest struct {
	BillKey string `json:"bill_key" binding:"required"`
}

// CheckResponse represents a single paid check in API responses.
type CheckResponse struct {
	Year    int    `json:"year"`
	Month   int    `json:"month"`
	Period  int    `json:"period"`
	BillKey string `json:"bill_key"`
}

// CheckListResponse represents the response for listing paid checks.
type CheckListResponse struct {
	Checks []CheckResponse `json:"checks"`
}

// ToCheckResponse converts a domain PaidCheck entity to a CheckResponse DTO.
func ToCheckResponse(check *entity.PaidCheck) CheckResponse {
	return CheckResponse{
		Year:    check.Year,
		Month:   check.Month,
		Period:  check.Period,
		BillKey: check.BillKey,
	}
}

// ToCheckListResponse converts a list of paid checks to a CheckListResponse.
func ToCheckListResponse(checks []*entity.PaidCheck) CheckListResponse {
	responses := make([]CheckResponse, len(checks))
	for i, check := range checks {
		responses[i] = ToCheckResponse(check)
	}
	return CheckListResponse{
		Checks: responses,
	}
}
