// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/household-budget/backend/internal/application/usecase/subscription"
	"github.com/household-budget/backend/internal/domain/entity"
)

// CreateSubscriptionRequest represents the request body for subscription
// creation.
type CreateSubscriptionRequest struct {
	Name   string          `json:"name" binding:"required,min=1,max=100"`
	Amount decimal.Decimal `json:"amount"`
	// DueDate is the next renewal date in YYYY-MM-DD format.
	DueDate   string `json:"due_date" binding:"required"`
	Frequency string `json:"frequency" binding:"required,oneof=monthly quarterly semi_annual yearly"`
}

// UpdateSubscriptionRequest represents the request body for subscription
// update. Omitted fields are left unchanged.
type UpdateSubscriptionRequest struct {
	Name      *string          `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Amount    *decimal.Decimal `json:"amount,omitempty"`
	DueDate   *string          `json:"due_date,omitempty"`
	Frequency *string          `json:"frequency,omitempty" binding:"omitempty,oneof=monthly quarterly semi_annual yearly"`
	Active    *bool            `json:"active,omitempty"`
}

// SubscriptionResponse represents a single subscription in API responses.
type SubscriptionResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
	DueDate   string          `json:"due_date"`
	Frequency string          `json:"frequency"`
	Active    bool            `json:"active"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// SubscriptionListResponse represents the response for listing subscriptions.
type SubscriptionListResponse struct {
	Subscriptions []SubscriptionResponse `json:"subscriptions"`
}

// SubscriptionSummaryResponse represents the annualized subscription totals.
type SubscriptionSummaryResponse struct {
	Subscriptions  []SubscriptionResponse     `json:"subscriptions"`
	AnnualTotal    decimal.Decimal            `json:"annual_total"`
	MonthlyAverage decimal.Decimal            `json:"monthly_average"`
	ByFrequency    map[string]decimal.Decimal `json:"by_frequency"`
}

// ToSubscriptionResponse converts a domain Subscription entity to a DTO.
func ToSubscriptionResponse(sub *entity.Subscription) SubscriptionResponse {
	return SubscriptionResponse{
		ID:        sub.ID.String(),
		Name:      sub.Name,
		Amount:    sub.Amount,
		DueDate:   sub.DueDate.Format(DateLayout),
		Frequency: string(sub.Frequency),
		Active:    sub.Active,
		CreatedAt: sub.CreatedAt,
		UpdatedAt: sub.UpdatedAt,
	}
}

// ToSubscriptionListResponse converts a list of subscriptions to a DTO.
func ToSubscriptionListResponse(subs []*entity.Subscription) SubscriptionListResponse {
	responses := make([]SubscriptionResponse, len(subs))
	for i, sub := range subs {
		responses[i] = ToSubscriptionResponse(sub)
	}
	return SubscriptionListResponse{
		Subscriptions: responses,
	}
}

// ToSubscriptionSummaryResponse converts a subscription summary output to a DTO.
func ToSubscriptionSummaryResponse(output *subscription.GetSubscriptionSummaryOutput) SubscriptionSummaryResponse {
	byFrequency := make(map[string]decimal.Decimal, len(output.ByFrequency))
	for frequency, total := range output.ByFrequency {
		byFrequency[string(frequency)] = total
	}
	return SubscriptionSummaryResponse{
		Subscriptions:  ToSubscriptionListResponse(output.Subscriptions).Subscriptions,
		AnnualTotal:    output.AnnualTotal,
		MonthlyAverage: output.MonthlyAverage,
		ByFrequency:    byFrequency,
	}
}
