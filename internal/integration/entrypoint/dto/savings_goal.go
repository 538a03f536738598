// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/household-budget/backend/internal/application/usecase/savingsgoal"
	"github.com/household-budget/backend/internal/domain/entity"
)

// CreateSavingsGoalRequest represents the request body for savings goal
// creation.
type CreateSavingsGoalRequest struct {
	Name         string          `json:"name" binding:"required,min=1,max=100"`
	TargetAmount decimal.Decimal `json:"target_amount"`
	// TargetDate is a calendar date in YYYY-MM-DD format.
	TargetDate          string           `json:"target_date" binding:"required"`
	CurrentSaved        decimal.Decimal  `json:"current_saved"`
	MonthlyContribution *decimal.Decimal `json:"monthly_contribution,omitempty"`
	Notes               string           `json:"notes,omitempty"`
}

// UpdateSavingsGoalRequest represents the request body for savings goal
// update. Omitted fields are left unchanged; clear_contribution removes
// the fixed monthly contribution.
type UpdateSavingsGoalRequest struct {
	Name                *string          `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	TargetAmount        *decimal.Decimal `json:"target_amount,omitempty"`
	TargetDate          *string          `json:"target_date,omitempty"`
	CurrentSaved        *decimal.Decimal `json:"current_saved,omitempty"`
	MonthlyContribution *decimal.Decimal `json:"monthly_contribution,omitempty"`
	ClearContribution   bool             `json:"clear_contribution,omitempty"`
	Notes               *string          `json:"notes,omitempty"`
	Active              *bool            `json:"active,omitempty"`
}

// SavingsGoalResponse represents a single savings goal in API responses.
type SavingsGoalResponse struct {
	ID                  string           `json:"id"`
	Name                string           `json:"name"`
	TargetAmount        decimal.Decimal  `json:"target_amount"`
	TargetDate          string           `json:"target_date"`
	CurrentSaved        decimal.Decimal  `json:"current_saved"`
	MonthlyContribution *decimal.Decimal `json:"monthly_contribution"`
	Notes               string           `json:"notes"`
	Remaining           decimal.Decimal  `json:"remaining"`
	// Progress is saved over target as a percentage.
	Progress  decimal.Decimal `json:"progress"`
	Active    bool            `json:"active"`
	Completed bool            `json:"completed"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// SavingsGoalListResponse represents the response for listing savings goals.
type SavingsGoalListResponse struct {
	Goals       []SavingsGoalResponse `json:"goals"`
	TotalTarget decimal.Decimal       `json:"total_target"`
	TotalSaved  decimal.Decimal       `json:"total_saved"`
}

// ToSavingsGoalResponse converts a domain SavingsGoal entity to a DTO.
func ToSavingsGoalResponse(goal *entity.SavingsGoal) SavingsGoalResponse {
	return SavingsGoalResponse{
		ID:                  goal.ID.String(),
		Name:                goal.Name,
		TargetAmount:        goal.TargetAmount,
		TargetDate:          goal.TargetDate.Format(DateLayout),
		CurrentSaved:        goal.CurrentSaved,
		MonthlyContribution: goal.MonthlyContribution,
		Notes:               goal.Notes,
		Active:              goal.Active,
		Completed:           goal.Completed,
		CreatedAt:           goal.CreatedAt,
		UpdatedAt:           goal.UpdatedAt,
	}
}

// ToSavingsGoalListResponse converts a goal listing output to a DTO.
func ToSavingsGoalListResponse(output *savingsgoal.ListSavingsGoalsOutput) SavingsGoalListResponse {
	goals := make([]SavingsGoalResponse, len(output.Goals))
	for i, summary := range output.Goals {
		goal := ToSavingsGoalResponse(summary.Goal)
		goal.Remaining = summary.Remaining
		goal.Progress = summary.Progress
		goals[i] = goal
	}
	return SavingsGoalListResponse{
		Goals:       goals,
		TotalTarget: output.TotalTarget,
		TotalSaved:  output.TotalSaved,
	}
}
