// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/young-finance/internal/domain/entity"
)

// CreateGoalRequest represents the request body for goal creation.
type CreateGoalRequest struct {
	Title        string          `json:"title" binding:"required,min=1,max=200"`
	Description  string          `json:"description,omitempty"`
	TargetAmount decimal.Decimal `json:"target_amount" binding:"required,gt=0"`
	TargetDate   string          `json:"target_date,omitempty" binding:"omitempty,datetime=2006-01-02"`
}

// UpdateGoalRequest represents the request body for goal update.
type UpdateGoalRequest struct {
	Title           *string          `json:"title,omitempty" binding:"omitempty,min=1,max=200"`
	Description     *string          `json:"description,omitempty"`
	TargetAmount    *decimal.Decimal `json:"target_amount,omitempty" binding:"omitempty,gt=0"`
	TargetDate      *string          `json:"target_date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	ClearTargetDate bool             `json:"clear_target_date,omitempty"`
	Status          *string          `json:"status,omitempty" binding:"omitempty,oneof=in_progress completed cancelled"`
}

// AddAmountRequest represents the request body for adding money to a goal.
type AddAmountRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required,gt=0"`
}

// GoalResponse represents a single goal in API responses.
type GoalResponse struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	TargetAmount    float64   `json:"target_amount"`
	CurrentAmount   float64   `json:"current_amount"`
	TargetDate      *string   `json:"target_date"`
	Status          string    `json:"status"`
	PercentComplete float64   `json:"percent_complete"`
	Remaining       float64   `json:"remaining"`
	DaysRemaining   *int      `json:"days_remaining,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// AddAmountResponse is the updated goal plus whether this contribution completed it.
type AddAmountResponse struct {
	GoalResponse
	Completed bool `json:"completed"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// ToGoalResponse converts a domain Goal entity to a GoalResponse DTO.
func ToGoalResponse(g *entity.Goal, now time.Time) GoalResponse {
	return GoalResponse{
		ID:              g.ID.String(),
		Title:           g.Title,
		Description:     g.Description,
		TargetAmount:    money(g.TargetAmount),
		CurrentAmount:   money(g.CurrentAmount),
		TargetDate:      FormatDate(g.TargetDate),
		Status:          string(g.Status),
		PercentComplete: money(g.PercentComplete()),
		Remaining:       money(g.Remaining()),
		DaysRemaining:   g.DaysRemaining(now),
		CreatedAt:       g.CreatedAt,
		UpdatedAt:       g.UpdatedAt,
	}
}

// ToGoalListResponse converts a list of goals to GoalListResponse.
func ToGoalListResponse(goals []*entity.Goal, now time.Time) GoalListResponse {
	items := make([]GoalResponse, len(goals))
	for i, g := range goals {
		items[i] = ToGoalResponse(g, now)
	}
	return GoalListResponse{
		Goals: items,
	}
}
