// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/young-finance/internal/domain/entity"
)

// CreateBudgetRequest represents the request body for budget creation.
type CreateBudgetRequest struct {
	Name        string           `json:"name,omitempty" binding:"omitempty,max=100"`
	CategoryID  string           `json:"category_id" binding:"required,uuid"`
	LimitAmount *decimal.Decimal `json:"limit_amount" binding:"required,gte=0"`
	Month       int              `json:"month" binding:"required,min=1,max=12"`
	Year        int              `json:"year" binding:"required,min=1900,max=9999"`
}

// UpdateBudgetRequest represents the request body for budget update.
type UpdateBudgetRequest struct {
	Name        *string          `json:"name,omitempty" binding:"omitempty,max=100"`
	CategoryID  *string          `json:"category_id,omitempty" binding:"omitempty,uuid"`
	LimitAmount *decimal.Decimal `json:"limit_amount,omitempty" binding:"omitempty,gte=0"`
	Month       *int             `json:"month,omitempty" binding:"omitempty,min=1,max=12"`
	Year        *int             `json:"year,omitempty" binding:"omitempty,min=1900,max=9999"`
}

// BudgetResponse represents a single budget with its spending in API responses.
type BudgetResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	CategoryID   string    `json:"category_id"`
	CategoryName string    `json:"category_name"`
	LimitAmount  float64   `json:"limit_amount"`
	Month        int       `json:"month"`
	Year         int       `json:"year"`
	Spent        float64   `json:"spent"`
	PercentUsed  float64   `json:"percent_used"`
	Remaining    float64   `json:"remaining"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BudgetListResponse represents the response for listing budgets.
type BudgetListResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}

// ToBudgetResponse converts a budget with spending to a BudgetResponse DTO.
func ToBudgetResponse(b *entity.BudgetWithSpending) BudgetResponse {
	response := BudgetResponse{
		ID:          b.Budget.ID.String(),
		Name:        b.Budget.Name,
		CategoryID:  b.Budget.CategoryID.String(),
		LimitAmount: money(b.Budget.LimitAmount),
		Month:       b.Budget.Month,
		Year:        b.Budget.Year,
		Spent:       money(b.Spent),
		PercentUsed: money(b.PercentUsed()),
		Remaining:   money(b.Remaining()),
		CreatedAt:   b.Budget.CreatedAt,
		UpdatedAt:   b.Budget.UpdatedAt,
	}

	if b.Category != nil {
		response.CategoryName = b.Category.Name
	}

	return response
}

// ToBudgetListResponse converts a list of budgets to BudgetListResponse.
func ToBudgetListResponse(budgets []*entity.BudgetWithSpending) BudgetListResponse {
	items := make([]BudgetResponse, len(budgets))
	for i, b := range budgets {
		items[i] = ToBudgetResponse(b)
	}
	return BudgetListResponse{
		Budgets: items,
	}
}
