// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/finance-tracker/young-finance/internal/application/usecase/analytics"
)

// CategoryTotalResponse represents the expense total of one category.
type CategoryTotalResponse struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

// MonthlySummaryResponse represents the monthly summary.
type MonthlySummaryResponse struct {
	Month              int                     `json:"month"`
	Year               int                     `json:"year"`
	TotalIncome        float64                 `json:"total_income"`
	TotalExpense       float64                 `json:"total_expense"`
	Balance            float64                 `json:"balance"`
	ExpensesByCategory []CategoryTotalResponse `json:"expenses_by_category"`
}

// TrendPointResponse represents one month of the trend series.
type TrendPointResponse struct {
	Month   int     `json:"month"`
	Year    int     `json:"year"`
	Label   string  `json:"label"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Balance float64 `json:"balance"`
}

// TrendsResponse represents the trend series, oldest month first.
type TrendsResponse struct {
	Trends []TrendPointResponse `json:"trends"`
}

// CurrentMonthResponse represents the current month block of the dashboard.
type CurrentMonthResponse struct {
	Month           int     `json:"month"`
	Year            int     `json:"year"`
	Income          float64 `json:"income"`
	Expense         float64 `json:"expense"`
	Balance         float64 `json:"balance"`
	BudgetTotal     float64 `json:"budget_total"`
	BudgetUsed      float64 `json:"budget_used"`
	BudgetRemaining float64 `json:"budget_remaining"`
}

// GoalStatsResponse represents the active goals block of the dashboard.
type GoalStatsResponse struct {
	Count          int     `json:"count"`
	TotalTarget    float64 `json:"total_target"`
	TotalSaved     float64 `json:"total_saved"`
	AveragePercent float64 `json:"average_percent"`
}

// TopCategoryResponse represents a frequently used category.
type TopCategoryResponse struct {
	Category         string  `json:"category"`
	TransactionCount int     `json:"transaction_count"`
	Total            float64 `json:"total"`
}

// DashboardResponse represents the dashboard snapshot.
type DashboardResponse struct {
	CurrentMonth  CurrentMonthResponse  `json:"current_month"`
	Goals         GoalStatsResponse     `json:"goals"`
	TopCategories []TopCategoryResponse `json:"top_categories"`
}

// ToMonthlySummaryResponse converts the summary output to its DTO.
func ToMonthlySummaryResponse(out *analytics.GetMonthlySummaryOutput) MonthlySummaryResponse {
	byCategory := make([]CategoryTotalResponse, len(out.ExpensesByCategory))
	for i, c := range out.ExpensesByCategory {
		byCategory[i] = CategoryTotalResponse{
			Category: c.CategoryName,
			Total:    money(c.Total),
		}
	}

	return MonthlySummaryResponse{
		Month:              int(out.Period.Month),
		Year:               out.Period.Year,
		TotalIncome:        money(out.TotalIncome),
		TotalExpense:       money(out.TotalExpense),
		Balance:            money(out.Balance),
		ExpensesByCategory: byCategory,
	}
}

// ToTrendsResponse converts the trends output to its DTO.
func ToTrendsResponse(out *analytics.GetTrendsOutput) TrendsResponse {
	points := make([]TrendPointResponse, len(out.Trends))
	for i, p := range out.Trends {
		points[i] = TrendPointResponse{
			Month:   int(p.Period.Month),
			Year:    p.Period.Year,
			Label:   p.Label,
			Income:  money(p.Income),
			Expense: money(p.Expense),
			Balance: money(p.Balance),
		}
	}
	return TrendsResponse{
		Trends: points,
	}
}

// ToDashboardResponse converts the dashboard output to its DTO.
func ToDashboardResponse(out *analytics.GetDashboardOutput) DashboardResponse {
	top := make([]TopCategoryResponse, len(out.TopCategories))
	for i, c := range out.TopCategories {
		top[i] = TopCategoryResponse{
			Category:         c.CategoryName,
			TransactionCount: c.TransactionCount,
			Total:            money(c.Total),
		}
	}

	month := out.CurrentMonth
	return DashboardResponse{
		CurrentMonth: CurrentMonthResponse{
			Month:           int(month.Period.Month),
			Year:            month.Period.Year,
			Income:          money(month.Income),
			Expense:         money(month.Expense),
			Balance:         money(month.Balance),
			BudgetTotal:     money(month.BudgetTotal),
			BudgetUsed:      money(month.BudgetUsed),
			BudgetRemaining: money(month.BudgetRemaining),
		},
		Goals: GoalStatsResponse{
			Count:          out.Goals.Count,
			TotalTarget:    money(out.Goals.TotalTarget),
			TotalSaved:     money(out.Goals.TotalSaved),
			AveragePercent: money(out.Goals.AveragePercent),
		},
		TopCategories: top,
	}
}
