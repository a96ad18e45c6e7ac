// Package analytics contains the aggregation use cases: monthly summary, trends and dashboard.
package analytics

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// UncategorizedName groups expenses that have no category.
const UncategorizedName = "Sin categoría"

// Repository defines the aggregation queries over the entity store.
// Date ranges are half-open: [startDate, endDate).
type Repository interface {
	// GetPeriodTotals returns income and expense totals for a date range.
	GetPeriodTotals(ctx context.Context, startDate, endDate time.Time) (*PeriodTotals, error)

	// GetExpensesByCategory returns expense totals grouped by category name, largest first.
	GetExpensesByCategory(ctx context.Context, startDate, endDate time.Time) ([]CategoryTotal, error)

	// GetBudgetTotal returns the sum of budget limits for a month.
	GetBudgetTotal(ctx context.Context, month, year int) (decimal.Decimal, error)

	// GetActiveGoalStats returns aggregates over goals still in progress.
	GetActiveGoalStats(ctx context.Context) (*GoalStats, error)

	// GetTopCategories returns the most used categories across all time by transaction count.
	GetTopCategories(ctx context.Context, limit int) ([]CategoryActivity, error)
}

// PeriodTotals represents income and expense totals for a range.
type PeriodTotals struct {
	Income           decimal.Decimal
	Expense          decimal.Decimal
	TransactionCount int
}

// Balance returns income minus expense.
func (p PeriodTotals) Balance() decimal.Decimal {
	return p.Income.Sub(p.Expense)
}

// CategoryTotal represents the expense total of one category.
type CategoryTotal struct {
	CategoryName string
	Total        decimal.Decimal
}

// GoalStats represents aggregates over active goals.
type GoalStats struct {
	Count       int
	TotalTarget decimal.Decimal
	TotalSaved  decimal.Decimal
}

// CategoryActivity represents how often a category is used and the amount moved through it.
type CategoryActivity struct {
	CategoryName     string
	TransactionCount int
	Total            decimal.Decimal
}
