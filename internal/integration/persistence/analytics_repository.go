// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finance-tracker/young-finance/internal/application/usecase/analytics"
)

// analyticsRepository implements the analytics.Repository interface.
// Queries stick to SQL understood by both postgres and sqlite.
type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository instance.
func NewAnalyticsRepository(db *gorm.DB) analytics.Repository {
	return &analyticsRepository{
		db: db,
	}
}

// GetPeriodTotals returns income and expense totals for [startDate, endDate).
func (r *analyticsRepository) GetPeriodTotals(ctx context.Context, startDate, endDate time.Time) (*analytics.PeriodTotals, error) {
	var result struct {
		Income           decimal.Decimal `gorm:"column:income"`
		Expense          decimal.Decimal `gorm:"column:expense"`
		TransactionCount int             `gorm:"column:transaction_count"`
	}

	query := `
		SELECT
			COALESCE(SUM(CASE WHEN type = 'income' THEN amount ELSE 0 END), 0) AS income,
			COALESCE(SUM(CASE WHEN type = 'expense' THEN amount ELSE 0 END), 0) AS expense,
			COUNT(*) AS transaction_count
		FROM transactions
		WHERE date >= ?
			AND date < ?
			AND deleted_at IS NULL
	`

	if err := r.db.WithContext(ctx).Raw(query, startDate, endDate).Scan(&result).Error; err != nil {
		return nil, fmt.Errorf("failed to get period totals: %w", err)
	}

	return &analytics.PeriodTotals{
		Income:           result.Income,
		Expense:          result.Expense,
		TransactionCount: result.TransactionCount,
	}, nil
}

// GetExpensesByCategory returns expense totals per category name, largest first.
// Expenses without a category are grouped under analytics.UncategorizedName.
func (r *analyticsRepository) GetExpensesByCategory(ctx context.Context, startDate, endDate time.Time) ([]analytics.CategoryTotal, error) {
	var results []struct {
		CategoryName *string         `gorm:"column:category_name"`
		Total        decimal.Decimal `gorm:"column:total"`
	}

	query := `
		SELECT
			c.name AS category_name,
			COALESCE(SUM(t.amount), 0) AS total
		FROM transactions t
		LEFT JOIN categories c ON c.id = t.category_id
		WHERE t.type = 'expense'
			AND t.date >= ?
			AND t.date < ?
			AND t.deleted_at IS NULL
		GROUP BY c.name
		ORDER BY total DESC
	`

	if err := r.db.WithContext(ctx).Raw(query, startDate, endDate).Scan(&results).Error; err != nil {
		return nil, fmt.Errorf("failed to get expenses by category: %w", err)
	}

	totals := make([]analytics.CategoryTotal, len(results))
	for i, row := range results {
		totals[i] = analytics.CategoryTotal{
			CategoryName: categoryNameOrDefault(row.CategoryName),
			Total:        row.Total,
		}
	}
	return totals, nil
}

// GetBudgetTotal returns the sum of budget limits for a month.
func (r *analyticsRepository) GetBudgetTotal(ctx context.Context, month, year int) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal `gorm:"column:total"`
	}

	query := `
		SELECT COALESCE(SUM(limit_amount), 0) AS total
		FROM budgets
		WHERE month = ? AND year = ?
	`

	if err := r.db.WithContext(ctx).Raw(query, month, year).Scan(&result).Error; err != nil {
		return decimal.Zero, fmt.Errorf("failed to get budget total: %w", err)
	}
	return result.Total, nil
}

// GetActiveGoalStats returns count, targets and savings over goals in progress.
func (r *analyticsRepository) GetActiveGoalStats(ctx context.Context) (*analytics.GoalStats, error) {
	var result struct {
		GoalCount   int             `gorm:"column:goal_count"`
		TotalTarget decimal.Decimal `gorm:"column:total_target"`
		TotalSaved  decimal.Decimal `gorm:"column:total_saved"`
	}

	query := `
		SELECT
			COUNT(*) AS goal_count,
			COALESCE(SUM(target_amount), 0) AS total_target,
			COALESCE(SUM(current_amount), 0) AS total_saved
		FROM goals
		WHERE status = 'in_progress'
			AND deleted_at IS NULL
	`

	if err := r.db.WithContext(ctx).Raw(query).Scan(&result).Error; err != nil {
		return nil, fmt.Errorf("failed to get goal stats: %w", err)
	}

	return &analytics.GoalStats{
		Count:       result.GoalCount,
		TotalTarget: result.TotalTarget,
		TotalSaved:  result.TotalSaved,
	}, nil
}

// GetTopCategories returns the categories with the most transactions across all time.
func (r *analyticsRepository) GetTopCategories(ctx context.Context, limit int) ([]analytics.CategoryActivity, error) {
	var results []struct {
		CategoryName     *string         `gorm:"column:category_name"`
		TransactionCount int             `gorm:"column:transaction_count"`
		Total            decimal.Decimal `gorm:"column:total"`
	}

	query := `
		SELECT
			c.name AS category_name,
			COUNT(t.id) AS transaction_count,
			COALESCE(SUM(t.amount), 0) AS total
		FROM transactions t
		LEFT JOIN categories c ON c.id = t.category_id
		WHERE t.deleted_at IS NULL
		GROUP BY c.name
		ORDER BY transaction_count DESC, total DESC
		LIMIT ?
	`

	if err := r.db.WithContext(ctx).Raw(query, limit).Scan(&results).Error; err != nil {
		return nil, fmt.Errorf("failed to get top categories: %w", err)
	}

	activity := make([]analytics.CategoryActivity, len(results))
	for i, row := range results {
		activity[i] = analytics.CategoryActivity{
			CategoryName:     categoryNameOrDefault(row.CategoryName),
			TransactionCount: row.TransactionCount,
			Total:            row.Total,
		}
	}
	return activity, nil
}

func categoryNameOrDefault(name *string) string {
	if name == nil {
		return analytics.UncategorizedName
	}
	return *name
}
