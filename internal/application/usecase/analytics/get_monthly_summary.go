// Package analytics contains the aggregation use cases: monthly summary, trends and dashboard.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	domainerror "github.com/finance-tracker/young-finance/internal/domain/error"
	"github.com/finance-tracker/young-finance/internal/domain/valueobject"
)

// GetMonthlySummaryInput represents the input for the monthly summary.
// A nil month or year means the current one.
type GetMonthlySummaryInput struct {
	Month *int
	Year  *int
}

// GetMonthlySummaryOutput represents the monthly summary.
type GetMonthlySummaryOutput struct {
	Period             valueobject.Period
	TotalIncome        decimal.Decimal
	TotalExpense       decimal.Decimal
	Balance            decimal.Decimal
	ExpensesByCategory []CategoryTotal
}

// GetMonthlySummaryUseCase computes income, expense and per-category spending for a month.
type GetMonthlySummaryUseCase struct {
	repo Repository
	now  func() time.Time
}

// NewGetMonthlySummaryUseCase creates a new GetMonthlySummaryUseCase instance.
func NewGetMonthlySummaryUseCase(repo Repository, opts ...Option) *GetMonthlySummaryUseCase {
	o := applyOptions(opts)
	return &GetMonthlySummaryUseCase{
		repo: repo,
		now:  o.now,
	}
}

// Execute computes the summary.
func (uc *GetMonthlySummaryUseCase) Execute(ctx context.Context, input GetMonthlySummaryInput) (*GetMonthlySummaryOutput, error) {
	current := valueobject.PeriodOf(uc.now().UTC())

	month, year := int(current.Month), current.Year
	if input.Month != nil {
		month = *input.Month
	}
	if input.Year != nil {
		year = *input.Year
	}

	period, err := valueobject.NewPeriod(month, year)
	if err != nil {
		return nil, domainerror.NewAnalyticsError(
			domainerror.ErrCodeInvalidSummaryPeriod,
			err.Error(),
			domainerror.ErrInvalidSummaryPeriod,
		)
	}

	totals, err := uc.repo.GetPeriodTotals(ctx, period.Start(), period.End())
	if err != nil {
		return nil, fmt.Errorf("failed to get period totals: %w", err)
	}

	byCategory, err := uc.repo.GetExpensesByCategory(ctx, period.Start(), period.End())
	if err != nil {
		return nil, fmt.Errorf("failed to get expenses by category: %w", err)
	}

	return &GetMonthlySummaryOutput{
		Period:             period,
		TotalIncome:        totals.Income,
		TotalExpense:       totals.Expense,
		Balance:            totals.Balance(),
		ExpensesByCategory: byCategory,
	}, nil
}
