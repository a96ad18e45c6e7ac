// Package analytics contains the aggregation use cases: monthly summary, trends and dashboard.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/finance-tracker/young-finance/internal/domain/valueobject"
)

// TopCategoriesLimit is the number of categories listed in the dashboard.
const TopCategoriesLimit = 5

var hundred = decimal.NewFromInt(100)

// MonthSnapshot represents the current month in the dashboard.
type MonthSnapshot struct {
	Period          valueobject.Period
	Income          decimal.Decimal
	Expense         decimal.Decimal
	Balance         decimal.Decimal
	BudgetTotal     decimal.Decimal
	BudgetUsed      decimal.Decimal
	BudgetRemaining decimal.Decimal // May be negative when overspent
}

// GoalSnapshot represents aggregates over active goals.
type GoalSnapshot struct {
	Count          int
	TotalTarget    decimal.Decimal
	TotalSaved     decimal.Decimal
	AveragePercent decimal.Decimal
}

// GetDashboardOutput represents the dashboard snapshot.
type GetDashboardOutput struct {
	CurrentMonth  MonthSnapshot
	Goals         GoalSnapshot
	TopCategories []CategoryActivity
}

// GetDashboardUseCase builds the dashboard snapshot.
type GetDashboardUseCase struct {
	repo Repository
	now  func() time.Time
}

// NewGetDashboardUseCase creates a new GetDashboardUseCase instance.
func NewGetDashboardUseCase(repo Repository, opts ...Option) *GetDashboardUseCase {
	o := applyOptions(opts)
	return &GetDashboardUseCase{
		repo: repo,
		now:  o.now,
	}
}

// Execute runs the dashboard aggregations concurrently and assembles the snapshot.
func (uc *GetDashboardUseCase) Execute(ctx context.Context) (*GetDashboardOutput, error) {
	period := valueobject.PeriodOf(uc.now().UTC())

	var (
		totals      *PeriodTotals
		budgetTotal decimal.Decimal
		goalStats   *GoalStats
		top         []CategoryActivity
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		totals, err = uc.repo.GetPeriodTotals(gctx, period.Start(), period.End())
		if err != nil {
			return fmt.Errorf("failed to get month totals: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		budgetTotal, err = uc.repo.GetBudgetTotal(gctx, int(period.Month), period.Year)
		if err != nil {
			return fmt.Errorf("failed to get budget total: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		goalStats, err = uc.repo.GetActiveGoalStats(gctx)
		if err != nil {
			return fmt.Errorf("failed to get goal stats: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		top, err = uc.repo.GetTopCategories(gctx, TopCategoriesLimit)
		if err != nil {
			return fmt.Errorf("failed to get top categories: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &GetDashboardOutput{
		CurrentMonth: MonthSnapshot{
			Period:          period,
			Income:          totals.Income,
			Expense:         totals.Expense,
			Balance:         totals.Balance(),
			BudgetTotal:     budgetTotal,
			BudgetUsed:      totals.Expense,
			BudgetRemaining: budgetTotal.Sub(totals.Expense),
		},
		Goals: GoalSnapshot{
			Count:          goalStats.Count,
			TotalTarget:    goalStats.TotalTarget,
			TotalSaved:     goalStats.TotalSaved,
			AveragePercent: averagePercent(goalStats),
		},
		TopCategories: top,
	}, nil
}

// averagePercent returns saved/target*100 over all active goals, zero when there is no target.
func averagePercent(stats *GoalStats) decimal.Decimal {
	if !stats.TotalTarget.IsPositive() {
		return decimal.Zero
	}
	return stats.TotalSaved.Div(stats.TotalTarget).Mul(hundred).Round(2)
}
