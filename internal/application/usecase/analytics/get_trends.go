// Package analytics contains the aggregation use cases: monthly summary, trends and dashboard.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	domainerror "github.com/finance-tracker/young-finance/internal/domain/error"
	"github.com/finance-tracker/young-finance/internal/domain/valueobject"
)

const (
	// DefaultTrendPeriods is the number of months returned when none is requested.
	DefaultTrendPeriods = 6
	// MaxTrendPeriods bounds the trend series length.
	MaxTrendPeriods = 24

	trendConcurrency = 4
)

// GetTrendsInput represents the input for the trend series.
type GetTrendsInput struct {
	Periods *int
}

// TrendPoint represents one month of the trend series.
type TrendPoint struct {
	Period  valueobject.Period
	Label   string
	Income  decimal.Decimal
	Expense decimal.Decimal
	Balance decimal.Decimal
}

// GetTrendsOutput represents the trend series, oldest month first.
type GetTrendsOutput struct {
	Trends []TrendPoint
}

// GetTrendsUseCase computes income and expense for consecutive months ending at the current one.
type GetTrendsUseCase struct {
	repo Repository
	now  func() time.Time
}

// NewGetTrendsUseCase creates a new GetTrendsUseCase instance.
func NewGetTrendsUseCase(repo Repository, opts ...Option) *GetTrendsUseCase {
	o := applyOptions(opts)
	return &GetTrendsUseCase{
		repo: repo,
		now:  o.now,
	}
}

// Execute computes the trend series.
func (uc *GetTrendsUseCase) Execute(ctx context.Context, input GetTrendsInput) (*GetTrendsOutput, error) {
	n := DefaultTrendPeriods
	if input.Periods != nil {
		n = *input.Periods
	}
	if n < 1 || n > MaxTrendPeriods {
		return nil, domainerror.NewAnalyticsError(
			domainerror.ErrCodeInvalidTrendPeriods,
			fmt.Sprintf("periods must be between 1 and %d", MaxTrendPeriods),
			domainerror.ErrInvalidTrendPeriods,
		)
	}

	periods := valueobject.LastPeriods(valueobject.PeriodOf(uc.now().UTC()), n)
	trends := make([]TrendPoint, len(periods))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(trendConcurrency)

	for i, period := range periods {
		g.Go(func() error {
			totals, err := uc.repo.GetPeriodTotals(gctx, period.Start(), period.End())
			if err != nil {
				return fmt.Errorf("failed to get totals for %s: %w", period.Label(), err)
			}
			trends[i] = TrendPoint{
				Period:  period,
				Label:   period.Label(),
				Income:  totals.Income,
				Expense: totals.Expense,
				Balance: totals.Balance(),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &GetTrendsOutput{
		Trends: trends,
	}, nil
}
