package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/young-finance/internal/application/usecase/analytics"
	"github.com/finance-tracker/young-finance/internal/domain/entity"
	domainerror "github.com/finance-tracker/young-finance/internal/domain/error"
	"github.com/finance-tracker/young-finance/internal/integration/persistence"
	"github.com/finance-tracker/young-finance/internal/testutil"
)

func fixedClock(year int, month time.Month, day int) analytics.Option {
	return analytics.WithClock(func() time.Time {
		return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
	})
}

func intPtr(v int) *int { return &v }

func TestGetMonthlySummaryUseCase(t *testing.T) {
	db := testutil.NewDB(t)
	seed := testutil.NewSeeder(t, db)
	catA := seed.Category("catA", entity.CategoryTypeExpense)
	seed.Transaction("gasto", 50000, entity.TransactionTypeExpense, catA, testutil.Date(2024, time.March, 5))
	seed.Transaction("ingreso", 200000, entity.TransactionTypeIncome, nil, testutil.Date(2024, time.March, 10))

	uc := analytics.NewGetMonthlySummaryUseCase(persistence.NewAnalyticsRepository(db), fixedClock(2024, time.March, 20))
	ctx := context.Background()

	out, err := uc.Execute(ctx, analytics.GetMonthlySummaryInput{Month: intPtr(3), Year: intPtr(2024)})
	require.NoError(t, err)
	assert.True(t, out.TotalIncome.Equal(decimal.NewFromInt(200000)))
	assert.True(t, out.TotalExpense.Equal(decimal.NewFromInt(50000)))
	assert.True(t, out.Balance.Equal(decimal.NewFromInt(150000)))
	require.Len(t, out.ExpensesByCategory, 1)
	assert.Equal(t, "catA", out.ExpensesByCategory[0].CategoryName)
	assert.True(t, out.ExpensesByCategory[0].Total.Equal(decimal.NewFromInt(50000)))

	current, err := uc.Execute(ctx, analytics.GetMonthlySummaryInput{})
	require.NoError(t, err, "defaults to the current month")
	assert.Equal(t, time.March, current.Period.Month)
	assert.True(t, current.Balance.Equal(out.Balance))

	_, err = uc.Execute(ctx, analytics.GetMonthlySummaryInput{Month: intPtr(0)})
	var analyticsErr *domainerror.AnalyticsError
	require.True(t, errors.As(err, &analyticsErr))
	assert.Equal(t, domainerror.ErrCodeInvalidSummaryPeriod, analyticsErr.Code)
}

func TestGetTrendsUseCase(t *testing.T) {
	db := testutil.NewDB(t)
	seed := testutil.NewSeeder(t, db)
	seed.Transaction("dic", 1000, entity.TransactionTypeIncome, nil, testutil.Date(2023, time.December, 31))
	seed.Transaction("feb", 400, entity.TransactionTypeExpense, nil, testutil.Date(2024, time.February, 29))
	seed.Transaction("mar", 300, entity.TransactionTypeIncome, nil, testutil.Date(2024, time.March, 31))

	repo := persistence.NewAnalyticsRepository(db)
	uc := analytics.NewGetTrendsUseCase(repo, fixedClock(2024, time.March, 31))
	ctx := context.Background()

	out, err := uc.Execute(ctx, analytics.GetTrendsInput{Periods: intPtr(4)})
	require.NoError(t, err)
	require.Len(t, out.Trends, 4)

	labels := make([]string, len(out.Trends))
	for i, point := range out.Trends {
		labels[i] = point.Label
		assert.True(t, point.Balance.Equal(point.Income.Sub(point.Expense)))
	}
	assert.Equal(t, []string{"12/2023", "1/2024", "2/2024", "3/2024"}, labels)
	assert.True(t, out.Trends[0].Income.Equal(decimal.NewFromInt(1000)))
	assert.True(t, out.Trends[2].Expense.Equal(decimal.NewFromInt(400)))
	assert.True(t, out.Trends[3].Balance.Equal(decimal.NewFromInt(300)))

	def, err := uc.Execute(ctx, analytics.GetTrendsInput{})
	require.NoError(t, err)
	require.Len(t, def.Trends, analytics.DefaultTrendPeriods)
	tail := def.Trends[len(def.Trends)-3:]
	for i, point := range out.Trends[1:] {
		assert.Equal(t, point.Label, tail[i].Label, "overlapping windows agree")
		assert.True(t, point.Income.Equal(tail[i].Income))
		assert.True(t, point.Expense.Equal(tail[i].Expense))
	}

	for _, n := range []int{0, -1, analytics.MaxTrendPeriods + 1} {
		_, err := uc.Execute(ctx, analytics.GetTrendsInput{Periods: intPtr(n)})
		assert.ErrorIs(t, err, domainerror.ErrInvalidTrendPeriods, "periods=%d", n)
	}
}

func TestGetDashboardUseCase(t *testing.T) {
	db := testutil.NewDB(t)
	seed := testutil.NewSeeder(t, db)
	food := seed.Category("Comida", entity.CategoryTypeExpense)
	seed.Budget(food, 100000, 3, 2024)
	seed.Transaction("super", 150000, entity.TransactionTypeExpense, food, testutil.Date(2024, time.March, 2))
	seed.Transaction("sueldo", 500000, entity.TransactionTypeIncome, nil, testutil.Date(2024, time.March, 1))
	seed.Goal("a", 100000, 20000, entity.GoalStatusInProgress)
	seed.Goal("b", 300000, 100000, entity.GoalStatusInProgress)
	seed.Goal("c", 1, 1, entity.GoalStatusCompleted)

	uc := analytics.NewGetDashboardUseCase(persistence.NewAnalyticsRepository(db), fixedClock(2024, time.March, 15))

	out, err := uc.Execute(context.Background())
	require.NoError(t, err)

	month := out.CurrentMonth
	assert.True(t, month.Income.Equal(decimal.NewFromInt(500000)))
	assert.True(t, month.Expense.Equal(decimal.NewFromInt(150000)))
	assert.True(t, month.Balance.Equal(decimal.NewFromInt(350000)))
	assert.True(t, month.BudgetTotal.Equal(decimal.NewFromInt(100000)))
	assert.True(t, month.BudgetUsed.Equal(decimal.NewFromInt(150000)))
	assert.True(t, month.BudgetRemaining.Equal(decimal.NewFromInt(-50000)), "remaining may be negative")

	assert.Equal(t, 2, out.Goals.Count)
	assert.True(t, out.Goals.AveragePercent.Equal(decimal.NewFromInt(30)))

	require.Len(t, out.TopCategories, 2)
}

func TestGetDashboardUseCase_Empty(t *testing.T) {
	uc := analytics.NewGetDashboardUseCase(persistence.NewAnalyticsRepository(testutil.NewDB(t)))

	out, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Zero(t, out.Goals.Count)
	assert.True(t, out.Goals.AveragePercent.IsZero())
	assert.Empty(t, out.TopCategories)
}
