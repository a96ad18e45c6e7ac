package persistence_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/young-finance/internal/application/adapter"
	"github.com/finance-tracker/young-finance/internal/domain/entity"
	domainerror "github.com/finance-tracker/young-finance/internal/domain/error"
	"github.com/finance-tracker/young-finance/internal/integration/persistence"
	"github.com/finance-tracker/young-finance/internal/testutil"
)

func TestBudgetRepository_DuplicatePeriodIsRejected(t *testing.T) {
	db := testutil.NewDB(t)
	seed := testutil.NewSeeder(t, db)
	repo := persistence.NewBudgetRepository(db)
	ctx := context.Background()

	food := seed.Category("Comida", entity.CategoryTypeExpense)
	existing := seed.Budget(food, 100000, 3, 2024)

	duplicate := entity.NewBudget("Otra", food.ID, decimal.NewFromInt(5000), 3, 2024)
	assert.ErrorIs(t, repo.Create(ctx, duplicate), domainerror.ErrBudgetAlreadyExists)

	exists, err := repo.ExistsByCategoryAndPeriod(ctx, food.ID, 3, 2024, nil)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByCategoryAndPeriod(ctx, food.ID, 3, 2024, &existing.ID)
	require.NoError(t, err)
	assert.False(t, exists, "the budget itself is excluded")

	nextMonth := entity.NewBudget("Abril", food.ID, decimal.NewFromInt(5000), 4, 2024)
	assert.NoError(t, repo.Create(ctx, nextMonth))
}

func TestBudgetRepository_FindAllOrdering(t *testing.T) {
	db := testutil.NewDB(t)
	seed := testutil.NewSeeder(t, db)
	repo := persistence.NewBudgetRepository(db)
	ctx := context.Background()

	transport := seed.Category("Transporte", entity.CategoryTypeExpense)
	food := seed.Category("Comida", entity.CategoryTypeExpense)

	seed.Budget(transport, 1, 3, 2024)
	seed.Budget(food, 2, 3, 2024)
	seed.Budget(food, 3, 4, 2024)
	seed.Budget(food, 4, 12, 2023)

	all, err := repo.FindAll(ctx, adapter.BudgetFilter{})
	require.NoError(t, err)
	require.Len(t, all, 4)

	limits := make([]int64, len(all))
	for i, b := range all {
		limits[i] = b.LimitAmount.IntPart()
	}
	assert.Equal(t, []int64{3, 2, 1, 4}, limits)

	month, year := 3, 2024
	march, err := repo.FindAll(ctx, adapter.BudgetFilter{Month: &month, Year: &year})
	require.NoError(t, err)
	assert.Len(t, march, 2)
}

func TestBudgetRepository_GetSpent(t *testing.T) {
	db := testutil.NewDB(t)
	seed := testutil.NewSeeder(t, db)
	repo := persistence.NewBudgetRepository(db)
	transactions := persistence.NewTransactionRepository(db)
	ctx := context.Background()

	food := seed.Category("Comida", entity.CategoryTypeExpense)
	other := seed.Category("Ocio", entity.CategoryTypeExpense)

	seed.Transaction("a", 30000, entity.TransactionTypeExpense, food, testutil.Date(2024, time.March, 1))
	seed.Transaction("b", 20000, entity.TransactionTypeExpense, food, testutil.Date(2024, time.March, 31))
	seed.Transaction("refund", 5000, entity.TransactionTypeIncome, food, testutil.Date(2024, time.March, 10))
	seed.Transaction("april", 70000, entity.TransactionTypeExpense, food, testutil.Date(2024, time.April, 1))
	seed.Transaction("other", 90000, entity.TransactionTypeExpense, other, testutil.Date(2024, time.March, 10))
	deleted := seed.Transaction("deleted", 11000, entity.TransactionTypeExpense, food, testutil.Date(2024, time.March, 15))
	require.NoError(t, transactions.Delete(ctx, deleted.ID))

	start := testutil.Date(2024, time.March, 1)
	spent, err := repo.GetSpent(ctx, food.ID, start, start.AddDate(0, 1, 0))
	require.NoError(t, err)
	assert.True(t, spent.Equal(decimal.NewFromInt(50000)), "got %s", spent)

	empty, err := repo.GetSpent(ctx, food.ID, testutil.Date(2020, time.January, 1), testutil.Date(2020, time.February, 1))
	require.NoError(t, err)
	assert.True(t, empty.IsZero())
}
