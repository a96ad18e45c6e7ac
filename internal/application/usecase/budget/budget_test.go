package budget_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/finance-tracker/young-finance/internal/application/usecase/budget"
	"github.com/finance-tracker/young-finance/internal/domain/entity"
	domainerror "github.com/finance-tracker/young-finance/internal/domain/error"
	"github.com/finance-tracker/young-finance/internal/integration/persistence"
	"github.com/finance-tracker/young-finance/internal/testutil"
)

func budgetErrorCode(t *testing.T, err error) domainerror.BudgetErrorCode {
	t.Helper()
	var budgetErr *domainerror.BudgetError
	require.True(t, errors.As(err, &budgetErr), "expected BudgetError, got %v", err)
	return budgetErr.Code
}

func newCreate(db *gorm.DB) *budget.CreateBudgetUseCase {
	return budget.NewCreateBudgetUseCase(persistence.NewBudgetRepository(db), persistence.NewCategoryRepository(db))
}

func TestCreateBudgetUseCase(t *testing.T) {
	db := testutil.NewDB(t)
	seed := testutil.NewSeeder(t, db)
	food := seed.Category("Comida", entity.CategoryTypeExpense)
	salary := seed.Category("Sueldo", entity.CategoryTypeIncome)
	seed.Transaction("Super", 120000, entity.TransactionTypeExpense, food, testutil.Date(2024, time.March, 3))

	uc := newCreate(db)
	ctx := context.Background()

	out, err := uc.Execute(ctx, budget.CreateBudgetInput{
		CategoryID:  food.ID,
		LimitAmount: decimal.NewFromInt(100000),
		Month:       3,
		Year:        2024,
	})
	require.NoError(t, err)
	assert.Equal(t, "Comida", out.Budget.Budget.Name, "name defaults to the category name")
	assert.True(t, out.Budget.Spent.Equal(decimal.NewFromInt(120000)))
	assert.True(t, out.Budget.PercentUsed().Equal(decimal.NewFromInt(120)))
	assert.True(t, out.Budget.Remaining().IsZero())

	tests := []struct {
		name  string
		input budget.CreateBudgetInput
		code  domainerror.BudgetErrorCode
	}{
		{
			name:  "duplicate period",
			input: budget.CreateBudgetInput{CategoryID: food.ID, LimitAmount: decimal.NewFromInt(1), Month: 3, Year: 2024},
			code:  domainerror.ErrCodeBudgetAlreadyExists,
		},
		{
			name:  "income category",
			input: budget.CreateBudgetInput{CategoryID: salary.ID, LimitAmount: decimal.NewFromInt(1), Month: 3, Year: 2024},
			code:  domainerror.ErrCodeBudgetCategoryNotExpense,
		},
		{
			name:  "unknown category",
			input: budget.CreateBudgetInput{CategoryID: uuid.New(), LimitAmount: decimal.NewFromInt(1), Month: 3, Year: 2024},
			code:  domainerror.ErrCodeBudgetCategoryNotFound,
		},
		{
			name:  "negative limit",
			input: budget.CreateBudgetInput{CategoryID: food.ID, LimitAmount: decimal.NewFromInt(-1), Month: 4, Year: 2024},
			code:  domainerror.ErrCodeInvalidBudgetLimit,
		},
		{
			name:  "limit finer than cents",
			input: budget.CreateBudgetInput{CategoryID: food.ID, LimitAmount: decimal.RequireFromString("100.005"), Month: 4, Year: 2024},
			code:  domainerror.ErrCodeInvalidBudgetLimit,
		},
		{
			name:  "month out of range",
			input: budget.CreateBudgetInput{CategoryID: food.ID, LimitAmount: decimal.NewFromInt(1), Month: 13, Year: 2024},
			code:  domainerror.ErrCodeInvalidBudgetPeriod,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(ctx, tt.input)
			assert.Equal(t, tt.code, budgetErrorCode(t, err))
		})
	}
}

func TestCreateBudgetUseCase_ZeroLimit(t *testing.T) {
	db := testutil.NewDB(t)
	food := testutil.NewSeeder(t, db).Category("Comida", entity.CategoryTypeExpense)

	out, err := newCreate(db).Execute(context.Background(), budget.CreateBudgetInput{
		CategoryID:  food.ID,
		LimitAmount: decimal.Zero,
		Month:       1,
		Year:        2025,
	})
	require.NoError(t, err)
	assert.True(t, out.Budget.PercentUsed().IsZero())
	assert.True(t, out.Budget.Remaining().IsZero())
}

func TestUpdateBudgetUseCase_ConflictOnPeriodChange(t *testing.T) {
	db := testutil.NewDB(t)
	seed := testutil.NewSeeder(t, db)
	food := seed.Category("Comida", entity.CategoryTypeExpense)
	march := seed.Budget(food, 100, 3, 2024)
	april := seed.Budget(food, 100, 4, 2024)

	uc := budget.NewUpdateBudgetUseCase(persistence.NewBudgetRepository(db), persistence.NewCategoryRepository(db))
	ctx := context.Background()

	month := 3
	_, err := uc.Execute(ctx, budget.UpdateBudgetInput{BudgetID: april.ID, Month: &month})
	assert.Equal(t, domainerror.ErrCodeBudgetAlreadyExists, budgetErrorCode(t, err))

	limit := decimal.NewFromInt(250)
	out, err := uc.Execute(ctx, budget.UpdateBudgetInput{BudgetID: march.ID, LimitAmount: &limit, Month: &month})
	require.NoError(t, err, "keeping its own period is not a conflict")
	assert.True(t, out.Budget.Budget.LimitAmount.Equal(limit))
}

func TestListBudgetsUseCase_ComputesSpending(t *testing.T) {
	db := testutil.NewDB(t)
	seed := testutil.NewSeeder(t, db)
	food := seed.Category("Comida", entity.CategoryTypeExpense)
	fun := seed.Category("Ocio", entity.CategoryTypeExpense)
	seed.Budget(food, 100000, 3, 2024)
	seed.Budget(fun, 40000, 3, 2024)
	seed.Transaction("a", 30000, entity.TransactionTypeExpense, food, testutil.Date(2024, time.March, 3))
	seed.Transaction("b", 10000, entity.TransactionTypeExpense, fun, testutil.Date(2024, time.March, 4))

	uc := budget.NewListBudgetsUseCase(persistence.NewBudgetRepository(db), persistence.NewCategoryRepository(db))

	month, year := 3, 2024
	out, err := uc.Execute(context.Background(), budget.ListBudgetsInput{Month: &month, Year: &year})
	require.NoError(t, err)
	require.Len(t, out.Budgets, 2)

	for _, b := range out.Budgets {
		assert.False(t, b.Spent.IsNegative())
		assert.True(t, b.Remaining().Equal(decimal.Max(decimal.Zero, b.Budget.LimitAmount.Sub(b.Spent))))
	}
	assert.Equal(t, "Comida", out.Budgets[0].Category.Name)
	assert.True(t, out.Budgets[0].PercentUsed().Equal(decimal.NewFromInt(30)))
	assert.True(t, out.Budgets[1].Remaining().Equal(decimal.NewFromInt(30000)))
}

func TestDeleteBudgetUseCase(t *testing.T) {
	db := testutil.NewDB(t)
	seed := testutil.NewSeeder(t, db)
	food := seed.Category("Comida", entity.CategoryTypeExpense)
	existing := seed.Budget(food, 100, 3, 2024)

	repo := persistence.NewBudgetRepository(db)
	uc := budget.NewDeleteBudgetUseCase(repo)

	_, err := uc.Execute(context.Background(), budget.DeleteBudgetInput{BudgetID: existing.ID})
	require.NoError(t, err)

	_, err = budget.NewGetBudgetUseCase(repo, persistence.NewCategoryRepository(db)).Execute(
		context.Background(),
		budget.GetBudgetInput{BudgetID: existing.ID},
	)
	assert.Equal(t, domainerror.ErrCodeBudgetNotFound, budgetErrorCode(t, err))
}
