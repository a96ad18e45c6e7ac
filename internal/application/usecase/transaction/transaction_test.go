package transaction_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/young-finance/internal/application/usecase/transaction"
	"github.com/finance-tracker/young-finance/internal/domain/entity"
	domainerror "github.com/finance-tracker/young-finance/internal/domain/error"
	"github.com/finance-tracker/young-finance/internal/integration/persistence"
	"github.com/finance-tracker/young-finance/internal/testutil"
)

func transactionErrorCode(t *testing.T, err error) domainerror.TransactionErrorCode {
	t.Helper()
	var transactionErr *domainerror.TransactionError
	require.True(t, errors.As(err, &transactionErr), "expected TransactionError, got %v", err)
	return transactionErr.Code
}

func TestCreateTransactionUseCase(t *testing.T) {
	db := testutil.NewDB(t)
	seed := testutil.NewSeeder(t, db)
	food := seed.Category("Comida", entity.CategoryTypeExpense)

	uc := transaction.NewCreateTransactionUseCase(
		persistence.NewTransactionRepository(db),
		persistence.NewCategoryRepository(db),
	)
	ctx := context.Background()

	t.Run("creates with category and truncated date", func(t *testing.T) {
		date := time.Date(2024, time.March, 5, 15, 30, 0, 0, time.UTC)
		out, err := uc.Execute(ctx, transaction.CreateTransactionInput{
			Description: "Almuerzo",
			Amount:      decimal.NewFromInt(25000),
			Type:        entity.TransactionTypeExpense,
			CategoryID:  &food.ID,
			Date:        &date,
		})
		require.NoError(t, err)
		assert.True(t, out.Transaction.Transaction.Date.Equal(testutil.Date(2024, time.March, 5)))
		require.NotNil(t, out.Transaction.Category)
		assert.Equal(t, "Comida", out.Transaction.Category.Name)
	})

	t.Run("defaults date to today", func(t *testing.T) {
		out, err := uc.Execute(ctx, transaction.CreateTransactionInput{
			Description: "Sueldo",
			Amount:      decimal.NewFromInt(1),
			Type:        entity.TransactionTypeIncome,
		})
		require.NoError(t, err)
		assert.True(t, out.Transaction.Transaction.Date.Equal(entity.TruncateToDate(time.Now())))
		assert.Nil(t, out.Transaction.Category)
	})

	unknown := uuid.New()
	tests := []struct {
		name  string
		input transaction.CreateTransactionInput
		code  domainerror.TransactionErrorCode
	}{
		{
			name:  "zero amount",
			input: transaction.CreateTransactionInput{Description: "x", Amount: decimal.Zero, Type: entity.TransactionTypeExpense},
			code:  domainerror.ErrCodeInvalidTransactionAmount,
		},
		{
			name:  "negative amount",
			input: transaction.CreateTransactionInput{Description: "x", Amount: decimal.NewFromInt(-5), Type: entity.TransactionTypeExpense},
			code:  domainerror.ErrCodeInvalidTransactionAmount,
		},
		{
			name:  "amount rounds to zero cents",
			input: transaction.CreateTransactionInput{Description: "x", Amount: decimal.RequireFromString("0.001"), Type: entity.TransactionTypeExpense},
			code:  domainerror.ErrCodeInvalidTransactionAmount,
		},
		{
			name:  "unknown type",
			input: transaction.CreateTransactionInput{Description: "x", Amount: decimal.NewFromInt(5), Type: "transfer"},
			code:  domainerror.ErrCodeInvalidTransactionType,
		},
		{
			name:  "missing description",
			input: transaction.CreateTransactionInput{Amount: decimal.NewFromInt(5), Type: entity.TransactionTypeIncome},
			code:  domainerror.ErrCodeTransactionDescriptionNeeded,
		},
		{
			name:  "unknown category",
			input: transaction.CreateTransactionInput{Description: "x", Amount: decimal.NewFromInt(5), Type: entity.TransactionTypeIncome, CategoryID: &unknown},
			code:  domainerror.ErrCodeTransactionCategoryNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(ctx, tt.input)
			assert.Equal(t, tt.code, transactionErrorCode(t, err))
		})
	}
}

func TestListTransactionsUseCase_RejectsInvertedRange(t *testing.T) {
	uc := transaction.NewListTransactionsUseCase(persistence.NewTransactionRepository(testutil.NewDB(t)))

	from := testutil.Date(2024, time.March, 10)
	to := testutil.Date(2024, time.March, 1)
	_, err := uc.Execute(context.Background(), transaction.ListTransactionsInput{DateFrom: &from, DateTo: &to})

	assert.Equal(t, domainerror.ErrCodeInvalidDateRange, transactionErrorCode(t, err))
}

func TestUpdateTransactionUseCase(t *testing.T) {
	db := testutil.NewDB(t)
	seed := testutil.NewSeeder(t, db)
	food := seed.Category("Comida", entity.CategoryTypeExpense)
	fun := seed.Category("Ocio", entity.CategoryTypeExpense)
	existing := seed.Transaction("Cine", 30000, entity.TransactionTypeExpense, food, testutil.Date(2024, time.March, 5))

	transactionRepo := persistence.NewTransactionRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	uc := transaction.NewUpdateTransactionUseCase(transactionRepo, categoryRepo)
	ctx := context.Background()

	amount := decimal.NewFromInt(35000)
	out, err := uc.Execute(ctx, transaction.UpdateTransactionInput{
		TransactionID: existing.ID,
		Amount:        &amount,
		CategoryID:    &fun.ID,
	})
	require.NoError(t, err)
	assert.True(t, out.Transaction.Transaction.Amount.Equal(amount))
	assert.Equal(t, "Ocio", out.Transaction.Category.Name)

	out, err = uc.Execute(ctx, transaction.UpdateTransactionInput{
		TransactionID: existing.ID,
		ClearCategory: true,
	})
	require.NoError(t, err)
	assert.Nil(t, out.Transaction.Transaction.CategoryID)
	assert.Nil(t, out.Transaction.Category)

	got, err := transaction.NewGetTransactionUseCase(transactionRepo, categoryRepo).Execute(ctx, transaction.GetTransactionInput{
		TransactionID: existing.ID,
	})
	require.NoError(t, err)
	assert.Nil(t, got.Transaction.Transaction.CategoryID)
	assert.True(t, got.Transaction.Transaction.Amount.Equal(amount))

	_, err = uc.Execute(ctx, transaction.UpdateTransactionInput{TransactionID: uuid.New()})
	assert.Equal(t, domainerror.ErrCodeTransactionNotFound, transactionErrorCode(t, err))
}

func TestDeleteTransactionUseCase(t *testing.T) {
	db := testutil.NewDB(t)
	seed := testutil.NewSeeder(t, db)
	existing := seed.Transaction("Cine", 30000, entity.TransactionTypeExpense, nil, testutil.Date(2024, time.March, 5))

	uc := transaction.NewDeleteTransactionUseCase(persistence.NewTransactionRepository(db))
	ctx := context.Background()

	out, err := uc.Execute(ctx, transaction.DeleteTransactionInput{TransactionID: existing.ID})
	require.NoError(t, err)
	assert.True(t, out.Success)

	_, err = uc.Execute(ctx, transaction.DeleteTransactionInput{TransactionID: existing.ID})
	assert.Equal(t, domainerror.ErrCodeTransactionNotFound, transactionErrorCode(t, err))
}
