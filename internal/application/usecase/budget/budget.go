// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/young-finance/internal/application/adapter"
	"github.com/finance-tracker/young-finance/internal/domain/entity"
	domainerror "github.com/finance-tracker/young-finance/internal/domain/error"
	"github.com/finance-tracker/young-finance/internal/domain/valueobject"
)

// findBudget loads a budget and translates a missing row into a BudgetError.
func findBudget(ctx context.Context, repo adapter.BudgetRepository, id uuid.UUID) (*entity.Budget, error) {
	budget, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrBudgetNotFound) {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeBudgetNotFound,
				"budget not found",
				domainerror.ErrBudgetNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find budget: %w", err)
	}
	return budget, nil
}

// findExpenseCategory loads the budget category and checks that it is an expense category.
func findExpenseCategory(ctx context.Context, repo adapter.CategoryRepository, id uuid.UUID) (*entity.Category, error) {
	category, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeBudgetCategoryNotFound,
				"category not found",
				domainerror.ErrBudgetCategoryNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	if category.Type != entity.CategoryTypeExpense {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetCategoryNotExpense,
			"budgets can only be set on expense categories",
			domainerror.ErrBudgetCategoryNotExpense,
		)
	}
	return category, nil
}

func validateLimit(limit decimal.Decimal) error {
	if limit.IsNegative() {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetLimit,
			"limit_amount must not be negative",
			domainerror.ErrInvalidBudgetLimit,
		)
	}
	if !entity.FitsMoneyScale(limit) {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetLimit,
			"limit_amount must have at most two decimals",
			domainerror.ErrInvalidBudgetLimit,
		)
	}
	return nil
}

func validatePeriod(month, year int) (valueobject.Period, error) {
	period, err := valueobject.NewPeriod(month, year)
	if err != nil {
		return valueobject.Period{}, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetPeriod,
			err.Error(),
			domainerror.ErrInvalidBudgetPeriod,
		)
	}
	return period, nil
}

// ensureUnique rejects a second budget for the same category and period.
func ensureUnique(ctx context.Context, repo adapter.BudgetRepository, categoryID uuid.UUID, period valueobject.Period, excludeID *uuid.UUID) error {
	exists, err := repo.ExistsByCategoryAndPeriod(ctx, categoryID, int(period.Month), period.Year, excludeID)
	if err != nil {
		return fmt.Errorf("failed to check existing budget: %w", err)
	}
	if exists {
		return conflictError()
	}
	return nil
}

func conflictError() error {
	return domainerror.NewBudgetError(
		domainerror.ErrCodeBudgetAlreadyExists,
		"a budget already exists for this category and period",
		domainerror.ErrBudgetAlreadyExists,
	)
}

// withSpending computes the spending view of a budget for its own period.
func withSpending(
	ctx context.Context,
	budgetRepo adapter.BudgetRepository,
	category *entity.Category,
	budget *entity.Budget,
) (*entity.BudgetWithSpending, error) {
	period := valueobject.Period{Month: time.Month(budget.Month), Year: budget.Year}

	spent, err := budgetRepo.GetSpent(ctx, budget.CategoryID, period.Start(), period.End())
	if err != nil {
		return nil, fmt.Errorf("failed to compute budget spending: %w", err)
	}

	return &entity.BudgetWithSpending{
		Budget:   budget,
		Category: category,
		Spent:    spent,
	}, nil
}
