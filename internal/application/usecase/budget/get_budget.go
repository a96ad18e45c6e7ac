// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/young-finance/internal/application/adapter"
	"github.com/finance-tracker/young-finance/internal/domain/entity"
	domainerror "github.com/finance-tracker/young-finance/internal/domain/error"
)

// GetBudgetInput represents the input for fetching a budget.
type GetBudgetInput struct {
	BudgetID uuid.UUID
}

// GetBudgetOutput represents the output of fetching a budget.
type GetBudgetOutput struct {
	Budget *entity.BudgetWithSpending
}

// GetBudgetUseCase handles fetching a single budget with its spending.
type GetBudgetUseCase struct {
	budgetRepo   adapter.BudgetRepository
	categoryRepo adapter.CategoryRepository
}

// NewGetBudgetUseCase creates a new GetBudgetUseCase instance.
func NewGetBudgetUseCase(
	budgetRepo adapter.BudgetRepository,
	categoryRepo adapter.CategoryRepository,
) *GetBudgetUseCase {
	return &GetBudgetUseCase{
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute retrieves the budget and computes spent, percent used and remaining.
func (uc *GetBudgetUseCase) Execute(ctx context.Context, input GetBudgetInput) (*GetBudgetOutput, error) {
	budget, err := findBudget(ctx, uc.budgetRepo, input.BudgetID)
	if err != nil {
		return nil, err
	}

	category, err := uc.categoryRepo.FindByID(ctx, budget.CategoryID)
	if err != nil && !errors.Is(err, domainerror.ErrCategoryNotFound) {
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	view, err := withSpending(ctx, uc.budgetRepo, category, budget)
	if err != nil {
		return nil, err
	}

	return &GetBudgetOutput{
		Budget: view,
	}, nil
}
