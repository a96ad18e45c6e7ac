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

// ListBudgetsInput represents the input for listing budgets.
type ListBudgetsInput struct {
	Month *int
	Year  *int
}

// ListBudgetsOutput represents the output of listing budgets.
type ListBudgetsOutput struct {
	Budgets []*entity.BudgetWithSpending
}

// ListBudgetsUseCase handles listing budgets with their spending.
type ListBudgetsUseCase struct {
	budgetRepo   adapter.BudgetRepository
	categoryRepo adapter.CategoryRepository
}

// NewListBudgetsUseCase creates a new ListBudgetsUseCase instance.
func NewListBudgetsUseCase(
	budgetRepo adapter.BudgetRepository,
	categoryRepo adapter.CategoryRepository,
) *ListBudgetsUseCase {
	return &ListBudgetsUseCase{
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the budget listing.
func (uc *ListBudgetsUseCase) Execute(ctx context.Context, input ListBudgetsInput) (*ListBudgetsOutput, error) {
	if input.Month != nil && (*input.Month < 1 || *input.Month > 12) {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetPeriod,
			"month must be between 1 and 12",
			domainerror.ErrInvalidBudgetPeriod,
		)
	}

	budgets, err := uc.budgetRepo.FindAll(ctx, adapter.BudgetFilter{
		Month: input.Month,
		Year:  input.Year,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	// Category lookups are shared between budgets of different periods
	categories := make(map[uuid.UUID]*entity.Category)

	views := make([]*entity.BudgetWithSpending, 0, len(budgets))
	for _, budget := range budgets {
		category, ok := categories[budget.CategoryID]
		if !ok {
			category, err = uc.categoryRepo.FindByID(ctx, budget.CategoryID)
			if err != nil && !errors.Is(err, domainerror.ErrCategoryNotFound) {
				return nil, fmt.Errorf("failed to find category: %w", err)
			}
			categories[budget.CategoryID] = category
		}

		view, err := withSpending(ctx, uc.budgetRepo, category, budget)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}

	return &ListBudgetsOutput{
		Budgets: views,
	}, nil
}
