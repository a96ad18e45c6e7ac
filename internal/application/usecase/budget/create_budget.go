// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/young-finance/internal/application/adapter"
	"github.com/finance-tracker/young-finance/internal/domain/entity"
	domainerror "github.com/finance-tracker/young-finance/internal/domain/error"
)

// CreateBudgetInput represents the input for budget creation.
type CreateBudgetInput struct {
	Name        string // Optional, defaults to the category name
	CategoryID  uuid.UUID
	LimitAmount decimal.Decimal
	Month       int
	Year        int
}

// CreateBudgetOutput represents the output of budget creation.
type CreateBudgetOutput struct {
	Budget *entity.BudgetWithSpending
}

// CreateBudgetUseCase handles budget creation logic.
type CreateBudgetUseCase struct {
	budgetRepo   adapter.BudgetRepository
	categoryRepo adapter.CategoryRepository
}

// NewCreateBudgetUseCase creates a new CreateBudgetUseCase instance.
func NewCreateBudgetUseCase(
	budgetRepo adapter.BudgetRepository,
	categoryRepo adapter.CategoryRepository,
) *CreateBudgetUseCase {
	return &CreateBudgetUseCase{
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the budget creation.
func (uc *CreateBudgetUseCase) Execute(ctx context.Context, input CreateBudgetInput) (*CreateBudgetOutput, error) {
	if err := validateLimit(input.LimitAmount); err != nil {
		return nil, err
	}

	period, err := validatePeriod(input.Month, input.Year)
	if err != nil {
		return nil, err
	}

	category, err := findExpenseCategory(ctx, uc.categoryRepo, input.CategoryID)
	if err != nil {
		return nil, err
	}

	if err := ensureUnique(ctx, uc.budgetRepo, input.CategoryID, period, nil); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = category.Name
	}

	budget := entity.NewBudget(name, input.CategoryID, input.LimitAmount, input.Month, input.Year)

	if err := uc.budgetRepo.Create(ctx, budget); err != nil {
		// Lost a race against a concurrent create for the same period
		if errors.Is(err, domainerror.ErrBudgetAlreadyExists) {
			return nil, conflictError()
		}
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	view, err := withSpending(ctx, uc.budgetRepo, category, budget)
	if err != nil {
		return nil, err
	}

	return &CreateBudgetOutput{
		Budget: view,
	}, nil
}
