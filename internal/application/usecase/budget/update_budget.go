// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/young-finance/internal/application/adapter"
	"github.com/finance-tracker/young-finance/internal/domain/entity"
	domainerror "github.com/finance-tracker/young-finance/internal/domain/error"
)

// UpdateBudgetInput represents the input for budget update.
// Nil fields are left untouched.
type UpdateBudgetInput struct {
	BudgetID    uuid.UUID
	Name        *string
	CategoryID  *uuid.UUID
	LimitAmount *decimal.Decimal
	Month       *int
	Year        *int
}

// UpdateBudgetOutput represents the output of budget update.
type UpdateBudgetOutput struct {
	Budget *entity.BudgetWithSpending
}

// UpdateBudgetUseCase handles budget update logic.
type UpdateBudgetUseCase struct {
	budgetRepo   adapter.BudgetRepository
	categoryRepo adapter.CategoryRepository
}

// NewUpdateBudgetUseCase creates a new UpdateBudgetUseCase instance.
func NewUpdateBudgetUseCase(
	budgetRepo adapter.BudgetRepository,
	categoryRepo adapter.CategoryRepository,
) *UpdateBudgetUseCase {
	return &UpdateBudgetUseCase{
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the budget update.
func (uc *UpdateBudgetUseCase) Execute(ctx context.Context, input UpdateBudgetInput) (*UpdateBudgetOutput, error) {
	budget, err := findBudget(ctx, uc.budgetRepo, input.BudgetID)
	if err != nil {
		return nil, err
	}

	if input.LimitAmount != nil {
		if err := validateLimit(*input.LimitAmount); err != nil {
			return nil, err
		}
		budget.LimitAmount = *input.LimitAmount
	}

	if input.CategoryID != nil {
		budget.CategoryID = *input.CategoryID
	}
	if input.Month != nil {
		budget.Month = *input.Month
	}
	if input.Year != nil {
		budget.Year = *input.Year
	}

	period, err := validatePeriod(budget.Month, budget.Year)
	if err != nil {
		return nil, err
	}

	category, err := findExpenseCategory(ctx, uc.categoryRepo, budget.CategoryID)
	if err != nil {
		return nil, err
	}

	if input.CategoryID != nil || input.Month != nil || input.Year != nil {
		if err := ensureUnique(ctx, uc.budgetRepo, budget.CategoryID, period, &budget.ID); err != nil {
			return nil, err
		}
	}

	if input.Name != nil {
		if name := strings.TrimSpace(*input.Name); name != "" {
			budget.Name = name
		}
	}

	budget.UpdatedAt = time.Now().UTC()

	if err := uc.budgetRepo.Update(ctx, budget); err != nil {
		if errors.Is(err, domainerror.ErrBudgetAlreadyExists) {
			return nil, conflictError()
		}
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}

	view, err := withSpending(ctx, uc.budgetRepo, category, budget)
	if err != nil {
		return nil, err
	}

	return &UpdateBudgetOutput{
		Budget: view,
	}, nil
}
