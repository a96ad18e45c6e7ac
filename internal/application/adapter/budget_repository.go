// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/young-finance/internal/domain/entity"
)

// BudgetFilter defines filter options for listing budgets.
type BudgetFilter struct {
	Month *int
	Year  *int
}

// BudgetRepository defines the interface for budget persistence operations.
type BudgetRepository interface {
	// Create creates a new budget. A duplicate category/period returns domainerror.ErrBudgetAlreadyExists.
	Create(ctx context.Context, budget *entity.Budget) error

	// FindByID retrieves a budget by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Budget, error)

	// FindAll retrieves budgets ordered by period (newest first) and category name.
	FindAll(ctx context.Context, filter BudgetFilter) ([]*entity.Budget, error)

	// ExistsByCategoryAndPeriod checks whether another budget already covers the category and period.
	ExistsByCategoryAndPeriod(ctx context.Context, categoryID uuid.UUID, month, year int, excludeID *uuid.UUID) (bool, error)

	// Update updates an existing budget in the database.
	Update(ctx context.Context, budget *entity.Budget) error

	// Delete removes a budget from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// GetSpent sums expense transactions of a category in [startDate, endDate).
	GetSpent(ctx context.Context, categoryID uuid.UUID, startDate, endDate time.Time) (decimal.Decimal, error)
}
