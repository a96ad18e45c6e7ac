// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finance-tracker/young-finance/internal/application/adapter"
	"github.com/finance-tracker/young-finance/internal/domain/entity"
	domainerror "github.com/finance-tracker/young-finance/internal/domain/error"
	"github.com/finance-tracker/young-finance/internal/integration/persistence/model"
)

// budgetRepository implements the adapter.BudgetRepository interface.
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository instance.
func NewBudgetRepository(db *gorm.DB) adapter.BudgetRepository {
	return &budgetRepository{
		db: db,
	}
}

// Create creates a new budget in the database.
func (r *budgetRepository) Create(ctx context.Context, budget *entity.Budget) error {
	budgetModel := model.BudgetFromEntity(budget)
	result := r.db.WithContext(ctx).Omit("Category").Create(budgetModel)
	if result.Error != nil {
		if isDuplicateKey(result.Error) {
			return domainerror.ErrBudgetAlreadyExists
		}
		return result.Error
	}
	return nil
}

// FindByID retrieves a budget by its ID.
func (r *budgetRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Budget, error) {
	var budgetModel model.BudgetModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&budgetModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBudgetNotFound
		}
		return nil, result.Error
	}
	return budgetModel.ToEntity(), nil
}

// FindAll retrieves budgets ordered by period (newest first) and category name.
func (r *budgetRepository) FindAll(ctx context.Context, filter adapter.BudgetFilter) ([]*entity.Budget, error) {
	query := r.db.WithContext(ctx).
		Model(&model.BudgetModel{}).
		Select("budgets.*").
		Joins("LEFT JOIN categories ON categories.id = budgets.category_id")

	if filter.Month != nil {
		query = query.Where("budgets.month = ?", *filter.Month)
	}
	if filter.Year != nil {
		query = query.Where("budgets.year = ?", *filter.Year)
	}

	var budgetModels []model.BudgetModel
	result := query.
		Order("budgets.year DESC, budgets.month DESC, categories.name ASC").
		Find(&budgetModels)
	if result.Error != nil {
		return nil, result.Error
	}

	budgets := make([]*entity.Budget, len(budgetModels))
	for i := range budgetModels {
		budgets[i] = budgetModels[i].ToEntity()
	}
	return budgets, nil
}

// ExistsByCategoryAndPeriod checks whether a budget other than excludeID covers the category and period.
func (r *budgetRepository) ExistsByCategoryAndPeriod(
	ctx context.Context,
	categoryID uuid.UUID,
	month, year int,
	excludeID *uuid.UUID,
) (bool, error) {
	query := r.db.WithContext(ctx).
		Model(&model.BudgetModel{}).
		Where("category_id = ? AND month = ? AND year = ?", categoryID, month, year)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Update updates an existing budget in the database.
func (r *budgetRepository) Update(ctx context.Context, budget *entity.Budget) error {
	budgetModel := model.BudgetFromEntity(budget)
	result := r.db.WithContext(ctx).Omit("Category").Save(budgetModel)
	if result.Error != nil {
		if isDuplicateKey(result.Error) {
			return domainerror.ErrBudgetAlreadyExists
		}
		return result.Error
	}
	return nil
}

// Delete removes a budget from the database.
func (r *budgetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.BudgetModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrBudgetNotFound
	}
	return nil
}

// GetSpent sums the expense transactions of a category in [startDate, endDate).
func (r *budgetRepository) GetSpent(ctx context.Context, categoryID uuid.UUID, startDate, endDate time.Time) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal `gorm:"column:total"`
	}

	query := `
		SELECT COALESCE(SUM(amount), 0) AS total
		FROM transactions
		WHERE category_id = ?
			AND type = 'expense'
			AND date >= ?
			AND date < ?
			AND deleted_at IS NULL
	`

	if err := r.db.WithContext(ctx).Raw(query, categoryID, startDate, endDate).Scan(&result).Error; err != nil {
		return decimal.Zero, err
	}
	return result.Total, nil
}

// isDuplicateKey reports whether err is a unique constraint violation.
// Postgres errors are translated by gorm; sqlite reports them as plain text.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
