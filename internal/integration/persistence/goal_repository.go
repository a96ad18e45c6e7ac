// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/finance-tracker/young-finance/internal/application/adapter"
	"github.com/finance-tracker/young-finance/internal/domain/entity"
	domainerror "github.com/finance-tracker/young-finance/internal/domain/error"
	"github.com/finance-tracker/young-finance/internal/integration/persistence/model"
)

// goalRepository implements the adapter.GoalRepository interface.
type goalRepository struct {
	db *gorm.DB
}

// NewGoalRepository creates a new goal repository instance.
func NewGoalRepository(db *gorm.DB) adapter.GoalRepository {
	return &goalRepository{
		db: db,
	}
}

// Create creates a new goal in the database.
func (r *goalRepository) Create(ctx context.Context, goal *entity.Goal) error {
	goalModel := model.GoalFromEntity(goal)
	result := r.db.WithContext(ctx).Create(goalModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a goal by its ID (excludes soft-deleted).
func (r *goalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error) {
	var goalModel model.GoalModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&goalModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrGoalNotFound
		}
		return nil, result.Error
	}
	return goalModel.ToEntity(), nil
}

// FindAll retrieves goals newest first, optionally filtered by status.
func (r *goalRepository) FindAll(ctx context.Context, status *entity.GoalStatus) ([]*entity.Goal, error) {
	query := r.db.WithContext(ctx).Model(&model.GoalModel{})
	if status != nil {
		query = query.Where("status = ?", string(*status))
	}

	var goalModels []model.GoalModel
	result := query.Order("created_at DESC").Find(&goalModels)
	if result.Error != nil {
		return nil, result.Error
	}

	goals := make([]*entity.Goal, len(goalModels))
	for i := range goalModels {
		goals[i] = goalModels[i].ToEntity()
	}
	return goals, nil
}

// Update applies a PATCH under a row lock and writes only the editable columns.
func (r *goalRepository) Update(ctx context.Context, id uuid.UUID, apply func(goal *entity.Goal) error) (*entity.Goal, error) {
	var goal *entity.Goal

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		locked, err := lockGoal(tx, id)
		if err != nil {
			return err
		}

		goal = locked
		if err := apply(goal); err != nil {
			return err
		}
		goal.UpdatedAt = time.Now().UTC()

		return tx.Model(&model.GoalModel{}).
			Where("id = ?", id).
			Updates(map[string]any{
				"title":         goal.Title,
				"description":   goal.Description,
				"target_amount": goal.TargetAmount,
				"target_date":   goal.TargetDate,
				"status":        string(goal.Status),
				"updated_at":    goal.UpdatedAt,
			}).Error
	})
	if err != nil {
		return nil, err
	}

	return goal, nil
}

// Delete soft-deletes a goal from the database.
func (r *goalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.GoalModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrGoalNotFound
	}
	return nil
}

// AddAmount locks the goal row, adds the amount and applies the completion rule in one transaction.
func (r *goalRepository) AddAmount(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (*entity.Goal, bool, error) {
	var (
		goal      *entity.Goal
		completed bool
	)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		locked, err := lockGoal(tx, id)
		if err != nil {
			return err
		}

		goal = locked
		if goal.Status == entity.GoalStatusCancelled {
			return domainerror.ErrGoalCancelled
		}

		completed = goal.AddAmount(amount)

		return tx.Model(&model.GoalModel{}).
			Where("id = ?", id).
			Updates(map[string]any{
				"current_amount": goal.CurrentAmount,
				"status":         string(goal.Status),
				"updated_at":     time.Now().UTC(),
			}).Error
	})
	if err != nil {
		return nil, false, err
	}

	return goal, completed, nil
}

// lockGoal reads the goal with SELECT ... FOR UPDATE inside tx.
func lockGoal(tx *gorm.DB, id uuid.UUID) (*entity.Goal, error) {
	var goalModel model.GoalModel
	result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&goalModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrGoalNotFound
		}
		return nil, result.Error
	}
	return goalModel.ToEntity(), nil
}
