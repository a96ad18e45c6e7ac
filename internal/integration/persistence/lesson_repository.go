// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-tracker/young-finance/internal/application/adapter"
	"github.com/finance-tracker/young-finance/internal/domain/entity"
	domainerror "github.com/finance-tracker/young-finance/internal/domain/error"
	"github.com/finance-tracker/young-finance/internal/integration/persistence/model"
)

// lessonRepository implements the adapter.LessonRepository interface.
type lessonRepository struct {
	db *gorm.DB
}

// NewLessonRepository creates a new lesson repository instance.
func NewLessonRepository(db *gorm.DB) adapter.LessonRepository {
	return &lessonRepository{
		db: db,
	}
}

// FindActive retrieves active lessons in reading order.
func (r *lessonRepository) FindActive(ctx context.Context, level *entity.LessonLevel) ([]*entity.Lesson, error) {
	query := r.db.WithContext(ctx).
		Model(&model.LessonModel{}).
		Where("active = ?", true)
	if level != nil {
		query = query.Where("level = ?", string(*level))
	}

	var lessonModels []model.LessonModel
	result := query.Order("sort_order ASC, created_at ASC").Find(&lessonModels)
	if result.Error != nil {
		return nil, result.Error
	}

	lessons := make([]*entity.Lesson, len(lessonModels))
	for i := range lessonModels {
		lessons[i] = lessonModels[i].ToEntity()
	}
	return lessons, nil
}

// FindActiveByID retrieves an active lesson by its ID.
func (r *lessonRepository) FindActiveByID(ctx context.Context, id uuid.UUID) (*entity.Lesson, error) {
	var lessonModel model.LessonModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND active = ?", id, true).
		First(&lessonModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrLessonNotFound
		}
		return nil, result.Error
	}
	return lessonModel.ToEntity(), nil
}
