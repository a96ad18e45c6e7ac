// Package lesson contains the read-only lesson use cases.
package lesson

import (
	"context"
	"fmt"

	"github.com/finance-tracker/young-finance/internal/application/adapter"
	"github.com/finance-tracker/young-finance/internal/domain/entity"
	domainerror "github.com/finance-tracker/young-finance/internal/domain/error"
)

// ListLessonsInput represents the input for listing lessons.
type ListLessonsInput struct {
	Level *entity.LessonLevel // Optional
}

// ListLessonsOutput represents the output of listing lessons.
type ListLessonsOutput struct {
	Lessons []*entity.Lesson
}

// ListLessonsUseCase lists active lessons.
type ListLessonsUseCase struct {
	lessonRepo adapter.LessonRepository
}

// NewListLessonsUseCase creates a new ListLessonsUseCase instance.
func NewListLessonsUseCase(lessonRepo adapter.LessonRepository) *ListLessonsUseCase {
	return &ListLessonsUseCase{
		lessonRepo: lessonRepo,
	}
}

// Execute returns the active lessons, optionally restricted to one level.
func (uc *ListLessonsUseCase) Execute(ctx context.Context, input ListLessonsInput) (*ListLessonsOutput, error) {
	if input.Level != nil && !input.Level.IsValid() {
		return nil, domainerror.NewLessonError(
			domainerror.ErrCodeInvalidLessonLevel,
			"level must be 'basic', 'intermediate' or 'advanced'",
			domainerror.ErrInvalidLessonLevel,
		)
	}

	lessons, err := uc.lessonRepo.FindActive(ctx, input.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to list lessons: %w", err)
	}

	return &ListLessonsOutput{
		Lessons: lessons,
	}, nil
}
