// Package lesson contains the read-only lesson use cases.
package lesson

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/young-finance/internal/application/adapter"
	"github.com/finance-tracker/young-finance/internal/domain/entity"
	domainerror "github.com/finance-tracker/young-finance/internal/domain/error"
)

// GetLessonInput represents the input for fetching a lesson.
type GetLessonInput struct {
	LessonID uuid.UUID
}

// GetLessonOutput represents the output of fetching a lesson.
type GetLessonOutput struct {
	Lesson *entity.Lesson
}

// GetLessonUseCase fetches one active lesson.
type GetLessonUseCase struct {
	lessonRepo adapter.LessonRepository
}

// NewGetLessonUseCase creates a new GetLessonUseCase instance.
func NewGetLessonUseCase(lessonRepo adapter.LessonRepository) *GetLessonUseCase {
	return &GetLessonUseCase{
		lessonRepo: lessonRepo,
	}
}

// Execute retrieves the lesson. Inactive lessons are reported as not found.
func (uc *GetLessonUseCase) Execute(ctx context.Context, input GetLessonInput) (*GetLessonOutput, error) {
	lesson, err := uc.lessonRepo.FindActiveByID(ctx, input.LessonID)
	if err != nil {
		if errors.Is(err, domainerror.ErrLessonNotFound) {
			return nil, domainerror.NewLessonError(
				domainerror.ErrCodeLessonNotFound,
				"lesson not found",
				domainerror.ErrLessonNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find lesson: %w", err)
	}

	return &GetLessonOutput{
		Lesson: lesson,
	}, nil
}
