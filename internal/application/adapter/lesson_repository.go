// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/young-finance/internal/domain/entity"
)

// LessonRepository defines the read-only interface for lessons.
type LessonRepository interface {
	// FindActive retrieves active lessons ordered by their order and creation time.
	FindActive(ctx context.Context, level *entity.LessonLevel) ([]*entity.Lesson, error)

	// FindActiveByID retrieves an active lesson by its ID.
	FindActiveByID(ctx context.Context, id uuid.UUID) (*entity.Lesson, error)
}
