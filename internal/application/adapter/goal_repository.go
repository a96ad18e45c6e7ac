// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/young-finance/internal/domain/entity"
)

// GoalRepository defines the interface for goal persistence operations.
type GoalRepository interface {
	// Create creates a new goal in the database.
	Create(ctx context.Context, goal *entity.Goal) error

	// FindByID retrieves a goal by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error)

	// FindAll retrieves goals newest first, optionally filtered by status.
	FindAll(ctx context.Context, status *entity.GoalStatus) ([]*entity.Goal, error)

	// Update locks the goal, runs apply on the stored row and saves the editable fields.
	// The saved amount is never written, so a concurrent AddAmount is not lost.
	// An error from apply aborts the update and is returned unchanged.
	Update(ctx context.Context, id uuid.UUID, apply func(goal *entity.Goal) error) (*entity.Goal, error)

	// Delete removes a goal from the database (soft delete).
	Delete(ctx context.Context, id uuid.UUID) error

	// AddAmount atomically adds amount to the saved total and applies the completion rule.
	// The returned flag is true only for the call that completed the goal.
	AddAmount(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (*entity.Goal, bool, error)
}
