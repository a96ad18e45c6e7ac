// Package goal contains goal-related use cases.
package goal

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

// UpdateGoalInput represents the input for goal update.
// Nil fields are left untouched. The saved amount only changes through AddAmount.
type UpdateGoalInput struct {
	GoalID          uuid.UUID
	Title           *string
	Description     *string
	TargetAmount    *decimal.Decimal
	TargetDate      *time.Time
	ClearTargetDate bool
	Status          *entity.GoalStatus
}

// UpdateGoalOutput represents the output of goal update.
type UpdateGoalOutput struct {
	Goal *entity.Goal
}

// UpdateGoalUseCase handles goal update logic.
type UpdateGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewUpdateGoalUseCase creates a new UpdateGoalUseCase instance.
func NewUpdateGoalUseCase(goalRepo adapter.GoalRepository) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the goal update.
// Input checks run first; the status rule is checked against the locked row so
// it sees contributions committed by concurrent AddAmount calls.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*UpdateGoalOutput, error) {
	var title string
	if input.Title != nil {
		title = strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeGoalTitleRequired,
				"title is required",
				domainerror.ErrGoalTitleRequired,
			)
		}
	}

	if input.TargetAmount != nil {
		if err := validateTarget(*input.TargetAmount); err != nil {
			return nil, err
		}
	}

	if input.Status != nil && !input.Status.IsValid() {
		return nil, invalidStatusError()
	}

	goal, err := uc.goalRepo.Update(ctx, input.GoalID, func(goal *entity.Goal) error {
		if input.Title != nil {
			goal.Title = title
		}
		if input.Description != nil {
			goal.Description = strings.TrimSpace(*input.Description)
		}
		if input.TargetAmount != nil {
			goal.TargetAmount = *input.TargetAmount
		}

		if input.ClearTargetDate {
			goal.TargetDate = nil
		} else if input.TargetDate != nil {
			d := entity.TruncateToDate(*input.TargetDate)
			goal.TargetDate = &d
		}

		if input.Status != nil && *input.Status != goal.Status {
			if !goal.StatusAllowed(*input.Status) {
				return statusConflictError(*input.Status)
			}
			goal.Status = *input.Status
		}
		return nil
	})
	if err != nil {
		var goalErr *domainerror.GoalError
		switch {
		case errors.As(err, &goalErr):
			return nil, err
		case errors.Is(err, domainerror.ErrGoalNotFound):
			return nil, notFoundError()
		default:
			return nil, fmt.Errorf("failed to update goal: %w", err)
		}
	}

	return &UpdateGoalOutput{
		Goal: goal,
	}, nil
}

func statusConflictError(status entity.GoalStatus) error {
	msg := "a goal can only be completed once the saved amount reaches the target"
	if status == entity.GoalStatusInProgress {
		msg = "the saved amount already reaches the target; raise target_amount to reopen the goal"
	}
	return domainerror.NewGoalError(
		domainerror.ErrCodeGoalStatusConflict,
		msg,
		domainerror.ErrGoalStatusConflict,
	)
}
