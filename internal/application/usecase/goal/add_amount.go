// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/young-finance/internal/application/adapter"
	"github.com/finance-tracker/young-finance/internal/domain/entity"
	domainerror "github.com/finance-tracker/young-finance/internal/domain/error"
)

// AddAmountInput represents the input for adding money to a goal.
type AddAmountInput struct {
	GoalID uuid.UUID
	Amount decimal.Decimal
}

// AddAmountOutput represents the output of adding money to a goal.
type AddAmountOutput struct {
	Goal *entity.Goal
	// Completed is true only for the contribution that reached the target.
	Completed bool
}

// GoalCompletedPayload is the body of the goal.completed event.
type GoalCompletedPayload struct {
	GoalID        uuid.UUID       `json:"goal_id"`
	Title         string          `json:"title"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
}

// AddAmountUseCase handles contributions to a saving goal.
type AddAmountUseCase struct {
	goalRepo  adapter.GoalRepository
	publisher adapter.EventPublisher
}

// NewAddAmountUseCase creates a new AddAmountUseCase instance.
func NewAddAmountUseCase(goalRepo adapter.GoalRepository, publisher adapter.EventPublisher) *AddAmountUseCase {
	return &AddAmountUseCase{
		goalRepo:  goalRepo,
		publisher: publisher,
	}
}

// Execute atomically adds the amount and publishes goal.completed on the transition.
func (uc *AddAmountUseCase) Execute(ctx context.Context, input AddAmountInput) (*AddAmountOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidContribution,
			"amount must be greater than zero",
			domainerror.ErrInvalidContribution,
		)
	}
	if !entity.FitsMoneyScale(input.Amount) {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidContribution,
			"amount must have at most two decimals",
			domainerror.ErrInvalidContribution,
		)
	}

	goal, completed, err := uc.goalRepo.AddAmount(ctx, input.GoalID, input.Amount)
	if err != nil {
		switch {
		case errors.Is(err, domainerror.ErrGoalNotFound):
			return nil, notFoundError()
		case errors.Is(err, domainerror.ErrGoalCancelled):
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeGoalCancelled,
				"cannot add money to a cancelled goal",
				domainerror.ErrGoalCancelled,
			)
		default:
			return nil, fmt.Errorf("failed to add amount to goal: %w", err)
		}
	}

	if completed {
		uc.publishCompleted(ctx, goal)
	}

	return &AddAmountOutput{
		Goal:      goal,
		Completed: completed,
	}, nil
}

// publishCompleted notifies listeners. The contribution is already committed,
// so a broker failure is logged and not returned.
func (uc *AddAmountUseCase) publishCompleted(ctx context.Context, goal *entity.Goal) {
	if uc.publisher == nil {
		return
	}

	event := adapter.DomainEvent{
		Type:       adapter.EventGoalCompleted,
		OccurredAt: time.Now().UTC(),
		Payload: GoalCompletedPayload{
			GoalID:        goal.ID,
			Title:         goal.Title,
			TargetAmount:  goal.TargetAmount,
			CurrentAmount: goal.CurrentAmount,
		},
	}

	if err := uc.publisher.Publish(ctx, event); err != nil {
		slog.WarnContext(ctx, "failed to publish goal completed event",
			"goal_id", goal.ID.String(),
			"error", err,
		)
	}
}
