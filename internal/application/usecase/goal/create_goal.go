// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/young-finance/internal/application/adapter"
	"github.com/finance-tracker/young-finance/internal/domain/entity"
	domainerror "github.com/finance-tracker/young-finance/internal/domain/error"
)

// CreateGoalInput represents the input for goal creation.
type CreateGoalInput struct {
	Title        string
	Description  string
	TargetAmount decimal.Decimal
	TargetDate   *time.Time // Optional
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal *entity.Goal
}

// CreateGoalUseCase handles goal creation logic.
type CreateGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(goalRepo adapter.GoalRepository) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the goal creation.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalTitleRequired,
			"title is required",
			domainerror.ErrGoalTitleRequired,
		)
	}

	if err := validateTarget(input.TargetAmount); err != nil {
		return nil, err
	}

	goal := entity.NewGoal(title, strings.TrimSpace(input.Description), input.TargetAmount, input.TargetDate)

	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return &CreateGoalOutput{
		Goal: goal,
	}, nil
}

func validateTarget(target decimal.Decimal) error {
	if !target.IsPositive() {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidTargetAmount,
			"target_amount must be greater than zero",
			domainerror.ErrInvalidTargetAmount,
		)
	}
	if !entity.FitsMoneyScale(target) {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidTargetAmount,
			"target_amount must have at most two decimals",
			domainerror.ErrInvalidTargetAmount,
		)
	}
	return nil
}
