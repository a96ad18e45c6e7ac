// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoalStatus represents the lifecycle status of a saving goal.
type GoalStatus string

const (
	GoalStatusInProgress GoalStatus = "in_progress"
	GoalStatusCompleted  GoalStatus = "completed"
	GoalStatusCancelled  GoalStatus = "cancelled"
)

// IsValid reports whether the status is one of the known values.
func (s GoalStatus) IsValid() bool {
	return s == GoalStatusInProgress || s == GoalStatusCompleted || s == GoalStatusCancelled
}

// Goal represents a saving goal.
type Goal struct {
	ID            uuid.UUID
	Title         string
	Description   string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	TargetDate    *time.Time
	Status        GoalStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time // Soft-delete support
}

// NewGoal creates a new Goal entity with nothing saved yet.
func NewGoal(title, description string, targetAmount decimal.Decimal, targetDate *time.Time) *Goal {
	now := time.Now().UTC()

	if targetDate != nil {
		d := TruncateToDate(*targetDate)
		targetDate = &d
	}

	return &Goal{
		ID:            uuid.New(),
		Title:         title,
		Description:   description,
		TargetAmount:  targetAmount,
		CurrentAmount: decimal.Zero,
		TargetDate:    targetDate,
		Status:        GoalStatusInProgress,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// PercentComplete returns saved/target*100 rounded to two decimals and capped at 100.
func (g *Goal) PercentComplete() decimal.Decimal {
	if !g.TargetAmount.IsPositive() {
		return decimal.Zero
	}
	percent := g.CurrentAmount.Div(g.TargetAmount).Mul(hundred).Round(2)
	return decimal.Min(hundred, percent)
}

// Remaining returns how much is still missing to reach the target.
func (g *Goal) Remaining() decimal.Decimal {
	return decimal.Max(decimal.Zero, g.TargetAmount.Sub(g.CurrentAmount))
}

// DaysRemaining returns the whole days between now and the target date, never negative.
// It returns nil when the goal has no target date.
func (g *Goal) DaysRemaining(now time.Time) *int {
	if g.TargetDate == nil {
		return nil
	}
	today := TruncateToDate(now)
	target := TruncateToDate(*g.TargetDate)

	days := int(target.Sub(today).Hours() / 24)
	if days < 0 {
		days = 0
	}
	return &days
}

// StatusAllowed reports whether the goal may be set to status given what is saved.
// A goal is completed exactly when the saved amount reaches the target, so
// completed needs current >= target and in_progress needs current < target.
// Cancelling is always allowed.
func (g *Goal) StatusAllowed(status GoalStatus) bool {
	reached := g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount)
	switch status {
	case GoalStatusCompleted:
		return reached
	case GoalStatusInProgress:
		return !reached
	default:
		return status == GoalStatusCancelled
	}
}

// AddAmount adds a contribution to the saved amount.
// It reports true only when this call moved the goal from in progress to completed.
func (g *Goal) AddAmount(amount decimal.Decimal) bool {
	g.CurrentAmount = g.CurrentAmount.Add(amount)
	g.UpdatedAt = time.Now().UTC()

	if g.Status == GoalStatusInProgress && g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount) {
		g.Status = GoalStatusCompleted
		return true
	}
	return false
}
