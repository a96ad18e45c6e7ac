package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestNewGoal_Defaults(t *testing.T) {
	goal := NewGoal("Laptop", "", dec("100000"), nil)

	assert.Equal(t, GoalStatusInProgress, goal.Status)
	assert.True(t, goal.CurrentAmount.IsZero())
	assert.Nil(t, goal.DaysRemaining(time.Now()))
}

func TestGoal_AddAmountCompletesOnce(t *testing.T) {
	goal := NewGoal("Trip", "", dec("100000"), nil)
	goal.CurrentAmount = dec("40000")

	completed := goal.AddAmount(dec("60000"))

	assert.True(t, completed)
	assert.Equal(t, GoalStatusCompleted, goal.Status)
	assert.True(t, dec("100000").Equal(goal.CurrentAmount))
	assert.True(t, dec("100").Equal(goal.PercentComplete()))
	assert.True(t, goal.Remaining().IsZero())

	completedAgain := goal.AddAmount(dec("10000"))
	assert.False(t, completedAgain, "completion is reported only on the transition")
	assert.Equal(t, GoalStatusCompleted, goal.Status)
	assert.True(t, dec("100").Equal(goal.PercentComplete()), "percent is capped at 100")
}

func TestGoal_PercentCompleteIsMonotonic(t *testing.T) {
	goal := NewGoal("Emergency fund", "", dec("300000"), nil)

	previous := goal.PercentComplete()
	for _, amount := range []string{"0", "1000", "55000.50", "0", "250000"} {
		goal.AddAmount(dec(amount))
		current := goal.PercentComplete()
		assert.True(t, current.GreaterThanOrEqual(previous), "%s < %s", current, previous)
		previous = current
	}
}

func TestGoal_PercentCompleteZeroTarget(t *testing.T) {
	goal := NewGoal("Nothing", "", decimal.Zero, nil)
	goal.CurrentAmount = dec("10")

	assert.True(t, goal.PercentComplete().IsZero())
}

func TestGoal_DaysRemaining(t *testing.T) {
	now := time.Date(2024, 3, 10, 18, 30, 0, 0, time.UTC)

	tests := []struct {
		name   string
		target time.Time
		want   int
	}{
		{name: "future date", target: time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC), want: 10},
		{name: "today", target: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), want: 0},
		{name: "past date is clamped", target: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			goal := NewGoal("Bike", "", dec("1000"), &tt.target)
			days := goal.DaysRemaining(now)
			require.NotNil(t, days)
			assert.Equal(t, tt.want, *days)
		})
	}
}

func TestGoal_CancelledNeverCompletes(t *testing.T) {
	goal := NewGoal("Old plan", "", dec("1000"), nil)
	goal.Status = GoalStatusCancelled

	assert.False(t, goal.AddAmount(dec("5000")))
	assert.Equal(t, GoalStatusCancelled, goal.Status)
}

func TestGoal_StatusAllowed(t *testing.T) {
	tests := []struct {
		name   string
		saved  string
		status GoalStatus
		want   bool
	}{
		{"complete below target", "40000", GoalStatusCompleted, false},
		{"complete at target", "100000", GoalStatusCompleted, true},
		{"reopen below target", "40000", GoalStatusInProgress, true},
		{"reopen at target", "100000", GoalStatusInProgress, false},
		{"reopen above target", "120000", GoalStatusInProgress, false},
		{"cancel below target", "0", GoalStatusCancelled, true},
		{"cancel at target", "100000", GoalStatusCancelled, true},
		{"unknown status", "0", GoalStatus("paused"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			goal := NewGoal("Trip", "", dec("100000"), nil)
			goal.CurrentAmount = dec(tt.saved)
			assert.Equal(t, tt.want, goal.StatusAllowed(tt.status))
		})
	}
}

func TestFitsMoneyScale(t *testing.T) {
	assert.True(t, FitsMoneyScale(dec("100")))
	assert.True(t, FitsMoneyScale(dec("0.01")))
	assert.True(t, FitsMoneyScale(dec("10.500")))
	assert.False(t, FitsMoneyScale(dec("0.001")))
	assert.False(t, FitsMoneyScale(dec("0.004")))
	assert.False(t, FitsMoneyScale(dec("-12.345")))
}
