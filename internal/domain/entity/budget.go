// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Budget represents a monthly spending limit for one expense category.
// Only one budget may exist per category and period.
type Budget struct {
	ID          uuid.UUID
	Name        string
	CategoryID  uuid.UUID
	LimitAmount decimal.Decimal
	Month       int
	Year        int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewBudget creates a new Budget entity.
func NewBudget(name string, categoryID uuid.UUID, limitAmount decimal.Decimal, month, year int) *Budget {
	now := time.Now().UTC()

	return &Budget{
		ID:          uuid.New(),
		Name:        name,
		CategoryID:  categoryID,
		LimitAmount: limitAmount,
		Month:       month,
		Year:        year,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// PercentUsed returns spent/limit*100 rounded to two decimals, or zero when the limit is zero.
func (b *Budget) PercentUsed(spent decimal.Decimal) decimal.Decimal {
	if !b.LimitAmount.IsPositive() {
		return decimal.Zero
	}
	return spent.Div(b.LimitAmount).Mul(hundred).Round(2)
}

// Remaining returns what is left of the limit, never below zero.
func (b *Budget) Remaining(spent decimal.Decimal) decimal.Decimal {
	return decimal.Max(decimal.Zero, b.LimitAmount.Sub(spent))
}

// BudgetWithSpending is a budget together with its category and the expenses of its period.
type BudgetWithSpending struct {
	Budget   *Budget
	Category *Category
	Spent    decimal.Decimal
}

// PercentUsed returns the percentage of the limit consumed.
func (b *BudgetWithSpending) PercentUsed() decimal.Decimal {
	return b.Budget.PercentUsed(b.Spent)
}

// Remaining returns the unspent part of the limit.
func (b *BudgetWithSpending) Remaining() decimal.Decimal {
	return b.Budget.Remaining(b.Spent)
}
