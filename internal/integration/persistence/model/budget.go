// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/young-finance/internal/domain/entity"
)

// BudgetModel represents the budgets table in the database.
// A category has at most one budget per month.
type BudgetModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name        string          `gorm:"type:varchar(100);not null"`
	CategoryID  uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_budgets_category_period"`
	LimitAmount decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Month       int             `gorm:"not null;uniqueIndex:idx_budgets_category_period"`
	Year        int             `gorm:"not null;uniqueIndex:idx_budgets_category_period"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`

	Category *CategoryModel `gorm:"foreignKey:CategoryID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the BudgetModel.
func (BudgetModel) TableName() string {
	return "budgets"
}

// ToEntity converts a BudgetModel to a domain Budget entity.
func (m *BudgetModel) ToEntity() *entity.Budget {
	return &entity.Budget{
		ID:          m.ID,
		Name:        m.Name,
		CategoryID:  m.CategoryID,
		LimitAmount: m.LimitAmount,
		Month:       m.Month,
		Year:        m.Year,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// BudgetFromEntity creates a BudgetModel from a domain Budget entity.
func BudgetFromEntity(budget *entity.Budget) *BudgetModel {
	return &BudgetModel{
		ID:          budget.ID,
		Name:        budget.Name,
		CategoryID:  budget.CategoryID,
		LimitAmount: budget.LimitAmount,
		Month:       budget.Month,
		Year:        budget.Year,
		CreatedAt:   budget.CreatedAt,
		UpdatedAt:   budget.UpdatedAt,
	}
}
