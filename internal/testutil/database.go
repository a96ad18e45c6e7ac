// Package testutil provides test helpers shared by repository, use case and HTTP tests.
package testutil

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finance-tracker/young-finance/internal/domain/entity"
	"github.com/finance-tracker/young-finance/internal/integration/persistence/model"
)

// NewDB opens an isolated in-memory SQLite database with the full schema migrated.
// The database is closed when the test ends.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:test_%s?mode=memory&cache=shared", strings.ReplaceAll(uuid.NewString(), "-", ""))

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err, "failed to open test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps the in-memory database alive and serializes writers
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(model.All()...), "failed to migrate test database")

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return db
}

// Date returns midnight UTC of the given day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Seeder inserts fixtures directly through gorm, bypassing the use cases.
type Seeder struct {
	t  testing.TB
	db *gorm.DB
}

// NewSeeder creates a Seeder for db.
func NewSeeder(t testing.TB, db *gorm.DB) *Seeder {
	return &Seeder{t: t, db: db}
}

// Category inserts a category.
func (s *Seeder) Category(name string, categoryType entity.CategoryType) *entity.Category {
	s.t.Helper()
	category := entity.NewCategory(name, "", categoryType, "", "")
	require.NoError(s.t, s.db.Create(model.CategoryFromEntity(category)).Error)
	return category
}

// Transaction inserts a transaction.
func (s *Seeder) Transaction(
	description string,
	amount int64,
	transactionType entity.TransactionType,
	category *entity.Category,
	date time.Time,
) *entity.Transaction {
	s.t.Helper()
	var categoryID *uuid.UUID
	if category != nil {
		categoryID = &category.ID
	}
	transaction := entity.NewTransaction(description, decimal.NewFromInt(amount), transactionType, categoryID, date, "")
	require.NoError(s.t, s.db.Omit("Category").Create(model.TransactionFromEntity(transaction)).Error)
	return transaction
}

// Budget inserts a budget.
func (s *Seeder) Budget(category *entity.Category, limit int64, month, year int) *entity.Budget {
	s.t.Helper()
	budget := entity.NewBudget(category.Name, category.ID, decimal.NewFromInt(limit), month, year)
	require.NoError(s.t, s.db.Omit("Category").Create(model.BudgetFromEntity(budget)).Error)
	return budget
}

// Goal inserts a goal with the given saved amount and status.
func (s *Seeder) Goal(title string, target, saved int64, status entity.GoalStatus) *entity.Goal {
	s.t.Helper()
	goal := entity.NewGoal(title, "", decimal.NewFromInt(target), nil)
	goal.CurrentAmount = decimal.NewFromInt(saved)
	goal.Status = status
	require.NoError(s.t, s.db.Create(model.GoalFromEntity(goal)).Error)
	return goal
}

// Lesson inserts a lesson.
func (s *Seeder) Lesson(title string, level entity.LessonLevel, order int, active bool) *entity.Lesson {
	s.t.Helper()
	now := time.Now().UTC()
	lesson := &entity.Lesson{
		ID:              uuid.New(),
		Title:           title,
		Content:         title + " content",
		Level:           level,
		DurationMinutes: entity.DefaultLessonDuration,
		Order:           order,
		Active:          active,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	require.NoError(s.t, s.db.Create(model.LessonFromEntity(lesson)).Error)
	return lesson
}
