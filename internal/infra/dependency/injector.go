// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/finance-tracker/young-finance/config"
	"github.com/finance-tracker/young-finance/internal/application/adapter"
	"github.com/finance-tracker/young-finance/internal/application/usecase/analytics"
	"github.com/finance-tracker/young-finance/internal/application/usecase/budget"
	"github.com/finance-tracker/young-finance/internal/application/usecase/category"
	"github.com/finance-tracker/young-finance/internal/application/usecase/goal"
	"github.com/finance-tracker/young-finance/internal/application/usecase/lesson"
	"github.com/finance-tracker/young-finance/internal/application/usecase/transaction"
	"github.com/finance-tracker/young-finance/internal/infra/server/router"
	"github.com/finance-tracker/young-finance/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/young-finance/internal/integration/entrypoint/middleware"
	"github.com/finance-tracker/young-finance/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// Options carries the infrastructure built outside the injector.
type Options struct {
	// Ping reports database liveness for the health endpoint.
	Ping controller.DatabasePinger
	// Publisher receives domain events. Nil disables publishing.
	Publisher adapter.EventPublisher
	// RateLimitStore backs the API rate limiter. Nil disables rate limiting.
	RateLimitStore middleware.RateLimitStore
	Logger         *slog.Logger
	// Clock overrides time.Now for date-relative responses.
	Clock func() time.Time
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, opts Options) *Injector {
	// Create repositories
	categoryRepo := persistence.NewCategoryRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	budgetRepo := persistence.NewBudgetRepository(db)
	goalRepo := persistence.NewGoalRepository(db)
	lessonRepo := persistence.NewLessonRepository(db)
	analyticsRepo := persistence.NewAnalyticsRepository(db)

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	getCategoryUseCase := category.NewGetCategoryUseCase(categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo)

	// Create transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, categoryRepo)
	getTransactionUseCase := transaction.NewGetTransactionUseCase(transactionRepo, categoryRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, categoryRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)

	// Create budget use cases
	listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRepo, categoryRepo)
	createBudgetUseCase := budget.NewCreateBudgetUseCase(budgetRepo, categoryRepo)
	getBudgetUseCase := budget.NewGetBudgetUseCase(budgetRepo, categoryRepo)
	updateBudgetUseCase := budget.NewUpdateBudgetUseCase(budgetRepo, categoryRepo)
	deleteBudgetUseCase := budget.NewDeleteBudgetUseCase(budgetRepo)

	// Create goal use cases
	listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo)
	createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo)
	getGoalUseCase := goal.NewGetGoalUseCase(goalRepo)
	updateGoalUseCase := goal.NewUpdateGoalUseCase(goalRepo)
	deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalRepo)
	addAmountUseCase := goal.NewAddAmountUseCase(goalRepo, opts.Publisher)

	// Create lesson use cases
	listLessonsUseCase := lesson.NewListLessonsUseCase(lessonRepo)
	getLessonUseCase := lesson.NewGetLessonUseCase(lessonRepo)

	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}

	// Create analytics use cases
	summaryUseCase := analytics.NewGetMonthlySummaryUseCase(analyticsRepo, analytics.WithClock(clock))
	trendsUseCase := analytics.NewGetTrendsUseCase(analyticsRepo, analytics.WithClock(clock))
	dashboardUseCase := analytics.NewGetDashboardUseCase(analyticsRepo, analytics.WithClock(clock))

	ping := opts.Ping
	if ping == nil {
		ping = func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		}
	}

	controllers := router.Controllers{
		Health: controller.NewHealthController(ping),
		Category: controller.NewCategoryController(
			listCategoriesUseCase,
			createCategoryUseCase,
			getCategoryUseCase,
			updateCategoryUseCase,
			deleteCategoryUseCase,
		),
		Transaction: controller.NewTransactionController(
			listTransactionsUseCase,
			createTransactionUseCase,
			getTransactionUseCase,
			updateTransactionUseCase,
			deleteTransactionUseCase,
		),
		Budget: controller.NewBudgetController(
			listBudgetsUseCase,
			createBudgetUseCase,
			getBudgetUseCase,
			updateBudgetUseCase,
			deleteBudgetUseCase,
		),
		Goal: controller.NewGoalController(
			listGoalsUseCase,
			createGoalUseCase,
			getGoalUseCase,
			updateGoalUseCase,
			deleteGoalUseCase,
			addAmountUseCase,
			clock,
		),
		Lesson:    controller.NewLessonController(listLessonsUseCase, getLessonUseCase),
		Analytics: controller.NewAnalyticsController(summaryUseCase, trendsUseCase, dashboardUseCase),
	}

	// Create middleware
	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled && opts.RateLimitStore != nil {
		rateLimiter = middleware.NewRateLimiter(opts.RateLimitStore, cfg.Server.IsTest())
	}

	r := router.NewRouter(controllers, rateLimiter, opts.Logger)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
