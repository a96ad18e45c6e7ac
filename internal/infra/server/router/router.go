// Package router sets up the HTTP routing for the application.
package router

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/young-finance/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/young-finance/internal/integration/entrypoint/dto"
	"github.com/finance-tracker/young-finance/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	categoryController    *controller.CategoryController
	transactionController *controller.TransactionController
	budgetController      *controller.BudgetController
	goalController        *controller.GoalController
	lessonController      *controller.LessonController
	analyticsController   *controller.AnalyticsController
	rateLimiter           *middleware.RateLimiter
	logger                *slog.Logger
}

// Controllers groups the HTTP handlers mounted by the router.
type Controllers struct {
	Health      *controller.HealthController
	Category    *controller.CategoryController
	Transaction *controller.TransactionController
	Budget      *controller.BudgetController
	Goal        *controller.GoalController
	Lesson      *controller.LessonController
	Analytics   *controller.AnalyticsController
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(controllers Controllers, rateLimiter *middleware.RateLimiter, logger *slog.Logger) *Router {
	return &Router{
		healthController:      controllers.Health,
		categoryController:    controllers.Category,
		transactionController: controllers.Transaction,
		budgetController:      controllers.Budget,
		goalController:        controllers.Goal,
		lessonController:      controllers.Lesson,
		analyticsController:   controllers.Analytics,
		rateLimiter:           rateLimiter,
		logger:                logger,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	switch environment {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test", "e2e":
		gin.SetMode(gin.TestMode)
	}

	dto.RegisterValidators()

	r.engine = gin.New()
	r.engine.Use(gin.Recovery(), middleware.RequestLogger(r.logger))

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	if r.rateLimiter != nil {
		v1.Use(r.rateLimiter.Middleware())
	}

	if r.categoryController != nil {
		categories := v1.Group("/categories")
		{
			categories.GET("", r.categoryController.List)
			categories.POST("", r.categoryController.Create)
			categories.GET("/:id", r.categoryController.Get)
			categories.PATCH("/:id", r.categoryController.Update)
			categories.DELETE("/:id", r.categoryController.Delete)
		}
	}

	if r.transactionController != nil {
		transactions := v1.Group("/transactions")
		{
			transactions.GET("", r.transactionController.List)
			transactions.POST("", r.transactionController.Create)
			if r.analyticsController != nil {
				transactions.GET("/summary", r.analyticsController.Summary)
				transactions.GET("/trends", r.analyticsController.Trends)
			}
			transactions.GET("/:id", r.transactionController.Get)
			transactions.PATCH("/:id", r.transactionController.Update)
			transactions.DELETE("/:id", r.transactionController.Delete)
		}
	}

	if r.budgetController != nil {
		budgets := v1.Group("/budgets")
		{
			budgets.GET("", r.budgetController.List)
			budgets.POST("", r.budgetController.Create)
			budgets.GET("/:id", r.budgetController.Get)
			budgets.PATCH("/:id", r.budgetController.Update)
			budgets.DELETE("/:id", r.budgetController.Delete)
		}
	}

	if r.goalController != nil {
		goals := v1.Group("/goals")
		{
			goals.GET("", r.goalController.List)
			goals.POST("", r.goalController.Create)
			goals.GET("/:id", r.goalController.Get)
			goals.PATCH("/:id", r.goalController.Update)
			goals.DELETE("/:id", r.goalController.Delete)
			goals.POST("/:id/add_amount", r.goalController.AddAmount)
		}
	}

	if r.lessonController != nil {
		lessons := v1.Group("/lessons")
		{
			lessons.GET("", r.lessonController.List)
			lessons.GET("/:id", r.lessonController.Get)
		}
	}

	if r.analyticsController != nil {
		v1.GET("/analytics/dashboard", r.analyticsController.Dashboard)
	}
}
