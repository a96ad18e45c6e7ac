package client

import (
	"github.com/finance-tracker/young-finance/internal/integration/entrypoint/dto"
)

// Response contracts. They share their shape with the server DTOs so both
// ends of the wire change together.
type (
	Category        = dto.CategoryResponse
	CategoryList    = dto.CategoryListResponse
	Transaction     = dto.TransactionResponse
	TransactionList = dto.TransactionListResponse
	Budget          = dto.BudgetResponse
	BudgetList      = dto.BudgetListResponse
	Goal            = dto.GoalResponse
	GoalList        = dto.GoalListResponse
	AddAmountResult = dto.AddAmountResponse
	Lesson          = dto.LessonResponse
	LessonList      = dto.LessonListResponse
	MonthlySummary  = dto.MonthlySummaryResponse
	CategoryTotal   = dto.CategoryTotalResponse
	Trends          = dto.TrendsResponse
	TrendPoint      = dto.TrendPointResponse
	Dashboard       = dto.DashboardResponse
	TopCategory     = dto.TopCategoryResponse
	ErrorBody       = dto.ErrorResponse
)

// Request contracts.
type (
	NewCategory    = dto.CreateCategoryRequest
	NewTransaction = dto.CreateTransactionRequest
	NewBudget      = dto.CreateBudgetRequest
	NewGoal        = dto.CreateGoalRequest
)

// Health is the body of GET /health.
type Health struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Timestamp string `json:"timestamp"`
}

// TransactionFilter narrows GET /transactions. Empty fields are not sent.
type TransactionFilter struct {
	Type       string
	CategoryID string
	DateFrom   string
	DateTo     string
}
