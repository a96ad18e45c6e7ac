// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/young-finance/internal/application/usecase/analytics"
	domainerror "github.com/finance-tracker/young-finance/internal/domain/error"
	"github.com/finance-tracker/young-finance/internal/integration/entrypoint/dto"
)

// AnalyticsController serves the monthly summary, trends and dashboard views.
type AnalyticsController struct {
	summaryUseCase   *analytics.GetMonthlySummaryUseCase
	trendsUseCase    *analytics.GetTrendsUseCase
	dashboardUseCase *analytics.GetDashboardUseCase
}

// NewAnalyticsController creates a new analytics controller instance.
func NewAnalyticsController(
	summaryUseCase *analytics.GetMonthlySummaryUseCase,
	trendsUseCase *analytics.GetTrendsUseCase,
	dashboardUseCase *analytics.GetDashboardUseCase,
) *AnalyticsController {
	return &AnalyticsController{
		summaryUseCase:   summaryUseCase,
		trendsUseCase:    trendsUseCase,
		dashboardUseCase: dashboardUseCase,
	}
}

// Summary handles GET /transactions/summary requests.
// Month and year default to the current month.
func (c *AnalyticsController) Summary(ctx *gin.Context) {
	month, err := queryInt(ctx, "month")
	if err != nil {
		c.badRequest(ctx, domainerror.ErrCodeInvalidSummaryPeriod, domainerror.ErrInvalidSummaryPeriod)
		return
	}
	year, err := queryInt(ctx, "year")
	if err != nil {
		c.badRequest(ctx, domainerror.ErrCodeInvalidSummaryPeriod, domainerror.ErrInvalidSummaryPeriod)
		return
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), analytics.GetMonthlySummaryInput{
		Month: month,
		Year:  year,
	})
	if err != nil {
		c.handleAnalyticsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthlySummaryResponse(output))
}

// Trends handles GET /transactions/trends requests.
func (c *AnalyticsController) Trends(ctx *gin.Context) {
	periods, err := queryInt(ctx, "periods")
	if err != nil {
		c.badRequest(ctx, domainerror.ErrCodeInvalidTrendPeriods, domainerror.ErrInvalidTrendPeriods)
		return
	}

	output, err := c.trendsUseCase.Execute(ctx.Request.Context(), analytics.GetTrendsInput{
		Periods: periods,
	})
	if err != nil {
		c.handleAnalyticsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTrendsResponse(output))
}

// Dashboard handles GET /analytics/dashboard requests.
func (c *AnalyticsController) Dashboard(ctx *gin.Context) {
	output, err := c.dashboardUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleAnalyticsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardResponse(output))
}

func (c *AnalyticsController) badRequest(ctx *gin.Context, code domainerror.AnalyticsErrorCode, err error) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: err.Error(),
		Code:  string(code),
	})
}

func (c *AnalyticsController) handleAnalyticsError(ctx *gin.Context, err error) {
	var anaErr *domainerror.AnalyticsError
	if errors.As(err, &anaErr) && anaErr.Code != domainerror.ErrCodeAnalyticsInternalError {
		c.badRequest(ctx, anaErr.Code, errors.New(anaErr.Message))
		return
	}

	respondInternalError(ctx, err, "analytics request failed")
}
