// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finance-tracker/young-finance/internal/application/usecase/budget"
	domainerror "github.com/finance-tracker/young-finance/internal/domain/error"
	"github.com/finance-tracker/young-finance/internal/integration/entrypoint/dto"
)

// BudgetController handles budget endpoints.
type BudgetController struct {
	listUseCase   *budget.ListBudgetsUseCase
	createUseCase *budget.CreateBudgetUseCase
	getUseCase    *budget.GetBudgetUseCase
	updateUseCase *budget.UpdateBudgetUseCase
	deleteUseCase *budget.DeleteBudgetUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	listUseCase *budget.ListBudgetsUseCase,
	createUseCase *budget.CreateBudgetUseCase,
	getUseCase *budget.GetBudgetUseCase,
	updateUseCase *budget.UpdateBudgetUseCase,
	deleteUseCase *budget.DeleteBudgetUseCase,
) *BudgetController {
	return &BudgetController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /budgets requests, optionally filtered by month and year.
func (c *BudgetController) List(ctx *gin.Context) {
	month, err := queryInt(ctx, "month")
	if err != nil {
		c.invalidPeriod(ctx)
		return
	}
	year, err := queryInt(ctx, "year")
	if err != nil {
		c.invalidPeriod(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), budget.ListBudgetsInput{
		Month: month,
		Year:  year,
	})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetListResponse(output.Budgets))
}

// Create handles POST /budgets requests.
func (c *BudgetController) Create(ctx *gin.Context) {
	var req dto.CreateBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, string(domainerror.ErrCodeMissingBudgetFields), err)
		return
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		respondBindingError(ctx, string(domainerror.ErrCodeMissingBudgetFields), err)
		return
	}

	input := budget.CreateBudgetInput{
		Name:        req.Name,
		CategoryID:  categoryID,
		LimitAmount: *req.LimitAmount,
		Month:       req.Month,
		Year:        req.Year,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBudgetResponse(output.Budget))
}

// Get handles GET /budgets/:id requests.
func (c *BudgetController) Get(ctx *gin.Context) {
	budgetID, err := parseIDParam(ctx)
	if err != nil {
		c.invalidID(ctx)
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), budget.GetBudgetInput{
		BudgetID: budgetID,
	})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetResponse(output.Budget))
}

// Update handles PATCH /budgets/:id requests.
func (c *BudgetController) Update(ctx *gin.Context) {
	budgetID, err := parseIDParam(ctx)
	if err != nil {
		c.invalidID(ctx)
		return
	}

	var req dto.UpdateBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, string(domainerror.ErrCodeMissingBudgetFields), err)
		return
	}

	input := budget.UpdateBudgetInput{
		BudgetID:    budgetID,
		Name:        req.Name,
		LimitAmount: req.LimitAmount,
		Month:       req.Month,
		Year:        req.Year,
	}

	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			respondBindingError(ctx, string(domainerror.ErrCodeMissingBudgetFields), err)
			return
		}
		input.CategoryID = &categoryID
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetResponse(output.Budget))
}

// Delete handles DELETE /budgets/:id requests.
func (c *BudgetController) Delete(ctx *gin.Context) {
	budgetID, err := parseIDParam(ctx)
	if err != nil {
		c.invalidID(ctx)
		return
	}

	_, err = c.deleteUseCase.Execute(ctx.Request.Context(), budget.DeleteBudgetInput{
		BudgetID: budgetID,
	})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (c *BudgetController) invalidID(ctx *gin.Context) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: "Invalid budget ID format",
		Code:  string(domainerror.ErrCodeInvalidBudgetIDFormat),
	})
}

func (c *BudgetController) invalidPeriod(ctx *gin.Context) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: domainerror.ErrInvalidBudgetPeriod.Error(),
		Code:  string(domainerror.ErrCodeInvalidBudgetPeriod),
	})
}

// handleBudgetError handles budget errors and returns appropriate HTTP responses.
func (c *BudgetController) handleBudgetError(ctx *gin.Context, err error) {
	var budgetErr *domainerror.BudgetError
	if errors.As(err, &budgetErr) {
		statusCode := c.getStatusCodeForBudgetError(budgetErr.Code)
		if statusCode == http.StatusInternalServerError {
			respondInternalError(ctx, err, "budget request failed")
			return
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: budgetErr.Message,
			Code:  string(budgetErr.Code),
		})
		return
	}

	respondInternalError(ctx, err, "budget request failed")
}

// getStatusCodeForBudgetError maps budget error codes to HTTP status codes.
func (c *BudgetController) getStatusCodeForBudgetError(code domainerror.BudgetErrorCode) int {
	switch code {
	case domainerror.ErrCodeBudgetNotFound, domainerror.ErrCodeBudgetCategoryNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeBudgetAlreadyExists:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidBudgetLimit,
		domainerror.ErrCodeInvalidBudgetPeriod,
		domainerror.ErrCodeBudgetCategoryNotExpense,
		domainerror.ErrCodeMissingBudgetFields,
		domainerror.ErrCodeInvalidBudgetIDFormat:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
