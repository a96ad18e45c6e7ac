// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/young-finance/internal/application/usecase/goal"
	"github.com/finance-tracker/young-finance/internal/domain/entity"
	domainerror "github.com/finance-tracker/young-finance/internal/domain/error"
	"github.com/finance-tracker/young-finance/internal/integration/entrypoint/dto"
)

// GoalController handles goal endpoints.
type GoalController struct {
	listUseCase      *goal.ListGoalsUseCase
	createUseCase    *goal.CreateGoalUseCase
	getUseCase       *goal.GetGoalUseCase
	updateUseCase    *goal.UpdateGoalUseCase
	deleteUseCase    *goal.DeleteGoalUseCase
	addAmountUseCase *goal.AddAmountUseCase
	now              func() time.Time
}

// NewGoalController creates a new goal controller instance.
func NewGoalController(
	listUseCase *goal.ListGoalsUseCase,
	createUseCase *goal.CreateGoalUseCase,
	getUseCase *goal.GetGoalUseCase,
	updateUseCase *goal.UpdateGoalUseCase,
	deleteUseCase *goal.DeleteGoalUseCase,
	addAmountUseCase *goal.AddAmountUseCase,
	now func() time.Time,
) *GoalController {
	return &GoalController{
		listUseCase:      listUseCase,
		createUseCase:    createUseCase,
		getUseCase:       getUseCase,
		updateUseCase:    updateUseCase,
		deleteUseCase:    deleteUseCase,
		addAmountUseCase: addAmountUseCase,
		now:              now,
	}
}

// List handles GET /goals requests, optionally filtered by status.
func (c *GoalController) List(ctx *gin.Context) {
	input := goal.ListGoalsInput{}

	if status := ctx.Query("status"); status != "" {
		s := entity.GoalStatus(status)
		input.Status = &s
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalListResponse(output.Goals, c.now()))
}

// Create handles POST /goals requests.
func (c *GoalController) Create(ctx *gin.Context) {
	var req dto.CreateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, string(domainerror.ErrCodeMissingGoalFields), err)
		return
	}

	targetDate, err := dto.ParseDate(req.TargetDate)
	if err != nil {
		respondBindingError(ctx, string(domainerror.ErrCodeMissingGoalFields), err)
		return
	}

	input := goal.CreateGoalInput{
		Title:        req.Title,
		Description:  req.Description,
		TargetAmount: req.TargetAmount,
		TargetDate:   targetDate,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToGoalResponse(output.Goal, c.now()))
}

// Get handles GET /goals/:id requests.
func (c *GoalController) Get(ctx *gin.Context) {
	goalID, err := parseIDParam(ctx)
	if err != nil {
		c.invalidID(ctx)
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), goal.GetGoalInput{
		GoalID: goalID,
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(output.Goal, c.now()))
}

// Update handles PATCH /goals/:id requests.
func (c *GoalController) Update(ctx *gin.Context) {
	goalID, err := parseIDParam(ctx)
	if err != nil {
		c.invalidID(ctx)
		return
	}

	var req dto.UpdateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, string(domainerror.ErrCodeMissingGoalFields), err)
		return
	}

	input := goal.UpdateGoalInput{
		GoalID:          goalID,
		Title:           req.Title,
		Description:     req.Description,
		TargetAmount:    req.TargetAmount,
		ClearTargetDate: req.ClearTargetDate,
	}

	if req.TargetDate != nil {
		targetDate, err := dto.ParseDate(*req.TargetDate)
		if err != nil {
			respondBindingError(ctx, string(domainerror.ErrCodeMissingGoalFields), err)
			return
		}
		input.TargetDate = targetDate
	}

	if req.Status != nil {
		s := entity.GoalStatus(*req.Status)
		input.Status = &s
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(output.Goal, c.now()))
}

// Delete handles DELETE /goals/:id requests.
func (c *GoalController) Delete(ctx *gin.Context) {
	goalID, err := parseIDParam(ctx)
	if err != nil {
		c.invalidID(ctx)
		return
	}

	_, err = c.deleteUseCase.Execute(ctx.Request.Context(), goal.DeleteGoalInput{
		GoalID: goalID,
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// AddAmount handles POST /goals/:id/add_amount requests.
func (c *GoalController) AddAmount(ctx *gin.Context) {
	goalID, err := parseIDParam(ctx)
	if err != nil {
		c.invalidID(ctx)
		return
	}

	var req dto.AddAmountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, string(domainerror.ErrCodeInvalidContribution), err)
		return
	}

	output, err := c.addAmountUseCase.Execute(ctx.Request.Context(), goal.AddAmountInput{
		GoalID: goalID,
		Amount: req.Amount,
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AddAmountResponse{
		GoalResponse: dto.ToGoalResponse(output.Goal, c.now()),
		Completed:    output.Completed,
	})
}

func (c *GoalController) invalidID(ctx *gin.Context) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: "Invalid goal ID format",
		Code:  string(domainerror.ErrCodeInvalidGoalIDFormat),
	})
}

// handleGoalError handles goal errors and returns appropriate HTTP responses.
func (c *GoalController) handleGoalError(ctx *gin.Context, err error) {
	var goalErr *domainerror.GoalError
	if errors.As(err, &goalErr) {
		statusCode := c.getStatusCodeForGoalError(goalErr.Code)
		if statusCode == http.StatusInternalServerError {
			respondInternalError(ctx, err, "goal request failed")
			return
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: goalErr.Message,
			Code:  string(goalErr.Code),
		})
		return
	}

	respondInternalError(ctx, err, "goal request failed")
}

// getStatusCodeForGoalError maps goal error codes to HTTP status codes.
func (c *GoalController) getStatusCodeForGoalError(code domainerror.GoalErrorCode) int {
	switch code {
	case domainerror.ErrCodeGoalNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidTargetAmount,
		domainerror.ErrCodeInvalidContribution,
		domainerror.ErrCodeGoalCancelled,
		domainerror.ErrCodeInvalidGoalStatus,
		domainerror.ErrCodeGoalStatusConflict,
		domainerror.ErrCodeGoalTitleRequired,
		domainerror.ErrCodeMissingGoalFields,
		domainerror.ErrCodeInvalidGoalIDFormat:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
