// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/young-finance/internal/application/usecase/lesson"
	"github.com/finance-tracker/young-finance/internal/domain/entity"
	domainerror "github.com/finance-tracker/young-finance/internal/domain/error"
	"github.com/finance-tracker/young-finance/internal/integration/entrypoint/dto"
)

// LessonController serves the read-only lesson catalogue.
type LessonController struct {
	listUseCase *lesson.ListLessonsUseCase
	getUseCase  *lesson.GetLessonUseCase
}

// NewLessonController creates a new lesson controller instance.
func NewLessonController(listUseCase *lesson.ListLessonsUseCase, getUseCase *lesson.GetLessonUseCase) *LessonController {
	return &LessonController{
		listUseCase: listUseCase,
		getUseCase:  getUseCase,
	}
}

// List handles GET /lessons requests.
func (c *LessonController) List(ctx *gin.Context) {
	input := lesson.ListLessonsInput{}
	if level := ctx.Query("level"); level != "" {
		l := entity.LessonLevel(level)
		input.Level = &l
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleLessonError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLessonListResponse(output.Lessons))
}

// Get handles GET /lessons/:id requests.
func (c *LessonController) Get(ctx *gin.Context) {
	lessonID, err := parseIDParam(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid lesson ID format",
			Code:  string(domainerror.ErrCodeInvalidLessonIDFormat),
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), lesson.GetLessonInput{
		LessonID: lessonID,
	})
	if err != nil {
		c.handleLessonError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLessonResponse(output.Lesson))
}

func (c *LessonController) handleLessonError(ctx *gin.Context, err error) {
	var lessonErr *domainerror.LessonError
	if !errors.As(err, &lessonErr) {
		respondInternalError(ctx, err, "lesson request failed")
		return
	}

	switch lessonErr.Code {
	case domainerror.ErrCodeLessonNotFound:
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: lessonErr.Message, Code: string(lessonErr.Code)})
	case domainerror.ErrCodeInvalidLessonLevel, domainerror.ErrCodeInvalidLessonIDFormat:
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: lessonErr.Message, Code: string(lessonErr.Code)})
	default:
		respondInternalError(ctx, err, "lesson request failed")
	}
}
