// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finance-tracker/young-finance/internal/integration/entrypoint/dto"
)

// respondInternalError logs the failure and hides its details from the client.
func respondInternalError(ctx *gin.Context, err error, message string) {
	slog.ErrorContext(ctx.Request.Context(), message,
		slog.String("method", ctx.Request.Method),
		slog.String("path", ctx.FullPath()),
		slog.Any("error", err),
	)
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// respondBindingError answers a request whose body failed validation.
func respondBindingError(ctx *gin.Context, code string, err error) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error:   "Invalid request body",
		Code:    code,
		Details: err.Error(),
	})
}

// parseIDParam reads the :id path parameter as a UUID.
func parseIDParam(ctx *gin.Context) (uuid.UUID, error) {
	return uuid.Parse(ctx.Param("id"))
}

// queryInt reads an optional integer query parameter.
func queryInt(ctx *gin.Context, key string) (*int, error) {
	raw := ctx.Query(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
