// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// DatabasePinger reports whether the database answers.
type DatabasePinger func(ctx context.Context) error

// HealthController handles health check endpoints.
type HealthController struct {
	ping DatabasePinger
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
func NewHealthController(ping DatabasePinger) *HealthController {
	return &HealthController{
		ping: ping,
	}
}

// Check handles GET /health requests.
// The API reports ok while it serves requests; the database status is informational.
func (h *HealthController) Check(c *gin.Context) {
	dbStatus := "disconnected"
	if h.ping != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.ping(ctx); err == nil {
			dbStatus = "connected"
		}
	}

	response := HealthResponse{
		Status:    "ok",
		Database:  dbStatus,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	c.JSON(http.StatusOK, response)
}
