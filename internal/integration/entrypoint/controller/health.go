package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthChecker reports whether a dependency is reachable.
type HealthChecker func(ctx context.Context) bool

// HealthController handles health check endpoints.
type HealthController struct {
	dbHealthChecker    HealthChecker
	cacheHealthChecker HealthChecker
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Cache     string `json:"cache"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
// A nil cache checker reports the cache as disabled.
func NewHealthController(dbHealthChecker, cacheHealthChecker HealthChecker) *HealthController {
	return &HealthController{
		dbHealthChecker:    dbHealthChecker,
		cacheHealthChecker: cacheHealthChecker,
	}
}

// Check handles GET /health requests.
// Only the database decides the status code.
func (h *HealthController) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	response := HealthResponse{
		Status:    "ok",
		Database:  "disconnected",
		Cache:     "disabled",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	if h.dbHealthChecker != nil && h.dbHealthChecker(ctx) {
		response.Database = "connected"
	}
	if h.cacheHealthChecker != nil {
		response.Cache = "disconnected"
		if h.cacheHealthChecker(ctx) {
			response.Cache = "connected"
		}
	}

	status := http.StatusOK
	if response.Database != "connected" {
		response.Status = "degraded"
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, response)
}
