package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ReadinessChecker reports whether the service can answer catalog queries.
type ReadinessChecker interface {
	Loaded() bool
}

// HealthHandler serves GET /healthz.
type HealthHandler struct {
	readiness ReadinessChecker
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(readiness ReadinessChecker) *HealthHandler {
	return &HealthHandler{readiness: readiness}
}

// Health reports 200 once the catalog is loaded and 503 before that.
func (h *HealthHandler) Health(c *gin.Context) {
	if !h.readiness.Loaded() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "loading"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
