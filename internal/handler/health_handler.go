package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// ReadinessChecker reports whether document analysis can run.
type ReadinessChecker interface {
	Ready() bool
}

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	db         Pinger
	extraction ReadinessChecker
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(db Pinger, extraction ReadinessChecker) *HealthHandler {
	return &HealthHandler{db: db, extraction: extraction}
}

// Liveness handles GET /healthz
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles GET /readyz. A missing completion credential is
// reported but does not make the server unready.
// @Summary Readiness probe
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readyz [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	completion := "ok"
	if h.extraction == nil || !h.extraction.Ready() {
		completion = "not_configured"
	}

	if h.db != nil {
		if err := h.db.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":     "unavailable",
				"error":      "database not reachable",
				"completion": completion,
			})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "completion": completion})
}
