package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tidespring/breeze/internal/server/http/dto"
)

// PingHandler reports service liveness.
type PingHandler struct {
	health HealthChecker
}

// NewPingHandler constructs PingHandler.
func NewPingHandler(health HealthChecker) *PingHandler {
	return &PingHandler{health: health}
}

// Ping handles GET /ping.
func (h *PingHandler) Ping(c *gin.Context) {
	if err := h.health.HealthCheck(c.Request.Context()); err != nil {
		writeError(c, http.StatusInternalServerError, dto.CodeInternal, "storage is not reachable")
		return
	}
	c.Status(http.StatusOK)
}
