package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"traso/internal/infrastructure/storage/postgres"
)

// HealthHandler handles liveness and readiness probes.
type HealthHandler struct {
	pool    *postgres.Pool
	version string
}

// NewHealthHandler creates a health handler.
func NewHealthHandler(pool *postgres.Pool, version string) *HealthHandler {
	return &HealthHandler{pool: pool, version: version}
}

// RegisterRoutes registers probe routes.
func (h *HealthHandler) RegisterRoutes(g *gin.RouterGroup) {
	g.GET("/live", h.Live)
	g.GET("/ready", h.Ready)
}

// Live handles GET /health/live.
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": h.version,
	})
}

// Ready handles GET /health/ready. Pings the database with a short deadline.
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.pool.Ping(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unavailable",
			"error":  "database unreachable",
		})
		return
	}

	stats := postgres.GetPoolStats(h.pool.Unwrap())
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"database": gin.H{
			"totalConns":    stats.TotalConns,
			"acquiredConns": stats.AcquiredConns,
			"idleConns":     stats.IdleConns,
		},
	})
}
