package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/bakery/backend/internal/infrastructure/logger"
	"github.com/bakery/backend/internal/infrastructure/persistence"
	"github.com/bakery/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HealthChecker is satisfied by persistence.Database
type HealthChecker interface {
	Ping(ctx context.Context) error
	Stats() (persistence.ConnectionStats, error)
}

// HealthHandler reports service and database health
type HealthHandler struct {
	BaseHandler
	db      HealthChecker
	timeout time.Duration
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(base BaseHandler, db HealthChecker) *HealthHandler {
	return &HealthHandler{
		BaseHandler: base,
		db:          db,
		timeout:     2 * time.Second,
	}
}

// Check pings the database and reports pool usage
//
//	GET /health
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	resp := dto.HealthResponse{
		Status:   "healthy",
		Database: "ok",
		Time:     time.Now().Format(time.RFC3339),
		Pool:     h.poolStats(c),
	}

	if err := h.db.Ping(ctx); err != nil {
		logger.GetGinLogger(c).Warn("Health check failed", zap.Error(err))
		resp.Status = "unhealthy"
		resp.Database = "error"
		h.JSON(c, http.StatusServiceUnavailable, resp)
		return
	}
	h.Success(c, resp)
}

func (h *HealthHandler) poolStats(c *gin.Context) *dto.PoolStats {
	stats, err := h.db.Stats()
	if err != nil {
		logger.GetGinLogger(c).Debug("Pool stats unavailable", zap.Error(err))
		return nil
	}
	return &dto.PoolStats{
		MaxOpen:        stats.MaxOpenConnections,
		Open:           stats.OpenConnections,
		InUse:          stats.InUse,
		Idle:           stats.Idle,
		WaitCount:      stats.WaitCount,
		WaitDurationMs: stats.WaitDuration.Milliseconds(),
	}
}
