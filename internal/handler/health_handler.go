package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/eventforge/backend/internal/repository"
	"github.com/eventforge/backend/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const healthCheckTimeout = 2 * time.Second

type HealthHandler struct {
	store repository.Store
	redis *redis.Client
}

// NewHealthHandler reports on store and, when rdb is not nil, redis.
func NewHealthHandler(store repository.Store, rdb *redis.Client) *HealthHandler {
	return &HealthHandler{store: store, redis: rdb}
}

// Health always answers 200 while the process runs; dependency state is in checks.
// GET /api/health
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	checks := gin.H{"database": h.check(ctx, "database", h.store.Ping)}
	if h.redis != nil {
		checks["redis"] = h.check(ctx, "redis", func(ctx context.Context) error {
			return h.redis.Ping(ctx).Err()
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"checks": checks,
	})
}

func (h *HealthHandler) check(ctx context.Context, name string, ping func(context.Context) error) string {
	if err := ping(ctx); err != nil {
		logger.Log.Warn("Health check failed",
			zap.String("dependency", name),
			zap.Error(err),
		)
		return "unavailable"
	}
	return "ok"
}
