package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

const probeTimeout = 3 * time.Second

// HealthHandler serves the liveness and readiness probes. Liveness answers
// immediately; readiness pings MongoDB and Redis first.
type HealthHandler struct {
	mongo *mongo.Database
	redis *redis.Client
}

func NewHealthHandler(db *mongo.Database, rdb *redis.Client) *HealthHandler {
	return &HealthHandler{mongo: db, redis: rdb}
}

// Liveness handles GET /health.
func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

type probeResult struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Readiness handles GET /health/ready.
func (h *HealthHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), probeTimeout)
	defer cancel()

	deps := map[string]probeResult{
		"mongodb": h.probeMongo(ctx),
		"redis":   h.probeRedis(ctx),
	}

	status, code := "ok", http.StatusOK
	for _, dep := range deps {
		if dep.Status != "ok" {
			status, code = "degraded", http.StatusServiceUnavailable
			break
		}
	}

	return c.JSON(code, map[string]any{
		"status":       status,
		"dependencies": deps,
	})
}

func (h *HealthHandler) probeMongo(ctx context.Context) probeResult {
	if err := h.mongo.Client().Ping(ctx, nil); err != nil {
		return probeResult{Status: "unhealthy", Error: err.Error()}
	}
	return probeResult{Status: "ok"}
}

func (h *HealthHandler) probeRedis(ctx context.Context) probeResult {
	if err := h.redis.Ping(ctx).Err(); err != nil {
		return probeResult{Status: "unhealthy", Error: err.Error()}
	}
	return probeResult{Status: "ok"}
}
