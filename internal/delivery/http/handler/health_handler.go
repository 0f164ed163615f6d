package handler

import (
	"context"
	"time"

	"talentmatch/internal/database"
	"talentmatch/internal/infrastructure/cache"
	"talentmatch/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct {
	db    database.DB
	redis *cache.Redis
}

func NewHealthHandler(db database.DB, redis *cache.Redis) *HealthHandler {
	return &HealthHandler{db: db, redis: redis}
}

// Check handles GET /health. The cache is optional infrastructure, so a
// failed redis ping degrades the report without failing the check.
func (h *HealthHandler) Check(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	report := map[string]string{
		"database": "ok",
		"cache":    "ok",
	}
	status := fiber.StatusOK

	if h.db == nil || h.db.Ping(ctx) != nil {
		report["database"] = "unavailable"
		status = fiber.StatusServiceUnavailable
	}
	if h.redis == nil || h.redis.Ping(ctx) != nil {
		report["cache"] = "degraded"
	}

	if status != fiber.StatusOK {
		return response.Error(c, status, "unhealthy")
	}
	return response.Success(c, status, "healthy", report)
}
