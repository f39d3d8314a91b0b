package handler

import (
	"context"
	"time"

	"medmcq/internal/domain"
	"medmcq/internal/dto"
	"medmcq/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const pingTimeout = 2 * time.Second

// HealthHandler reports whether the database and the draft cache respond.
type HealthHandler struct {
	repo  domain.RecordRepository
	cache domain.Cache
}

func NewHealthHandler(repo domain.RecordRepository, cache domain.Cache) *HealthHandler {
	return &HealthHandler{repo: repo, cache: cache}
}

// Health godoc
// @Summary Health check
// @Description Pings the database and the cache. A cache outage degrades the service; a database outage fails it.
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), pingTimeout)
	defer cancel()

	resp := dto.HealthResponse{Status: "ok", Database: "up", Cache: "up"}
	status := fiber.StatusOK

	if err := h.repo.Ping(ctx); err != nil {
		logger.Get().Error("Database ping failed", zap.Error(err))
		resp.Database = "down"
		resp.Status = "unavailable"
		status = fiber.StatusServiceUnavailable
	}
	if err := h.cache.Ping(ctx); err != nil {
		logger.Get().Warn("Cache ping failed", zap.Error(err))
		resp.Cache = "down"
		if status == fiber.StatusOK {
			resp.Status = "degraded"
		}
	}

	return c.Status(status).JSON(resp)
}
