package handler

import (
	"time"

	"skillforge/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct {
	appName string
	started time.Time
}

func NewHealthHandler(appName string) *HealthHandler {
	return &HealthHandler{appName: appName, started: time.Now()}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/health", h.Liveness)
}

func (h *HealthHandler) Liveness(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{
		"app":    h.appName,
		"uptime": time.Since(h.started).Round(time.Second).String(),
	})
}
