package handler

import (
	"go-storemap-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	service service.MapService
}

func NewDashboardHandler(s service.MapService) *DashboardHandler {
	return &DashboardHandler{service: s}
}

// GetStats returns the admin console overview counts.
// GET /api/v1/admin/stats
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.service.Stats()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(stats)
}
