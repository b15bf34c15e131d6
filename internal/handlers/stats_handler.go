package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"vestuario/internal/services"
)

// StatsHandler serves the aggregated dashboard figures.
type StatsHandler struct {
	service *services.StatsService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(service *services.StatsService) *StatsHandler {
	return &StatsHandler{
		service: service,
	}
}

// RegisterRoutes registers the stats route. The caller mounts it behind the
// auth middleware.
func (h *StatsHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/stats", h.HandleSummary)
}

// HandleSummary returns the dashboard summary for the authenticated user.
func (h *StatsHandler) HandleSummary(c *fiber.Ctx) error {
	stats, err := h.service.Summary(currentUserID(c))
	if err != nil {
		log.Printf("Error computing stats summary: %v", err)
		return respondServiceError(c, err)
	}
	return c.JSON(stats)
}
