package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/ticket-dashboard/internal/api/dto"
	"github.com/spec-kit/ticket-dashboard/internal/store"
)

// DashboardHandler exposes aggregate stats and the activity feed.
type DashboardHandler struct {
	store *store.DashboardStore
}

// NewDashboardHandler constructs handler.
func NewDashboardHandler(dashboardStore *store.DashboardStore) *DashboardHandler {
	return &DashboardHandler{store: dashboardStore}
}

// Stats GET /dashboard/stats.
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"data":    dto.NewStatsResponse(h.store.Stats()),
		"loading": h.store.Loading(),
		"error":   h.store.Err(),
	})
}

// Activity GET /dashboard/activity.
func (h *DashboardHandler) Activity(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.store.RecentActivity()})
}

// Refresh POST /dashboard/refresh. Runs an on-demand stats refresh.
func (h *DashboardHandler) Refresh(c *fiber.Ctx) error {
	if err := h.store.RefreshStats(c.UserContext()); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewStatsResponse(h.store.Stats())})
}
