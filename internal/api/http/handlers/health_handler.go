package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/ticket-dashboard/internal/channel"
)

// HealthHandler responds to liveness and readiness probes.
type HealthHandler struct {
	serviceName string
	version     string
	channel     *channel.Channel
}

// NewHealthHandler returns a new handler instance.
func NewHealthHandler(serviceName, version string, ch *channel.Channel) *HealthHandler {
	return &HealthHandler{serviceName: serviceName, version: version, channel: ch}
}

// Live reports service liveness.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "alive",
		"service": h.serviceName,
		"version": h.version,
	})
}

// Ready reports readiness based on the realtime channel state.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	if h.channel.Connected() {
		return c.JSON(fiber.Map{
			"status":       "ready",
			"dependencies": fiber.Map{"channel": "connected"},
		})
	}

	state := "disconnected"
	if h.channel.Lost() {
		state = "lost"
	}
	return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    "DEPENDENCY_UNAVAILABLE",
			"message": "realtime channel unavailable",
			"details": fiber.Map{"channel": state},
		},
	})
}
