package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/ticket-dashboard/internal/api/dto"
	"github.com/spec-kit/ticket-dashboard/internal/store"
	apperrors "github.com/spec-kit/ticket-dashboard/pkg/util"
)

// TeamHandler exposes the assignee roster.
type TeamHandler struct {
	store *store.TicketStore
}

// NewTeamHandler constructs handler.
func NewTeamHandler(ticketStore *store.TicketStore) *TeamHandler {
	return &TeamHandler{store: ticketStore}
}

// List GET /team-members.
func (h *TeamHandler) List(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.store.TeamMembers()})
}

// UpdateStatus PUT /team-members/:id/status.
func (h *TeamHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateMemberStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	if !h.store.UpdateMemberStatus(id, *req.Online) {
		return apperrors.NewNotFound("team member", map[string]any{"id": id})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
