package handlers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/ticket-dashboard/internal/api/dto"
	"github.com/spec-kit/ticket-dashboard/internal/domain"
	"github.com/spec-kit/ticket-dashboard/internal/store"
	apperrors "github.com/spec-kit/ticket-dashboard/pkg/util"
)

// TicketsHandler manages ticket endpoints.
type TicketsHandler struct {
	store *store.TicketStore
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(ticketStore *store.TicketStore) *TicketsHandler {
	return &TicketsHandler{store: ticketStore}
}

// List GET /tickets. Returns the post-filter view plus load status.
func (h *TicketsHandler) List(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"data":    h.store.FilteredTickets(),
		"filters": h.store.Filters(),
		"loading": h.store.Loading(),
		"error":   h.store.Err(),
	})
}

// Create POST /tickets.
func (h *TicketsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	ticket, err := h.store.CreateTicket(store.TicketCreateInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    domain.TicketPriority(req.Priority),
		Status:      domain.TicketStatus(req.Status),
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": ticket})
}

// Update PUT /tickets/:id. Replaces the entry matching the id.
func (h *TicketsHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	ticket := domain.Ticket{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Priority:    domain.TicketPriority(req.Priority),
		Status:      domain.TicketStatus(req.Status),
	}
	if req.CreatedAt != nil {
		ticket.CreatedAt = *req.CreatedAt
	} else {
		ticket.CreatedAt = existingCreatedAt(h.store, id)
	}
	if req.AssignedToID != nil {
		member, ok := memberByID(h.store, *req.AssignedToID)
		if !ok {
			return apperrors.NewValidationError("unknown team member", map[string]any{"memberId": *req.AssignedToID})
		}
		ticket.AssignedTo = &member
	}

	if !h.store.UpdateTicket(ticket) {
		return apperrors.NewNotFound("ticket", map[string]any{"id": id})
	}
	return c.JSON(fiber.Map{"data": ticket})
}

// Delete DELETE /tickets/:id. Idempotent; a missing id is not an error.
func (h *TicketsHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	h.store.DeleteTicket(id)
	return c.SendStatus(fiber.StatusNoContent)
}

// Assign POST /tickets/:id/assign. A missing ticket or member is a silent
// no-op, mirroring the store semantics.
func (h *TicketsHandler) Assign(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req dto.AssignTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	h.store.AssignTicket(id, req.MemberID)
	return c.SendStatus(fiber.StatusNoContent)
}

// UpdateFilters PUT /tickets/filters. Merges the supplied fields.
func (h *TicketsHandler) UpdateFilters(c *fiber.Ctx) error {
	var req dto.UpdateFiltersRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	merged := h.store.SetFilters(store.FilterPatch{
		Status:     req.Status,
		Priority:   req.Priority,
		Search:     req.Search,
		AssignedTo: req.AssignedTo,
	})
	return c.JSON(fiber.Map{"data": merged})
}

func parseID(c *fiber.Ctx, param string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(param), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("invalid id", map[string]any{param: c.Params(param)})
	}
	return id, nil
}

func existingCreatedAt(s *store.TicketStore, id int64) time.Time {
	for _, t := range s.Tickets() {
		if t.ID == id {
			return t.CreatedAt
		}
	}
	return time.Time{}
}

func memberByID(s *store.TicketStore, id int64) (domain.TeamMember, bool) {
	for _, m := range s.TeamMembers() {
		if m.ID == id {
			return m, true
		}
	}
	return domain.TeamMember{}, false
}
