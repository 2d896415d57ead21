package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/ticket-dashboard/internal/notify"
)

// NotificationsHandler exposes the transient toast list.
type NotificationsHandler struct {
	presenter *notify.Presenter
}

// NewNotificationsHandler constructs handler.
func NewNotificationsHandler(presenter *notify.Presenter) *NotificationsHandler {
	return &NotificationsHandler{presenter: presenter}
}

// List GET /notifications.
func (h *NotificationsHandler) List(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.presenter.Notifications()})
}

// Dismiss DELETE /notifications/:id. Starts the exit transition immediately;
// unknown ids are a no-op.
func (h *NotificationsHandler) Dismiss(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	h.presenter.Dismiss(id)
	return c.SendStatus(fiber.StatusNoContent)
}
