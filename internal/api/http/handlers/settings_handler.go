package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/ticket-dashboard/internal/api/dto"
	"github.com/spec-kit/ticket-dashboard/internal/store"
	apperrors "github.com/spec-kit/ticket-dashboard/pkg/util"
)

// SettingsHandler exposes theme and preference state.
type SettingsHandler struct {
	store *store.SettingsStore
}

// NewSettingsHandler constructs handler.
func NewSettingsHandler(settingsStore *store.SettingsStore) *SettingsHandler {
	return &SettingsHandler{store: settingsStore}
}

// Get GET /settings.
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.store.Settings()})
}

// ToggleTheme POST /settings/theme/toggle.
func (h *SettingsHandler) ToggleTheme(c *fiber.Ctx) error {
	theme := h.store.ToggleTheme()
	return c.JSON(fiber.Map{"data": fiber.Map{"theme": theme}})
}

// UpdatePreferences PUT /settings/preferences. Merges the supplied fields.
func (h *SettingsHandler) UpdatePreferences(c *fiber.Ctx) error {
	var req dto.UpdatePreferencesRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	prefs := h.store.UpdatePreferences(store.PreferencesPatch{
		Notifications: req.Notifications,
		AutoRefresh:   req.AutoRefresh,
		Language:      req.Language,
	})
	return c.JSON(fiber.Map{"data": prefs})
}
