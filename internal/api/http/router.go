package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/ticket-dashboard/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health        *handlers.HealthHandler
	Tickets       *handlers.TicketsHandler
	Team          *handlers.TeamHandler
	Dashboard     *handlers.DashboardHandler
	Notifications *handlers.NotificationsHandler
	Settings      *handlers.SettingsHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	tickets := app.Group("/tickets")
	tickets.Get("/", cfg.Tickets.List)
	tickets.Post("/", cfg.Tickets.Create)
	tickets.Put("/filters", cfg.Tickets.UpdateFilters)
	tickets.Put("/:id", cfg.Tickets.Update)
	tickets.Delete("/:id", cfg.Tickets.Delete)
	tickets.Post("/:id/assign", cfg.Tickets.Assign)

	team := app.Group("/team-members")
	team.Get("/", cfg.Team.List)
	team.Put("/:id/status", cfg.Team.UpdateStatus)

	dashboard := app.Group("/dashboard")
	dashboard.Get("/stats", cfg.Dashboard.Stats)
	dashboard.Get("/activity", cfg.Dashboard.Activity)
	dashboard.Post("/refresh", cfg.Dashboard.Refresh)

	notifications := app.Group("/notifications")
	notifications.Get("/", cfg.Notifications.List)
	notifications.Delete("/:id", cfg.Notifications.Dismiss)

	settings := app.Group("/settings")
	settings.Get("/", cfg.Settings.Get)
	settings.Post("/theme/toggle", cfg.Settings.ToggleTheme)
	settings.Put("/preferences", cfg.Settings.UpdatePreferences)
}
