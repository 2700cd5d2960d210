package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-widget/internal/api/http/handlers"
	"github.com/spec-kit/helpdesk-widget/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Tickets        *handlers.TicketsHandler
	Widget         *handlers.WidgetHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api", cfg.AuthMiddleware.Handle)

	api.Get("/session", cfg.Widget.Session)

	api.Get("/tickets", cfg.Tickets.List)
	api.Post("/tickets", cfg.Tickets.Create)
	api.Get("/tickets/stats", cfg.Tickets.Stats)
	api.Get("/tickets/:id", cfg.Tickets.Get)
	api.Delete("/tickets/:id", cfg.Tickets.Delete)
	api.Post("/tickets/:id/notes", cfg.Tickets.AddNote)
	api.Put("/tickets/:id/status", cfg.Tickets.UpdateStatus)
	api.Put("/tickets/:id/type", cfg.Tickets.ChangeType)
	api.Put("/tickets/:id/project-value", cfg.Tickets.SaveProjectValue)
	api.Post("/tickets/:id/status-notes", cfg.Tickets.AddStatusNote)
	api.Delete("/tickets/:id/status-notes/:noteId", cfg.Tickets.DeleteStatusNote)
	api.Post("/tickets/:id/select", cfg.Tickets.Select)
	api.Post("/tickets/close-detail", cfg.Tickets.CloseDetail)
	api.Put("/filter", cfg.Tickets.SetFilter)

	api.Get("/notifications", cfg.Widget.Notifications)
	api.Delete("/notifications", cfg.Widget.ClearNotifications)
	api.Get("/contract", cfg.Widget.Contract)
	api.Get("/task-history", cfg.Widget.TaskHistory)
	api.Post("/task-history/refresh", cfg.Widget.RefreshTaskHistory)
	api.Get("/referrals", cfg.Widget.Referrals)
	api.Get("/directory", cfg.Widget.Directory)
	api.Put("/profile", cfg.Widget.SaveProfile)
	api.Post("/uploads", cfg.Widget.RequestUpload)
	api.Get("/uploads/pending", cfg.Widget.PendingAttachment)
	api.Delete("/uploads/pending", cfg.Widget.RemovePendingAttachment)
	api.Post("/navigate", cfg.Widget.Navigate)
}
