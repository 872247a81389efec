package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/crewcal/internal/api/http/handlers"
	"github.com/spec-kit/crewcal/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health          *handlers.HealthHandler
	Auth            *handlers.AuthHandler
	Events          *handlers.EventsHandler
	Employees       *handlers.EmployeesHandler
	Layout          *handlers.LayoutHandler
	Config          *handlers.ConfigHandler
	AdminMiddleware *auth.AdminMiddleware
}

// RegisterRoutes wires HTTP routes. Event scheduling is open to the whole
// team; roster management requires the region admin token.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/auth/admin/login", cfg.Auth.Login)

	api := app.Group("/api")
	api.Get("/config", cfg.Config.Get)
	api.Get("/layout", cfg.Layout.Get)

	api.Get("/events", cfg.Events.List)
	api.Post("/events", cfg.Events.Create)
	api.Put("/events/:id", cfg.Events.Update)
	api.Delete("/events/:id", cfg.Events.Delete)

	api.Get("/employees", cfg.Employees.List)

	admin := api.Group("", cfg.AdminMiddleware.Handle)
	admin.Post("/employees", cfg.Employees.Create)
	admin.Put("/employees/order", cfg.Employees.Reorder)
	admin.Put("/employees/:id", cfg.Employees.Update)
	admin.Delete("/employees/:id", cfg.Employees.Delete)
}
