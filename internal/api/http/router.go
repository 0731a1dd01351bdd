package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/prephub-api/internal/api/http/handlers"
	"github.com/spec-kit/prephub-api/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Courses        *handlers.CoursesHandler
	Jobs           *handlers.JobsHandler
	Chat           *handlers.ChatHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/", cfg.Health.Root)
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Get("/me", cfg.AuthMiddleware.Handle, cfg.Auth.Me)

	// Course mutations carry no auth gate on purpose; see DESIGN.md.
	courses := app.Group("/courses")
	courses.Get("", cfg.Courses.List)
	courses.Post("", cfg.Courses.Create)
	courses.Get("/:id", cfg.Courses.Get)
	courses.Put("/:id", cfg.Courses.Update)
	courses.Delete("/:id", cfg.Courses.Delete)

	jobs := app.Group("/jobs")
	jobs.Get("", cfg.Jobs.List)
	jobs.Post("", cfg.Jobs.Create)

	app.Post("/chat", cfg.Chat.Chat)
}
