package router

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/config"
	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/handler"
	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/middleware"
	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	AuthHandler        *handler.AuthHandler
	UserHandler        *handler.UserHandler
	LearnerHandler     *handler.LearnerHandler
	CompanyHandler     *handler.CompanyHandler
	JobOfferHandler    *handler.JobOfferHandler
	ApplicationHandler *handler.ApplicationHandler
	EventHandler       *handler.EventHandler
	DocumentHandler    *handler.DocumentHandler
	StatsHandler       *handler.StatsHandler
	ActivityHandler    *handler.ActivityHandler
	JWTMiddleware      fiber.Handler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	api := app.Group("/api", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))
	api.Get("/metrics", observability.MetricsHandler())

	jwtMiddleware := deps.JWTMiddleware
	if jwtMiddleware == nil {
		jwtMiddleware = func(c *fiber.Ctx) error { return c.Next() }
	}

	if deps.AuthHandler != nil {
		auth := api.Group("/auth")
		deps.AuthHandler.Register(auth.Group("", middleware.RateLimit("auth", 10, time.Minute)))
		deps.AuthHandler.RegisterProtected(auth.Group("", jwtMiddleware))
	}

	if deps.UserHandler != nil {
		deps.UserHandler.Register(api.Group("/users", jwtMiddleware))
	}

	if deps.LearnerHandler != nil {
		deps.LearnerHandler.Register(api.Group("/learners", jwtMiddleware))
	}

	if deps.CompanyHandler != nil {
		deps.CompanyHandler.Register(api.Group("/companies", jwtMiddleware))
	}

	if deps.JobOfferHandler != nil {
		deps.JobOfferHandler.Register(api.Group("/job-offers", jwtMiddleware))
	}

	if deps.ApplicationHandler != nil {
		deps.ApplicationHandler.Register(api.Group("/applications", jwtMiddleware))
	}

	if deps.EventHandler != nil {
		deps.EventHandler.Register(api.Group("/events", jwtMiddleware))
	}

	if deps.DocumentHandler != nil {
		deps.DocumentHandler.Register(api.Group("/documents", jwtMiddleware))
	}

	if deps.StatsHandler != nil {
		deps.StatsHandler.Register(api.Group("/stats", jwtMiddleware, middleware.RequireRole("admin", "coach")))
	}

	if deps.ActivityHandler != nil {
		deps.ActivityHandler.Register(api.Group("/activity", jwtMiddleware, middleware.RequireRole("admin", "coach")))
	}
}
