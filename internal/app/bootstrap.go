package app

import (
	"context"
	"time"

	"talentmatch/internal/delivery/http/middleware"
	"talentmatch/internal/delivery/http/routes"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

// NewServer assembles the fiber app around the container.
func NewServer(c *Container) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: c.Config.App.AppName,
	})

	app.Use(middleware.AccessLog(c.Logger))
	app.Use(middleware.NewErrorMiddleware(c.Logger).Middleware())

	routes.Register(app, routes.Deps{
		Handlers: c.Handlers,
		Health:   c.Health,
		Tokens:   c.Tokens,
		Hub:      c.Hub,
		Logger:   c.Logger,
	})

	return app
}

// WarmSnapshot publishes the first fact base so the initial query does not
// pay the projection cost. Failure is non-fatal: the first query retries.
func WarmSnapshot(ctx context.Context, c *Container) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if _, err := c.FactBases.Regenerate(ctx); err != nil && c.Logger != nil {
		c.Logger.Warn("initial fact base projection failed, deferring to first query", zap.Error(err))
	}
}
