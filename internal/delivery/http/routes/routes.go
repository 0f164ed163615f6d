package routes

import (
	"talentmatch/internal/delivery/http/handler"
	v1 "talentmatch/internal/delivery/http/routes/v1"
	"talentmatch/internal/pkg/jwt"
	"talentmatch/internal/ws"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

type Deps struct {
	Handlers v1.Handlers
	Health   *handler.HealthHandler
	Tokens   *jwt.Service
	Hub      *ws.Hub
	Logger   *zap.Logger
}

func Register(app *fiber.App, d Deps) {
	app.Get("/health", d.Health.Check)
	app.Get("/ws/events", ws.Handler(d.Hub, d.Logger))

	api := app.Group("/api/v1")
	v1.Register(api, d.Handlers, d.Tokens)
}
