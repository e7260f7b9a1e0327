package route

import (
	"github.com/evandrarf/lingua-level-be/internal/delivery/http/handler"
	"github.com/evandrarf/lingua-level-be/internal/delivery/http/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

type RouteConfig struct {
	Api                *fiber.App
	Middleware         *middleware.Middleware
	ActivityHandler    handler.ActivityHandler
	ProficiencyHandler handler.ProficiencyHandler
}

func Setup(c *RouteConfig) {
	c.Api.Use(recover.New())
	c.Api.Use(c.Middleware.RequestLogger())
	c.Api.Use(c.Middleware.CorsMiddleware())

	c.Api.Get("/healthz", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"status": "ok"})
	})

	SetupActivityRoute(c.Api, c.ActivityHandler, c.Middleware)
	SetupProficiencyRoute(c.Api, c.ProficiencyHandler, c.Middleware)
}
