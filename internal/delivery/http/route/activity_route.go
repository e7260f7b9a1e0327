package route

import (
	"github.com/evandrarf/lingua-level-be/internal/delivery/http/handler"
	"github.com/evandrarf/lingua-level-be/internal/delivery/http/middleware"
	"github.com/gofiber/fiber/v2"
)

func SetupActivityRoute(api *fiber.App, handler handler.ActivityHandler, m *middleware.Middleware) {
	pronunciationRouter := api.Group("/pronunciation")
	{
		pronunciationRouter.Post("/evaluate", handler.EvaluatePronunciation)
	}

	api.Post("/activities", handler.RecordActivity)
	api.Post("/wordbook", handler.UpdateWordbook)
}
