package route

import (
	"github.com/evandrarf/lingua-level-be/internal/delivery/http/handler"
	"github.com/evandrarf/lingua-level-be/internal/delivery/http/middleware"
	"github.com/gofiber/fiber/v2"
)

func SetupProficiencyRoute(api *fiber.App, handler handler.ProficiencyHandler, m *middleware.Middleware) {
	router := api.Group("/proficiency")
	{
		router.Post("/assess", handler.Assess)
		router.Post("/recommend", handler.Recommend)
		router.Get("/learners/:learner_id", handler.GetLearnerProficiency)
	}
}
