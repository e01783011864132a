package route

import (
	"github.com/examind/examind-be/internal/delivery/http/handler"
	"github.com/examind/examind-be/internal/delivery/http/middleware"
	"github.com/gofiber/fiber/v2"
)

func SetupAnalysisRoute(api *fiber.App, handler handler.AnalysisHandler, m *middleware.Middleware) {
	router := api.Group("/analysis")
	{
		router.Get("/users/:user_id", handler.GetUserAnalysis)
	}
}
