package route

import (
	"github.com/examind/examind-be/internal/delivery/http/handler"
	"github.com/examind/examind-be/internal/delivery/http/middleware"
	"github.com/gofiber/fiber/v2"
)

func SetupAssignmentRoute(api *fiber.App, handler handler.AssignmentHandler, m *middleware.Middleware) {
	router := api.Group("/assignments")
	{
		router.Get("/preview", handler.Preview)
		router.Post("/start", handler.Start)
	}
}
