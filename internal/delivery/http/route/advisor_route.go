package route

import (
	"github.com/examind/examind-be/internal/delivery/http/handler"
	"github.com/examind/examind-be/internal/delivery/http/middleware"
	"github.com/gofiber/fiber/v2"
)

func SetupAdvisorRoute(api *fiber.App, handler handler.AdvisorHandler, m *middleware.Middleware) {
	router := api.Group("/advisor")
	{
		router.Get("/users/:user_id/report", handler.GetReport)
		router.Post("/users/:user_id/chat", handler.Chat)
		router.Get("/users/:user_id/chat/history", handler.GetChatHistory)
	}
}
