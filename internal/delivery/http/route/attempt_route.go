package route

import (
	"github.com/examind/examind-be/internal/delivery/http/handler"
	"github.com/examind/examind-be/internal/delivery/http/middleware"
	"github.com/gofiber/fiber/v2"
)

func SetupAttemptRoute(api *fiber.App, handler handler.AttemptHandler, m *middleware.Middleware) {
	router := api.Group("/attempts")
	{
		router.Post("/exam", handler.SubmitExam)
		router.Post("/practice", handler.SubmitPractice)
		router.Post("/quiz", handler.SubmitQuiz)
		router.Post("/aptitude", handler.SubmitAptitude)
		router.Get("/users/:user_id", handler.ListByUser)
	}
}
