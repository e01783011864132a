package route

import (
	"github.com/examind/examind-be/internal/delivery/http/handler"
	"github.com/examind/examind-be/internal/delivery/http/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

type RouteConfig struct {
	Api               *fiber.App
	Middleware        *middleware.Middleware
	AttemptHandler    handler.AttemptHandler
	AnalysisHandler   handler.AnalysisHandler
	AssignmentHandler handler.AssignmentHandler
	AdvisorHandler    handler.AdvisorHandler
}

func Setup(c *RouteConfig) {
	c.Api.Use(recover.New())
	c.Api.Use(requestid.New())
	c.Api.Use(logger.New(logger.Config{
		Format: "[${ip}]:${port} ${status} - ${method} ${path}\n",
	}))
	c.Api.Use(c.Middleware.CorsMiddleware())

	SetupAttemptRoute(c.Api, c.AttemptHandler, c.Middleware)
	SetupAnalysisRoute(c.Api, c.AnalysisHandler, c.Middleware)
	SetupAssignmentRoute(c.Api, c.AssignmentHandler, c.Middleware)
	SetupAdvisorRoute(c.Api, c.AdvisorHandler, c.Middleware)
}
