package config

import (
	"math/rand"
	"time"

	"github.com/examind/examind-be/internal/delivery/http/handler"
	"github.com/examind/examind-be/internal/delivery/http/middleware"
	"github.com/examind/examind-be/internal/delivery/http/repository"
	"github.com/examind/examind-be/internal/delivery/http/route"
	"github.com/examind/examind-be/internal/delivery/http/usecase"
	"github.com/examind/examind-be/internal/pkg/analytics"
	"github.com/examind/examind-be/internal/pkg/llm"
	"github.com/examind/examind-be/internal/pkg/validate"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

type BootstrapConfig struct {
	Api       *fiber.App
	Config    *viper.Viper
	DB        *gorm.DB
	Log       *logrus.Logger
	Validator *validate.Validator
}

func Bootstrap(config *BootstrapConfig) {

	mid := middleware.NewMiddleware(&middleware.MiddlewareConfig{
		Log:    config.Log,
		Config: config.Config,
	})

	apiKey := ""
	model := ""
	baseURL := ""
	if config.Config != nil {
		apiKey = config.Config.GetString("llm.api_key")
		model = config.Config.GetString("llm.model")
		baseURL = config.Config.GetString("llm.base_url")
	}

	var llmClient *llm.Client
	if apiKey != "" {
		llmClient = llm.NewClient(apiKey, model, baseURL)
	} else if config.Log != nil {
		config.Log.Warn("llm.api_key not set, advisor falls back to deterministic recommendations")
	}

	attemptRepo := repository.NewAttemptRepository(config.DB)
	questionRepo := repository.NewQuestionRepository(config.DB)
	advisorRepo := repository.NewAdvisorRepository(config.DB)

	sampler := analytics.NewSampler(rand.New(rand.NewSource(time.Now().UnixNano())))

	attemptUsecase := usecase.NewAttemptUsecase(usecase.AttemptConfig{
		DB:         config.DB,
		Repository: attemptRepo,
	})
	analysisUsecase := usecase.NewAnalysisUsecase(usecase.AnalysisConfig{
		DB:         config.DB,
		Repository: attemptRepo,
	})
	assignmentUsecase := usecase.NewAssignmentUsecase(usecase.AssignmentConfig{
		DB:        config.DB,
		Attempts:  attemptRepo,
		Questions: questionRepo,
		Log:       config.Log,
		Sampler:   sampler,
	})
	advisorUsecase := usecase.NewAdvisorUsecase(usecase.AdvisorConfig{
		DB:         config.DB,
		LLM:        llmClient,
		Analysis:   analysisUsecase,
		Repository: advisorRepo,
		Log:        config.Log,
	})

	attemptHandler := handler.NewAttemptHandler(config.Validator, config.Log, attemptUsecase)
	analysisHandler := handler.NewAnalysisHandler(config.Log, analysisUsecase)
	assignmentHandler := handler.NewAssignmentHandler(config.Validator, config.Log, assignmentUsecase)
	advisorHandler := handler.NewAdvisorHandler(config.Validator, config.Log, advisorUsecase)

	route.Setup(&route.RouteConfig{
		Api:               config.Api,
		Middleware:        mid,
		AttemptHandler:    attemptHandler,
		AnalysisHandler:   analysisHandler,
		AssignmentHandler: assignmentHandler,
		AdvisorHandler:    advisorHandler,
	})

}
