package handler

import (
	"github.com/examind/examind-be/internal/delivery/http/domain"
	"github.com/examind/examind-be/internal/delivery/http/usecase"
	"github.com/examind/examind-be/internal/pkg/response"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type (
	AnalysisHandler interface {
		GetUserAnalysis(ctx *fiber.Ctx) error
	}

	analysisHandler struct {
		logger  *logrus.Logger
		usecase usecase.AnalysisUsecase
	}
)

func NewAnalysisHandler(logger *logrus.Logger, usecase usecase.AnalysisUsecase) AnalysisHandler {
	return &analysisHandler{
		logger:  logger,
		usecase: usecase,
	}
}

// GET /analysis/users/:user_id
func (h *analysisHandler) GetUserAnalysis(ctx *fiber.Ctx) error {
	userID := ctx.Params("user_id")
	if userID == "" {
		return response.NewFailed(domain.ANALYSIS_GET_FAILED, fiber.NewError(fiber.StatusBadRequest, "user_id is required"), h.logger).Send(ctx)
	}

	analysis, err := h.usecase.GetUserAnalysis(ctx.UserContext(), userID)
	if err != nil {
		return response.NewFailed(domain.ANALYSIS_GET_FAILED, fiber.NewError(fiber.StatusBadRequest, err.Error()), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.ANALYSIS_GET_SUCCESS, analysis, nil).Send(ctx)
}
