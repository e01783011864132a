package handler

import (
	"strings"

	"github.com/examind/examind-be/internal/delivery/http/domain"
	"github.com/examind/examind-be/internal/delivery/http/entity"
	"github.com/examind/examind-be/internal/delivery/http/usecase"
	"github.com/examind/examind-be/internal/pkg/response"
	"github.com/examind/examind-be/internal/pkg/validate"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type (
	AdvisorHandler interface {
		GetReport(ctx *fiber.Ctx) error
		Chat(ctx *fiber.Ctx) error
		GetChatHistory(ctx *fiber.Ctx) error
	}

	advisorHandler struct {
		validator *validate.Validator
		logger    *logrus.Logger
		usecase   usecase.AdvisorUsecase
	}
)

func NewAdvisorHandler(validator *validate.Validator, logger *logrus.Logger, usecase usecase.AdvisorUsecase) AdvisorHandler {
	return &advisorHandler{
		validator: validator,
		logger:    logger,
		usecase:   usecase,
	}
}

// GET /advisor/users/:user_id/report
func (h *advisorHandler) GetReport(ctx *fiber.Ctx) error {
	userID := ctx.Params("user_id")
	if userID == "" {
		return response.NewFailed(domain.ADVISOR_REPORT_FAILED, fiber.NewError(fiber.StatusBadRequest, "user_id is required"), h.logger).Send(ctx)
	}

	report, err := h.usecase.GetReport(ctx.UserContext(), userID)
	if err != nil {
		return response.NewFailed(domain.ADVISOR_REPORT_FAILED, fiber.NewError(fiber.StatusBadRequest, err.Error()), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.ADVISOR_REPORT_SUCCESS, report, nil).Send(ctx)
}

// POST /advisor/users/:user_id/chat
func (h *advisorHandler) Chat(ctx *fiber.Ctx) error {
	userID := ctx.Params("user_id")
	if userID == "" {
		return response.NewFailed(domain.ADVISOR_CHAT_FAILED, fiber.NewError(fiber.StatusBadRequest, "user_id is required"), h.logger).Send(ctx)
	}

	var req entity.ChatRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.ADVISOR_CHAT_FAILED, fiber.NewError(fiber.StatusBadRequest, err.Error()), h.logger).Send(ctx)
	}

	if strings.TrimSpace(req.Message) == "" {
		return response.NewFailed(domain.ADVISOR_CHAT_FAILED, fiber.NewError(fiber.StatusBadRequest, "message cannot be empty"), h.logger).Send(ctx)
	}

	result, err := h.usecase.Chat(ctx.UserContext(), userID, req.Message)
	if err != nil {
		return response.NewFailed(domain.ADVISOR_CHAT_FAILED, fiber.NewError(fiber.StatusBadRequest, err.Error()), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.ADVISOR_CHAT_SUCCESS, result, nil).Send(ctx)
}

// GET /advisor/users/:user_id/chat/history
func (h *advisorHandler) GetChatHistory(ctx *fiber.Ctx) error {
	userID := ctx.Params("user_id")
	if userID == "" {
		return response.NewFailed(domain.ADVISOR_HISTORY_FAILED, fiber.NewError(fiber.StatusBadRequest, "user_id is required"), h.logger).Send(ctx)
	}

	history, err := h.usecase.GetChatHistory(ctx.UserContext(), userID)
	if err != nil {
		return response.NewFailed(domain.ADVISOR_HISTORY_FAILED, fiber.NewError(fiber.StatusBadRequest, err.Error()), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.ADVISOR_HISTORY_SUCCESS, history, nil).Send(ctx)
}
