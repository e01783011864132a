package handler

import (
	"github.com/examind/examind-be/internal/delivery/http/domain"
	"github.com/examind/examind-be/internal/delivery/http/entity"
	"github.com/examind/examind-be/internal/delivery/http/usecase"
	"github.com/examind/examind-be/internal/pkg/response"
	"github.com/examind/examind-be/internal/pkg/validate"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type (
	AttemptHandler interface {
		SubmitExam(ctx *fiber.Ctx) error
		SubmitPractice(ctx *fiber.Ctx) error
		SubmitQuiz(ctx *fiber.Ctx) error
		SubmitAptitude(ctx *fiber.Ctx) error
		ListByUser(ctx *fiber.Ctx) error
	}

	attemptHandler struct {
		validator *validate.Validator
		logger    *logrus.Logger
		usecase   usecase.AttemptUsecase
	}
)

func NewAttemptHandler(validator *validate.Validator, logger *logrus.Logger, usecase usecase.AttemptUsecase) AttemptHandler {
	return &attemptHandler{
		validator: validator,
		logger:    logger,
		usecase:   usecase,
	}
}

// POST /attempts/exam
func (h *attemptHandler) SubmitExam(ctx *fiber.Ctx) error {
	var req entity.SubmitExamRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.ATTEMPT_SUBMIT_FAILED, fiber.NewError(fiber.StatusBadRequest, err.Error()), h.logger).Send(ctx)
	}

	result, err := h.usecase.SubmitExam(ctx.UserContext(), req)
	if err != nil {
		return response.NewFailed(domain.ATTEMPT_SUBMIT_FAILED, fiber.NewError(fiber.StatusBadRequest, err.Error()), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.ATTEMPT_SUBMIT_SUCCESS, result, nil).Send(ctx)
}

// POST /attempts/practice
func (h *attemptHandler) SubmitPractice(ctx *fiber.Ctx) error {
	var req entity.SubmitPracticeRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.ATTEMPT_SUBMIT_FAILED, fiber.NewError(fiber.StatusBadRequest, err.Error()), h.logger).Send(ctx)
	}

	result, err := h.usecase.SubmitPractice(ctx.UserContext(), req)
	if err != nil {
		return response.NewFailed(domain.ATTEMPT_SUBMIT_FAILED, fiber.NewError(fiber.StatusBadRequest, err.Error()), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.ATTEMPT_SUBMIT_SUCCESS, result, nil).Send(ctx)
}

// POST /attempts/quiz
func (h *attemptHandler) SubmitQuiz(ctx *fiber.Ctx) error {
	var req entity.SubmitQuizRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.ATTEMPT_SUBMIT_FAILED, fiber.NewError(fiber.StatusBadRequest, err.Error()), h.logger).Send(ctx)
	}

	result, err := h.usecase.SubmitQuiz(ctx.UserContext(), req)
	if err != nil {
		return response.NewFailed(domain.ATTEMPT_SUBMIT_FAILED, fiber.NewError(fiber.StatusBadRequest, err.Error()), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.ATTEMPT_SUBMIT_SUCCESS, result, nil).Send(ctx)
}

// POST /attempts/aptitude
func (h *attemptHandler) SubmitAptitude(ctx *fiber.Ctx) error {
	var req entity.SubmitAptitudeRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.ATTEMPT_SUBMIT_FAILED, fiber.NewError(fiber.StatusBadRequest, err.Error()), h.logger).Send(ctx)
	}

	result, err := h.usecase.SubmitAptitude(ctx.UserContext(), req)
	if err != nil {
		return response.NewFailed(domain.ATTEMPT_SUBMIT_FAILED, fiber.NewError(fiber.StatusBadRequest, err.Error()), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.ATTEMPT_SUBMIT_SUCCESS, result, nil).Send(ctx)
}

// GET /attempts/users/:user_id
func (h *attemptHandler) ListByUser(ctx *fiber.Ctx) error {
	userID := ctx.Params("user_id")
	if userID == "" {
		return response.NewFailed(domain.ATTEMPT_LIST_FAILED, fiber.NewError(fiber.StatusBadRequest, "user_id is required"), h.logger).Send(ctx)
	}

	logs, err := h.usecase.ListByUser(ctx.UserContext(), userID)
	if err != nil {
		return response.NewFailed(domain.ATTEMPT_LIST_FAILED, fiber.NewError(fiber.StatusBadRequest, err.Error()), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.ATTEMPT_LIST_SUCCESS, logs, nil).Send(ctx)
}
