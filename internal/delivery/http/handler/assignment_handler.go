package handler

import (
	"errors"
	"strconv"
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
	AssignmentHandler interface {
		Preview(ctx *fiber.Ctx) error
		Start(ctx *fiber.Ctx) error
	}

	assignmentHandler struct {
		validator *validate.Validator
		logger    *logrus.Logger
		usecase   usecase.AssignmentUsecase
	}
)

func NewAssignmentHandler(validator *validate.Validator, logger *logrus.Logger, usecase usecase.AssignmentUsecase) AssignmentHandler {
	return &assignmentHandler{
		validator: validator,
		logger:    logger,
		usecase:   usecase,
	}
}

var validDomains = map[string]bool{
	entity.DomainAptitude:  true,
	entity.DomainReasoning: true,
	entity.DomainCS:        true,
	entity.DomainDSA:       true,
}

// GET /assignments/preview?user_id=...&domain=dsa&topic=arrays&limit=10
func (h *assignmentHandler) Preview(ctx *fiber.Ctx) error {
	userID := strings.TrimSpace(ctx.Query("user_id"))
	if userID == "" {
		return response.NewFailed(domain.ASSIGNMENT_PREVIEW_FAILED, fiber.NewError(fiber.StatusBadRequest, "user_id is required"), h.logger).Send(ctx)
	}

	qDomain := strings.ToLower(strings.TrimSpace(ctx.Query("domain")))
	if !validDomains[qDomain] {
		return response.NewFailed(domain.ASSIGNMENT_PREVIEW_FAILED, fiber.NewError(fiber.StatusBadRequest, "invalid domain (allowed: aptitude, reasoning, cs, dsa)"), h.logger).Send(ctx)
	}

	topic := strings.TrimSpace(ctx.Query("topic"))

	limit := 10
	if v := strings.TrimSpace(ctx.Query("limit")); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}
	limit = clampLimit(limit)

	preview, err := h.usecase.Preview(ctx.UserContext(), userID, qDomain, topic, limit)
	if err != nil {
		return h.sendFailure(ctx, domain.ASSIGNMENT_PREVIEW_FAILED, err)
	}

	return response.NewSuccess(domain.ASSIGNMENT_PREVIEW_SUCCESS, preview, nil).Send(ctx)
}

// POST /assignments/start
func (h *assignmentHandler) Start(ctx *fiber.Ctx) error {
	var req entity.StartAssignmentRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.ASSIGNMENT_START_FAILED, fiber.NewError(fiber.StatusBadRequest, err.Error()), h.logger).Send(ctx)
	}
	if req.Limit == 0 {
		req.Limit = 10
	}
	req.Limit = clampLimit(req.Limit)

	questions, err := h.usecase.Start(ctx.UserContext(), req)
	if err != nil {
		return h.sendFailure(ctx, domain.ASSIGNMENT_START_FAILED, err)
	}

	return response.NewSuccess(domain.ASSIGNMENT_START_SUCCESS, questions, nil).Send(ctx)
}

func (h *assignmentHandler) sendFailure(ctx *fiber.Ctx, message string, err error) error {
	status := fiber.StatusBadRequest
	if errors.Is(err, usecase.ErrEmptyQuestionPool) {
		status = fiber.StatusNotFound
	}
	return response.NewFailed(message, fiber.NewError(status, err.Error()), h.logger).Send(ctx)
}

func clampLimit(limit int) int {
	if limit < 1 {
		return 1
	}
	if limit > 100 {
		return 100
	}
	return limit
}
