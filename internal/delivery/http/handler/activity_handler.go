package handler

import (
	"github.com/evandrarf/lingua-level-be/internal/delivery/http/domain"
	"github.com/evandrarf/lingua-level-be/internal/delivery/http/entity"
	"github.com/evandrarf/lingua-level-be/internal/delivery/http/usecase"
	"github.com/evandrarf/lingua-level-be/internal/pkg/response"
	"github.com/evandrarf/lingua-level-be/internal/pkg/validate"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type (
	ActivityHandler interface {
		EvaluatePronunciation(ctx *fiber.Ctx) error
		RecordActivity(ctx *fiber.Ctx) error
		UpdateWordbook(ctx *fiber.Ctx) error
	}

	activityHandler struct {
		validator *validate.Validator
		logger    *logrus.Logger
		usecase   usecase.ActivityUsecase
	}
)

func NewActivityHandler(validator *validate.Validator, logger *logrus.Logger, usecase usecase.ActivityUsecase) ActivityHandler {
	return &activityHandler{
		validator: validator,
		logger:    logger,
		usecase:   usecase,
	}
}

// POST /pronunciation/evaluate
func (h *activityHandler) EvaluatePronunciation(ctx *fiber.Ctx) error {
	var req entity.EvaluatePronunciationRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.PRONUNCIATION_EVALUATE_FAILED, requestError(err), h.logger).Send(ctx)
	}

	result, err := h.usecase.EvaluatePronunciation(ctx.UserContext(), req)
	if err != nil {
		return response.NewFailed(domain.PRONUNCIATION_EVALUATE_FAILED, usecaseError(err), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.PRONUNCIATION_EVALUATE_SUCCESS, result, nil).Send(ctx)
}

// POST /activities
func (h *activityHandler) RecordActivity(ctx *fiber.Ctx) error {
	var req entity.RecordActivityRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.ACTIVITY_RECORD_FAILED, requestError(err), h.logger).Send(ctx)
	}

	result, err := h.usecase.RecordActivity(ctx.UserContext(), req)
	if err != nil {
		return response.NewFailed(domain.ACTIVITY_RECORD_FAILED, usecaseError(err), h.logger).Send(ctx)
	}

	return response.NewCreated(domain.ACTIVITY_RECORD_SUCCESS, result).Send(ctx)
}

// POST /wordbook
func (h *activityHandler) UpdateWordbook(ctx *fiber.Ctx) error {
	var req entity.WordbookRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.WORDBOOK_UPDATE_FAILED, requestError(err), h.logger).Send(ctx)
	}

	result, err := h.usecase.UpdateWordbook(ctx.UserContext(), req)
	if err != nil {
		return response.NewFailed(domain.WORDBOOK_UPDATE_FAILED, usecaseError(err), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.WORDBOOK_UPDATE_SUCCESS, result, nil).Send(ctx)
}
