package handler

import (
	"strings"

	"github.com/evandrarf/lingua-level-be/internal/delivery/http/domain"
	"github.com/evandrarf/lingua-level-be/internal/delivery/http/entity"
	"github.com/evandrarf/lingua-level-be/internal/delivery/http/usecase"
	"github.com/evandrarf/lingua-level-be/internal/pkg/response"
	"github.com/evandrarf/lingua-level-be/internal/pkg/validate"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type (
	ProficiencyHandler interface {
		Assess(ctx *fiber.Ctx) error
		Recommend(ctx *fiber.Ctx) error
		GetLearnerProficiency(ctx *fiber.Ctx) error
	}

	proficiencyHandler struct {
		validator *validate.Validator
		logger    *logrus.Logger
		usecase   usecase.ProficiencyUsecase
	}
)

func NewProficiencyHandler(validator *validate.Validator, logger *logrus.Logger, usecase usecase.ProficiencyUsecase) ProficiencyHandler {
	return &proficiencyHandler{
		validator: validator,
		logger:    logger,
		usecase:   usecase,
	}
}

// POST /proficiency/assess
func (h *proficiencyHandler) Assess(ctx *fiber.Ctx) error {
	var req entity.AssessRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.PROFICIENCY_ASSESS_FAILED, requestError(err), h.logger).Send(ctx)
	}

	result, err := h.usecase.Assess(ctx.UserContext(), req.Modules)
	if err != nil {
		return response.NewFailed(domain.PROFICIENCY_ASSESS_FAILED, usecaseError(err), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.PROFICIENCY_ASSESS_SUCCESS, result, nil).Send(ctx)
}

// POST /proficiency/recommend
func (h *proficiencyHandler) Recommend(ctx *fiber.Ctx) error {
	var req entity.RecommendRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.PROFICIENCY_RECOMMEND_FAILED, requestError(err), h.logger).Send(ctx)
	}

	result, err := h.usecase.Recommend(ctx.UserContext(), req.Assessment)
	if err != nil {
		return response.NewFailed(domain.PROFICIENCY_RECOMMEND_FAILED, usecaseError(err), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.PROFICIENCY_RECOMMEND_SUCCESS, result, nil).Send(ctx)
}

// GET /proficiency/learners/:learner_id
func (h *proficiencyHandler) GetLearnerProficiency(ctx *fiber.Ctx) error {
	learnerID := strings.TrimSpace(ctx.Params("learner_id"))
	if learnerID == "" {
		return response.NewFailed(domain.PROFICIENCY_LEARNER_FAILED, fiber.NewError(fiber.StatusBadRequest, "learner_id is required"), h.logger).Send(ctx)
	}

	result, err := h.usecase.GetLearnerProficiency(ctx.UserContext(), learnerID)
	if err != nil {
		return response.NewFailed(domain.PROFICIENCY_LEARNER_FAILED, usecaseError(err), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.PROFICIENCY_LEARNER_SUCCESS, result, map[string]any{
		"cached":     result.Cached,
		"windowDays": result.WindowDays,
	}).Send(ctx)
}
