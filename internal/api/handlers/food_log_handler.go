package handlers

import (
	"Food-Sustainability-Backend/domain"
	"Food-Sustainability-Backend/internal/api/presenters"
	"Food-Sustainability-Backend/internal/middleware"
	"Food-Sustainability-Backend/internal/utils"
	"Food-Sustainability-Backend/pkg/foodlog"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FoodLogHandler interface {
		CreateFoodLog(c *fiber.Ctx) error
		GetMyFoodLogs(c *fiber.Ctx) error
		RemoveFoodLog(c *fiber.Ctx) error
	}

	foodLogHandler struct {
		foodLogService foodlog.FoodLogService
		validator      *validator.Validate
	}
)

func NewFoodLogHandler(foodLogService foodlog.FoodLogService, validator *validator.Validate) FoodLogHandler {
	return &foodLogHandler{
		foodLogService: foodLogService,
		validator:      validator,
	}
}

func (h *foodLogHandler) CreateFoodLog(c *fiber.Ctx) error {
	identity := middleware.CurrentUser(c)

	req := new(domain.CreateFoodLogRequest)
	if err := utils.ParseStrictBody(c, req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateFoodLog, err)
	}

	res, err := h.foodLogService.Create(c.Context(), identity.UserID.String(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedCreateFoodLog, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateFoodLog)
}

func (h *foodLogHandler) GetMyFoodLogs(c *fiber.Ctx) error {
	identity := middleware.CurrentUser(c)

	res, err := h.foodLogService.FindByUser(c.Context(), identity.UserID.String())
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedGetFoodLogs, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFoodLogs)
}

func (h *foodLogHandler) RemoveFoodLog(c *fiber.Ctx) error {
	if err := h.foodLogService.Remove(c.Context(), c.Params("id")); err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedRemoveFoodLog, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRemoveFoodLog)
}
