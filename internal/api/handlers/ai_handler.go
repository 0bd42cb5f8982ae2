package handlers

import (
	"io"
	"slices"

	"Food-Sustainability-Backend/domain"
	"Food-Sustainability-Backend/internal/api/presenters"
	"Food-Sustainability-Backend/internal/middleware"
	"Food-Sustainability-Backend/internal/utils"
	"Food-Sustainability-Backend/internal/utils/storage"
	"Food-Sustainability-Backend/pkg/foodlog"
	"Food-Sustainability-Backend/pkg/gemini"
	"Food-Sustainability-Backend/pkg/inventory"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AIHandler interface {
		AnalyzeImage(c *fiber.Ctx) error
		MealPlan(c *fiber.Ctx) error
		Insights(c *fiber.Ctx) error
		Chat(c *fiber.Ctx) error
	}

	aiHandler struct {
		geminiService    gemini.GeminiService
		inventoryService inventory.InventoryService
		foodLogService   foodlog.FoodLogService
		validator        *validator.Validate
	}
)

func NewAIHandler(
	geminiService gemini.GeminiService,
	inventoryService inventory.InventoryService,
	foodLogService foodlog.FoodLogService,
	validator *validator.Validate,
) AIHandler {
	return &aiHandler{
		geminiService:    geminiService,
		inventoryService: inventoryService,
		foodLogService:   foodLogService,
		validator:        validator,
	}
}

func (h *aiHandler) AnalyzeImage(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAnalyzeImage, domain.ErrNoFileReceived)
	}

	mimeType, err := storage.DetectMimeType(file)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAnalyzeImage, err)
	}
	if !slices.Contains(storage.AllowImage, mimeType) {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAnalyzeImage, domain.ErrInvalidFileType)
	}

	src, err := file.Open()
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAnalyzeImage, err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAnalyzeImage, err)
	}

	res := h.geminiService.AnalyzeInventoryImage(c.Context(), data, mimeType)
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessAnalyzeImage)
}

func (h *aiHandler) MealPlan(c *fiber.Ctx) error {
	identity := middleware.CurrentUser(c)

	req := new(domain.MealPlanRequest)
	if len(c.Body()) > 0 {
		if err := utils.ParseStrictBody(c, req); err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
		}
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedMealPlan, err)
	}

	items, err := h.inventoryService.FindByUser(c.Context(), identity.UserID.String())
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedMealPlan, err)
	}

	res := h.geminiService.GenerateMealPlan(c.Context(), items, req.Budget)
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessMealPlan)
}

func (h *aiHandler) Insights(c *fiber.Ctx) error {
	identity := middleware.CurrentUser(c)
	userID := identity.UserID.String()

	items, err := h.inventoryService.FindByUser(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedInsights, err)
	}

	logs, err := h.foodLogService.FindByUser(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedInsights, err)
	}

	res := h.geminiService.SustainabilityInsights(c.Context(), items, logs)
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessInsights)
}

func (h *aiHandler) Chat(c *fiber.Ctx) error {
	req := new(domain.ChatRequest)
	if err := utils.ParseStrictBody(c, req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedChat, err)
	}

	reply := h.geminiService.Chat(c.Context(), req.History, req.Message)
	return presenters.SuccessResponse(c, domain.ChatResponse{Reply: reply}, fiber.StatusOK, domain.MessageSuccessChat)
}
