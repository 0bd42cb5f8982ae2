package handlers

import (
	"Food-Sustainability-Backend/domain"
	"Food-Sustainability-Backend/internal/api/presenters"
	"Food-Sustainability-Backend/internal/middleware"
	"Food-Sustainability-Backend/internal/utils"
	"Food-Sustainability-Backend/pkg/inventory"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	InventoryHandler interface {
		AddInventoryItem(c *fiber.Ctx) error
		GetMyInventory(c *fiber.Ctx) error
		RemoveInventoryItem(c *fiber.Ctx) error
	}

	inventoryHandler struct {
		inventoryService inventory.InventoryService
		validator        *validator.Validate
	}
)

func NewInventoryHandler(inventoryService inventory.InventoryService, validator *validator.Validate) InventoryHandler {
	return &inventoryHandler{
		inventoryService: inventoryService,
		validator:        validator,
	}
}

func (h *inventoryHandler) AddInventoryItem(c *fiber.Ctx) error {
	identity := middleware.CurrentUser(c)

	req := new(domain.AddInventoryRequest)
	if err := utils.ParseStrictBody(c, req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddInventoryItem, err)
	}

	res, err := h.inventoryService.Add(c.Context(), identity.UserID.String(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedAddInventoryItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddInventoryItem)
}

func (h *inventoryHandler) GetMyInventory(c *fiber.Ctx) error {
	identity := middleware.CurrentUser(c)

	res, err := h.inventoryService.FindByUser(c.Context(), identity.UserID.String())
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedGetInventory, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetInventory)
}

func (h *inventoryHandler) RemoveInventoryItem(c *fiber.Ctx) error {
	identity := middleware.CurrentUser(c)

	if err := h.inventoryService.Remove(c.Context(), identity.UserID.String(), c.Params("id")); err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedRemoveInventoryItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRemoveInventoryItem)
}
