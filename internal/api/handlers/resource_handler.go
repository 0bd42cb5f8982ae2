package handlers

import (
	"Food-Sustainability-Backend/domain"
	"Food-Sustainability-Backend/internal/api/presenters"
	"Food-Sustainability-Backend/internal/utils"
	"Food-Sustainability-Backend/pkg/resource"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ResourceHandler interface {
		CreateResource(c *fiber.Ctx) error
		GetResources(c *fiber.Ctx) error
		GetResourcesByCategory(c *fiber.Ctx) error
		SeedResources(c *fiber.Ctx) error
	}

	resourceHandler struct {
		resourceService resource.ResourceService
		validator       *validator.Validate
	}
)

func NewResourceHandler(resourceService resource.ResourceService, validator *validator.Validate) ResourceHandler {
	return &resourceHandler{
		resourceService: resourceService,
		validator:       validator,
	}
}

func (h *resourceHandler) CreateResource(c *fiber.Ctx) error {
	req := new(domain.CreateResourceRequest)
	if err := utils.ParseStrictBody(c, req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateResource, err)
	}

	res, err := h.resourceService.Create(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedCreateResource, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateResource)
}

func (h *resourceHandler) GetResources(c *fiber.Ctx) error {
	res, err := h.resourceService.FindAll(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedGetResources, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetResources)
}

func (h *resourceHandler) GetResourcesByCategory(c *fiber.Ctx) error {
	res, err := h.resourceService.FindByCategory(c.Context(), c.Query("name"))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedGetResources, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetResources)
}

func (h *resourceHandler) SeedResources(c *fiber.Ctx) error {
	msg, err := h.resourceService.Seed(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedSeedResources, err)
	}

	return presenters.SuccessResponse(c, domain.MessageResponse{Message: msg}, fiber.StatusOK, domain.MessageSuccessSeedResources)
}
