package handlers

import (
	"Food-Sustainability-Backend/domain"
	"Food-Sustainability-Backend/internal/api/presenters"
	"Food-Sustainability-Backend/internal/middleware"
	"Food-Sustainability-Backend/pkg/upload"

	"github.com/gofiber/fiber/v2"
)

type (
	UploadHandler interface {
		UploadReceipt(c *fiber.Ctx) error
		GetMyReceipts(c *fiber.Ctx) error
	}

	uploadHandler struct {
		uploadService upload.UploadService
	}
)

func NewUploadHandler(uploadService upload.UploadService) UploadHandler {
	return &uploadHandler{uploadService: uploadService}
}

func (h *uploadHandler) UploadReceipt(c *fiber.Ctx) error {
	identity := middleware.CurrentUser(c)

	file, err := c.FormFile("file")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadReceipt, domain.ErrNoFileReceived)
	}

	res, err := h.uploadService.UploadReceipt(c.Context(), identity.UserID.String(), file)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedUploadReceipt, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessUploadReceipt)
}

func (h *uploadHandler) GetMyReceipts(c *fiber.Ctx) error {
	identity := middleware.CurrentUser(c)

	res, err := h.uploadService.GetMyReceipts(c.Context(), identity.UserID.String())
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedGetReceipts, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetReceipts)
}
