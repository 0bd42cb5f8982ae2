package handlers

import (
	"Food-Sustainability-Backend/domain"
	"Food-Sustainability-Backend/internal/api/presenters"
	"Food-Sustainability-Backend/internal/middleware"
	"Food-Sustainability-Backend/pkg/dashboard"

	"github.com/gofiber/fiber/v2"
)

type (
	DashboardHandler interface {
		GetDashboard(c *fiber.Ctx) error
	}

	dashboardHandler struct {
		dashboardService dashboard.DashboardService
	}
)

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandler{dashboardService: dashboardService}
}

func (h *dashboardHandler) GetDashboard(c *fiber.Ctx) error {
	identity := middleware.CurrentUser(c)

	res, err := h.dashboardService.GetUserDashboard(c.Context(), identity.UserID.String())
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedGetDashboard, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDashboard)
}
