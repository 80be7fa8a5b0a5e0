package handlers

import (
	"career-bridge/domain"
	"career-bridge/internal/api/presenters"
	"career-bridge/pkg/dashboard"

	"github.com/gofiber/fiber/v2"
)

type (
	DashboardHandler interface {
		GetOverview(c *fiber.Ctx) error
		GetEducationStats(c *fiber.Ctx) error
		GetJobStats(c *fiber.Ctx) error
		GetCollegeComparison(c *fiber.Ctx) error
		GetCompanyComparison(c *fiber.Ctx) error
	}

	dashboardHandler struct {
		dashboardService dashboard.DashboardService
	}
)

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandler{
		dashboardService: dashboardService,
	}
}

func (h *dashboardHandler) GetOverview(c *fiber.Ctx) error {
	resp, err := h.dashboardService.GetOverview(c.Context())
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedGetDashboard, err)
	}
	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessGetDashboard)
}

func (h *dashboardHandler) GetEducationStats(c *fiber.Ctx) error {
	resp, err := h.dashboardService.GetEducationStats(c.Context())
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedGetDashboard, err)
	}
	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessGetDashboard)
}

func (h *dashboardHandler) GetJobStats(c *fiber.Ctx) error {
	resp, err := h.dashboardService.GetJobStats(c.Context())
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedGetDashboard, err)
	}
	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessGetDashboard)
}

func (h *dashboardHandler) GetCollegeComparison(c *fiber.Ctx) error {
	resp, err := h.dashboardService.GetCollegeComparison(c.Context())
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedGetDashboard, err)
	}
	return presenters.SuccessResponse(c, listed(resp, len(resp)), fiber.StatusOK, domain.MessageSuccessGetDashboard)
}

func (h *dashboardHandler) GetCompanyComparison(c *fiber.Ctx) error {
	resp, err := h.dashboardService.GetCompanyComparison(c.Context())
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedGetDashboard, err)
	}
	return presenters.SuccessResponse(c, listed(resp, len(resp)), fiber.StatusOK, domain.MessageSuccessGetDashboard)
}
