package handlers

import (
	"career-bridge/domain"
	"career-bridge/internal/api/presenters"
	"career-bridge/pkg/activity"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ActivityHandler interface {
		SaveActivity(c *fiber.Ctx) error
		GetUserActivities(c *fiber.Ctx) error
		GetEducationActivities(c *fiber.Ctx) error
		DeleteActivity(c *fiber.Ctx) error
	}

	activityHandler struct {
		activityService activity.ActivityService
		validator       *validator.Validate
	}
)

func NewActivityHandler(activityService activity.ActivityService, validator *validator.Validate) ActivityHandler {
	return &activityHandler{
		activityService: activityService,
		validator:       validator,
	}
}

func (h *activityHandler) SaveActivity(c *fiber.Ctx) error {
	userID, _ := currentUser(c)

	req := domain.SaveActivityRequest{}
	if err := parseFormData(c, &req.Data); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req.Data); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveActivity, err)
	}
	req.Certificate = optionalFile(c, "certificate")

	resp, err := h.activityService.SaveActivity(c.Context(), req, userID)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedSaveActivity, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusCreated, domain.MessageSuccessSaveActivity)
}

func (h *activityHandler) GetUserActivities(c *fiber.Ctx) error {
	userID, _ := currentUser(c)

	activities, err := h.activityService.ListByUser(c.Context(), userID)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedGetActivities, err)
	}

	return presenters.SuccessResponse(c, listed(activities, len(activities)), fiber.StatusOK, domain.MessageSuccessGetActivities)
}

func (h *activityHandler) GetEducationActivities(c *fiber.Ctx) error {
	userID, role := currentUser(c)

	activities, err := h.activityService.ListByEducation(c.Context(), c.Params("educationId"), userID, role)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedGetActivities, err)
	}

	return presenters.SuccessResponse(c, listed(activities, len(activities)), fiber.StatusOK, domain.MessageSuccessGetActivities)
}

func (h *activityHandler) DeleteActivity(c *fiber.Ctx) error {
	userID, _ := currentUser(c)

	if err := h.activityService.DeleteActivity(c.Context(), c.Params("id"), userID); err != nil {
		return presenters.ServiceError(c, domain.MessageFailedDeleteActivity, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteActivity)
}
