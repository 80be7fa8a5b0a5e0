package handlers

import (
	"career-bridge/domain"
	"career-bridge/internal/api/presenters"
	"career-bridge/pkg/personal"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	PersonalHandler interface {
		SavePersonalDetails(c *fiber.Ctx) error
		UpdatePersonalDetails(c *fiber.Ctx) error
		UpdateProfilePhoto(c *fiber.Ctx) error
		GetMyPersonalDetails(c *fiber.Ctx) error
		GetMyPersonalHistory(c *fiber.Ctx) error
		GetPersonalDetailsByID(c *fiber.Ctx) error
		GetAllPersonalDetails(c *fiber.Ctx) error
		GetPersonalDetailsByUser(c *fiber.Ctx) error
	}

	personalHandler struct {
		personalService personal.PersonalService
		validator       *validator.Validate
	}
)

func NewPersonalHandler(personalService personal.PersonalService, validator *validator.Validate) PersonalHandler {
	return &personalHandler{
		personalService: personalService,
		validator:       validator,
	}
}

func (h *personalHandler) SavePersonalDetails(c *fiber.Ctx) error {
	userID, _ := currentUser(c)

	req := domain.SavePersonalDetailsRequest{}
	if err := parseFormData(c, &req.Data); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req.Data); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSavePersonal, err)
	}
	req.ProfilePhoto = optionalFile(c, "profile_photo")

	resp, award, err := h.personalService.SavePersonalDetails(c.Context(), req, userID)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedSavePersonal, err)
	}

	return presenters.SuccessResponse(c, formResponse{Record: resp, PointsAward: award}, fiber.StatusCreated, domain.MessageSuccessSavePersonal)
}

func (h *personalHandler) UpdatePersonalDetails(c *fiber.Ctx) error {
	userID, _ := currentUser(c)

	req := new(domain.PersonalDetailsRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdatePersonal, err)
	}

	resp, award, err := h.personalService.UpdatePersonalDetails(c.Context(), *req, userID)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedUpdatePersonal, err)
	}

	return presenters.SuccessResponse(c, formResponse{Record: resp, PointsAward: award}, fiber.StatusOK, domain.MessageSuccessUpdatePersonal)
}

func (h *personalHandler) UpdateProfilePhoto(c *fiber.Ctx) error {
	userID, _ := currentUser(c)

	resp, err := h.personalService.UpdateProfilePhoto(c.Context(), optionalFile(c, "profile_photo"), userID)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedUpdateProfilePhoto, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessUpdateProfilePhoto)
}

func (h *personalHandler) GetMyPersonalDetails(c *fiber.Ctx) error {
	userID, _ := currentUser(c)

	resp, err := h.personalService.GetLatestByUser(c.Context(), userID)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedGetPersonal, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessGetPersonal)
}

func (h *personalHandler) GetMyPersonalHistory(c *fiber.Ctx) error {
	userID, _ := currentUser(c)

	records, err := h.personalService.GetAllByUser(c.Context(), userID)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedGetPersonal, err)
	}

	return presenters.SuccessResponse(c, listed(records, len(records)), fiber.StatusOK, domain.MessageSuccessGetPersonal)
}

func (h *personalHandler) GetPersonalDetailsByID(c *fiber.Ctx) error {
	userID, role := currentUser(c)

	resp, err := h.personalService.GetByID(c.Context(), c.Params("id"), userID, role)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedGetPersonal, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessGetPersonal)
}

func (h *personalHandler) GetAllPersonalDetails(c *fiber.Ctx) error {
	page, limit := pagination(c)

	records, count, err := h.personalService.GetAll(c.Context(), page, limit)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedGetPersonal, err)
	}

	return presenters.SuccessResponse(c, paged(records, len(records), page, limit, count), fiber.StatusOK, domain.MessageSuccessGetPersonal)
}

func (h *personalHandler) GetPersonalDetailsByUser(c *fiber.Ctx) error {
	records, err := h.personalService.GetAllByUser(c.Context(), c.Params("userId"))
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedGetPersonal, err)
	}

	return presenters.SuccessResponse(c, listed(records, len(records)), fiber.StatusOK, domain.MessageSuccessGetPersonal)
}
