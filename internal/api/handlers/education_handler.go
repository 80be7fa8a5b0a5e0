package handlers

import (
	"career-bridge/domain"
	"career-bridge/internal/api/presenters"
	"career-bridge/pkg/education"
	"fmt"
	"mime/multipart"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	EducationHandler interface {
		SaveEducationDetails(c *fiber.Ctx) error
		UpdateEducationDetails(c *fiber.Ctx) error
		GetMyEducationDetails(c *fiber.Ctx) error
		GetMyEducationHistory(c *fiber.Ctx) error
		GetEducationDetailsByID(c *fiber.Ctx) error
		GetAllEducationDetails(c *fiber.Ctx) error
		GetEducationDetailsByUser(c *fiber.Ctx) error
		GetColleges(c *fiber.Ctx) error
		GetByCollege(c *fiber.Ctx) error
		GetCollegeStats(c *fiber.Ctx) error
	}

	educationHandler struct {
		educationService education.EducationService
		validator        *validator.Validate
	}
)

func NewEducationHandler(educationService education.EducationService, validator *validator.Validate) EducationHandler {
	return &educationHandler{
		educationService: educationService,
		validator:        validator,
	}
}

func (h *educationHandler) SaveEducationDetails(c *fiber.Ctx) error {
	userID, _ := currentUser(c)

	req := domain.SaveEducationDetailsRequest{}
	if err := parseFormData(c, &req.Data); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req.Data); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveEducation, err)
	}

	req.TenthMarksheet = optionalFile(c, "tenth_marksheet")
	req.TwelfthMarksheet = optionalFile(c, "twelfth_marksheet")
	req.ActivityCertificates = make(map[int]*multipart.FileHeader)
	for i := 0; i < domain.MaxActivityCertificates; i++ {
		if file := optionalFile(c, fmt.Sprintf("activityCertificate%d", i)); file != nil {
			req.ActivityCertificates[i] = file
		}
	}

	resp, award, err := h.educationService.SaveEducationDetails(c.Context(), req, userID)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedSaveEducation, err)
	}

	return presenters.SuccessResponse(c, formResponse{Record: resp, PointsAward: award}, fiber.StatusCreated, domain.MessageSuccessSaveEducation)
}

func (h *educationHandler) UpdateEducationDetails(c *fiber.Ctx) error {
	userID, _ := currentUser(c)

	req := new(domain.EducationDetailsRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateEducation, err)
	}

	resp, award, err := h.educationService.UpdateEducationDetails(c.Context(), *req, userID)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedUpdateEducation, err)
	}

	return presenters.SuccessResponse(c, formResponse{Record: resp, PointsAward: award}, fiber.StatusOK, domain.MessageSuccessUpdateEducation)
}

func (h *educationHandler) GetMyEducationDetails(c *fiber.Ctx) error {
	userID, _ := currentUser(c)

	resp, err := h.educationService.GetLatestByUser(c.Context(), userID)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedGetEducation, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessGetEducation)
}

func (h *educationHandler) GetMyEducationHistory(c *fiber.Ctx) error {
	userID, _ := currentUser(c)

	records, err := h.educationService.GetAllByUser(c.Context(), userID)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedGetEducation, err)
	}

	return presenters.SuccessResponse(c, listed(records, len(records)), fiber.StatusOK, domain.MessageSuccessGetEducation)
}

func (h *educationHandler) GetEducationDetailsByID(c *fiber.Ctx) error {
	userID, role := currentUser(c)

	resp, err := h.educationService.GetByID(c.Context(), c.Params("id"), userID, role)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedGetEducation, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessGetEducation)
}

func (h *educationHandler) GetAllEducationDetails(c *fiber.Ctx) error {
	page, limit := pagination(c)

	records, count, err := h.educationService.GetAll(c.Context(), page, limit)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedGetEducation, err)
	}

	return presenters.SuccessResponse(c, paged(records, len(records), page, limit, count), fiber.StatusOK, domain.MessageSuccessGetEducation)
}

func (h *educationHandler) GetEducationDetailsByUser(c *fiber.Ctx) error {
	records, err := h.educationService.GetAllByUser(c.Context(), c.Params("userId"))
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedGetEducation, err)
	}

	return presenters.SuccessResponse(c, listed(records, len(records)), fiber.StatusOK, domain.MessageSuccessGetEducation)
}

func (h *educationHandler) GetColleges(c *fiber.Ctx) error {
	colleges, err := h.educationService.GetColleges(c.Context())
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedGetColleges, err)
	}

	return presenters.SuccessResponse(c, listed(colleges, len(colleges)), fiber.StatusOK, domain.MessageSuccessGetColleges)
}

func (h *educationHandler) GetByCollege(c *fiber.Ctx) error {
	records, err := h.educationService.GetByCollege(c.Context(), nameParam(c, "name"))
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedGetEducation, err)
	}

	return presenters.SuccessResponse(c, listed(records, len(records)), fiber.StatusOK, domain.MessageSuccessGetEducation)
}

func (h *educationHandler) GetCollegeStats(c *fiber.Ctx) error {
	stats, err := h.educationService.GetCollegeStats(c.Context(), nameParam(c, "name"))
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedGetCollegeStats, err)
	}

	return presenters.SuccessResponse(c, stats, fiber.StatusOK, domain.MessageSuccessGetCollegeStats)
}
