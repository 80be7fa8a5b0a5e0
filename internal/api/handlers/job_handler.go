package handlers

import (
	"career-bridge/domain"
	"career-bridge/internal/api/presenters"
	"career-bridge/pkg/job"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	JobHandler interface {
		SaveJobDetails(c *fiber.Ctx) error
		UpdateJobDetails(c *fiber.Ctx) error
		GetMyJobDetails(c *fiber.Ctx) error
		GetMyJobHistory(c *fiber.Ctx) error
		GetJobDetailsByID(c *fiber.Ctx) error
		GetAllJobDetails(c *fiber.Ctx) error
		GetJobDetailsByUser(c *fiber.Ctx) error
		GetCompanies(c *fiber.Ctx) error
		GetByCompany(c *fiber.Ctx) error
		GetCompanyStats(c *fiber.Ctx) error
	}

	jobHandler struct {
		jobService job.JobService
		validator  *validator.Validate
	}
)

func NewJobHandler(jobService job.JobService, validator *validator.Validate) JobHandler {
	return &jobHandler{
		jobService: jobService,
		validator:  validator,
	}
}

func (h *jobHandler) SaveJobDetails(c *fiber.Ctx) error {
	userID, _ := currentUser(c)

	req := domain.SaveJobDetailsRequest{}
	if err := parseFormData(c, &req.Data); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req.Data); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveJob, err)
	}

	req.Resume = optionalFile(c, "resume")
	req.OfferLetter = optionalFile(c, "offer_letter")
	req.ExperienceLetter = optionalFile(c, "experience_letter")

	resp, award, err := h.jobService.SaveJobDetails(c.Context(), req, userID)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedSaveJob, err)
	}

	return presenters.SuccessResponse(c, formResponse{Record: resp, PointsAward: award}, fiber.StatusCreated, domain.MessageSuccessSaveJob)
}

func (h *jobHandler) UpdateJobDetails(c *fiber.Ctx) error {
	userID, _ := currentUser(c)

	req := new(domain.JobDetailsRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateJob, err)
	}

	resp, award, err := h.jobService.UpdateJobDetails(c.Context(), *req, userID)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedUpdateJob, err)
	}

	return presenters.SuccessResponse(c, formResponse{Record: resp, PointsAward: award}, fiber.StatusOK, domain.MessageSuccessUpdateJob)
}

func (h *jobHandler) GetMyJobDetails(c *fiber.Ctx) error {
	userID, _ := currentUser(c)

	resp, err := h.jobService.GetLatestByUser(c.Context(), userID)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedGetJob, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessGetJob)
}

func (h *jobHandler) GetMyJobHistory(c *fiber.Ctx) error {
	userID, _ := currentUser(c)

	records, err := h.jobService.GetAllByUser(c.Context(), userID)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedGetJob, err)
	}

	return presenters.SuccessResponse(c, listed(records, len(records)), fiber.StatusOK, domain.MessageSuccessGetJob)
}

func (h *jobHandler) GetJobDetailsByID(c *fiber.Ctx) error {
	userID, role := currentUser(c)

	resp, err := h.jobService.GetByID(c.Context(), c.Params("id"), userID, role)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedGetJob, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessGetJob)
}

func (h *jobHandler) GetAllJobDetails(c *fiber.Ctx) error {
	page, limit := pagination(c)

	records, count, err := h.jobService.GetAll(c.Context(), page, limit)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedGetJob, err)
	}

	return presenters.SuccessResponse(c, paged(records, len(records), page, limit, count), fiber.StatusOK, domain.MessageSuccessGetJob)
}

func (h *jobHandler) GetJobDetailsByUser(c *fiber.Ctx) error {
	records, err := h.jobService.GetAllByUser(c.Context(), c.Params("userId"))
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedGetJob, err)
	}

	return presenters.SuccessResponse(c, listed(records, len(records)), fiber.StatusOK, domain.MessageSuccessGetJob)
}

func (h *jobHandler) GetCompanies(c *fiber.Ctx) error {
	companies, err := h.jobService.GetCompanies(c.Context())
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedGetCompanies, err)
	}

	return presenters.SuccessResponse(c, listed(companies, len(companies)), fiber.StatusOK, domain.MessageSuccessGetCompanies)
}

func (h *jobHandler) GetByCompany(c *fiber.Ctx) error {
	records, err := h.jobService.GetByCompany(c.Context(), nameParam(c, "name"))
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedGetJob, err)
	}

	return presenters.SuccessResponse(c, listed(records, len(records)), fiber.StatusOK, domain.MessageSuccessGetJob)
}

func (h *jobHandler) GetCompanyStats(c *fiber.Ctx) error {
	stats, err := h.jobService.GetCompanyStats(c.Context(), nameParam(c, "name"))
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedGetCompanyStats, err)
	}

	return presenters.SuccessResponse(c, stats, fiber.StatusOK, domain.MessageSuccessGetCompanyStats)
}
