package handlers

import (
	"career-bridge/domain"
	"career-bridge/internal/api/presenters"
	"career-bridge/pkg/withdrawal"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	WithdrawalHandler interface {
		CreateWithdrawal(c *fiber.Ctx) error
		GetUserWithdrawals(c *fiber.Ctx) error
		GetWithdrawalSummary(c *fiber.Ctx) error
		GetWithdrawalByID(c *fiber.Ctx) error
		GetByTransactionID(c *fiber.Ctx) error
		GetAllWithdrawals(c *fiber.Ctx) error
		GetByStatus(c *fiber.Ctx) error
		UpdateWithdrawalStatus(c *fiber.Ctx) error
		ProcessWithdrawal(c *fiber.Ctx) error
	}

	withdrawalHandler struct {
		withdrawalService withdrawal.WithdrawalService
		validator         *validator.Validate
	}
)

func NewWithdrawalHandler(withdrawalService withdrawal.WithdrawalService, validator *validator.Validate) WithdrawalHandler {
	return &withdrawalHandler{
		withdrawalService: withdrawalService,
		validator:         validator,
	}
}

func (h *withdrawalHandler) CreateWithdrawal(c *fiber.Ctx) error {
	userID, _ := currentUser(c)

	req := new(domain.CreateWithdrawalRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateWithdrawal, err)
	}

	resp, err := h.withdrawalService.CreateWithdrawal(c.Context(), *req, userID)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedCreateWithdrawal, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusCreated, domain.MessageSuccessCreateWithdrawal)
}

func (h *withdrawalHandler) GetUserWithdrawals(c *fiber.Ctx) error {
	userID, _ := currentUser(c)
	page, limit := pagination(c)

	withdrawals, count, err := h.withdrawalService.GetUserWithdrawals(c.Context(), userID, page, limit)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedGetWithdrawals, err)
	}

	return presenters.SuccessResponse(c, paged(withdrawals, len(withdrawals), page, limit, count), fiber.StatusOK, domain.MessageSuccessGetWithdrawals)
}

func (h *withdrawalHandler) GetWithdrawalSummary(c *fiber.Ctx) error {
	userID, _ := currentUser(c)

	summary, err := h.withdrawalService.GetWithdrawalSummary(c.Context(), userID)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedWithdrawalSummary, err)
	}

	return presenters.SuccessResponse(c, summary, fiber.StatusOK, domain.MessageSuccessWithdrawalSummary)
}

func (h *withdrawalHandler) GetWithdrawalByID(c *fiber.Ctx) error {
	userID, role := currentUser(c)

	resp, err := h.withdrawalService.GetWithdrawalByID(c.Context(), c.Params("id"), userID, role)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedGetWithdrawal, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessGetWithdrawal)
}

func (h *withdrawalHandler) GetByTransactionID(c *fiber.Ctx) error {
	userID, role := currentUser(c)

	resp, err := h.withdrawalService.GetByTransactionID(c.Context(), c.Params("txn"), userID, role)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedGetWithdrawal, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessGetWithdrawal)
}

func (h *withdrawalHandler) GetAllWithdrawals(c *fiber.Ctx) error {
	page, limit := pagination(c)

	withdrawals, count, err := h.withdrawalService.GetAllWithdrawals(c.Context(), page, limit)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedGetWithdrawals, err)
	}

	return presenters.SuccessResponse(c, paged(withdrawals, len(withdrawals), page, limit, count), fiber.StatusOK, domain.MessageSuccessGetWithdrawals)
}

func (h *withdrawalHandler) GetByStatus(c *fiber.Ctx) error {
	page, limit := pagination(c)

	withdrawals, count, err := h.withdrawalService.GetByStatus(c.Context(), c.Params("status"), page, limit)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedGetWithdrawals, err)
	}

	return presenters.SuccessResponse(c, paged(withdrawals, len(withdrawals), page, limit, count), fiber.StatusOK, domain.MessageSuccessGetWithdrawals)
}

func (h *withdrawalHandler) UpdateWithdrawalStatus(c *fiber.Ctx) error {
	req := new(domain.UpdateWithdrawalStatusRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateWithdrawal, err)
	}

	resp, err := h.withdrawalService.UpdateWithdrawalStatus(c.Context(), c.Params("id"), *req)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedUpdateWithdrawal, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessUpdateWithdrawal)
}

func (h *withdrawalHandler) ProcessWithdrawal(c *fiber.Ctx) error {
	resp, err := h.withdrawalService.ProcessWithdrawal(c.Context(), c.Params("id"))
	if err != nil {
		// a rejected payout still returns the FAILED withdrawal
		return presenters.ErrorResponseWithData(c, presenters.StatusCode(err), domain.MessageFailedProcessWithdrawal, resp, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessProcessWithdrawal)
}
