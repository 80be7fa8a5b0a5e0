package handlers

import (
	"career-bridge/domain"
	"career-bridge/internal/api/presenters"
	"career-bridge/pkg/bankaccount"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	BankAccountHandler interface {
		SaveBankAccount(c *fiber.Ctx) error
		GetBankAccounts(c *fiber.Ctx) error
		GetDefaultBankAccount(c *fiber.Ctx) error
		GetBankAccountByID(c *fiber.Ctx) error
		DeleteBankAccount(c *fiber.Ctx) error
		SetDefaultBankAccount(c *fiber.Ctx) error
	}

	bankAccountHandler struct {
		bankAccountService bankaccount.BankAccountService
		validator          *validator.Validate
	}
)

func NewBankAccountHandler(bankAccountService bankaccount.BankAccountService, validator *validator.Validate) BankAccountHandler {
	return &bankAccountHandler{
		bankAccountService: bankAccountService,
		validator:          validator,
	}
}

func (h *bankAccountHandler) SaveBankAccount(c *fiber.Ctx) error {
	userID, _ := currentUser(c)

	req := new(domain.SaveBankAccountRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveBankAccount, err)
	}

	resp, err := h.bankAccountService.SaveBankAccount(c.Context(), *req, userID)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedSaveBankAccount, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusCreated, domain.MessageSuccessSaveBankAccount)
}

func (h *bankAccountHandler) GetBankAccounts(c *fiber.Ctx) error {
	userID, _ := currentUser(c)

	accounts, err := h.bankAccountService.GetBankAccounts(c.Context(), userID)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedGetBankAccounts, err)
	}

	return presenters.SuccessResponse(c, listed(accounts, len(accounts)), fiber.StatusOK, domain.MessageSuccessGetBankAccounts)
}

func (h *bankAccountHandler) GetDefaultBankAccount(c *fiber.Ctx) error {
	userID, _ := currentUser(c)

	resp, err := h.bankAccountService.GetDefaultBankAccount(c.Context(), userID)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedGetBankAccount, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessGetBankAccount)
}

func (h *bankAccountHandler) GetBankAccountByID(c *fiber.Ctx) error {
	userID, _ := currentUser(c)

	resp, err := h.bankAccountService.GetBankAccountByID(c.Context(), c.Params("id"), userID)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedGetBankAccount, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessGetBankAccount)
}

func (h *bankAccountHandler) DeleteBankAccount(c *fiber.Ctx) error {
	userID, _ := currentUser(c)

	if err := h.bankAccountService.DeleteBankAccount(c.Context(), c.Params("id"), userID); err != nil {
		return presenters.ServiceError(c, domain.MessageFailedDeleteBankAccount, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteBankAccount)
}

func (h *bankAccountHandler) SetDefaultBankAccount(c *fiber.Ctx) error {
	userID, _ := currentUser(c)

	resp, err := h.bankAccountService.SetDefaultBankAccount(c.Context(), c.Params("id"), userID)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedSetDefaultBankAccount, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessSetDefaultBankAccount)
}
