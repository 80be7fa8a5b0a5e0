package presenters

import (
	"career-bridge/domain"
	"career-bridge/internal/utils"
	"career-bridge/internal/utils/storage"
	"errors"

	"github.com/gofiber/fiber/v2"
)

type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data any, statusCode int, message string) error {
	return c.Status(statusCode).JSON(Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *fiber.Ctx, statusCode int, message string, err error) error {
	return ErrorResponseWithData(c, statusCode, message, nil, err)
}

// ErrorResponseWithData reports a failure that still produced a result the
// caller should see, such as a payout that left the withdrawal FAILED.
func ErrorResponseWithData(c *fiber.Ctx, statusCode int, message string, data any, err error) error {
	resp := Response{
		Success: false,
		Message: message,
		Data:    data,
	}
	if err != nil {
		resp.Error = utils.FormatValidationError(err)
	}
	return c.Status(statusCode).JSON(resp)
}

// ServiceError answers with the status code that fits a service error.
func ServiceError(c *fiber.Ctx, message string, err error) error {
	return ErrorResponse(c, StatusCode(err), message, err)
}

var statusByError = []struct {
	status int
	errs   []error
}{
	{fiber.StatusNotFound, []error{
		domain.ErrUserNotFound,
		domain.ErrAdminNotFound,
		domain.ErrWithdrawalNotFound,
		domain.ErrBankAccountNotFound,
		domain.ErrPersonalDetailsNotFound,
		domain.ErrEducationDetailsNotFound,
		domain.ErrJobDetailsNotFound,
		domain.ErrActivityNotFound,
	}},
	{fiber.StatusUnauthorized, []error{
		domain.ErrInvalidCredentials,
		domain.ErrTokenNotFound,
		domain.ErrTokenExpired,
		domain.ErrTokenInvalid,
		domain.ErrInvalidResetPurpose,
	}},
	{fiber.StatusForbidden, []error{
		domain.ErrUserNotAllowed,
		domain.ErrAccountInactive,
	}},
	{fiber.StatusConflict, []error{
		domain.ErrEmailAlreadyExists,
		domain.ErrBankAccountExists,
	}},
	{fiber.StatusBadGateway, []error{
		domain.ErrPayoutRejected,
	}},
	{fiber.StatusServiceUnavailable, []error{
		domain.ErrPayoutGatewayUnavailable,
	}},
	{fiber.StatusBadRequest, []error{
		domain.ErrParseUUID,
		domain.ErrInvalidActivityType,
		domain.ErrInsufficientPoints,
		domain.ErrInvalidPointsAmount,
		domain.ErrInvalidCashAmount,
		domain.ErrUserIDRequired,
		domain.ErrMinimumWithdrawal,
		domain.ErrPointsUsedRequired,
		domain.ErrInvalidPaymentMethod,
		domain.ErrBankDetailsRequired,
		domain.ErrInvalidUpiID,
		domain.ErrPointsDoNotCoverAmount,
		domain.ErrInvalidWithdrawalStatus,
		domain.ErrInvalidStatusTransition,
		domain.ErrProfilePhotoRequired,
		domain.ErrFormDataRequired,
		domain.ErrInvalidCollegeActivitiesJSON,
		domain.ErrCompanyAndRoleRequired,
		storage.ErrFileTypeNotAllowed,
		storage.ErrEmptyFile,
	}},
}

// StatusCode maps domain sentinels to HTTP status codes. Anything unknown is
// an internal error.
func StatusCode(err error) int {
	for _, group := range statusByError {
		for _, target := range group.errs {
			if errors.Is(err, target) {
				return group.status
			}
		}
	}
	return fiber.StatusInternalServerError
}
