package handlers

import (
	"career-bridge/domain"
	"career-bridge/internal/api/presenters"
	"career-bridge/pkg/points"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

const defaultLeaderboardSize = 10

type (
	PointsHandler interface {
		AddPoints(c *fiber.Ctx) error
		AwardPoints(c *fiber.Ctx) error
		DeductPoints(c *fiber.Ctx) error
		GetUserPoints(c *fiber.Ctx) error
		GetPointsHistory(c *fiber.Ctx) error
		GetPointsOverview(c *fiber.Ctx) error
		CalculateCash(c *fiber.Ctx) error
		CalculatePoints(c *fiber.Ctx) error
		GetLeaderboard(c *fiber.Ctx) error
	}

	pointsHandler struct {
		pointsService points.PointsService
		validator     *validator.Validate
	}
)

func NewPointsHandler(pointsService points.PointsService, validator *validator.Validate) PointsHandler {
	return &pointsHandler{
		pointsService: pointsService,
		validator:     validator,
	}
}

func (h *pointsHandler) AddPoints(c *fiber.Ctx) error {
	userID, _ := currentUser(c)

	req := new(domain.AddPointsRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddPoints, err)
	}

	data, err := h.pointsService.AddPoints(c.Context(), userID, req.ActivityType, req.Description)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedAddPoints, err)
	}

	return presenters.SuccessResponse(c, data, fiber.StatusOK, domain.MessageSuccessAddPoints)
}

func (h *pointsHandler) AwardPoints(c *fiber.Ctx) error {
	req := new(domain.AwardPointsRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddPoints, err)
	}

	data, err := h.pointsService.AddPointsDirect(c.Context(), req.UserID, req.Points, req.Description)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedAddPoints, err)
	}

	return presenters.SuccessResponse(c, data, fiber.StatusOK, domain.MessageSuccessAddPoints)
}

func (h *pointsHandler) DeductPoints(c *fiber.Ctx) error {
	userID, _ := currentUser(c)

	req := new(domain.DeductPointsRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeductPoints, err)
	}

	data, err := h.pointsService.DeductPoints(c.Context(), userID, req.Points, req.Description)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedDeductPoints, err)
	}

	return presenters.SuccessResponse(c, data, fiber.StatusOK, domain.MessageSuccessDeductPoints)
}

func (h *pointsHandler) GetUserPoints(c *fiber.Ctx) error {
	userID, _ := currentUser(c)

	data, err := h.pointsService.GetUserPoints(c.Context(), userID)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedGetUserPoints, err)
	}

	return presenters.SuccessResponse(c, data, fiber.StatusOK, domain.MessageSuccessGetUserPoints)
}

func (h *pointsHandler) GetPointsHistory(c *fiber.Ctx) error {
	userID, _ := currentUser(c)
	page, limit := paginationWithLimit(c, defaultHistoryLimit)

	history, count, err := h.pointsService.GetPointsHistory(c.Context(), userID, page, limit)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedGetPointsHistory, err)
	}

	return presenters.SuccessResponse(c, paged(history, len(history), page, limit, count), fiber.StatusOK, domain.MessageSuccessGetPointsHistory)
}

func (h *pointsHandler) GetPointsOverview(c *fiber.Ctx) error {
	userID, _ := currentUser(c)

	overview, err := h.pointsService.GetPointsOverview(c.Context(), userID)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedGetPointsOverview, err)
	}

	return presenters.SuccessResponse(c, overview, fiber.StatusOK, domain.MessageSuccessGetPointsOverview)
}

func (h *pointsHandler) CalculateCash(c *fiber.Ctx) error {
	pts, err := strconv.Atoi(c.Query("points"))
	if err != nil || pts < 0 {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCalculateCash, domain.ErrInvalidPointsAmount)
	}

	return presenters.SuccessResponse(c, domain.CashValueResponse{
		Points:    pts,
		CashValue: h.pointsService.GetCashValue(pts),
		Currency:  domain.Currency,
	}, fiber.StatusOK, domain.MessageSuccessCalculateCash)
}

func (h *pointsHandler) CalculatePoints(c *fiber.Ctx) error {
	amount, err := strconv.ParseFloat(c.Query("amount"), 64)
	if err != nil || amount <= 0 {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCalculatePoints, domain.ErrInvalidCashAmount)
	}

	return presenters.SuccessResponse(c, domain.PointsRequiredResponse{
		Amount:         amount,
		PointsRequired: h.pointsService.GetPointsRequiredForAmount(amount),
		Currency:       domain.Currency,
	}, fiber.StatusOK, domain.MessageSuccessCalculatePoints)
}

func (h *pointsHandler) GetLeaderboard(c *fiber.Ctx) error {
	limit, err := strconv.Atoi(c.Query("limit", strconv.Itoa(defaultLeaderboardSize)))
	if err != nil || limit < 1 {
		limit = defaultLeaderboardSize
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	board, err := h.pointsService.GetLeaderboard(c.Context(), limit)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedGetLeaderboard, err)
	}

	return presenters.SuccessResponse(c, board, fiber.StatusOK, domain.MessageSuccessGetLeaderboard)
}
