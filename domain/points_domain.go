package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddPoints         = "points added successfully"
	MessageSuccessDeductPoints      = "points deducted successfully"
	MessageSuccessGetUserPoints     = "user points retrieved successfully"
	MessageSuccessGetPointsHistory  = "points history retrieved successfully"
	MessageSuccessGetPointsOverview = "points overview retrieved successfully"
	MessageSuccessGetLeaderboard    = "leaderboard retrieved successfully"
	MessageSuccessCalculateCash     = "cash value calculated successfully"
	MessageSuccessCalculatePoints   = "points required calculated successfully"

	MessageFailedAddPoints         = "failed to add points"
	MessageFailedDeductPoints      = "failed to deduct points"
	MessageFailedGetUserPoints     = "failed to retrieve user points"
	MessageFailedGetPointsHistory  = "failed to retrieve points history"
	MessageFailedGetPointsOverview = "failed to retrieve points overview"
	MessageFailedGetLeaderboard    = "failed to retrieve leaderboard"
	MessageFailedCalculateCash     = "failed to calculate cash value"
	MessageFailedCalculatePoints   = "failed to calculate points required"

	ErrInvalidActivityType = errors.New("invalid activity type")
	ErrInsufficientPoints  = errors.New("insufficient points")
	ErrInvalidPointsAmount = errors.New("points must be greater than 0")
	ErrInvalidCashAmount   = errors.New("amount must be greater than 0")
)

const (
	PointsPerForm = 10

	// one point is worth this many rupees
	CashValuePerPoint = 4.0
	Currency          = "INR"

	ActivityPersonalForm    = "personal_form"
	ActivityEducationForm   = "education_form"
	ActivityJobForm         = "job_form"
	ActivityPersonalUpdate  = "personal_update"
	ActivityEducationUpdate = "education_update"
	ActivityJobUpdate       = "job_update"

	ActivityAdminAward       = "admin_award"
	ActivityDeduction        = "deduction"
	ActivityWithdrawal       = "withdrawal"
	ActivityWithdrawalRefund = "withdrawal_refund"

	RankBeginner     = "Beginner"
	RankStarter      = "Starter"
	RankRookie       = "Rookie"
	RankIntermediate = "Intermediate"
	RankAdvanced     = "Advanced"
	RankElite        = "Elite"
)

type (
	AddPointsRequest struct {
		ActivityType string `json:"activity_type" validate:"required"`
		Description  string `json:"description"`
	}

	AwardPointsRequest struct {
		UserID      string `json:"user_id" validate:"required,uuid"`
		Points      int    `json:"points" validate:"required,gt=0"`
		Description string `json:"description"`
	}

	DeductPointsRequest struct {
		Points      int    `json:"points" validate:"required,gt=0"`
		Description string `json:"description"`
	}

	PointsData struct {
		TotalPoints  int    `json:"total_points"`
		PointsEarned int    `json:"points_earned"`
		Level        int    `json:"level"`
		Rank         string `json:"rank"`
		Message      string `json:"message"`
	}

	UserPoints struct {
		Points      int       `json:"points"`
		Level       int       `json:"level"`
		Rank        string    `json:"rank"`
		LastUpdated time.Time `json:"last_updated"`
	}

	PointsHistory struct {
		ID           string    `json:"id"`
		UserID       string    `json:"user_id"`
		PointsEarned int       `json:"points_earned"`
		ActivityType string    `json:"activity_type"`
		Description  string    `json:"description"`
		CreatedAt    time.Time `json:"created_at"`
	}

	LeaderboardEntry struct {
		Position    int       `json:"position"`
		UserID      string    `json:"user_id"`
		Name        string    `json:"name"`
		Points      int       `json:"points"`
		Level       int       `json:"level"`
		Rank        string    `json:"rank"`
		LastUpdated time.Time `json:"last_updated"`
	}

	PointsOverview struct {
		Points           int              `json:"points"`
		Level            int              `json:"level"`
		Rank             string           `json:"rank"`
		CashValue        float64          `json:"cash_value"`
		Currency         string           `json:"currency"`
		TotalEarned      int              `json:"total_earned"`
		TotalDeducted    int              `json:"total_deducted"`
		HistoryCount     int64            `json:"history_count"`
		NextRank         string           `json:"next_rank,omitempty"`
		PointsToNextRank int              `json:"points_to_next_rank"`
		RecentHistory    []*PointsHistory `json:"recent_history"`
	}

	// PointsAward is attached to form saves and updates.
	PointsAward struct {
		PointsEarned  int    `json:"points_earned"`
		PointsMessage string `json:"points_message"`
	}

	CashValueResponse struct {
		Points    int     `json:"points"`
		CashValue float64 `json:"cash_value"`
		Currency  string  `json:"currency"`
	}

	PointsRequiredResponse struct {
		Amount         float64 `json:"amount"`
		PointsRequired int     `json:"points_required"`
		Currency       string  `json:"currency"`
	}
)
