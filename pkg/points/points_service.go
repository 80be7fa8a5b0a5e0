package points

import (
	"career-bridge/domain"
	"career-bridge/entities"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

const recentHistorySize = 5

type (
	PointsService interface {
		AddPoints(ctx context.Context, userID string, activityType string, description string) (*domain.PointsData, error)
		AddPointsDirect(ctx context.Context, userID string, points int, description string) (*domain.PointsData, error)
		DeductPoints(ctx context.Context, userID string, points int, description string) (*domain.PointsData, error)
		GetUserPoints(ctx context.Context, userID string) (*domain.UserPoints, error)
		GetPointsHistory(ctx context.Context, userID string, page, limit int) ([]*domain.PointsHistory, int64, error)
		GetLeaderboard(ctx context.Context, limit int) ([]*domain.LeaderboardEntry, error)
		GetPointsOverview(ctx context.Context, userID string) (*domain.PointsOverview, error)
		GetCashValue(points int) float64
		GetPointsRequiredForAmount(amount float64) int

		// Tx variants let other services move points inside their own transaction.
		DeductPointsTx(ctx context.Context, tx *gorm.DB, userID uuid.UUID, points int, activityType string, description string) error
		RefundPointsTx(ctx context.Context, tx *gorm.DB, userID uuid.UUID, points int, description string) error
	}

	pointsService struct {
		pointsRepository PointsRepository
		log              *zerolog.Logger
	}
)

func NewPointsService(pointsRepository PointsRepository, log *zerolog.Logger) PointsService {
	return &pointsService{
		pointsRepository: pointsRepository,
		log:              log,
	}
}

func (s *pointsService) AddPoints(ctx context.Context, userID string, activityType string, description string) (*domain.PointsData, error) {
	award, err := CalculatePoints(activityType)
	if err != nil {
		return nil, err
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	return s.credit(ctx, userUUID, award, activityKey(activityType), description)
}

func (s *pointsService) AddPointsDirect(ctx context.Context, userID string, points int, description string) (*domain.PointsData, error) {
	if points <= 0 {
		return nil, domain.ErrInvalidPointsAmount
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	if description == "" {
		description = fmt.Sprintf("Awarded %d points", points)
	}
	return s.credit(ctx, userUUID, points, domain.ActivityAdminAward, description)
}

func (s *pointsService) credit(ctx context.Context, userID uuid.UUID, points int, activityType string, description string) (*domain.PointsData, error) {
	var balance *entities.UserPoints
	err := s.pointsRepository.Transaction(ctx, func(repo PointsRepository) error {
		var err error
		balance, err = applyCredit(ctx, repo, userID, points, activityType, description)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("user_id", userID.String()).
		Str("activity_type", activityType).
		Int("points", points).
		Int("total", balance.Points).
		Msg("points awarded")

	return &domain.PointsData{
		TotalPoints:  balance.Points,
		PointsEarned: points,
		Level:        balance.Level,
		Rank:         CalculateRank(balance.Points),
		Message:      fmt.Sprintf("Earned %d points!", points),
	}, nil
}

func (s *pointsService) DeductPoints(ctx context.Context, userID string, points int, description string) (*domain.PointsData, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	var balance *entities.UserPoints
	err = s.pointsRepository.Transaction(ctx, func(repo PointsRepository) error {
		var err error
		balance, err = applyDebit(ctx, repo, userUUID, points, domain.ActivityDeduction, description)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("user_id", userID).
		Int("points", points).
		Int("total", balance.Points).
		Msg("points deducted")

	return &domain.PointsData{
		TotalPoints:  balance.Points,
		PointsEarned: -points,
		Level:        balance.Level,
		Rank:         CalculateRank(balance.Points),
		Message:      fmt.Sprintf("Deducted %d points", points),
	}, nil
}

func (s *pointsService) DeductPointsTx(ctx context.Context, tx *gorm.DB, userID uuid.UUID, points int, activityType string, description string) error {
	_, err := applyDebit(ctx, s.pointsRepository.WithTx(tx), userID, points, activityType, description)
	return err
}

func (s *pointsService) RefundPointsTx(ctx context.Context, tx *gorm.DB, userID uuid.UUID, points int, description string) error {
	if points <= 0 {
		return domain.ErrInvalidPointsAmount
	}
	_, err := applyCredit(ctx, s.pointsRepository.WithTx(tx), userID, points, domain.ActivityWithdrawalRefund, description)
	return err
}

// applyCredit must run inside a transaction: balance, level and history move together.
func applyCredit(ctx context.Context, repo PointsRepository, userID uuid.UUID, points int, activityType string, description string) (*entities.UserPoints, error) {
	if err := repo.IncrementPoints(ctx, userID, points); err != nil {
		return nil, err
	}
	return finishLedgerEntry(ctx, repo, userID, points, activityType, description)
}

func applyDebit(ctx context.Context, repo PointsRepository, userID uuid.UUID, points int, activityType string, description string) (*entities.UserPoints, error) {
	if points <= 0 {
		return nil, domain.ErrInvalidPointsAmount
	}

	ok, err := repo.DecrementPoints(ctx, userID, points)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrInsufficientPoints
	}
	if description == "" {
		description = fmt.Sprintf("Deducted %d points", points)
	}
	return finishLedgerEntry(ctx, repo, userID, -points, activityType, description)
}

func finishLedgerEntry(ctx context.Context, repo PointsRepository, userID uuid.UUID, delta int, activityType string, description string) (*entities.UserPoints, error) {
	balance, err := repo.GetUserPoints(ctx, userID)
	if err != nil {
		return nil, err
	}

	if level := CalculateLevel(balance.Points); level != balance.Level {
		if err := repo.UpdateLevel(ctx, userID, level); err != nil {
			return nil, err
		}
		balance.Level = level
	}

	now := time.Now()
	history := &entities.PointsHistory{
		ID:           uuid.New(),
		UserID:       userID,
		PointsEarned: delta,
		ActivityType: activityType,
		Description:  description,
		Timestamp: entities.Timestamp{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	if err := repo.CreateHistory(ctx, history); err != nil {
		return nil, err
	}

	return balance, nil
}

func (s *pointsService) GetUserPoints(ctx context.Context, userID string) (*domain.UserPoints, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	balance, err := s.pointsRepository.GetUserPoints(ctx, userUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &domain.UserPoints{
				Points:      0,
				Level:       1,
				Rank:        domain.RankBeginner,
				LastUpdated: time.Now(),
			}, nil
		}
		return nil, err
	}

	return &domain.UserPoints{
		Points:      balance.Points,
		Level:       balance.Level,
		Rank:        CalculateRank(balance.Points),
		LastUpdated: balance.LastUpdated,
	}, nil
}

func (s *pointsService) GetPointsHistory(ctx context.Context, userID string, page, limit int) ([]*domain.PointsHistory, int64, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, 0, domain.ErrParseUUID
	}

	rows, count, err := s.pointsRepository.GetHistory(ctx, userUUID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	return toHistory(rows), count, nil
}

func toHistory(rows []*entities.PointsHistory) []*domain.PointsHistory {
	result := make([]*domain.PointsHistory, 0, len(rows))
	for _, h := range rows {
		result = append(result, &domain.PointsHistory{
			ID:           h.ID.String(),
			UserID:       h.UserID.String(),
			PointsEarned: h.PointsEarned,
			ActivityType: h.ActivityType,
			Description:  h.Description,
			CreatedAt:    h.CreatedAt,
		})
	}
	return result
}

func (s *pointsService) GetLeaderboard(ctx context.Context, limit int) ([]*domain.LeaderboardEntry, error) {
	rows, err := s.pointsRepository.GetLeaderboard(ctx, limit)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.LeaderboardEntry, 0, len(rows))
	for i, row := range rows {
		entry := &domain.LeaderboardEntry{
			Position:    i + 1,
			UserID:      row.UserID.String(),
			Points:      row.Points,
			Level:       row.Level,
			Rank:        CalculateRank(row.Points),
			LastUpdated: row.LastUpdated,
		}
		if row.User != nil {
			entry.Name = row.User.FirstName + " " + row.User.LastName
		}
		result = append(result, entry)
	}
	return result, nil
}

func (s *pointsService) GetPointsOverview(ctx context.Context, userID string) (*domain.PointsOverview, error) {
	balance, err := s.GetUserPoints(ctx, userID)
	if err != nil {
		return nil, err
	}
	userUUID, _ := uuid.Parse(userID)

	earned, deducted, err := s.pointsRepository.GetHistoryTotals(ctx, userUUID)
	if err != nil {
		return nil, err
	}

	recent, count, err := s.pointsRepository.GetHistory(ctx, userUUID, 1, recentHistorySize)
	if err != nil {
		return nil, err
	}

	nextRank, missing := NextRank(balance.Points)
	return &domain.PointsOverview{
		Points:           balance.Points,
		Level:            balance.Level,
		Rank:             balance.Rank,
		CashValue:        CashValue(balance.Points),
		Currency:         domain.Currency,
		TotalEarned:      earned,
		TotalDeducted:    deducted,
		HistoryCount:     count,
		NextRank:         nextRank,
		PointsToNextRank: missing,
		RecentHistory:    toHistory(recent),
	}, nil
}

func (s *pointsService) GetCashValue(points int) float64 {
	return CashValue(points)
}

func (s *pointsService) GetPointsRequiredForAmount(amount float64) int {
	return PointsRequiredForAmount(amount)
}

// AwardActivity credits a form activity on behalf of a feature that has
// already persisted its record. A failed award is logged and reported as zero
// points instead of failing the save.
func AwardActivity(ctx context.Context, svc PointsService, log *zerolog.Logger, userID string, activityType string, description string, message string) domain.PointsAward {
	data, err := svc.AddPoints(ctx, userID, activityType, description)
	if err != nil {
		log.Error().
			Err(err).
			Str("user_id", userID).
			Str("activity_type", activityType).
			Msg("failed to award points")
		return domain.PointsAward{}
	}
	return domain.PointsAward{
		PointsEarned:  data.PointsEarned,
		PointsMessage: message,
	}
}
