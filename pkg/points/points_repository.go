package points

import (
	"career-bridge/entities"
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	PointsRepository interface {
		WithTx(tx *gorm.DB) PointsRepository
		Transaction(ctx context.Context, fn func(repo PointsRepository) error) error

		// Balance
		IncrementPoints(ctx context.Context, userID uuid.UUID, points int) error
		DecrementPoints(ctx context.Context, userID uuid.UUID, points int) (bool, error)
		UpdateLevel(ctx context.Context, userID uuid.UUID, level int) error
		GetUserPoints(ctx context.Context, userID uuid.UUID) (*entities.UserPoints, error)
		GetLeaderboard(ctx context.Context, limit int) ([]*entities.UserPoints, error)

		// History
		CreateHistory(ctx context.Context, history *entities.PointsHistory) error
		GetHistory(ctx context.Context, userID uuid.UUID, page, limit int) ([]*entities.PointsHistory, int64, error)
		GetHistoryTotals(ctx context.Context, userID uuid.UUID) (earned int, deducted int, err error)
		GetTotalAwarded(ctx context.Context) (int64, error)
	}

	pointsRepository struct {
		db *gorm.DB
	}
)

func NewPointsRepository(db *gorm.DB) PointsRepository {
	return &pointsRepository{
		db: db,
	}
}

func (r *pointsRepository) WithTx(tx *gorm.DB) PointsRepository {
	return &pointsRepository{db: tx}
}

func (r *pointsRepository) Transaction(ctx context.Context, fn func(repo PointsRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(r.WithTx(tx))
	})
}

// IncrementPoints creates the balance row on first use and otherwise adds to
// it in a single statement.
func (r *pointsRepository) IncrementPoints(ctx context.Context, userID uuid.UUID, points int) error {
	now := time.Now()
	row := &entities.UserPoints{
		ID:          uuid.New(),
		UserID:      userID,
		Points:      points,
		Level:       1,
		LastUpdated: now,
		Timestamp: entities.Timestamp{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"points":       gorm.Expr("user_points.points + ?", points),
				"last_updated": now,
				"updated_at":   now,
			}),
		}).
		Create(row).Error
}

// DecrementPoints subtracts only when the balance covers it. The boolean is
// false when no row qualified.
func (r *pointsRepository) DecrementPoints(ctx context.Context, userID uuid.UUID, points int) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&entities.UserPoints{}).
		Where("user_id = ? AND points >= ?", userID, points).
		Updates(map[string]any{
			"points":       gorm.Expr("points - ?", points),
			"last_updated": time.Now(),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *pointsRepository) UpdateLevel(ctx context.Context, userID uuid.UUID, level int) error {
	return r.db.WithContext(ctx).
		Model(&entities.UserPoints{}).
		Where("user_id = ?", userID).
		Update("level", level).Error
}

func (r *pointsRepository) GetUserPoints(ctx context.Context, userID uuid.UUID) (*entities.UserPoints, error) {
	var userPoints entities.UserPoints
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&userPoints).Error; err != nil {
		return nil, err
	}
	return &userPoints, nil
}

func (r *pointsRepository) GetLeaderboard(ctx context.Context, limit int) ([]*entities.UserPoints, error) {
	var rows []*entities.UserPoints
	if err := r.db.WithContext(ctx).
		Preload("User").
		Order("points DESC").
		Order("last_updated DESC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *pointsRepository) CreateHistory(ctx context.Context, history *entities.PointsHistory) error {
	return r.db.WithContext(ctx).Create(history).Error
}

func (r *pointsRepository) GetHistory(ctx context.Context, userID uuid.UUID, page, limit int) ([]*entities.PointsHistory, int64, error) {
	var history []*entities.PointsHistory
	var count int64
	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).
		Model(&entities.PointsHistory{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&history).Error; err != nil {
		return nil, 0, err
	}

	return history, count, nil
}

func (r *pointsRepository) GetHistoryTotals(ctx context.Context, userID uuid.UUID) (int, int, error) {
	var totals struct {
		Earned   int
		Deducted int
	}
	if err := r.db.WithContext(ctx).
		Model(&entities.PointsHistory{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(CASE WHEN points_earned > 0 THEN points_earned ELSE 0 END), 0) AS earned, " +
			"COALESCE(SUM(CASE WHEN points_earned < 0 THEN -points_earned ELSE 0 END), 0) AS deducted").
		Scan(&totals).Error; err != nil {
		return 0, 0, err
	}
	return totals.Earned, totals.Deducted, nil
}

func (r *pointsRepository) GetTotalAwarded(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&entities.PointsHistory{}).
		Where("points_earned > 0").
		Select("COALESCE(SUM(points_earned), 0)").
		Row().Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}
