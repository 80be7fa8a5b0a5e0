package withdrawal

import (
	"career-bridge/domain"
	"career-bridge/entities"
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type (
	WithdrawalRepository interface {
		Transaction(ctx context.Context, fn func(repo WithdrawalRepository, tx *gorm.DB) error) error

		Create(ctx context.Context, withdrawal *entities.Withdrawal) error
		GetByID(ctx context.Context, id uuid.UUID) (*entities.Withdrawal, error)
		GetByTransactionID(ctx context.Context, transactionID string) (*entities.Withdrawal, error)
		GetByUser(ctx context.Context, userID uuid.UUID, page, limit int) ([]*entities.Withdrawal, int64, error)
		GetByStatus(ctx context.Context, status string, page, limit int) ([]*entities.Withdrawal, int64, error)
		GetAll(ctx context.Context, page, limit int) ([]*entities.Withdrawal, int64, error)

		// CompareAndSetStatus moves a row from one status to another and reports
		// false when the row was no longer in the expected status.
		CompareAndSetStatus(ctx context.Context, id uuid.UUID, from, to string, fields map[string]any) (bool, error)
		SetPayoutReference(ctx context.Context, id uuid.UUID, reference string) error

		SumAmountByStatus(ctx context.Context, userID uuid.UUID, statuses ...string) (decimal.Decimal, error)
		CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
		CountByStatus(ctx context.Context, status string) (int64, error)
	}

	withdrawalRepository struct {
		db *gorm.DB
	}
)

func NewWithdrawalRepository(db *gorm.DB) WithdrawalRepository {
	return &withdrawalRepository{
		db: db,
	}
}

func (r *withdrawalRepository) Transaction(ctx context.Context, fn func(repo WithdrawalRepository, tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&withdrawalRepository{db: tx}, tx)
	})
}

func (r *withdrawalRepository) Create(ctx context.Context, withdrawal *entities.Withdrawal) error {
	return r.db.WithContext(ctx).Create(withdrawal).Error
}

func (r *withdrawalRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Withdrawal, error) {
	var withdrawal entities.Withdrawal
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&withdrawal).Error; err != nil {
		return nil, err
	}
	return &withdrawal, nil
}

func (r *withdrawalRepository) GetByTransactionID(ctx context.Context, transactionID string) (*entities.Withdrawal, error) {
	var withdrawal entities.Withdrawal
	if err := r.db.WithContext(ctx).
		Where("transaction_id = ?", transactionID).
		First(&withdrawal).Error; err != nil {
		return nil, err
	}
	return &withdrawal, nil
}

func (r *withdrawalRepository) GetByUser(ctx context.Context, userID uuid.UUID, page, limit int) ([]*entities.Withdrawal, int64, error) {
	return r.paginate(ctx, r.db.Where("user_id = ?", userID), page, limit)
}

func (r *withdrawalRepository) GetByStatus(ctx context.Context, status string, page, limit int) ([]*entities.Withdrawal, int64, error) {
	return r.paginate(ctx, r.db.Where("status = ?", status), page, limit)
}

func (r *withdrawalRepository) GetAll(ctx context.Context, page, limit int) ([]*entities.Withdrawal, int64, error) {
	return r.paginate(ctx, r.db, page, limit)
}

func (r *withdrawalRepository) paginate(ctx context.Context, query *gorm.DB, page, limit int) ([]*entities.Withdrawal, int64, error) {
	var withdrawals []*entities.Withdrawal
	var count int64
	offset := (page - 1) * limit

	if err := query.WithContext(ctx).
		Model(&entities.Withdrawal{}).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&withdrawals).Error; err != nil {
		return nil, 0, err
	}

	return withdrawals, count, nil
}

func (r *withdrawalRepository) CompareAndSetStatus(ctx context.Context, id uuid.UUID, from, to string, fields map[string]any) (bool, error) {
	updates := map[string]any{
		"status":     to,
		"updated_at": time.Now(),
	}
	for k, v := range fields {
		updates[k] = v
	}

	res := r.db.WithContext(ctx).
		Model(&entities.Withdrawal{}).
		Where("id = ? AND status = ?", id, from).
		Updates(updates)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *withdrawalRepository) SetPayoutReference(ctx context.Context, id uuid.UUID, reference string) error {
	return r.db.WithContext(ctx).
		Model(&entities.Withdrawal{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"payout_reference": reference,
			"updated_at":       time.Now(),
		}).Error
}

func (r *withdrawalRepository) SumAmountByStatus(ctx context.Context, userID uuid.UUID, statuses ...string) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	if err := r.db.WithContext(ctx).
		Model(&entities.Withdrawal{}).
		Where("user_id = ? AND status IN ?", userID, statuses).
		Select("SUM(amount)").
		Row().Scan(&total); err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

func (r *withdrawalRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Withdrawal{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *withdrawalRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Withdrawal{}).
		Where("status = ?", status).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// pendingStatuses are the states whose amount is still owed to the user.
var pendingStatuses = []string{
	domain.WithdrawalStatusPending,
	domain.WithdrawalStatusApproved,
	domain.WithdrawalStatusProcessing,
}
