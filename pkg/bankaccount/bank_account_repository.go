package bankaccount

import (
	"career-bridge/entities"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	BankAccountRepository interface {
		WithTx(tx *gorm.DB) BankAccountRepository
		Transaction(ctx context.Context, fn func(repo BankAccountRepository) error) error

		Create(ctx context.Context, account *entities.BankAccount) error
		ExistsByUserAndNumber(ctx context.Context, userID uuid.UUID, accountNumber string) (bool, error)
		CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
		GetByUser(ctx context.Context, userID uuid.UUID) ([]*entities.BankAccount, error)
		GetDefault(ctx context.Context, userID uuid.UUID) (*entities.BankAccount, error)
		GetByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entities.BankAccount, error)
		Delete(ctx context.Context, account *entities.BankAccount) error
		ClearDefault(ctx context.Context, userID uuid.UUID) error
		MarkDefault(ctx context.Context, id uuid.UUID) error
	}

	bankAccountRepository struct {
		db *gorm.DB
	}
)

func NewBankAccountRepository(db *gorm.DB) BankAccountRepository {
	return &bankAccountRepository{
		db: db,
	}
}

func (r *bankAccountRepository) WithTx(tx *gorm.DB) BankAccountRepository {
	return &bankAccountRepository{db: tx}
}

func (r *bankAccountRepository) Transaction(ctx context.Context, fn func(repo BankAccountRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(r.WithTx(tx))
	})
}

func (r *bankAccountRepository) Create(ctx context.Context, account *entities.BankAccount) error {
	return r.db.WithContext(ctx).Create(account).Error
}

func (r *bankAccountRepository) ExistsByUserAndNumber(ctx context.Context, userID uuid.UUID, accountNumber string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.BankAccount{}).
		Where("user_id = ? AND account_number = ?", userID, accountNumber).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *bankAccountRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.BankAccount{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *bankAccountRepository) GetByUser(ctx context.Context, userID uuid.UUID) ([]*entities.BankAccount, error) {
	var accounts []*entities.BankAccount
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}

func (r *bankAccountRepository) GetDefault(ctx context.Context, userID uuid.UUID) (*entities.BankAccount, error) {
	var account entities.BankAccount
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_default = ?", userID, true).
		First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *bankAccountRepository) GetByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entities.BankAccount, error) {
	var account entities.BankAccount
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *bankAccountRepository) Delete(ctx context.Context, account *entities.BankAccount) error {
	return r.db.WithContext(ctx).Delete(account).Error
}

func (r *bankAccountRepository) ClearDefault(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&entities.BankAccount{}).
		Where("user_id = ? AND is_default = ?", userID, true).
		Update("is_default", false).Error
}

func (r *bankAccountRepository) MarkDefault(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&entities.BankAccount{}).
		Where("id = ?", id).
		Update("is_default", true).Error
}
