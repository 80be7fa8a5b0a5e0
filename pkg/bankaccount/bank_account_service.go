package bankaccount

import (
	"career-bridge/domain"
	"career-bridge/entities"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type (
	BankAccountService interface {
		SaveBankAccount(ctx context.Context, req domain.SaveBankAccountRequest, userID string) (*domain.BankAccount, error)
		GetBankAccounts(ctx context.Context, userID string) ([]*domain.BankAccount, error)
		GetDefaultBankAccount(ctx context.Context, userID string) (*domain.BankAccount, error)
		GetBankAccountByID(ctx context.Context, id string, userID string) (*domain.BankAccount, error)
		DeleteBankAccount(ctx context.Context, id string, userID string) error
		SetDefaultBankAccount(ctx context.Context, id string, userID string) (*domain.BankAccount, error)
	}

	bankAccountService struct {
		bankAccountRepository BankAccountRepository
		log                   *zerolog.Logger
	}
)

func NewBankAccountService(bankAccountRepository BankAccountRepository, log *zerolog.Logger) BankAccountService {
	return &bankAccountService{
		bankAccountRepository: bankAccountRepository,
		log:                   log,
	}
}

func (s *bankAccountService) SaveBankAccount(ctx context.Context, req domain.SaveBankAccountRequest, userID string) (*domain.BankAccount, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	account := &entities.BankAccount{
		ID:            uuid.New(),
		UserID:        userUUID,
		BankName:      req.BankName,
		AccountHolder: req.AccountHolder,
		AccountNumber: req.AccountNumber,
		IfscCode:      req.IfscCode,
		Timestamp: entities.Timestamp{
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}

	err = s.bankAccountRepository.Transaction(ctx, func(repo BankAccountRepository) error {
		exists, err := repo.ExistsByUserAndNumber(ctx, userUUID, req.AccountNumber)
		if err != nil {
			return err
		}
		if exists {
			return domain.ErrBankAccountExists
		}

		count, err := repo.CountByUser(ctx, userUUID)
		if err != nil {
			return err
		}
		account.IsDefault = count == 0

		return repo.Create(ctx, account)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", userID).Str("account_id", account.ID.String()).Msg("bank account saved")
	return toBankAccount(account), nil
}

func (s *bankAccountService) GetBankAccounts(ctx context.Context, userID string) ([]*domain.BankAccount, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	accounts, err := s.bankAccountRepository.GetByUser(ctx, userUUID)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.BankAccount, 0, len(accounts))
	for _, account := range accounts {
		result = append(result, toBankAccount(account))
	}
	return result, nil
}

func (s *bankAccountService) GetDefaultBankAccount(ctx context.Context, userID string) (*domain.BankAccount, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	account, err := s.bankAccountRepository.GetDefault(ctx, userUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBankAccountNotFound
		}
		return nil, err
	}
	return toBankAccount(account), nil
}

func (s *bankAccountService) GetBankAccountByID(ctx context.Context, id string, userID string) (*domain.BankAccount, error) {
	account, err := s.find(ctx, s.bankAccountRepository, id, userID)
	if err != nil {
		return nil, err
	}
	return toBankAccount(account), nil
}

func (s *bankAccountService) DeleteBankAccount(ctx context.Context, id string, userID string) error {
	err := s.bankAccountRepository.Transaction(ctx, func(repo BankAccountRepository) error {
		account, err := s.find(ctx, repo, id, userID)
		if err != nil {
			return err
		}

		if err := repo.Delete(ctx, account); err != nil {
			return err
		}
		if !account.IsDefault {
			return nil
		}

		remaining, err := repo.GetByUser(ctx, account.UserID)
		if err != nil {
			return err
		}
		if len(remaining) == 0 {
			return nil
		}
		return repo.MarkDefault(ctx, remaining[0].ID)
	})
	if err != nil {
		return err
	}

	s.log.Info().Str("user_id", userID).Str("account_id", id).Msg("bank account deleted")
	return nil
}

func (s *bankAccountService) SetDefaultBankAccount(ctx context.Context, id string, userID string) (*domain.BankAccount, error) {
	var account *entities.BankAccount
	err := s.bankAccountRepository.Transaction(ctx, func(repo BankAccountRepository) error {
		var err error
		account, err = s.find(ctx, repo, id, userID)
		if err != nil {
			return err
		}

		if err := repo.ClearDefault(ctx, account.UserID); err != nil {
			return err
		}
		return repo.MarkDefault(ctx, account.ID)
	})
	if err != nil {
		return nil, err
	}

	account.IsDefault = true
	return toBankAccount(account), nil
}

func (s *bankAccountService) find(ctx context.Context, repo BankAccountRepository, id string, userID string) (*entities.BankAccount, error) {
	accountUUID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrBankAccountNotFound
	}
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	account, err := repo.GetByIDAndUser(ctx, accountUUID, userUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBankAccountNotFound
		}
		return nil, err
	}
	return account, nil
}

func toBankAccount(account *entities.BankAccount) *domain.BankAccount {
	return &domain.BankAccount{
		ID:            account.ID.String(),
		UserID:        account.UserID.String(),
		BankName:      account.BankName,
		AccountHolder: account.AccountHolder,
		AccountNumber: account.AccountNumber,
		IfscCode:      account.IfscCode,
		IsDefault:     account.IsDefault,
		CreatedAt:     account.CreatedAt,
	}
}
