package withdrawal

import (
	"career-bridge/domain"
	"career-bridge/entities"
	"career-bridge/pkg/bankaccount"
	"career-bridge/pkg/payout"
	"career-bridge/pkg/points"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type (
	WithdrawalService interface {
		CreateWithdrawal(ctx context.Context, req domain.CreateWithdrawalRequest, userID string) (*domain.Withdrawal, error)
		GetUserWithdrawals(ctx context.Context, userID string, page, limit int) ([]*domain.Withdrawal, int64, error)
		GetWithdrawalByID(ctx context.Context, id string, userID string, role string) (*domain.Withdrawal, error)
		GetByTransactionID(ctx context.Context, transactionID string, userID string, role string) (*domain.Withdrawal, error)
		GetByStatus(ctx context.Context, status string, page, limit int) ([]*domain.Withdrawal, int64, error)
		GetAllWithdrawals(ctx context.Context, page, limit int) ([]*domain.Withdrawal, int64, error)
		UpdateWithdrawalStatus(ctx context.Context, id string, req domain.UpdateWithdrawalStatusRequest) (*domain.Withdrawal, error)
		ProcessWithdrawal(ctx context.Context, id string) (*domain.Withdrawal, error)
		GetWithdrawalSummary(ctx context.Context, userID string) (*domain.WithdrawalSummary, error)
	}

	withdrawalService struct {
		withdrawalRepository  WithdrawalRepository
		bankAccountRepository bankaccount.BankAccountRepository
		pointsService         points.PointsService
		payoutService         payout.PayoutService
		statusStrategy        StatusStrategy
		log                   *zerolog.Logger
	}
)

func NewWithdrawalService(
	withdrawalRepository WithdrawalRepository,
	bankAccountRepository bankaccount.BankAccountRepository,
	pointsService points.PointsService,
	payoutService payout.PayoutService,
	statusStrategy StatusStrategy,
	log *zerolog.Logger,
) WithdrawalService {
	if statusStrategy == nil {
		statusStrategy = PendingStrategy{}
	}
	return &withdrawalService{
		withdrawalRepository:  withdrawalRepository,
		bankAccountRepository: bankAccountRepository,
		pointsService:         pointsService,
		payoutService:         payoutService,
		statusStrategy:        statusStrategy,
		log:                   log,
	}
}

// NewTransactionID returns "TXN" followed by the unix millis and eight
// characters of a random UUID, uppercased.
func NewTransactionID() string {
	return strings.ToUpper("TXN" + strconv.FormatInt(time.Now().UnixMilli(), 10) + uuid.NewString()[:8])
}

func (s *withdrawalService) CreateWithdrawal(ctx context.Context, req domain.CreateWithdrawalRequest, userID string) (*domain.Withdrawal, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, domain.ErrUserIDRequired
	}
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	if req.Amount == nil || req.Amount.LessThan(decimal.NewFromInt(domain.MinimumWithdrawalAmount)) {
		return nil, domain.ErrMinimumWithdrawal
	}
	if req.PointsUsed <= 0 {
		return nil, domain.ErrPointsUsedRequired
	}

	bankDetails := ""
	upiID := strings.TrimSpace(req.UpiID)
	switch req.PaymentMethod {
	case domain.PaymentMethodBank:
		if req.BankAccountID != "" {
			bankDetails, err = s.savedAccountDetails(ctx, req.BankAccountID, userUUID)
		} else {
			bankDetails, err = requestedDetails(req.BankDetails)
		}
		if err != nil {
			return nil, err
		}
		upiID = ""
	case domain.PaymentMethodUpi:
		if upiID == "" || !strings.Contains(upiID, "@") {
			return nil, domain.ErrInvalidUpiID
		}
		bankDetails = ""
	default:
		return nil, domain.ErrInvalidPaymentMethod
	}

	if req.PointsUsed < points.PointsRequiredForDecimal(*req.Amount) {
		return nil, domain.ErrPointsDoNotCoverAmount
	}

	now := time.Now()
	withdrawal := &entities.Withdrawal{
		ID:            uuid.New(),
		UserID:        userUUID,
		Amount:        req.Amount.Round(2),
		PointsUsed:    req.PointsUsed,
		PaymentMethod: req.PaymentMethod,
		BankDetails:   bankDetails,
		UpiID:         upiID,
		Status:        s.statusStrategy.InitialStatus(),
		TransactionID: NewTransactionID(),
		Timestamp: entities.Timestamp{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	err = s.withdrawalRepository.Transaction(ctx, func(repo WithdrawalRepository, tx *gorm.DB) error {
		description := fmt.Sprintf("Withdrawal request %s", withdrawal.TransactionID)
		if err := s.pointsService.DeductPointsTx(ctx, tx, userUUID, req.PointsUsed, domain.ActivityWithdrawal, description); err != nil {
			return err
		}
		return repo.Create(ctx, withdrawal)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("user_id", userID).
		Str("transaction_id", withdrawal.TransactionID).
		Str("amount", withdrawal.Amount.StringFixed(2)).
		Int("points_used", withdrawal.PointsUsed).
		Str("status", withdrawal.Status).
		Msg("withdrawal requested")

	return toWithdrawal(withdrawal), nil
}

// requestedDetails serializes the bank details object sent with the request.
func requestedDetails(details map[string]any) (string, error) {
	if len(details) == 0 {
		return "", domain.ErrBankDetailsRequired
	}
	raw, err := json.Marshal(details)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func (s *withdrawalService) savedAccountDetails(ctx context.Context, accountID string, userID uuid.UUID) (string, error) {
	accountUUID, err := uuid.Parse(accountID)
	if err != nil {
		return "", domain.ErrBankAccountNotFound
	}

	account, err := s.bankAccountRepository.GetByIDAndUser(ctx, accountUUID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrBankAccountNotFound
		}
		return "", err
	}

	details, err := json.Marshal(domain.BankTransferDetails{
		BankName:      account.BankName,
		AccountHolder: account.AccountHolder,
		AccountNumber: account.AccountNumber,
		IfscCode:      account.IfscCode,
	})
	if err != nil {
		return "", err
	}
	return string(details), nil
}

func (s *withdrawalService) GetUserWithdrawals(ctx context.Context, userID string, page, limit int) ([]*domain.Withdrawal, int64, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, 0, domain.ErrParseUUID
	}

	rows, count, err := s.withdrawalRepository.GetByUser(ctx, userUUID, page, limit)
	if err != nil {
		return nil, 0, err
	}
	return toWithdrawals(rows), count, nil
}

func (s *withdrawalService) GetWithdrawalByID(ctx context.Context, id string, userID string, role string) (*domain.Withdrawal, error) {
	row, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if role != domain.RoleAdmin && row.UserID.String() != userID {
		return nil, domain.ErrWithdrawalNotFound
	}
	return toWithdrawal(row), nil
}

func (s *withdrawalService) GetByTransactionID(ctx context.Context, transactionID string, userID string, role string) (*domain.Withdrawal, error) {
	row, err := s.withdrawalRepository.GetByTransactionID(ctx, strings.ToUpper(transactionID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrWithdrawalNotFound
		}
		return nil, err
	}
	if role != domain.RoleAdmin && row.UserID.String() != userID {
		return nil, domain.ErrWithdrawalNotFound
	}
	return toWithdrawal(row), nil
}

func (s *withdrawalService) GetByStatus(ctx context.Context, status string, page, limit int) ([]*domain.Withdrawal, int64, error) {
	status = strings.ToUpper(status)
	if !isValidStatus(status) {
		return nil, 0, domain.ErrInvalidWithdrawalStatus
	}

	rows, count, err := s.withdrawalRepository.GetByStatus(ctx, status, page, limit)
	if err != nil {
		return nil, 0, err
	}
	return toWithdrawals(rows), count, nil
}

func (s *withdrawalService) GetAllWithdrawals(ctx context.Context, page, limit int) ([]*domain.Withdrawal, int64, error) {
	rows, count, err := s.withdrawalRepository.GetAll(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}
	return toWithdrawals(rows), count, nil
}

func (s *withdrawalService) UpdateWithdrawalStatus(ctx context.Context, id string, req domain.UpdateWithdrawalStatusRequest) (*domain.Withdrawal, error) {
	status := strings.ToUpper(strings.TrimSpace(req.Status))
	if !isValidStatus(status) {
		return nil, domain.ErrInvalidWithdrawalStatus
	}

	row, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	reason := ""
	if req.FailureReason != nil {
		reason = strings.TrimSpace(*req.FailureReason)
	}
	if err := s.transition(ctx, row, status, reason); err != nil {
		return nil, err
	}

	return s.reload(ctx, row.ID)
}

func (s *withdrawalService) ProcessWithdrawal(ctx context.Context, id string) (*domain.Withdrawal, error) {
	row, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.transition(ctx, row, domain.WithdrawalStatusProcessing, ""); err != nil {
		return nil, err
	}

	result, payoutErr := s.payoutService.CreatePayout(ctx, payoutRequest(row))
	if payoutErr != nil {
		s.log.Warn().
			Err(payoutErr).
			Str("transaction_id", row.TransactionID).
			Msg("payout rejected")

		row.Status = domain.WithdrawalStatusProcessing
		if err := s.transition(ctx, row, domain.WithdrawalStatusFailed, payoutErr.Error()); err != nil {
			return nil, err
		}
		failed, err := s.reload(ctx, row.ID)
		if err != nil {
			return nil, err
		}
		return failed, payoutErr
	}

	if err := s.withdrawalRepository.SetPayoutReference(ctx, row.ID, result.Reference); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("transaction_id", row.TransactionID).
		Str("payout_reference", result.Reference).
		Str("payout_status", result.Status).
		Msg("payout submitted")

	return s.reload(ctx, row.ID)
}

// transition moves row to status. A move to FAILED refunds the points in
// the same transaction.
func (s *withdrawalService) transition(ctx context.Context, row *entities.Withdrawal, status string, reason string) error {
	if !CanTransition(row.Status, status) {
		return fmt.Errorf("%w: %s to %s", domain.ErrInvalidStatusTransition, row.Status, status)
	}

	fields := map[string]any{}
	if status == domain.WithdrawalStatusFailed {
		fields["failure_reason"] = reason
	}

	err := s.withdrawalRepository.Transaction(ctx, func(repo WithdrawalRepository, tx *gorm.DB) error {
		ok, err := repo.CompareAndSetStatus(ctx, row.ID, row.Status, status, fields)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: %s changed concurrently", domain.ErrInvalidStatusTransition, row.TransactionID)
		}

		if status != domain.WithdrawalStatusFailed {
			return nil
		}
		description := fmt.Sprintf("Refund for withdrawal %s", row.TransactionID)
		return s.pointsService.RefundPointsTx(ctx, tx, row.UserID, row.PointsUsed, description)
	})
	if err != nil {
		return err
	}

	s.log.Info().
		Str("transaction_id", row.TransactionID).
		Str("from", row.Status).
		Str("to", status).
		Msg("withdrawal status changed")
	return nil
}

func (s *withdrawalService) GetWithdrawalSummary(ctx context.Context, userID string) (*domain.WithdrawalSummary, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	withdrawn, err := s.withdrawalRepository.SumAmountByStatus(ctx, userUUID, domain.WithdrawalStatusCompleted)
	if err != nil {
		return nil, err
	}
	pending, err := s.withdrawalRepository.SumAmountByStatus(ctx, userUUID, pendingStatuses...)
	if err != nil {
		return nil, err
	}
	count, err := s.withdrawalRepository.CountByUser(ctx, userUUID)
	if err != nil {
		return nil, err
	}
	balance, err := s.pointsService.GetUserPoints(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &domain.WithdrawalSummary{
		TotalWithdrawn:  withdrawn,
		PendingAmount:   pending,
		TotalRequests:   count,
		HasWithdrawals:  count > 0,
		AvailablePoints: balance.Points,
		AvailableCash:   points.CashValue(balance.Points),
	}, nil
}

func (s *withdrawalService) find(ctx context.Context, id string) (*entities.Withdrawal, error) {
	withdrawalUUID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrWithdrawalNotFound
	}

	row, err := s.withdrawalRepository.GetByID(ctx, withdrawalUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrWithdrawalNotFound
		}
		return nil, err
	}
	return row, nil
}

func (s *withdrawalService) reload(ctx context.Context, id uuid.UUID) (*domain.Withdrawal, error) {
	row, err := s.withdrawalRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toWithdrawal(row), nil
}

func payoutRequest(row *entities.Withdrawal) domain.PayoutRequest {
	req := domain.PayoutRequest{
		TransactionID: row.TransactionID,
		Amount:        row.Amount,
		Notes:         "CareerBridge withdrawal " + row.TransactionID,
	}

	if row.PaymentMethod == domain.PaymentMethodUpi {
		req.BeneficiaryName = row.UpiID
		req.BeneficiaryAccount = row.UpiID
		req.BeneficiaryBank = domain.PaymentMethodUpi
		return req
	}

	var details domain.BankTransferDetails
	if err := json.Unmarshal([]byte(row.BankDetails), &details); err == nil && details.AccountNumber != "" {
		req.BeneficiaryName = details.AccountHolder
		req.BeneficiaryAccount = details.AccountNumber
		req.BeneficiaryBank = strings.ToLower(details.BankName)
		return req
	}

	// details without an account number are forwarded as-is for an operator to read
	req.BeneficiaryAccount = row.BankDetails
	return req
}

func toWithdrawals(rows []*entities.Withdrawal) []*domain.Withdrawal {
	result := make([]*domain.Withdrawal, 0, len(rows))
	for _, row := range rows {
		result = append(result, toWithdrawal(row))
	}
	return result
}

func toWithdrawal(row *entities.Withdrawal) *domain.Withdrawal {
	return &domain.Withdrawal{
		ID:              row.ID.String(),
		UserID:          row.UserID.String(),
		Amount:          row.Amount,
		PointsUsed:      row.PointsUsed,
		PaymentMethod:   row.PaymentMethod,
		BankDetails:     bankDetailsObject(row.BankDetails),
		UpiID:           row.UpiID,
		Status:          row.Status,
		TransactionID:   row.TransactionID,
		FailureReason:   row.FailureReason,
		PayoutReference: row.PayoutReference,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
}

func bankDetailsObject(raw string) json.RawMessage {
	if raw == "" || !json.Valid([]byte(raw)) {
		return nil
	}
	return json.RawMessage(raw)
}
