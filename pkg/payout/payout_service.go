// Package payout submits approved withdrawals to a disbursement provider.
package payout

import (
	"career-bridge/domain"
	"career-bridge/internal/utils"
	"context"
	"fmt"
	"strings"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/iris"
)

const StatusQueued = "queued"

type (
	PayoutService interface {
		CreatePayout(ctx context.Context, req domain.PayoutRequest) (*domain.PayoutResult, error)
	}

	irisPayoutService struct {
		client iris.Client
	}

	manualPayoutService struct{}
)

// NewPayoutService returns the Iris gateway when an API key is configured and
// a manual queue otherwise.
func NewPayoutService() PayoutService {
	apiKey := utils.GetConfig("IRIS_API_KEY")
	if apiKey == "" {
		return NewManualPayoutService()
	}
	return NewIrisPayoutService(apiKey, utils.GetConfig("IsProd") == "true")
}

func NewIrisPayoutService(apiKey string, isProd bool) PayoutService {
	env := midtrans.Sandbox
	if isProd {
		env = midtrans.Production
	}

	var client iris.Client
	client.New(apiKey, env)
	return &irisPayoutService{client: client}
}

func (s *irisPayoutService) CreatePayout(ctx context.Context, req domain.PayoutRequest) (*domain.PayoutResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	resp, merr := s.client.CreatePayout(iris.CreatePayoutReq{
		Payouts: []iris.CreatePayoutDetailReq{
			{
				BeneficiaryName:    req.BeneficiaryName,
				BeneficiaryAccount: req.BeneficiaryAccount,
				BeneficiaryBank:    req.BeneficiaryBank,
				BeneficiaryEmail:   req.BeneficiaryEmail,
				Amount:             req.Amount.StringFixed(2),
				Notes:              req.Notes,
			},
		},
	})
	if merr != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrPayoutRejected, merr.GetMessage())
	}
	if resp == nil || len(resp.Payouts) == 0 {
		return nil, fmt.Errorf("%w: empty response", domain.ErrPayoutRejected)
	}

	return &domain.PayoutResult{
		Reference: resp.Payouts[0].ReferenceNo,
		Status:    resp.Payouts[0].Status,
	}, nil
}

// NewManualPayoutService queues payouts for an operator to disburse by hand.
func NewManualPayoutService() PayoutService {
	return &manualPayoutService{}
}

func (s *manualPayoutService) CreatePayout(ctx context.Context, req domain.PayoutRequest) (*domain.PayoutResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if req.BeneficiaryAccount == "" {
		return nil, fmt.Errorf("%w: beneficiary account is empty", domain.ErrPayoutRejected)
	}
	return &domain.PayoutResult{
		Reference: "MANUAL-" + strings.ToUpper(req.TransactionID),
		Status:    StatusQueued,
	}, nil
}
