package payout

import (
	"career-bridge/domain"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManualPayout(t *testing.T) {
	svc := NewManualPayoutService()

	result, err := svc.CreatePayout(context.Background(), domain.PayoutRequest{
		TransactionID:      "txn1700000000000abcd1234",
		BeneficiaryName:    "Asha Test",
		BeneficiaryAccount: "asha@upi",
		BeneficiaryBank:    domain.PaymentMethodUpi,
		Amount:             decimal.NewFromInt(120),
	})
	require.NoError(t, err)
	assert.Equal(t, "MANUAL-TXN1700000000000ABCD1234", result.Reference)
	assert.Equal(t, StatusQueued, result.Status)
}

func TestManualPayoutRejectsMissingAccount(t *testing.T) {
	_, err := NewManualPayoutService().CreatePayout(context.Background(), domain.PayoutRequest{
		TransactionID: "TXN1",
		Amount:        decimal.NewFromInt(60),
	})
	assert.ErrorIs(t, err, domain.ErrPayoutRejected)
}

func TestManualPayoutHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewManualPayoutService().CreatePayout(ctx, domain.PayoutRequest{BeneficiaryAccount: "x"})
	assert.ErrorIs(t, err, context.Canceled)
}
