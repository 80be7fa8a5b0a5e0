package bankaccount

import (
	"career-bridge/domain"
	"career-bridge/internal/testutil"
	"career-bridge/internal/utils/logger"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func saveRequest(number string) domain.SaveBankAccountRequest {
	return domain.SaveBankAccountRequest{
		BankName:      "State Bank of India",
		AccountHolder: "Asha Test",
		AccountNumber: number,
		IfscCode:      "SBIN0001234",
	}
}

func TestSaveBankAccountDefaults(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewBankAccountService(NewBankAccountRepository(db), logger.Nop())
	ctx := context.Background()
	user := testutil.CreateUser(t, db, "Asha")

	first, err := svc.SaveBankAccount(ctx, saveRequest("11112222"), user.ID.String())
	require.NoError(t, err)
	assert.True(t, first.IsDefault)

	second, err := svc.SaveBankAccount(ctx, saveRequest("33334444"), user.ID.String())
	require.NoError(t, err)
	assert.False(t, second.IsDefault)

	_, err = svc.SaveBankAccount(ctx, saveRequest("11112222"), user.ID.String())
	assert.ErrorIs(t, err, domain.ErrBankAccountExists)

	other := testutil.CreateUser(t, db, "Ravi")
	_, err = svc.SaveBankAccount(ctx, saveRequest("11112222"), other.ID.String())
	assert.NoError(t, err)

	accounts, err := svc.GetBankAccounts(ctx, user.ID.String())
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, second.ID, accounts[0].ID)
}

func TestSetDefaultClearsOthers(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewBankAccountService(NewBankAccountRepository(db), logger.Nop())
	ctx := context.Background()
	user := testutil.CreateUser(t, db, "Meera")

	first, err := svc.SaveBankAccount(ctx, saveRequest("11112222"), user.ID.String())
	require.NoError(t, err)
	second, err := svc.SaveBankAccount(ctx, saveRequest("33334444"), user.ID.String())
	require.NoError(t, err)

	updated, err := svc.SetDefaultBankAccount(ctx, second.ID, user.ID.String())
	require.NoError(t, err)
	assert.True(t, updated.IsDefault)

	def, err := svc.GetDefaultBankAccount(ctx, user.ID.String())
	require.NoError(t, err)
	assert.Equal(t, second.ID, def.ID)

	old, err := svc.GetBankAccountByID(ctx, first.ID, user.ID.String())
	require.NoError(t, err)
	assert.False(t, old.IsDefault)
}

func TestDeleteDefaultPromotesNewest(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewBankAccountService(NewBankAccountRepository(db), logger.Nop())
	ctx := context.Background()
	user := testutil.CreateUser(t, db, "Kiran")

	first, err := svc.SaveBankAccount(ctx, saveRequest("11112222"), user.ID.String())
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	_, err = svc.SaveBankAccount(ctx, saveRequest("33334444"), user.ID.String())
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	newest, err := svc.SaveBankAccount(ctx, saveRequest("55556666"), user.ID.String())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteBankAccount(ctx, first.ID, user.ID.String()))

	def, err := svc.GetDefaultBankAccount(ctx, user.ID.String())
	require.NoError(t, err)
	assert.Equal(t, newest.ID, def.ID)

	_, err = svc.GetBankAccountByID(ctx, first.ID, user.ID.String())
	assert.ErrorIs(t, err, domain.ErrBankAccountNotFound)
}

func TestBankAccountsAreScopedToOwner(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewBankAccountService(NewBankAccountRepository(db), logger.Nop())
	ctx := context.Background()
	owner := testutil.CreateUser(t, db, "Owner")
	stranger := testutil.CreateUser(t, db, "Stranger")

	account, err := svc.SaveBankAccount(ctx, saveRequest("11112222"), owner.ID.String())
	require.NoError(t, err)

	_, err = svc.GetBankAccountByID(ctx, account.ID, stranger.ID.String())
	assert.ErrorIs(t, err, domain.ErrBankAccountNotFound)
	assert.ErrorIs(t, svc.DeleteBankAccount(ctx, account.ID, stranger.ID.String()), domain.ErrBankAccountNotFound)
	assert.ErrorIs(t, svc.DeleteBankAccount(ctx, uuid.NewString(), owner.ID.String()), domain.ErrBankAccountNotFound)

	_, err = svc.GetDefaultBankAccount(ctx, stranger.ID.String())
	assert.ErrorIs(t, err, domain.ErrBankAccountNotFound)
}
