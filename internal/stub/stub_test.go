package stub_test

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wallet-client/internal/api"
	"wallet-client/internal/flow"
	"wallet-client/internal/model"
	"wallet-client/internal/secret"
	"wallet-client/internal/stub"
	"wallet-client/pkg/errno"
)

const testPin = "123456"

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

// newEnv spins up a stub service and returns a logged-in client for Ava
// plus Rohan's user ID as a transfer target.
func newEnv(t *testing.T) (*api.Client, string) {
	t.Helper()

	store := stub.NewStore(stub.StoreConfig{
		DefaultPin:       testPin,
		SeedBalance:      decimal.NewFromInt(1000),
		MaxTransferLimit: decimal.NewFromInt(10000),
		FeePercentage:    decimal.NewFromInt(2),
	})
	router := stub.NewRouter(stub.NewHandler(store), false)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	client := api.New(srv.URL, "", 2*time.Second, nil)
	session, err := client.Login(context.Background(), "ava@example.com", "password")
	require.NoError(t, err)
	client.SetToken(session.Token)

	users, err := client.ListUsers(context.Background())
	require.NoError(t, err)
	var rohan string
	for _, u := range users {
		if u.Email == "rohan@example.com" {
			rohan = u.ID
		}
	}
	require.NotEmpty(t, rohan)

	return client, rohan
}

func TestAddMoneyAndBalance(t *testing.T) {
	client, _ := newEnv(t)
	ctx := context.Background()

	amount, _ := decimal.NewFromString("100.25")
	snap, err := client.AddMoney(ctx, amount, testPin)
	require.NoError(t, err)
	assert.True(t, snap.Balance.Equal(decimal.RequireFromString("1100.25")))

	fetched, err := client.Wallet(ctx, testPin)
	require.NoError(t, err)
	assert.True(t, fetched.Balance.Equal(snap.Balance))
	assert.Equal(t, "INR", fetched.Currency)
}

func TestAddMoney_WrongPin(t *testing.T) {
	client, _ := newEnv(t)

	_, err := client.AddMoney(context.Background(), decimal.NewFromInt(10), "000000")
	assert.ErrorIs(t, err, errno.ErrAuthorization)
	assert.Equal(t, "Invalid PIN", err.Error())
}

func TestTransfer_FeeMath(t *testing.T) {
	client, rohan := newEnv(t)
	ctx := context.Background()

	receipt, err := client.Transfer(ctx, rohan, decimal.NewFromInt(100), testPin)
	require.NoError(t, err)
	assert.True(t, receipt.Fee.Equal(decimal.NewFromInt(2)), "2 percent of 100")
	assert.True(t, receipt.TotalDeducted.Equal(decimal.NewFromInt(102)))

	snap, err := client.Wallet(ctx, testPin)
	require.NoError(t, err)
	assert.True(t, snap.Balance.Equal(decimal.NewFromInt(898)))
}

func TestTransfer_BusinessRuleRejections(t *testing.T) {
	client, rohan := newEnv(t)
	ctx := context.Background()

	_, err := client.Transfer(ctx, rohan, decimal.NewFromInt(20000), testPin)
	assert.ErrorIs(t, err, errno.ErrLimitExceeded)
	assert.Equal(t, "Transfer limit exceeded", err.Error())

	// 9000 + 2% fee = 9180 against a balance of 1000.
	_, err = client.Transfer(ctx, rohan, decimal.NewFromInt(9000), testPin)
	assert.ErrorIs(t, err, errno.ErrInsufficientFunds)
	assert.Equal(t, "Insufficient balance", err.Error())

	// Nothing was deducted by the rejected attempts.
	snap, err := client.Wallet(ctx, testPin)
	require.NoError(t, err)
	assert.True(t, snap.Balance.Equal(decimal.NewFromInt(1000)))
}

func TestTransactions_RecentAndPaging(t *testing.T) {
	client, _ := newEnv(t)
	ctx := context.Background()

	for i := 1; i <= 12; i++ {
		_, err := client.AddMoney(ctx, decimal.NewFromInt(int64(i)), testPin)
		require.NoError(t, err)
	}

	recent, err := client.RecentTransactions(ctx)
	require.NoError(t, err)
	assert.Len(t, recent, 10)
	for _, tx := range recent {
		assert.Equal(t, model.TypeCredit, tx.Type)
		assert.Equal(t, model.StatusSuccess, tx.Status)
	}

	page, err := client.Transactions(ctx, api.ListQuery{Page: 1, Limit: 5})
	require.NoError(t, err)
	assert.Equal(t, 12, page.Total)
	assert.Len(t, page.Data, 5)

	last, err := client.Transactions(ctx, api.ListQuery{Page: 3, Limit: 5})
	require.NoError(t, err)
	assert.Len(t, last.Data, 2)

	filtered, err := client.Transactions(ctx, api.ListQuery{Status: model.StatusFailed})
	require.NoError(t, err)
	assert.Equal(t, 0, filtered.Total)
}

func TestUnauthenticated(t *testing.T) {
	client, _ := newEnv(t)
	client.SetToken("")

	_, err := client.Wallet(context.Background(), testPin)
	assert.ErrorIs(t, err, errno.ErrAuthorization)
	assert.Equal(t, "Not authenticated", err.Error())
}

func TestRegister_DuplicateEmail(t *testing.T) {
	client, _ := newEnv(t)
	ctx := context.Background()

	require.NoError(t, client.Register(ctx, "New User", "new@example.com", "password"))
	err := client.Register(ctx, "New User", "new@example.com", "password")
	require.Error(t, err)
	assert.Equal(t, "Email already exists", err.Error())
}

// TestFlow_EndToEnd drives the whole confirmation flow against the stub:
// draft, validate, capture the PIN, submit, refresh.
func TestFlow_EndToEnd(t *testing.T) {
	client, rohan := newEnv(t)

	f := flow.New(flow.KindTransfer, client, nil)
	require.NoError(t, f.SetAmount(decimal.NewFromInt(500)))
	require.NoError(t, f.SetRecipient(rohan))
	require.NoError(t, f.Proceed())
	require.Equal(t, flow.StateAwaitingSecret, f.State())

	entry, err := secret.New(testPin)
	require.NoError(t, err)

	result, err := f.Confirm(context.Background(), entry)
	require.NoError(t, err)

	assert.Equal(t, flow.StateSucceeded, f.State())
	assert.True(t, entry.Wiped())
	require.NotNil(t, result.Receipt)
	assert.True(t, result.Receipt.TotalDeducted.Equal(decimal.NewFromInt(510)))
	require.NotNil(t, result.Snapshot, "snapshot refresh re-uses the PIN before it is wiped")
	assert.True(t, result.Snapshot.Balance.Equal(decimal.NewFromInt(490)))
	require.NotEmpty(t, result.Recent)
	assert.Equal(t, model.TypeDebit, result.Recent[0].Type)
}

// TestFlow_WrongPinAgainstStub: a 403 with detail "Invalid PIN" surfaces
// verbatim, the draft survives, the secret does not.
func TestFlow_WrongPinAgainstStub(t *testing.T) {
	client, rohan := newEnv(t)

	f := flow.New(flow.KindTransfer, client, nil)
	require.NoError(t, f.SetAmount(decimal.NewFromInt(500)))
	require.NoError(t, f.SetRecipient(rohan))
	require.NoError(t, f.Proceed())

	entry, err := secret.New("654321")
	require.NoError(t, err)

	result, err := f.Confirm(context.Background(), entry)
	assert.ErrorIs(t, err, errno.ErrAuthorization)
	assert.Equal(t, flow.StateFailed, f.State())
	assert.Equal(t, "Invalid PIN", result.Message)
	assert.True(t, entry.Wiped())
	assert.True(t, f.Draft().Amount.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, rohan, f.Draft().RecipientID)
}
