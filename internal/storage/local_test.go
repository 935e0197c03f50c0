package storage

import (
	"context"
	"path/filepath"
	"testing"

	"wallet_tracker/internal/domain"
	"wallet_tracker/internal/kv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLocalStore(t *testing.T) *LocalStore {
	t.Helper()
	return NewLocalStore(kv.NewFileStore(filepath.Join(t.TempDir(), "wallet.json")))
}

func TestLocalStore_LoadWallet_Absent(t *testing.T) {
	store := newLocalStore(t)

	w, err := store.LoadWallet(context.Background())
	require.NoError(t, err)
	assert.Nil(t, w, "absence is a nil wallet, not an error")
}

func TestLocalStore_CreateWallet_RoundTrip(t *testing.T) {
	store := newLocalStore(t)
	ctx := context.Background()

	created, err := store.CreateWallet(ctx, "alice", 50)
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	// Reading back through serialization yields the same value in all fields
	loaded, err := store.LoadWallet(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, created, loaded)
}

func TestLocalStore_CreateWallet_InitialBalanceSynthesizesCredit(t *testing.T) {
	store := newLocalStore(t)

	w, err := store.CreateWallet(context.Background(), "alice", 50)
	require.NoError(t, err)

	require.Len(t, w.Transactions, 1, "positive initial balance becomes one credit")
	tx := w.Transactions[0]
	assert.NotEmpty(t, tx.ID)
	assert.Equal(t, domain.TypeCredit, tx.Type)
	assert.Equal(t, 50.0, tx.Amount)
	assert.Empty(t, tx.WalletID, "embedded records carry no foreign key")
}

func TestLocalStore_CreateWallet_ZeroBalanceNoTransactions(t *testing.T) {
	store := newLocalStore(t)

	w, err := store.CreateWallet(context.Background(), "alice", 0)
	require.NoError(t, err)
	assert.Empty(t, w.Transactions)
	assert.Equal(t, 0.0, w.Balance)
}

func TestLocalStore_CreateTransaction_AppendsAndAssignsID(t *testing.T) {
	store := newLocalStore(t)
	ctx := context.Background()

	_, err := store.CreateWallet(ctx, "alice", 0)
	require.NoError(t, err)

	created, err := store.CreateTransaction(ctx, domain.Transaction{
		WalletID: "should-be-stripped",
		Date:     "2024-01-01T00:00:00Z",
		Type:     domain.TypeCredit,
		Amount:   25,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Empty(t, created.WalletID, "embedded records carry no foreign key")

	w, err := store.LoadWallet(ctx)
	require.NoError(t, err)
	require.Len(t, w.Transactions, 1)
	assert.Equal(t, created, w.Transactions[0])
}

func TestLocalStore_CreateTransaction_NoWallet(t *testing.T) {
	store := newLocalStore(t)

	_, err := store.CreateTransaction(context.Background(), domain.Transaction{
		Type:   domain.TypeCredit,
		Amount: 25,
	})
	assert.ErrorIs(t, err, ErrNoWallet)
}

func TestLocalStore_SaveWallet_PreservesEmbeddedHistory(t *testing.T) {
	store := newLocalStore(t)
	ctx := context.Background()

	w, err := store.CreateWallet(ctx, "alice", 50)
	require.NoError(t, err)

	// Another record lands in storage after the caller loaded its snapshot
	_, err = store.CreateTransaction(ctx, domain.Transaction{
		Date:   "2024-01-01T00:00:00Z",
		Type:   domain.TypeDebit,
		Amount: 10,
	})
	require.NoError(t, err)

	// Saving the stale snapshot's balance must not drop the appended record
	w.Balance = 40
	saved, err := store.SaveWallet(ctx, w)
	require.NoError(t, err)
	assert.Equal(t, 40.0, saved.Balance)
	assert.Len(t, saved.Transactions, 2)

	loaded, err := store.LoadWallet(ctx)
	require.NoError(t, err)
	assert.Len(t, loaded.Transactions, 2)
}

func TestLocalStore_ListTransactions_VerbatimWithTotal(t *testing.T) {
	store := newLocalStore(t)
	ctx := context.Background()

	_, err := store.CreateWallet(ctx, "alice", 50)
	require.NoError(t, err)
	_, err = store.CreateTransaction(ctx, domain.Transaction{Date: "2024-01-02T00:00:00Z", Type: domain.TypeDebit, Amount: 10})
	require.NoError(t, err)

	// The local variant ignores paging and sorting: the embedded list comes
	// back verbatim regardless of the options
	for _, opts := range []ListOptions{
		{},
		{Page: 1, Limit: 1},
		{Page: 9, Limit: 5, Sort: SortByAmount, Order: OrderAsc},
	} {
		transactions, total, err := store.ListTransactions(ctx, opts)
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		assert.Len(t, transactions, 2)
	}
}

func TestLocalStore_ListTransactions_NoWallet(t *testing.T) {
	store := newLocalStore(t)

	transactions, total, err := store.ListTransactions(context.Background(), ListOptions{})
	require.NoError(t, err)
	assert.Empty(t, transactions)
	assert.Zero(t, total)
}

func TestLocalStore_DeleteWallet(t *testing.T) {
	store := newLocalStore(t)
	ctx := context.Background()

	_, err := store.CreateWallet(ctx, "alice", 50)
	require.NoError(t, err)

	require.NoError(t, store.DeleteWallet(ctx))

	w, err := store.LoadWallet(ctx)
	require.NoError(t, err)
	assert.Nil(t, w, "reset discards the wallet and its embedded history")
}
