package storage

import (
	"context" // Context for persistence operations
	"errors"  // Sentinel errors

	"wallet_tracker/internal/domain" // Importing domain models
)

// ErrNoWallet signals that an operation requires a wallet but none exists.
// Callers distinguish it from transport failures with errors.Is.
var ErrNoWallet = errors.New("no wallet")

// Sort fields accepted by ListTransactions
const (
	SortByDate   = "date"   // Sort by creation timestamp
	SortByAmount = "amount" // Sort by transaction amount
)

// Sort directions accepted by ListTransactions
const (
	OrderAsc  = "asc"  // Ascending
	OrderDesc = "desc" // Descending
)

// ListOptions carries pagination and sorting parameters for transaction
// listings. Zero values mean "everything, in storage order".
type ListOptions struct {
	Page  int    // 1-based page number
	Limit int    // Page size
	Sort  string // SortByDate or SortByAmount
	Order string // OrderAsc or OrderDesc
}

// Store is the persistence capability the ledger is written against.
// Two variants implement it: LocalStore (wallet with embedded transactions
// in a key/value store) and RemoteStore (separate wallet and transaction
// resources in a remote document store).
type Store interface {
	// CreateWallet persists a new wallet with the given username and
	// starting balance and returns the created wallet.
	CreateWallet(ctx context.Context, username string, initialBalance float64) (*domain.Wallet, error)
	// LoadWallet fetches the current wallet. It returns (nil, nil) when no
	// wallet exists; absence is not a failure.
	LoadWallet(ctx context.Context) (*domain.Wallet, error)
	// SaveWallet persists the wallet's balance update and returns the
	// persisted representation.
	SaveWallet(ctx context.Context, wallet *domain.Wallet) (*domain.Wallet, error)
	// DeleteWallet removes the current wallet. Deleting when no wallet
	// exists is a no-op.
	DeleteWallet(ctx context.Context) error
	// CreateTransaction appends one immutable transaction record and
	// returns it with its assigned ID.
	CreateTransaction(ctx context.Context, t domain.Transaction) (domain.Transaction, error)
	// ListTransactions returns a page of transactions together with the
	// total count across all pages.
	ListTransactions(ctx context.Context, opts ListOptions) ([]domain.Transaction, int, error)
}
