package ledger

import (
	"context" // Context for persistence operations
	"fmt"     // Error construction
	"time"    // Transaction timestamps

	"wallet_tracker/internal/domain"  // Importing domain models
	"wallet_tracker/internal/storage" // Persistence capability

	"github.com/sirupsen/logrus" // Logging library
)

// Ledger owns the wallet/transaction consistency rules. It is written once
// against the storage capability, so the local and remote variants behave
// identically from here up.
type Ledger struct {
	store storage.Store // Persistence backend
}

// New returns a Ledger over the given persistence backend
func New(store storage.Store) *Ledger {
	return &Ledger{store: store}
}

// TransactionPage is one page of history together with the total count
// across all pages.
type TransactionPage struct {
	Transactions []domain.Transaction `json:"transactions"` // The requested page
	Total        int                  `json:"total"`        // Unpaginated total
}

// CreateWallet persists a new wallet with the given username and starting
// balance. Input validation is the caller's job; enforcing the single-wallet
// model is too.
func (l *Ledger) CreateWallet(ctx context.Context, username string, initialBalance float64) (*domain.Wallet, error) {
	w, err := l.store.CreateWallet(ctx, username, initialBalance) // Delegate to the backend
	if err != nil {
		return nil, err
	}
	// Log the creation
	logrus.WithFields(logrus.Fields{
		"wallet_id": w.ID,            // New wallet ID
		"username":  w.Username,      // Display name
		"balance":   w.Balance,       // Starting balance
		"type":      "create_wallet", // Operation type
	}).Info("Wallet created")
	return w, nil
}

// GetWallet fetches the current wallet; (nil, nil) when none exists
func (l *Ledger) GetWallet(ctx context.Context) (*domain.Wallet, error) {
	return l.store.LoadWallet(ctx) // Absence is not a failure
}

// AddTransaction records one credit or debit against the current wallet and
// updates the balance. With no wallet it returns storage.ErrNoWallet and
// performs no writes. Transaction create and balance update are two separate
// persistence calls with no atomicity across them; if the second fails the
// transaction exists with a stale balance.
func (l *Ledger) AddTransaction(ctx context.Context, txType string, amount float64) (*domain.Wallet, *domain.Transaction, error) {
	// Guard against unknown types before touching storage
	if !domain.ValidType(txType) {
		return nil, nil, fmt.Errorf("invalid transaction type %q", txType)
	}
	w, err := l.store.LoadWallet(ctx) // Read the current wallet
	if err != nil {
		return nil, nil, err
	}
	if w == nil {
		return nil, nil, storage.ErrNoWallet // No wallet: explicit signal, no writes
	}
	// Compute the new balance from the signed amount
	newBalance := w.Balance
	if txType == domain.TypeCredit {
		newBalance += amount // Credit increases the balance
	} else {
		newBalance -= amount // Debit decreases the balance
	}
	// Record the transaction first
	created, err := l.store.CreateTransaction(ctx, domain.Transaction{
		WalletID: w.ID,                                  // Owning wallet
		Date:     time.Now().UTC().Format(time.RFC3339), // Creation timestamp
		Type:     txType,                                // CREDIT or DEBIT
		Amount:   amount,                                // Positive magnitude
	})
	if err != nil {
		return nil, nil, err
	}
	// Then persist the updated balance; no atomicity with the create above
	w.Balance = newBalance
	saved, err := l.store.SaveWallet(ctx, w)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"wallet_id":      w.ID,        // Affected wallet
			"transaction_id": created.ID,  // Already-created transaction
			"error":          err.Error(), // Failure detail
		}).Error("Balance update failed after transaction create")
		return nil, &created, err
	}
	// Log the recorded transaction
	logrus.WithFields(logrus.Fields{
		"wallet_id": saved.ID,      // Affected wallet
		"amount":    amount,        // Transaction amount
		"type":      txType,        // Transaction type
		"balance":   saved.Balance, // Balance after the transaction
	}).Info("Transaction recorded")
	return saved, &created, nil
}

// GetTransactions returns the requested page of history plus the total
// count. The total always reflects every recorded transaction regardless of
// the paging and sorting requested. With no wallet the page is empty.
func (l *Ledger) GetTransactions(ctx context.Context, opts storage.ListOptions) (*TransactionPage, error) {
	transactions, total, err := l.store.ListTransactions(ctx, opts) // Delegate to the backend
	if err != nil {
		return nil, err
	}
	return &TransactionPage{Transactions: transactions, Total: total}, nil
}

// ExportCSV fetches the full transaction history and renders it as CSV,
// returning the dated attachment filename alongside the document.
func (l *Ledger) ExportCSV(ctx context.Context) (string, []byte, error) {
	// Everything, unpaginated, in storage order
	transactions, _, err := l.store.ListTransactions(ctx, storage.ListOptions{})
	if err != nil {
		return "", nil, err
	}
	return CSVFilename(time.Now()), BuildCSV(transactions), nil
}

// ResetWallet deletes the wallet and, in the local variant, its embedded
// transactions. A subsequent load reports no wallet; creating a wallet after
// a reset starts a fresh, unrelated identity.
func (l *Ledger) ResetWallet(ctx context.Context) error {
	// Delegate to the backend
	if err := l.store.DeleteWallet(ctx); err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{"type": "reset_wallet"}).Info("Wallet reset")
	return nil
}
