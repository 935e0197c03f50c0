package storage

import (
	"context"       // Context for persistence operations
	"encoding/json" // Wallet serialization
	"time"          // Transaction timestamps

	"wallet_tracker/internal/domain" // Importing domain models
	"wallet_tracker/internal/kv"     // Key/value capability
	"wallet_tracker/internal/utils"  // ID generation
)

// Key under which the single wallet record is stored
const walletKey = "wallet"

// LocalStore persists one wallet, with its transaction history embedded,
// as a single JSON record in a key/value store.
type LocalStore struct {
	kv kv.Store // Backing key/value store
}

// NewLocalStore returns a LocalStore over the given key/value store
func NewLocalStore(store kv.Store) *LocalStore {
	return &LocalStore{kv: store}
}

// CreateWallet persists a new wallet. A positive initial balance is recorded
// as one synthesized CREDIT transaction so the embedded history explains the
// starting balance.
func (s *LocalStore) CreateWallet(ctx context.Context, username string, initialBalance float64) (*domain.Wallet, error) {
	w := &domain.Wallet{
		ID:           utils.GenerateID(),     // Assign the wallet ID locally
		Username:     username,               // Display name
		Balance:      initialBalance,         // Starting balance
		Transactions: []domain.Transaction{}, // Fresh empty history
	}
	// Record the starting balance as an initial credit
	if initialBalance > 0 {
		w.Transactions = append(w.Transactions, domain.Transaction{
			ID:     utils.GenerateID(),                    // Assign the transaction ID locally
			Date:   time.Now().UTC().Format(time.RFC3339), // Creation timestamp
			Type:   domain.TypeCredit,                     // Initial balance is a credit
			Amount: initialBalance,                        // Credit magnitude
		})
	}
	// Persist the new wallet snapshot
	if err := s.save(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

// LoadWallet fetches the stored wallet; (nil, nil) when none exists
func (s *LocalStore) LoadWallet(ctx context.Context) (*domain.Wallet, error) {
	raw, found, err := s.kv.Get(ctx, walletKey) // Read the single record
	if err != nil {
		return nil, err // Storage failure
	}
	if !found {
		return nil, nil // No wallet yet
	}
	var w domain.Wallet
	// Decode the stored snapshot
	if err := json.Unmarshal([]byte(raw), &w); err != nil {
		return nil, err
	}
	return &w, nil
}

// SaveWallet applies the wallet's username and balance to the stored record.
// The embedded transaction history already in the store is preserved, so a
// balance update cannot drop a record appended by CreateTransaction.
func (s *LocalStore) SaveWallet(ctx context.Context, wallet *domain.Wallet) (*domain.Wallet, error) {
	stored, err := s.LoadWallet(ctx) // Read the current record
	if err != nil {
		return nil, err
	}
	if stored == nil {
		stored = wallet // Nothing stored yet; persist the snapshot as given
	} else {
		stored.Username = wallet.Username // Apply the display name
		stored.Balance = wallet.Balance   // Apply the balance update
	}
	// Persist the merged record
	if err := s.save(ctx, stored); err != nil {
		return nil, err
	}
	return stored, nil
}

// DeleteWallet removes the wallet record and its embedded transactions
func (s *LocalStore) DeleteWallet(ctx context.Context) error {
	return s.kv.Delete(ctx, walletKey) // One record holds everything
}

// CreateTransaction appends one transaction to the embedded history and
// re-saves the wallet. Embedded records carry no walletId foreign key.
func (s *LocalStore) CreateTransaction(ctx context.Context, t domain.Transaction) (domain.Transaction, error) {
	w, err := s.LoadWallet(ctx) // Read the current record
	if err != nil {
		return domain.Transaction{}, err
	}
	if w == nil {
		return domain.Transaction{}, ErrNoWallet // Nothing to append to
	}
	// Assign an ID when the caller did not supply one
	if t.ID == "" {
		t.ID = utils.GenerateID()
	}
	t.WalletID = ""                            // The embedded record needs no foreign key
	w.Transactions = append(w.Transactions, t) // Append to the history
	// Re-save the wallet with the appended record
	if err := s.save(ctx, w); err != nil {
		return domain.Transaction{}, err
	}
	return t, nil
}

// ListTransactions returns the embedded history verbatim with its length as
// the total. The local variant does no server-side paging or sorting.
func (s *LocalStore) ListTransactions(ctx context.Context, _ ListOptions) ([]domain.Transaction, int, error) {
	w, err := s.LoadWallet(ctx) // Read the current record
	if err != nil {
		return nil, 0, err
	}
	if w == nil {
		return []domain.Transaction{}, 0, nil // No wallet means no history
	}
	return w.Transactions, len(w.Transactions), nil
}

// save serializes the wallet and writes it under the single record key
func (s *LocalStore) save(ctx context.Context, w *domain.Wallet) error {
	b, err := json.Marshal(w) // Serialize the full snapshot
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, walletKey, string(b)) // Store under the fixed key
}
