package storage

import (
	"bytes"         // Request body buffers
	"context"       // Context for HTTP requests
	"encoding/json" // JSON encoding/decoding
	"fmt"           // Error wrapping
	"net/http"      // HTTP client
	"net/url"       // Query string construction
	"strconv"       // Query parameter formatting

	"wallet_tracker/internal/domain" // Importing domain models
	"wallet_tracker/internal/kv"     // Key/value capability

	"github.com/sirupsen/logrus" // Logging library
)

// Key under which the current wallet reference is stored between sessions
const walletRefKey = "walletId"

// RemoteStore persists wallets and transactions as separate resources in a
// document-store API, linked by walletId. The ID of the current wallet is
// kept in a small key/value store so a later session finds it again.
type RemoteStore struct {
	baseURL string       // Document store base URL, no trailing slash
	client  *http.Client // HTTP client; timeouts are whatever it provides
	ref     kv.Store     // Holds the current wallet reference
}

// NewRemoteStore returns a RemoteStore against the document store at
// baseURL. A nil client falls back to http.DefaultClient.
func NewRemoteStore(baseURL string, ref kv.Store, client *http.Client) *RemoteStore {
	if client == nil {
		client = http.DefaultClient // Default transport when none is supplied
	}
	return &RemoteStore{baseURL: baseURL, client: client, ref: ref}
}

// CreateWallet creates the wallet resource and remembers its server-assigned
// ID as the current wallet reference. No transaction record is created for a
// positive initial balance; only the local variant synthesizes one.
func (s *RemoteStore) CreateWallet(ctx context.Context, username string, initialBalance float64) (*domain.Wallet, error) {
	body := map[string]any{"username": username, "balance": initialBalance} // Server assigns the ID
	var w domain.Wallet
	// Create the wallet resource
	if _, err := s.do(ctx, http.MethodPost, "/wallets", body, &w); err != nil {
		logrus.WithFields(logrus.Fields{"username": username, "error": err.Error()}).Error("Failed to create wallet")
		return nil, err
	}
	// Remember the wallet for subsequent sessions
	if w.ID != "" {
		if err := s.ref.Set(ctx, walletRefKey, w.ID); err != nil {
			return nil, err
		}
	}
	return &w, nil
}

// LoadWallet fetches the wallet behind the stored reference; (nil, nil) when
// no reference is stored or the remote record is gone (HTTP 404).
func (s *RemoteStore) LoadWallet(ctx context.Context) (*domain.Wallet, error) {
	id, found, err := s.ref.Get(ctx, walletRefKey) // Look up the current wallet reference
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil // No wallet has been created yet
	}
	var w domain.Wallet
	status, err := s.do(ctx, http.MethodGet, "/wallets/"+id, nil, &w) // Fetch the wallet resource
	if status == http.StatusNotFound {
		return nil, nil // Missing record maps to absent, not failure
	}
	if err != nil {
		logrus.WithFields(logrus.Fields{"wallet_id": id, "error": err.Error()}).Error("Failed to load wallet")
		return nil, err
	}
	return &w, nil
}

// SaveWallet applies the wallet's balance through a partial update and
// returns the persisted representation.
func (s *RemoteStore) SaveWallet(ctx context.Context, wallet *domain.Wallet) (*domain.Wallet, error) {
	body := map[string]any{"balance": wallet.Balance} // Only the balance changes after creation
	var w domain.Wallet
	// Merge the balance into the wallet resource
	if _, err := s.do(ctx, http.MethodPatch, "/wallets/"+wallet.ID, body, &w); err != nil {
		logrus.WithFields(logrus.Fields{"wallet_id": wallet.ID, "error": err.Error()}).Error("Failed to update wallet balance")
		return nil, err
	}
	return &w, nil
}

// DeleteWallet removes the wallet resource and clears the stored reference.
// Transaction records are left behind; the document store does not cascade
// the delete (known gap).
func (s *RemoteStore) DeleteWallet(ctx context.Context) error {
	id, found, err := s.ref.Get(ctx, walletRefKey) // Look up the current wallet reference
	if err != nil {
		return err
	}
	if !found {
		return nil // Nothing to delete
	}
	// Delete the wallet resource
	if _, err := s.do(ctx, http.MethodDelete, "/wallets/"+id, nil, nil); err != nil {
		logrus.WithFields(logrus.Fields{"wallet_id": id, "error": err.Error()}).Error("Failed to delete wallet")
		return err
	}
	return s.ref.Delete(ctx, walletRefKey) // Forget the wallet reference
}

// CreateTransaction creates one transaction resource; the server assigns its
// ID. The walletId foreign key defaults to the current wallet reference.
func (s *RemoteStore) CreateTransaction(ctx context.Context, t domain.Transaction) (domain.Transaction, error) {
	// Fall back to the stored reference when the caller left the key empty
	if t.WalletID == "" {
		id, found, err := s.ref.Get(ctx, walletRefKey)
		if err != nil {
			return domain.Transaction{}, err
		}
		if !found {
			return domain.Transaction{}, ErrNoWallet // No wallet to attach to
		}
		t.WalletID = id
	}
	body := map[string]any{
		"walletId": t.WalletID, // Owning wallet
		"date":     t.Date,     // Creation timestamp
		"type":     t.Type,     // CREDIT or DEBIT
		"amount":   t.Amount,   // Positive magnitude
	}
	var created domain.Transaction
	// Create the transaction resource
	if _, err := s.do(ctx, http.MethodPost, "/transactions", body, &created); err != nil {
		logrus.WithFields(logrus.Fields{"wallet_id": t.WalletID, "error": err.Error()}).Error("Failed to create transaction")
		return domain.Transaction{}, err
	}
	return created, nil
}

// ListTransactions returns one page of the wallet's transactions plus the
// true total. The total comes from a separate unpaginated count query so it
// is unaffected by page, size and sort parameters.
func (s *RemoteStore) ListTransactions(ctx context.Context, opts ListOptions) ([]domain.Transaction, int, error) {
	id, found, err := s.ref.Get(ctx, walletRefKey) // Look up the current wallet reference
	if err != nil {
		return nil, 0, err
	}
	if !found {
		return []domain.Transaction{}, 0, nil // No wallet means no history
	}
	// Count query: same filter, no paging
	var all []domain.Transaction
	if _, err := s.do(ctx, http.MethodGet, "/transactions?walletId="+url.QueryEscape(id), nil, &all); err != nil {
		logrus.WithFields(logrus.Fields{"wallet_id": id, "error": err.Error()}).Error("Failed to count transactions")
		return nil, 0, err
	}
	// Page query: filter plus the requested paging and sorting
	q := url.Values{}
	q.Set("walletId", id)
	if opts.Page > 0 {
		q.Set("_page", strconv.Itoa(opts.Page)) // Requested page number
	}
	if opts.Limit > 0 {
		q.Set("_limit", strconv.Itoa(opts.Limit)) // Requested page size
	}
	if opts.Sort != "" {
		q.Set("_sort", opts.Sort) // Sort field
	}
	if opts.Order != "" {
		q.Set("_order", opts.Order) // Sort direction
	}
	var page []domain.Transaction
	if _, err := s.do(ctx, http.MethodGet, "/transactions?"+q.Encode(), nil, &page); err != nil {
		logrus.WithFields(logrus.Fields{"wallet_id": id, "error": err.Error()}).Error("Failed to fetch transactions")
		return nil, 0, err
	}
	return page, len(all), nil
}

// do issues one JSON request against the document store. The response body
// is decoded into out when out is non-nil and the status is 2xx. The status
// code is returned so callers can map 404 to "absent".
func (s *RemoteStore) do(ctx context.Context, method, path string, body, out any) (int, error) {
	var buf bytes.Buffer
	// Encode the request body when one is given
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return 0, err
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, &buf) // Build the request
	if err != nil {
		return 0, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json") // JSON request body
	}
	resp, err := s.client.Do(req) // Issue the request; no retries
	if err != nil {
		return 0, fmt.Errorf("document store request failed: %w", err)
	}
	defer resp.Body.Close()
	// Non-2xx responses are failures; the caller inspects the status for 404
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode, fmt.Errorf("document store returned status %d for %s %s", resp.StatusCode, method, path)
	}
	if out != nil {
		// Decode the response entity
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, err
		}
	}
	return resp.StatusCode, nil
}
