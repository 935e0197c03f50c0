package domain

// Transaction types
const (
	TypeCredit = "CREDIT" // Increases the wallet balance
	TypeDebit  = "DEBIT"  // Decreases the wallet balance
)

// Transaction Model
type Transaction struct {
	ID       string  `json:"id"`                 // Opaque unique ID, assigned at creation, immutable
	WalletID string  `json:"walletId,omitempty"` // Foreign key to the owning Wallet (remote variant only)
	Date     string  `json:"date"`               // Creation timestamp, ISO-8601 string, immutable
	Type     string  `json:"type"`               // CREDIT or DEBIT
	Amount   float64 `json:"amount"`             // Positive magnitude; sign is implied by Type
}

// ValidType reports whether t is a known transaction type
func ValidType(t string) bool {
	return t == TypeCredit || t == TypeDebit // Only CREDIT and DEBIT are recognized
}
