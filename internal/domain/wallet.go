package domain

// Wallet Model
type Wallet struct {
	ID           string        `json:"id"`           // Opaque unique ID, assigned at creation, immutable
	Username     string        `json:"username"`     // Display name, free text
	Balance      float64       `json:"balance"`      // Current balance in USD
	Transactions []Transaction `json:"transactions"` // Embedded transaction history (local variant only)
}
