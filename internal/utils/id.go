package utils

import "math/rand" // Non-cryptographic randomness is sufficient for session-scoped IDs

// Base-36 alphabet used for generated identifiers
const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// Length of generated identifiers
const idLength = 26

// GenerateID produces an opaque identifier for wallets and transactions.
// Not cryptographically secure and not globally unique; collisions are not
// expected within the lifetime of a single client session.
func GenerateID() string {
	b := make([]byte, idLength) // Buffer for the identifier
	for i := range b {
		b[i] = idAlphabet[rand.Intn(len(idAlphabet))] // Pick a random base-36 character
	}
	return string(b) // Return the assembled identifier
}
