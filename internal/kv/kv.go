package kv

import "context" // Context for store operations

// Store is a minimal key/value capability used for client-side persistence:
// the local variant keeps the whole wallet under one key, the remote variant
// keeps only the current wallet reference.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error) // Returns the value and whether the key exists
	Set(ctx context.Context, key, value string) error          // Stores the value under the key
	Delete(ctx context.Context, key string) error              // Removes the key; absent keys are not an error
}
