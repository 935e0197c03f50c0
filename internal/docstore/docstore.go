package docstore

import (
	"encoding/json" // JSON file encoding/decoding
	"errors"        // Error inspection
	"fmt"           // Value stringification for filters and sorting
	"os"            // File access
	"sort"          // Record sorting
	"sync"          // Mutex for store access

	"github.com/google/uuid" // Server-assigned record IDs
)

// Collections served by the document store
const (
	Wallets      = "wallets"      // Wallet resources
	Transactions = "transactions" // Transaction resources
)

// Document is one schemaless record in a collection
type Document map[string]any

// Query carries the supported collection-query parameters: field equality
// filters plus json-server style _sort/_order/_page/_limit.
type Query struct {
	Filter map[string]string // Field equality, e.g. walletId=abc
	Sort   string            // Field to sort by
	Order  string            // "asc" (default) or "desc"
	Page   int               // 1-based page number
	Limit  int               // Page size
}

// Default page size when _page is given without _limit (json-server behavior)
const defaultPageSize = 10

// Store is a generic document store backed by one JSON file. The file is
// loaded at open and rewritten on every mutation.
type Store struct {
	mu   sync.Mutex
	path string                // Path to the backing JSON file
	data map[string][]Document // Collection name to records
}

// Open loads the document store from the JSON file at path. A missing file
// yields empty collections; the file is created on the first write.
func Open(path string) (*Store, error) {
	s := &Store{path: path, data: map[string][]Document{}}
	b, err := os.ReadFile(path) // Read the backing file
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err // Missing file is fine, anything else is not
	}
	if len(b) > 0 {
		// Decode existing collections
		if err := json.Unmarshal(b, &s.data); err != nil {
			return nil, err
		}
	}
	// Make sure both served collections exist
	for _, col := range []string{Wallets, Transactions} {
		if s.data[col] == nil {
			s.data[col] = []Document{}
		}
	}
	return s, nil
}

// flush rewrites the backing file from the in-memory collections
func (s *Store) flush() error {
	b, err := json.MarshalIndent(s.data, "", "  ") // Readable on disk, json-server style
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, b, 0o644)
}

// id extracts a document's ID as a string
func id(doc Document) string {
	v, ok := doc["id"]
	if !ok {
		return ""
	}
	return fmt.Sprint(v) // IDs may arrive as any JSON scalar
}

// Insert appends one document to the collection, assigning a UUID when the
// caller supplied no ID, and returns the stored document.
func (s *Store) Insert(collection string, doc Document) (Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := Document{}
	// Copy so later caller mutations cannot reach the stored record
	for k, v := range doc {
		stored[k] = v
	}
	// Auto-assign an ID when none was provided
	if id(stored) == "" {
		stored["id"] = uuid.NewString()
	}
	s.data[collection] = append(s.data[collection], stored) // Append to the collection
	return stored, s.flush()
}

// Get returns the document with the given ID
func (s *Store) Get(collection, docID string) (Document, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, doc := range s.data[collection] {
		if id(doc) == docID {
			return doc, true
		}
	}
	return nil, false
}

// Patch merges the given fields into the document with the given ID and
// returns the updated document. The ID itself cannot be changed.
func (s *Store) Patch(collection, docID string, fields Document) (Document, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, doc := range s.data[collection] {
		if id(doc) != docID {
			continue
		}
		// Merge the partial update
		for k, v := range fields {
			if k == "id" {
				continue // The ID is immutable
			}
			doc[k] = v
		}
		return doc, true, s.flush()
	}
	return nil, false, nil
}

// Delete removes the document with the given ID. Only the addressed record
// is removed; related records in other collections are untouched.
func (s *Store) Delete(collection, docID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	records := s.data[collection]
	for i, doc := range records {
		if id(doc) == docID {
			s.data[collection] = append(records[:i], records[i+1:]...) // Drop the record
			return true, s.flush()
		}
	}
	return false, nil
}

// List returns the collection's documents matching the query, filtered,
// sorted and paginated in that order.
func (s *Store) List(collection string, q Query) []Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	results := []Document{}
	// Field equality filters
	for _, doc := range s.data[collection] {
		if matches(doc, q.Filter) {
			results = append(results, doc)
		}
	}
	// Sorting
	if q.Sort != "" {
		desc := q.Order == "desc" // Ascending unless asked otherwise
		sort.SliceStable(results, func(i, j int) bool {
			if desc {
				return less(results[j][q.Sort], results[i][q.Sort])
			}
			return less(results[i][q.Sort], results[j][q.Sort])
		})
	}
	// Pagination
	limit := q.Limit
	if limit <= 0 && q.Page > 0 {
		limit = defaultPageSize // _page without _limit pages by 10
	}
	if limit > 0 {
		page := q.Page
		if page <= 0 {
			page = 1 // _limit without _page slices the first page
		}
		start := (page - 1) * limit
		if start >= len(results) {
			return []Document{} // Past the end
		}
		end := start + limit
		if end > len(results) {
			end = len(results)
		}
		results = results[start:end]
	}
	return results
}

// matches reports whether the document satisfies every equality filter
func matches(doc Document, filter map[string]string) bool {
	for field, want := range filter {
		v, ok := doc[field]
		if !ok || fmt.Sprint(v) != want {
			return false
		}
	}
	return true
}

// less orders two field values: numerically when both are numbers, by their
// string form otherwise.
func less(a, b any) bool {
	af, aok := a.(float64) // JSON numbers decode as float64
	bf, bok := b.(float64)
	if aok && bok {
		return af < bf
	}
	return fmt.Sprint(a) < fmt.Sprint(b)
}
