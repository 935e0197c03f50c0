package kv

import (
	"context"       // Context for store operations
	"encoding/json" // JSON encoding/decoding
	"errors"        // Error inspection
	"os"            // File access
	"sync"          // Mutex for file access
)

// FileStore is a Store backed by a single JSON object file on disk.
// Every mutation rewrites the whole file.
type FileStore struct {
	path string // Path to the backing file
	mu   sync.Mutex
}

// NewFileStore returns a FileStore backed by the file at path.
// The file is created on first write.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path} // No I/O until the first operation
}

// load reads the backing file into a map; a missing file yields an empty map
func (s *FileStore) load() (map[string]string, error) {
	data := map[string]string{} // Empty map when no file exists yet
	b, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return data, nil // No file means no keys
	} else if err != nil {
		return nil, err // Other read error
	}
	if len(b) == 0 {
		return data, nil // Treat an empty file like a missing one
	}
	return data, json.Unmarshal(b, &data) // Decode the stored object
}

// flush writes the map back to the backing file
func (s *FileStore) flush(data map[string]string) error {
	b, err := json.Marshal(data) // Encode the whole object
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, b, 0o644) // Rewrite the file
}

// Get retrieves the value stored under key
func (s *FileStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.load() // Read current contents
	if err != nil {
		return "", false, err
	}
	v, ok := data[key] // Look up the key
	return v, ok, nil
}

// Set stores value under key
func (s *FileStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.load() // Read current contents
	if err != nil {
		return err
	}
	data[key] = value    // Apply the update
	return s.flush(data) // Persist the whole object
}

// Delete removes key; deleting an absent key is a no-op
func (s *FileStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.load() // Read current contents
	if err != nil {
		return err
	}
	delete(data, key)    // Remove the key
	return s.flush(data) // Persist the whole object
}
