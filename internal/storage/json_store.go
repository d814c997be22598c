package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

type fileStore struct {
	Version int                        `json:"version"`
	Values  map[string]json.RawMessage `json:"values"`
}

// JSONStore keeps the whole namespace in a single JSON file. Every
// write rewrites the file; fine for a personal dataset, documented as
// an O(n)-per-write limit.
type JSONStore struct {
	path  string
	store *fileStore
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = &fileStore{
		Version: SchemaVersion,
		Values:  make(map[string]json.RawMessage),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'dailyspark init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &fileStore{}
	if err := json.Unmarshal(data, s.store); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	if s.store.Values == nil {
		s.store.Values = make(map[string]json.RawMessage)
	}
	if s.store.Version == 0 {
		s.store.Version = SchemaVersion
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) Get(key string) ([]byte, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	value, ok := s.store.Values[key]
	if !ok {
		return nil, ErrNotFound
	}

	return value, nil
}

func (s *JSONStore) Set(key string, value []byte) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.store.Values[key] = json.RawMessage(value)
	return s.save()
}

func (s *JSONStore) Delete(key string) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	if _, ok := s.store.Values[key]; !ok {
		return nil
	}

	delete(s.store.Values, key)
	return s.save()
}

func (s *JSONStore) Clear() error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.store.Values = make(map[string]json.RawMessage)
	return s.save()
}

// ConfigPath returns the path to the underlying storage file.
//
// Concurrency note:
//   - JSONStore is not safe for concurrent use by multiple goroutines without
//     external synchronization.
//   - Running multiple dailyspark processes that share the same storage path at
//     the same time is not supported and may lead to data loss.
func (s *JSONStore) ConfigPath() string {
	return s.path
}
