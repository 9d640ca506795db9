// Package store implements the durable key-value files backing the
// session record and the resolution caches. Each Store owns a single
// JSON object file; writes replace the whole file atomically.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Store is a lazily loaded string-to-JSON mapping persisted as one file.
// The first access loads the file; a missing file is an empty mapping,
// never an error. Every Set rewrites the whole file before returning
// (write-through). There is no cross-process locking: concurrent writers
// are last-writer-wins.
type Store struct {
	path    string
	loaded  bool
	entries map[string]json.RawMessage
}

func Open(path string) *Store {
	return &Store{path: path}
}

func (s *Store) load() error {
	if s.loaded {
		return nil
	}
	s.entries = map[string]json.RawMessage{}
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.loaded = true
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", s.path, err)
	}
	if err := json.Unmarshal(data, &s.entries); err != nil {
		return fmt.Errorf("failed to parse %s: %w", s.path, err)
	}
	s.loaded = true
	return nil
}

func (s *Store) Get(key string) (json.RawMessage, bool, error) {
	if err := s.load(); err != nil {
		return nil, false, err
	}
	v, ok := s.entries[key]
	return v, ok, nil
}

func (s *Store) Contains(key string) (bool, error) {
	if err := s.load(); err != nil {
		return false, err
	}
	_, ok := s.entries[key]
	return ok, nil
}

// Set stores value under key and persists the whole mapping before
// returning.
func (s *Store) Set(key string, value json.RawMessage) error {
	if err := s.load(); err != nil {
		return err
	}
	s.entries[key] = value
	return s.persist()
}

// Clear drops every entry and persists the now-empty mapping.
func (s *Store) Clear() error {
	s.entries = map[string]json.RawMessage{}
	s.loaded = true
	return s.persist()
}

func (s *Store) persist() error {
	data, err := json.Marshal(s.entries)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", s.path, err)
	}
	return WriteFileAtomic(s.path, data, 0o600)
}

// WriteFileAtomic writes data to a uniquely named temp file next to path
// and renames it over path, so a reader sees either the old complete
// file or the new one, never a truncated write. The containing directory
// is created if absent.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	tmp := path + "." + uuid.NewString() + ".tmp"
	if err := os.WriteFile(tmp, data, perm); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
