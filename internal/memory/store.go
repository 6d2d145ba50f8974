// Package memory persists a flat string-to-string mapping as a JSON
// file. The assistant treats it as its long-term memory.
package memory

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"
)

type Store struct {
	path string

	mu   sync.Mutex
	data map[string]string
}

// Open loads the store at path. A missing or unreadable file starts the
// store empty rather than failing; first Save recreates it.
func Open(path string) *Store {
	s := &Store{path: path, data: map[string]string{}}
	raw, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	var m map[string]string
	if err := json.Unmarshal(raw, &m); err != nil {
		return s
	}
	s.data = m
	return s
}

func (s *Store) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	return v, ok
}

// Set stores a value and persists immediately.
func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	s.data[key] = value
	s.mu.Unlock()
	return s.Save()
}

// Delete removes a key, reporting the old value, and persists if the
// key existed.
func (s *Store) Delete(key string) (string, bool, error) {
	s.mu.Lock()
	old, ok := s.data[key]
	if ok {
		delete(s.data, key)
	}
	s.mu.Unlock()
	if !ok {
		return "", false, nil
	}
	return old, true, s.Save()
}

// Keys returns all keys in sorted order.
func (s *Store) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data)
}

// Save writes the mapping atomically: a temp file in the same directory
// is renamed over the target, so a crash mid-write never corrupts the
// previous state.
func (s *Store) Save() error {
	s.mu.Lock()
	raw, err := json.MarshalIndent(s.data, "", "  ")
	s.mu.Unlock()
	if err != nil {
		return fmt.Errorf("marshal memory: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write memory: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace memory: %w", err)
	}
	return nil
}
