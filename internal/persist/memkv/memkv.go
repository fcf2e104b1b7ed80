// Package memkv implements an in-memory persist.Backend.
// Contents are lost when the process exits.
package memkv

import (
	"context"
	"fmt"
	"sync"

	"ltask/internal/persist"
)

// Store is an in-memory key-value backend with an optional byte quota.
type Store struct {
	mu    sync.RWMutex
	data  map[string]string
	quota int // 0 means unlimited
}

// New creates an empty store. quota limits the total size of all values in
// bytes; zero disables the limit.
func New(quota int) *Store {
	return &Store{
		data:  make(map[string]string),
		quota: quota,
	}
}

// Get implements persist.Backend.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok, nil
}

// Set implements persist.Backend.
func (s *Store) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.quota > 0 {
		used := len(value)
		for k, v := range s.data {
			if k != key {
				used += len(v)
			}
		}
		if used > s.quota {
			return fmt.Errorf("set %s: %w", key, persist.ErrQuotaExceeded)
		}
	}

	s.data[key] = value
	return nil
}

// Close implements persist.Backend.
func (s *Store) Close() error {
	return nil
}

// Len returns the number of stored keys.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
