package memory

import (
	"context"
	"sync"

	"github.com/jus-mpfumo/ra-auth/core"
)

// Store implements the key-value medium in process memory. Nothing survives
// a restart; intended for tests and short-lived tooling.
type Store struct {
	mu   sync.RWMutex
	data map[string][]byte
}

var _ core.KeyValue = (*Store)(nil)

func New() *Store {
	return &Store{data: make(map[string][]byte)}
}

// Get returns a copy of the stored value, or (nil, nil) for a missing key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.data[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), value...), nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = append([]byte(nil), value...)
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// Len returns the number of stored keys
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
