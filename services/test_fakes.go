package services

import (
	"context"
	"sync"
)

// FakeKeyValue is an in-memory KeyValue medium shared by the service tests.
// Error injection lets tests exercise storage failure paths.
type FakeKeyValue struct {
	mu   sync.RWMutex
	data map[string][]byte

	getErr error
	setErr error
}

func NewFakeKeyValue() *FakeKeyValue {
	return &FakeKeyValue{data: make(map[string][]byte)}
}

func (f *FakeKeyValue) Get(ctx context.Context, key string) ([]byte, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	value, ok := f.data[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), value...), nil
}

func (f *FakeKeyValue) Set(ctx context.Context, key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.setErr != nil {
		return f.setErr
	}
	f.data[key] = append([]byte(nil), value...)
	return nil
}

func (f *FakeKeyValue) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.data, key)
	return nil
}

// Has reports whether key currently holds a value.
func (f *FakeKeyValue) Has(key string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	_, ok := f.data[key]
	return ok
}
