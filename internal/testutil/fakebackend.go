// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"errors"
	"sync"

	"ltask/internal/persist"
	"ltask/internal/persist/memkv"
	"ltask/internal/task"
)

// ErrInjected is a generic error for failure injection.
var ErrInjected = errors.New("injected failure")

// FakeBackend is an in-memory persist.Backend that records calls and can
// be told to fail.
type FakeBackend struct {
	mu    sync.Mutex
	store *memkv.Store

	getCalls int
	setCalls int
	closed   bool

	// Error injection for testing
	GetErr error
	SetErr error
}

// NewFakeBackend creates an empty FakeBackend.
func NewFakeBackend() *FakeBackend {
	return &FakeBackend{store: memkv.New(0)}
}

// Seed stores raw under key without counting it as a write.
func (f *FakeBackend) Seed(key, raw string) {
	_ = f.store.Set(context.Background(), key, raw)
}

// SeedTasks stores tasks under persist.DefaultKey without counting it as
// a write.
func (f *FakeBackend) SeedTasks(tasks ...task.Task) {
	raw, err := persist.Encode(tasks)
	if err != nil {
		panic(err)
	}
	f.Seed(persist.DefaultKey, raw)
}

// Raw returns the value stored under key.
func (f *FakeBackend) Raw(key string) (string, bool) {
	v, ok, _ := f.store.Get(context.Background(), key)
	return v, ok
}

// Stored decodes the collection stored under persist.DefaultKey.
func (f *FakeBackend) Stored() task.Collection {
	raw, ok := f.Raw(persist.DefaultKey)
	if !ok {
		return nil
	}
	tasks, err := persist.Decode(raw)
	if err != nil {
		return nil
	}
	return tasks
}

// SetCalls returns how many times Set has been called, including failed
// calls.
func (f *FakeBackend) SetCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.setCalls
}

// GetCalls returns how many times Get has been called.
func (f *FakeBackend) GetCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.getCalls
}

// Closed reports whether Close has been called.
func (f *FakeBackend) Closed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

// Get implements persist.Backend.
func (f *FakeBackend) Get(ctx context.Context, key string) (string, bool, error) {
	f.mu.Lock()
	f.getCalls++
	err := f.GetErr
	f.mu.Unlock()
	if err != nil {
		return "", false, err
	}
	return f.store.Get(ctx, key)
}

// Set implements persist.Backend.
func (f *FakeBackend) Set(ctx context.Context, key, value string) error {
	f.mu.Lock()
	f.setCalls++
	err := f.SetErr
	f.mu.Unlock()
	if err != nil {
		return err
	}
	return f.store.Set(ctx, key, value)
}

// Close implements persist.Backend.
func (f *FakeBackend) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}
