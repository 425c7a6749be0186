package cache

import (
	"context"
	"sync"
	"time"
)

type entry[T any] struct {
	value  T
	expiry time.Time
}

// Memory is an in-process TTL store. An optional clone function protects
// cached values holding slices or maps from aliasing between callers.
type Memory[T any] struct {
	mu      sync.RWMutex
	entries map[string]entry[T]
	clone   func(T) T
}

func NewMemory[T any](clone func(T) T) *Memory[T] {
	return &Memory[T]{
		entries: make(map[string]entry[T]),
		clone:   clone,
	}
}

func (m *Memory[T]) Get(_ context.Context, key string) (T, bool) {
	m.mu.RLock()
	item, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok {
		var zero T
		return zero, false
	}
	if time.Now().After(item.expiry) {
		m.mu.Lock()
		delete(m.entries, key)
		m.mu.Unlock()
		var zero T
		return zero, false
	}
	if m.clone != nil {
		return m.clone(item.value), true
	}
	return item.value, true
}

func (m *Memory[T]) Set(_ context.Context, key string, value T, ttl time.Duration) {
	m.mu.Lock()
	m.entries[key] = entry[T]{value: m.cloneValue(value), expiry: time.Now().Add(ttl)}
	m.mu.Unlock()
}

func (m *Memory[T]) cloneValue(value T) T {
	if m.clone == nil {
		return value
	}
	return m.clone(value)
}
