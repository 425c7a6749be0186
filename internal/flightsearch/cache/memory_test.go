package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryGetSet(t *testing.T) {
	ctx := context.Background()
	store := NewMemory[string](nil)

	_, ok := store.Get(ctx, "missing")
	assert.False(t, ok)

	store.Set(ctx, "key", "value", time.Minute)
	got, ok := store.Get(ctx, "key")
	require.True(t, ok)
	assert.Equal(t, "value", got)
}

func TestMemoryExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemory[int](nil)

	store.Set(ctx, "key", 42, 5*time.Millisecond)
	time.Sleep(20 * time.Millisecond)

	_, ok := store.Get(ctx, "key")
	assert.False(t, ok)
}

func TestMemoryCloneIsolation(t *testing.T) {
	ctx := context.Background()
	store := NewMemory[[]string](func(v []string) []string {
		clone := make([]string, len(v))
		copy(clone, v)
		return clone
	})

	original := []string{"a", "b"}
	store.Set(ctx, "key", original, time.Minute)
	original[0] = "mutated"

	got, ok := store.Get(ctx, "key")
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, got)

	got[1] = "mutated"
	again, _ := store.Get(ctx, "key")
	assert.Equal(t, []string{"a", "b"}, again)
}
