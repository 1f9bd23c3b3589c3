package cache

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemory(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	memory := NewMemory(ctx, 1*time.Second)

	_, err := memory.Get("missing")
	assert.ErrorIs(t, err, ErrNotFound)

	memory.Set("k1", "v1")
	v, err := memory.Get("k1")
	assert.NoError(t, err)
	assert.Equal(t, "v1", v)

	// should be expired as TTL is 0 second
	memory.Set("k2", "v2", 0*time.Second)
	_, err = memory.Get("k2")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryGetOrSet(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	memory := NewMemory(ctx, 1*time.Second)

	calls := 0
	compute := func(ctx context.Context) (any, error) {
		calls++
		return "computed", nil
	}

	v, err := memory.GetOrSet(ctx, "k1", compute)
	assert.NoError(t, err)
	assert.Equal(t, "computed", v)

	v, err = memory.GetOrSet(ctx, "k1", compute)
	assert.NoError(t, err)
	assert.Equal(t, "computed", v)
	assert.Equal(t, 1, calls)

	// errors are not cached
	_, err = memory.GetOrSet(ctx, "k2", func(ctx context.Context) (any, error) {
		return nil, fmt.Errorf("expected error")
	})
	assert.Error(t, err)
	_, err = memory.Get("k2")
	assert.ErrorIs(t, err, ErrNotFound)
}
