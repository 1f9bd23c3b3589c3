// Package cache memoizes simulation results so that identical requests
// served close together do not recompute the whole pipeline.
package cache

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/loopvinyl/waste-carbon-simulator/internal/must"
)

var ErrNotFound = errors.New("key not found in cache")

type entry struct {
	expiresAt time.Time
	v         any
}

func (e *entry) isExpired() bool {
	return time.Since(e.expiresAt) > 0
}

type Memory struct {
	m          *sync.Map
	defaultTTL time.Duration
}

// NewMemory creates the cache and starts its expirer. The expirer stops
// when ctx is canceled.
func NewMemory(ctx context.Context, defaultTTL time.Duration) *Memory {
	cache := &Memory{
		m:          new(sync.Map),
		defaultTTL: defaultTTL,
	}

	go cache.expirer(ctx)

	return cache
}

func (m *Memory) Set(k string, v any, ttl ...time.Duration) {
	defaultTTL := m.defaultTTL
	if len(ttl) > 0 {
		defaultTTL = ttl[0]
	}

	m.m.Store(k, &entry{
		expiresAt: time.Now().Add(defaultTTL),
		v:         v,
	})

	slog.Debug("new cache entry", "key", k)
}

func (m *Memory) Get(k string) (v any, err error) {
	v, found := m.m.Load(k)
	if !found {
		return nil, ErrNotFound
	}

	entry, ok := v.(*entry)
	must.Assert(ok, "loaded value is not an entry")

	if entry.isExpired() {
		slog.Debug("cache expired", "key", k)
		m.m.Delete(k)
		return nil, ErrNotFound
	}

	return entry.v, nil
}

// GetOrSet returns the cached value for key or computes, stores and
// returns it.
func (m *Memory) GetOrSet(ctx context.Context, key string, valueFunc func(ctx context.Context) (any, error), ttl ...time.Duration) (v any, err error) {
	v, err = m.Get(key)
	if err == nil {
		return v, nil
	}
	if err != ErrNotFound {
		return nil, err
	}

	v, err = valueFunc(ctx)
	if err != nil {
		return nil, err
	}

	m.Set(key, v, ttl...)
	return v, nil
}

func (m *Memory) expirer(ctx context.Context) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		m.m.Range(func(k, v any) bool {
			entry, ok := v.(*entry)
			must.Assert(ok, "loaded value is not an entry")

			if entry.isExpired() {
				slog.Debug("cache expired", "key", k)
				m.m.Delete(k)
			}

			return true
		})
	}
}
