// Package cache provides an in-memory TTL cache for refresh results.
//
// Calendar data tolerates about an hour of staleness and guide data about a
// day, so both refreshes run through this cache rather than hitting the city
// site on every read. Values are whole snapshots: a recompute builds a new
// value and swaps it in atomically, so readers see either the previous
// complete snapshot or the new one, never a partial update.
package cache

import (
	"sync"
	"time"
)

// Cache is a key-addressed TTL cache. The zero value is not usable; create
// one with New or NewWithClock.
type Cache struct {
	mu      sync.Mutex
	now     func() time.Time
	entries map[string]entry
}

type entry struct {
	value    interface{}
	cachedAt time.Time
}

// New creates a Cache using the real clock.
func New() *Cache {
	return NewWithClock(time.Now)
}

// NewWithClock creates a Cache with an injectable clock so staleness is
// testable without sleeping.
func NewWithClock(now func() time.Time) *Cache {
	return &Cache{
		now:     now,
		entries: make(map[string]entry),
	}
}

// Get returns the cached value for key if it is younger than ttl, otherwise
// calls compute and caches its result. A failed compute caches nothing, so
// the next Get retries. The lock is not held during compute; concurrent
// misses may recompute redundantly and the last writer wins, which is safe
// because values are immutable snapshots.
func (c *Cache) Get(key string, ttl time.Duration, compute func() (interface{}, error)) (interface{}, error) {
	c.mu.Lock()
	if e, ok := c.entries[key]; ok && c.now().Sub(e.cachedAt) <= ttl {
		value := e.value
		c.mu.Unlock()
		return value, nil
	}
	c.mu.Unlock()

	value, err := compute()
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[key] = entry{value: value, cachedAt: c.now()}
	c.mu.Unlock()
	return value, nil
}

// Invalidate drops the cached value for key, forcing the next Get to
// recompute.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// Size returns the number of cached entries.
func (c *Cache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Fetch is a typed wrapper around Cache.Get.
func Fetch[T any](c *Cache, key string, ttl time.Duration, compute func() (T, error)) (T, error) {
	value, err := c.Get(key, ttl, func() (interface{}, error) {
		return compute()
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return value.(T), nil
}
