// Package cache memoizes encoded renders.
package cache

import "sync"

// Cache is a concurrency-safe byte cache with a soft entry limit. When
// full, an arbitrary entry is evicted to make room.
type Cache struct {
	mu    sync.RWMutex
	items map[string][]byte
	max   int
}

// New creates a cache holding at most max entries; max <= 0 means unbounded.
func New(max int) *Cache {
	return &Cache{items: make(map[string][]byte), max: max}
}

// Get returns the bytes stored under key, calling load on a miss. Failed
// loads are not cached. Concurrent misses on the same key may each call
// load; the first stored result wins.
func (c *Cache) Get(key string, load func() ([]byte, error)) ([]byte, error) {
	// Fast path: read lock
	c.mu.RLock()
	if data, ok := c.items[key]; ok {
		c.mu.RUnlock()
		return data, nil
	}
	c.mu.RUnlock()

	data, err := load()
	if err != nil {
		return nil, err
	}

	// Write lock with double-check
	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.items[key]; ok {
		return existing, nil
	}
	if c.max > 0 && len(c.items) >= c.max {
		for k := range c.items {
			delete(c.items, k)
			break
		}
	}
	c.items[key] = data
	return data, nil
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
