package client

import (
	"sync"
	"time"
)

type cacheEntry struct {
	data     []byte
	storedAt time.Time
}

// responseCache is a read-through cache of raw response bodies keyed by
// logical query identity. Entries expire after a fixed TTL and are never
// evicted otherwise; the key space of the catalog endpoints is small and
// bounded by what the process actually browses.
//
// The lock guards the map only. It is not held across network calls, so
// concurrent misses on the same key may each hit the remote once; the
// last writer wins and both results are equally fresh.
type responseCache struct {
	mu  sync.RWMutex
	ttl time.Duration
	now func() time.Time

	entries map[string]cacheEntry
}

func newResponseCache(ttl time.Duration) *responseCache {
	return &responseCache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]cacheEntry),
	}
}

// get returns the cached value for key, or ok=false when the key is absent
// or its entry has outlived the TTL. Expired entries are left in place for
// the next set to overwrite.
func (c *responseCache) get(key string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(e.storedAt) >= c.ttl {
		return nil, false
	}
	return e.data, true
}

func (c *responseCache) set(key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = cacheEntry{data: data, storedAt: c.now()}
}
