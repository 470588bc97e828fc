package pricefeed

import (
	"strings"
	"sync"
	"time"
)

// Default cache configuration constants.
const (
	defaultCacheTTL     = 5 * time.Minute
	defaultCacheMaxSize = 256
)

// cacheEntry pairs a result with its storage time for TTL checks.
type cacheEntry struct {
	result   Result
	storedAt time.Time
}

// resultCache is a bounded TTL cache of offer results keyed by the
// lowercased query. Repeated lookups for the same part within the TTL
// skip the upstream call.
type resultCache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	ttl     time.Duration
	maxSize int
}

func newResultCache(ttl time.Duration, maxSize int) *resultCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	if maxSize <= 0 {
		maxSize = defaultCacheMaxSize
	}
	return &resultCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		maxSize: maxSize,
	}
}

func cacheKey(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// get returns the cached result for a query if it is still fresh.
// Expired entries are removed on the way out.
func (c *resultCache) get(query string) (Result, bool) {
	key := cacheKey(query)

	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return Result{}, false
	}
	if time.Since(entry.storedAt) > c.ttl {
		delete(c.entries, key)
		return Result{}, false
	}
	return entry.result, true
}

// put stores a result, evicting the stalest entry when the cache is full.
func (c *resultCache) put(query string, r Result) {
	key := cacheKey(query)

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.maxSize {
		c.evictOldest()
	}
	c.entries[key] = cacheEntry{result: r, storedAt: time.Now()}
}

// evictOldest removes the entry with the earliest storage time.
// Must be called with c.mu held.
func (c *resultCache) evictOldest() {
	var oldestKey string
	var oldestAt time.Time
	for key, entry := range c.entries {
		if oldestKey == "" || entry.storedAt.Before(oldestAt) {
			oldestKey = key
			oldestAt = entry.storedAt
		}
	}
	if oldestKey != "" {
		delete(c.entries, oldestKey)
	}
}

// size returns the current number of cached results.
func (c *resultCache) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
