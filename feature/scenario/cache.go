package scenario

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// cacheEntry is one parsed scenario fetched from the bucket.
type cacheEntry struct {
	scenario *Scenario
	built    time.Time
	ttl      time.Duration
}

// expired reports whether the entry outlived its TTL. A zero TTL disables caching.
func (e *cacheEntry) expired() bool {
	if e.ttl == 0 {
		return true
	}
	return time.Since(e.built) > e.ttl
}

// cache holds parsed scenarios keyed by object key.
type cache struct {
	mu      sync.RWMutex
	entries map[string]*cacheEntry
	sf      singleflight.Group
	ttl     time.Duration
}

func newCache(ttl time.Duration) *cache {
	return &cache{entries: make(map[string]*cacheEntry), ttl: ttl}
}

// getOrLoad returns a fresh cached scenario or loads it once, even when many
// callers ask for the same key at the same time.
func (c *cache) getOrLoad(ctx context.Context, key string, load func(context.Context) (*Scenario, error)) (*Scenario, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if ok && !entry.expired() {
		return entry.scenario, nil
	}

	result, err, _ := c.sf.Do(key, func() (interface{}, error) {
		// Double-check after acquiring the singleflight slot
		c.mu.RLock()
		entry, ok := c.entries[key]
		c.mu.RUnlock()
		if ok && !entry.expired() {
			return entry.scenario, nil
		}

		sc, err := load(ctx)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.entries[key] = &cacheEntry{scenario: sc, built: time.Now(), ttl: c.ttl}
		c.mu.Unlock()
		return sc, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*Scenario), nil
}

// invalidate drops key from the cache.
func (c *cache) invalidate(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}
