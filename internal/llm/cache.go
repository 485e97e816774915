package llm

import (
	"sync"
	"time"
)

// cacheEntry is a cached Cypher translation.
type cacheEntry struct {
	expiry time.Time
	cypher string
}

// translationCache provides thread-safe caching for generated Cypher,
// keyed by the exact question text. Translation is the slow, paid step;
// repeated questions are common in a chat UI.
type translationCache struct {
	entries map[string]cacheEntry
	stopCh  chan struct{}
	ttl     time.Duration
	mu      sync.RWMutex
}

// newTranslationCache creates a new cache with the specified TTL.
func newTranslationCache(ttl time.Duration) *translationCache {
	if ttl == 0 {
		ttl = 15 * time.Minute
	}

	cache := &translationCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		stopCh:  make(chan struct{}),
	}

	go cache.cleanup()

	return cache
}

// get retrieves a translation if it exists and has not expired.
func (c *translationCache) get(question string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.entries[question]
	if !exists || time.Now().After(entry.expiry) {
		return "", false
	}

	return entry.cypher, true
}

// set stores a translation.
func (c *translationCache) set(question, cypher string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[question] = cacheEntry{
		cypher: cypher,
		expiry: time.Now().Add(c.ttl),
	}
}

// cleanup periodically removes expired entries.
func (c *translationCache) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopCh:
			return
		case <-ticker.C:
			now := time.Now()
			c.mu.Lock()
			for key, entry := range c.entries {
				if now.After(entry.expiry) {
					delete(c.entries, key)
				}
			}
			c.mu.Unlock()
		}
	}
}

// Close stops the cleanup goroutine.
func (c *translationCache) Close() {
	close(c.stopCh)
}
