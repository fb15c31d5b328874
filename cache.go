package localize

import (
	"sync"
	"time"
)

// DefaultBundleTTL bounds how long a cached bundle is served before the
// persistent store is consulted again.
const DefaultBundleTTL = time.Hour

// DefaultCacheCapacity bounds the number of (language, market) bundles held
// in memory at once.
const DefaultCacheCapacity = 64

type cacheEntry struct {
	bundle     *TranslationBundle
	insertedAt time.Time
	ttl        time.Duration
}

// BundleCache is a time-bounded in-memory store of (language, market)
// bundles fronting the persistent store. It never raises to callers: at
// capacity it silently evicts the least-recently-inserted entry. Reads do
// not reorder entries; eviction follows strict insertion order.
type BundleCache struct {
	mu       sync.Mutex
	entries  map[string]*cacheEntry
	order    []string
	capacity int
	now      func() time.Time
}

// BundleCacheOption mutates cache construction.
type BundleCacheOption func(*BundleCache)

// WithCacheCapacity overrides the entry capacity.
func WithCacheCapacity(capacity int) BundleCacheOption {
	return func(c *BundleCache) {
		if capacity > 0 {
			c.capacity = capacity
		}
	}
}

// WithCacheClock overrides the time source, used to pin TTL behavior in tests.
func WithCacheClock(now func() time.Time) BundleCacheOption {
	return func(c *BundleCache) {
		if now != nil {
			c.now = now
		}
	}
}

// NewBundleCache builds an empty cache.
func NewBundleCache(opts ...BundleCacheOption) *BundleCache {
	cache := &BundleCache{
		entries:  make(map[string]*cacheEntry),
		capacity: DefaultCacheCapacity,
		now:      time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(cache)
		}
	}
	return cache
}

// Get returns the cached bundle for the pair. A hit requires both key
// presence and TTL freshness; stale entries are removed and reported as
// misses.
func (c *BundleCache) Get(languageCode, marketCode string) (*TranslationBundle, bool) {
	if c == nil {
		return nil, false
	}
	key := CombinedID(languageCode, marketCode)

	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}

	if c.now().Sub(entry.insertedAt) > entry.ttl {
		c.removeLocked(key)
		return nil, false
	}

	return entry.bundle, true
}

// Put stores the bundle for the pair, overwriting any existing entry
// unconditionally (last writer wins, no merge).
func (c *BundleCache) Put(languageCode, marketCode string, bundle *TranslationBundle, ttl time.Duration) {
	if c == nil || bundle == nil {
		return
	}
	if ttl <= 0 {
		ttl = DefaultBundleTTL
	}
	key := CombinedID(languageCode, marketCode)

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; exists {
		c.removeLocked(key)
	}

	for len(c.entries) >= c.capacity && len(c.order) > 0 {
		c.removeLocked(c.order[0])
	}

	c.entries[key] = &cacheEntry{
		bundle:     bundle,
		insertedAt: c.now(),
		ttl:        ttl,
	}
	c.order = append(c.order, key)
}

// Invalidate drops the entry for the pair if present.
func (c *BundleCache) Invalidate(languageCode, marketCode string) {
	if c == nil {
		return
	}
	key := CombinedID(languageCode, marketCode)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(key)
}

// InvalidateAll drops every entry.
func (c *BundleCache) InvalidateAll() {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*cacheEntry)
	c.order = nil
}

// Len reports the number of live entries.
func (c *BundleCache) Len() int {
	if c == nil {
		return 0
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *BundleCache) removeLocked(key string) {
	if _, ok := c.entries[key]; !ok {
		return
	}
	delete(c.entries, key)
	for i, candidate := range c.order {
		if candidate == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}
