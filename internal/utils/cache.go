package utils

import (
	"container/list"
	"sync"
	"time"
)

// CacheEntry represents an entry in the cache with TTL
type CacheEntry[V any] struct {
	Key       string
	Value     V
	ExpiresAt time.Time
}

// IsExpired returns true if the entry has expired
func (e *CacheEntry[V]) IsExpired(now time.Time) bool {
	return !e.ExpiresAt.IsZero() && now.After(e.ExpiresAt)
}

// SmartCache is an LRU cache with TTL support
type SmartCache[V any] struct {
	maxSize   int
	ttl       time.Duration
	now       func() time.Time
	items     map[string]*list.Element
	lruList   *list.List
	mu        sync.Mutex
	hits      int64
	misses    int64
	evictions int64
}

// NewSmartCache creates a new cache with LRU eviction and TTL (zero TTL never expires)
func NewSmartCache[V any](maxSize int, ttl time.Duration) *SmartCache[V] {
	if maxSize <= 0 {
		maxSize = 1
	}
	return &SmartCache[V]{
		maxSize: maxSize,
		ttl:     ttl,
		now:     time.Now,
		items:   make(map[string]*list.Element),
		lruList: list.New(),
	}
}

// Get retrieves a live value from the cache
func (c *SmartCache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	elem, exists := c.items[key]
	if !exists {
		c.misses++
		return zero, false
	}

	entry := elem.Value.(*CacheEntry[V])
	if entry.IsExpired(c.now()) {
		c.removeLocked(key)
		c.misses++
		return zero, false
	}

	c.lruList.MoveToFront(elem)
	c.hits++
	return entry.Value, true
}

// Set adds or updates a value in the cache
func (c *SmartCache[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiresAt := time.Time{}
	if c.ttl > 0 {
		expiresAt = c.now().Add(c.ttl)
	}

	if elem, exists := c.items[key]; exists {
		entry := elem.Value.(*CacheEntry[V])
		entry.Value = value
		entry.ExpiresAt = expiresAt
		c.lruList.MoveToFront(elem)
		return
	}

	elem := c.lruList.PushFront(&CacheEntry[V]{
		Key:       key,
		Value:     value,
		ExpiresAt: expiresAt,
	})
	c.items[key] = elem

	if c.lruList.Len() > c.maxSize {
		c.evictOldestLocked()
	}
}

// Delete removes a value from the cache
func (c *SmartCache[V]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(key)
}

// Clear removes all entries and resets counters
func (c *SmartCache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*list.Element)
	c.lruList.Init()
	c.hits = 0
	c.misses = 0
	c.evictions = 0
}

// Size returns the current number of entries
func (c *SmartCache[V]) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lruList.Len()
}

// Stats returns cache statistics
func (c *SmartCache[V]) Stats() (hits, misses, evictions int64, size int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses, c.evictions, c.lruList.Len()
}

// CleanupExpired removes all expired entries
func (c *SmartCache[V]) CleanupExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	removed := 0
	for key, elem := range c.items {
		if elem.Value.(*CacheEntry[V]).IsExpired(now) {
			c.removeLocked(key)
			removed++
		}
	}
	return removed
}

// removeLocked removes an entry (must be called with lock held)
func (c *SmartCache[V]) removeLocked(key string) {
	if elem, exists := c.items[key]; exists {
		c.lruList.Remove(elem)
		delete(c.items, key)
	}
}

// evictOldestLocked removes the least recently used entry (must be called with lock held)
func (c *SmartCache[V]) evictOldestLocked() {
	if elem := c.lruList.Back(); elem != nil {
		c.removeLocked(elem.Value.(*CacheEntry[V]).Key)
		c.evictions++
	}
}
