package utils

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

func newTestCache[V any](maxSize int, ttl time.Duration) (*SmartCache[V], *fakeClock) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)}
	cache := NewSmartCache[V](maxSize, ttl)
	cache.now = clock.Now
	return cache, clock
}

func TestSmartCacheBasicOperations(t *testing.T) {
	cache, _ := newTestCache[[]string](3, 0)

	cache.Set("playlist", []string{"Song 1", "Song 2"})
	val, ok := cache.Get("playlist")
	if !ok {
		t.Fatal("Expected playlist to exist")
	}
	if len(val) != 2 || val[0] != "Song 1" {
		t.Errorf("Unexpected value %v", val)
	}

	if _, ok := cache.Get("nonexistent"); ok {
		t.Error("Expected key to not exist")
	}
}

func TestSmartCacheLRUEviction(t *testing.T) {
	cache, _ := newTestCache[string](3, 0)

	cache.Set("key1", "value1")
	cache.Set("key2", "value2")
	cache.Set("key3", "value3")

	// Touch key1 so key2 becomes least recently used
	cache.Get("key1")
	cache.Set("key4", "value4")

	if cache.Size() != 3 {
		t.Errorf("Expected size 3, got %d", cache.Size())
	}
	if _, ok := cache.Get("key2"); ok {
		t.Error("Expected key2 to be evicted")
	}
	if _, ok := cache.Get("key1"); !ok {
		t.Error("Expected key1 to still exist")
	}

	_, _, evictions, _ := cache.Stats()
	if evictions != 1 {
		t.Errorf("Expected 1 eviction, got %d", evictions)
	}
}

func TestSmartCacheTTL(t *testing.T) {
	cache, clock := newTestCache[int](10, time.Minute)

	cache.Set("size", 42)
	if val, ok := cache.Get("size"); !ok || val != 42 {
		t.Fatal("Expected size to exist")
	}

	clock.Advance(59 * time.Second)
	if _, ok := cache.Get("size"); !ok {
		t.Error("Expected size to survive until the TTL")
	}

	clock.Advance(2 * time.Second)
	if _, ok := cache.Get("size"); ok {
		t.Error("Expected size to be expired")
	}
}

func TestSmartCacheUpdateRefreshesTTL(t *testing.T) {
	cache, clock := newTestCache[string](10, time.Minute)

	cache.Set("key1", "value1")
	clock.Advance(50 * time.Second)
	cache.Set("key1", "value2")
	clock.Advance(50 * time.Second)

	val, ok := cache.Get("key1")
	if !ok || val != "value2" {
		t.Errorf("Expected value2, got %v", val)
	}
	if cache.Size() != 1 {
		t.Errorf("Expected size 1, got %d", cache.Size())
	}
}

func TestSmartCacheDeleteAndClear(t *testing.T) {
	cache, _ := newTestCache[string](10, 0)

	cache.Set("key1", "value1")
	cache.Set("key2", "value2")
	cache.Delete("key1")

	if _, ok := cache.Get("key1"); ok {
		t.Error("Expected key1 to be deleted")
	}

	cache.Clear()
	if cache.Size() != 0 {
		t.Errorf("Expected size 0, got %d", cache.Size())
	}

	hits, misses, _, _ := cache.Stats()
	if hits != 0 || misses != 0 {
		t.Errorf("Expected counters reset, got hits=%d misses=%d", hits, misses)
	}
}

func TestSmartCacheStats(t *testing.T) {
	cache, _ := newTestCache[string](10, 0)

	cache.Set("key1", "value1")
	cache.Get("key1")     // hit
	cache.Get("key2")     // miss
	cache.Get("nonexist") // miss

	hits, misses, evictions, size := cache.Stats()
	if hits != 1 {
		t.Errorf("Expected 1 hit, got %d", hits)
	}
	if misses != 2 {
		t.Errorf("Expected 2 misses, got %d", misses)
	}
	if evictions != 0 {
		t.Errorf("Expected 0 evictions, got %d", evictions)
	}
	if size != 1 {
		t.Errorf("Expected size 1, got %d", size)
	}
}

func TestSmartCacheCleanupExpired(t *testing.T) {
	cache, clock := newTestCache[string](10, time.Second)

	cache.Set("key1", "value1")
	cache.Set("key2", "value2")
	clock.Advance(2 * time.Second)
	cache.Set("key3", "value3")

	if removed := cache.CleanupExpired(); removed != 2 {
		t.Errorf("Expected 2 expired entries, got %d", removed)
	}
	if cache.Size() != 1 {
		t.Errorf("Expected size 1 after cleanup, got %d", cache.Size())
	}
}

func TestSmartCacheConcurrency(t *testing.T) {
	cache := NewSmartCache[int](100, 0)
	var wg sync.WaitGroup

	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				cache.Set(fmt.Sprintf("%d-%d", id, j), j)
			}
		}(i)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				cache.Get(fmt.Sprintf("%d-%d", id, j))
			}
		}(i)
	}
	wg.Wait()

	if cache.Size() > 100 {
		t.Errorf("Cache exceeded max size: %d", cache.Size())
	}
}
