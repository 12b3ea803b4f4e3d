package cache

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

const (
	defaultTTL           = 10 * time.Minute
	defaultSweepInterval = time.Minute
)

// MemoryCache is a size-bounded in-memory cache. When full, entries closest
// to expiry are evicted first.
type MemoryCache struct {
	mu          sync.RWMutex
	items       map[string]*cacheItem
	maxSize     int64
	currentSize int64

	hits      atomic.Int64
	misses    atomic.Int64
	sets      atomic.Int64
	deletes   atomic.Int64
	evictions atomic.Int64

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	now      func() time.Time
}

type cacheItem struct {
	value  []byte
	expiry time.Time
	size   int64
}

// NewMemoryCache creates a new in-memory cache limited to maxSizeMB megabytes.
// A limit of zero or less disables size based eviction.
func NewMemoryCache(maxSizeMB int64) *MemoryCache {
	return newMemoryCache(maxSizeMB*1024*1024, defaultSweepInterval)
}

func newMemoryCache(maxBytes int64, sweepInterval time.Duration) *MemoryCache {
	mc := &MemoryCache{
		items:   make(map[string]*cacheItem),
		maxSize: maxBytes,
		stopCh:  make(chan struct{}),
		now:     time.Now,
	}

	mc.wg.Add(1)
	go mc.sweep(sweepInterval)

	return mc
}

// Get retrieves a value from the cache
func (mc *MemoryCache) Get(ctx context.Context, key string) ([]byte, bool) {
	mc.mu.RLock()
	item, exists := mc.items[key]
	mc.mu.RUnlock()

	if !exists {
		mc.misses.Add(1)
		return nil, false
	}

	if mc.now().After(item.expiry) {
		mc.remove(key, false)
		mc.misses.Add(1)
		return nil, false
	}

	mc.hits.Add(1)
	return item.value, true
}

// Set stores a value in the cache with a TTL
func (mc *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = defaultTTL
	}

	size := int64(len(key) + len(value))
	item := &cacheItem{
		value:  value,
		expiry: mc.now().Add(ttl),
		size:   size,
	}

	mc.mu.Lock()
	if old, exists := mc.items[key]; exists {
		mc.currentSize -= old.size
		delete(mc.items, key)
	}
	mc.makeRoomLocked(size)
	mc.items[key] = item
	mc.currentSize += size
	mc.mu.Unlock()

	mc.sets.Add(1)
	return nil
}

// Delete removes a value from the cache
func (mc *MemoryCache) Delete(ctx context.Context, key string) error {
	mc.remove(key, true)
	return nil
}

// Clear removes all values from the cache
func (mc *MemoryCache) Clear(ctx context.Context) error {
	mc.mu.Lock()
	mc.items = make(map[string]*cacheItem)
	mc.currentSize = 0
	mc.mu.Unlock()
	return nil
}

// Has checks if a key exists in the cache
func (mc *MemoryCache) Has(ctx context.Context, key string) bool {
	mc.mu.RLock()
	item, exists := mc.items[key]
	mc.mu.RUnlock()

	return exists && mc.now().Before(item.expiry)
}

// Stats returns cache statistics
func (mc *MemoryCache) Stats() CacheStats {
	mc.mu.RLock()
	entries := len(mc.items)
	size := mc.currentSize
	mc.mu.RUnlock()

	return CacheStats{
		Hits:      mc.hits.Load(),
		Misses:    mc.misses.Load(),
		Sets:      mc.sets.Load(),
		Deletes:   mc.deletes.Load(),
		Evictions: mc.evictions.Load(),
		Entries:   entries,
		Size:      size,
		MaxSize:   mc.maxSize,
	}
}

// Stop shuts down the expiry sweeper. It is safe to call more than once.
func (mc *MemoryCache) Stop() {
	mc.stopOnce.Do(func() { close(mc.stopCh) })
	mc.wg.Wait()
}

func (mc *MemoryCache) remove(key string, explicit bool) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	item, exists := mc.items[key]
	if !exists {
		return
	}
	delete(mc.items, key)
	mc.currentSize -= item.size
	if explicit {
		mc.deletes.Add(1)
	} else {
		mc.evictions.Add(1)
	}
}

func (mc *MemoryCache) sweep(interval time.Duration) {
	defer mc.wg.Done()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			mc.mu.Lock()
			mc.removeExpiredLocked()
			mc.mu.Unlock()
		case <-mc.stopCh:
			return
		}
	}
}

func (mc *MemoryCache) removeExpiredLocked() {
	now := mc.now()
	for key, item := range mc.items {
		if now.After(item.expiry) {
			delete(mc.items, key)
			mc.currentSize -= item.size
			mc.evictions.Add(1)
		}
	}
}

// makeRoomLocked evicts entries until size more bytes fit. Caller holds mu.
func (mc *MemoryCache) makeRoomLocked(size int64) {
	if mc.maxSize <= 0 || mc.currentSize+size <= mc.maxSize {
		return
	}

	mc.removeExpiredLocked()
	if mc.currentSize+size <= mc.maxSize {
		return
	}

	keys := make([]string, 0, len(mc.items))
	for key := range mc.items {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		return mc.items[keys[i]].expiry.Before(mc.items[keys[j]].expiry)
	})

	for _, key := range keys {
		if mc.currentSize+size <= mc.maxSize {
			return
		}
		mc.currentSize -= mc.items[key].size
		delete(mc.items, key)
		mc.evictions.Add(1)
	}
}
