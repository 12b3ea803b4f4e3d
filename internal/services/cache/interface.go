package cache

import (
	"context"
	"fmt"
	"time"
)

// Cache stores encoded render results keyed by document revision
type Cache interface {
	// Get retrieves a value from the cache
	Get(ctx context.Context, key string) ([]byte, bool)

	// Set stores a value in the cache with a TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value from the cache
	Delete(ctx context.Context, key string) error

	// Clear removes all values from the cache
	Clear(ctx context.Context) error

	// Has checks if a key exists in the cache
	Has(ctx context.Context, key string) bool
}

// CacheStats provides statistics about cache usage
type CacheStats struct {
	Hits      int64 `json:"hits"`
	Misses    int64 `json:"misses"`
	Sets      int64 `json:"sets"`
	Deletes   int64 `json:"deletes"`
	Evictions int64 `json:"evictions"`
	Entries   int   `json:"entries"`
	Size      int64 `json:"size_bytes"`
	MaxSize   int64 `json:"max_size_bytes"`
}

// StatsProvider interface for caches that provide statistics
type StatsProvider interface {
	Stats() CacheStats
}

// RenderKey identifies one rendering of a document. The document UUID keeps
// keys from colliding when a database reuses numeric ids.
func RenderKey(documentUUID, mode, revision string) string {
	return fmt.Sprintf("render:%s:%s:%s", documentUUID, mode, revision)
}
