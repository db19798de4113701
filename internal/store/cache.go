package store

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// CacheSchemaVersion is the current version of the cache entry layout.
// Increment this when the cached data structure changes to auto-invalidate old entries
const CacheSchemaVersion = "1.0"

// CacheConfig sizes the read-through cache.
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// DefaultCacheConfig returns the cache defaults.
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{Size: 64, TTL: 5 * time.Minute}
}

// CacheStats reports cache effectiveness.
type CacheStats struct {
	Hits   int64
	Misses int64
	Size   int
}

type cachedEntry struct {
	Version  string
	Data     []byte
	CachedAt time.Time
}

// Cached is a read-through, write-through LRU in front of a slower Store.
type Cached struct {
	next   Store
	lru    *expirable.LRU[string, *cachedEntry]
	hits   atomic.Int64
	misses atomic.Int64
}

// NewCached wraps next with a cache.
func NewCached(next Store, cfg CacheConfig) *Cached {
	if cfg.Size <= 0 {
		cfg.Size = DefaultCacheConfig().Size
	}
	return &Cached{
		next: next,
		lru:  expirable.NewLRU[string, *cachedEntry](cfg.Size, nil, cfg.TTL),
	}
}

// GetStats returns hit and miss counters and the current size.
func (c *Cached) GetStats() CacheStats {
	return CacheStats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Size:   c.lru.Len(),
	}
}

// Get serves from the cache, falling back to the wrapped store.
func (c *Cached) Get(ctx context.Context, key string) ([]byte, error) {
	if entry, found := c.lru.Get(key); found {
		if entry.Version == CacheSchemaVersion {
			c.hits.Add(1)
			return append([]byte(nil), entry.Data...), nil
		}
		c.lru.Remove(key)
	}
	c.misses.Add(1)

	data, err := c.next.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	c.put(key, data)
	return data, nil
}

// Set writes through and refreshes the cache only on success.
func (c *Cached) Set(ctx context.Context, key string, data []byte) error {
	if err := c.next.Set(ctx, key, data); err != nil {
		c.lru.Remove(key)
		return err
	}
	c.put(key, data)
	return nil
}

// Delete removes the key from both layers.
func (c *Cached) Delete(ctx context.Context, key string) error {
	c.lru.Remove(key)
	return c.next.Delete(ctx, key)
}

// Close purges the cache and closes the wrapped store.
func (c *Cached) Close() error {
	c.lru.Purge()
	return c.next.Close()
}

// Unwrap returns the wrapped store.
func (c *Cached) Unwrap() Store {
	return c.next
}

func (c *Cached) put(key string, data []byte) {
	c.lru.Add(key, &cachedEntry{
		Version:  CacheSchemaVersion,
		Data:     append([]byte(nil), data...),
		CachedAt: time.Now(),
	})
}
