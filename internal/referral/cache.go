package referral

import (
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// CacheStats reports memo cache effectiveness
type CacheStats struct {
	Hits   int64
	Misses int64
	Size   int
}

// CachedCodec memoizes another Codec in an expiring LRU.
// Codes are deterministic, so the TTL only bounds memory held by ids that stopped showing up.
type CachedCodec struct {
	inner  Codec
	lru    *expirable.LRU[string, string]
	hits   atomic.Int64
	misses atomic.Int64
}

// NewCachedCodec wraps inner with a cache of at most size entries.
// A non-positive size falls back to DefaultCacheSize; a zero ttl never expires entries.
func NewCachedCodec(inner Codec, size int, ttl time.Duration) *CachedCodec {
	if size <= 0 {
		size = DefaultCacheSize
	}
	return &CachedCodec{
		inner: inner,
		lru:   expirable.NewLRU[string, string](size, nil, ttl),
	}
}

// Code implements Codec.
func (c *CachedCodec) Code(userID string) string {
	code, _ := c.Lookup(userID)
	return code
}

// Lookup returns the code for userID and whether it was served from cache.
func (c *CachedCodec) Lookup(userID string) (string, bool) {
	if code, ok := c.lru.Get(userID); ok {
		c.hits.Add(1)
		return code, true
	}
	c.misses.Add(1)

	code := c.inner.Code(userID)
	c.lru.Add(userID, code)
	return code, false
}

// Purge drops every cached code.
func (c *CachedCodec) Purge() {
	c.lru.Purge()
}

// Stats returns hit/miss counters and the current entry count.
func (c *CachedCodec) Stats() CacheStats {
	return CacheStats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Size:   c.lru.Len(),
	}
}
