package cache

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"chatscope/internal/domain"
)

// MemoryCache is an in-memory analysis-result cache with TTL support.
type MemoryCache struct {
	results sync.Map
	ttl     time.Duration
}

// cacheEntry holds a cached result with expiration metadata.
type cacheEntry struct {
	result     *domain.AnalysisResult
	expiresAt  time.Time
	analyzedAt time.Time
}

// NewMemoryCache creates a new in-memory cache with the specified TTL.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	cache := &MemoryCache{ttl: ttl}
	go cache.cleanup()
	return cache
}

// NormalizedKey returns the cache key for an analysis: {fileID}/{platform}.
// The same file analyzed under two platform tags yields two entries.
func NormalizedKey(fileID string, platform domain.Platform) string {
	return fmt.Sprintf("%s/%s", fileID, platform)
}

// Get retrieves a cached analysis result.
// Returns the result and true if found and not expired, otherwise nil and false.
func (c *MemoryCache) Get(fileID string, platform domain.Platform) (*domain.AnalysisResult, bool) {
	key := NormalizedKey(fileID, platform)
	value, ok := c.results.Load(key)
	if !ok {
		return nil, false
	}

	entry := value.(*cacheEntry)
	if time.Now().After(entry.expiresAt) {
		c.results.Delete(key)
		return nil, false
	}

	return entry.result, true
}

// Set stores an analysis result with the configured TTL.
func (c *MemoryCache) Set(fileID string, platform domain.Platform, result *domain.AnalysisResult) {
	key := NormalizedKey(fileID, platform)
	now := time.Now()
	c.results.Store(key, &cacheEntry{
		result:     result,
		expiresAt:  now.Add(c.ttl),
		analyzedAt: now,
	})
}

// Delete drops every cached analysis of the given file, across platforms.
func (c *MemoryCache) Delete(fileID string) {
	prefix := fileID + "/"
	c.results.Range(func(key, _ interface{}) bool {
		if strings.HasPrefix(key.(string), prefix) {
			c.results.Delete(key)
		}
		return true
	})
}

// cleanup periodically removes expired entries from the cache.
func (c *MemoryCache) cleanup() {
	ticker := time.NewTicker(1 * time.Minute)
	for range ticker.C {
		now := time.Now()
		c.results.Range(func(key, value interface{}) bool {
			entry := value.(*cacheEntry)
			if now.After(entry.expiresAt) {
				c.results.Delete(key)
			}
			return true
		})
	}
}
