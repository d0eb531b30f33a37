package ledger

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/CraftPanel_Go/internal/domain"
)

// CacheSchemaVersion is the current version of the cache schema
// Increment this when the cached data structure changes to auto-invalidate old entries
const CacheSchemaVersion = "1.0"

// cachedLedgerEntry wraps an unlock ledger with version metadata for cache invalidation
type cachedLedgerEntry struct {
	Version  string
	Recipes  []domain.UnlockedRecipe
	CachedAt time.Time
}

// unlockCache provides an in-memory LRU cache of per-user unlock ledgers
// with time-based expiration and version-based invalidation.
type unlockCache struct {
	lru *expirable.LRU[string, *cachedLedgerEntry]
}

// newUnlockCache creates a new cache with the specified size and TTL.
func newUnlockCache(size int, ttl time.Duration) *unlockCache {
	return &unlockCache{
		lru: expirable.NewLRU[string, *cachedLedgerEntry](size, nil, ttl),
	}
}

// Get returns the cached ledger of userID. Entries with a stale schema
// version are dropped.
func (c *unlockCache) Get(userID string) ([]domain.UnlockedRecipe, bool) {
	entry, found := c.lru.Get(userID)
	if !found {
		return nil, false
	}

	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(userID)
		return nil, false
	}

	return entry.Recipes, true
}

// Set stores a ledger with the current schema version.
func (c *unlockCache) Set(userID string, recipes []domain.UnlockedRecipe) {
	c.lru.Add(userID, &cachedLedgerEntry{
		Version:  CacheSchemaVersion,
		Recipes:  recipes,
		CachedAt: time.Now(),
	})
}

// Invalidate removes a user's ledger from the cache.
func (c *unlockCache) Invalidate(userID string) {
	c.lru.Remove(userID)
}

// Clear removes all entries from the cache.
func (c *unlockCache) Clear() {
	c.lru.Purge()
}
