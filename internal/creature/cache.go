package creature

import (
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/PackSim_Go/internal/domain"
)

// cachedCreatureEntry wraps a creature with version metadata for cache invalidation
type cachedCreatureEntry struct {
	Version  string
	Creature *domain.Creature
	CachedAt time.Time
}

// CacheStats reports cache effectiveness
type CacheStats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Size   int   `json:"size"`
}

// creatureCache is an expiring LRU of successful lookups, keyed both by id
// and by lower-cased name so either lookup style hits.
type creatureCache struct {
	lru    *expirable.LRU[string, *cachedCreatureEntry]
	hits   atomic.Int64
	misses atomic.Int64
}

func newCreatureCache(size int, ttl time.Duration) *creatureCache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	return &creatureCache{
		lru: expirable.NewLRU[string, *cachedCreatureEntry](size, nil, ttl),
	}
}

func idKey(id int) string { return "id:" + strconv.Itoa(id) }
func nameKey(name string) string { return "name:" + strings.ToLower(name) }

func (c *creatureCache) get(key string) (*domain.Creature, bool) {
	entry, found := c.lru.Get(key)
	if !found {
		c.misses.Add(1)
		return nil, false
	}
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(key)
		c.misses.Add(1)
		return nil, false
	}
	c.hits.Add(1)
	return entry.Creature, true
}

func (c *creatureCache) set(cr *domain.Creature) {
	entry := &cachedCreatureEntry{
		Version:  CacheSchemaVersion,
		Creature: cr,
		CachedAt: time.Now(),
	}
	c.lru.Add(idKey(cr.ID), entry)
	c.lru.Add(nameKey(cr.Name), entry)
}

func (c *creatureCache) stats() CacheStats {
	return CacheStats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Size:   c.lru.Len(),
	}
}

func (c *creatureCache) clear() {
	c.lru.Purge()
}
