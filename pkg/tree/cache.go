package tree

import (
	"time"

	"github.com/everkept/memoria/backend/pkg/common"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

type cacheKey struct {
	startID  string
	maxDepth int
}

// neighborhoodCache caches loaded neighborhoods keyed by start identifier
// and traversal depth. Entries are opaque and invalidated by time only; no
// write-through consistency with concurrent edits is attempted.
type neighborhoodCache struct {
	lru *expirable.LRU[cacheKey, map[string]*common.Memorial]
}

func newNeighborhoodCache(size int, ttl time.Duration) *neighborhoodCache {
	return &neighborhoodCache{
		lru: expirable.NewLRU[cacheKey, map[string]*common.Memorial](size, nil, ttl),
	}
}

func (c *neighborhoodCache) Get(startID string, maxDepth int) (map[string]*common.Memorial, bool) {
	return c.lru.Get(cacheKey{startID: startID, maxDepth: maxDepth})
}

func (c *neighborhoodCache) Add(startID string, maxDepth int, records map[string]*common.Memorial) {
	c.lru.Add(cacheKey{startID: startID, maxDepth: maxDepth}, records)
}
