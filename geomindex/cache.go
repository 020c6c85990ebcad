package geomindex

import (
	"sync"

	"github.com/gogpu/vtile"
)

// Cache bounds how many tiles' spatial indexes IndexLayer keeps resident at
// once. It is a thread-safe soft-limit LRU keyed by tile coordinates, the
// same tick-counter eviction shape as the teacher's generic cache: past the
// soft limit, the least-recently-touched quarter is dropped rather than
// evicting one entry at a time.
//
// Cache must not be copied after creation.
type Cache struct {
	mu        sync.Mutex
	entries   map[vtile.TileCoords]*cacheEntry
	softLimit int
	tick      int64
}

type cacheEntry struct {
	index *Index
	atime int64
}

// NewCache creates a cache with the given soft limit. A softLimit of 0 means
// unlimited.
func NewCache(softLimit int) *Cache {
	return &Cache{
		entries:   make(map[vtile.TileCoords]*cacheEntry),
		softLimit: softLimit,
	}
}

// Get retrieves the index for coords, if still resident.
func (c *Cache) Get(coords vtile.TileCoords) (*Index, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[coords]
	if !ok {
		return nil, false
	}
	c.tick++
	e.atime = c.tick
	return e.index, true
}

// Set stores idx for coords, evicting the oldest quarter of entries if the
// cache is now over its soft limit.
func (c *Cache) Set(coords vtile.TileCoords, idx *Index) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.tick++
	c.entries[coords] = &cacheEntry{index: idx, atime: c.tick}

	if c.softLimit > 0 && len(c.entries) > c.softLimit {
		c.evictOldest()
	}
}

// Len returns the number of resident entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// evictOldest drops the least-recently-touched entries (by Set or Get) until
// about a quarter of the soft limit is free. Caller must hold c.mu.
func (c *Cache) evictOldest() {
	targetSize := c.softLimit * 3 / 4
	if targetSize < 1 {
		targetSize = 1
	}
	toEvict := len(c.entries) - targetSize
	if toEvict <= 0 {
		return
	}

	type aged struct {
		coords vtile.TileCoords
		atime  int64
	}
	all := make([]aged, 0, len(c.entries))
	for coords, e := range c.entries {
		all = append(all, aged{coords: coords, atime: e.atime})
	}

	for i := 0; i < toEvict && i < len(all); i++ {
		minIdx := i
		for j := i + 1; j < len(all); j++ {
			if all[j].atime < all[minIdx].atime {
				minIdx = j
			}
		}
		if minIdx != i {
			all[i], all[minIdx] = all[minIdx], all[i]
		}
		delete(c.entries, all[i].coords)
	}
}
