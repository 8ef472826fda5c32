package wordlist

import (
	"math"
	"sync"

	"github.com/bastiangx/wordsolve/pkg/solver"
	"github.com/charmbracelet/log"
)

type cacheKey struct {
	language string
	length   int
}

// Cache keeps the indexes of the most recently used word lists in memory.
// Stored indexes are shared with callers.
type Cache struct {
	lists       map[cacheKey]*solver.WordIndex
	accessTime  map[cacheKey]int64
	accessCount int64
	hits        int
	misses      int
	maxLists    int
	mu          sync.Mutex
}

// NewCache creates a cache holding up to maxLists lists.
// maxLists <= 0 disables caching.
func NewCache(maxLists int) *Cache {
	return &Cache{
		lists:      make(map[cacheKey]*solver.WordIndex, max(maxLists, 0)),
		accessTime: make(map[cacheKey]int64, max(maxLists, 0)),
		maxLists:   maxLists,
	}
}

// Get returns the cached index for language and length.
func (c *Cache) Get(language string, length int) (*solver.WordIndex, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := cacheKey{language, length}
	idx, ok := c.lists[key]
	if !ok {
		c.misses++
		return nil, false
	}
	c.hits++
	c.accessTime[key] = c.getNextAccessTime()
	return idx, true
}

// Put stores idx, evicting the least recently used list when full.
func (c *Cache) Put(language string, length int, idx *solver.WordIndex) {
	if c.maxLists <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	key := cacheKey{language, length}
	if _, ok := c.lists[key]; !ok && len(c.lists) >= c.maxLists {
		c.evictLRU()
	}
	c.lists[key] = idx
	c.accessTime[key] = c.getNextAccessTime()
}

// Len returns the number of cached lists.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lists)
}

// Stats returns counters for diagnostics.
func (c *Cache) Stats() map[string]int {
	c.mu.Lock()
	defer c.mu.Unlock()

	words := 0
	for _, idx := range c.lists {
		words += idx.Len()
	}
	return map[string]int{
		"cachedLists": len(c.lists),
		"cachedWords": words,
		"maxLists":    c.maxLists,
		"cacheHits":   c.hits,
		"cacheMisses": c.misses,
	}
}

func (c *Cache) getNextAccessTime() int64 {
	c.accessCount++
	return c.accessCount
}

func (c *Cache) evictLRU() {
	var oldestKey cacheKey
	var oldestTime int64 = math.MaxInt64

	for key, accessTime := range c.accessTime {
		if accessTime < oldestTime {
			oldestTime = accessTime
			oldestKey = key
		}
	}

	if oldestTime != math.MaxInt64 {
		delete(c.lists, oldestKey)
		delete(c.accessTime, oldestKey)
		log.Debugf("Evicted %s list of length %d from cache", oldestKey.language, oldestKey.length)
	}
}
