package color

import "sync"

// Cache memoizes parse-and-convert results keyed by the input string, the
// target space, the precision and the parser mode.
//
// Parsing and conversion are pure, so a cached result is always identical
// to a fresh one; the cache only saves work for servers that see the same
// inputs repeatedly. Failed parses are cached too.
//
// Cache is safe for concurrent use by multiple goroutines.
//
// # Memory Management
//
// The cache holds at most the limit given to NewCache. When a new entry
// would exceed it, every entry is dropped and the cache starts over.
type Cache struct {
	mu      sync.RWMutex
	limit   int
	entries map[cacheKey]cacheEntry
}

type cacheKey struct {
	input     string
	target    Space
	precision int
	strict    bool
}

type cacheEntry struct {
	color Color
	err   error
}

// DefaultCacheLimit is the entry limit used when NewCache is given a
// non-positive limit.
const DefaultCacheLimit = 4096

// NewCache creates an empty cache holding up to limit entries.
func NewCache(limit int) *Cache {
	if limit <= 0 {
		limit = DefaultCacheLimit
	}
	return &Cache{
		limit:   limit,
		entries: make(map[cacheKey]cacheEntry),
	}
}

// ParseConvert parses input with p and converts the result to target at
// precision, returning a cached result when one exists.
func (c *Cache) ParseConvert(p Parser, input string, target Space, precision int) (Color, error) {
	key := cacheKey{input: input, target: target, precision: precision, strict: p.Strict}

	c.mu.RLock()
	if e, ok := c.entries[key]; ok {
		c.mu.RUnlock()
		return e.color, e.err
	}
	c.mu.RUnlock()

	col, err := p.Parse(input)
	if err == nil {
		col, err = Convert(col, target, precision)
	}

	c.mu.Lock()
	if len(c.entries) >= c.limit {
		c.entries = make(map[cacheKey]cacheEntry)
	}
	c.entries[key] = cacheEntry{color: col, err: err}
	c.mu.Unlock()

	return col, err
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Clear removes every entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.entries = make(map[cacheKey]cacheEntry)
	c.mu.Unlock()
}
