package pattern

import (
	"container/list"
	"sync"
)

type cacheKey struct {
	source          string
	caseInsensitive bool
}

type cacheEntry struct {
	key     cacheKey
	matcher *Matcher
}

// CacheStats reports matcher cache usage.
type CacheStats struct {
	Hits   uint64 `json:"hits"`
	Misses uint64 `json:"misses"`
	Len    int    `json:"len"`
}

// matcherCache is an LRU of compiled matchers. The lock is held while
// compiling so concurrent callers for the same key share one Matcher.
type matcherCache struct {
	capacity int
	items    map[cacheKey]*list.Element
	eviction *list.List
	hits     uint64
	misses   uint64
	mu       sync.Mutex
}

func newMatcherCache(capacity int) *matcherCache {
	return &matcherCache{
		capacity: capacity,
		items:    make(map[cacheKey]*list.Element),
		eviction: list.New(),
	}
}

// getOrCompile returns the cached matcher for key or stores the result of compile.
// Failed compilations are not cached.
func (c *matcherCache) getOrCompile(key cacheKey, compile func() (*Matcher, error)) (*Matcher, error) {
	if c == nil || c.capacity <= 0 {
		return compile()
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.hits++
		c.eviction.MoveToFront(elem)
		return elem.Value.(*cacheEntry).matcher, nil
	}
	c.misses++

	m, err := compile()
	if err != nil {
		return nil, err
	}

	c.items[key] = c.eviction.PushFront(&cacheEntry{key: key, matcher: m})
	if c.eviction.Len() > c.capacity {
		if oldest := c.eviction.Back(); oldest != nil {
			c.eviction.Remove(oldest)
			delete(c.items, oldest.Value.(*cacheEntry).key)
		}
	}
	return m, nil
}

func (c *matcherCache) stats() CacheStats {
	if c == nil {
		return CacheStats{}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return CacheStats{Hits: c.hits, Misses: c.misses, Len: c.eviction.Len()}
}
