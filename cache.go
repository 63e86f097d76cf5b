package md2html

import (
	"container/list"
	"sync"
)

// pipelineCache memoizes assembled pipelines by configuration fingerprint.
// Bounded LRU: lookups move the entry to the front, inserts evict the
// least-recently-used entry on overflow. Safe for concurrent use; every
// mutation appears atomic relative to other cache operations.
type pipelineCache struct {
	mu       sync.Mutex
	capacity int
	order    *list.List // front = most recently used
	items    map[string]*list.Element
}

type cacheEntry struct {
	key string
	p   *pipeline
}

func newPipelineCache(capacity int) *pipelineCache {
	if capacity < 1 {
		capacity = 1
	}
	return &pipelineCache{
		capacity: capacity,
		order:    list.New(),
		items:    make(map[string]*list.Element),
	}
}

// get returns the cached pipeline for key and marks it most recently used.
func (c *pipelineCache) get(key string) (*pipeline, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		return nil, false
	}
	c.order.MoveToFront(el)
	return el.Value.(*cacheEntry).p, true
}

// put stores p under key, evicting the oldest entry on overflow. If another
// caller raced put for the same key, the existing entry wins: both pipelines
// are behaviorally identical by construction, so either is valid.
func (c *pipelineCache) put(key string, p *pipeline) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		c.order.MoveToFront(el)
		return
	}
	if c.order.Len() >= c.capacity {
		c.evictOldest()
	}
	c.items[key] = c.order.PushFront(&cacheEntry{key: key, p: p})
}

// evictOldest drops the least-recently-used entry. Caller holds the lock.
func (c *pipelineCache) evictOldest() {
	el := c.order.Back()
	if el == nil {
		return
	}
	c.order.Remove(el)
	delete(c.items, el.Value.(*cacheEntry).key)
}

// clear empties the cache unconditionally.
func (c *pipelineCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.order.Init()
	c.items = make(map[string]*list.Element)
}

// len reports the number of cached pipelines.
func (c *pipelineCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.order.Len()
}
