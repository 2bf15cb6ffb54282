package filter

import (
	"container/list"
	"sync"
)

// programCache is a small thread-safe LRU over compiled filter programs.
// CLI sessions tend to reuse a handful of expressions; caching avoids
// recompiling them per invocation.
type programCache struct {
	size      int
	mu        sync.Mutex
	evictList *list.List
	items     map[string]*list.Element
}

type cacheEntry struct {
	key    string
	filter *GameFilter
}

func newProgramCache(size int) *programCache {
	return &programCache{
		size:      size,
		evictList: list.New(),
		items:     make(map[string]*list.Element),
	}
}

func (c *programCache) get(key string) (*GameFilter, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	node, ok := c.items[key]
	if !ok {
		return nil, false
	}
	c.evictList.MoveToFront(node)
	return node.Value.(*cacheEntry).filter, true
}

func (c *programCache) put(key string, f *GameFilter) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if node, ok := c.items[key]; ok {
		c.evictList.MoveToFront(node)
		node.Value.(*cacheEntry).filter = f
		return
	}

	node := c.evictList.PushFront(&cacheEntry{key: key, filter: f})
	c.items[key] = node

	if c.evictList.Len() > c.size {
		oldest := c.evictList.Back()
		if oldest != nil {
			c.evictList.Remove(oldest)
			delete(c.items, oldest.Value.(*cacheEntry).key)
		}
	}
}
