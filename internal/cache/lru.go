package cache

import (
	"container/list"
	"sync"
)

type lruEntry[V any] struct {
	key   string
	value V
}

// LRU is a bounded cache evicting the least-recently-used entry once
// maxEntries is exceeded. Lookup counts as use.
type LRU[V any] struct {
	mu         sync.Mutex
	maxEntries int
	order      *list.List
	items      map[string]*list.Element
}

// NewLRU creates a cache bounded to maxEntries. maxEntries must be positive.
func NewLRU[V any](maxEntries int) *LRU[V] {
	if maxEntries <= 0 {
		panic("cache: LRU maxEntries must be positive")
	}
	return &LRU[V]{
		maxEntries: maxEntries,
		order:      list.New(),
		items:      make(map[string]*list.Element),
	}
}

func (c *LRU[V]) Lookup(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.items[key]; ok {
		c.order.MoveToFront(el)
		return el.Value.(*lruEntry[V]).value, true
	}
	var zero V
	return zero, false
}

func (c *LRU[V]) Store(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		c.order.MoveToFront(el)
		el.Value.(*lruEntry[V]).value = value
		return
	}

	c.items[key] = c.order.PushFront(&lruEntry[V]{key: key, value: value})

	if c.order.Len() > c.maxEntries {
		oldest := c.order.Back()
		if oldest != nil {
			c.order.Remove(oldest)
			delete(c.items, oldest.Value.(*lruEntry[V]).key)
		}
	}
}

func (c *LRU[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
