// Package cache provides the in-memory stores used to memoize face
// detection results per image reference. Keys are the raw reference
// strings (URL or embedded payload); only final detection outcomes are
// stored, never in-progress placeholders.
package cache

import "sync"

// Cache is a process-wide key/value store with exact string key equality.
type Cache[V any] interface {
	// Lookup returns the stored value for key. The boolean indicates presence.
	Lookup(key string) (V, bool)
	// Store saves the value under key, replacing any previous entry.
	Store(key string, value V)
	// Len returns the number of stored entries.
	Len() int
}

// Memory is an unbounded mutex-guarded map cache. Entries live for the
// lifetime of the process and are never evicted.
type Memory[V any] struct {
	mu   sync.RWMutex
	data map[string]V
}

// NewMemory creates an empty unbounded cache.
func NewMemory[V any]() *Memory[V] {
	return &Memory[V]{data: make(map[string]V)}
}

func (c *Memory[V]) Lookup(key string) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.data[key]
	return v, ok
}

func (c *Memory[V]) Store(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
}

func (c *Memory[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}
