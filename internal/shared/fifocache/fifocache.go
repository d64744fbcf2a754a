// Package fifocache provides a small bounded map with insertion-order
// eviction. Eviction is FIFO on insertion order, not LRU: a hit does not
// refresh an entry's position.
package fifocache

import "sync"

type Cache[V any] struct {
	mu       sync.Mutex
	capacity int
	entries  map[string]V
	order    []string
}

func New[V any](capacity int) *Cache[V] {
	if capacity < 1 {
		capacity = 1
	}
	return &Cache[V]{
		capacity: capacity,
		entries:  make(map[string]V, capacity),
	}
}

func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[key]
	return v, ok
}

// Put inserts a value, evicting the oldest inserted key when at capacity.
// Eviction and insertion happen under one lock so the cache never exceeds
// its capacity.
func (c *Cache[V]) Put(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; exists {
		c.entries[key] = value
		return
	}

	if len(c.entries) >= c.capacity {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}

	c.entries[key] = value
	c.order = append(c.order, key)
}

func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *Cache[V]) Capacity() int {
	return c.capacity
}

func (c *Cache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]V, c.capacity)
	c.order = nil
}
