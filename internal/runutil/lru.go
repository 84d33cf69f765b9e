// internal/runutil/lru.go — bounded memo for repeated lookups
package runutil

import "container/list"

// LRU is a size-bounded map with O(1) get/insert and least-recently-used
// eviction. It is not safe for concurrent use.
type LRU[K comparable, V any] struct {
	cap int
	ll  *list.List
	m   map[K]*list.Element
}

type lruNode[K comparable, V any] struct {
	k K
	v V
}

// DefaultLRUSize is used when NewLRU is given a non-positive capacity.
const DefaultLRUSize = 100_000

func NewLRU[K comparable, V any](capacity int) *LRU[K, V] {
	if capacity <= 0 {
		capacity = DefaultLRUSize
	}
	return &LRU[K, V]{cap: capacity, ll: list.New(), m: make(map[K]*list.Element)}
}

// Get returns the value stored for k and marks it most recently used.
func (c *LRU[K, V]) Get(k K) (V, bool) {
	if e, ok := c.m[k]; ok {
		c.ll.MoveToFront(e)
		return e.Value.(*lruNode[K, V]).v, true
	}
	var zero V
	return zero, false
}

// Add stores v under k; returns true if an entry was evicted to make room.
func (c *LRU[K, V]) Add(k K, v V) bool {
	if e, ok := c.m[k]; ok {
		e.Value.(*lruNode[K, V]).v = v
		c.ll.MoveToFront(e)
		return false
	}
	c.m[k] = c.ll.PushFront(&lruNode[K, V]{k: k, v: v})
	if c.ll.Len() <= c.cap {
		return false
	}
	tail := c.ll.Back()
	c.ll.Remove(tail)
	delete(c.m, tail.Value.(*lruNode[K, V]).k)
	return true
}

func (c *LRU[K, V]) Len() int { return c.ll.Len() }

func (c *LRU[K, V]) Cap() int { return c.cap }
