package hunspell

import "container/list"

// lruCache is a small bounded least-recently-used cache. Neither the
// Damerau-distance cache nor the suggestion cache needs anything fancier
// than this: both are pure-function caches (or, for the suggestion cache,
// caches that are explicitly invalidated on mutation rather than evicted
// for correctness), so a textbook doubly-linked-list-plus-map LRU is all
// spec.md §5's "bounded, may be cleared at will" requirement calls for.
// None of the example repos in the retrieval pack import an LRU library
// (no hashicorp/golang-lru or similar appears anywhere in the corpus), so
// this is one of the few places this module reaches for the standard
// library instead of a third-party package — see DESIGN.md.
type lruCache[K comparable, V any] struct {
	capacity int
	ll       *list.List
	items    map[K]*list.Element
}

type lruEntry[K comparable, V any] struct {
	key K
	val V
}

func newLRUCache[K comparable, V any](capacity int) *lruCache[K, V] {
	if capacity < 1 {
		capacity = 1
	}
	return &lruCache[K, V]{
		capacity: capacity,
		ll:       list.New(),
		items:    make(map[K]*list.Element, capacity),
	}
}

func (c *lruCache[K, V]) Get(key K) (V, bool) {
	if el, ok := c.items[key]; ok {
		c.ll.MoveToFront(el)
		return el.Value.(*lruEntry[K, V]).val, true
	}
	var zero V
	return zero, false
}

func (c *lruCache[K, V]) Add(key K, val V) {
	if el, ok := c.items[key]; ok {
		el.Value.(*lruEntry[K, V]).val = val
		c.ll.MoveToFront(el)
		return
	}
	el := c.ll.PushFront(&lruEntry[K, V]{key: key, val: val})
	c.items[key] = el
	if c.ll.Len() > c.capacity {
		oldest := c.ll.Back()
		if oldest != nil {
			c.ll.Remove(oldest)
			delete(c.items, oldest.Value.(*lruEntry[K, V]).key)
		}
	}
}

func (c *lruCache[K, V]) Clear() {
	c.ll = list.New()
	c.items = make(map[K]*list.Element, c.capacity)
}

func (c *lruCache[K, V]) Len() int {
	return c.ll.Len()
}
