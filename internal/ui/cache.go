package ui

import "container/list"

// lruCache keeps at most maxSize values and hands evicted values to
// onEvict, which destroys SDL textures.
type lruCache[V any] struct {
	maxSize int
	order   *list.List
	items   map[string]*list.Element
	onEvict func(V)
}

type lruEntry[V any] struct {
	key   string
	value V
}

func newLRUCache[V any](maxSize int, onEvict func(V)) *lruCache[V] {
	return &lruCache[V]{
		maxSize: maxSize,
		order:   list.New(),
		items:   make(map[string]*list.Element),
		onEvict: onEvict,
	}
}

func (c *lruCache[V]) Get(key string) (V, bool) {
	if el, ok := c.items[key]; ok {
		c.order.MoveToBack(el)
		return el.Value.(*lruEntry[V]).value, true
	}
	var zero V
	return zero, false
}

func (c *lruCache[V]) Set(key string, value V) {
	if el, ok := c.items[key]; ok {
		entry := el.Value.(*lruEntry[V])
		if c.onEvict != nil {
			c.onEvict(entry.value)
		}
		entry.value = value
		c.order.MoveToBack(el)
		return
	}

	if c.order.Len() >= c.maxSize {
		c.evictOldest()
	}
	c.items[key] = c.order.PushBack(&lruEntry[V]{key: key, value: value})
}

func (c *lruCache[V]) Len() int {
	return c.order.Len()
}

func (c *lruCache[V]) evictOldest() {
	el := c.order.Front()
	if el == nil {
		return
	}
	entry := c.order.Remove(el).(*lruEntry[V])
	delete(c.items, entry.key)
	if c.onEvict != nil {
		c.onEvict(entry.value)
	}
}

// Purge evicts everything.
func (c *lruCache[V]) Purge() {
	for c.order.Len() > 0 {
		c.evictOldest()
	}
}
