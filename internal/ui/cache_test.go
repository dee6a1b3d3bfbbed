package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLRUCacheEvictsLeastRecentlyUsed(t *testing.T) {
	var evicted []int
	c := newLRUCache(2, func(v int) { evicted = append(evicted, v) })

	c.Set("a", 1)
	c.Set("b", 2)
	_, ok := c.Get("a")
	assert.True(t, ok)

	c.Set("c", 3)
	assert.Equal(t, []int{2}, evicted)
	assert.Equal(t, 2, c.Len())

	_, ok = c.Get("b")
	assert.False(t, ok)
}

func TestLRUCacheReplaceEvictsOldValue(t *testing.T) {
	var evicted []int
	c := newLRUCache(2, func(v int) { evicted = append(evicted, v) })

	c.Set("a", 1)
	c.Set("a", 10)

	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 10, v)
	assert.Equal(t, []int{1}, evicted)
	assert.Equal(t, 1, c.Len())
}

func TestLRUCachePurge(t *testing.T) {
	var evicted []int
	c := newLRUCache(4, func(v int) { evicted = append(evicted, v) })
	c.Set("a", 1)
	c.Set("b", 2)

	c.Purge()
	assert.Equal(t, 0, c.Len())
	assert.ElementsMatch(t, []int{1, 2}, evicted)
}
