package textsignals

import (
	"hash/fnv"
	"sync"
)

const maxCacheSize = 1000

// cacheKey hashes the first 500 characters of the input; captions that only
// diverge beyond that share an entry, which is acceptable for a memo table
// whose values are deterministic.
func cacheKey(text string) uint64 {
	if len(text) > 500 {
		text = text[:500]
	}
	h := fnv.New64a()
	h.Write([]byte(text))
	return h.Sum64()
}

// memoCache is a fixed-capacity memo table with insert-if-room semantics.
// Once full, new entries are dropped rather than evicted. Lost inserts under
// concurrent writers are fine: every cached value is recomputable.
type memoCache[T any] struct {
	mu       sync.RWMutex
	capacity int
	entries  map[uint64]T
}

func newMemoCache[T any](capacity int) *memoCache[T] {
	return &memoCache[T]{
		capacity: capacity,
		entries:  make(map[uint64]T, capacity/8),
	}
}

func (c *memoCache[T]) get(key uint64) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[key]
	return v, ok
}

func (c *memoCache[T]) put(key uint64, value T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.entries) >= c.capacity {
		return
	}
	c.entries[key] = value
}

func (c *memoCache[T]) size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
