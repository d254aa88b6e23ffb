package cache

import (
	"container/list"
	"strconv"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	"github.com/hupe1980/polycrc/internal/resource"
	"github.com/hupe1980/polycrc/poly"
)

// Stats is a snapshot of cache counters.
type Stats struct {
	Hits      int64
	Misses    int64
	Builds    int64
	Evictions int64
	Entries   int
}

// TableCache caches immutable tables of type T keyed by reflected generator.
//
// A nil *TableCache is valid and caches nothing: GetOrBuild builds on every call.
type TableCache[T any] struct {
	mu         sync.Mutex
	capacity   int
	entryBytes int64
	items      map[poly.Reflected]*list.Element
	evictList  *list.List
	rc         *resource.Controller
	group      singleflight.Group

	hits      atomic.Int64
	misses    atomic.Int64
	builds    atomic.Int64
	evictions atomic.Int64
}

type entry[T any] struct {
	key   poly.Reflected
	value T
}

// New creates a cache holding at most capacity tables (unbounded if capacity <= 0).
// entryBytes is the footprint of one table, reserved with rc when rc is non-nil.
func New[T any](capacity int, entryBytes int64, rc *resource.Controller) *TableCache[T] {
	return &TableCache[T]{
		capacity:   capacity,
		entryBytes: entryBytes,
		items:      make(map[poly.Reflected]*list.Element),
		evictList:  list.New(),
		rc:         rc,
	}
}

// Get returns the cached table for g.
func (c *TableCache[T]) Get(g poly.Reflected) (T, bool) {
	if c == nil {
		var zero T
		return zero, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if ent, ok := c.items[g]; ok {
		c.hits.Add(1)
		c.evictList.MoveToFront(ent)
		return ent.Value.(*entry[T]).value, true
	}
	c.misses.Add(1)
	var zero T
	return zero, false
}

// Contains reports whether g is cached without touching counters or LRU order.
func (c *TableCache[T]) Contains(g poly.Reflected) bool {
	if c == nil {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.items[g]
	return ok
}

// Set caches v for g. It returns false if the memory limit refused the entry.
func (c *TableCache[T]) Set(g poly.Reflected, v T) bool {
	if c == nil {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if ent, ok := c.items[g]; ok {
		c.evictList.MoveToFront(ent)
		ent.Value.(*entry[T]).value = v
		return true
	}

	if c.capacity > 0 {
		for c.evictList.Len() >= c.capacity {
			c.removeElement(c.evictList.Back())
		}
	}

	// Make room under the memory limit by evicting cold tables first.
	for c.rc.ReserveTable(c.entryBytes) != nil {
		back := c.evictList.Back()
		if back == nil {
			return false
		}
		c.removeElement(back)
	}

	element := c.evictList.PushFront(&entry[T]{key: g, value: v})
	c.items[g] = element
	return true
}

// GetOrBuild returns the cached table for g, building and caching it on a miss.
// built reports whether this call ran build; callers that shared a concurrent
// build get false. Concurrent misses for the same g share one build.
func (c *TableCache[T]) GetOrBuild(g poly.Reflected, build func(poly.Reflected) T) (v T, built bool) {
	if c == nil {
		return build(g), true
	}
	if v, ok := c.Get(g); ok {
		return v, false
	}

	res, _, _ := c.group.Do(strconv.FormatUint(uint64(g), 16), func() (any, error) {
		// A build that finished between Get and Do has already been cached.
		if v, ok := c.peek(g); ok {
			return v, nil
		}
		v := build(g)
		c.builds.Add(1)
		built = true
		c.Set(g, v)
		return v, nil
	})
	return res.(T), built
}

// Len returns the number of cached tables.
func (c *TableCache[T]) Len() int {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.evictList.Len()
}

// Purge drops every entry and releases its memory.
func (c *TableCache[T]) Purge() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for c.evictList.Len() > 0 {
		c.removeElement(c.evictList.Back())
	}
}

// Stats returns a snapshot of the counters.
func (c *TableCache[T]) Stats() Stats {
	if c == nil {
		return Stats{}
	}
	return Stats{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Builds:    c.builds.Load(),
		Evictions: c.evictions.Load(),
		Entries:   c.Len(),
	}
}

func (c *TableCache[T]) peek(g poly.Reflected) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if ent, ok := c.items[g]; ok {
		return ent.Value.(*entry[T]).value, true
	}
	var zero T
	return zero, false
}

func (c *TableCache[T]) removeElement(e *list.Element) {
	c.evictList.Remove(e)
	kv := e.Value.(*entry[T])
	delete(c.items, kv.key)
	c.evictions.Add(1)
	c.rc.ReleaseTable(c.entryBytes)
}
