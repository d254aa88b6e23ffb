package cache

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/hupe1980/polycrc/internal/resource"
	"github.com/hupe1980/polycrc/poly"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableCache_HitMiss(t *testing.T) {
	c := New[int](4, 0, nil)
	g := poly.IEEE.Reflected()

	_, ok := c.Get(g)
	assert.False(t, ok)

	assert.True(t, c.Set(g, 42))
	v, ok := c.Get(g)
	assert.True(t, ok)
	assert.Equal(t, 42, v)

	s := c.Stats()
	assert.Equal(t, int64(1), s.Hits)
	assert.Equal(t, int64(1), s.Misses)
	assert.Equal(t, 1, s.Entries)
}

func TestTableCache_GetOrBuild(t *testing.T) {
	c := New[uint32](0, 0, nil)
	var calls int
	build := func(g poly.Reflected) uint32 {
		calls++
		return uint32(g) ^ 0xFFFFFFFF
	}

	g := poly.Castagnoli.Reflected()
	first, built := c.GetOrBuild(g, build)
	assert.True(t, built)
	second, built := c.GetOrBuild(g, build)
	assert.False(t, built)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls)

	s := c.Stats()
	assert.Equal(t, int64(1), s.Misses)
	assert.Equal(t, int64(1), s.Hits)
	assert.Equal(t, int64(1), s.Builds)
}

func TestTableCache_LRUEviction(t *testing.T) {
	c := New[int](2, 0, nil)
	a, b, d := poly.Reflected(1), poly.Reflected(2), poly.Reflected(3)

	c.Set(a, 1)
	c.Set(b, 2)
	_, _ = c.Get(a) // a is now most recently used
	c.Set(d, 3)     // evicts b

	assert.True(t, c.Contains(a))
	assert.False(t, c.Contains(b))
	assert.True(t, c.Contains(d))
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, int64(1), c.Stats().Evictions)
}

func TestTableCache_UpdateExisting(t *testing.T) {
	c := New[int](2, 0, nil)
	g := poly.Reflected(7)
	c.Set(g, 1)
	c.Set(g, 2)

	v, ok := c.Get(g)
	require.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, 1, c.Len())
}

func TestTableCache_MemoryLimit(t *testing.T) {
	rc := resource.NewController(resource.Config{TableMemoryLimitBytes: 2048})
	c := New[int](0, 1024, rc)

	assert.True(t, c.Set(1, 1))
	assert.True(t, c.Set(2, 2))
	assert.Equal(t, int64(2048), rc.TableMemory())

	// The third table evicts the coldest one to fit.
	assert.True(t, c.Set(3, 3))
	assert.False(t, c.Contains(1))
	assert.Equal(t, int64(2048), rc.TableMemory())

	c.Purge()
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, int64(0), rc.TableMemory())
}

func TestTableCache_EntryLargerThanLimit(t *testing.T) {
	rc := resource.NewController(resource.Config{TableMemoryLimitBytes: 512})
	c := New[int](0, 1024, rc)

	assert.False(t, c.Set(1, 1))
	assert.Equal(t, 0, c.Len())

	// GetOrBuild still returns a value; it just is not cached.
	var calls int
	build := func(poly.Reflected) int { calls++; return 9 }
	for i := 0; i < 2; i++ {
		v, built := c.GetOrBuild(5, build)
		assert.Equal(t, 9, v)
		assert.True(t, built)
	}
	assert.Equal(t, 2, calls)
	assert.Equal(t, int64(2), c.Stats().Builds)
	assert.Zero(t, c.Stats().Hits)
}

func TestTableCache_Independent(t *testing.T) {
	c1 := New[int](0, 0, nil)
	c2 := New[int](0, 0, nil)
	c1.Set(1, 1)

	assert.True(t, c1.Contains(1))
	assert.False(t, c2.Contains(1))
	assert.Equal(t, Stats{}, c2.Stats())
}

func TestTableCache_Nil(t *testing.T) {
	var c *TableCache[int]

	_, ok := c.Get(1)
	assert.False(t, ok)
	assert.False(t, c.Set(1, 1))
	assert.False(t, c.Contains(1))
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, Stats{}, c.Stats())
	c.Purge()

	var calls int
	build := func(poly.Reflected) int { calls++; return 3 }
	for i := 0; i < 2; i++ {
		v, built := c.GetOrBuild(1, build)
		assert.Equal(t, 3, v)
		assert.True(t, built)
	}
	assert.Equal(t, 2, calls)
}

func TestTableCache_ConcurrentMissesBuildOnce(t *testing.T) {
	c := New[int](0, 0, nil)
	var builds, builders atomic.Int32
	build := func(poly.Reflected) int {
		builds.Add(1)
		time.Sleep(5 * time.Millisecond)
		return 1
	}

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, built := c.GetOrBuild(poly.Koopman.Reflected(), build)
			assert.Equal(t, 1, v)
			if built {
				builders.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), builds.Load())
	assert.Equal(t, int32(1), builders.Load(), "only the building caller reports built")
	assert.Equal(t, int64(1), c.Stats().Builds)
}
