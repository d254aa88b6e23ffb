package engine

import (
	"github.com/hupe1980/polycrc/internal/cache"
	"github.com/hupe1980/polycrc/internal/slicing"
	"github.com/hupe1980/polycrc/internal/table"
	"github.com/hupe1980/polycrc/poly"
)

// Vectorized computes CRC32 Lanes bytes at a time. Whole chunks go through a
// slicing kernel that makes one independent table lookup per byte; the tail
// that does not fill a chunk goes through the scalar byte loop, so results
// match Lookup for every length.
//
// Slicing tables are built lazily per polynomial and kept in the engine's own
// cache, separate from any Lookup cache.
type Vectorized struct {
	cache  *cache.TableCache[*table.Slicing]
	lanes  slicing.Lanes
	kernel slicing.Kernel
}

// VectorizedOption configures a Vectorized engine.
type VectorizedOption func(*Vectorized)

// WithLanes pins the lane width instead of the platform default.
// Invalid widths are ignored.
func WithLanes(l slicing.Lanes) VectorizedOption {
	return func(e *Vectorized) {
		if l.Valid() {
			e.lanes = l
		}
	}
}

// NewVectorized creates a Vectorized engine that owns c.
func NewVectorized(c *cache.TableCache[*table.Slicing], optFns ...VectorizedOption) *Vectorized {
	e := &Vectorized{
		cache: c,
		lanes: slicing.DefaultLanes(),
	}
	for _, fn := range optFns {
		fn(e)
	}
	e.kernel = slicing.KernelFor(e.lanes)
	return e
}

// Lanes returns the number of bytes folded per step.
func (e *Vectorized) Lanes() slicing.Lanes {
	if e.kernel == nil {
		return slicing.DefaultLanes()
	}
	return e.lanes
}

// Checksum returns the CRC32 of data under the reflected generator g.
func (e *Vectorized) Checksum(data []byte, g poly.Reflected) uint32 {
	if len(data) == 0 {
		return 0
	}
	tab, _ := e.Tables(g)
	return e.ChecksumTables(tab, data)
}

// ChecksumTables returns the CRC32 of data with tables obtained from Tables.
func (e *Vectorized) ChecksumTables(tab *table.Slicing, data []byte) uint32 {
	if len(data) == 0 {
		return 0
	}

	lanes, kernel := e.lanes, e.kernel
	if kernel == nil {
		// zero value: use the default width
		lanes = slicing.DefaultLanes()
		kernel = slicing.KernelFor(lanes)
	}
	n := len(data) / int(lanes) * int(lanes)

	crc := kernel(initialCRC, tab, data[:n])
	crc = tab[0].Update(crc, data[n:])

	return crc ^ finalXOR
}

// Tables returns the slicing tables used for g and whether this call built them.
func (e *Vectorized) Tables(g poly.Reflected) (*table.Slicing, bool) {
	return e.cache.GetOrBuild(g, buildSlicing)
}

// Cache returns the engine's table cache (nil if uncached).
func (e *Vectorized) Cache() *cache.TableCache[*table.Slicing] {
	return e.cache
}

func buildSlicing(g poly.Reflected) *table.Slicing {
	return table.BuildSlicing(table.For(g))
}
