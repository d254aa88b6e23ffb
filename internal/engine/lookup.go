package engine

import (
	"github.com/hupe1980/polycrc/internal/cache"
	"github.com/hupe1980/polycrc/internal/table"
	"github.com/hupe1980/polycrc/poly"
)

// Lookup computes CRC32 with one table lookup per byte.
//
// The IEEE polynomial uses the build-time table. Other polynomials are built
// with table.Build and kept in the engine's cache; with a nil cache the table
// is rebuilt on every call.
type Lookup struct {
	cache *cache.TableCache[*table.Table]
}

// NewLookup creates a Lookup engine that owns c.
func NewLookup(c *cache.TableCache[*table.Table]) *Lookup {
	return &Lookup{cache: c}
}

// Checksum returns the CRC32 of data under the reflected generator g.
func (e *Lookup) Checksum(data []byte, g poly.Reflected) uint32 {
	if len(data) == 0 {
		return 0
	}
	t, _ := e.Table(g)
	return ChecksumTable(t, data)
}

// Table returns the lookup table used for g and whether this call built it.
func (e *Lookup) Table(g poly.Reflected) (*table.Table, bool) {
	if table.IsDefault(g) {
		return &table.IEEE, false
	}
	if e == nil {
		return table.Build(g), true
	}
	return e.cache.GetOrBuild(g, table.Build)
}

// ChecksumTable returns the CRC32 of data with a table obtained from Table.
func ChecksumTable(t *table.Table, data []byte) uint32 {
	if len(data) == 0 {
		return 0
	}
	// The table is built in the reflected domain, so the register already
	// holds the result in output bit order: no final reflection.
	return t.Update(initialCRC, data) ^ finalXOR
}

// Cache returns the engine's table cache (nil if uncached).
func (e *Lookup) Cache() *cache.TableCache[*table.Table] {
	if e == nil {
		return nil
	}
	return e.cache
}
