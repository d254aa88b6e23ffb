package polycrc

import (
	"time"

	"github.com/hupe1980/polycrc/internal/engine"
	"github.com/hupe1980/polycrc/poly"
)

// Engine computes CRC32 checksums under a normal-form generator polynomial.
//
// Implementations are safe for concurrent use.
type Engine interface {
	// Version returns the engine's index.
	Version() Version

	// Checksum returns the CRC32 of data under g. Empty input returns 0.
	Checksum(data []byte, g poly.Polynomial) uint32
}

// tableEngine is implemented by engines that keep per-polynomial tables.
type tableEngine interface {
	// checksumTables computes like Checksum and also reports whether the
	// tables for g had to be built, and how long that took.
	checksumTables(data []byte, g poly.Polynomial) (sum uint32, built bool, took time.Duration)
}

// lookupEngine adapts engine.Lookup, which works on the reflected form.
type lookupEngine struct {
	e *engine.Lookup
}

func (lookupEngine) Version() Version { return V0 }

func (a lookupEngine) Checksum(data []byte, g poly.Polynomial) uint32 {
	return a.e.Checksum(data, g.Reflected())
}

func (a lookupEngine) checksumTables(data []byte, g poly.Polynomial) (uint32, bool, time.Duration) {
	start := time.Now()
	t, built := a.e.Table(g.Reflected())
	took := time.Since(start)
	return engine.ChecksumTable(t, data), built, took
}

// bitwiseEngine adapts engine.Bitwise, which works on the normal form.
type bitwiseEngine struct {
	e engine.Bitwise
}

func (bitwiseEngine) Version() Version { return V1 }

func (a bitwiseEngine) Checksum(data []byte, g poly.Polynomial) uint32 {
	return a.e.Checksum(data, g)
}

// vectorizedEngine adapts engine.Vectorized, which works on the reflected form.
type vectorizedEngine struct {
	e *engine.Vectorized
}

func (vectorizedEngine) Version() Version { return V2 }

func (a vectorizedEngine) Checksum(data []byte, g poly.Polynomial) uint32 {
	return a.e.Checksum(data, g.Reflected())
}

func (a vectorizedEngine) checksumTables(data []byte, g poly.Polynomial) (uint32, bool, time.Duration) {
	start := time.Now()
	tab, built := a.e.Tables(g.Reflected())
	took := time.Since(start)
	return a.e.ChecksumTables(tab, data), built, took
}

// Lanes returns the number of bytes folded per step.
func (a vectorizedEngine) Lanes() int {
	return int(a.e.Lanes())
}
