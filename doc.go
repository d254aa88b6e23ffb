// Package polycrc computes CRC32 checksums with a selectable engine and an
// arbitrary 32-bit generator polynomial.
//
// The checksum model is reflect-in/reflect-out with an all-ones initial
// value and final XOR, the same model as zlib and Ethernet. With the default
// polynomial 0x04C11DB7 the result equals hash/crc32's IEEE checksum. An
// empty input always yields 0.
//
// # Engines
//
// Three engines compute the same value:
//
//	polycrc.V0 // table lookup, one table access per byte
//	polycrc.V1 // bit-by-bit polynomial division, no tables
//	polycrc.V2 // slicing-by-N lookup sized to the CPU's vector width
//
// # Quick Start
//
//	sum, _ := polycrc.Checksum(polycrc.V0, []byte("123456789"), poly.Default)
//	fmt.Printf("0x%x\n", sum) // 0xcbf43926
//
// A Checksummer owns the engines and their table caches:
//
//	cs := polycrc.New(
//	    polycrc.WithCacheCapacity(64),
//	    polycrc.WithLogger(polycrc.NewTextLogger(slog.LevelDebug)),
//	)
//	sum, err := cs.Checksum(ctx, polycrc.V2, data, 0x1234567)
//
// Polynomials are always given in normal form at this level; each engine
// receives the bit order it works in.
//
// # Lane width
//
// V2 folds 16 bytes per step on 64-bit platforms and 8 on 32-bit ones, with
// one independent table lookup per byte. Set POLYCRC_LANES to 4, 8 or 16, or
// use WithLanes, to choose another width.
package polycrc
