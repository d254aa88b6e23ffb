// Package engine implements the three CRC32 checksum engines.
//
//   - Bitwise (V1): explicit MSB-first polynomial long division, no tables.
//   - Lookup (V0): one table lookup per byte.
//   - Vectorized (V2): slicing-by-N folding of Lanes bytes per step.
//
// All engines implement reflect-in, reflect-out CRC32 with an all-ones initial
// register and final XOR, and agree bit-for-bit on every input:
//
//	Bitwise{}.Checksum(b, g) == lookup.Checksum(b, g.Reflected()) == vectorized.Checksum(b, g.Reflected())
//
// The empty buffer checksums to 0 under every engine and polynomial.
//
// Bitwise takes the generator in normal form because it divides MSB first;
// the table engines take it in reflected form because their tables are built
// LSB first. The distinct types make mixing them up a compile error.
package engine
