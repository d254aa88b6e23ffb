// Package slicing provides the chunk kernels of the vectorized CRC32 engine.
//
// A kernel folds Lanes input bytes per step. The first four bytes of a chunk
// are XORed into the accumulator as one little-endian word; then every byte of
// the chunk is looked up in the table for its distance from the chunk end and
// the results are XOR-combined. The lookups of one step do not depend on each
// other, so the CPU issues them in parallel. The kernels are portable Go; no
// vector registers are used.
//
// # Lane width
//
//	Lanes  Tables  Default on
//	4       4 KiB  -
//	8       8 KiB  32-bit platforms
//	16     16 KiB  64-bit platforms
//
// Set POLYCRC_LANES to 4, 8 or 16 to override the default for the process.
//
// A kernel consumes whole chunks and ignores any tail; callers finish the tail
// with the scalar byte-at-a-time loop. For every chunk the accumulator evolves
// exactly as it would byte by byte.
package slicing
