// Package table builds the 256-entry lookup tables used by the table-driven
// CRC32 engines.
//
// # Tables
//
// Entry k of a Table is the remainder obtained by feeding byte value k through
// eight rounds of reflected-domain polynomial division. A table depends only on
// the generator polynomial, so building is deterministic and idempotent.
//
// Slicing extends a Table to 16 levels. Level j entry k is the contribution of
// byte k when it is followed by j further bytes, which lets word-parallel
// kernels fold several input bytes with independent lookups.
//
// # Default table
//
// IEEE is generated at build time (see cmd/gentable) for the reflected IEEE 802.3
// polynomial so the common path never builds a table:
//
//	go generate ./internal/table
package table

//go:generate go run ./cmd/gentable -poly 0x04C11DB7 -name IEEE -o ieee_table.go
