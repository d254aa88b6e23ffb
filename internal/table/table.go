package table

import "github.com/hupe1980/polycrc/poly"

// Size is the number of entries in a Table.
const Size = 256

// Levels is the number of tables in a Slicing.
const Levels = 16

// Table is a 256-entry CRC32 lookup table in the reflected domain.
// Tables must not be modified after construction.
type Table [Size]uint32

// Slicing holds Levels tables for multi-byte folding. Level 0 is the plain Table.
type Slicing [Levels]Table

// Bytes is the memory footprint of a Table.
const Bytes = Size * 4

// SlicingBytes is the memory footprint of a Slicing.
const SlicingBytes = Levels * Bytes

// Build returns the lookup table for the reflected generator g.
func Build(g poly.Reflected) *Table {
	t := new(Table)
	for k := 0; k < Size; k++ {
		reg := uint32(k)
		for j := 0; j < 8; j++ {
			if reg&1 != 0 {
				reg = (reg >> 1) ^ uint32(g)
			} else {
				reg >>= 1
			}
		}
		t[k] = reg
	}
	return t
}

// BuildSlicing expands t into a Slicing.
func BuildSlicing(t *Table) *Slicing {
	s := new(Slicing)
	s[0] = *t
	for k := 0; k < Size; k++ {
		reg := t[k]
		for j := 1; j < Levels; j++ {
			reg = t[reg&0xFF] ^ (reg >> 8)
			s[j][k] = reg
		}
	}
	return s
}

// For returns the default IEEE table when g is the reflected IEEE polynomial and
// builds a fresh table otherwise.
func For(g poly.Reflected) *Table {
	if IsDefault(g) {
		return &IEEE
	}
	return Build(g)
}

// IsDefault reports whether g has a build-time table.
func IsDefault(g poly.Reflected) bool {
	return g == poly.IEEE.Reflected()
}

// Update folds p into the accumulator crc one byte at a time.
// crc is the raw register; callers apply the initial and final XOR.
func (t *Table) Update(crc uint32, p []byte) uint32 {
	for _, b := range p {
		crc = t[byte(crc)^b] ^ (crc >> 8)
	}
	return crc
}
