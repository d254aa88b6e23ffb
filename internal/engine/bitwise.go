package engine

import (
	"github.com/hupe1980/polycrc/internal/bitops"
	"github.com/hupe1980/polycrc/poly"
)

const (
	initialCRC = 0xFFFFFFFF
	finalXOR   = 0xFFFFFFFF
	topBit     = 0x80000000
)

// Bitwise computes CRC32 by polynomial long division, eight shift/XOR rounds
// per input byte. It keeps no state and is safe for concurrent use.
type Bitwise struct{}

// Checksum returns the CRC32 of data under the normal-form generator g.
//
// Each input byte is reflected and loaded into the top of the register, so the
// MSB-first division runs in the reflected domain; the final register is
// reflected back.
func (Bitwise) Checksum(data []byte, g poly.Polynomial) uint32 {
	if len(data) == 0 {
		return 0
	}

	crc := uint32(initialCRC)
	for _, b := range data {
		crc ^= uint32(bitops.ReflectByte(b)) << 24
		for j := 0; j < 8; j++ {
			if crc&topBit != 0 {
				crc = (crc << 1) ^ uint32(g)
			} else {
				crc <<= 1
			}
		}
	}

	return bitops.ReflectWord(crc ^ finalXOR)
}
