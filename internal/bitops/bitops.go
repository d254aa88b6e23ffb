// Package bitops provides the bit-reflection primitives shared by the checksum engines.
//
// CRC32 as specified by IEEE 802.3 is computed in the reflected domain: input bytes
// are consumed least-significant bit first and the final register is bit-reversed.
// Every conversion between the conventional (MSB-first) polynomial notation and the
// reflected one goes through this package.
package bitops

import "math/bits"

// ReflectByte reverses the bit order of b.
func ReflectByte(b byte) byte {
	return bits.Reverse8(b)
}

// ReflectWord reverses the bit order of w.
func ReflectWord(w uint32) uint32 {
	return bits.Reverse32(w)
}
