package slicing

import (
	"encoding/binary"

	"github.com/hupe1980/polycrc/internal/table"
)

// Kernel folds whole chunks of p into the raw accumulator crc and returns it.
// Bytes past the last full chunk are ignored.
type Kernel func(crc uint32, tab *table.Slicing, p []byte) uint32

// KernelFor returns the kernel for l. Invalid widths get the default kernel.
func KernelFor(l Lanes) Kernel {
	switch l {
	case Lanes4:
		return slicing4
	case Lanes8:
		return slicing8
	case Lanes16:
		return slicing16
	default:
		return KernelFor(defaultLanes)
	}
}

// slicing4 folds 4 bytes per step: the chunk is XORed into the accumulator as
// one little-endian word and each byte is looked up at its distance from the
// chunk end.
func slicing4(crc uint32, tab *table.Slicing, p []byte) uint32 {
	for len(p) >= 4 {
		crc ^= binary.LittleEndian.Uint32(p)
		crc = tab[3][byte(crc)] ^ tab[2][byte(crc>>8)] ^
			tab[1][byte(crc>>16)] ^ tab[0][crc>>24]
		p = p[4:]
	}
	return crc
}

func slicing8(crc uint32, tab *table.Slicing, p []byte) uint32 {
	for len(p) >= 8 {
		crc ^= binary.LittleEndian.Uint32(p)
		crc = tab[7][byte(crc)] ^ tab[6][byte(crc>>8)] ^
			tab[5][byte(crc>>16)] ^ tab[4][crc>>24] ^
			tab[3][p[4]] ^ tab[2][p[5]] ^
			tab[1][p[6]] ^ tab[0][p[7]]
		p = p[8:]
	}
	return crc
}

func slicing16(crc uint32, tab *table.Slicing, p []byte) uint32 {
	for len(p) >= 16 {
		crc ^= binary.LittleEndian.Uint32(p)
		crc = tab[15][byte(crc)] ^ tab[14][byte(crc>>8)] ^
			tab[13][byte(crc>>16)] ^ tab[12][crc>>24] ^
			tab[11][p[4]] ^ tab[10][p[5]] ^
			tab[9][p[6]] ^ tab[8][p[7]] ^
			tab[7][p[8]] ^ tab[6][p[9]] ^
			tab[5][p[10]] ^ tab[4][p[11]] ^
			tab[3][p[12]] ^ tab[2][p[13]] ^
			tab[1][p[14]] ^ tab[0][p[15]]
		p = p[16:]
	}
	return crc
}
