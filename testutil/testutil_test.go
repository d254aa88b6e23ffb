package testutil

import (
	"hash/crc32"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRNG_Reproducible(t *testing.T) {
	a := NewRNG(4711).Bytes(64)
	b := NewRNG(4711).Bytes(64)
	assert.Equal(t, a, b)

	rng := NewRNG(4711)
	first := rng.Bytes(64)
	rng.Reset()
	assert.Equal(t, first, rng.Bytes(64))
	assert.Equal(t, int64(4711), rng.Seed())
}

func TestRNG_Polynomial(t *testing.T) {
	rng := NewRNG(1)
	for i := 0; i < 100; i++ {
		assert.NotZero(t, rng.Polynomial())
	}
}

func TestFlipBit(t *testing.T) {
	data := []byte{0x00, 0xFF}
	assert.Equal(t, []byte{0x01, 0xFF}, FlipBit(data, 0))
	assert.Equal(t, []byte{0x00, 0x7F}, FlipBit(data, 15))
	assert.Equal(t, []byte{0x00, 0xFF}, data, "input must not change")
}

// Vectors must agree with the standard library for every polynomial it can express.
func TestVectors_MatchStdlib(t *testing.T) {
	for _, v := range Vectors {
		t.Run(v.Name, func(t *testing.T) {
			if len(v.Data) == 0 {
				assert.Zero(t, v.Expected)
				return
			}
			tab := crc32.MakeTable(uint32(v.Poly.Reflected()))
			assert.Equal(t, v.Expected, crc32.Checksum(v.Data, tab))
		})
	}
}
