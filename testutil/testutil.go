package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/polycrc/poly"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint32 returns a pseudo-random uint32.
func (r *RNG) Uint32() uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint32()
}

// Fill fills dst with random bytes.
func (r *RNG) Fill(dst []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, _ = r.rand.Read(dst)
}

// Bytes returns n random bytes.
func (r *RNG) Bytes(n int) []byte {
	b := make([]byte, n)
	r.Fill(b)
	return b
}

// Polynomial returns a random nonzero normal-form polynomial.
func (r *RNG) Polynomial() poly.Polynomial {
	for {
		if p := poly.Polynomial(r.Uint32()); p != 0 {
			return p
		}
	}
}

// FlipBit returns a copy of data with bit i (counted from the first byte's LSB) inverted.
func FlipBit(data []byte, i int) []byte {
	out := make([]byte, len(data))
	copy(out, data)
	out[i/8] ^= 1 << (i % 8)
	return out
}

// Vector is an input with its expected CRC32 under a polynomial.
type Vector struct {
	Name     string
	Poly     poly.Polynomial
	Data     []byte
	Expected uint32
}

// Fox is the 43-byte pangram used as the small benchmark input.
const Fox = "The quick brown fox jumps over the lazy dog"

// Vectors are known checksums for reflect-in/reflect-out CRC32 with an
// all-ones initial value and final XOR.
var Vectors = []Vector{
	{"empty/ieee", poly.IEEE, nil, 0x00000000},
	{"empty/alt", 0x1234567, []byte{}, 0x00000000},
	{"check/ieee", poly.IEEE, []byte("123456789"), 0xCBF43926},
	{"check/castagnoli", poly.Castagnoli, []byte("123456789"), 0xE3069283},
	{"check/koopman", poly.Koopman, []byte("123456789"), 0x2D3DD0AE},
	{"check/alt", 0x1234567, []byte("123456789"), 0x71414982},
	{"fox/ieee", poly.IEEE, []byte(Fox), 0x414FA339},
	{"fox/castagnoli", poly.Castagnoli, []byte(Fox), 0x22620404},
	{"fox/koopman", poly.Koopman, []byte(Fox), 0xE021DB90},
	{"fox/alt", 0x1234567, []byte(Fox), 0x1C8AB2E3},
	{"a/ieee", poly.IEEE, []byte("a"), 0xE8B7BE43},
	{"a/alt", 0x1234567, []byte("a"), 0x0FB32D6E},
}
