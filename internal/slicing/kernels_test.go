package slicing

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/hupe1980/polycrc/internal/table"
	"github.com/hupe1980/polycrc/poly"
	"github.com/stretchr/testify/assert"
)

var allLanes = []Lanes{Lanes4, Lanes8, Lanes16}

func slicingFor(p poly.Polynomial) *table.Slicing {
	return table.BuildSlicing(table.Build(p.Reflected()))
}

func TestKernels_MatchScalar(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	polys := []poly.Polynomial{poly.IEEE, poly.Castagnoli, poly.Koopman, 0x1234567}

	for _, p := range polys {
		tab := slicingFor(p)
		for _, lanes := range allLanes {
			kernel := KernelFor(lanes)
			for _, chunks := range []int{0, 1, 2, 3, 17, 64} {
				t.Run(fmt.Sprintf("%s/lanes=%s/chunks=%d", p, lanes, chunks), func(t *testing.T) {
					data := make([]byte, chunks*int(lanes))
					_, _ = rng.Read(data)
					seed := rng.Uint32()

					want := tab[0].Update(seed, data)
					assert.Equal(t, want, kernel(seed, tab, data))
				})
			}
		}
	}
}

func TestKernels_IgnoreTail(t *testing.T) {
	tab := slicingFor(poly.IEEE)
	data := []byte("0123456789abcdefXYZ")

	for _, lanes := range allLanes {
		n := len(data) / int(lanes) * int(lanes)
		full := KernelFor(lanes)(0xFFFFFFFF, tab, data)
		trimmed := KernelFor(lanes)(0xFFFFFFFF, tab, data[:n])
		assert.Equal(t, trimmed, full, "lanes=%s", lanes)
	}
}

func TestKernels_KnownVector(t *testing.T) {
	tab := slicingFor(poly.IEEE)
	data := []byte("123456789abcdefg") // 16 bytes, a whole chunk for every width

	for _, lanes := range allLanes {
		got := KernelFor(lanes)(0xFFFFFFFF, tab, data) ^ 0xFFFFFFFF
		want := tab[0].Update(0xFFFFFFFF, data) ^ 0xFFFFFFFF
		assert.Equal(t, want, got, "lanes=%s", lanes)
	}
}

func TestKernelFor_InvalidUsesDefault(t *testing.T) {
	tab := slicingFor(poly.Castagnoli)
	data := make([]byte, 4096)
	rand.New(rand.NewSource(7)).Read(data)

	want := KernelFor(DefaultLanes())(0xFFFFFFFF, tab, data)
	assert.Equal(t, want, KernelFor(3)(0xFFFFFFFF, tab, data))
}

func TestLanes(t *testing.T) {
	assert.True(t, DefaultLanes().Valid())
	assert.False(t, Lanes(3).Valid())

	for _, s := range []string{"4", "8", "16", " 8 "} {
		l, ok := ParseLanes(s)
		assert.True(t, ok, s)
		assert.True(t, l.Valid())
	}
	for _, s := range []string{"", "2", "32", "x"} {
		_, ok := ParseLanes(s)
		assert.False(t, ok, s)
	}
}

func TestSelectLanes(t *testing.T) {
	tests := []struct {
		name       string
		override   string
		wordSize   int
		want       Lanes
		overridden bool
	}{
		{"64-bit default", "", 64, Lanes16, false},
		{"32-bit default", "", 32, Lanes8, false},
		{"override", "4", 64, Lanes4, true},
		{"override on 32-bit", "16", 32, Lanes16, true},
		{"invalid override ignored", "12", 64, Lanes16, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, overridden := selectLanes(tt.override, tt.wordSize)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.overridden, overridden)
		})
	}
}
