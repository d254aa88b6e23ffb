package slicing

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/hupe1980/polycrc/poly"
)

// Compare the widths on the same machine before changing the default:
//   go test ./internal/slicing -run '^$' -bench . -benchmem

func BenchmarkKernels(b *testing.B) {
	tab := slicingFor(poly.IEEE)
	data := make([]byte, 64*1024)
	rand.New(rand.NewSource(1)).Read(data)

	for _, lanes := range allLanes {
		kernel := KernelFor(lanes)
		b.Run(fmt.Sprintf("lanes=%s", lanes), func(b *testing.B) {
			b.SetBytes(int64(len(data)))
			for b.Loop() {
				_ = kernel(0xFFFFFFFF, tab, data)
			}
		})
	}

	b.Run("scalar", func(b *testing.B) {
		b.SetBytes(int64(len(data)))
		for b.Loop() {
			_ = tab[0].Update(0xFFFFFFFF, data)
		}
	})
}
