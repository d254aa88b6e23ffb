package table

import (
	"hash/crc32"
	"testing"

	"github.com/hupe1980/polycrc/poly"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_DefaultTable(t *testing.T) {
	got := Build(poly.IEEE.Reflected())
	assert.Equal(t, IEEE, *got, "generated table is stale; run go generate")
	assert.Equal(t, *crc32.IEEETable, crc32.Table(*got))
}

func TestBuild_MatchesStdlib(t *testing.T) {
	for _, p := range []poly.Polynomial{poly.IEEE, poly.Castagnoli, poly.Koopman, 0x1234567} {
		t.Run(p.String(), func(t *testing.T) {
			got := Build(p.Reflected())
			want := crc32.MakeTable(uint32(p.Reflected()))
			assert.Equal(t, *want, crc32.Table(*got))
		})
	}
}

func TestBuild_Deterministic(t *testing.T) {
	g := poly.Polynomial(0x1234567).Reflected()
	assert.Equal(t, *Build(g), *Build(g))
}

func TestBuild_DistinctPolynomials(t *testing.T) {
	polys := []poly.Polynomial{poly.IEEE, poly.Castagnoli, poly.Koopman, 0x1234567, 0x1, 0x80000000}
	for i := range polys {
		for j := i + 1; j < len(polys); j++ {
			a := Build(polys[i].Reflected())
			b := Build(polys[j].Reflected())
			assert.NotEqual(t, *a, *b, "%s vs %s", polys[i], polys[j])
		}
	}
}

func TestBuild_Entries(t *testing.T) {
	g := poly.Polynomial(0x1234567).Reflected()
	tab := Build(g)
	assert.Equal(t, uint32(0), tab[0])
	// 0x80 reaches the low bit only in the final round.
	assert.Equal(t, uint32(g), tab[0x80])
}

func TestBuild_ZeroPolynomial(t *testing.T) {
	tab := Build(0)
	for k, v := range tab {
		assert.Equal(t, uint32(k)>>8, v)
	}
}

func TestBuildSlicing(t *testing.T) {
	base := Build(poly.Castagnoli.Reflected())
	s := BuildSlicing(base)
	require.Equal(t, *base, s[0])

	for j := 1; j < Levels; j++ {
		zeros := make([]byte, j)
		for k := 0; k < Size; k++ {
			want := base.Update(base[k], zeros)
			if !assert.Equal(t, want, s[j][k], "level %d entry %d", j, k) {
				return
			}
		}
	}
}

func TestFor(t *testing.T) {
	assert.Same(t, &IEEE, For(poly.IEEE.Reflected()))
	assert.True(t, IsDefault(poly.IEEE.Reflected()))
	assert.False(t, IsDefault(poly.Reflected(poly.IEEE)))

	custom := For(poly.Koopman.Reflected())
	assert.Equal(t, *Build(poly.Koopman.Reflected()), *custom)
}

func TestUpdate(t *testing.T) {
	data := []byte("123456789")
	crc := IEEE.Update(0xFFFFFFFF, data) ^ 0xFFFFFFFF
	assert.Equal(t, uint32(0xCBF43926), crc)
	assert.Equal(t, uint32(0x1234), IEEE.Update(0x1234, nil))
}

func BenchmarkBuild(b *testing.B) {
	g := poly.Polynomial(0x1234567).Reflected()
	b.ReportAllocs()
	for b.Loop() {
		_ = Build(g)
	}
}

func BenchmarkBuildSlicing(b *testing.B) {
	base := Build(poly.Castagnoli.Reflected())
	b.ReportAllocs()
	for b.Loop() {
		_ = BuildSlicing(base)
	}
}
