package poly

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReflectedRoundTrip(t *testing.T) {
	tests := []struct {
		name      string
		normal    Polynomial
		reflected Reflected
	}{
		{"IEEE", IEEE, 0xEDB88320},
		{"Castagnoli", Castagnoli, 0x82F63B78},
		{"Koopman", Koopman, 0xEB31D82E},
		{"Alternate", 0x1234567, 0xE6A2C480},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.reflected, tc.normal.Reflected())
			assert.Equal(t, tc.normal, tc.reflected.Normal())
		})
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "0x4c11db7", IEEE.String())
	assert.Equal(t, "0xedb88320", IEEE.Reflected().String())
}

func TestParse(t *testing.T) {
	tests := []struct {
		in       string
		expected Polynomial
	}{
		{"0x04C11DB7", IEEE},
		{"0x4c11db7", IEEE},
		{"79764919", IEEE},
		{"0x1234567", 0x1234567},
		{" 0xFFFFFFFF ", 0xFFFFFFFF},
		{"0b101", 5},
		{"010", 8},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			p, err := Parse(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, p)
		})
	}
}

func TestParseInvalid(t *testing.T) {
	for _, in := range []string{"", "0", "0x0", "-1", "0x100000000", "abc", "12z"} {
		t.Run(in, func(t *testing.T) {
			_, err := Parse(in)
			assert.ErrorIs(t, err, ErrInvalidPolynomial)
		})
	}
}

func TestByName(t *testing.T) {
	p, ok := ByName("CRC32C")
	assert.True(t, ok)
	assert.Equal(t, Castagnoli, p)

	p, ok = ByName("ieee")
	assert.True(t, ok)
	assert.Equal(t, IEEE, p)

	_, ok = ByName("adler")
	assert.False(t, ok)
}
