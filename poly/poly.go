// Package poly defines typed CRC32 generator polynomials.
//
// A generator can be written in two bit orders:
//
//   - Polynomial is the conventional MSB-first notation (IEEE 802.3 is 0x04C11DB7).
//   - Reflected is the bit-reversed notation used by table-driven, LSB-first
//     algorithms (IEEE 802.3 is 0xEDB88320).
//
// Engines take whichever type matches their arithmetic, so passing the wrong
// bit order is a compile error instead of a silently wrong checksum.
package poly

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/hupe1980/polycrc/internal/bitops"
)

// ErrInvalidPolynomial is returned by Parse for text that is not a nonzero 32-bit value.
var ErrInvalidPolynomial = errors.New("invalid generator polynomial")

// Polynomial is a CRC32 generator polynomial in normal (MSB-first) form.
// The implicit x^32 term is omitted.
type Polynomial uint32

// Reflected is a CRC32 generator polynomial in reflected (LSB-first) form.
type Reflected uint32

// Well-known generator polynomials in normal form.
const (
	// IEEE is the IEEE 802.3 polynomial, used by Ethernet, gzip, zip and PNG.
	IEEE Polynomial = 0x04C11DB7
	// Castagnoli is the CRC-32C polynomial, used by iSCSI, ext4 and Btrfs.
	Castagnoli Polynomial = 0x1EDC6F41
	// Koopman is Koopman's polynomial.
	Koopman Polynomial = 0x741B8CD7
)

// Default is the polynomial used when none is specified.
const Default = IEEE

// Reflected returns p in reflected form.
func (p Polynomial) Reflected() Reflected {
	return Reflected(bitops.ReflectWord(uint32(p)))
}

// String formats p as a hexadecimal literal.
func (p Polynomial) String() string {
	return fmt.Sprintf("0x%x", uint32(p))
}

// Normal returns r in normal form.
func (r Reflected) Normal() Polynomial {
	return Polynomial(bitops.ReflectWord(uint32(r)))
}

// String formats r as a hexadecimal literal.
func (r Reflected) String() string {
	return fmt.Sprintf("0x%x", uint32(r))
}

// Parse parses a normal-form polynomial.
//
// The base is implied by the prefix ("0x" hexadecimal, "0o" or a leading "0" octal,
// "0b" binary, decimal otherwise). The value must be nonzero and fit in 32 bits.
func Parse(s string) (Polynomial, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPolynomial, s)
	}
	if v == 0 {
		return 0, fmt.Errorf("%w: %q: polynomial cannot be 0", ErrInvalidPolynomial, s)
	}
	return Polynomial(v), nil
}

// ByName returns a well-known polynomial by its case-insensitive name.
func ByName(name string) (Polynomial, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "ieee", "crc32", "crc-32":
		return IEEE, true
	case "castagnoli", "crc32c", "crc-32c":
		return Castagnoli, true
	case "koopman":
		return Koopman, true
	default:
		return 0, false
	}
}
