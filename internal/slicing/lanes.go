package slicing

import (
	"math/bits"
	"os"
	"strconv"
	"strings"
)

// Lanes is the number of input bytes a kernel folds per step.
type Lanes int

const (
	Lanes4  Lanes = 4
	Lanes8  Lanes = 8
	Lanes16 Lanes = 16
)

// EnvLanes names the environment variable that overrides the default width.
const EnvLanes = "POLYCRC_LANES"

// Set once at init.
var defaultLanes, overridden = selectLanes(os.Getenv(EnvLanes), bits.UintSize)

// String returns the lane count as text.
func (l Lanes) String() string {
	return strconv.Itoa(int(l))
}

// Valid reports whether a kernel exists for l.
func (l Lanes) Valid() bool {
	switch l {
	case Lanes4, Lanes8, Lanes16:
		return true
	default:
		return false
	}
}

// ParseLanes parses "4", "8" or "16".
func ParseLanes(s string) (Lanes, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || !Lanes(n).Valid() {
		return 0, false
	}
	return Lanes(n), true
}

// DefaultLanes returns the width used when none is configured.
func DefaultLanes() Lanes {
	return defaultLanes
}

// IsOverridden reports whether POLYCRC_LANES selected the default width.
func IsOverridden() bool {
	return overridden
}

// selectLanes picks the width for a platform with the given word size and
// reports whether override was used. An invalid override is ignored.
func selectLanes(override string, wordSize int) (Lanes, bool) {
	if l, ok := ParseLanes(override); ok {
		return l, true
	}
	if wordSize == 64 {
		return Lanes16, false
	}
	// 32-bit cores tend to have small L1 data caches.
	return Lanes8, false
}
