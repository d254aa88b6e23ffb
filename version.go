package polycrc

import (
	"fmt"
	"strconv"
	"strings"
)

// Version selects a checksum engine.
type Version uint8

const (
	// V0 is the table lookup engine.
	V0 Version = iota
	// V1 is the bitwise polynomial division engine.
	V1
	// V2 is the vectorized slicing engine.
	V2

	numVersions
)

// String returns "v0", "v1" or "v2".
func (v Version) String() string {
	return "v" + strconv.Itoa(int(v))
}

// Name returns the engine's descriptive name.
func (v Version) Name() string {
	switch v {
	case V0:
		return "lookup"
	case V1:
		return "bitwise"
	case V2:
		return "vectorized"
	default:
		return "unknown"
	}
}

// Valid reports whether v names an engine.
func (v Version) Valid() bool {
	return v < numVersions
}

// Versions returns all engine versions in index order.
func Versions() []Version {
	return []Version{V0, V1, V2}
}

// ParseVersion accepts an index ("1"), a tag ("v1") or an engine name ("bitwise").
func ParseVersion(s string) (Version, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, v := range Versions() {
		if s == v.Name() || s == v.String() {
			return v, nil
		}
	}

	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, &VersionError{Value: s, cause: err}
	}
	v := Version(n)
	if !v.Valid() {
		return 0, &VersionError{Value: s}
	}
	return v, nil
}

func checkVersion(v Version) error {
	if !v.Valid() {
		return &VersionError{Value: fmt.Sprint(int(v))}
	}
	return nil
}
