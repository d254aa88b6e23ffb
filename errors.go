package polycrc

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownVersion is returned when an engine index is out of range.
	ErrUnknownVersion = errors.New("unknown engine version")

	// ErrChecksumMismatch is returned when engines disagree on a checksum.
	ErrChecksumMismatch = errors.New("checksum mismatch")
)

// VersionError reports an engine version that could not be resolved.
//
// It matches ErrUnknownVersion with errors.Is. The parse error (if any) can
// be accessed via errors.Unwrap.
type VersionError struct {
	Value string
	cause error
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("unknown engine version %q (want 0..%d)", e.Value, numVersions-1)
}

func (e *VersionError) Is(target error) bool { return target == ErrUnknownVersion }

func (e *VersionError) Unwrap() error { return e.cause }

// MismatchError reports the per-engine results of a failed verification.
//
// It matches ErrChecksumMismatch with errors.Is.
type MismatchError struct {
	Results map[Version]uint32
}

func (e *MismatchError) Error() string {
	var sb strings.Builder
	sb.WriteString("checksum mismatch:")
	for _, v := range Versions() {
		if r, ok := e.Results[v]; ok {
			fmt.Fprintf(&sb, " %s=0x%x", v, r)
		}
	}
	return sb.String()
}

func (e *MismatchError) Is(target error) bool { return target == ErrChecksumMismatch }
