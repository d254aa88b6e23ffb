package mmap

import "errors"

// AccessPattern is a hint to the kernel about how the mapping will be read.
type AccessPattern int

const (
	// AccessDefault gives no advice.
	AccessDefault AccessPattern = iota
	// AccessSequential expects one front-to-back pass, which is how checksums read.
	AccessSequential
	// AccessWillNeed asks for read-ahead of the whole mapping.
	AccessWillNeed
)

var (
	// ErrClosed is returned when attempting to access a closed mapping.
	ErrClosed = errors.New("mmap: mapping is closed")
	// ErrNotRegular is returned for directories, devices and other non-regular files.
	ErrNotRegular = errors.New("mmap: not a regular file")
	// ErrInvalidOffset is returned when the offset is invalid (e.g. negative).
	ErrInvalidOffset = errors.New("mmap: invalid offset")
)
