// Package mmap maps input files read-only so they can be checksummed
// without copying them onto the heap.
//
//	m, err := mmap.Open("input.bin")
//	if err != nil { ... }
//	defer m.Close()
//
//	_ = m.Advise(mmap.AccessSequential)
//	data := m.Bytes()
//
// Unix uses mmap(2) and madvise(2); Windows uses CreateFileMapping and
// MapViewOfFile, where Advise is a no-op.
//
// Bytes must not be used after Close returns. Close is idempotent.
package mmap
