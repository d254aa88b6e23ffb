package blobstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations should return an error that satisfies `errors.Is(err, ErrNotFound)`.
// The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// Store opens blobs for reading.
type Store interface {
	// Open opens a blob for reading.
	Open(ctx context.Context, name string) (Blob, error)
}

// Blob is a read-only handle to a data blob.
type Blob interface {
	// ReadAt reads len(p) bytes starting at offset off.
	ReadAt(ctx context.Context, p []byte, off int64) (int, error)
	io.Closer
	// Size returns the size of the blob in bytes.
	Size() int64
}

// Mappable is an optional interface for Blobs that support memory mapping.
type Mappable interface {
	// Bytes returns the underlying byte slice.
	// The slice is valid until the Blob is closed.
	Bytes() ([]byte, error)
}

// Downloader is an optional interface for Blobs that can fetch their whole
// contents more efficiently than sequential ReadAt calls.
type Downloader interface {
	Download(ctx context.Context) ([]byte, error)
}

// readChunk bounds a single ReadAt when ReadAll falls back to it.
const readChunk = 4 << 20

// ReadAll returns the full contents of b.
//
// Mappable blobs return their mapping without copying; the result is then
// only valid until b is closed.
func ReadAll(ctx context.Context, b Blob) ([]byte, error) {
	if m, ok := b.(Mappable); ok {
		return m.Bytes()
	}
	if d, ok := b.(Downloader); ok {
		return d.Download(ctx)
	}

	size := b.Size()
	if size < 0 || int64(int(size)) != size {
		return nil, fmt.Errorf("blobstore: invalid blob size %d", size)
	}

	buf := make([]byte, size)
	var off int64
	for off < size {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		end := min(off+readChunk, size)
		n, err := b.ReadAt(ctx, buf[off:end], off)
		off += int64(n)
		if err != nil {
			if errors.Is(err, io.EOF) && off == size {
				break
			}
			return nil, err
		}
		if n == 0 {
			return nil, io.ErrUnexpectedEOF
		}
	}
	return buf, nil
}
