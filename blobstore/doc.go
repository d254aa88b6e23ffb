// Package blobstore abstracts where checksum inputs are read from.
//
// A Store opens named, immutable blobs. Implementations must be safe for
// concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: local filesystem with zero-copy mmap access
//   - MemoryStore: in-process blobs, mainly for tests
//   - s3.Store: Amazon S3 (subpackage s3)
//   - minio.Store: MinIO and other S3-compatible servers (subpackage minio)
//
// # Reading
//
// ReadAll returns a blob's full contents, using the cheapest path the blob
// offers:
//
//	b, err := store.Open(ctx, "input.bin")
//	if err != nil { ... }
//	defer b.Close()
//	data, err := blobstore.ReadAll(ctx, b)
package blobstore
