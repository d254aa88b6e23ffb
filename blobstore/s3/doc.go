// Package s3 provides an Amazon S3 implementation of blobstore.Store.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket", s3.WithPrefix("inputs/"))
//	if err != nil { ... }
//
//	b, err := store.Open(ctx, "firmware.bin")
//	data, err := blobstore.ReadAll(ctx, b)
//
// Whole-object reads go through the S3 transfer manager, which fetches
// parts concurrently. ReadAt issues a single ranged GET.
//
// Credentials and region come from the default AWS configuration chain.
package s3
