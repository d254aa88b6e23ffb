package input

import (
	"context"

	"github.com/hupe1980/polycrc/blobstore"
	miniostore "github.com/hupe1980/polycrc/blobstore/minio"
	s3store "github.com/hupe1980/polycrc/blobstore/s3"
)

// S3Stores returns a factory that opens buckets through the default AWS
// configuration chain.
func S3Stores(optFns ...func(*s3store.Options)) StoreFactory {
	return func(ctx context.Context, bucket string) (blobstore.Store, error) {
		s, err := s3store.New(ctx, bucket, optFns...)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
}

// MinioStores returns a factory that opens buckets on the MinIO endpoint
// named by the environment (see minio.NewFromEnv).
func MinioStores() StoreFactory {
	return func(_ context.Context, bucket string) (blobstore.Store, error) {
		s, err := miniostore.NewFromEnv(bucket)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
}
