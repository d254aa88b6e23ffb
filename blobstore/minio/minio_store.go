package minio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"

	"github.com/hupe1980/polycrc/blobstore"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Environment variables read by NewFromEnv.
const (
	EnvEndpoint  = "POLYCRC_MINIO_ENDPOINT"
	EnvAccessKey = "MINIO_ACCESS_KEY"
	EnvSecretKey = "MINIO_SECRET_KEY"
	EnvInsecure  = "POLYCRC_MINIO_INSECURE"
)

// ErrNoEndpoint is returned by NewFromEnv when no endpoint is configured.
var ErrNoEndpoint = errors.New("minio: " + EnvEndpoint + " is not set")

// Store implements blobstore.Store for MinIO and S3-compatible storage.
type Store struct {
	client *minio.Client
	bucket string
	prefix string
}

// NewStore creates a new MinIO blob store.
// rootPrefix is prepended to all keys (e.g. "inputs/").
func NewStore(client *minio.Client, bucket, rootPrefix string) *Store {
	return &Store{
		client: client,
		bucket: bucket,
		prefix: rootPrefix,
	}
}

// NewFromEnv creates a Store for bucket with the endpoint and static
// credentials taken from the environment.
func NewFromEnv(bucket string) (*Store, error) {
	endpoint := os.Getenv(EnvEndpoint)
	if endpoint == "" {
		return nil, ErrNoEndpoint
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(os.Getenv(EnvAccessKey), os.Getenv(EnvSecretKey), ""),
		Secure: os.Getenv(EnvInsecure) == "",
	})
	if err != nil {
		return nil, fmt.Errorf("minio: %w", err)
	}
	return NewStore(client, bucket, ""), nil
}

func (s *Store) key(name string) string {
	return path.Join(s.prefix, name)
}

// Open checks that the object exists and returns a handle to it.
func (s *Store) Open(ctx context.Context, name string) (blobstore.Blob, error) {
	key := s.key(name)

	info, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("minio://%s/%s: %w", s.bucket, key, blobstore.ErrNotFound)
		}
		return nil, err
	}

	return &minioBlob{
		client: s.client,
		bucket: s.bucket,
		key:    key,
		size:   info.Size,
	}, nil
}

func isNotFound(err error) bool {
	code := minio.ToErrorResponse(err).Code
	return code == "NoSuchKey" || code == "NotFound" || code == "NoSuchBucket"
}

// minioBlob implements blobstore.Blob and blobstore.Downloader.
type minioBlob struct {
	client *minio.Client
	bucket string
	key    string
	size   int64
}

func (b *minioBlob) Size() int64 {
	return b.size
}

func (b *minioBlob) ReadAt(ctx context.Context, p []byte, off int64) (int, error) {
	if off >= b.size {
		return 0, io.EOF
	}

	end := off + int64(len(p)) - 1
	if end >= b.size {
		end = b.size - 1
	}

	opts := minio.GetObjectOptions{}
	if err := opts.SetRange(off, end); err != nil {
		return 0, err
	}

	obj, err := b.client.GetObject(ctx, b.bucket, b.key, opts)
	if err != nil {
		return 0, err
	}
	defer obj.Close()

	n, err := io.ReadFull(obj, p[:end-off+1])
	if err != nil {
		return n, err
	}
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

// Download streams the whole object.
func (b *minioBlob) Download(ctx context.Context) ([]byte, error) {
	if b.size == 0 {
		return []byte{}, nil
	}

	obj, err := b.client.GetObject(ctx, b.bucket, b.key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer obj.Close()

	buf := make([]byte, b.size)
	if _, err := io.ReadFull(obj, buf); err != nil {
		return nil, fmt.Errorf("minio://%s/%s: %w", b.bucket, b.key, err)
	}
	return buf, nil
}

func (b *minioBlob) Close() error {
	return nil
}
