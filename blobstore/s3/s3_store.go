package s3

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/hupe1980/polycrc/blobstore"
)

// Client is the subset of the S3 API the store needs.
// *s3.Client satisfies it.
type Client interface {
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

var _ manager.DownloadAPIClient = (Client)(nil)

// Options configures New.
type Options struct {
	// Prefix is prepended to every blob name.
	Prefix string
	// Region overrides the region from the AWS configuration chain.
	Region string
	// Endpoint overrides the S3 endpoint (e.g. for LocalStack).
	Endpoint string
	// UsePathStyle addresses buckets as path segments instead of subdomains.
	UsePathStyle bool
	// PartSize is the transfer manager's part size in bytes.
	// If 0, manager.DefaultDownloadPartSize is used.
	PartSize int64
	// Concurrency is the number of parts downloaded in parallel.
	// If 0, manager.DefaultDownloadConcurrency is used.
	Concurrency int
}

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) func(*Options) {
	return func(o *Options) { o.Prefix = prefix }
}

// WithRegion sets the AWS region.
func WithRegion(region string) func(*Options) {
	return func(o *Options) { o.Region = region }
}

// WithEndpoint sets a custom endpoint and enables path-style addressing.
func WithEndpoint(endpoint string) func(*Options) {
	return func(o *Options) {
		o.Endpoint = endpoint
		o.UsePathStyle = true
	}
}

// WithDownloadConcurrency sets the transfer manager's part size and parallelism.
func WithDownloadConcurrency(partSize int64, concurrency int) func(*Options) {
	return func(o *Options) {
		o.PartSize = partSize
		o.Concurrency = concurrency
	}
}

// Store implements blobstore.Store for S3.
type Store struct {
	client     Client
	bucket     string
	prefix     string
	downloader *manager.Downloader
}

// New creates a Store for bucket using the default AWS configuration chain.
func New(ctx context.Context, bucket string, optFns ...func(*Options)) (*Store, error) {
	opts := Options{}
	for _, fn := range optFns {
		fn(&opts)
	}

	var cfgOpts []func(*config.LoadOptions) error
	if opts.Region != "" {
		cfgOpts = append(cfgOpts, config.WithRegion(opts.Region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, cfgOpts...)
	if err != nil {
		return nil, fmt.Errorf("s3: load aws config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
		o.UsePathStyle = opts.UsePathStyle
	})

	return newStore(client, bucket, opts), nil
}

// NewStore creates a Store on an existing client.
// rootPrefix is prepended to all keys (e.g. "inputs/").
func NewStore(client Client, bucket, rootPrefix string) *Store {
	return newStore(client, bucket, Options{Prefix: rootPrefix})
}

func newStore(client Client, bucket string, opts Options) *Store {
	return &Store{
		client: client,
		bucket: bucket,
		prefix: opts.Prefix,
		downloader: manager.NewDownloader(client, func(d *manager.Downloader) {
			if opts.PartSize > 0 {
				d.PartSize = opts.PartSize
			}
			if opts.Concurrency > 0 {
				d.Concurrency = opts.Concurrency
			}
		}),
	}
}

func (s *Store) key(name string) string {
	return path.Join(s.prefix, name)
}

// Open checks that the object exists and returns a handle to it.
func (s *Store) Open(ctx context.Context, name string) (blobstore.Blob, error) {
	key := s.key(name)

	head, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("s3://%s/%s: %w", s.bucket, key, blobstore.ErrNotFound)
		}
		return nil, err
	}

	return &s3Blob{
		store: s,
		key:   key,
		size:  aws.ToInt64(head.ContentLength),
	}, nil
}

func isNotFound(err error) bool {
	var nf *types.NotFound
	if errors.As(err, &nf) {
		return true
	}
	var nsk *types.NoSuchKey
	return errors.As(err, &nsk)
}

// s3Blob implements blobstore.Blob and blobstore.Downloader.
type s3Blob struct {
	store *Store
	key   string
	size  int64
}

func (b *s3Blob) Close() error {
	return nil
}

func (b *s3Blob) Size() int64 {
	return b.size
}

func (b *s3Blob) ReadAt(ctx context.Context, p []byte, off int64) (int, error) {
	if off >= b.size {
		return 0, io.EOF
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	end := off + int64(len(p)) - 1
	if end >= b.size {
		end = b.size - 1
	}

	resp, err := b.store.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(b.store.bucket),
		Key:    aws.String(b.key),
		Range:  aws.String(fmt.Sprintf("bytes=%d-%d", off, end)),
	})
	if err != nil {
		return 0, err
	}
	defer func() { _ = resp.Body.Close() }()

	n, err := io.ReadFull(resp.Body, p[:end-off+1])
	if err != nil {
		return n, err
	}
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

// Download fetches the whole object through the transfer manager.
func (b *s3Blob) Download(ctx context.Context) ([]byte, error) {
	if b.size == 0 {
		return []byte{}, nil
	}

	buf := manager.NewWriteAtBuffer(make([]byte, 0, b.size))
	n, err := b.store.downloader.Download(ctx, buf, &s3.GetObjectInput{
		Bucket: aws.String(b.store.bucket),
		Key:    aws.String(b.key),
	})
	if err != nil {
		return nil, fmt.Errorf("s3://%s/%s: %w", b.store.bucket, b.key, err)
	}
	if n != b.size {
		return nil, fmt.Errorf("s3://%s/%s: downloaded %d of %d bytes: %w", b.store.bucket, b.key, n, b.size, io.ErrUnexpectedEOF)
	}
	return buf.Bytes(), nil
}
