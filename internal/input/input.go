// Package input turns a command-line argument into the bytes to checksum.
//
// An argument is either a literal string, "-" for standard input, or a
// reference to a blob: a local file path, s3://bucket/key, or
// minio://bucket/key. Standard input and remote blobs are throttled by the
// resource controller's read limiter. Compressed
// blobs can be decoded transparently.
package input

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/hupe1980/polycrc/blobstore"
	"github.com/hupe1980/polycrc/internal/compress"
	"github.com/hupe1980/polycrc/internal/mmap"
	"github.com/hupe1980/polycrc/internal/resource"
)

var (
	// ErrNotRegularFile is returned for local paths that are not regular files.
	ErrNotRegularFile = errors.New("not a regular file")
	// ErrStdinConsumed is returned when "-" is loaded a second time.
	ErrStdinConsumed = errors.New("standard input already read")
)

// Source says where an Input came from.
type Source string

const (
	SourceLiteral Source = "literal"
	SourceStdin   Source = "stdin"
	SourceFile    Source = "file"
	SourceS3      Source = "s3"
	SourceMinio   Source = "minio"
)

// Input is loaded data ready to be checksummed.
type Input struct {
	// Name is the argument the input was loaded from.
	Name   string
	Source Source
	// Format is the compression the data was decoded from, if any.
	Format compress.Format
	Data   []byte

	closer func() error
}

// Close releases the input's backing storage. Data must not be used afterwards.
func (in *Input) Close() error {
	if in == nil || in.closer == nil {
		return nil
	}
	c := in.closer
	in.closer = nil
	return c()
}

// StoreFactory opens the remote store for a bucket.
type StoreFactory func(ctx context.Context, bucket string) (blobstore.Store, error)

// Options configures a Loader.
type Options struct {
	// Decompress decodes .zst, .lz4 and .gz inputs before returning them.
	Decompress bool
	// Resources throttles remote reads. May be nil.
	Resources *resource.Controller
	// Stdin is read for the argument "-". If nil, os.Stdin is used.
	Stdin io.Reader
	// Local opens plain paths. If nil, a LocalStore resolving against the
	// working directory is used.
	Local blobstore.Store
	// S3 opens s3:// buckets. If nil, s3:// arguments fail.
	S3 StoreFactory
	// Minio opens minio:// buckets. If nil, minio:// arguments fail.
	Minio StoreFactory
}

// Loader resolves arguments to Inputs. It is safe for concurrent use.
type Loader struct {
	opts Options

	mu        sync.Mutex
	stores    map[string]blobstore.Store
	stdinRead bool
}

// NewLoader creates a Loader.
func NewLoader(optFns ...func(*Options)) *Loader {
	opts := Options{}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Local == nil {
		opts.Local = blobstore.NewLocalStore("")
	}
	return &Loader{
		opts:   opts,
		stores: make(map[string]blobstore.Store),
	}
}

// Load resolves arg. With literal set, arg itself is the data.
func (l *Loader) Load(ctx context.Context, arg string, literal bool) (*Input, error) {
	if literal {
		return &Input{Name: arg, Source: SourceLiteral, Data: []byte(arg)}, nil
	}
	if arg == "-" {
		return l.loadStdin(ctx)
	}

	src, bucket, key := parseRef(arg)

	var store blobstore.Store
	switch src {
	case SourceFile:
		store = l.opts.Local
	default:
		s, err := l.remoteStore(ctx, src, bucket)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", arg, err)
		}
		store = s
	}

	blob, err := store.Open(ctx, key)
	if err != nil {
		if errors.Is(err, mmap.ErrNotRegular) {
			return nil, fmt.Errorf("%s: %w", arg, ErrNotRegularFile)
		}
		return nil, fmt.Errorf("open %s: %w", arg, err)
	}

	if src != SourceFile {
		if err := l.opts.Resources.WaitRead(ctx, int(blob.Size())); err != nil {
			_ = blob.Close()
			return nil, err
		}
	}

	data, err := blobstore.ReadAll(ctx, blob)
	if err != nil {
		_ = blob.Close()
		return nil, fmt.Errorf("read %s: %w", arg, err)
	}

	in := &Input{Name: arg, Source: src, Data: data, closer: blob.Close}

	if l.opts.Decompress {
		out, f, err := compress.DecompressNamed(key, data)
		if err != nil {
			_ = in.Close()
			return nil, err
		}
		// Decoded data lives on the heap; the mapping is no longer needed.
		if err := in.Close(); err != nil {
			return nil, err
		}
		in.Data, in.Format = out, f
	}

	return in, nil
}

func (l *Loader) loadStdin(ctx context.Context) (*Input, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.stdinRead {
		return nil, ErrStdinConsumed
	}
	l.stdinRead = true

	data, err := io.ReadAll(resource.NewRateLimitedReader(ctx, l.opts.Stdin, l.opts.Resources))
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}

	in := &Input{Name: "-", Source: SourceStdin, Data: data}
	if l.opts.Decompress {
		f := compress.Sniff(data)
		if f == compress.None {
			return nil, fmt.Errorf("stdin: %w", compress.ErrUnknownFormat)
		}
		if in.Data, err = compress.Decompress(f, data); err != nil {
			return nil, fmt.Errorf("decompress stdin: %w", err)
		}
		in.Format = f
	}
	return in, nil
}

func (l *Loader) remoteStore(ctx context.Context, src Source, bucket string) (blobstore.Store, error) {
	if bucket == "" {
		return nil, fmt.Errorf("missing bucket in %s:// reference", src)
	}

	var factory StoreFactory
	switch src {
	case SourceS3:
		factory = l.opts.S3
	case SourceMinio:
		factory = l.opts.Minio
	}
	if factory == nil {
		return nil, fmt.Errorf("%s:// inputs are not configured", src)
	}

	cacheKey := string(src) + "://" + bucket

	l.mu.Lock()
	defer l.mu.Unlock()

	if s, ok := l.stores[cacheKey]; ok {
		return s, nil
	}
	s, err := factory(ctx, bucket)
	if err != nil {
		return nil, err
	}
	l.stores[cacheKey] = s
	return s, nil
}

// parseRef splits arg into its source, bucket and key. Plain paths are
// returned as the key of SourceFile.
func parseRef(arg string) (Source, string, string) {
	for _, src := range []Source{SourceS3, SourceMinio} {
		prefix := string(src) + "://"
		if rest, ok := strings.CutPrefix(arg, prefix); ok {
			bucket, key, _ := strings.Cut(rest, "/")
			return src, bucket, key
		}
	}
	return SourceFile, "", arg
}
