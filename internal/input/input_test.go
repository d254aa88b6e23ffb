package input

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hupe1980/polycrc/blobstore"
	"github.com/hupe1980/polycrc/internal/compress"
	"github.com/hupe1980/polycrc/internal/compress/compresstest"
	"github.com/hupe1980/polycrc/internal/resource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Literal(t *testing.T) {
	in, err := NewLoader().Load(context.Background(), "123456789", true)
	require.NoError(t, err)
	defer in.Close()

	assert.Equal(t, SourceLiteral, in.Source)
	assert.Equal(t, []byte("123456789"), in.Data)
}

func TestLoad_LiteralEmpty(t *testing.T) {
	in, err := NewLoader().Load(context.Background(), "", true)
	require.NoError(t, err)
	assert.Empty(t, in.Data)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.bin")
	require.NoError(t, os.WriteFile(path, []byte("file contents"), 0o600))

	in, err := NewLoader().Load(context.Background(), path, false)
	require.NoError(t, err)

	assert.Equal(t, SourceFile, in.Source)
	assert.Equal(t, path, in.Name)
	assert.Equal(t, "file contents", string(in.Data))
	require.NoError(t, in.Close())
	require.NoError(t, in.Close())
}

func TestLoad_FileErrors(t *testing.T) {
	dir := t.TempDir()
	l := NewLoader()

	_, err := l.Load(context.Background(), filepath.Join(dir, "missing"), false)
	assert.ErrorIs(t, err, blobstore.ErrNotFound)

	_, err = l.Load(context.Background(), dir, false)
	assert.ErrorIs(t, err, ErrNotRegularFile)
}

func TestLoad_Stdin(t *testing.T) {
	l := NewLoader(func(o *Options) {
		o.Stdin = strings.NewReader("from stdin")
		o.Resources = resource.NewController(resource.Config{ReadBytesPerSec: 1 << 20})
	})

	in, err := l.Load(context.Background(), "-", false)
	require.NoError(t, err)
	assert.Equal(t, SourceStdin, in.Source)
	assert.Equal(t, "from stdin", string(in.Data))

	_, err = l.Load(context.Background(), "-", false)
	assert.ErrorIs(t, err, ErrStdinConsumed)

	// A literal "-" is not standard input.
	in, err = l.Load(context.Background(), "-", true)
	require.NoError(t, err)
	assert.Equal(t, SourceLiteral, in.Source)
}

func memoryFactory(t *testing.T, calls *int, blobs map[string][]byte) StoreFactory {
	t.Helper()
	return func(ctx context.Context, bucket string) (blobstore.Store, error) {
		*calls++
		if bucket != "bucket" {
			return nil, errors.New("no such bucket")
		}
		s := blobstore.NewMemoryStore()
		for k, v := range blobs {
			require.NoError(t, s.Put(ctx, k, v))
		}
		return s, nil
	}
}

func TestLoad_Remote(t *testing.T) {
	var s3Calls, minioCalls int
	blobs := map[string][]byte{"dir/key.bin": []byte("remote")}

	l := NewLoader(func(o *Options) {
		o.S3 = memoryFactory(t, &s3Calls, blobs)
		o.Minio = memoryFactory(t, &minioCalls, blobs)
	})
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		in, err := l.Load(ctx, "s3://bucket/dir/key.bin", false)
		require.NoError(t, err)
		assert.Equal(t, SourceS3, in.Source)
		assert.Equal(t, "remote", string(in.Data))
	}
	assert.Equal(t, 1, s3Calls, "stores are reused per bucket")

	in, err := l.Load(ctx, "minio://bucket/dir/key.bin", false)
	require.NoError(t, err)
	assert.Equal(t, SourceMinio, in.Source)
	assert.Equal(t, 1, minioCalls)

	_, err = l.Load(ctx, "s3://bucket/missing", false)
	assert.ErrorIs(t, err, blobstore.ErrNotFound)

	_, err = l.Load(ctx, "s3://other/key", false)
	assert.ErrorContains(t, err, "no such bucket")

	_, err = l.Load(ctx, "s3:///key", false)
	assert.ErrorContains(t, err, "missing bucket")
}

func TestLoad_RemoteNotConfigured(t *testing.T) {
	_, err := NewLoader().Load(context.Background(), "s3://bucket/key", false)
	assert.ErrorContains(t, err, "not configured")
}

func TestLoad_Decompress(t *testing.T) {
	dir := t.TempDir()
	payload := bytes.Repeat([]byte("abc"), 100)

	l := NewLoader(func(o *Options) { o.Decompress = true })

	for _, f := range []compress.Format{compress.Zstd, compress.LZ4, compress.Gzip} {
		t.Run(f.String(), func(t *testing.T) {
			enc := compresstest.Encode(t, f, payload)
			path := filepath.Join(dir, "in"+f.Extension())
			require.NoError(t, os.WriteFile(path, enc, 0o600))

			in, err := l.Load(context.Background(), path, false)
			require.NoError(t, err)
			assert.Equal(t, f, in.Format)
			assert.Equal(t, payload, in.Data)
		})
	}

	plain := filepath.Join(dir, "plain.txt")
	require.NoError(t, os.WriteFile(plain, payload, 0o600))
	_, err := l.Load(context.Background(), plain, false)
	assert.ErrorIs(t, err, compress.ErrUnknownFormat)
}

func TestLoad_DecompressStdin(t *testing.T) {
	enc := compresstest.Encode(t, compress.Gzip, []byte("zipped"))

	l := NewLoader(func(o *Options) {
		o.Decompress = true
		o.Stdin = bytes.NewReader(enc)
	})

	in, err := l.Load(context.Background(), "-", false)
	require.NoError(t, err)
	assert.Equal(t, "zipped", string(in.Data))
	assert.Equal(t, compress.Gzip, in.Format)
}

func TestParseRef(t *testing.T) {
	tests := []struct {
		arg    string
		src    Source
		bucket string
		key    string
	}{
		{"file.bin", SourceFile, "", "file.bin"},
		{"/abs/path", SourceFile, "", "/abs/path"},
		{"s3://b/k", SourceS3, "b", "k"},
		{"s3://b/dir/k", SourceS3, "b", "dir/k"},
		{"minio://b/k", SourceMinio, "b", "k"},
		{"s3://b", SourceS3, "b", ""},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			src, bucket, key := parseRef(tt.arg)
			assert.Equal(t, tt.src, src)
			assert.Equal(t, tt.bucket, bucket)
			assert.Equal(t, tt.key, key)
		})
	}
}
