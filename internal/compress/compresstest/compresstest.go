// Package compresstest builds compressed fixtures in the containers that
// package compress decodes.
package compresstest

import (
	"bytes"
	"io"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/polycrc/internal/compress"
)

// Encode returns data wrapped in format f. compress.None returns data as is.
func Encode(tb testing.TB, f compress.Format, data []byte) []byte {
	tb.Helper()

	switch f {
	case compress.None:
		return data
	case compress.Zstd:
		enc, err := zstd.NewWriter(nil)
		require.NoError(tb, err)
		defer enc.Close()
		return enc.EncodeAll(data, nil)
	case compress.LZ4:
		return stream(tb, data, func(w io.Writer) io.WriteCloser { return lz4.NewWriter(w) })
	case compress.Gzip:
		return stream(tb, data, func(w io.Writer) io.WriteCloser { return gzip.NewWriter(w) })
	default:
		tb.Fatalf("compresstest: no encoder for %s", f)
		return nil
	}
}

func stream(tb testing.TB, data []byte, newWriter func(io.Writer) io.WriteCloser) []byte {
	tb.Helper()

	var buf bytes.Buffer
	zw := newWriter(&buf)
	_, err := zw.Write(data)
	require.NoError(tb, err)
	require.NoError(tb, zw.Close())
	return buf.Bytes()
}
