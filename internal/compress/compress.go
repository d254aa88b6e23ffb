// Package compress decodes compressed inputs before they are checksummed.
//
// Supported containers are zstd frames (.zst), LZ4 frames (.lz4) and gzip
// (.gz). The format is taken from the file extension when it has one and
// from the leading magic bytes otherwise.
package compress

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"sync"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// ErrUnknownFormat is returned when an input is not in a supported format.
var ErrUnknownFormat = errors.New("unknown compression format")

// Format identifies a compression container.
type Format uint8

const (
	// None indicates uncompressed data.
	None Format = iota
	// Zstd indicates a zstd frame.
	Zstd
	// LZ4 indicates an LZ4 frame.
	LZ4
	// Gzip indicates a gzip stream.
	Gzip
)

func (f Format) String() string {
	switch f {
	case None:
		return "none"
	case Zstd:
		return "zstd"
	case LZ4:
		return "lz4"
	case Gzip:
		return "gzip"
	default:
		return fmt.Sprintf("format(%d)", uint8(f))
	}
}

// Extension returns the conventional file extension, including the dot.
func (f Format) Extension() string {
	switch f {
	case Zstd:
		return ".zst"
	case LZ4:
		return ".lz4"
	case Gzip:
		return ".gz"
	default:
		return ""
	}
}

var (
	magicZstd = []byte{0x28, 0xB5, 0x2F, 0xFD}
	magicLZ4  = []byte{0x04, 0x22, 0x4D, 0x18}
	magicGzip = []byte{0x1F, 0x8B}
)

// FromExtension returns the format named by name's extension, or None.
func FromExtension(name string) Format {
	switch strings.ToLower(path.Ext(name)) {
	case ".zst", ".zstd":
		return Zstd
	case ".lz4":
		return LZ4
	case ".gz", ".gzip":
		return Gzip
	default:
		return None
	}
}

// Sniff returns the format whose magic bytes prefix data, or None.
func Sniff(data []byte) Format {
	switch {
	case bytes.HasPrefix(data, magicZstd):
		return Zstd
	case bytes.HasPrefix(data, magicLZ4):
		return LZ4
	case bytes.HasPrefix(data, magicGzip):
		return Gzip
	default:
		return None
	}
}

// Detect returns the format of an input called name with contents data.
// The extension wins; magic bytes decide for names without a known one.
func Detect(name string, data []byte) Format {
	if f := FromExtension(name); f != None {
		return f
	}
	return Sniff(data)
}

// zstd decoders are pooled; each holds sizable window buffers.
var zstdDecoderPool sync.Pool

func getZstdDecoder() (*zstd.Decoder, error) {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder), nil
	}
	return zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
}

func putZstdDecoder(dec *zstd.Decoder) {
	zstdDecoderPool.Put(dec)
}

// Decompress decodes data in format f. None returns data unchanged.
func Decompress(f Format, data []byte) ([]byte, error) {
	switch f {
	case None:
		return data, nil

	case Zstd:
		dec, err := getZstdDecoder()
		if err != nil {
			return nil, err
		}
		defer putZstdDecoder(dec)

		out, err := dec.DecodeAll(data, nil)
		if err != nil {
			return nil, fmt.Errorf("zstd: %w", err)
		}
		return out, nil

	case LZ4:
		out, err := io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
		if err != nil {
			return nil, fmt.Errorf("lz4: %w", err)
		}
		return out, nil

	case Gzip:
		zr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("gzip: %w", err)
		}
		defer zr.Close()

		out, err := io.ReadAll(zr)
		if err != nil {
			return nil, fmt.Errorf("gzip: %w", err)
		}
		return out, nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
}

// DecompressNamed detects the format of name/data and decodes it.
// Unlike Decompress it fails with ErrUnknownFormat when nothing matches,
// since the caller explicitly asked for decompression.
func DecompressNamed(name string, data []byte) ([]byte, Format, error) {
	f := Detect(name, data)
	if f == None {
		return nil, None, fmt.Errorf("%w: %s", ErrUnknownFormat, name)
	}
	out, err := Decompress(f, data)
	if err != nil {
		return nil, f, fmt.Errorf("decompress %s: %w", name, err)
	}
	return out, f, nil
}
