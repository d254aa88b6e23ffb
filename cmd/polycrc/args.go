package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"strconv"
	"strings"

	"github.com/hupe1980/polycrc"
	"github.com/hupe1980/polycrc/codec"
	"github.com/hupe1980/polycrc/poly"
)

const defaultBenchmarkReps = 10

var (
	errUsage = errors.New("usage error")
	errHelp  = errors.New("help requested")
)

type config struct {
	version    polycrc.Version
	generator  poly.Polynomial
	literal    bool
	bench      benchFlag
	verify     bool
	decompress bool
	format     string
	codec      codec.Codec
	ioLimit    int64
	jobs       int
	lanes      int
	cacheSize  int
	logLevel   slog.Level
	inputs     []string
}

// benchFlag is -B with an optional attached repetition count.
type benchFlag struct {
	enabled bool
	reps    int
}

func (b *benchFlag) String() string {
	if b == nil || !b.enabled {
		return "off"
	}
	return strconv.Itoa(b.reps)
}

func (b *benchFlag) Set(s string) error {
	switch s {
	case "true":
		b.enabled, b.reps = true, defaultBenchmarkReps
		return nil
	case "false":
		b.enabled = false
		return nil
	}
	n, err := strconv.ParseInt(s, 0, 64)
	if err != nil || n < 1 || n > 1<<31-1 {
		return fmt.Errorf("invalid number of test iterations %q: specify a number greater than 0 or omit it for %d iterations", s, defaultBenchmarkReps)
	}
	b.enabled, b.reps = true, int(n)
	return nil
}

func (b *benchFlag) IsBoolFlag() bool { return true }

type versionFlag struct{ v *polycrc.Version }

func (f versionFlag) String() string {
	if f.v == nil {
		return "0"
	}
	return strconv.Itoa(int(*f.v))
}

func (f versionFlag) Set(s string) error {
	v, err := polycrc.ParseVersion(s)
	if err != nil {
		return fmt.Errorf("invalid version number: please select a version from 0 to %d", len(polycrc.Versions())-1)
	}
	*f.v = v
	return nil
}

type polyFlag struct{ p *poly.Polynomial }

func (f polyFlag) String() string {
	if f.p == nil {
		return poly.Default.String()
	}
	return f.p.String()
}

func (f polyFlag) Set(s string) error {
	if p, ok := poly.ByName(s); ok {
		*f.p = p
		return nil
	}
	p, err := poly.Parse(s)
	if err != nil {
		return fmt.Errorf("invalid generator polynomial: %w", err)
	}
	*f.p = p
	return nil
}

// attachedValue names the single-letter flags whose value may be glued to
// the flag itself, as in -V1, -B50 or -G0x1234567.
var attachedValue = map[byte]bool{'V': true, 'B': true, 'G': true}

// normalizeArgs rewrites attached short-flag values into -X=value form and
// splits off everything after "--" as positional.
func normalizeArgs(args []string) (flags, rest []string) {
	for i, a := range args {
		if a == "--" {
			return flags, args[i+1:]
		}
		if len(a) > 2 && a[0] == '-' && a[1] != '-' && attachedValue[a[1]] && a[2] != '=' {
			a = a[:2] + "=" + a[2:]
		}
		flags = append(flags, a)
	}
	return flags, nil
}

func newFlagSet(cfg *config, output io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("polycrc", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() { printHelp(output) }

	cfg.generator = poly.Default
	cfg.codec = codec.Default

	fs.Var(versionFlag{&cfg.version}, "V", "engine version")
	fs.Var(&cfg.bench, "B", "benchmark mode with optional repetitions")
	fs.Var(polyFlag{&cfg.generator}, "G", "generator polynomial in normal form")
	fs.BoolVar(&cfg.literal, "s", false, "interpret the input as a string")
	fs.BoolVar(&cfg.verify, "verify", false, "run every engine and fail if they disagree")
	fs.BoolVar(&cfg.decompress, "d", false, "decompress .zst, .lz4 and .gz inputs")
	fs.StringVar(&cfg.format, "format", "text", "output format: text or json")
	fs.Func("codec", "JSON codec: "+strings.Join(codec.Names(), " or "), func(s string) error {
		c, ok := codec.ByName(s)
		if !ok {
			return fmt.Errorf("unknown codec %q", s)
		}
		cfg.codec = c
		return nil
	})
	fs.Int64Var(&cfg.ioLimit, "io-limit", 0, "limit remote and stdin reads to this many bytes per second")
	fs.IntVar(&cfg.jobs, "j", runtime.GOMAXPROCS(0), "inputs processed in parallel")
	fs.IntVar(&cfg.lanes, "lanes", 0, "force the V2 lane width (4, 8 or 16)")
	fs.IntVar(&cfg.cacheSize, "cache", polycrc.DefaultCacheCapacity, "polynomials whose tables each engine keeps")
	fs.Func("log-level", "debug, info, warn or error", func(s string) error {
		return cfg.logLevel.UnmarshalText([]byte(s))
	})

	return fs
}

// parseArgs parses the command line. Flags may appear before, between or
// after inputs.
func parseArgs(args []string, output io.Writer) (*config, error) {
	cfg := &config{logLevel: slog.LevelWarn}
	fs := newFlagSet(cfg, output)

	var help bool
	fs.BoolVar(&help, "h", false, "print help")
	fs.BoolVar(&help, "help", false, "print help")

	flags, rest := normalizeArgs(args)
	for {
		if err := fs.Parse(flags); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return nil, errHelp
			}
			return nil, fmt.Errorf("%w: %v", errUsage, err)
		}
		flags = fs.Args()
		if len(flags) == 0 {
			break
		}
		cfg.inputs = append(cfg.inputs, flags[0])
		flags = flags[1:]
	}
	cfg.inputs = append(cfg.inputs, rest...)

	if help {
		return nil, errHelp
	}
	if len(cfg.inputs) == 0 {
		return nil, fmt.Errorf("%w: not enough arguments", errUsage)
	}
	if !cfg.literal && countStdin(cfg.inputs) > 1 {
		return nil, fmt.Errorf("%w: standard input (\"-\") can be read only once", errUsage)
	}
	if cfg.format != "text" && cfg.format != "json" {
		return nil, fmt.Errorf("%w: unknown output format %q", errUsage, cfg.format)
	}
	if cfg.jobs < 1 {
		cfg.jobs = 1
	}
	if cfg.lanes != 0 && cfg.lanes != 4 && cfg.lanes != 8 && cfg.lanes != 16 {
		return nil, fmt.Errorf("%w: lane width must be 4, 8 or 16", errUsage)
	}
	return cfg, nil
}

func countStdin(inputs []string) int {
	n := 0
	for _, in := range inputs {
		if in == "-" {
			n++
		}
	}
	return n
}

func printHelp(w io.Writer) {
	fmt.Fprintf(w, `This program calculates the checksum for a given file or string using the CRC32 algorithm.
Usage: polycrc [options] input...
       - by default, each input is interpreted as a file; "-" reads standard input
       - s3://bucket/key and minio://bucket/key read remote objects
       - when using hex numbers, this is the allowed format: 0x...
Options:
    -V[int]: specifies which version to use, default is 0 (available versions: %d)
    -B[int]: runs the program in benchmark mode and outputs the required runtime;
             [int] to set the number of repetitions, default is %d
    -G[uint32]: calculates the checksum for a given generator polynomial,
                default is the IEEE802.3 specified polynomial 0x04C11DB7
    -s: interprets the input as a string
    -verify: runs every version and fails with exit code 2 if they disagree
    -d: decompresses .zst, .lz4 and .gz inputs first
    -format text|json, -codec json|go-json: output format
    -j <n>: number of inputs processed in parallel
    -io-limit <bytes/s>: throttles remote and stdin reads
    -lanes 4|8|16: forces the lane width of version 2
    -cache <n>: polynomials whose tables each version keeps
    -log-level debug|info|warn|error: diagnostics on stderr
    -h/--help: outputs a description and available options for the CRC32 program
Examples:
    polycrc input.txt
    polycrc -V1 -s "The quick brown fox jumps over the lazy dog"
    polycrc -V0 -B50 -s "The quick brown fox jumps over the lazy dog"
    polycrc -G0x1EDC6F41 -verify a.bin b.bin.zst -d
`, len(polycrc.Versions()), defaultBenchmarkReps)
}
