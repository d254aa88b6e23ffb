package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/hupe1980/polycrc"
	"github.com/hupe1980/polycrc/internal/input"
	"github.com/hupe1980/polycrc/internal/resource"
	"github.com/hupe1980/polycrc/poly"
	"golang.org/x/sync/errgroup"
)

const (
	exitOK       = 0
	exitFailure  = 1
	exitMismatch = 2
)

// env holds the process streams and the remote store factories, so tests
// can substitute them.
type env struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	s3    input.StoreFactory
	minio input.StoreFactory
}

func run(ctx context.Context, args []string, e env) int {
	if len(args) == 0 {
		fmt.Fprintln(e.stderr, "Invalid number of arguments. See help message below:")
		printHelp(e.stderr)
		return exitFailure
	}

	cfg, err := parseArgs(args, e.stderr)
	if err != nil {
		if errors.Is(err, errHelp) {
			printHelp(e.stdout)
			return exitOK
		}
		fmt.Fprintf(e.stderr, "polycrc: %v\n", err)
		return exitFailure
	}

	logger := polycrc.NewLogger(slog.NewTextHandler(e.stderr, &slog.HandlerOptions{Level: cfg.logLevel}))
	metrics := &polycrc.BasicMetricsCollector{}

	opts := []polycrc.Option{
		polycrc.WithLogger(logger),
		polycrc.WithMetricsCollector(metrics),
		polycrc.WithCacheCapacity(cfg.cacheSize),
	}
	if cfg.lanes != 0 {
		opts = append(opts, polycrc.WithLanes(cfg.lanes))
	}
	cs := polycrc.New(opts...)

	rc := resource.NewController(resource.Config{
		MaxWorkers:      int64(cfg.jobs),
		ReadBytesPerSec: cfg.ioLimit,
	})

	if e.s3 == nil {
		e.s3 = input.S3Stores()
	}
	if e.minio == nil {
		e.minio = input.MinioStores()
	}
	loader := input.NewLoader(func(o *input.Options) {
		o.Decompress = cfg.decompress
		o.Resources = rc
		o.Stdin = e.stdin
		o.S3 = e.s3
		o.Minio = e.minio
	})

	reports, err := process(ctx, cfg, cs, loader, rc, logger)

	out := newPrinter(e.stdout, cfg)
	for _, r := range reports {
		if r == nil {
			continue
		}
		if perr := out.print(r); perr != nil && err == nil {
			err = perr
		}
	}

	s := metrics.GetStats()
	logger.DebugContext(ctx, "run complete",
		"inputs", len(cfg.inputs),
		"checksums", s.ChecksumCount,
		"bytes", s.ChecksumBytes,
		"table_builds", s.TableBuilds,
		"cache_hits", s.CacheHits,
		"lanes", cs.Lanes(),
	)

	if err != nil {
		fmt.Fprintf(e.stderr, "polycrc: %v\n", err)
	}
	return exitCode(err)
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, polycrc.ErrChecksumMismatch):
		return exitMismatch
	default:
		return exitFailure
	}
}

// process checksums every input concurrently, bounded by the controller's
// worker slots. Reports keep input order; the first error cancels the rest.
func process(ctx context.Context, cfg *config, cs *polycrc.Checksummer, loader *input.Loader, rc *resource.Controller, logger *polycrc.Logger) ([]*report, error) {
	reports := make([]*report, len(cfg.inputs))

	g, gctx := errgroup.WithContext(ctx)
	for i, arg := range cfg.inputs {
		g.Go(func() error {
			if err := rc.AcquireWorker(gctx); err != nil {
				return err
			}
			defer rc.ReleaseWorker()

			r, err := checksumInput(gctx, cfg, cs, loader, arg, logger.WithInput(arg))
			if err != nil {
				return err
			}
			reports[i] = r
			return nil
		})
	}

	err := g.Wait()
	return reports, err
}

func checksumInput(ctx context.Context, cfg *config, cs *polycrc.Checksummer, loader *input.Loader, arg string, logger *polycrc.Logger) (*report, error) {
	in, err := loader.Load(ctx, arg, cfg.literal)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	logger.DebugContext(ctx, "input loaded", "source", string(in.Source), "bytes", len(in.Data), "format", in.Format.String())

	r := &report{
		Input:      in.Name,
		Source:     string(in.Source),
		Version:    int(cfg.version),
		Engine:     cfg.version.Name(),
		Polynomial: cfg.generator.String(),
		Bytes:      len(in.Data),
	}
	if in.Source == input.SourceLiteral {
		r.message = in.Name
	}

	var sum uint32
	if cfg.verify {
		sum, err = cs.Verify(ctx, in.Data, cfg.generator)
		r.Verified = err == nil
	} else {
		sum, err = cs.Checksum(ctx, cfg.version, in.Data, cfg.generator)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", arg, err)
	}
	r.Result = fmt.Sprintf("0x%x", sum)

	if cfg.bench.enabled {
		e, err := cs.Engine(cfg.version)
		if err != nil {
			return nil, err
		}
		avg, err := benchmark(ctx, e, in.Data, cfg.generator, cfg.bench.reps)
		if err != nil {
			return nil, err
		}
		r.Iterations = cfg.bench.reps
		r.AvgMsec = avg
	}

	return r, nil
}

// benchmark runs the engine reps times and returns the mean time per run in
// milliseconds. Tables are already warm from the preceding checksum.
func benchmark(ctx context.Context, e polycrc.Engine, data []byte, g poly.Polynomial, reps int) (float64, error) {
	start := time.Now()
	for i := 0; i < reps; i++ {
		if i%64 == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		}
		_ = e.Checksum(data, g)
	}
	elapsed := time.Since(start)

	return float64(elapsed.Nanoseconds()) / 1e6 / float64(reps), nil
}
