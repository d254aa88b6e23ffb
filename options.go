package polycrc

import (
	"log/slog"

	"github.com/hupe1980/polycrc/internal/slicing"
)

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
	cacheCapacity    int
	memoryLimit      int64
	lanes            slicing.Lanes
}

// Option configures a Checksummer.
type Option func(*options)

// WithMetricsCollector configures a metrics collector for checksum operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &polycrc.BasicMetricsCollector{}
//	cs := polycrc.New(polycrc.WithMetricsCollector(metrics))
//	// ... use cs ...
//	stats := metrics.GetStats()
//	fmt.Printf("Checksums: %d, Avg latency: %dns\n", stats.ChecksumCount, stats.ChecksumAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithCacheCapacity bounds the number of tables each engine keeps.
// Zero means unbounded; the memory limit still applies.
func WithCacheCapacity(n int) Option {
	return func(o *options) {
		o.cacheCapacity = n
	}
}

// WithMemoryLimit bounds the bytes each engine's cached tables may hold.
// Tables that do not fit are used for the call but not cached.
// Zero means unlimited.
func WithMemoryLimit(bytes int64) Option {
	return func(o *options) {
		o.memoryLimit = bytes
	}
}

// WithLanes pins the V2 lane width (4, 8 or 16 bytes) instead of the
// platform default.
func WithLanes(n int) Option {
	return func(o *options) {
		o.lanes = slicing.Lanes(n)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
		cacheCapacity:    DefaultCacheCapacity,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
