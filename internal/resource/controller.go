package resource

import (
	"context"
	"errors"
	"io"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// ErrMemoryLimitExceeded is returned when a table reservation would exceed the limit.
var ErrMemoryLimitExceeded = errors.New("table memory limit exceeded")

// Config holds resource limits.
type Config struct {
	// TableMemoryLimitBytes caps the bytes held by cached tables.
	// If 0, usage is only tracked.
	TableMemoryLimitBytes int64

	// MaxWorkers is the maximum number of inputs processed concurrently.
	// If 0, defaults to 1.
	MaxWorkers int64

	// ReadBytesPerSec limits remote input reads.
	// If 0, unlimited.
	ReadBytesPerSec int64
}

// Controller manages table memory, worker slots and read throughput.
type Controller struct {
	cfg Config

	memSem  *semaphore.Weighted // nil if unlimited
	memUsed atomic.Int64

	workerSem *semaphore.Weighted

	readLimiter *rate.Limiter
}

// NewController creates a new resource controller.
func NewController(cfg Config) *Controller {
	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = 1
	}

	c := &Controller{
		cfg:       cfg,
		workerSem: semaphore.NewWeighted(cfg.MaxWorkers),
	}

	if cfg.TableMemoryLimitBytes > 0 {
		c.memSem = semaphore.NewWeighted(cfg.TableMemoryLimitBytes)
	}

	if cfg.ReadBytesPerSec > 0 {
		c.readLimiter = rate.NewLimiter(rate.Limit(cfg.ReadBytesPerSec), int(cfg.ReadBytesPerSec))
	}

	return c
}

// ReserveTable accounts bytes for a table about to be cached.
// It never blocks; ErrMemoryLimitExceeded tells the caller not to cache.
func (c *Controller) ReserveTable(bytes int64) error {
	if c == nil || bytes <= 0 {
		return nil
	}
	if c.memSem != nil && !c.memSem.TryAcquire(bytes) {
		return ErrMemoryLimitExceeded
	}
	c.memUsed.Add(bytes)
	return nil
}

// ReleaseTable returns bytes of an evicted table.
func (c *Controller) ReleaseTable(bytes int64) {
	if c == nil || bytes <= 0 {
		return
	}
	if c.memSem != nil {
		c.memSem.Release(bytes)
	}
	c.memUsed.Add(-bytes)
}

// TableMemory returns the bytes currently held by cached tables.
func (c *Controller) TableMemory() int64 {
	if c == nil {
		return 0
	}
	return c.memUsed.Load()
}

// TableMemoryLimit returns the configured limit (0 if unlimited).
func (c *Controller) TableMemoryLimit() int64 {
	if c == nil {
		return 0
	}
	return c.cfg.TableMemoryLimitBytes
}

// MaxWorkers returns the configured number of worker slots.
func (c *Controller) MaxWorkers() int {
	if c == nil {
		return 1
	}
	return int(c.cfg.MaxWorkers)
}

// AcquireWorker reserves a worker slot, blocking until one is free or ctx is done.
func (c *Controller) AcquireWorker(ctx context.Context) error {
	if c == nil {
		return nil
	}
	return c.workerSem.Acquire(ctx, 1)
}

// TryAcquireWorker reserves a worker slot without blocking.
func (c *Controller) TryAcquireWorker() bool {
	if c == nil {
		return true
	}
	return c.workerSem.TryAcquire(1)
}

// ReleaseWorker releases a worker slot.
func (c *Controller) ReleaseWorker() {
	if c == nil {
		return
	}
	c.workerSem.Release(1)
}

// WaitRead blocks until n bytes may be read.
// Requests larger than the limiter burst are split.
func (c *Controller) WaitRead(ctx context.Context, n int) error {
	if c == nil || c.readLimiter == nil {
		return nil
	}
	burst := c.readLimiter.Burst()
	for n > 0 {
		chunk := min(n, burst)
		if err := c.readLimiter.WaitN(ctx, chunk); err != nil {
			return err
		}
		n -= chunk
	}
	return nil
}

// RateLimitedReader throttles reads through a Controller.
type RateLimitedReader struct {
	ctx context.Context
	r   io.Reader
	rc  *Controller
}

// NewRateLimitedReader wraps r. With a nil controller reads pass through.
func NewRateLimitedReader(ctx context.Context, r io.Reader, rc *Controller) *RateLimitedReader {
	return &RateLimitedReader{ctx: ctx, r: r, rc: rc}
}

// Read implements io.Reader.
func (r *RateLimitedReader) Read(p []byte) (int, error) {
	n, err := r.r.Read(p)
	if n > 0 {
		if werr := r.rc.WaitRead(r.ctx, n); werr != nil {
			return n, werr
		}
	}
	return n, err
}
