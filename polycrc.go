package polycrc

import (
	"context"
	"sync"
	"time"

	"github.com/hupe1980/polycrc/internal/cache"
	"github.com/hupe1980/polycrc/internal/engine"
	"github.com/hupe1980/polycrc/internal/resource"
	"github.com/hupe1980/polycrc/internal/table"
	"github.com/hupe1980/polycrc/poly"
)

// DefaultCacheCapacity is the number of polynomials whose tables each
// engine keeps when no capacity is configured.
const DefaultCacheCapacity = 16

// CacheStats reports the table cache counters of one engine.
type CacheStats struct {
	Hits      int64
	Misses    int64
	Builds    int64
	Evictions int64
	Entries   int
}

// Checksummer owns one engine per version together with their table caches.
//
// A Checksummer is safe for concurrent use.
type Checksummer struct {
	engines [numVersions]Engine

	lookupCache *cache.TableCache[*table.Table]
	sliceCache  *cache.TableCache[*table.Slicing]
	// One memory budget per cache, so one engine's tables never crowd out
	// another's.
	lookupRC *resource.Controller
	sliceRC  *resource.Controller

	metrics MetricsCollector
	logger  *Logger
}

// New creates a Checksummer.
func New(optFns ...Option) *Checksummer {
	o := applyOptions(optFns)

	budget := resource.Config{TableMemoryLimitBytes: o.memoryLimit}
	lrc := resource.NewController(budget)
	src := resource.NewController(budget)

	lc := cache.New[*table.Table](o.cacheCapacity, table.Bytes, lrc)
	sc := cache.New[*table.Slicing](o.cacheCapacity, table.SlicingBytes, src)

	var vopts []engine.VectorizedOption
	if o.lanes != 0 {
		vopts = append(vopts, engine.WithLanes(o.lanes))
	}

	c := &Checksummer{
		lookupCache: lc,
		sliceCache:  sc,
		lookupRC:    lrc,
		sliceRC:     src,
		metrics:     o.metricsCollector,
		logger:      o.logger,
	}
	c.engines[V0] = lookupEngine{e: engine.NewLookup(lc)}
	c.engines[V1] = bitwiseEngine{}
	c.engines[V2] = vectorizedEngine{e: engine.NewVectorized(sc, vopts...)}

	return c
}

// Engine returns the engine for v.
func (c *Checksummer) Engine(v Version) (Engine, error) {
	if err := checkVersion(v); err != nil {
		return nil, err
	}
	return c.engines[v], nil
}

// Checksum computes the CRC32 of data under g with engine v.
func (c *Checksummer) Checksum(ctx context.Context, v Version, data []byte, g poly.Polynomial) (uint32, error) {
	start := time.Now()

	e, err := c.Engine(v)
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		c.metrics.RecordChecksum(v, len(data), time.Since(start), err)
		c.logger.LogChecksum(ctx, v, g, len(data), 0, err)
		return 0, err
	}

	var sum uint32
	if te, ok := e.(tableEngine); ok && len(data) > 0 {
		var built bool
		var took time.Duration
		sum, built, took = te.checksumTables(data, g)
		c.recordTables(ctx, v, g, built, took)
	} else {
		sum = e.Checksum(data, g)
	}

	c.metrics.RecordChecksum(v, len(data), time.Since(start), nil)
	c.logger.LogChecksum(ctx, v, g, len(data), sum, nil)

	return sum, nil
}

// Verify computes the checksum with every engine and returns it if all agree.
// On disagreement it returns a *MismatchError.
func (c *Checksummer) Verify(ctx context.Context, data []byte, g poly.Polynomial) (uint32, error) {
	results := make(map[Version]uint32, numVersions)
	for _, v := range Versions() {
		sum, err := c.Checksum(ctx, v, data, g)
		if err != nil {
			return 0, err
		}
		results[v] = sum
	}

	want := results[V0]
	for _, sum := range results {
		if sum != want {
			err := &MismatchError{Results: results}
			c.logger.LogVerify(ctx, g, len(data), err)
			return 0, err
		}
	}

	c.logger.LogVerify(ctx, g, len(data), nil)
	return want, nil
}

// CacheStats returns table cache counters per engine. V1 keeps no tables.
func (c *Checksummer) CacheStats() map[Version]CacheStats {
	return map[Version]CacheStats{
		V0: toCacheStats(c.lookupCache.Stats()),
		V2: toCacheStats(c.sliceCache.Stats()),
	}
}

// TableMemory returns the bytes currently held by cached tables of all engines.
func (c *Checksummer) TableMemory() int64 {
	return c.lookupRC.TableMemory() + c.sliceRC.TableMemory()
}

// Lanes returns the V2 lane width in bytes.
func (c *Checksummer) Lanes() int {
	return c.engines[V2].(vectorizedEngine).Lanes()
}

// Purge drops all cached tables.
func (c *Checksummer) Purge() {
	c.lookupCache.Purge()
	c.sliceCache.Purge()
}

func (c *Checksummer) recordTables(ctx context.Context, v Version, g poly.Polynomial, built bool, took time.Duration) {
	if built {
		c.metrics.RecordTableBuild(v, took)
		c.logger.LogTableBuild(ctx, v, g, took)
		return
	}
	c.metrics.RecordCacheHit(v)
}

func toCacheStats(s cache.Stats) CacheStats {
	return CacheStats{
		Hits:      s.Hits,
		Misses:    s.Misses,
		Builds:    s.Builds,
		Evictions: s.Evictions,
		Entries:   s.Entries,
	}
}

var (
	defaultOnce sync.Once
	defaultCS   *Checksummer
)

// Default returns the package-level Checksummer used by Checksum.
func Default() *Checksummer {
	defaultOnce.Do(func() {
		defaultCS = New()
	})
	return defaultCS
}

// Checksum computes the CRC32 of data under g with engine v using the
// package-level Checksummer.
func Checksum(v Version, data []byte, g poly.Polynomial) (uint32, error) {
	return Default().Checksum(context.Background(), v, data, g)
}
