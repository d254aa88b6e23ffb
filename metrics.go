package polycrc

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordChecksum is called after each checksum call.
	// bytes is the input length, err is nil if successful.
	RecordChecksum(v Version, bytes int, duration time.Duration, err error)

	// RecordTableBuild is called when an engine builds tables for a new polynomial.
	RecordTableBuild(v Version, duration time.Duration)

	// RecordCacheHit is called when an engine reuses cached tables.
	RecordCacheHit(v Version)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordChecksum(Version, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordTableBuild(Version, time.Duration)           {}
func (NoopMetricsCollector) RecordCacheHit(Version)                            {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	ChecksumCount      atomic.Int64
	ChecksumErrors     atomic.Int64
	ChecksumBytes      atomic.Int64
	ChecksumTotalNanos atomic.Int64
	TableBuilds        atomic.Int64
	TableBuildNanos    atomic.Int64
	CacheHits          atomic.Int64

	perVersion [numVersions]atomic.Int64
}

// RecordChecksum implements MetricsCollector.
func (b *BasicMetricsCollector) RecordChecksum(v Version, bytes int, duration time.Duration, err error) {
	b.ChecksumCount.Add(1)
	b.ChecksumBytes.Add(int64(bytes))
	b.ChecksumTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ChecksumErrors.Add(1)
	}
	if v.Valid() {
		b.perVersion[v].Add(1)
	}
}

// RecordTableBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordTableBuild(_ Version, duration time.Duration) {
	b.TableBuilds.Add(1)
	b.TableBuildNanos.Add(duration.Nanoseconds())
}

// RecordCacheHit implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCacheHit(Version) {
	b.CacheHits.Add(1)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	s := BasicMetricsStats{
		ChecksumCount:    b.ChecksumCount.Load(),
		ChecksumErrors:   b.ChecksumErrors.Load(),
		ChecksumBytes:    b.ChecksumBytes.Load(),
		ChecksumAvgNanos: b.getAvgChecksumNanos(),
		TableBuilds:      b.TableBuilds.Load(),
		CacheHits:        b.CacheHits.Load(),
		PerVersion:       make(map[Version]int64, numVersions),
	}
	for _, v := range Versions() {
		s.PerVersion[v] = b.perVersion[v].Load()
	}
	return s
}

func (b *BasicMetricsCollector) getAvgChecksumNanos() int64 {
	count := b.ChecksumCount.Load()
	if count == 0 {
		return 0
	}
	return b.ChecksumTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	ChecksumCount    int64
	ChecksumErrors   int64
	ChecksumBytes    int64
	ChecksumAvgNanos int64
	TableBuilds      int64
	CacheHits        int64
	PerVersion       map[Version]int64
}
