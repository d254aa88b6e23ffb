// Package resource limits the resources a checksum process may consume.
//
// A Controller governs three things:
//
//   - Table memory: bytes held by cached lookup tables (non-blocking, fail-fast)
//   - Workers: concurrent inputs being loaded and checksummed
//   - Reads: throughput of remote input reads (token bucket)
//
// # Table Memory
//
//	rc := resource.NewController(resource.Config{
//	    TableMemoryLimitBytes: 1 << 20,
//	})
//
//	if err := rc.ReserveTable(table.SlicingBytes); err != nil {
//	    // ErrMemoryLimitExceeded: use the table for this call, do not cache it
//	}
//	defer rc.ReleaseTable(table.SlicingBytes)
//
// # Workers
//
//	if err := rc.AcquireWorker(ctx); err != nil {
//	    return err
//	}
//	defer rc.ReleaseWorker()
//
// # Read Throttling
//
//	reader := resource.NewRateLimitedReader(ctx, body, rc)
//
// All methods are safe for concurrent use, and a nil *Controller is valid:
// every method becomes a no-op.
package resource
