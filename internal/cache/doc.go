// Package cache provides the polynomial-keyed lookup table cache used by the
// table-driven engines.
//
// A TableCache is an explicit object owned by one engine instance; there is no
// package-level state, so independent engines (and tests) never observe each
// other's entries.
//
// Key features:
//   - LRU eviction bounded by entry count
//   - Optional memory accounting through a resource.Controller
//   - Construction on miss with singleflight, so concurrent misses for the
//     same polynomial build the table once
//   - Hit, miss, build and eviction counters
//
// Cached values are shared between callers and must be treated as read-only.
package cache
