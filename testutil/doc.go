// Package testutil provides testing utilities for polycrc.
//
// This package is intended for use in tests and benchmarks only.
//
// # Random Buffers
//
//	rng := testutil.NewRNG(seed)
//	buf := rng.Bytes(4096)
//
// # Known Vectors
//
// Vectors lists inputs with checksums computed independently of this module,
// for every polynomial the tests exercise.
package testutil
