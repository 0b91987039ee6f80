// Package testutil provides testing utilities for the robust predicates.
//
// This package is intended for use in tests and benchmarks only. It provides
// seeded random coordinate generation, generators for near-degenerate point
// sets that force the deeper escalation stages, and exact reference
// predicates evaluated in rational arithmetic (math/big) as ground truth.
//
// # Random Point Generation
//
//	rng := testutil.NewRNG(seed)
//	p := testutil.Point2[float64](rng, -10, 10)
//	a, b, c := testutil.NearCollinear2D[float64](rng)
//
// # Ground Truth
//
//	want := testutil.Orient2DSign(a, b, c) // -1, 0, or +1, exact
package testutil
