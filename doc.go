// Package robust provides exact-sign geometric predicates for Go.
//
// The four predicates — Orient2D, Orient3D, InCircle, InSphere — return a
// floating-point value whose sign is the mathematically exact sign of the
// underlying determinant, never wrong due to rounding. Triangulators, convex
// hull and Delaunay algorithms can therefore use them as black-box sign
// oracles without risking corrupted data structures.
//
// # Quick Start
//
//	// Counter-clockwise triangle: strictly positive.
//	v := robust.Orient2D([2]float64{0, 0}, [2]float64{1, 0}, [2]float64{1, 1})
//
//	// Exactly collinear points: exactly zero.
//	v = robust.Orient2D([2]float64{0, 0}, [2]float64{1, 1}, [2]float64{2, 2})
//
//	// Is d inside the circumcircle of the ccw triangle a, b, c?
//	inside := robust.InCircle(a, b, c, d) > 0
//
// # Adaptive Precision
//
// Each predicate evaluates in up to four stages, returning at the first
// stage whose result is certified correct by a precomputed error bound:
//
//  1. Plain floating-point arithmetic with an a-priori bound.
//  2. Partial expansion of the leading determinant terms.
//  3. A correction built from the exact roundoff tails of the coordinate
//     differences.
//  4. Full exact expansion arithmetic (package exact), which always
//     terminates with a correct sign.
//
// For inputs that are not nearly degenerate, stage 1 almost always suffices,
// so the typical cost is a handful of multiplications. Only near-degenerate
// inputs pay for the precision they need. Callers that want the always-exact
// slow path directly can use the exact package.
//
// All functions are pure: no hidden state beyond error-bound tables
// initialized before first use, safe for any number of concurrent callers.
// Coordinates must be finite; NaN and infinity are out of contract.
//
// Product roundoff recovery uses a fused multiply-add when the CPU has one,
// and Dekker's product otherwise; the choice is made once at init and can be
// overridden with the ROBUST_FMA environment variable ("on"/"off"). Results
// are bit-identical either way.
package robust
