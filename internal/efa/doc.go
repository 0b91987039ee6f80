// Package efa implements error-free transformations: pairs of ordinary
// floating-point operations that recover both a rounded result and its exact
// rounding error, using no arithmetic wider than the operand type.
//
// These are the scalar primitives underneath the expansion algebra
// (internal/expansion) and the robust predicates built on top of it. Every
// function in this package satisfies an exact identity, e.g. for
// TwoSum(a, b) = (sum, tail):
//
//	a + b == sum + tail  (as real numbers, not as floats)
//
// The roundoff of a product is recovered either with a fused multiply-add or
// with Dekker's product on Split halves. The strategy is selected once at
// init from CPU capabilities (see capability.go) and never per call; both
// strategies produce bit-identical results.
//
// Inputs are assumed finite. NaN and infinity are out of contract.
package efa
