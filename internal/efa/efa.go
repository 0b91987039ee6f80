package efa

import (
	"math"
	"unsafe"
)

// Float is the set of floating-point types the primitives operate on.
// Both are IEEE-754 radix-2 types, which the error-free transformations
// require; the constraint is the compile-time enforcement of that
// precondition.
type Float interface {
	float32 | float64
}

// MantissaBits returns the significand precision of T in bits, including the
// implicit leading bit (24 for float32, 53 for float64).
func MantissaBits[T Float]() int {
	var z T
	if unsafe.Sizeof(z) == 4 {
		return 24
	}
	return 53
}

// Epsilon returns 2^-p where p is the mantissa precision of T. This is the
// unit roundoff used to derive the predicate error bounds.
func Epsilon[T Float]() T {
	return T(math.Ldexp(1, -MantissaBits[T]()))
}

// splitter is 2^ceil(p/2) + 1, the multiply constant of Veltkamp splitting.
func splitter[T Float]() T {
	var z T
	if unsafe.Sizeof(z) == 4 {
		return T(1<<12 + 1)
	}
	return T(1<<27 + 1)
}

// PlusTail returns the roundoff error of x = a + b, valid for any operand
// ordering.
func PlusTail[T Float](a, b, x T) T {
	bVirtual := x - a
	aVirtual := x - bVirtual
	bRoundoff := b - bVirtual
	aRoundoff := a - aVirtual
	return aRoundoff + bRoundoff
}

// FastPlusTail returns the roundoff error of x = a + b, valid only when
// |a| >= |b| is already known.
func FastPlusTail[T Float](a, b, x T) T {
	bVirtual := x - a
	return b - bVirtual
}

// MinusTail returns the roundoff error of x = a - b.
func MinusTail[T Float](a, b, x T) T {
	bVirtual := a - x
	aVirtual := x + bVirtual
	bRoundoff := bVirtual - b
	aRoundoff := a - aVirtual
	return aRoundoff + bRoundoff
}

// Split partitions a into two non-overlapping halves with hi + lo == a
// exactly, each carrying roughly half the mantissa bits.
func Split[T Float](a T) (hi, lo T) {
	c := splitter[T]() * a
	aBig := c - a
	hi = c - aBig
	return hi, a - hi
}

// MultTail returns the roundoff error of p = a * b.
func MultTail[T Float](a, b, p T) T {
	if useFMA {
		return fusedTail(a, b, p)
	}
	aHi, aLo := Split(a)
	bHi, bLo := Split(b)
	return dekkerTail(aHi, aLo, bHi, bLo, p)
}

// MultTailPreSplit is MultTail for callers that multiply many values by the
// same b and have already split it (expansion scaling does).
func MultTailPreSplit[T Float](a, b, bHi, bLo, p T) T {
	if useFMA {
		return fusedTail(a, b, p)
	}
	aHi, aLo := Split(a)
	return dekkerTail(aHi, aLo, bHi, bLo, p)
}

// dekkerTail recovers the roundoff of p = a*b from the split halves of the
// operands (Dekker's product).
func dekkerTail[T Float](aHi, aLo, bHi, bLo, p T) T {
	y := p - aHi*bHi
	y -= aLo * bHi
	y -= aHi * bLo
	return aLo*bLo - y
}

// fusedTail recovers the roundoff of p = a*b in a single fused step. For
// float64 this is the FMA instruction; for float32 the product is exact in
// float64 (24+24 significand bits fit in 53) and the nearby subtraction is
// exact by Sterbenz's lemma.
func fusedTail[T Float](a, b, p T) T {
	var z T
	if unsafe.Sizeof(z) == 4 {
		return T(float64(a)*float64(b) - float64(p))
	}
	return T(math.FMA(float64(a), float64(b), -float64(p)))
}

// TwoSum returns the rounded sum of a and b and its exact roundoff, so that
// a + b == sum + tail exactly.
func TwoSum[T Float](a, b T) (sum, tail T) {
	sum = a + b
	return sum, PlusTail(a, b, sum)
}

// FastTwoSum is TwoSum, valid only when |a| >= |b| is already known.
func FastTwoSum[T Float](a, b T) (sum, tail T) {
	sum = a + b
	return sum, FastPlusTail(a, b, sum)
}

// TwoDiff returns the rounded difference of a and b and its exact roundoff,
// so that a - b == diff + tail exactly.
func TwoDiff[T Float](a, b T) (diff, tail T) {
	diff = a - b
	return diff, MinusTail(a, b, diff)
}

// TwoProduct returns the rounded product of a and b and its exact roundoff,
// so that a * b == prod + tail exactly.
func TwoProduct[T Float](a, b T) (prod, tail T) {
	prod = a * b
	return prod, MultTail(a, b, prod)
}
