// Package expansion implements arbitrary-precision floating-point expansions:
// sums of non-overlapping components, ordered by increasing magnitude, that
// represent a real value with zero residual error.
//
// Every operation returns a new expansion whose component count is bounded by
// the operation itself (|e|+|f| for Add, 2|e| for Scale, 4 for TwoTwoDiff),
// so each result is allocated once at its exact capacity. Zero components are
// never stored.
package expansion

import "github.com/zwl995/robust/internal/efa"

// Expansion is an exact multi-component representation of a real number.
// Components are finite, nonzero, non-overlapping, and stored by increasing
// magnitude; the represented value is the exact sum of the components.
type Expansion[T efa.Float] []T

// Two builds an expansion from a rounded result and its roundoff tail.
func Two[T efa.Float](value, tail T) Expansion[T] {
	e := make(Expansion[T], 0, 2)
	if tail != 0 {
		e = append(e, tail)
	}
	if value != 0 {
		e = append(e, value)
	}
	return e
}

// Sum returns the exact expansion of a + b.
func Sum[T efa.Float](a, b T) Expansion[T] {
	x, tail := efa.TwoSum(a, b)
	return Two(x, tail)
}

// Diff returns the exact expansion of a - b.
func Diff[T efa.Float](a, b T) Expansion[T] {
	x, tail := efa.TwoDiff(a, b)
	return Two(x, tail)
}

// Product returns the exact expansion of a * b.
func Product[T efa.Float](a, b T) Expansion[T] {
	p, tail := efa.TwoProduct(a, b)
	return Two(p, tail)
}

// MostSignificant returns the largest-magnitude component, or zero if the
// expansion is empty. For a complete, exact expansion this component alone
// carries the correct sign.
func (e Expansion[T]) MostSignificant() T {
	if len(e) == 0 {
		return 0
	}
	return e[len(e)-1]
}

// Estimate returns the plain floating-point sum of the components in stored
// order. It is an approximation of the represented value, suitable only for
// early-exit filtering against an error bound.
func (e Expansion[T]) Estimate() T {
	var sum T
	for _, c := range e {
		sum += c
	}
	return sum
}

// Negated returns the expansion of the negated value. Negation of every
// component is exact, so the size does not change.
func (e Expansion[T]) Negated() Expansion[T] {
	h := make(Expansion[T], len(e))
	for i, c := range e {
		h[i] = -c
	}
	return h
}

// Add returns the exact expansion of the sum of e and f. The inputs are
// merged by increasing magnitude (both are already ordered) and distilled
// with a single TwoSum sweep, which preserves the non-overlapping invariant.
func (e Expansion[T]) Add(f Expansion[T]) Expansion[T] {
	h := make(Expansion[T], len(e)+len(f))
	merge(e, f, h)
	if len(e) == 0 || len(f) == 0 {
		return h
	}

	n := 0
	q := h[0]
	qNew := h[1] + q
	hh := efa.FastPlusTail(h[1], q, qNew)
	q = qNew
	if hh != 0 {
		h[n] = hh
		n++
	}
	// The write index trails the read index, so distilling in place is safe.
	for g := 2; g < len(h); g++ {
		qNew = q + h[g]
		hh = efa.PlusTail(q, h[g], qNew)
		q = qNew
		if hh != 0 {
			h[n] = hh
			n++
		}
	}
	if q != 0 {
		h[n] = q
		n++
	}
	return h[:n]
}

// Sub returns the exact expansion of the difference of e and f.
func (e Expansion[T]) Sub(f Expansion[T]) Expansion[T] {
	return e.Add(f.Negated())
}

// Scale returns the exact expansion of e multiplied by the scalar b.
func (e Expansion[T]) Scale(b T) Expansion[T] {
	if len(e) == 0 || b == 0 {
		return nil
	}
	h := make(Expansion[T], 0, 2*len(e))
	bHi, bLo := efa.Split(b)
	q := e[0] * b
	hh := efa.MultTailPreSplit(e[0], b, bHi, bLo, q)
	if hh != 0 {
		h = append(h, hh)
	}
	for i := 1; i < len(e); i++ {
		ti := e[i] * b
		tiTail := efa.MultTailPreSplit(e[i], b, bHi, bLo, ti)
		qi := q + tiTail
		hh = efa.PlusTail(q, tiTail, qi)
		if hh != 0 {
			h = append(h, hh)
		}
		q = ti + qi
		hh = efa.FastPlusTail(ti, qi, q)
		if hh != 0 {
			h = append(h, hh)
		}
	}
	if q != 0 {
		h = append(h, q)
	}
	return h
}

// TwoTwoDiff returns the exact expansion (at most 4 components) of the 2x2
// determinant ax*by - ay*bx, unrolled to share intermediate tails instead of
// building two product expansions and subtracting them.
func TwoTwoDiff[T efa.Float](ax, by, ay, bx T) Expansion[T] {
	axby1 := ax * by
	axby0 := efa.MultTail(ax, by, axby1)
	bxay1 := bx * ay
	bxay0 := efa.MultTail(bx, ay, bxay1)
	i0 := axby0 - bxay0
	x0 := efa.MinusTail(axby0, bxay0, i0)
	j := axby1 + i0
	t0 := efa.PlusTail(axby1, i0, j)
	i1 := t0 - bxay1
	x1 := efa.MinusTail(t0, bxay1, i1)
	x3 := j + i1
	x2 := efa.PlusTail(j, i1, x3)

	h := make(Expansion[T], 0, 4)
	if x0 != 0 {
		h = append(h, x0)
	}
	if x1 != 0 {
		h = append(h, x1)
	}
	if x2 != 0 {
		h = append(h, x2)
	}
	if x3 != 0 {
		h = append(h, x3)
	}
	return h
}

// TwoTwoDiffZeroCheck is TwoTwoDiff for operands that are often exactly zero
// (roundoff tails). A zero ax or ay leaves a single product, which needs no
// splitting beyond its own tail.
func TwoTwoDiffZeroCheck[T efa.Float](ax, by, ay, bx T) Expansion[T] {
	switch {
	case ax == 0 && ay == 0:
		return nil
	case ax == 0:
		return Product(-ay, bx)
	case ay == 0:
		return Product(ax, by)
	default:
		return TwoTwoDiff(ax, by, ay, bx)
	}
}

// ThreeProduct returns the exact expansion (at most 4 components) of
// (a*b)*c, short-circuiting to the empty expansion when any factor is
// exactly zero.
func ThreeProduct[T efa.Float](a, b, c T) Expansion[T] {
	if a == 0 || b == 0 || c == 0 {
		return nil
	}
	return Product(a, b).Scale(c)
}

// merge writes the components of e and f into h by increasing magnitude.
// The merge is stable: equal-magnitude components keep e before f.
func merge[T efa.Float](e, f, h Expansion[T]) {
	i, j, k := 0, 0, 0
	for i < len(e) && j < len(f) {
		if abs(f[j]) < abs(e[i]) {
			h[k] = f[j]
			j++
		} else {
			h[k] = e[i]
			i++
		}
		k++
	}
	k += copy(h[k:], e[i:])
	copy(h[k:], f[j:])
}

func abs[T efa.Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
