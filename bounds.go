package robust

import (
	"unsafe"

	"github.com/zwl995/robust/internal/efa"
)

// errorBounds holds the certification coefficients for one floating type.
// Each predicate has three ascending-strictness stage bounds (A, B, C); a
// stage result whose magnitude reaches bound*permanent has a provably
// correct sign. resultErr bounds the roundoff of the stage-3 running result
// itself.
//
// The tables are computed once at package init and are read-only afterwards,
// so they are safe to share across any number of concurrent callers.
type errorBounds[T Float] struct {
	resultErr T

	ccwA, ccwB, ccwC T
	o3dA, o3dB, o3dC T
	iccA, iccB, iccC T
	ispA, ispB, ispC T
}

var (
	bounds32 = newErrorBounds[float32]()
	bounds64 = newErrorBounds[float64]()
)

func newErrorBounds[T Float]() errorBounds[T] {
	eps := efa.Epsilon[T]()
	return errorBounds[T]{
		resultErr: (3 + 8*eps) * eps,

		ccwA: (3 + 16*eps) * eps,
		ccwB: (2 + 12*eps) * eps,
		ccwC: (9 + 64*eps) * eps * eps,

		o3dA: (7 + 56*eps) * eps,
		o3dB: (3 + 28*eps) * eps,
		o3dC: (26 + 288*eps) * eps * eps,

		iccA: (10 + 96*eps) * eps,
		iccB: (4 + 48*eps) * eps,
		iccC: (44 + 576*eps) * eps * eps,

		ispA: (16 + 224*eps) * eps,
		ispB: (5 + 72*eps) * eps,
		ispC: (71 + 1408*eps) * eps * eps,
	}
}

func boundsFor[T Float]() *errorBounds[T] {
	var z T
	if unsafe.Sizeof(z) == 4 {
		return any(&bounds32).(*errorBounds[T])
	}
	return any(&bounds64).(*errorBounds[T])
}
