package robust_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/zwl995/robust"
	"github.com/zwl995/robust/exact"
	"github.com/zwl995/robust/testutil"
)

func sign[T robust.Float](x T) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

func TestOrient2D(t *testing.T) {
	tests := []struct {
		name       string
		pa, pb, pc [2]float64
		want       int
	}{
		{"CounterClockwise", [2]float64{0, 0}, [2]float64{1, 0}, [2]float64{0, 1}, 1},
		{"CounterClockwiseUnitBox", [2]float64{0, 0}, [2]float64{1, 0}, [2]float64{1, 1}, 1},
		{"Clockwise", [2]float64{0, 0}, [2]float64{0, 1}, [2]float64{1, 0}, -1},
		{"Collinear", [2]float64{0, 0}, [2]float64{1, 1}, [2]float64{2, 2}, 0},
		{"CollinearHorizontal", [2]float64{-3, 0.5}, [2]float64{1, 0.5}, [2]float64{7, 0.5}, 0},
		{"Coincident", [2]float64{0.25, 0.75}, [2]float64{0.25, 0.75}, [2]float64{1, 2}, 0},
		// The determinant is 1e-20, twenty orders of magnitude below the
		// naive rounding noise of the inputs; only the deeper stages can
		// certify it.
		{"TinyAboveSegment", [2]float64{0, 0}, [2]float64{1, 0}, [2]float64{0.5, 1e-20}, 1},
		{"TinyBelowSegment", [2]float64{0, 0}, [2]float64{1, 0}, [2]float64{0.5, -1e-20}, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sign(robust.Orient2D(tt.pa, tt.pb, tt.pc)))
		})
	}
}

func TestOrient3D(t *testing.T) {
	tests := []struct {
		name           string
		pa, pb, pc, pd [3]float64
		want           int
	}{
		{
			"Positive",
			[3]float64{0, 0, 0}, [3]float64{1, 0, 0}, [3]float64{0, 1, 0}, [3]float64{0, 0, -1},
			1,
		},
		{
			"Negative",
			[3]float64{0, 0, 0}, [3]float64{1, 0, 0}, [3]float64{0, 1, 0}, [3]float64{0, 0, 1},
			-1,
		},
		{
			"Coplanar",
			[3]float64{0, 0, 0}, [3]float64{1, 0, 0}, [3]float64{0, 1, 0}, [3]float64{1, 1, 0},
			0,
		},
		{
			"CoplanarTilted",
			[3]float64{0, 0, 0}, [3]float64{1, 0, 1}, [3]float64{0, 1, 1}, [3]float64{1, 1, 2},
			0,
		},
		{
			"Coincident",
			[3]float64{1, 2, 3}, [3]float64{1, 2, 3}, [3]float64{0, 1, 0}, [3]float64{0, 0, 1},
			0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sign(robust.Orient3D(tt.pa, tt.pb, tt.pc, tt.pd)))
		})
	}
}

func TestInCircle(t *testing.T) {
	// a, b, c wind counter-clockwise on the unit circle.
	a := [2]float64{1, 0}
	b := [2]float64{0, 1}
	c := [2]float64{-1, 0}

	tests := []struct {
		name string
		pd   [2]float64
		want int
	}{
		{"Center", [2]float64{0, 0}, 1},
		{"Inside", [2]float64{0.25, -0.25}, 1},
		{"OnCircle", [2]float64{0, -1}, 0},
		{"Outside", [2]float64{0, -2}, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sign(robust.InCircle(a, b, c, tt.pd)))
		})
	}
}

func TestInSphere(t *testing.T) {
	// a, b, c, d are positively oriented on the unit sphere.
	a := [3]float64{1, 0, 0}
	b := [3]float64{0, 1, 0}
	c := [3]float64{0, 0, 1}
	d := [3]float64{0, 0, -1}

	tests := []struct {
		name string
		pe   [3]float64
		want int
	}{
		{"Center", [3]float64{0, 0, 0}, 1},
		{"Inside", [3]float64{-0.25, 0.125, 0}, 1},
		{"OnSphere", [3]float64{-1, 0, 0}, 0},
		{"OnSphereBottom", [3]float64{0, -1, 0}, 0},
		{"Outside", [3]float64{0, 0, -3}, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sign(robust.InSphere(a, b, c, d, tt.pe)))
		})
	}
}

// The adaptive evaluators must agree in sign with the always-exact evaluators
// and the rational-arithmetic reference on every input, including the
// near-degenerate ones that force the deepest stages.
func TestAdaptiveMatchesExact(t *testing.T) {
	rng := testutil.NewRNG(42)

	t.Run("Orient2D", func(t *testing.T) {
		for i := 0; i < 2000; i++ {
			var a, b, c [2]float64
			if i%2 == 0 {
				a = testutil.Point2[float64](rng, -1e3, 1e3)
				b = testutil.Point2[float64](rng, -1e3, 1e3)
				c = testutil.Point2[float64](rng, -1e3, 1e3)
			} else {
				a, b, c = testutil.NearCollinear2D[float64](rng)
			}

			got := sign(robust.Orient2D(a, b, c))
			require.Equal(t, sign(exact.Orient2D(a, b, c)), got, "a=%v b=%v c=%v", a, b, c)
			require.Equal(t, testutil.Orient2DSign(a, b, c), got, "a=%v b=%v c=%v", a, b, c)
		}
	})

	t.Run("Orient3D", func(t *testing.T) {
		for i := 0; i < 2000; i++ {
			var a, b, c, d [3]float64
			if i%2 == 0 {
				a = testutil.Point3[float64](rng, -1e3, 1e3)
				b = testutil.Point3[float64](rng, -1e3, 1e3)
				c = testutil.Point3[float64](rng, -1e3, 1e3)
				d = testutil.Point3[float64](rng, -1e3, 1e3)
			} else {
				a, b, c, d = testutil.NearCoplanar3D[float64](rng)
			}

			got := sign(robust.Orient3D(a, b, c, d))
			require.Equal(t, sign(exact.Orient3D(a, b, c, d)), got, "a=%v b=%v c=%v d=%v", a, b, c, d)
			require.Equal(t, testutil.Orient3DSign(a, b, c, d), got, "a=%v b=%v c=%v d=%v", a, b, c, d)
		}
	})

	t.Run("InCircle", func(t *testing.T) {
		for i := 0; i < 1000; i++ {
			var a, b, c, d [2]float64
			if i%2 == 0 {
				a = testutil.Point2[float64](rng, -10, 10)
				b = testutil.Point2[float64](rng, -10, 10)
				c = testutil.Point2[float64](rng, -10, 10)
				d = testutil.Point2[float64](rng, -10, 10)
			} else {
				a, b, c, d = testutil.NearCocircular2D[float64](rng)
			}

			got := sign(robust.InCircle(a, b, c, d))
			require.Equal(t, sign(exact.InCircle(a, b, c, d)), got, "a=%v b=%v c=%v d=%v", a, b, c, d)
			require.Equal(t, testutil.InCircleSign(a, b, c, d), got, "a=%v b=%v c=%v d=%v", a, b, c, d)
		}
	})

	t.Run("InSphere", func(t *testing.T) {
		for i := 0; i < 500; i++ {
			var a, b, c, d, e [3]float64
			if i%2 == 0 {
				a = testutil.Point3[float64](rng, -10, 10)
				b = testutil.Point3[float64](rng, -10, 10)
				c = testutil.Point3[float64](rng, -10, 10)
				d = testutil.Point3[float64](rng, -10, 10)
				e = testutil.Point3[float64](rng, -10, 10)
			} else {
				a, b, c, d, e = testutil.NearCospherical3D[float64](rng)
			}

			got := sign(robust.InSphere(a, b, c, d, e))
			require.Equal(t, sign(exact.InSphere(a, b, c, d, e)), got,
				"a=%v b=%v c=%v d=%v e=%v", a, b, c, d, e)
			require.Equal(t, testutil.InSphereSign(a, b, c, d, e), got,
				"a=%v b=%v c=%v d=%v e=%v", a, b, c, d, e)
		}
	})
}

func TestFloat32MatchesReference(t *testing.T) {
	rng := testutil.NewRNG(7)

	t.Run("Orient2D", func(t *testing.T) {
		for i := 0; i < 1000; i++ {
			a, b, c := testutil.NearCollinear2D[float32](rng)
			require.Equal(t, testutil.Orient2DSign(a, b, c), sign(robust.Orient2D(a, b, c)),
				"a=%v b=%v c=%v", a, b, c)
		}
	})

	t.Run("Orient3D", func(t *testing.T) {
		for i := 0; i < 1000; i++ {
			a, b, c, d := testutil.NearCoplanar3D[float32](rng)
			require.Equal(t, testutil.Orient3DSign(a, b, c, d), sign(robust.Orient3D(a, b, c, d)),
				"a=%v b=%v c=%v d=%v", a, b, c, d)
		}
	})

	t.Run("InCircle", func(t *testing.T) {
		for i := 0; i < 500; i++ {
			a, b, c, d := testutil.NearCocircular2D[float32](rng)
			require.Equal(t, testutil.InCircleSign(a, b, c, d), sign(robust.InCircle(a, b, c, d)),
				"a=%v b=%v c=%v d=%v", a, b, c, d)
		}
	})

	t.Run("InSphere", func(t *testing.T) {
		for i := 0; i < 250; i++ {
			a, b, c, d, e := testutil.NearCospherical3D[float32](rng)
			require.Equal(t, testutil.InSphereSign(a, b, c, d, e), sign(robust.InSphere(a, b, c, d, e)),
				"a=%v b=%v c=%v d=%v e=%v", a, b, c, d, e)
		}
	})
}

// Swapping two arguments flips the sign; this must hold even when the inputs
// are so close to degenerate that the naive evaluation is pure noise.
func TestAntisymmetry(t *testing.T) {
	rng := testutil.NewRNG(11)

	for i := 0; i < 500; i++ {
		a, b, c := testutil.NearCollinear2D[float64](rng)
		require.Equal(t, -sign(robust.Orient2D(a, b, c)), sign(robust.Orient2D(b, a, c)))
	}
	for i := 0; i < 500; i++ {
		a, b, c, d := testutil.NearCoplanar3D[float64](rng)
		require.Equal(t, -sign(robust.Orient3D(a, b, c, d)), sign(robust.Orient3D(b, a, c, d)))
	}
	for i := 0; i < 250; i++ {
		a, b, c, d := testutil.NearCocircular2D[float64](rng)
		require.Equal(t, -sign(robust.InCircle(a, b, c, d)), sign(robust.InCircle(b, a, c, d)))
	}
	for i := 0; i < 250; i++ {
		a, b, c, d, e := testutil.NearCospherical3D[float64](rng)
		require.Equal(t, -sign(robust.InSphere(a, b, c, d, e)), sign(robust.InSphere(b, a, c, d, e)))
	}
}

// Scaling every coordinate by a power of two is exact, so it must not change
// any sign.
func TestPowerOfTwoScaleInvariance(t *testing.T) {
	rng := testutil.NewRNG(13)
	scales := []float64{0x1p-30, 0x1p-1, 0x1p+1, 0x1p+30}

	scale2 := func(p [2]float64, s float64) [2]float64 {
		return [2]float64{p[0] * s, p[1] * s}
	}
	scale3 := func(p [3]float64, s float64) [3]float64 {
		return [3]float64{p[0] * s, p[1] * s, p[2] * s}
	}

	for i := 0; i < 200; i++ {
		a, b, c := testutil.NearCollinear2D[float64](rng)
		want := sign(robust.Orient2D(a, b, c))
		for _, s := range scales {
			require.Equal(t, want, sign(robust.Orient2D(scale2(a, s), scale2(b, s), scale2(c, s))),
				"scale=%v", s)
		}
	}

	for i := 0; i < 200; i++ {
		a, b, c, d := testutil.NearCoplanar3D[float64](rng)
		want := sign(robust.Orient3D(a, b, c, d))
		for _, s := range scales {
			require.Equal(t, want,
				sign(robust.Orient3D(scale3(a, s), scale3(b, s), scale3(c, s), scale3(d, s))),
				"scale=%v", s)
		}
	}
}

// The predicates are pure functions: the same input must return the same
// bits, in particular across concurrent callers.
func TestDeterministicUnderConcurrency(t *testing.T) {
	rng := testutil.NewRNG(17)
	a, b, c := testutil.NearCollinear2D[float64](rng)
	p, q, r, s, u := testutil.NearCospherical3D[float64](rng)

	wantOrient := math.Float64bits(robust.Orient2D(a, b, c))
	wantSphere := math.Float64bits(robust.InSphere(p, q, r, s, u))

	var g errgroup.Group
	for w := 0; w < 16; w++ {
		g.Go(func() error {
			for i := 0; i < 200; i++ {
				if got := math.Float64bits(robust.Orient2D(a, b, c)); got != wantOrient {
					return fmt.Errorf("orient2d bits %#x, want %#x", got, wantOrient)
				}
				if got := math.Float64bits(robust.InSphere(p, q, r, s, u)); got != wantSphere {
					return fmt.Errorf("insphere bits %#x, want %#x", got, wantSphere)
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

func BenchmarkOrient2D(b *testing.B) {
	b.Run("WellSeparated", func(b *testing.B) {
		pa := [2]float64{0.1, 0.2}
		pb := [2]float64{12.3, 4.5}
		pc := [2]float64{-3.2, 8.9}
		var sink float64
		for i := 0; i < b.N; i++ {
			sink += robust.Orient2D(pa, pb, pc)
		}
		_ = sink
	})

	b.Run("NearCollinear", func(b *testing.B) {
		rng := testutil.NewRNG(1)
		pa, pb, pc := testutil.NearCollinear2D[float64](rng)
		var sink float64
		for i := 0; i < b.N; i++ {
			sink += robust.Orient2D(pa, pb, pc)
		}
		_ = sink
	})
}

func BenchmarkInCircle(b *testing.B) {
	b.Run("WellSeparated", func(b *testing.B) {
		pa := [2]float64{1, 0}
		pb := [2]float64{0, 1}
		pc := [2]float64{-1, 0}
		pd := [2]float64{0.3, -0.4}
		var sink float64
		for i := 0; i < b.N; i++ {
			sink += robust.InCircle(pa, pb, pc, pd)
		}
		_ = sink
	})

	b.Run("NearCocircular", func(b *testing.B) {
		rng := testutil.NewRNG(2)
		pa, pb, pc, pd := testutil.NearCocircular2D[float64](rng)
		var sink float64
		for i := 0; i < b.N; i++ {
			sink += robust.InCircle(pa, pb, pc, pd)
		}
		_ = sink
	})
}

func BenchmarkInSphere(b *testing.B) {
	b.Run("WellSeparated", func(b *testing.B) {
		pa := [3]float64{1, 0, 0}
		pb := [3]float64{0, 1, 0}
		pc := [3]float64{0, 0, 1}
		pd := [3]float64{0, 0, -1}
		pe := [3]float64{0.1, 0.2, 0.3}
		var sink float64
		for i := 0; i < b.N; i++ {
			sink += robust.InSphere(pa, pb, pc, pd, pe)
		}
		_ = sink
	})

	b.Run("NearCospherical", func(b *testing.B) {
		rng := testutil.NewRNG(3)
		pa, pb, pc, pd, pe := testutil.NearCospherical3D[float64](rng)
		var sink float64
		for i := 0; i < b.N; i++ {
			sink += robust.InSphere(pa, pb, pc, pd, pe)
		}
		_ = sink
	})
}
