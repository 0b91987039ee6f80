package testutil

import (
	"math"
	"math/rand"
	"sync"
)

// Float is the set of coordinate types the helpers generate.
type Float interface {
	float32 | float64
}

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), //nolint:gosec // deterministic test data
		seed: seed,
	}
}

// Seed returns the seed the RNG was created with.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Uniform returns a uniformly distributed value in [lo, hi).
func (r *RNG) Uniform(lo, hi float64) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	return lo + (hi-lo)*r.rand.Float64()
}

// IntN returns a uniformly distributed int in [0, n).
func (r *RNG) IntN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.rand.Intn(n)
}

// Point2 returns a random 2D point with coordinates in [lo, hi).
func Point2[T Float](r *RNG, lo, hi float64) [2]T {
	return [2]T{T(r.Uniform(lo, hi)), T(r.Uniform(lo, hi))}
}

// Point3 returns a random 3D point with coordinates in [lo, hi).
func Point3[T Float](r *RNG, lo, hi float64) [3]T {
	return [3]T{T(r.Uniform(lo, hi)), T(r.Uniform(lo, hi)), T(r.Uniform(lo, hi))}
}

// Perturb moves x by up to 3 ulps in a random direction. Used to push
// exactly-degenerate configurations just off degeneracy, where only the
// deeper evaluation stages can still certify the sign.
func Perturb[T Float](r *RNG, x T) T {
	steps := r.IntN(7) - 3
	dir := math.Inf(1)
	if steps < 0 {
		steps = -steps
		dir = math.Inf(-1)
	}
	for i := 0; i < steps; i++ {
		x = nextAfter(x, dir)
	}
	return x
}

// NearCollinear2D returns a, b and a third point on the segment a-b, rounded
// to T and perturbed by a few ulps. The resulting orientation determinant is
// far below the stage-1 error bound.
func NearCollinear2D[T Float](r *RNG) (a, b, c [2]T) {
	a = Point2[T](r, -1, 1)
	b = Point2[T](r, -1, 1)
	t := T(r.Uniform(0, 1))
	c = [2]T{
		Perturb(r, a[0]+t*(b[0]-a[0])),
		Perturb(r, a[1]+t*(b[1]-a[1])),
	}
	return a, b, c
}

// NearCoplanar3D returns a, b, c and a fourth point in their plane, rounded
// to T and perturbed by a few ulps.
func NearCoplanar3D[T Float](r *RNG) (a, b, c, d [3]T) {
	a = Point3[T](r, -1, 1)
	b = Point3[T](r, -1, 1)
	c = Point3[T](r, -1, 1)
	s := T(r.Uniform(0, 1))
	t := T(r.Uniform(0, 1))
	for i := 0; i < 3; i++ {
		d[i] = Perturb(r, a[i]+s*(b[i]-a[i])+t*(c[i]-a[i]))
	}
	return a, b, c, d
}

// NearCocircular2D returns four points on a common circle, rounded to T and
// perturbed by a few ulps. The first three wind counter-clockwise.
func NearCocircular2D[T Float](r *RNG) (a, b, c, d [2]T) {
	cx := r.Uniform(-1, 1)
	cy := r.Uniform(-1, 1)
	rad := r.Uniform(0.5, 2)

	// Ascending angles keep a, b, c counter-clockwise.
	t0 := r.Uniform(0, 2)
	t1 := t0 + r.Uniform(0.1, 2)
	t2 := t1 + r.Uniform(0.1, 2)
	t3 := t2 + r.Uniform(0.1, 2)

	onCircle := func(t float64) [2]T {
		return [2]T{
			Perturb(r, T(cx+rad*math.Cos(t))),
			Perturb(r, T(cy+rad*math.Sin(t))),
		}
	}
	return onCircle(t0), onCircle(t1), onCircle(t2), onCircle(t3)
}

// NearCospherical3D returns five points on a common sphere, rounded to T and
// perturbed by a few ulps.
func NearCospherical3D[T Float](r *RNG) (a, b, c, d, e [3]T) {
	cx := r.Uniform(-1, 1)
	cy := r.Uniform(-1, 1)
	cz := r.Uniform(-1, 1)
	rad := r.Uniform(0.5, 2)

	onSphere := func() [3]T {
		theta := r.Uniform(0, 2*math.Pi)
		phi := r.Uniform(0, math.Pi)
		return [3]T{
			Perturb(r, T(cx+rad*math.Sin(phi)*math.Cos(theta))),
			Perturb(r, T(cy+rad*math.Sin(phi)*math.Sin(theta))),
			Perturb(r, T(cz+rad*math.Cos(phi))),
		}
	}
	return onSphere(), onSphere(), onSphere(), onSphere(), onSphere()
}

func nextAfter[T Float](x T, dir float64) T {
	switch v := any(x).(type) {
	case float32:
		return T(math.Nextafter32(v, float32(dir)))
	case float64:
		return T(math.Nextafter(v, dir))
	}
	return x
}
