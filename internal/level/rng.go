package level

import "math/rand"

// Rng wraps a seeded source with the distributions level building needs.
type Rng struct {
	*rand.Rand
}

// NewRng wraps r.
func NewRng(r *rand.Rand) *Rng {
	return &Rng{Rand: r}
}

// Int returns a value in [lo, hi). If hi <= lo it returns lo.
func (r *Rng) Int(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo)
}

// Below returns a value in [0, n). If n <= 0 it returns 0.
func (r *Rng) Below(n int) int {
	return r.Int(0, n)
}

// IntInclusive returns a value in [0, n].
func (r *Rng) IntInclusive(n int) int {
	return r.Int(0, n+1)
}

// TriangleInt returns a value in [center-spread, center+spread], most often
// near center.
func (r *Rng) TriangleInt(center, spread int) int {
	if spread <= 0 {
		return center
	}
	x := r.IntInclusive(spread)
	y := r.IntInclusive(spread)
	if x <= y {
		return center + x
	}
	return center - spread - 1 + x
}

// Chance returns true percent times out of a hundred.
func (r *Rng) Chance(percent int) bool {
	return r.Intn(100) < percent
}
