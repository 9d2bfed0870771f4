package geometry

import (
	"golang.org/x/exp/constraints"

	"ratgeo/src/rational"
)

// Direction is a direction in 3-space held as integer proportions. It fills
// the role unit vectors play elsewhere: unit length is the exception, not
// the rule, when coordinates must stay rational, so no promise is made
// about the magnitude of the stored triple. The triple is always reduced to
// its smallest integer form, which makes equality a plain comparison.
type Direction[I constraints.Signed] struct {
	proportions [3]I
}

// NewDirection builds a Direction from raw proportions, normalizing them.
// The all-zero triple stays all-zero.
func NewDirection[I constraints.Signed](x, y, z I) Direction[I] {
	d := Direction[I]{proportions: [3]I{x, y, z}}
	d.normalize()
	return d
}

// Ratio is a numerator/denominator pair for building a Direction out of
// rational proportions.
type Ratio[I constraints.Signed] struct {
	Num, Den I
}

// DirectionFromRatios scales rational proportions to a common denominator
// (the lcm of the three) and normalizes the resulting integer triple.
func DirectionFromRatios[I constraints.Signed](x, y, z Ratio[I]) Direction[I] {
	l := rational.LCM(rational.LCM(x.Den, y.Den), z.Den)
	return NewDirection(
		x.Num*(l/x.Den),
		y.Num*(l/y.Den),
		z.Num*(l/z.Den),
	)
}

// normalize divides the proportions by their gcd. Signs are untouched: the
// gcd is non-negative, so {-2,4,6} reduces to {-1,2,3}.
func (d *Direction[I]) normalize() {
	g := d.proportions[0]
	for _, p := range d.proportions[1:] {
		g = rational.GCD(g, p)
	}
	if g == 0 {
		return
	}
	for i := range d.proportions {
		d.proportions[i] /= g
	}
}

// Proportions returns the reduced integer proportions.
func (d Direction[I]) Proportions() (x, y, z I) {
	return d.proportions[0], d.proportions[1], d.proportions[2]
}

func (d Direction[I]) At(axis int) I {
	return d.proportions[axis]
}

// FirstPresentAxis returns the index of the first nonzero proportion, or 3
// for the null direction.
func (d Direction[I]) FirstPresentAxis() int {
	for i, p := range d.proportions {
		if p != 0 {
			return i
		}
	}
	return len(d.proportions)
}

// Equal is exact: the stored form is always reduced and unique.
func (d Direction[I]) Equal(o Direction[I]) bool {
	return d.proportions == o.proportions
}

// Less orders directions lexicographically. Only useful where an arbitrary
// total order is required, such as sorted containers.
func (d Direction[I]) Less(o Direction[I]) bool {
	for i := range d.proportions {
		if d.proportions[i] != o.proportions[i] {
			return d.proportions[i] < o.proportions[i]
		}
	}
	return false
}

// MutualOrthogonal finds one of the two directions orthogonal to both
// inputs, by cross product; opposite selects the other. Parallel inputs
// give the null direction.
func MutualOrthogonal[I constraints.Signed](l, r Direction[I], opposite bool) Direction[I] {
	lp, rp := l.proportions, r.proportions
	x := lp[1]*rp[2] - lp[2]*rp[1]
	y := lp[2]*rp[0] - lp[0]*rp[2]
	z := lp[0]*rp[1] - lp[1]*rp[0]
	if opposite {
		x, y, z = -x, -y, -z
	}
	return NewDirection(x, y, z)
}
