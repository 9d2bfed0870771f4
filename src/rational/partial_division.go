package rational

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// PartialDivisionResult is the fraction left over after a numerator (or a
// product of numerators) and a divisor have been reduced by their common
// factors. The division it stands for is exact iff Exact reports true.
type PartialDivisionResult[I constraints.Signed] struct {
	PartialResult    I
	RemainingDivisor I
}

// FullDivision completes the division, truncating whatever the remaining
// divisor does not cancel.
func (r PartialDivisionResult[I]) FullDivision() I {
	return r.PartialResult / r.RemainingDivisor
}

// Exact reports whether FullDivision loses nothing. A remaining divisor of
// -1 only flips the sign, so it counts as exact.
func (r PartialDivisionResult[I]) Exact() bool {
	return r.RemainingDivisor == 1 || r.RemainingDivisor == -1
}

func (r PartialDivisionResult[I]) String() string {
	return fmt.Sprintf("%d/%d", r.PartialResult, r.RemainingDivisor)
}

// PartialDivision reduces numerator and divisor by their gcd. When both are
// zero the pair is returned unchanged rather than dividing by a zero gcd.
func PartialDivision[I constraints.Signed](numerator, divisor I) PartialDivisionResult[I] {
	g := GCD(numerator, divisor)
	if g == 0 {
		return PartialDivisionResult[I]{numerator, divisor}
	}
	return PartialDivisionResult[I]{numerator / g, divisor / g}
}

// PartialDivisionSeq folds PartialDivision across numerators sharing one
// divisor. Each numerator is reduced against the divisor left over from the
// previous step before it is multiplied into the running partial result, so
// common factors cancel pairwise instead of after a full product that could
// overflow. Fold order changes intermediate magnitudes, never the value.
func PartialDivisionSeq[I constraints.Signed](numerators []I, divisor I) PartialDivisionResult[I] {
	soFar := PartialDivisionResult[I]{1, divisor}
	for _, n := range numerators {
		cur := PartialDivision(n, soFar.RemainingDivisor)
		cur.PartialResult *= soFar.PartialResult
		soFar = cur
	}
	return soFar
}

// PartialDivisionSeqUnguarded is PartialDivisionSeq without the pairwise
// cancellation: the numerator product is formed first and reduced once.
// Overflow in the product wraps (two's complement) and is not detected; the
// caller opts into that trade by choosing an unguarded policy.
func PartialDivisionSeqUnguarded[I constraints.Signed](numerators []I, divisor I) PartialDivisionResult[I] {
	product := I(1)
	for _, n := range numerators {
		product *= n
	}
	return PartialDivision(product, divisor)
}
