package rational

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Rational is a rational number whose denominator is fixed by the policy P.
// Only the numerator is stored; the represented value is numerator/D. The
// fraction is never auto-simplified: the numerator is the literal scaled
// value, common factors with D and all.
//
// The zero value is 0/D and ready to use. All operations are pure except
// Inc and Dec, which step the value in place by one whole unit.
type Rational[I constraints.Signed, P Policy[I]] struct {
	numerator I
}

// fromNumerator bypasses exactness checking for numerators that are already
// scaled by D. This is the only way a Rational is built internally.
func fromNumerator[I constraints.Signed, P Policy[I]](n I) Rational[I, P] {
	return Rational[I, P]{numerator: n}
}

// FromInt returns v as a Rational. The caller must ensure |v|*D fits in I;
// the scaling multiply is not checked.
func FromInt[P Policy[I], I constraints.Signed](v I) Rational[I, P] {
	return fromNumerator[I, P](v * denominatorOf[I, P]())
}

// FromFraction returns numerator/denominator scaled to the policy
// denominator. When the ratio is not exactly representable at D, a policy
// that reports inexactness returns a *InexactError (whose MinimumFixFactor
// names the D multiplier that would fix it) and any other policy silently
// truncates. A zero denominator yields an error with fix factor 0 when
// reporting, and panics like integer division by zero otherwise.
func FromFraction[P Policy[I], I constraints.Signed](numerator, denominator I) (Rational[I, P], error) {
	d := denominatorOf[I, P]()
	if denominator == d {
		return fromNumerator[I, P](numerator), nil
	}

	res := divideSeq[I, P]([]I{numerator, d}, denominator)
	if reportInexact[I, P]() && !res.Exact() {
		var zero Rational[I, P]
		op := fmt.Sprintf("%d/%d as %T", numerator, denominator, zero)
		return zero, newInexactError(KindConstruction, op, res)
	}
	return fromNumerator[I, P](res.FullDivision()), nil
}

// FromFloat returns the nearest representable Rational to v. The conversion
// is lossy by contract and never fails; it is not subject to exactness
// checking. A float of sufficiently high magnitude has too little resolution
// for the result to be accurate.
func FromFloat[P Policy[I], I constraints.Signed](v float64) Rational[I, P] {
	return fromNumerator[I, P](I(math.Round(v * float64(denominatorOf[I, P]()))))
}

// Convert re-represents a Rational under another integer type and policy.
// The reduction runs in the source integer type, so a destination
// denominator that does not fit the source type is an error. A denominator
// change that cannot be made exactly is reported per the destination policy;
// a final result out of the destination type's range is an error as well.
func Convert[P2 Policy[I2], I2 constraints.Signed, I1 constraints.Signed, P1 Policy[I1]](other Rational[I1, P1]) (Rational[I2, P2], error) {
	var zero Rational[I2, P2]
	d := denominatorOf[I2, P2]()
	d2 := I1(d)
	if I2(d2) != d {
		return zero, fmt.Errorf("rational: denominator %d does not fit %T", d, other.numerator)
	}

	if other.Denominator() == d2 {
		n := other.numerator
		if I1(I2(n)) != n {
			return zero, fmt.Errorf("rational: %v does not fit %T", other, zero)
		}
		return fromNumerator[I2, P2](I2(n)), nil
	}

	nums := []I1{other.numerator, d2}
	var res PartialDivisionResult[I1]
	if unguarded[I2, P2]() {
		res = PartialDivisionSeqUnguarded(nums, other.Denominator())
	} else {
		res = PartialDivisionSeq(nums, other.Denominator())
	}
	if reportInexact[I2, P2]() && !res.Exact() {
		op := fmt.Sprintf("%v as %T", other, zero)
		return zero, newInexactError(KindConstruction, op, res)
	}
	full := res.FullDivision()
	if I1(I2(full)) != full {
		return zero, fmt.Errorf("rational: %v does not fit %T", other, zero)
	}
	return fromNumerator[I2, P2](I2(full)), nil
}

// divideSeq picks the reduction path the policy asked for.
func divideSeq[I constraints.Signed, P Policy[I]](numerators []I, divisor I) PartialDivisionResult[I] {
	if unguarded[I, P]() {
		return PartialDivisionSeqUnguarded(numerators, divisor)
	}
	return PartialDivisionSeq(numerators, divisor)
}

// Numerator returns the stored, unsimplified numerator.
func (r Rational[I, P]) Numerator() I {
	return r.numerator
}

// Denominator returns the policy's fixed denominator.
func (r Rational[I, P]) Denominator() I {
	return denominatorOf[I, P]()
}

// Float64 returns an approximate floating form of the value. It is not
// round-trip safe for large denominators; that inadequacy is the reason
// this type exists.
func (r Rational[I, P]) Float64() float64 {
	return float64(r.numerator) / float64(r.Denominator())
}

// Simplified returns the value as a numerator/denominator pair reduced by
// their gcd. The receiver is not changed; the reduced form cannot be
// reflected back into a Rational of this instantiation.
func (r Rational[I, P]) Simplified() (numerator, denominator I) {
	res := PartialDivision(r.numerator, r.Denominator())
	return res.PartialResult, res.RemainingDivisor
}

// String renders the unsimplified fraction as "<numerator>/<D>".
func (r Rational[I, P]) String() string {
	return fmt.Sprintf("%d/%d", r.numerator, r.Denominator())
}

func (r Rational[I, P]) IsZero() bool {
	return r.numerator == 0
}

// One returns the multiplicative identity of this instantiation.
func (r Rational[I, P]) One() Rational[I, P] {
	return fromNumerator[I, P](r.Denominator())
}

func (r Rational[I, P]) Abs() Rational[I, P] {
	return fromNumerator[I, P](Abs(r.numerator))
}

// Inc steps the value up by one whole unit in place.
func (r *Rational[I, P]) Inc() {
	r.numerator += r.Denominator()
}

// Dec steps the value down by one whole unit in place.
func (r *Rational[I, P]) Dec() {
	r.numerator -= r.Denominator()
}

func (r Rational[I, P]) Neg() Rational[I, P] {
	return fromNumerator[I, P](-r.numerator)
}

// Add is exact: both numerators already share D.
func (r Rational[I, P]) Add(o Rational[I, P]) Rational[I, P] {
	return fromNumerator[I, P](r.numerator + o.numerator)
}

// AddInt is exact; the integer is scaled by D.
func (r Rational[I, P]) AddInt(v I) Rational[I, P] {
	return fromNumerator[I, P](r.numerator + v*r.Denominator())
}

func (r Rational[I, P]) Sub(o Rational[I, P]) Rational[I, P] {
	return fromNumerator[I, P](r.numerator - o.numerator)
}

// SubInt returns r - v.
func (r Rational[I, P]) SubInt(v I) Rational[I, P] {
	return fromNumerator[I, P](r.numerator - v*r.Denominator())
}

// SubFromInt returns v - r.
func (r Rational[I, P]) SubFromInt(v I) Rational[I, P] {
	return fromNumerator[I, P](v*r.Denominator() - r.numerator)
}

// Mul multiplies two values of the same instantiation. The numerator
// product over D is reduced pairwise first (unless the policy is
// unguarded), and an inexact result is reported per the policy.
func (r Rational[I, P]) Mul(o Rational[I, P]) (Rational[I, P], error) {
	res := divideSeq[I, P]([]I{r.numerator, o.numerator}, r.Denominator())
	if reportInexact[I, P]() && !res.Exact() {
		return Rational[I, P]{}, newInexactError(KindOperation, fmt.Sprintf("%v * %v", r, o), res)
	}
	return fromNumerator[I, P](res.FullDivision()), nil
}

// MulInt scales by an integer. Always exact; overflow is the caller's
// lookout, as with FromInt.
func (r Rational[I, P]) MulInt(v I) Rational[I, P] {
	return fromNumerator[I, P](r.numerator * v)
}

// Div divides two values of the same instantiation.
func (r Rational[I, P]) Div(o Rational[I, P]) (Rational[I, P], error) {
	res := divideSeq[I, P]([]I{r.numerator, r.Denominator()}, o.numerator)
	if reportInexact[I, P]() && !res.Exact() {
		return Rational[I, P]{}, newInexactError(KindOperation, fmt.Sprintf("%v / %v", r, o), res)
	}
	return fromNumerator[I, P](res.FullDivision()), nil
}

// DivInt divides by an integer.
func (r Rational[I, P]) DivInt(v I) (Rational[I, P], error) {
	res := PartialDivision(r.numerator, v)
	if reportInexact[I, P]() && !res.Exact() {
		return Rational[I, P]{}, newInexactError(KindOperation, fmt.Sprintf("%v / %d", r, v), res)
	}
	return fromNumerator[I, P](res.FullDivision()), nil
}

// IntDivide returns v / r. The numerator sequence carries D twice: once to
// invert r and once to scale the integer.
func IntDivide[I constraints.Signed, P Policy[I]](v I, r Rational[I, P]) (Rational[I, P], error) {
	d := r.Denominator()
	res := divideSeq[I, P]([]I{v, d, d}, r.numerator)
	if reportInexact[I, P]() && !res.Exact() {
		return Rational[I, P]{}, newInexactError(KindOperation, fmt.Sprintf("%d / %v", v, r), res)
	}
	return fromNumerator[I, P](res.FullDivision()), nil
}

// Mod is exact: both numerators already share D.
func (r Rational[I, P]) Mod(o Rational[I, P]) Rational[I, P] {
	return fromNumerator[I, P](r.numerator % o.numerator)
}

func (r Rational[I, P]) Equal(o Rational[I, P]) bool {
	return r.numerator == o.numerator
}

func (r Rational[I, P]) EqualInt(v I) bool {
	return r.numerator == v*r.Denominator()
}

func (r Rational[I, P]) Less(o Rational[I, P]) bool {
	return r.numerator < o.numerator
}

func (r Rational[I, P]) Greater(o Rational[I, P]) bool {
	return o.numerator < r.numerator
}

func (r Rational[I, P]) LessEq(o Rational[I, P]) bool {
	return !o.Less(r)
}

func (r Rational[I, P]) GreaterEq(o Rational[I, P]) bool {
	return !r.Less(o)
}

// LessInt reports r < v without forming v*D when the policy is guarded: the
// truncated quotients decide unless they tie, and the tie is broken by a
// partial division whose remaining divisor carries r's sign.
func (r Rational[I, P]) LessInt(v I) bool {
	d := r.Denominator()
	if unguarded[I, P]() {
		return r.numerator < v*d
	}
	switch q := r.numerator / d; {
	case q < v:
		return true
	case q > v:
		return false
	}
	res := PartialDivisionSeq([]I{v, d}, r.numerator)
	return res.RemainingDivisor < res.PartialResult
}

// GreaterInt reports v < r, with the same overflow avoidance as LessInt.
func (r Rational[I, P]) GreaterInt(v I) bool {
	d := r.Denominator()
	if unguarded[I, P]() {
		return v*d < r.numerator
	}
	switch q := r.numerator / d; {
	case v < q:
		return true
	case v > q:
		return false
	}
	res := PartialDivisionSeq([]I{v, d}, r.numerator)
	return res.PartialResult < res.RemainingDivisor
}

func (r Rational[I, P]) LessEqInt(v I) bool {
	return !r.GreaterInt(v)
}

func (r Rational[I, P]) GreaterEqInt(v I) bool {
	return !r.LessInt(v)
}
