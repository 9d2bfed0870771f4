package rational

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Kind says which stage of a Rational's life produced an InexactError.
type Kind int

const (
	// KindConstruction marks a fraction that cannot be represented exactly
	// at the fixed denominator.
	KindConstruction Kind = iota
	// KindOperation marks a multiplication or division whose result cannot
	// be represented exactly at the fixed denominator.
	KindOperation
)

func (k Kind) String() string {
	if k == KindConstruction {
		return "construction"
	}
	return "operation"
}

// InexactError reports that an operation's true result is not representable
// at the fixed denominator. It keeps the unreduced partial-division pair and
// the smallest factor the denominator would need to be multiplied by for the
// identical operation to come out exact.
type InexactError[I constraints.Signed] struct {
	Kind             Kind
	Op               string // textual form of the violating operation
	PartialResult    I
	RemainingDivisor I

	minimumFixFactor I
}

func newInexactError[I constraints.Signed](kind Kind, op string, r PartialDivisionResult[I]) *InexactError[I] {
	return &InexactError[I]{
		Kind:             kind,
		Op:               op,
		PartialResult:    r.PartialResult,
		RemainingDivisor: r.RemainingDivisor,
		minimumFixFactor: fixFactor(r.PartialResult, r.RemainingDivisor),
	}
}

// fixFactor is the part of the remaining divisor that the partial result
// cannot cancel. Reported non-negative so lcm folds stay well-defined when
// the divisor carried a sign.
func fixFactor[I constraints.Signed](partial, divisor I) I {
	g := GCD(partial, divisor)
	if g == 0 {
		return 0
	}
	return Abs(divisor / g)
}

func (e *InexactError[I]) Error() string {
	return fmt.Sprintf("inexact %s in (%s): %d/%d leaves a divisor of %d",
		e.Kind, e.Op, e.PartialResult, e.RemainingDivisor, e.minimumFixFactor)
}

// MinimumFixFactor returns the least integer the denominator must be
// multiplied by for the operation that produced this error to be exact.
func (e *InexactError[I]) MinimumFixFactor() I {
	return e.minimumFixFactor
}

// AccumulateFixFactor folds this error's fix factor into running via lcm,
// resetting running to 1 first if it was not positive. After sweeping a
// workload, running holds the single multiplier that would make every
// observed operation exact at the enlarged denominator.
func (e *InexactError[I]) AccumulateFixFactor(running *I) I {
	if *running <= 0 {
		*running = 1
	}
	*running = LCM(*running, e.minimumFixFactor)
	return *running
}
