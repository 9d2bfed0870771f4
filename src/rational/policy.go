package rational

import "golang.org/x/exp/constraints"

// Policy fixes the denominator and behavior toggles for one Rational
// instantiation. Implementations are stateless marker structs; every method
// must return the same value for the life of the program, since the type
// system treats two values with the same policy as sharing a denominator.
//
// Denominator must be positive. ReportInexact selects between returning
// *InexactError and truncating silently. Unguarded trades the gcd-based
// overflow avoidance for naive multiply-then-divide arithmetic.
type Policy[I constraints.Signed] interface {
	Denominator() I
	ReportInexact() bool
	Unguarded() bool
}

// denominatorOf is the one place a policy is materialized to read D.
func denominatorOf[I constraints.Signed, P Policy[I]]() I {
	var p P
	d := p.Denominator()
	if d <= 0 {
		panic("rational: policy denominator must be positive")
	}
	return d
}

func reportInexact[I constraints.Signed, P Policy[I]]() bool {
	var p P
	return p.ReportInexact()
}

func unguarded[I constraints.Signed, P Policy[I]]() bool {
	var p P
	return p.Unguarded()
}
