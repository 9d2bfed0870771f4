// Package rational implements a fixed-denominator rational number type.
//
// Every value of a given Rational instantiation shares one positive
// denominator, fixed by a Policy type at compile time. Arithmetic between
// values of the same instantiation therefore never computes a common
// denominator at run time: addition and subtraction are single integer
// operations on the stored numerators, and multiplication and division
// reduce operands pairwise by their gcd before any product is formed, which
// bounds intermediate magnitudes.
//
// A result whose true value is not representable at the fixed denominator
// is reported through *InexactError when the policy asks for it, or
// truncated silently when it does not. The error carries the smallest
// factor the denominator would have to be multiplied by for the identical
// operation to come out exact, and fix factors from many violations can be
// folded together to size a denominator for a whole workload.
//
// A policy is a stateless struct naming the denominator and the behavior
// toggles:
//
//	type Twelfths struct{}
//
//	func (Twelfths) Denominator() int64 { return 12 }
//	func (Twelfths) ReportInexact() bool { return true }
//	func (Twelfths) Unguarded() bool { return false }
//
//	r, err := rational.FromFraction[Twelfths](int64(2), 3) // 8/12
package rational
