package rational

import "golang.org/x/exp/constraints"

// Abs returns v with its sign stripped.
func Abs[I constraints.Signed](v I) I {
	if v < 0 {
		return -v
	}
	return v
}

// GCD returns the greatest common divisor of a and b by Euclid's algorithm.
// The result is never negative, GCD(a, 0) == Abs(a), and GCD(0, 0) == 0.
func GCD[I constraints.Signed](a, b I) I {
	for b != 0 {
		a, b = b, a%b
	}
	return Abs(a)
}

// LCM returns the least common multiple of a and b, or 0 when either is 0.
// One operand is divided by the gcd before the multiply to keep the
// intermediate small.
func LCM[I constraints.Signed](a, b I) I {
	if a == 0 || b == 0 {
		return 0
	}
	return Abs(a / GCD(a, b) * b)
}
