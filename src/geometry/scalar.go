// Package geometry provides point, direction, and matrix types over any
// exact scalar. The scalar is a type parameter: the rational package's
// fixed-denominator type fits, and so does anything else with the same
// method set, full precision or used inside its domain of full accuracy.
package geometry

// Scalar is the method set geometry types need from a coordinate type. The
// zero value of a Scalar must be its additive identity, and One its
// multiplicative identity. Mul may fail: an exact scalar is allowed to
// reject a product it cannot represent, and the geometry types pass that
// failure through.
type Scalar[T any] interface {
	Add(T) T
	Sub(T) T
	Neg() T
	Mul(T) (T, error)
	Equal(T) bool
	Less(T) bool
	One() T
}
