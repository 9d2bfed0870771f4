package geometry

// Point is a point or vector in 3-space with exact coordinates.
type Point[T Scalar[T]] struct {
	X, Y, Z T
}

func NewPoint[T Scalar[T]](x, y, z T) Point[T] {
	return Point[T]{X: x, Y: y, Z: z}
}

func (p Point[T]) Add(o Point[T]) Point[T] {
	return Point[T]{p.X.Add(o.X), p.Y.Add(o.Y), p.Z.Add(o.Z)}
}

func (p Point[T]) Sub(o Point[T]) Point[T] {
	return Point[T]{p.X.Sub(o.X), p.Y.Sub(o.Y), p.Z.Sub(o.Z)}
}

func (p Point[T]) Neg() Point[T] {
	return Point[T]{p.X.Neg(), p.Y.Neg(), p.Z.Neg()}
}

func (p Point[T]) Equal(o Point[T]) bool {
	return p.X.Equal(o.X) && p.Y.Equal(o.Y) && p.Z.Equal(o.Z)
}

func (p Point[T]) IsZero() bool {
	var zero T
	return p.X.Equal(zero) && p.Y.Equal(zero) && p.Z.Equal(zero)
}

// Scale multiplies every coordinate by s, passing through any exactness
// failure from the scalar type.
func (p Point[T]) Scale(s T) (Point[T], error) {
	x, err := p.X.Mul(s)
	if err != nil {
		return Point[T]{}, err
	}
	y, err := p.Y.Mul(s)
	if err != nil {
		return Point[T]{}, err
	}
	z, err := p.Z.Mul(s)
	if err != nil {
		return Point[T]{}, err
	}
	return Point[T]{x, y, z}, nil
}
