package geometry

// Dot returns the scalar product of two points taken as vectors.
func Dot[T Scalar[T]](a, b Point[T]) (T, error) {
	var sum T
	for _, m := range [][2]T{{a.X, b.X}, {a.Y, b.Y}, {a.Z, b.Z}} {
		p, err := m[0].Mul(m[1])
		if err != nil {
			var zero T
			return zero, err
		}
		sum = sum.Add(p)
	}
	return sum, nil
}

// Cross returns the vector product of two points taken as vectors. When not
// zero, the result is perpendicular to both inputs, oriented by the
// right-hand rule.
func Cross[T Scalar[T]](a, b Point[T]) (Point[T], error) {
	x, err := det2(a.Y, a.Z, b.Y, b.Z)
	if err != nil {
		return Point[T]{}, err
	}
	y, err := det2(a.Z, a.X, b.Z, b.X)
	if err != nil {
		return Point[T]{}, err
	}
	z, err := det2(a.X, a.Y, b.X, b.Y)
	if err != nil {
		return Point[T]{}, err
	}
	return Point[T]{x, y, z}, nil
}

// det2 is l0*r1 - l1*r0.
func det2[T Scalar[T]](l0, l1, r0, r1 T) (T, error) {
	a, err := l0.Mul(r1)
	if err != nil {
		var zero T
		return zero, err
	}
	b, err := l1.Mul(r0)
	if err != nil {
		var zero T
		return zero, err
	}
	return a.Sub(b), nil
}
