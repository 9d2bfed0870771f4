package geometry

// Matrix is a 4x4 matrix of exact scalars, stored as an array of columns,
// for affine transforms of rational geometry. Arbitrary rotation is off the
// table with rational members; the envisioned uses are quarter-turn
// rotations, reflections, scalings, and translations.
type Matrix[T Scalar[T]] struct {
	columns [4][4]T
}

// NewIdentity returns the identity transform.
func NewIdentity[T Scalar[T]]() Matrix[T] {
	var m Matrix[T]
	var one T
	one = one.One()
	for i := 0; i < 4; i++ {
		m.columns[i][i] = one
	}
	return m
}

func (m Matrix[T]) At(row, column int) T {
	return m.columns[column][row]
}

func (m *Matrix[T]) Set(row, column int, v T) {
	m.columns[column][row] = v
}

func (m Matrix[T]) Column(which int) [4]T {
	return m.columns[which]
}

func (m Matrix[T]) Row(which int) [4]T {
	var row [4]T
	for c := 0; c < 4; c++ {
		row[c] = m.columns[c][which]
	}
	return row
}

func (m *Matrix[T]) SetColumn(which int, v [4]T) {
	m.columns[which] = v
}

func (m *Matrix[T]) SetRow(which int, v [4]T) {
	for c := 0; c < 4; c++ {
		m.columns[c][which] = v[c]
	}
}

// Translation returns the transform that adds the given offset to a point.
func Translation[T Scalar[T]](offset Point[T]) Matrix[T] {
	m := NewIdentity[T]()
	m.columns[3][0] = offset.X
	m.columns[3][1] = offset.Y
	m.columns[3][2] = offset.Z
	return m
}

// Apply transforms p as a homogeneous point (w = 1). An exactness failure
// from the scalar type is passed through.
func (m Matrix[T]) Apply(p Point[T]) (Point[T], error) {
	var one T
	one = one.One()
	h := [4]T{p.X, p.Y, p.Z, one}

	var out [4]T
	for r := 0; r < 4; r++ {
		var sum T
		for c := 0; c < 4; c++ {
			v, err := m.columns[c][r].Mul(h[c])
			if err != nil {
				return Point[T]{}, err
			}
			sum = sum.Add(v)
		}
		out[r] = sum
	}
	return Point[T]{out[0], out[1], out[2]}, nil
}

// Mul composes two transforms. Column j of the result is m applied to
// column j of o.
func (m Matrix[T]) Mul(o Matrix[T]) (Matrix[T], error) {
	var out Matrix[T]
	for j := 0; j < 4; j++ {
		for r := 0; r < 4; r++ {
			var sum T
			for c := 0; c < 4; c++ {
				v, err := m.columns[c][r].Mul(o.columns[j][c])
				if err != nil {
					return Matrix[T]{}, err
				}
				sum = sum.Add(v)
			}
			out.columns[j][r] = sum
		}
	}
	return out, nil
}
