package geom

import "math"

// Matrix is a 2-D affine transform in SVG order:
//
//	| A C E |
//	| B D F |
//	| 0 0 1 |
type Matrix struct {
	A, B, C, D, E, F float64
}

// Identity returns the identity matrix.
func Identity() Matrix { return Matrix{A: 1, D: 1} }

// TranslateMatrix returns a translation by (x, y).
func TranslateMatrix(x, y float64) Matrix { return Matrix{A: 1, D: 1, E: x, F: y} }

// ScaleMatrix returns a scale by (x, y).
func ScaleMatrix(x, y float64) Matrix { return Matrix{A: x, D: y} }

// RotateMatrix returns a rotation by deg degrees around the origin.
func RotateMatrix(deg float64) Matrix {
	sin, cos := math.Sincos(Rad(deg))
	return Matrix{A: cos, B: sin, C: -sin, D: cos}
}

// Multiply returns m·n, i.e. n is applied first and m second.
func (m Matrix) Multiply(n Matrix) Matrix {
	return Matrix{
		A: m.A*n.A + m.C*n.B,
		B: m.B*n.A + m.D*n.B,
		C: m.A*n.C + m.C*n.D,
		D: m.B*n.C + m.D*n.D,
		E: m.A*n.E + m.C*n.F + m.E,
		F: m.B*n.E + m.D*n.F + m.F,
	}
}

// Apply transforms p.
func (m Matrix) Apply(p Point) Point {
	return Point{
		X: m.A*p.X + m.C*p.Y + m.E,
		Y: m.B*p.X + m.D*p.Y + m.F,
	}
}

// Invert returns the inverse of m. A singular matrix yields the identity.
func (m Matrix) Invert() Matrix {
	det := m.A*m.D - m.B*m.C
	if det == 0 {
		return Identity()
	}
	inv := 1 / det
	return Matrix{
		A: m.D * inv,
		B: -m.B * inv,
		C: -m.C * inv,
		D: m.A * inv,
		E: (m.C*m.F - m.D*m.E) * inv,
		F: (m.B*m.E - m.A*m.F) * inv,
	}
}
