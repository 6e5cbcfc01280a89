package geom

import (
	"strconv"
	"strings"
)

// OpKind identifies a single transform operation.
type OpKind int

const (
	OpTranslate OpKind = iota
	OpScale
	OpRotate
)

// Op is one SVG transform operation. Rotate uses only X (degrees).
type Op struct {
	Kind OpKind
	X, Y float64
}

// Transform is an ordered list of operations, applied right to left to
// coordinates exactly like the SVG transform attribute.
//
// Builder methods return a new Transform and never modify the receiver.
type Transform []Op

// Translate appends a translation.
func (t Transform) Translate(x, y float64) Transform {
	return t.with(Op{Kind: OpTranslate, X: x, Y: y})
}

// Scale appends a scale.
func (t Transform) Scale(x, y float64) Transform {
	return t.with(Op{Kind: OpScale, X: x, Y: y})
}

// Rotate appends a rotation by deg degrees about the origin.
func (t Transform) Rotate(deg float64) Transform {
	return t.with(Op{Kind: OpRotate, X: deg})
}

func (t Transform) with(op Op) Transform {
	out := make(Transform, len(t), len(t)+1)
	copy(out, t)
	return append(out, op)
}

// Matrix composes the operations into a single affine matrix.
func (t Transform) Matrix() Matrix {
	m := Identity()
	for _, op := range t {
		switch op.Kind {
		case OpTranslate:
			m = m.Multiply(TranslateMatrix(op.X, op.Y))
		case OpScale:
			m = m.Multiply(ScaleMatrix(op.X, op.Y))
		case OpRotate:
			m = m.Multiply(RotateMatrix(op.X))
		}
	}
	return m
}

// String renders the transform as an SVG attribute value.
func (t Transform) String() string {
	parts := make([]string, 0, len(t))
	for _, op := range t {
		switch op.Kind {
		case OpTranslate:
			parts = append(parts, "translate("+Fmt(op.X)+", "+Fmt(op.Y)+")")
		case OpScale:
			parts = append(parts, "scale("+Fmt(op.X)+", "+Fmt(op.Y)+")")
		case OpRotate:
			parts = append(parts, "rotate("+Fmt(op.X)+")")
		}
	}
	return strings.Join(parts, " ")
}

// Fmt formats a coordinate with the shortest representation that round-trips.
func Fmt(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
