// Package geom provides the 2-D primitives used by the keyboard layout engine.
//
// All lengths are millimeters and all public angles are degrees, matching the
// units of the layout configuration. Conversion to radians happens only at the
// trigonometric boundary via [Rad].
//
// # Transforms
//
// A [Transform] is an ordered list of SVG-style operations (translate, scale,
// rotate). It renders to a `transform` attribute value with [Transform.String]
// and composes to an affine [Matrix] with [Transform.Matrix], so the same value
// drives both the drawing output and geometric checks:
//
//	t := geom.Transform{}.Translate(120, 0).Scale(-1, 1).Rotate(20)
//	fmt.Println(t)                       // translate(120, 0) scale(-1, 1) rotate(20)
//	p := t.Matrix().Apply(geom.Pt(9.5, 9.5))
package geom
