package layout

import (
	"slices"

	"github.com/matzehuels/steeb/pkg/geom"
)

// Hand is the key geometry of one half plus the transform that places it.
type Hand struct {
	Fingers   []KeySlot
	Thumbs    []KeySlot
	Anchor    geom.Point // thumb arc center
	Transform geom.Transform
}

// Clone returns a deep copy of h. Changing the clone never affects h.
func (h Hand) Clone() Hand {
	return Hand{
		Fingers:   slices.Clone(h.Fingers),
		Thumbs:    slices.Clone(h.Thumbs),
		Anchor:    h.Anchor,
		Transform: slices.Clone(h.Transform),
	}
}

// Slots returns the finger slots followed by the thumb slots.
func (h Hand) Slots() []KeySlot {
	return slices.Concat(h.Fingers, h.Thumbs)
}

// Placed returns the key centers after applying the hand transform, in the
// order of [Hand.Slots].
func (h Hand) Placed() []geom.Point {
	m := h.Transform.Matrix()
	slots := h.Slots()
	out := make([]geom.Point, len(slots))
	for i, s := range slots {
		out[i] = m.Apply(s.Center)
	}
	return out
}
