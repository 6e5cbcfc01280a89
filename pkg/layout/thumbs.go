package layout

import (
	"math"

	"github.com/matzehuels/steeb/pkg/config"
	"github.com/matzehuels/steeb/pkg/geom"
)

// ThumbAnchor returns the center of the thumb arc, offset from the bottom key
// of the innermost finger column.
func ThumbAnchor(cfg config.LayoutConfig, innerLower geom.Point) geom.Point {
	a := cfg.Thumb.Anchor
	sin, cos := math.Sincos(geom.Rad(a.Rotation))
	return geom.Pt(
		innerLower.X-a.Offset.Horizontal-cfg.Thumb.Radius*sin,
		innerLower.Y+a.Offset.Vertical+cfg.Thumb.Radius*cos,
	)
}

// ThumbAngles returns the placement angle of each thumb key. The running angle
// advances by every key's rotation; a fixed angle overrides placement only.
func ThumbAngles(keys []config.ThumbKey) []float64 {
	out := make([]float64, len(keys))
	angle := 0.0
	for i, k := range keys {
		angle += k.Rotation
		out[i] = angle
		if k.Fixed {
			out[i] = k.Angle
		}
	}
	return out
}

// ThumbCapTop is the top edge of a thumb cap of the given size, relative to
// the arc point. Taller keys grow away from the anchor.
func ThumbCapTop(size, capHeight float64) float64 {
	return (0.5 - size) * capHeight
}

// ThumbCenterShift is the vertical offset of a thumb cap's center from the arc
// point. Switch cutouts follow it so they stay centered under tall caps.
func ThumbCenterShift(size, capHeight float64) float64 {
	return -0.5 * (size - 1) * capHeight
}

// Thumbs places the thumb keys on the arc around anchor.
func Thumbs(cfg config.LayoutConfig, anchor geom.Point) []KeySlot {
	angles := ThumbAngles(cfg.Thumb.Keys)
	slots := make([]KeySlot, len(cfg.Thumb.Keys))
	for i, k := range cfg.Thumb.Keys {
		local := geom.Pt(0, -cfg.Thumb.Radius+ThumbCenterShift(k.Size, cfg.Cap.Height))
		slots[i] = KeySlot{
			Kind:   ThumbKey,
			Column: i,
			Center: anchor.Add(local.Rotate(angles[i])),
			Size:   k.Size,
			Angle:  angles[i],
		}
	}
	return slots
}
