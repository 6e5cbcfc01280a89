package config

import (
	"slices"

	"github.com/matzehuels/steeb/pkg/errors"
)

// CutoutStyle selects how switch cutouts are drawn.
type CutoutStyle string

const (
	// CutoutCorners draws four L-shaped corner marks per switch.
	CutoutCorners CutoutStyle = "corners"
	// CutoutOutline draws the full switch rectangle.
	CutoutOutline CutoutStyle = "outline"
)

// Default values for optional thumb-key fields.
const (
	DefaultThumbRotation = 15.0
	DefaultThumbSize     = 1.0
)

// Size is a width/height pair in millimeters.
type Size struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// AnchorOffset places the thumb anchor relative to the lowest key of the
// innermost finger column.
type AnchorOffset struct {
	Horizontal float64 `toml:"horizontal"`
	Vertical   float64 `toml:"vertical"`
}

// Anchor positions the center of the thumb arc.
type Anchor struct {
	Offset   AnchorOffset `toml:"offset"`
	Rotation float64      `toml:"rotation"`
}

// ThumbKey is a resolved thumb key. Rotation is the increment added to the
// running arc angle before this key is placed. When Fixed is set the key is
// placed at Angle instead of the running angle; the running angle still
// advances.
type ThumbKey struct {
	Rotation float64
	Size     float64 // height in key-cap units, e.g. 1.5
	Angle    float64
	Fixed    bool
}

// Thumb holds the thumb-cluster geometry.
type Thumb struct {
	Anchor Anchor
	Radius float64
	Keys   []ThumbKey
}

// LayoutConfig is the complete parameter set for one run.
//
// Treat it as a value: functions receiving a LayoutConfig never modify it, and
// [LayoutConfig.Clone] gives an independent copy when one is needed.
type LayoutConfig struct {
	Canvas  Size
	Cap     Size
	Switch  Size
	Spacing Size

	// Stagger holds one vertical offset per column boundary, outermost
	// (pinky) first. Each value is relative to the previous column.
	Stagger []float64
	Rows    int

	Thumb Thumb

	Separation float64 // gap between the two halves
	Tilt       float64 // rotation of each half

	StrokeColor string
	StrokeWidth float64
	Cutout      CutoutStyle
}

// Default returns the reference layout: a 5×3 finger block with a two-key
// thumb arc, 20° tilt and 42mm separation.
func Default() LayoutConfig {
	return LayoutConfig{
		Canvas:  Size{Width: 500, Height: 300},
		Cap:     Size{Width: 19, Height: 19},
		Switch:  Size{Width: 14.5, Height: 14.5},
		Spacing: Size{Width: 19, Height: 19},
		Stagger: []float64{7, 3, -3, -3},
		Rows:    3,
		Thumb: Thumb{
			Anchor: Anchor{
				Offset:   AnchorOffset{Horizontal: 7.27, Vertical: 23},
				Rotation: 15,
			},
			Radius: 85,
			Keys: []ThumbKey{
				{Rotation: 15, Size: 1},
				{Rotation: 15, Size: 1.5},
			},
		},
		Separation:  42,
		Tilt:        20,
		StrokeColor: "black",
		StrokeWidth: 0.2,
		Cutout:      CutoutCorners,
	}
}

// Columns returns the number of stagger offsets. The finger block has one
// more column than this; see [LayoutConfig.FingerColumns].
func (c LayoutConfig) Columns() int { return len(c.Stagger) }

// FingerColumns returns the number of finger columns (column boundaries).
func (c LayoutConfig) FingerColumns() int { return len(c.Stagger) + 1 }

// Clone returns a deep copy of c.
func (c LayoutConfig) Clone() LayoutConfig {
	out := c
	out.Stagger = slices.Clone(c.Stagger)
	out.Thumb.Keys = slices.Clone(c.Thumb.Keys)
	return out
}

// Validate checks the invariants the layout engine relies on.
func (c LayoutConfig) Validate() error {
	sizes := []struct {
		name string
		s    Size
	}{
		{"canvas", c.Canvas},
		{"cap", c.Cap},
		{"switch", c.Switch},
		{"spacing", c.Spacing},
	}
	for _, sz := range sizes {
		if sz.s.Width <= 0 || sz.s.Height <= 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "%s size must be positive, got %gx%g", sz.name, sz.s.Width, sz.s.Height)
		}
	}

	if len(c.Stagger) < 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "at least one stagger offset is required")
	}
	if c.Rows < 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "rows must be at least 1, got %d", c.Rows)
	}
	if c.Thumb.Radius <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "thumb radius must be positive, got %g", c.Thumb.Radius)
	}
	for i, k := range c.Thumb.Keys {
		if k.Size <= 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "thumb key %d: size must be positive, got %g", i, k.Size)
		}
	}
	if c.Tilt <= -90 || c.Tilt >= 90 {
		return errors.New(errors.ErrCodeInvalidConfig, "tilt must be within (-90, 90), got %g", c.Tilt)
	}
	if c.StrokeWidth <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "stroke width must be positive, got %g", c.StrokeWidth)
	}
	if c.StrokeColor == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "stroke color cannot be empty")
	}
	switch c.Cutout {
	case CutoutCorners, CutoutOutline:
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "cutout style must be %q or %q, got %q", CutoutCorners, CutoutOutline, c.Cutout)
	}
	return nil
}
