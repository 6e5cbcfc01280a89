package layout

import (
	"math"

	"github.com/matzehuels/steeb/pkg/config"
	"github.com/matzehuels/steeb/pkg/geom"
)

// DPI is the device resolution of the output drawing.
const DPI = 96.0

// MillimetersPerInch converts inches to millimeters.
const MillimetersPerInch = 25.4

// OutputScale converts millimeters to device units.
const OutputScale = DPI / MillimetersPerInch

// Board is the composed two-hand layout.
type Board struct {
	Config config.LayoutConfig

	Offsets    []float64
	InnerUpper geom.Point
	InnerLower geom.Point

	// Separation is the configured separation corrected for tilt.
	Separation float64

	Left  Hand
	Right Hand

	// Transform places both hands on the canvas and converts to device units.
	Transform geom.Transform
}

// CorrectedSeparation shrinks the configured separation by the horizontal
// extent a hand loses when tilted: 2·columns·capWidth·(1−cos tilt).
func CorrectedSeparation(cfg config.LayoutConfig) float64 {
	loss := 1 - math.Cos(geom.Rad(cfg.Tilt))
	return cfg.Separation - 2*float64(cfg.FingerColumns())*cfg.Cap.Width*loss
}

// RightOffset is the horizontal translation of the mirrored hand.
func RightOffset(cfg config.LayoutConfig, innerUpper geom.Point) float64 {
	return innerUpper.X + cfg.Cap.Width + CorrectedSeparation(cfg) + float64(cfg.FingerColumns())*cfg.Cap.Width
}

// CenterOffset is the horizontal translation that moves the tilted hands back
// into the positive canvas area.
func CenterOffset(cfg config.LayoutConfig, offsets []float64) float64 {
	first := 0.0
	if len(offsets) > 0 {
		first = offsets[0]
	}
	return (first+float64(cfg.Rows)*cfg.Cap.Height)*math.Sin(geom.Rad(cfg.Tilt)) + 3*cfg.Cap.Width
}

// LeftTransform tilts the left hand about the origin.
func LeftTransform(cfg config.LayoutConfig) geom.Transform {
	return geom.Transform{}.Rotate(cfg.Tilt)
}

// RightTransform moves the right hand into place, mirrors it and tilts it.
func RightTransform(cfg config.LayoutConfig, innerUpper geom.Point) geom.Transform {
	return geom.Transform{}.
		Translate(RightOffset(cfg, innerUpper), 0).
		Scale(-1, 1).
		Rotate(cfg.Tilt)
}

// CanvasTransform centers the composition and scales it to device units.
func CanvasTransform(cfg config.LayoutConfig, offsets []float64) geom.Transform {
	return geom.Transform{}.
		Translate(CenterOffset(cfg, offsets), 0).
		Scale(OutputScale, OutputScale)
}

// BuildHand lays out one untransformed hand.
func BuildHand(cfg config.LayoutConfig) (Hand, FingerLayout) {
	fingers := Fingers(cfg)
	anchor := ThumbAnchor(cfg, fingers.InnerLower)
	return Hand{
		Fingers: fingers.Slots,
		Thumbs:  Thumbs(cfg, anchor),
		Anchor:  anchor,
	}, fingers
}

// Compose builds the left hand once and derives the right hand from a deep
// clone of it, so both halves are identical up to their transforms.
func Compose(cfg config.LayoutConfig) Board {
	left, fingers := BuildHand(cfg)
	right := left.Clone()

	left.Transform = LeftTransform(cfg)
	right.Transform = RightTransform(cfg, fingers.InnerUpper)

	return Board{
		Config:     cfg,
		Offsets:    fingers.Offsets,
		InnerUpper: fingers.InnerUpper,
		InnerLower: fingers.InnerLower,
		Separation: CorrectedSeparation(cfg),
		Left:       left,
		Right:      right,
		Transform:  CanvasTransform(cfg, fingers.Offsets),
	}
}

// MirrorTransform is the part of the right-hand transform that differs from
// the left hand: the translation and the horizontal flip.
func (b Board) MirrorTransform() geom.Transform {
	return geom.Transform{}.
		Translate(RightOffset(b.Config, b.InnerUpper), 0).
		Scale(-1, 1)
}

// KeyCount returns the number of keys on both hands.
func (b Board) KeyCount() int {
	return len(b.Left.Fingers) + len(b.Left.Thumbs) + len(b.Right.Fingers) + len(b.Right.Thumbs)
}
