package sink

import (
	"fmt"
	"strings"

	"github.com/matzehuels/steeb/pkg/config"
	"github.com/matzehuels/steeb/pkg/geom"
	"github.com/matzehuels/steeb/pkg/layout"
	"github.com/matzehuels/steeb/pkg/svg"
)

const (
	debugColor      = "blue"
	debugOriginR    = 10
	debugRefHalf    = 5
	cornerMarkRatio = 0.25
)

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	debug  bool
	cutout config.CutoutStyle
}

// WithDebug adds construction aids: the canvas border, a circle at the origin
// and a reference square at the left hand's origin.
func WithDebug() SVGOption { return func(r *svgRenderer) { r.debug = true } }

// WithCutoutStyle overrides the cutout style from the board configuration.
func WithCutoutStyle(s config.CutoutStyle) SVGOption {
	return func(r *svgRenderer) { r.cutout = s }
}

// RenderSVG renders the board as an SVG document.
func RenderSVG(b layout.Board, opts ...SVGOption) []byte {
	return BuildSVG(b, opts...).Bytes()
}

// BuildSVG assembles the drawing tree for b.
func BuildSVG(b layout.Board, opts ...SVGOption) *svg.Document {
	cfg := b.Config
	r := svgRenderer{cutout: cfg.Cutout}
	for _, opt := range opts {
		opt(&r)
	}

	doc := svg.NewDocument(cfg.Canvas.Width*layout.OutputScale, cfg.Canvas.Height*layout.OutputScale)
	if r.debug {
		doc.Add(
			svg.NewEmpty("path",
				"d", rectPath(0, 0, cfg.Canvas.Width, cfg.Canvas.Height),
				"fill", "none",
				"stroke", debugColor,
			),
			svg.NewEmpty("circle",
				"cx", "0", "cy", "0", "r", geom.Fmt(debugOriginR),
				"fill", "none",
				"stroke", debugColor,
			),
		)
	}

	container := svg.New("g",
		"fill", "none",
		"stroke", cfg.StrokeColor,
		"stroke-width", geom.Fmt(cfg.StrokeWidth),
	)
	doc.Add(container)

	left := r.hand(cfg, b.Left)
	right := left.Clone()
	container.Add(left, right)

	right.Set("transform", b.Right.Transform.String())
	left.Set("transform", b.Left.Transform.String())
	container.Set("transform", b.Transform.String())

	return doc
}

// hand builds the untransformed subtree of one hand.
func (r svgRenderer) hand(cfg config.LayoutConfig, h layout.Hand) *svg.Element {
	g := svg.New("g")
	if r.debug {
		g.Add(svg.NewEmpty("path",
			"d", rectPath(-debugRefHalf, -debugRefHalf, 2*debugRefHalf, 2*debugRefHalf),
			"fill", "none",
			"stroke", debugColor,
		))
	}

	fingers := svg.New("g")
	for _, s := range h.Fingers {
		fingers.Add(r.cutoutAt(cfg, s.Center.X, s.Center.Y))
		fingers.Add(rect(
			s.Center.X-0.5*cfg.Cap.Width,
			s.Center.Y-0.5*cfg.Cap.Height,
			cfg.Cap.Width,
			cfg.Cap.Height,
		))
	}
	g.Add(fingers)

	thumbs := svg.New("g", "transform", geom.Transform{}.Translate(h.Anchor.X, h.Anchor.Y).String())
	for _, s := range h.Thumbs {
		key := svg.New("g", "transform", geom.Transform{}.Rotate(s.Angle).Translate(0, -cfg.Thumb.Radius).String())
		key.Add(rect(
			-0.5*cfg.Cap.Width,
			layout.ThumbCapTop(s.Size, cfg.Cap.Height),
			cfg.Cap.Width,
			s.Size*cfg.Cap.Height,
		))
		key.Add(r.cutoutAt(cfg, 0, layout.ThumbCenterShift(s.Size, cfg.Cap.Height)))
		thumbs.Add(key)
	}
	g.Add(thumbs)

	return g
}

// cutoutAt draws the switch cutout centered at (cx, cy).
func (r svgRenderer) cutoutAt(cfg config.LayoutConfig, cx, cy float64) *svg.Element {
	w, h := cfg.Switch.Width, cfg.Switch.Height
	left, top := cx-0.5*w, cy-0.5*h
	if r.cutout == config.CutoutOutline {
		return rect(left, top, w, h)
	}
	return svg.NewEmpty("path", "d", cornerMarks(left, top, w, h))
}

func rect(x, y, w, h float64) *svg.Element {
	return svg.NewEmpty("rect",
		"x", geom.Fmt(x),
		"y", geom.Fmt(y),
		"width", geom.Fmt(w),
		"height", geom.Fmt(h),
	)
}

// cornerMarks returns path data for four L-shaped marks at the corners of the
// given rectangle, each leg a quarter of the side.
func cornerMarks(l, t, w, h float64) string {
	xx, yy := cornerMarkRatio*w, cornerMarkRatio*h
	r, b := l+w, t+h
	f := geom.Fmt

	var sb strings.Builder
	fmt.Fprintf(&sb, "M %s %s L %s %s L %s %s", f(l), f(t+yy), f(l), f(t), f(l+xx), f(t))
	fmt.Fprintf(&sb, " M %s %s L %s %s L %s %s", f(r-xx), f(t), f(r), f(t), f(r), f(t+yy))
	fmt.Fprintf(&sb, " M %s %s L %s %s L %s %s", f(r), f(b-yy), f(r), f(b), f(r-xx), f(b))
	fmt.Fprintf(&sb, " M %s %s L %s %s L %s %s", f(l+xx), f(b), f(l), f(b), f(l), f(b-yy))
	return sb.String()
}

func rectPath(x, y, w, h float64) string {
	f := geom.Fmt
	return fmt.Sprintf("M %s %s L %s %s L %s %s L %s %s Z",
		f(x), f(y), f(x+w), f(y), f(x+w), f(y+h), f(x), f(y+h))
}
