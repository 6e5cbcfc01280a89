// Package sink renders a composed keyboard [layout.Board] into output formats.
//
// # Overview
//
// A "sink" transforms the computed board into a final artifact:
//
//   - SVG: the layout drawing, one group per hand
//   - JSON: the computed geometry for external tools
//   - PDF: print-ready output (requires rsvg-convert)
//   - PNG: raster preview (requires rsvg-convert)
//
// # SVG Output
//
// [BuildSVG] assembles the left hand as a group holding a switch cutout and a
// key-cap outline per key, then derives the right hand by deep-cloning that
// group and giving it the mirrored transform. Both hands sit in one styling
// group that carries the canvas-centering translation and the millimeter to
// device-unit scale:
//
//	b := layout.Compose(cfg)
//	svg := sink.RenderSVG(b, sink.WithDebug())
//
// # SVG Options
//
//   - [WithDebug]: Draw the canvas border, the origin and a reference square
//   - [WithCutoutStyle]: Override the configured switch cutout style
//
// # PDF and PNG Output
//
// [RenderPDF] and [RenderPNG] generate SVG first, then convert via
// [render.ToPDF] and [render.ToPNG]. These require librsvg:
//   - macOS: brew install librsvg
//   - Linux: apt install librsvg2-bin
//
// [render.ToPDF]: github.com/matzehuels/steeb/pkg/render.ToPDF
// [render.ToPNG]: github.com/matzehuels/steeb/pkg/render.ToPNG
package sink
