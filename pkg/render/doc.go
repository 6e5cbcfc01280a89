// Package render converts rendered drawings between output formats.
//
// The layout drawing is produced as SVG by [sink]. [ToPDF] and [ToPNG] convert
// any SVG to other formats using the external rsvg-convert tool (from
// librsvg):
//
//	svg := sink.RenderSVG(board)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// Both return an [errors.ErrCodeUnsupported] error when rsvg-convert is not
// installed; use [Available] to check up front.
//
// [sink]: github.com/matzehuels/steeb/pkg/render/sink
// [errors.ErrCodeUnsupported]: github.com/matzehuels/steeb/pkg/errors.ErrCodeUnsupported
package render
