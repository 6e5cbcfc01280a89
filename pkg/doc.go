// Package pkg holds the libraries behind steeb, a split keyboard plate
// generator.
//
// Data flows in one direction:
//
//	config.LayoutConfig (defaults, presets, TOML)
//	         ↓
//	    [layout] finger columns, thumb arc, mirrored board
//	         ↓
//	    [render/sink] SVG tree, JSON geometry, PNG/PDF via rsvg-convert
//
// [zones] is independent: it reads an edited drawing back and turns labelled
// outlines into KiCad zone records.
//
// Quick start:
//
//	cfg, err := config.FromPreset("corne")
//	if err != nil {
//	    return err
//	}
//	board := layout.Compose(cfg)
//	os.WriteFile("corne.svg", sink.RenderSVG(board), 0o644)
package pkg
