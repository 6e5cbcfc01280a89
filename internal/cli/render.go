package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/steeb/pkg/config"
	"github.com/matzehuels/steeb/pkg/errors"
	"github.com/matzehuels/steeb/pkg/layout"
	"github.com/matzehuels/steeb/pkg/render/sink"
)

const (
	formatSVG  = "svg"
	formatJSON = "json"
	formatPNG  = "png"
	formatPDF  = "pdf"
)

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{formatSVG: true, formatJSON: true, formatPNG: true, formatPDF: true}

// boardOpts selects the configuration a board is built from.
type boardOpts struct {
	config string // TOML file layered over the defaults (or over the preset)
	preset string // named preset applied before the file
}

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	boardOpts
	output string
	format string
	debug  bool
	cutout string
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{format: formatSVG}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Compute the layout and write the plate drawing",
		Long: `Compute the layout and write the plate drawing.

The configuration starts from the built-in defaults. --preset applies a named
tuning on top, and --config layers a TOML file over the result; fields absent
from the file keep their previous value.

Output defaults to steeb.<format> in the current directory. Use -o - to write
to stdout. PNG and PDF output require rsvg-convert (librsvg).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "layout configuration file (TOML)")
	cmd.Flags().StringVarP(&opts.preset, "preset", "p", "", "start from a named preset (see 'steeb presets')")
	_ = cmd.RegisterFlagCompletionFunc("preset", presetCompletion)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: steeb.<format>)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg, json, png, pdf")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "draw the canvas border, origin and hand reference")
	cmd.Flags().StringVar(&opts.cutout, "cutout", "", "switch cutout style: corners, outline (default: from config)")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, opts renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	format := strings.ToLower(opts.format)
	if !validFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s (must be 'svg', 'json', 'png', or 'pdf')", opts.format)
	}
	svgOpts, err := svgOptions(opts.debug, opts.cutout)
	if err != nil {
		return err
	}

	b, err := loadBoard(ctx, opts.boardOpts)
	if err != nil {
		return err
	}
	logger.Debugf("Composed board: %d keys, offsets %v", b.KeyCount(), b.Offsets)

	var data []byte
	if format == formatPNG || format == formatPDF {
		spinner := newSpinner(ctx, "Converting to "+strings.ToUpper(format)+"...")
		spinner.Start()
		data, err = renderBoard(b, format, svgOpts)
		spinner.Stop()
	} else {
		data, err = renderBoard(b, format, svgOpts)
	}
	if err != nil {
		return err
	}
	logger.Debugf("Generated %s: %d bytes", format, len(data))

	path := opts.output
	if path == "" {
		path = defaultOutput + "." + format
	}
	if path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := writeOutput(path, data); err != nil {
		return err
	}
	prog.done("Rendered " + path)

	printSuccess("Layout rendered")
	printFile(path)
	printBoardStats(b.KeyCount(), b.Separation, layout.CorrectedSeparation(b.Config))
	return nil
}

// loadBoard resolves the configuration and composes the board.
func loadBoard(ctx context.Context, opts boardOpts) (layout.Board, error) {
	logger := loggerFromContext(ctx)

	cfg := config.Default()
	if opts.preset != "" {
		var err error
		if cfg, err = config.FromPreset(opts.preset); err != nil {
			return layout.Board{}, err
		}
		logger.Debugf("Using preset %s", opts.preset)
	}
	if opts.config != "" {
		var err error
		if cfg, err = config.LoadOver(opts.config, cfg); err != nil {
			return layout.Board{}, err
		}
		logger.Debugf("Loaded %s", opts.config)
	}
	if err := cfg.Validate(); err != nil {
		return layout.Board{}, err
	}
	return layout.Compose(cfg), nil
}

// svgOptions translates the drawing flags into renderer options.
func svgOptions(debug bool, cutout string) ([]sink.SVGOption, error) {
	var opts []sink.SVGOption
	if debug {
		opts = append(opts, sink.WithDebug())
	}
	if cutout != "" {
		style, err := parseCutoutStyle(cutout)
		if err != nil {
			return nil, err
		}
		opts = append(opts, sink.WithCutoutStyle(style))
	}
	return opts, nil
}

func parseCutoutStyle(s string) (config.CutoutStyle, error) {
	switch style := config.CutoutStyle(strings.ToLower(s)); style {
	case config.CutoutCorners, config.CutoutOutline:
		return style, nil
	}
	return "", errors.New(errors.ErrCodeInvalidConfig, "invalid cutout style: %s (must be 'corners' or 'outline')", s)
}

// renderBoard dispatches to the sink for format.
func renderBoard(b layout.Board, format string, svgOpts []sink.SVGOption) ([]byte, error) {
	switch format {
	case formatSVG:
		return sink.RenderSVG(b, svgOpts...), nil
	case formatJSON:
		return sink.RenderJSON(b)
	case formatPNG:
		return sink.RenderPNG(b, sink.WithPNGSVGOptions(svgOpts...))
	case formatPDF:
		return sink.RenderPDF(b, sink.WithPDFSVGOptions(svgOpts...))
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown format: %s", format)
	}
}

// writeOutput writes data to path, creating parent directories as needed.
func writeOutput(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(errors.ErrCodeWriteFailed, err, "create %s", dir)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "write %s", path)
	}
	return nil
}
