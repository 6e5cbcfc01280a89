package cli

import (
	"bytes"
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/steeb/pkg/errors"
	"github.com/matzehuels/steeb/pkg/zones"
)

// zonesCommand creates the zones command.
func (c *CLI) zonesCommand() *cobra.Command {
	var defsPath, output string

	cmd := &cobra.Command{
		Use:   "zones [drawing.svg]",
		Short: "Convert labelled drawing paths into KiCad zone records",
		Long: `Convert labelled drawing paths into KiCad zone records.

The definitions file lists one [[zone]] table per copper zone:

  [[zone]]
  layer = "B.Cu"
  net = 39
  net_name = "+5V"
  priority = 2
  names = ["b5v-out", "b5v-in"]

Each name refers to a path's inkscape:label in the drawing. Paths may only use
absolute M, L, H and V commands. Names that are not found produce an empty
polygon and a warning.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runZones(cmd.Context(), args[0], defsPath, output)
		},
	}

	cmd.Flags().StringVarP(&defsPath, "defs", "d", "", "zone definitions file (TOML)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	_ = cmd.MarkFlagRequired("defs")

	return cmd
}

func (c *CLI) runZones(ctx context.Context, drawing, defsPath, output string) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	defs, err := zones.LoadDefs(defsPath)
	if err != nil {
		return err
	}

	f, err := os.Open(drawing)
	if err != nil {
		return errors.Wrap(errors.ErrCodeReadFailed, err, "open drawing %s", drawing)
	}
	defer f.Close()

	var buf bytes.Buffer
	n, err := extractZones(ctx, f, defs, &buf)
	if err != nil {
		return err
	}

	if output == "" {
		_, err := io.Copy(os.Stdout, &buf)
		return err
	}
	if err := writeOutput(output, buf.Bytes()); err != nil {
		return err
	}
	prog.done("Extracted zones")
	printSuccess("Wrote %d zone records", n)
	printFile(output)
	return nil
}

// extractZones finds the paths named by defs in the drawing and writes the
// zone records to w. It returns the number of records written.
func extractZones(ctx context.Context, drawing io.Reader, defs []zones.Def, w io.Writer) (int, error) {
	logger := loggerFromContext(ctx)

	names := zones.Names(defs)
	found, err := zones.Find(drawing, names)
	if err != nil {
		return 0, err
	}
	for _, name := range names {
		if _, ok := found[name]; !ok {
			logger.Warn("path not found in drawing", "name", name)
		} else {
			logger.Debug("found path", "name", name, "points", len(found[name]))
		}
	}

	if err := zones.Write(w, defs, found); err != nil {
		return 0, err
	}
	return len(defs), nil
}
