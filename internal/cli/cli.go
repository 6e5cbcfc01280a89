package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/steeb/pkg/buildinfo"
)

const (
	// appName is the application name used in help text and defaults.
	appName = "steeb"

	// defaultOutput is the base name of rendered drawings.
	defaultOutput = "steeb"

	// defaultConfigFile is the file written by init.
	defaultConfigFile = "steeb.toml"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance logging to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Steeb generates split keyboard plate layouts",
		Long: `Steeb computes the key positions of a split keyboard from a handful of
ergonomic parameters (column stagger, spacing, thumb arc, separation, tilt)
and writes the mirrored plate drawing as SVG, JSON, PNG or PDF.

It also extracts labelled outlines from a drawing into KiCad zone records.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.zonesCommand())
	root.AddCommand(c.initCommand())
	root.AddCommand(c.presetsCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}
