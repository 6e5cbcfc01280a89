package cli

import (
	"bytes"
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/matzehuels/steeb/pkg/config"
	"github.com/matzehuels/steeb/pkg/errors"
)

// initCommand creates the init command that writes a starter configuration.
func (c *CLI) initCommand() *cobra.Command {
	var (
		preset string
		output string
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter layout configuration",
		Long: `Write a complete layout configuration file.

Without --preset, an interactive picker is shown when stdin is a terminal;
otherwise the built-in defaults are written.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInit(cmd.Context(), preset, output, force)
		},
	}

	cmd.Flags().StringVarP(&preset, "preset", "p", "", "preset to start from (see 'steeb presets')")
	_ = cmd.RegisterFlagCompletionFunc("preset", presetCompletion)
	cmd.Flags().StringVarP(&output, "output", "o", defaultConfigFile, "configuration file to write")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	return cmd
}

func (c *CLI) runInit(ctx context.Context, preset, output string, force bool) error {
	logger := loggerFromContext(ctx)

	if !force {
		if _, err := os.Stat(output); err == nil {
			return errors.New(errors.ErrCodeWriteFailed, "%s already exists (use --force to overwrite)", output)
		}
	}

	if preset == "" && isatty.IsTerminal(os.Stdin.Fd()) {
		choice, err := pickPreset(ctx)
		if err != nil {
			return err
		}
		if choice == "" {
			printInfo("Cancelled")
			return nil
		}
		preset = choice
	}

	cfg, err := initialConfig(preset)
	if err != nil {
		return err
	}
	logger.Debugf("Writing configuration from %q", preset)

	var buf bytes.Buffer
	if err := config.Encode(&buf, cfg); err != nil {
		return err
	}
	if err := writeOutput(output, buf.Bytes()); err != nil {
		return err
	}

	printSuccess("Configuration written")
	printFile(output)
	printNewline()
	printNextStep("Render", appName+" render --config "+output)
	return nil
}

// initialConfig returns the configuration for a preset name; empty or
// defaultChoice select the plain defaults.
func initialConfig(preset string) (config.LayoutConfig, error) {
	if preset == "" || preset == defaultChoice {
		return config.Default(), nil
	}
	return config.FromPreset(preset)
}

// pickPreset runs the interactive picker and returns the chosen name, or ""
// if the user quit.
func pickPreset(ctx context.Context) (string, error) {
	p := tea.NewProgram(NewPresetListModel(config.Presets()), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "preset picker")
	}
	return final.(PresetListModel).Selected, nil
}
