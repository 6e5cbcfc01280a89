package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/steeb/pkg/config"
	"github.com/matzehuels/steeb/pkg/geom"
)

// presetsCommand lists the built-in presets.
func (c *CLI) presetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the built-in layout presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(stdout, presetTable(config.Presets()).Render())
			printNewline()
			printNextStep("Render a preset", appName+" render --preset corne")
			return nil
		},
	}
}

// presetTable renders presets as a bordered table.
func presetTable(presets []config.Preset) *table.Table {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := make([][]string, len(presets))
	for i, p := range presets {
		rows[i] = presetRow(p)
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Name", "Description", "Stagger", "Cap", "Tilt").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case col == 0:
				return lipgloss.NewStyle().Foreground(colorCyan)
			case col == 1:
				return lipgloss.NewStyle()
			}
			return lipgloss.NewStyle().Foreground(colorGray)
		})
}

func presetRow(p config.Preset) []string {
	stagger := make([]string, len(p.Stagger))
	for i, s := range p.Stagger {
		stagger[i] = geom.Fmt(s)
	}
	size := "default"
	if p.Cap.Width > 0 {
		size = geom.Fmt(p.Cap.Width) + "×" + geom.Fmt(p.Cap.Height)
	}
	return []string{p.Name, p.Description, strings.Join(stagger, " "), size, geom.Fmt(p.Tilt) + "°"}
}
