package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/steeb/pkg/config"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// defaultChoice is the first entry of the picker: no preset, plain defaults.
const defaultChoice = "default"

// PresetListModel is the bubbletea model for interactive preset selection.
// The first row stands for the plain defaults.
type PresetListModel struct {
	Presets  []config.Preset
	Cursor   int
	Selected string // preset name, defaultChoice, or empty when aborted
	Height   int
	Offset   int
}

// NewPresetListModel creates a new preset list model.
func NewPresetListModel(presets []config.Preset) PresetListModel {
	return PresetListModel{Presets: presets, Height: 12}
}

func (m PresetListModel) len() int { return len(m.Presets) + 1 }

func (m PresetListModel) name(i int) string {
	if i == 0 {
		return defaultChoice
	}
	return m.Presets[i-1].Name
}

func (m PresetListModel) Init() tea.Cmd {
	return nil
}

func (m PresetListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < m.len()-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			m.Selected = m.name(m.Cursor)
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-6, 3)
	}
	return m, nil
}

func (m PresetListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Preset"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, m.len())
	for i := m.Offset; i < end; i++ {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		desc := "built-in defaults"
		if i > 0 {
			desc = m.Presets[i-1].Description
		}
		line := fmt.Sprintf("%s%-12s %s", cursor, m.name(i), listDimStyle.Render(desc))
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, m.len())))
	return b.String()
}
