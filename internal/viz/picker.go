package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Builder turns a preset name into a ready terminal view.
type Builder func(preset string) (Model, error)

// Picker lists presets and starts the terminal view for the chosen one.
type Picker struct {
	presets  []string
	describe func(string) string
	build    Builder

	cursor  int
	started bool
	live    Model
	err     error
}

func NewPicker(presets []string, describe func(string) string, build Builder) Picker {
	return Picker{presets: presets, describe: describe, build: build}
}

func (p Picker) Init() tea.Cmd { return nil }

func (p Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if p.started {
		next, cmd := p.live.Update(msg)
		p.live = next.(Model)
		return p, cmd
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return p, tea.Quit
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < len(p.presets)-1 {
			p.cursor++
		}
	case "enter", " ":
		if len(p.presets) == 0 {
			return p, nil
		}
		live, err := p.build(p.presets[p.cursor])
		if err != nil {
			p.err = err
			return p, nil
		}
		p.live, p.started, p.err = live, true, nil
		return p, p.live.Init()
	}
	return p, nil
}

// Selected is the preset under the cursor.
func (p Picker) Selected() string {
	if len(p.presets) == 0 {
		return ""
	}
	return p.presets[p.cursor]
}

func (p Picker) View() string {
	if p.started {
		return p.live.View()
	}

	var (
		head   = lipgloss.NewStyle().Foreground(lipgloss.Color("#00cccc")).Bold(true)
		sub    = lipgloss.NewStyle().Foreground(lipgloss.Color("#666688"))
		arrow  = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ffff")).Bold(true)
		active = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true)
		desc   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff88ff"))
		idle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#555566"))
		key    = lipgloss.NewStyle().Foreground(lipgloss.Color("#00aaaa")).Bold(true)
		errs   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4444"))
	)

	var b strings.Builder
	b.WriteString("\n\n    " + head.Render("TRIMOSAIC") + "\n    " + sub.Render("triangle mosaic") + "\n    " + sub.Render("─────────────────────────") + "\n\n")
	for i, name := range p.presets {
		d := ""
		if p.describe != nil {
			d = p.describe(name)
		}
		if i == p.cursor {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n", arrow.Render("▸"), active.Render(fmt.Sprintf("%-10s", name)), desc.Render(d)))
		} else {
			b.WriteString(fmt.Sprintf("      %s  %s\n", idle.Render(fmt.Sprintf("%-10s", name)), idle.Render(d)))
		}
	}
	if p.err != nil {
		b.WriteString("\n    " + errs.Render(p.err.Error()) + "\n")
	}
	b.WriteString("\n    " + key.Render("j/k") + sub.Render(" navigate  ") + key.Render("enter") + sub.Render(" start  ") + key.Render("q") + sub.Render(" quit") + "\n")
	return b.String()
}

// RunPicker shows the preset menu in the alternate screen.
func RunPicker(presets []string, describe func(string) string, build Builder) error {
	_, err := tea.NewProgram(NewPicker(presets, describe, build), tea.WithAltScreen()).Run()
	return err
}
