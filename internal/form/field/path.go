package field

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/BlueGreenMagick/ankiaddonconfig/internal/ui/styles"
)

// Path displays a file path value. The path itself is read-only in the
// form row; enter opens the chooser overlay, which writes the picked
// path back through the binding.
type Path struct {
	key       string
	label     string
	value     string
	directory bool
	push      Pusher
}

// NewPath creates a path field bound to key. directory selects
// directory picking in the chooser.
func NewPath(key, label string, directory bool, push Pusher) *Path {
	return &Path{key: key, label: label, directory: directory, push: push}
}

// SetPath updates the displayed path. Called by the binding's pull.
func (p *Path) SetPath(path string) { p.value = path }

// Value returns the displayed path.
func (p *Path) Value() string { return p.value }

// Directory reports whether the chooser should pick directories.
func (p *Path) Directory() bool { return p.directory }

// Choose stages a path picked in the chooser.
func (p *Path) Choose(path string) {
	p.value = path
	_ = p.push(path)
}

func (p *Path) Key() string     { return p.key }
func (p *Path) Label() string   { return p.label }
func (p *Path) Focusable() bool { return true }
func (p *Path) Focus() tea.Cmd  { return nil }
func (p *Path) Blur()           {}

func (p *Path) Update(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "enter", "space":
		return openChooser(p)
	}
	return nil
}

func (p *Path) View(focused bool) string {
	theme := styles.Current()
	labelStyle := lipgloss.NewStyle().Foreground(theme.Normal)
	valueStyle := lipgloss.NewStyle().Foreground(theme.Info)
	if focused {
		labelStyle = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
		valueStyle = lipgloss.NewStyle().Foreground(theme.Accent)
	}

	shown := p.value
	if shown == "" {
		shown = "(not set)"
	}
	return labelStyle.Render(p.label+": ") + valueStyle.Render(shown)
}

func (p *Path) Help() string {
	return "enter browse"
}
