package field

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/BlueGreenMagick/ankiaddonconfig/internal/ui/styles"
)

// Dropdown displays one choice from a fixed candidate list. Labels
// are shown; the value at the same index is what gets stored.
type Dropdown struct {
	key    string
	label  string
	labels []string
	values []any
	index  int
	push   Pusher
}

// NewDropdown creates a dropdown bound to key. labels and values must
// be the same length.
func NewDropdown(key, label string, labels []string, values []any, push Pusher) *Dropdown {
	return &Dropdown{key: key, label: label, labels: labels, values: values, push: push}
}

// SetIndex updates the displayed choice. Called by the binding's pull.
func (d *Dropdown) SetIndex(i int) {
	if i >= 0 && i < len(d.labels) {
		d.index = i
	}
}

// Index returns the displayed choice index.
func (d *Dropdown) Index() int { return d.index }

func (d *Dropdown) Key() string     { return d.key }
func (d *Dropdown) Label() string   { return d.label }
func (d *Dropdown) Focusable() bool { return true }
func (d *Dropdown) Focus() tea.Cmd  { return nil }
func (d *Dropdown) Blur()           {}

func (d *Dropdown) Update(msg tea.KeyPressMsg) tea.Cmd {
	prev := d.index
	switch msg.String() {
	case "left", "up", "k":
		if d.index > 0 {
			d.index--
		}
	case "right", "down", "j", "space":
		if d.index < len(d.labels)-1 {
			d.index++
		}
	}
	if d.index != prev {
		_ = d.push(d.values[d.index])
	}
	return nil
}

func (d *Dropdown) View(focused bool) string {
	theme := styles.Current()
	labelStyle := lipgloss.NewStyle().Foreground(theme.Normal)
	valueStyle := lipgloss.NewStyle().Foreground(theme.Info)
	if focused {
		labelStyle = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
		valueStyle = lipgloss.NewStyle().Foreground(theme.Accent)
	}

	choice := ""
	if d.index >= 0 && d.index < len(d.labels) {
		choice = d.labels[d.index]
	}
	return labelStyle.Render(d.label+": ") + valueStyle.Render("‹ "+choice+" ›")
}

func (d *Dropdown) Help() string {
	return "←/→ change"
}
