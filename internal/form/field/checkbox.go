package field

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/BlueGreenMagick/ankiaddonconfig/internal/ui/styles"
)

// Checkbox displays a boolean config value.
type Checkbox struct {
	key     string
	label   string
	checked bool
	push    Pusher
}

// NewCheckbox creates a checkbox bound to key.
func NewCheckbox(key, label string, push Pusher) *Checkbox {
	return &Checkbox{key: key, label: label, push: push}
}

// SetChecked updates the displayed state. Called by the binding's pull.
func (c *Checkbox) SetChecked(v bool) { c.checked = v }

// Checked returns the displayed state.
func (c *Checkbox) Checked() bool { return c.checked }

func (c *Checkbox) Key() string      { return c.key }
func (c *Checkbox) Label() string    { return c.label }
func (c *Checkbox) Focusable() bool  { return true }
func (c *Checkbox) Focus() tea.Cmd   { return nil }
func (c *Checkbox) Blur()            {}

func (c *Checkbox) Update(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "space", "enter":
		c.checked = !c.checked
		_ = c.push(c.checked)
	}
	return nil
}

func (c *Checkbox) View(focused bool) string {
	box := "[ ]"
	if c.checked {
		box = "[x]"
	}
	style := lipgloss.NewStyle().Foreground(styles.Current().Normal)
	if focused {
		style = lipgloss.NewStyle().Foreground(styles.Current().Accent).Bold(true)
	}
	return style.Render(box + " " + c.label)
}

func (c *Checkbox) Help() string {
	return "space toggle"
}
