package field

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/BlueGreenMagick/ankiaddonconfig/internal/ui/styles"
)

// Color displays an rgb hex color value as an editable hex string with
// a live swatch. Only text that parses as #rrggbb is pushed; partial
// input stays local to the control.
type Color struct {
	key   string
	label string
	input textinput.Model
	push  Pusher
}

// NewColor creates a color field bound to key.
func NewColor(key, label string, push Pusher) *Color {
	ti := textinput.New()
	ti.CharLimit = 7
	ti.SetWidth(9)
	ti.Placeholder = "#rrggbb"
	return &Color{key: key, label: label, input: ti, push: push}
}

// SetColor updates the displayed hex string. Called by the binding's
// pull.
func (c *Color) SetColor(hex string) {
	c.input.SetValue(hex)
	c.input.CursorStart()
}

// Value returns the displayed hex string.
func (c *Color) Value() string { return c.input.Value() }

func (c *Color) Key() string     { return c.key }
func (c *Color) Label() string   { return c.label }
func (c *Color) Focusable() bool { return true }

func (c *Color) Focus() tea.Cmd {
	c.input.Focus()
	return textinput.Blink
}

func (c *Color) Blur() { c.input.Blur() }

func (c *Color) Update(msg tea.KeyPressMsg) tea.Cmd {
	before := c.input.Value()
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	v := c.input.Value()
	if v != before {
		if _, err := colorful.Hex(v); err == nil {
			_ = c.push(v)
		}
	}
	return cmd
}

func (c *Color) View(focused bool) string {
	theme := styles.Current()
	labelStyle := lipgloss.NewStyle().Foreground(theme.Normal)
	if focused {
		labelStyle = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	}

	swatch := "  "
	if col, err := colorful.Hex(c.input.Value()); err == nil {
		swatch = lipgloss.NewStyle().Background(col).Render("  ")
	}
	return labelStyle.Render(c.label+": ") + swatch + " " + c.input.View()
}

func (c *Color) Help() string {
	return "type #rrggbb"
}
