package field

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/BlueGreenMagick/ankiaddonconfig/internal/ui/styles"
)

// Text displays a free-form string config value.
type Text struct {
	key   string
	label string
	input textinput.Model
	push  Pusher
}

// NewText creates a text input bound to key.
func NewText(key, label string, push Pusher) *Text {
	ti := textinput.New()
	ti.CharLimit = 256
	ti.SetWidth(40)

	st := ti.Styles()
	st.Cursor.Shape = tea.CursorBar
	st.Cursor.Blink = true
	ti.SetStyles(st)

	return &Text{key: key, label: label, input: ti, push: push}
}

// SetText replaces the displayed text and resets the cursor to the
// start. Called by the binding's pull.
func (t *Text) SetText(s string) {
	t.input.SetValue(s)
	t.input.CursorStart()
}

// Value returns the displayed text.
func (t *Text) Value() string { return t.input.Value() }

func (t *Text) Key() string     { return t.key }
func (t *Text) Label() string   { return t.label }
func (t *Text) Focusable() bool { return true }

func (t *Text) Focus() tea.Cmd {
	t.input.Focus()
	return textinput.Blink
}

func (t *Text) Blur() { t.input.Blur() }

func (t *Text) Update(msg tea.KeyPressMsg) tea.Cmd {
	before := t.input.Value()
	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	if t.input.Value() != before {
		_ = t.push(t.input.Value())
	}
	return cmd
}

func (t *Text) View(focused bool) string {
	theme := styles.Current()
	labelStyle := lipgloss.NewStyle().Foreground(theme.Normal)
	if focused {
		labelStyle = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	}
	return labelStyle.Render(t.label+": ") + t.input.View()
}

func (t *Text) Help() string {
	return "type text"
}
