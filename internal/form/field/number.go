package field

import (
	"strconv"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/BlueGreenMagick/ankiaddonconfig/internal/ui/styles"
)

// NumberOpts configures a number stepper.
type NumberOpts struct {
	Min       *float64
	Max       *float64
	Step      float64 // 0 means 1
	Decimal   bool
	Precision int // decimal places shown in decimal mode, 0 means 2
}

// Number displays a numeric config value as a stepper. Its own
// min/max clamping is what keeps user-entered values in range; stored
// values are range-checked by the binding on pull instead.
type Number struct {
	key   string
	label string
	value float64
	opts  NumberOpts
	push  Pusher
}

// NewNumber creates a number stepper bound to key.
func NewNumber(key, label string, opts NumberOpts, push Pusher) *Number {
	if opts.Step == 0 {
		opts.Step = 1
	}
	if opts.Decimal && opts.Precision <= 0 {
		opts.Precision = 2
	}
	return &Number{key: key, label: label, opts: opts, push: push}
}

// SetNumber updates the displayed value. Called by the binding's pull.
func (n *Number) SetNumber(v float64) { n.value = v }

// Value returns the displayed value.
func (n *Number) Value() float64 { return n.value }

func (n *Number) Key() string     { return n.key }
func (n *Number) Label() string   { return n.label }
func (n *Number) Focusable() bool { return true }
func (n *Number) Focus() tea.Cmd  { return nil }
func (n *Number) Blur()           {}

func (n *Number) Update(msg tea.KeyPressMsg) tea.Cmd {
	prev := n.value
	switch msg.String() {
	case "up", "right", "+", "k":
		n.value += n.opts.Step
	case "down", "left", "-", "j":
		n.value -= n.opts.Step
	case "home":
		if n.opts.Min != nil {
			n.value = *n.opts.Min
		}
	case "end":
		if n.opts.Max != nil {
			n.value = *n.opts.Max
		}
	}
	n.clamp()
	if n.value != prev {
		_ = n.push(n.storedValue())
	}
	return nil
}

func (n *Number) clamp() {
	if n.opts.Min != nil && n.value < *n.opts.Min {
		n.value = *n.opts.Min
	}
	if n.opts.Max != nil && n.value > *n.opts.Max {
		n.value = *n.opts.Max
	}
}

// storedValue keeps integer-mode values integral in the tree.
func (n *Number) storedValue() any {
	if n.opts.Decimal {
		return n.value
	}
	return int(n.value)
}

func (n *Number) formatted() string {
	if n.opts.Decimal {
		return strconv.FormatFloat(n.value, 'f', n.opts.Precision, 64)
	}
	return strconv.FormatInt(int64(n.value), 10)
}

func (n *Number) View(focused bool) string {
	theme := styles.Current()
	labelStyle := lipgloss.NewStyle().Foreground(theme.Normal)
	valueStyle := lipgloss.NewStyle().Foreground(theme.Info)
	if focused {
		labelStyle = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
		valueStyle = lipgloss.NewStyle().Foreground(theme.Accent)
	}
	return labelStyle.Render(n.label+": ") + valueStyle.Render("− "+n.formatted()+" +")
}

func (n *Number) Help() string {
	return "↑/↓ adjust"
}
