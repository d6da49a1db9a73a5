package field

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/BlueGreenMagick/ankiaddonconfig/internal/ui/styles"
)

// Label is a static text row. It binds to nothing and never takes
// focus.
type Label struct {
	text string
}

// NewLabel creates a static label row.
func NewLabel(text string) *Label { return &Label{text: text} }

func (l *Label) Key() string                        { return "" }
func (l *Label) Label() string                      { return l.text }
func (l *Label) Focusable() bool                    { return false }
func (l *Label) Focus() tea.Cmd                     { return nil }
func (l *Label) Blur()                              {}
func (l *Label) Update(msg tea.KeyPressMsg) tea.Cmd { return nil }

func (l *Label) View(focused bool) string {
	return lipgloss.NewStyle().Foreground(styles.Current().Muted).Render(l.text)
}

func (l *Label) Help() string { return "" }
