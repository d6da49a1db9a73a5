// Package ui holds interactive pieces shared by commands: the add-on
// selector shown when `edit` is called without an argument.
package ui

import (
	"fmt"
	"os"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/sahilm/fuzzy"

	"github.com/BlueGreenMagick/ankiaddonconfig/internal/ui/styles"
)

// Choice is one selectable add-on.
type Choice struct {
	ID   string
	Name string
}

// SelectorResult reports what the user picked.
type SelectorResult struct {
	Choice    Choice
	Selected  bool
	Cancelled bool
}

type choiceSource []Choice

func (s choiceSource) String(i int) string { return s[i].Name }
func (s choiceSource) Len() int            { return len(s) }

// selectorModel is the bubbletea model for add-on selection.
type selectorModel struct {
	choices   []Choice
	filtered  []fuzzy.Match
	input     textinput.Model
	cursor    int
	selected  *Choice
	cancelled bool
	maxHeight int
}

func newSelectorModel(choices []Choice) *selectorModel {
	ti := textinput.New()
	ti.Placeholder = "Type to filter..."
	ti.Focus()
	ti.CharLimit = 100
	ti.SetWidth(40)

	m := &selectorModel{
		choices:   choices,
		input:     ti,
		maxHeight: 10,
	}
	m.applyFilter("")
	return m
}

func (m *selectorModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *selectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit

		case "enter":
			if len(m.filtered) > 0 && m.cursor < len(m.filtered) {
				c := m.choices[m.filtered[m.cursor].Index]
				m.selected = &c
			}
			return m, tea.Quit

		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case "down", "ctrl+n":
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.applyFilter(m.input.Value())
	return m, cmd
}

func (m *selectorModel) applyFilter(query string) {
	if query == "" {
		m.filtered = make([]fuzzy.Match, len(m.choices))
		for i, c := range m.choices {
			m.filtered[i] = fuzzy.Match{Str: c.Name, Index: i}
		}
	} else {
		m.filtered = fuzzy.FindFrom(query, choiceSource(m.choices))
	}
	if m.cursor >= len(m.filtered) {
		m.cursor = max(0, len(m.filtered)-1)
	}
}

func (m *selectorModel) View() tea.View {
	theme := styles.Current()
	selectedStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	normalStyle := lipgloss.NewStyle().Foreground(theme.Normal)
	dimStyle := lipgloss.NewStyle().Foreground(theme.Muted)

	var sb strings.Builder
	sb.WriteString("Select add-on:\n")
	sb.WriteString(m.input.View())
	sb.WriteString("\n\n")

	if len(m.filtered) == 0 {
		sb.WriteString(dimStyle.Render("  No matches found"))
		sb.WriteString("\n")
	} else {
		start := 0
		end := len(m.filtered)
		if end > m.maxHeight {
			half := m.maxHeight / 2
			start = max(0, m.cursor-half)
			end = start + m.maxHeight
			if end > len(m.filtered) {
				end = len(m.filtered)
				start = max(0, end-m.maxHeight)
			}
		}

		for i := start; i < end; i++ {
			c := m.choices[m.filtered[i].Index]
			line := fmt.Sprintf("%s (%s)", c.Name, c.ID)
			if i == m.cursor {
				sb.WriteString(selectedStyle.Render("> " + line))
			} else {
				sb.WriteString(normalStyle.Render("  " + line))
			}
			sb.WriteString("\n")
		}

		if len(m.filtered) > m.maxHeight {
			sb.WriteString(dimStyle.Render(fmt.Sprintf("\n  %d/%d", m.cursor+1, len(m.filtered))))
		}
	}

	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render("↑/↓ navigate • enter select • esc cancel"))

	return tea.NewView(sb.String())
}

// RunSelector shows an interactive fuzzy selector over the given
// add-ons. The TUI renders to stderr so stdout stays pipeable.
func RunSelector(choices []Choice) (*SelectorResult, error) {
	if len(choices) == 0 {
		return &SelectorResult{Cancelled: true}, nil
	}

	profile := colorprofile.Detect(os.Stderr, os.Environ())
	p := tea.NewProgram(newSelectorModel(choices),
		tea.WithOutput(os.Stderr),
		tea.WithColorProfile(profile),
	)
	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m := finalModel.(*selectorModel)
	if m.cancelled {
		return &SelectorResult{Cancelled: true}, nil
	}
	if m.selected != nil {
		return &SelectorResult{Choice: *m.selected, Selected: true}, nil
	}
	return &SelectorResult{Cancelled: true}, nil
}
