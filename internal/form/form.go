package form

import (
	"fmt"
	"os"
	"strings"

	"charm.land/bubbles/v2/filepicker"
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/colorprofile"

	"github.com/BlueGreenMagick/ankiaddonconfig/internal/binding"
	"github.com/BlueGreenMagick/ankiaddonconfig/internal/form/field"
	"github.com/BlueGreenMagick/ankiaddonconfig/internal/geometry"
)

type mode int

const (
	modeForm mode = iota
	modeRaw
	modeChooser
)

// Model drives a Session as a bubbletea program.
type Model struct {
	sess  *Session
	title string

	tabIdx int
	focus  int // index into the current tab's entries, -1 when none focusable

	mode       mode
	raw        *rawEditor
	chooser    filepicker.Model
	chooserFor *field.Path

	width      int
	height     int
	remembered bool
	errMsg     string
	done       bool
}

// NewModel wraps an opened session. Call after Session.Open so the
// model can start in the raw editor when the stored config is invalid.
func NewModel(sess *Session) *Model {
	m := &Model{
		sess:   sess,
		title:  sess.Store().HumanName(),
		focus:  -1,
		width:  80,
		height: 24,
	}
	if size, ok := geometry.Load(m.title); ok {
		m.width = size.Width
		m.height = size.Height
		m.remembered = true
	}
	return m
}

// WithWidth sets the preferred width when no remembered size exists.
func (m *Model) WithWidth(w int) *Model {
	if !m.remembered && w > 0 {
		m.width = w
	}
	return m
}

// Run executes the form and returns the session's final state. The
// TUI renders to stderr so stdout remains available for piping.
func (m *Model) Run() (State, error) {
	profile := colorprofile.Detect(os.Stderr, os.Environ())
	p := tea.NewProgram(m,
		tea.WithOutput(os.Stderr),
		tea.WithColorProfile(profile),
	)
	finalModel, err := p.Run()
	if err != nil {
		return StateClosed, err
	}

	final := finalModel.(*Model)
	_ = geometry.Save(final.title, geometry.Size{Width: final.width, Height: final.height})

	outcome := final.sess.State()
	if outcome != StateSaved {
		final.sess.Cancel()
		outcome = StateCancelled
	}
	if err := final.sess.Close(); err != nil {
		return outcome, err
	}
	return outcome, nil
}

func (m *Model) Init() tea.Cmd {
	if m.sess.State() == StateRecovering {
		return m.openRaw(true)
	}
	return m.focusFirst()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.raw != nil {
			m.raw.resize(m.width, m.height)
		}
		return m, nil

	case field.OpenChooserMsg:
		return m, m.openChooser(msg.Field)

	case tea.KeyPressMsg:
		switch m.mode {
		case modeRaw:
			return m.updateRaw(msg)
		case modeChooser:
			return m.updateChooser(msg)
		default:
			return m.updateForm(msg)
		}
	}

	// Non-key messages drive component internals (blink, dir reads).
	switch m.mode {
	case modeChooser:
		var cmd tea.Cmd
		m.chooser, cmd = m.chooser.Update(msg)
		return m, m.checkChooserSelection(msg, cmd)
	case modeForm:
		if f := m.focusedField(); f != nil {
			if t, ok := msg.(tea.KeyPressMsg); ok {
				return m, f.Update(t)
			}
		}
	}
	return m, nil
}

func (m *Model) updateForm(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	m.errMsg = ""
	switch msg.String() {
	case "ctrl+c", "esc":
		m.sess.Cancel()
		m.done = true
		return m, tea.Quit

	case "ctrl+s":
		if err := m.sess.Save(); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.done = true
		return m, tea.Quit

	case "ctrl+r":
		if err := m.sess.RestoreDefaults(); err != nil {
			if m.sess.State() == StateRecovering {
				return m, m.openRaw(true)
			}
			m.errMsg = err.Error()
		}
		return m, nil

	case "ctrl+e":
		return m, m.openRaw(false)

	case "ctrl+t":
		m.nextTab()
		return m, m.focusFirst()

	case "tab":
		return m, m.moveFocus(1)

	case "shift+tab":
		return m, m.moveFocus(-1)
	}

	if f := m.focusedField(); f != nil {
		return m, f.Update(msg)
	}
	return m, nil
}

func (m *Model) updateRaw(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.sess.Cancel()
		m.done = true
		return m, tea.Quit

	case "esc":
		if m.raw.recovering {
			// No valid form to return to; leaving abandons the edit.
			m.sess.Cancel()
			m.done = true
			return m, tea.Quit
		}
		m.raw = nil
		m.mode = modeForm
		return m, m.refreshForm()

	case "ctrl+y":
		m.raw.copyToClipboard()
		return m, nil

	case "ctrl+s":
		if err := m.sess.ApplyRaw([]byte(m.raw.value())); err != nil {
			if m.sess.State() == StateRecovering {
				// Document parsed and persisted but still fails
				// validation; stay in the editor with the message.
				m.raw.recovering = true
				m.raw.errMsg = m.sess.InvalidValue().Error()
				if doc, derr := m.sess.RawJSON(); derr == nil {
					m.raw.setDoc(doc)
				}
				return m, nil
			}
			m.raw.errMsg = err.Error()
			return m, nil
		}
		m.raw = nil
		m.mode = modeForm
		return m, m.focusFirst()
	}

	return m, m.raw.update(msg)
}

func (m *Model) updateChooser(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" || msg.String() == "ctrl+c" {
		m.mode = modeForm
		m.chooserFor = nil
		return m, nil
	}
	var cmd tea.Cmd
	m.chooser, cmd = m.chooser.Update(msg)
	return m, m.checkChooserSelection(msg, cmd)
}

func (m *Model) checkChooserSelection(msg tea.Msg, cmd tea.Cmd) tea.Cmd {
	if m.chooserFor == nil {
		return cmd
	}
	if ok, path := m.chooser.DidSelectFile(msg); ok {
		m.chooserFor.Choose(path)
		// Re-pull so the control shows the value as stored.
		if b := m.bindingFor(m.chooserFor); b != nil {
			_ = b.Pull()
		}
		m.chooserFor = nil
		m.mode = modeForm
		return nil
	}
	return cmd
}

func (m *Model) bindingFor(f field.Field) *binding.Binding {
	for _, t := range m.sess.Tabs() {
		for _, e := range t.entries {
			if e.field == f {
				return e.bind
			}
		}
	}
	return nil
}

func (m *Model) openRaw(recovering bool) tea.Cmd {
	doc, err := m.sess.RawJSON()
	if err != nil {
		m.errMsg = err.Error()
		return nil
	}
	m.raw = newRawEditor(doc, recovering, m.width, m.height)
	if recovering && m.sess.InvalidValue() != nil {
		m.raw.errMsg = m.sess.InvalidValue().Error()
	}
	m.mode = modeRaw
	return nil
}

func (m *Model) openChooser(f *field.Path) tea.Cmd {
	fp := filepicker.New()
	fp.CurrentDirectory = binding.ParentDir(m.sess.Store(), f.Key())
	fp.DirAllowed = f.Directory()
	fp.FileAllowed = !f.Directory()
	m.chooser = fp
	m.chooserFor = f
	m.mode = modeChooser
	return m.chooser.Init()
}

// refreshForm re-pulls all bindings after raw edits or restores. A
// failure drops back into the recovering editor.
func (m *Model) refreshForm() tea.Cmd {
	if err := m.sess.Refresh(); err != nil {
		if m.sess.State() == StateRecovering {
			return m.openRaw(true)
		}
		m.errMsg = err.Error()
	}
	return m.focusFirst()
}

func (m *Model) currentTab() *Tab {
	tabs := m.sess.Tabs()
	if len(tabs) == 0 {
		return nil
	}
	if m.tabIdx >= len(tabs) {
		m.tabIdx = 0
	}
	return tabs[m.tabIdx]
}

func (m *Model) focusedField() field.Field {
	t := m.currentTab()
	if t == nil || m.focus < 0 || m.focus >= len(t.entries) {
		return nil
	}
	return t.entries[m.focus].field
}

func (m *Model) nextTab() {
	tabs := m.sess.Tabs()
	if len(tabs) > 1 {
		m.tabIdx = (m.tabIdx + 1) % len(tabs)
	}
}

func (m *Model) focusFirst() tea.Cmd {
	if f := m.focusedField(); f != nil {
		f.Blur()
	}
	m.focus = -1
	t := m.currentTab()
	if t == nil {
		return nil
	}
	for i, e := range t.entries {
		if e.field.Focusable() {
			m.focus = i
			return e.field.Focus()
		}
	}
	return nil
}

func (m *Model) moveFocus(dir int) tea.Cmd {
	t := m.currentTab()
	if t == nil || m.focus < 0 {
		return m.focusFirst()
	}
	n := len(t.entries)
	for i := 1; i <= n; i++ {
		idx := ((m.focus+dir*i)%n + n) % n
		if t.entries[idx].field.Focusable() {
			t.entries[m.focus].field.Blur()
			m.focus = idx
			return t.entries[idx].field.Focus()
		}
	}
	return nil
}

func (m *Model) View() tea.View {
	if m.done {
		return tea.NewView("")
	}

	var b strings.Builder

	switch m.mode {
	case modeRaw:
		b.WriteString(m.raw.view())
	case modeChooser:
		b.WriteString(titleStyle().Render("Choose " + m.chooserFor.Label()))
		b.WriteString("\n\n")
		b.WriteString(m.chooser.View())
		b.WriteString("\n")
		b.WriteString(helpStyle().Render("enter select • esc cancel"))
	default:
		m.renderForm(&b)
	}

	return tea.NewView(borderStyle().Render(b.String()))
}

func (m *Model) renderForm(b *strings.Builder) {
	b.WriteString(titleStyle().Render(m.title))
	b.WriteString("\n\n")

	tabs := m.sess.Tabs()
	if len(tabs) > 1 {
		b.WriteString(m.renderTabBar())
		b.WriteString("\n\n")
	}

	t := m.currentTab()
	if t != nil {
		for i, e := range t.entries {
			b.WriteString(e.field.View(i == m.focus))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString(errorStyle().Render(m.errMsg))
		b.WriteString("\n")
	}

	help := "tab next field • ctrl+s save • ctrl+r defaults • ctrl+e raw • esc cancel"
	if len(tabs) > 1 {
		help = "ctrl+t next tab • " + help
	}
	if f := m.focusedField(); f != nil && f.Help() != "" {
		help = f.Help() + " • " + help
	}
	b.WriteString(helpStyle().Render(help))
}

func (m *Model) renderTabBar() string {
	parts := make([]string, 0, len(m.sess.Tabs()))
	for i, t := range m.sess.Tabs() {
		name := fmt.Sprintf(" %s ", t.Name())
		if i == m.tabIdx {
			parts = append(parts, tabActiveStyle().Render(name))
		} else {
			parts = append(parts, tabInactiveStyle().Render(name))
		}
	}
	return strings.Join(parts, tabSeparatorStyle().Render("│"))
}
