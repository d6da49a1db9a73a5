package form

import (
	"strings"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"github.com/atotto/clipboard"
)

// rawEditor is the modal JSON editor. It opens in two situations: the
// user asked for it (advanced mode), or a stored value failed
// validation and the form cannot render (recovery mode). In recovery
// mode leaving the editor abandons the whole session, since there is
// no valid form to fall back to.
type rawEditor struct {
	ta         textarea.Model
	recovering bool
	errMsg     string
	status     string
}

func newRawEditor(doc []byte, recovering bool, width, height int) *rawEditor {
	ta := textarea.New()
	ta.SetValue(string(doc))
	ta.Focus()
	e := &rawEditor{ta: ta, recovering: recovering}
	e.resize(width, height)
	return e
}

func (e *rawEditor) resize(width, height int) {
	if width > 10 {
		e.ta.SetWidth(width - 8)
	}
	if height > 8 {
		e.ta.SetHeight(height - 6)
	}
}

func (e *rawEditor) setDoc(doc []byte) {
	e.ta.SetValue(string(doc))
}

func (e *rawEditor) value() string { return e.ta.Value() }

func (e *rawEditor) update(msg tea.KeyPressMsg) tea.Cmd {
	e.status = ""
	var cmd tea.Cmd
	e.ta, cmd = e.ta.Update(msg)
	return cmd
}

func (e *rawEditor) copyToClipboard() {
	if err := clipboard.WriteAll(e.ta.Value()); err != nil {
		e.status = "clipboard unavailable"
		return
	}
	e.status = "copied to clipboard"
}

func (e *rawEditor) view() string {
	var b strings.Builder

	if e.recovering {
		b.WriteString(warningStyle().Render("Invalid configuration, fix it below"))
	} else {
		b.WriteString(titleStyle().Render("Raw configuration"))
	}
	b.WriteString("\n")
	if e.errMsg != "" {
		b.WriteString(errorStyle().Render(e.errMsg))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(e.ta.View())
	b.WriteString("\n\n")
	if e.status != "" {
		b.WriteString(helpStyle().Render(e.status))
		b.WriteString("\n")
	}
	if e.recovering {
		b.WriteString(helpStyle().Render("ctrl+s save • ctrl+y copy • esc abandon"))
	} else {
		b.WriteString(helpStyle().Render("ctrl+s save • ctrl+y copy • esc back"))
	}
	return b.String()
}
