// Package field implements the typed controls of the config form:
// checkbox, dropdown, text input, number stepper, color swatch and
// path chooser. Controls follow one shape: they display a value set
// by their binding's pull, and push user edits through the binding on
// every change. They never validate stored configuration themselves;
// that is the binding's job.
package field

import tea "charm.land/bubbletea/v2"

// Pusher stages a control's new value in the config store.
type Pusher func(value any) error

// Field is one control of the config form.
type Field interface {
	// Key returns the bound config path, empty for static labels.
	Key() string

	// Label returns the display label.
	Label() string

	// Focusable reports whether the field takes input focus.
	Focusable() bool

	// Focus gives the field input focus.
	Focus() tea.Cmd

	// Blur removes input focus.
	Blur()

	// Update handles a key event while focused.
	Update(msg tea.KeyPressMsg) tea.Cmd

	// View renders the field. focused selects the highlighted style.
	View(focused bool) string

	// Help returns the key help for the focused field.
	Help() string
}

// OpenChooserMsg asks the form to open a file/directory chooser for a
// path field.
type OpenChooserMsg struct {
	Field *Path
}

func openChooser(f *Path) tea.Cmd {
	return func() tea.Msg { return OpenChooserMsg{Field: f} }
}
