package form

import (
	"github.com/BlueGreenMagick/ankiaddonconfig/internal/binding"
	"github.com/BlueGreenMagick/ankiaddonconfig/internal/form/field"
)

// entry pairs a rendered control with the binding that feeds it.
type entry struct {
	field field.Field
	bind  *binding.Binding // nil for static labels
}

// Tab is one tab of the config form. Its builder methods create the
// control, bind it to the session's store and register the binding for
// pull-validation, mirroring the order fields are declared in.
type Tab struct {
	name    string
	sess    *Session
	entries []entry
}

// Name returns the tab's display name.
func (t *Tab) Name() string { return t.name }

// Fields returns the tab's controls in declaration order.
func (t *Tab) Fields() []field.Field {
	out := make([]field.Field, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.field
	}
	return out
}

func (t *Tab) add(f field.Field, b *binding.Binding) {
	if b != nil {
		t.sess.reg.Add(b)
	}
	t.entries = append(t.entries, entry{field: f, bind: b})
}

func (t *Tab) pusher(key string) field.Pusher {
	return func(v any) error { return t.sess.st.Set(key, v) }
}

// Text adds a static text row.
func (t *Tab) Text(text string) {
	t.add(field.NewLabel(text), nil)
}

// Checkbox adds a boolean control bound to key.
func (t *Tab) Checkbox(key, label string) *field.Checkbox {
	f := field.NewCheckbox(key, label, t.pusher(key))
	t.add(f, binding.Bool(t.sess.st, key, f))
	return f
}

// Dropdown adds a fixed-choice control bound to key. labels and
// values run in parallel; the stored value must equal one of values.
func (t *Tab) Dropdown(key, label string, labels []string, values []any) *field.Dropdown {
	f := field.NewDropdown(key, label, labels, values, t.pusher(key))
	t.add(f, binding.Choice(t.sess.st, key, values, f))
	return f
}

// TextInput adds a free-text control bound to key.
func (t *Tab) TextInput(key, label string) *field.Text {
	f := field.NewText(key, label, t.pusher(key))
	t.add(f, binding.Text(t.sess.st, key, f))
	return f
}

// NumberInput adds a number stepper bound to key.
func (t *Tab) NumberInput(key, label string, opts field.NumberOpts) *field.Number {
	f := field.NewNumber(key, label, opts, t.pusher(key))
	t.add(f, binding.Number(t.sess.st, key, binding.NumberOpts{
		Min:     opts.Min,
		Max:     opts.Max,
		Decimal: opts.Decimal,
	}, f))
	return f
}

// ColorInput adds a hex color control bound to key.
func (t *Tab) ColorInput(key, label string) *field.Color {
	f := field.NewColor(key, label, t.pusher(key))
	t.add(f, binding.Color(t.sess.st, key, f))
	return f
}

// PathInput adds a file path control bound to key. directory selects
// directory picking in the chooser.
func (t *Tab) PathInput(key, label string, directory bool) *field.Path {
	f := field.NewPath(key, label, directory, t.pusher(key))
	t.add(f, binding.Path(t.sess.st, key, f))
	return f
}
