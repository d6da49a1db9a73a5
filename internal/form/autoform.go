package form

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/BlueGreenMagick/ankiaddonconfig/internal/addons"
	"github.com/BlueGreenMagick/ankiaddonconfig/internal/form/field"
)

// BuildFromSpec populates a session's tabs from a form descriptor.
func BuildFromSpec(sess *Session, spec *addons.FormSpec) error {
	if err := spec.Validate(); err != nil {
		return fmt.Errorf("form descriptor: %w", err)
	}
	for _, ts := range spec.Tabs {
		tab := sess.AddTab(ts.Name)
		for _, fs := range ts.Fields {
			addSpecField(tab, fs)
		}
	}
	return nil
}

func addSpecField(tab *Tab, fs addons.FieldSpec) {
	label := fs.Label
	if label == "" {
		label = fs.Key
	}
	switch fs.Kind {
	case addons.KindLabel:
		tab.Text(fs.Label)
	case addons.KindBool:
		tab.Checkbox(fs.Key, label)
	case addons.KindChoice:
		labels := make([]string, len(fs.Choices))
		values := make([]any, len(fs.Choices))
		for i, c := range fs.Choices {
			labels[i] = c.Label
			values[i] = c.Value
		}
		tab.Dropdown(fs.Key, label, labels, values)
	case addons.KindText:
		tab.TextInput(fs.Key, label)
	case addons.KindNumber:
		tab.NumberInput(fs.Key, label, field.NumberOpts{
			Min:       fs.Min,
			Max:       fs.Max,
			Step:      fs.Step,
			Decimal:   fs.Decimal,
			Precision: fs.Precision,
		})
	case addons.KindColor:
		tab.ColorInput(fs.Key, label)
	case addons.KindPath:
		tab.PathInput(fs.Key, label, fs.Directory)
	}
}

var hexColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// BuildAuto derives a single-tab form from the add-on's default tree
// when no descriptor ships with it. Scalar leaves become fields keyed
// by their dotted path: booleans become checkboxes, numbers become
// steppers (decimal when the default has a fraction), strings become
// text inputs, strings that look like hex colors become color fields.
// Mappings recurse; sequences and nulls are skipped, the raw editor
// covers those.
func BuildAuto(sess *Session) {
	tab := sess.AddTab("Config")
	autoFields(tab, "", sess.Store().DefaultSnapshot())
	if len(tab.entries) == 0 {
		tab.Text("No editable settings, use the raw editor (ctrl+e).")
	}
}

func autoFields(tab *Tab, prefix string, tree map[string]any) {
	keys := make([]string, 0, len(tree))
	for k := range tree {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		path := k
		if prefix != "" {
			path = prefix + "." + k
		}
		switch v := tree[k].(type) {
		case map[string]any:
			autoFields(tab, path, v)
		case bool:
			tab.Checkbox(path, path)
		case float64:
			tab.NumberInput(path, path, field.NumberOpts{Decimal: v != float64(int64(v))})
		case string:
			if hexColorRe.MatchString(v) {
				tab.ColorInput(path, path)
			} else {
				tab.TextInput(path, path)
			}
		}
	}
}
