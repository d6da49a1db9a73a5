package addons

import "fmt"

// Field kinds accepted in form descriptors.
const (
	KindBool   = "bool"
	KindChoice = "choice"
	KindText   = "text"
	KindNumber = "number"
	KindColor  = "color"
	KindPath   = "path"
	KindLabel  = "label" // static text, no config key
)

// FormSpec is a declarative description of an add-on's config form,
// shipped as config.form.json next to the add-on's defaults.
type FormSpec struct {
	Tabs []TabSpec `json:"tabs"`
}

// TabSpec is one named tab of fields.
type TabSpec struct {
	Name   string      `json:"name"`
	Fields []FieldSpec `json:"fields"`
}

// FieldSpec describes one control bound to one config key.
type FieldSpec struct {
	Kind    string `json:"kind"`
	Key     string `json:"key,omitempty"` // dotted config path
	Label   string `json:"label,omitempty"`
	Tooltip string `json:"tooltip,omitempty"`

	// choice
	Choices []ChoiceSpec `json:"choices,omitempty"`

	// number
	Min       *float64 `json:"min,omitempty"`
	Max       *float64 `json:"max,omitempty"`
	Step      float64  `json:"step,omitempty"`
	Decimal   bool     `json:"decimal,omitempty"`
	Precision int      `json:"precision,omitempty"`

	// path
	Directory bool `json:"directory,omitempty"` // choose a directory instead of a file
}

// ChoiceSpec pairs a display label with the stored value.
type ChoiceSpec struct {
	Label string `json:"label"`
	Value any    `json:"value"`
}

// Validate checks the descriptor for structural problems.
func (s *FormSpec) Validate() error {
	if len(s.Tabs) == 0 {
		return fmt.Errorf("no tabs")
	}
	for ti, tab := range s.Tabs {
		if tab.Name == "" {
			return fmt.Errorf("tab %d: missing name", ti)
		}
		for fi, f := range tab.Fields {
			if err := f.validate(); err != nil {
				return fmt.Errorf("tab %q field %d: %w", tab.Name, fi, err)
			}
		}
	}
	return nil
}

func (f *FieldSpec) validate() error {
	switch f.Kind {
	case KindLabel:
		if f.Label == "" {
			return fmt.Errorf("label field without text")
		}
		return nil
	case KindBool, KindText, KindNumber, KindColor, KindPath:
		if f.Key == "" {
			return fmt.Errorf("%s field without key", f.Kind)
		}
		return nil
	case KindChoice:
		if f.Key == "" {
			return fmt.Errorf("choice field without key")
		}
		if len(f.Choices) == 0 {
			return fmt.Errorf("choice field %q without choices", f.Key)
		}
		return nil
	case "":
		return fmt.Errorf("missing kind")
	default:
		return fmt.Errorf("unknown kind %q", f.Kind)
	}
}
