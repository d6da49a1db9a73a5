// Package binding couples UI controls to configuration keys.
//
// A binding synchronizes in one direction at a time: Pull reads the
// stored value, validates it against the control kind's predicate and
// updates the control's display; Push writes a user edit straight
// into the store. Push performs no validation — controls constrain
// their own input, validation exists to catch externally malformed
// configuration (hand-edited files, stale defaults).
package binding

import (
	"fmt"
	"math"
	"path/filepath"
	"reflect"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/BlueGreenMagick/ankiaddonconfig/internal/store"
)

// Control display interfaces. Each field control implements the one
// matching its kind; bindings are written against these capabilities,
// not against any concrete toolkit.
type (
	// BoolControl displays a checked/unchecked state.
	BoolControl interface{ SetChecked(bool) }

	// ChoiceControl displays the candidate at an index.
	ChoiceControl interface{ SetIndex(int) }

	// TextControl displays a string. Implementations reset the
	// cursor to the start when the text is replaced.
	TextControl interface{ SetText(string) }

	// NumberControl displays a numeric value.
	NumberControl interface{ SetNumber(float64) }

	// ColorControl displays a hex color and its preview swatch.
	ColorControl interface{ SetColor(string) }

	// PathControl displays a filesystem path.
	PathControl interface{ SetPath(string) }
)

// Binding pairs one configuration path with one control.
type Binding struct {
	path string
	st   *store.Store
	pull func() error
}

// Path returns the bound configuration path.
func (b *Binding) Path() string { return b.path }

// Pull validates the stored value and updates the control's display.
// Returns *InvalidValueError when the value fails the kind predicate;
// the control is left untouched in that case.
func (b *Binding) Pull() error { return b.pull() }

// Push stages the control's new value in the store.
func (b *Binding) Push(value any) error {
	return b.st.Set(b.path, value)
}

// Bool binds a boolean key to a checkbox-like control.
func Bool(st *store.Store, path string, ctl BoolControl) *Binding {
	b := &Binding{path: path, st: st}
	b.pull = func() error {
		v := st.Get(path, nil)
		checked, ok := v.(bool)
		if !ok {
			return &InvalidValueError{Path: path, Expected: "boolean", Actual: v}
		}
		ctl.SetChecked(checked)
		return nil
	}
	return b
}

// Choice binds a key to a dropdown-like control. The stored value
// must equal one of candidates; the control displays its index.
func Choice(st *store.Store, path string, candidates []any, ctl ChoiceControl) *Binding {
	b := &Binding{path: path, st: st}
	b.pull = func() error {
		v := st.Get(path, nil)
		for i, c := range candidates {
			if reflect.DeepEqual(v, c) {
				ctl.SetIndex(i)
				return nil
			}
		}
		return &InvalidValueError{
			Path:     path,
			Expected: fmt.Sprintf("any value in list %v", candidates),
			Actual:   v,
		}
	}
	return b
}

// Candidate returns the candidate value at index, for pushing from a
// choice control's selection.
func Candidate(candidates []any, index int) any {
	if index < 0 || index >= len(candidates) {
		return nil
	}
	return candidates[index]
}

// Text binds a string key to a free-text control.
func Text(st *store.Store, path string, ctl TextControl) *Binding {
	b := &Binding{path: path, st: st}
	b.pull = func() error {
		v := st.Get(path, nil)
		s, ok := v.(string)
		if !ok {
			return &InvalidValueError{Path: path, Expected: "string", Actual: v}
		}
		ctl.SetText(s)
		return nil
	}
	return b
}

// NumberOpts configures a number binding. Nil Min/Max leave that
// bound unchecked.
type NumberOpts struct {
	Min     *float64
	Max     *float64
	Decimal bool
}

// Number binds a numeric key to a stepper-like control. Without
// Decimal, the stored value must be integral.
func Number(st *store.Store, path string, opts NumberOpts, ctl NumberControl) *Binding {
	b := &Binding{path: path, st: st}
	b.pull = func() error {
		v := st.Get(path, nil)
		f, ok := asNumber(v)
		if !ok || (!opts.Decimal && f != math.Trunc(f)) {
			expected := "integer number"
			if opts.Decimal {
				expected = "number"
			}
			return &InvalidValueError{Path: path, Expected: expected, Actual: v}
		}
		if opts.Min != nil && f < *opts.Min {
			return &InvalidValueError{
				Path:     path,
				Expected: "integer number greater or equal to " + formatNumber(*opts.Min),
				Actual:   v,
			}
		}
		if opts.Max != nil && f > *opts.Max {
			return &InvalidValueError{
				Path:     path,
				Expected: "integer number lesser or equal to " + formatNumber(*opts.Max),
				Actual:   v,
			}
		}
		ctl.SetNumber(f)
		return nil
	}
	return b
}

// Color binds a hex color string key to a swatch control.
func Color(st *store.Store, path string, ctl ColorControl) *Binding {
	b := &Binding{path: path, st: st}
	b.pull = func() error {
		v := st.Get(path, nil)
		s, ok := v.(string)
		if !ok {
			return &InvalidValueError{Path: path, Expected: "rgb hex color string", Actual: v}
		}
		if _, err := colorful.Hex(s); err != nil {
			return &InvalidValueError{Path: path, Expected: "rgb hex color string", Actual: v}
		}
		ctl.SetColor(s)
		return nil
	}
	return b
}

// Path binds a filesystem path key to a path control.
func Path(st *store.Store, path string, ctl PathControl) *Binding {
	b := &Binding{path: path, st: st}
	b.pull = func() error {
		v := st.Get(path, nil)
		s, ok := v.(string)
		if !ok {
			return &InvalidValueError{Path: path, Expected: "string file path", Actual: v}
		}
		ctl.SetPath(s)
		return nil
	}
	return b
}

// ParentDir returns the directory that should seed a file chooser for
// the bound path: the parent of the currently stored value.
func ParentDir(st *store.Store, path string) string {
	s, _ := st.Get(path, "").(string)
	if s == "" {
		return "."
	}
	return filepath.Dir(s)
}

func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

func formatNumber(f float64) string {
	if f == math.Trunc(f) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%v", f)
}
