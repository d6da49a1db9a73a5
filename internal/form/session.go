// Package form renders an add-on's configuration as an interactive
// terminal form. A Session owns the staged config store, the binding
// registry and the tabbed field layout; the tea model in form.go
// drives it. Sessions survive invalid stored configuration by dropping
// into a raw JSON editor until the document validates again.
package form

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"

	"github.com/BlueGreenMagick/ankiaddonconfig/internal/binding"
	"github.com/BlueGreenMagick/ankiaddonconfig/internal/store"
)

// State is the lifecycle phase of an edit session.
type State int

const (
	// StateClosed is the resting state before Open and after Close.
	StateClosed State = iota

	// StateOpen is the normal interactive form.
	StateOpen

	// StateValidating is transient while bindings re-pull.
	StateValidating

	// StateRecovering means a stored value failed validation and the
	// raw editor has taken over.
	StateRecovering

	// StateSaved means Save persisted the staged tree.
	StateSaved

	// StateCancelled means the user left without saving.
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateValidating:
		return "validating"
	case StateRecovering:
		return "recovering"
	case StateSaved:
		return "saved"
	case StateCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Session is one edit session over a single add-on's configuration.
type Session struct {
	st        *store.Store
	reg       *binding.Registry
	tabs      []*Tab
	preSave   []func() error
	rawIndent int

	state   State
	lastErr *binding.InvalidValueError
}

// NewSession creates a session over the given store.
func NewSession(st *store.Store) *Session {
	return &Session{st: st, reg: &binding.Registry{}}
}

// Store returns the session's config store.
func (s *Session) Store() *store.Store { return s.st }

// Tabs returns the declared tabs in order.
func (s *Session) Tabs() []*Tab { return s.tabs }

// State returns the current lifecycle phase.
func (s *Session) State() State { return s.state }

// InvalidValue returns the validation failure that sent the session
// into recovery, or nil.
func (s *Session) InvalidValue() *binding.InvalidValueError { return s.lastErr }

// AddTab declares a new tab. Fields added to it bind against the
// session's store.
func (s *Session) AddTab(name string) *Tab {
	t := &Tab{name: name, sess: s}
	s.tabs = append(s.tabs, t)
	return t
}

// SetRawIndent sets the indent width used when formatting the raw
// editor document. Zero keeps the default of two spaces.
func (s *Session) SetRawIndent(n int) {
	s.rawIndent = n
}

// OnSave registers a hook that runs before the store persists. Hooks
// run in registration order; the first error aborts the save.
func (s *Session) OnSave(fn func() error) {
	s.preSave = append(s.preSave, fn)
}

// Open starts the session: the store already holds a fresh load, so
// this validates it into the controls. An invalid stored value leaves
// the session recovering rather than failing.
func (s *Session) Open() error {
	if s.state != StateClosed {
		return fmt.Errorf("open: session is %s", s.state)
	}
	s.state = StateOpen
	return s.Refresh()
}

// Refresh re-pulls every binding in registration order. The first
// invalid value stops the pass and moves the session to recovery;
// non-validation errors propagate without a state change.
func (s *Session) Refresh() error {
	s.state = StateValidating
	err := s.reg.RefreshAll()
	if err == nil {
		s.state = StateOpen
		s.lastErr = nil
		return nil
	}
	var inv *binding.InvalidValueError
	if errors.As(err, &inv) {
		s.state = StateRecovering
		s.lastErr = inv
		return err
	}
	s.state = StateOpen
	return err
}

// Save runs the pre-save hooks, persists the staged tree and marks the
// session saved.
func (s *Session) Save() error {
	for _, fn := range s.preSave {
		if err := fn(); err != nil {
			return fmt.Errorf("before save: %w", err)
		}
	}
	if err := s.st.Save(); err != nil {
		return err
	}
	s.state = StateSaved
	return nil
}

// Cancel marks the session as left without saving.
func (s *Session) Cancel() {
	s.state = StateCancelled
}

// Close ends the session. Unless the session saved, staged edits are
// discarded by reloading from the registry, so a later Open never sees
// leftovers from an abandoned edit.
func (s *Session) Close() error {
	var err error
	if s.state != StateSaved {
		err = s.st.Load()
	}
	s.state = StateClosed
	s.lastErr = nil
	return err
}

// RestoreDefaults stages the default tree and re-pulls the controls.
func (s *Session) RestoreDefaults() error {
	s.st.ResetToDefault()
	return s.Refresh()
}

// RawJSON returns the staged tree formatted for the raw editor.
func (s *Session) RawJSON() ([]byte, error) {
	data, err := s.st.ToJSON()
	if err != nil {
		return nil, fmt.Errorf("serialize config: %w", err)
	}
	if s.rawIndent > 0 {
		opts := *pretty.DefaultOptions
		opts.Indent = strings.Repeat(" ", s.rawIndent)
		return pretty.PrettyOptions(data, &opts), nil
	}
	return pretty.Pretty(data), nil
}

// ApplyRaw parses a raw editor document, persists it, reloads from
// the registry and re-validates. The reload matters: keys deleted in
// the editor come back with their shipped default, like any other
// fresh load. A document that still fails validation leaves the
// session recovering again, with the persisted tree intact.
func (s *Session) ApplyRaw(doc []byte) error {
	if !gjson.ValidBytes(doc) {
		return fmt.Errorf("invalid JSON")
	}
	tree := map[string]any{}
	if err := json.Unmarshal(doc, &tree); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	s.st.Replace(tree)
	if err := s.st.Save(); err != nil {
		return err
	}
	if err := s.st.Load(); err != nil {
		return err
	}
	return s.Refresh()
}
