// Package store holds an add-on's configuration tree in memory.
//
// Edits made through Set and Delete are staged: nothing is persisted
// until Save hands the whole tree back to the add-on registry. Load
// discards staged edits by refetching. The default tree is captured
// once at construction and never mutated; ResetToDefault installs a
// deep copy of it.
package store

import (
	"encoding/json"
	"fmt"

	"github.com/BlueGreenMagick/ankiaddonconfig/internal/addons"
	"github.com/BlueGreenMagick/ankiaddonconfig/internal/confpath"
)

// Store is the staged configuration of a single add-on.
type Store struct {
	reg  addons.Registry
	id   string
	name string

	current   map[string]any
	defaults  map[string]any
	observers []func(path string)
}

// New constructs a store for the given add-on, capturing its defaults
// and loading the current configuration from the registry.
func New(reg addons.Registry, id string) (*Store, error) {
	meta, err := reg.Meta(id)
	if err != nil {
		return nil, err
	}
	defaults, err := reg.FetchDefaults(id)
	if err != nil {
		return nil, err
	}

	s := &Store{
		reg:      reg,
		id:       id,
		name:     meta.HumanName(),
		defaults: defaults,
	}
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

// AddonID returns the add-on's identifier.
func (s *Store) AddonID() string { return s.id }

// HumanName returns the add-on's display name.
func (s *Store) HumanName() string { return s.name }

// OnChange registers an observer invoked synchronously after every
// staged mutation (Set, Delete, ResetToDefault) and after Load. The
// path argument is empty for whole-tree replacements.
func (s *Store) OnChange(fn func(path string)) {
	s.observers = append(s.observers, fn)
}

func (s *Store) notify(path string) {
	for _, fn := range s.observers {
		fn(path)
	}
}

// Load replaces the current tree with a fresh fetch from the
// registry, discarding all staged edits.
func (s *Store) Load() error {
	tree, err := s.reg.FetchConfig(s.id)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	s.current = tree
	s.notify("")
	return nil
}

// Save persists the current tree verbatim. Validation is the binding
// layer's concern; Save performs none.
func (s *Store) Save() error {
	if err := s.reg.PersistConfig(s.id, s.current); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	return nil
}

// ResetToDefault replaces the current tree with a deep copy of the
// defaults. The change is staged; call Save to make it durable.
func (s *Store) ResetToDefault() {
	s.current = deepCopy(s.defaults)
	s.notify("")
}

// Get returns the value at path, or fallback when the path does not
// resolve. Missing paths are never an error here, so optional keys
// read naturally.
func (s *Store) Get(path string, fallback any) any {
	v, err := confpath.Resolve(s.current, path)
	if err != nil {
		return fallback
	}
	return v
}

// GetDefault returns the default value at path. The default tree is
// assumed complete, so a missing path surfaces as an error.
func (s *Store) GetDefault(path string) (any, error) {
	return confpath.Resolve(s.defaults, path)
}

// Set stages value at path, auto-vivifying intermediate mappings.
func (s *Store) Set(path string, value any) error {
	if err := confpath.Assign(s.current, path, value); err != nil {
		return err
	}
	s.notify(path)
	return nil
}

// Delete removes and returns the value at path. Reports false when
// the path (or any intermediate) is absent.
func (s *Store) Delete(path string) (any, bool) {
	v, ok := confpath.Remove(s.current, path)
	if ok {
		s.notify(path)
	}
	return v, ok
}

// Replace stages tree as the new current configuration. Used by the
// raw editor, which hands back a whole parsed document.
func (s *Store) Replace(tree map[string]any) {
	if tree == nil {
		tree = map[string]any{}
	}
	s.current = tree
	s.notify("")
}

// Contains reports whether path resolves in the current tree.
func (s *Store) Contains(path string) bool {
	return confpath.Contains(s.current, path)
}

// Snapshot returns a deep copy of the current tree, safe for callers
// to mutate.
func (s *Store) Snapshot() map[string]any {
	return deepCopy(s.current)
}

// DefaultSnapshot returns a deep copy of the immutable default tree.
func (s *Store) DefaultSnapshot() map[string]any {
	return deepCopy(s.defaults)
}

// ToJSON serializes the current tree.
func (s *Store) ToJSON() ([]byte, error) {
	return json.Marshal(s.current)
}

// deepCopy clones a configuration tree. Trees are JSON-shaped by
// invariant (no cycles, only mappings/sequences/scalars), so a
// marshal round-trip is a faithful copy.
func deepCopy(tree map[string]any) map[string]any {
	if tree == nil {
		return map[string]any{}
	}
	data, err := json.Marshal(tree)
	if err != nil {
		// Unreachable for JSON-shaped trees; fall back to empty.
		return map[string]any{}
	}
	out := map[string]any{}
	if err := json.Unmarshal(data, &out); err != nil {
		return map[string]any{}
	}
	return out
}
