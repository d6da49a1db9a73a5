package store

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/BlueGreenMagick/ankiaddonconfig/internal/addons"
	"github.com/BlueGreenMagick/ankiaddonconfig/internal/confpath"
)

// fakeRegistry is an in-memory addons.Registry. Fetches return deep
// copies, matching the behavior of the directory-backed registry.
type fakeRegistry struct {
	defaults  map[string]any
	persisted map[string]any
	actions   map[string]func() error
}

func newFakeRegistry(defaults, persisted map[string]any) *fakeRegistry {
	return &fakeRegistry{
		defaults:  defaults,
		persisted: persisted,
		actions:   map[string]func() error{},
	}
}

func clone(tree map[string]any) map[string]any {
	data, _ := json.Marshal(tree)
	out := map[string]any{}
	_ = json.Unmarshal(data, &out)
	return out
}

func (f *fakeRegistry) List() ([]string, error) { return []string{"demo"}, nil }

func (f *fakeRegistry) Meta(id string) (addons.Meta, error) {
	return addons.Meta{ID: id, Name: "Demo Addon"}, nil
}

func (f *fakeRegistry) FetchConfig(string) (map[string]any, error) {
	if f.persisted == nil {
		return clone(f.defaults), nil
	}
	return clone(f.persisted), nil
}

func (f *fakeRegistry) FetchDefaults(string) (map[string]any, error) {
	return clone(f.defaults), nil
}

func (f *fakeRegistry) PersistConfig(_ string, tree map[string]any) error {
	f.persisted = clone(tree)
	return nil
}

func (f *fakeRegistry) RegisterOpenAction(id string, fn func() error) { f.actions[id] = fn }
func (f *fakeRegistry) OpenAction(id string) func() error             { return f.actions[id] }

func newTestStore(t *testing.T) (*Store, *fakeRegistry) {
	t.Helper()
	reg := newFakeRegistry(
		map[string]any{"a": map[string]any{"b": float64(1)}, "flag": true},
		map[string]any{"a": map[string]any{"b": float64(1)}, "flag": false},
	)
	s, err := New(reg, "demo")
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return s, reg
}

func TestStore_GetSetContains(t *testing.T) {
	s, _ := newTestStore(t)

	if got := s.Get("a.b", nil); got != float64(1) {
		t.Errorf("Get(a.b) = %v", got)
	}
	if got := s.Get("missing", "fb"); got != "fb" {
		t.Errorf("Get fallback = %v", got)
	}

	if err := s.Set("a.c", float64(2)); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if !s.Contains("a.c") {
		t.Error("Contains(a.c) = false after Set")
	}
	if got := s.Get("a.c", nil); got != float64(2) {
		t.Errorf("Get(a.c) = %v", got)
	}
}

func TestStore_SetIsStaged(t *testing.T) {
	s, reg := newTestStore(t)

	if err := s.Set("flag", true); err != nil {
		t.Fatal(err)
	}
	if reg.persisted["flag"] != false {
		t.Error("Set leaked to the registry before Save")
	}

	if err := s.Save(); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if reg.persisted["flag"] != true {
		t.Error("Save did not persist staged edit")
	}
}

func TestStore_CancelRoundTrip(t *testing.T) {
	s, _ := newTestStore(t)
	before := s.Snapshot()

	if err := s.Set("a.b", float64(42)); err != nil {
		t.Fatal(err)
	}
	if err := s.Set("new.key", "x"); err != nil {
		t.Fatal(err)
	}
	s.Delete("flag")

	if err := s.Load(); err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if !reflect.DeepEqual(s.Snapshot(), before) {
		t.Errorf("Load did not restore pre-edit tree:\n got %v\nwant %v", s.Snapshot(), before)
	}
}

func TestStore_ResetToDefault(t *testing.T) {
	s, _ := newTestStore(t)

	if err := s.Set("flag", "garbage"); err != nil {
		t.Fatal(err)
	}
	s.ResetToDefault()

	snap := s.Snapshot()
	if !reflect.DeepEqual(snap, s.DefaultSnapshot()) {
		t.Errorf("after reset, snapshot = %v", snap)
	}
	if snap["flag"] != true {
		t.Errorf("flag = %v, want default true", snap["flag"])
	}

	// Mutating the snapshot must not corrupt the defaults.
	snap["flag"] = "mutated"
	if d, _ := s.GetDefault("flag"); d != true {
		t.Errorf("default corrupted by snapshot mutation: %v", d)
	}

	// Reset is staged, not persisted.
	s2, _ := newTestStore(t)
	s2.ResetToDefault()
	if got := s2.Get("flag", nil); got != true {
		t.Errorf("flag after reset = %v", got)
	}
}

func TestStore_GetDefault(t *testing.T) {
	s, _ := newTestStore(t)

	v, err := s.GetDefault("a.b")
	if err != nil || v != float64(1) {
		t.Errorf("GetDefault(a.b) = %v, %v", v, err)
	}

	_, err = s.GetDefault("missing")
	if !errors.Is(err, confpath.ErrPathNotFound) {
		t.Errorf("GetDefault(missing) error = %v, want ErrPathNotFound", err)
	}
}

func TestStore_Delete(t *testing.T) {
	s, _ := newTestStore(t)

	v, ok := s.Delete("a.b")
	if !ok || v != float64(1) {
		t.Fatalf("Delete(a.b) = %v, %v", v, ok)
	}
	if s.Contains("a.b") {
		t.Error("a.b still present after Delete")
	}

	if _, ok := s.Delete("no.such.path"); ok {
		t.Error("Delete of missing path reported success")
	}
}

func TestStore_Replace(t *testing.T) {
	s, reg := newTestStore(t)

	s.Replace(map[string]any{"only": "this"})
	if s.Contains("flag") {
		t.Error("old tree survived Replace")
	}
	if got := s.Get("only", nil); got != "this" {
		t.Errorf("Get(only) = %v", got)
	}
	if _, ok := reg.persisted["only"]; ok {
		t.Error("Replace leaked to the registry before Save")
	}

	s.Replace(nil)
	if got := s.Snapshot(); len(got) != 0 {
		t.Errorf("Replace(nil) left %v", got)
	}
}

func TestStore_SnapshotIsIndependent(t *testing.T) {
	s, _ := newTestStore(t)

	snap := s.Snapshot()
	snap["a"].(map[string]any)["b"] = float64(99)

	if got := s.Get("a.b", nil); got != float64(1) {
		t.Errorf("store affected by snapshot mutation: a.b = %v", got)
	}
}

func TestStore_OnChange(t *testing.T) {
	s, _ := newTestStore(t)

	var paths []string
	s.OnChange(func(p string) { paths = append(paths, p) })

	if err := s.Set("a.b", float64(3)); err != nil {
		t.Fatal(err)
	}
	s.Delete("flag")
	s.ResetToDefault()

	want := []string{"a.b", "flag", ""}
	if !reflect.DeepEqual(paths, want) {
		t.Errorf("observer paths = %v, want %v", paths, want)
	}
}

func TestStore_HumanName(t *testing.T) {
	s, _ := newTestStore(t)
	if s.HumanName() != "Demo Addon" {
		t.Errorf("HumanName() = %q", s.HumanName())
	}
	if s.AddonID() != "demo" {
		t.Errorf("AddonID() = %q", s.AddonID())
	}
}
