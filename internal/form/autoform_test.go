package form

import (
	"testing"

	"github.com/BlueGreenMagick/ankiaddonconfig/internal/addons"
	"github.com/BlueGreenMagick/ankiaddonconfig/internal/form/field"
)

func TestBuildFromSpec(t *testing.T) {
	sess, _ := newTestSession(t,
		map[string]any{
			"enabled": true,
			"mode":    "fast",
			"size":    float64(5),
			"color":   "#ff0000",
			"out":     "/tmp/out",
			"note":    "hi",
		},
		nil,
	)

	spec := &addons.FormSpec{Tabs: []addons.TabSpec{
		{Name: "General", Fields: []addons.FieldSpec{
			{Kind: addons.KindLabel, Label: "Settings below"},
			{Kind: addons.KindBool, Key: "enabled", Label: "Enabled"},
			{Kind: addons.KindChoice, Key: "mode", Choices: []addons.ChoiceSpec{
				{Label: "Fast", Value: "fast"},
				{Label: "Slow", Value: "slow"},
			}},
			{Kind: addons.KindNumber, Key: "size", Max: f64(99)},
		}},
		{Name: "Appearance", Fields: []addons.FieldSpec{
			{Kind: addons.KindColor, Key: "color"},
			{Kind: addons.KindPath, Key: "out", Directory: true},
			{Kind: addons.KindText, Key: "note"},
		}},
	}}

	if err := BuildFromSpec(sess, spec); err != nil {
		t.Fatalf("BuildFromSpec error: %v", err)
	}
	tabs := sess.Tabs()
	if len(tabs) != 2 {
		t.Fatalf("tabs = %d, want 2", len(tabs))
	}
	if got := len(tabs[0].Fields()); got != 4 {
		t.Errorf("tab 0 fields = %d, want 4", got)
	}

	if err := sess.Open(); err != nil {
		t.Fatalf("Open error: %v", err)
	}

	dd, ok := tabs[0].Fields()[2].(*field.Dropdown)
	if !ok {
		t.Fatalf("field 2 is %T, want dropdown", tabs[0].Fields()[2])
	}
	if dd.Index() != 0 {
		t.Errorf("dropdown index = %d, want 0 (fast)", dd.Index())
	}

	p, ok := tabs[1].Fields()[1].(*field.Path)
	if !ok {
		t.Fatalf("appearance field 1 is %T, want path", tabs[1].Fields()[1])
	}
	if !p.Directory() {
		t.Error("path field lost directory flag")
	}
}

func TestBuildFromSpec_InvalidDescriptor(t *testing.T) {
	sess, _ := newTestSession(t, map[string]any{}, nil)
	spec := &addons.FormSpec{Tabs: []addons.TabSpec{
		{Name: "General", Fields: []addons.FieldSpec{{Kind: "bool"}}},
	}}
	if err := BuildFromSpec(sess, spec); err == nil {
		t.Fatal("descriptor without key accepted")
	}
}

func TestBuildAuto(t *testing.T) {
	sess, _ := newTestSession(t,
		map[string]any{
			"flag":   true,
			"count":  float64(3),
			"ratio":  1.5,
			"color":  "#a0b1c2",
			"name":   "x",
			"nested": map[string]any{"deep": true},
			"list":   []any{"skipped"},
			"null":   nil,
		},
		nil,
	)
	BuildAuto(sess)

	tabs := sess.Tabs()
	if len(tabs) != 1 {
		t.Fatalf("tabs = %d, want 1", len(tabs))
	}

	var keys []string
	for _, f := range tabs[0].Fields() {
		keys = append(keys, f.Key())
	}
	want := []string{"color", "count", "flag", "name", "nested.deep", "ratio"}
	if len(keys) != len(want) {
		t.Fatalf("derived keys = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("derived keys = %v, want %v", keys, want)
		}
	}

	fields := tabs[0].Fields()
	if _, ok := fields[0].(*field.Color); !ok {
		t.Errorf("color is %T", fields[0])
	}
	if _, ok := fields[2].(*field.Checkbox); !ok {
		t.Errorf("flag is %T", fields[2])
	}
	if _, ok := fields[3].(*field.Text); !ok {
		t.Errorf("name is %T", fields[3])
	}
	if _, ok := fields[4].(*field.Checkbox); !ok {
		t.Errorf("nested.deep is %T", fields[4])
	}
}

func TestBuildAuto_EmptyDefaults(t *testing.T) {
	sess, _ := newTestSession(t, map[string]any{}, nil)
	BuildAuto(sess)

	tabs := sess.Tabs()
	if len(tabs) != 1 || len(tabs[0].Fields()) != 1 {
		t.Fatalf("tabs = %v", tabs)
	}
	if tabs[0].Fields()[0].Focusable() {
		t.Error("placeholder row should not take focus")
	}
}
