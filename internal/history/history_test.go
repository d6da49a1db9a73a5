package history

import (
	"fmt"
	"reflect"
	"testing"
)

func TestRecord_MovesToFront(t *testing.T) {
	h := &History{Recent: []string{"a", "b", "c"}}

	h.Record("b")
	if !reflect.DeepEqual(h.Recent, []string{"b", "a", "c"}) {
		t.Errorf("Recent = %v", h.Recent)
	}

	h.Record("new")
	if !reflect.DeepEqual(h.Recent, []string{"new", "b", "a", "c"}) {
		t.Errorf("Recent = %v", h.Recent)
	}
}

func TestRecord_Caps(t *testing.T) {
	h := &History{}
	for i := 0; i < maxEntries+5; i++ {
		h.Record(fmt.Sprintf("addon-%d", i))
	}
	if len(h.Recent) != maxEntries {
		t.Errorf("len = %d, want %d", len(h.Recent), maxEntries)
	}
	if h.Recent[0] != fmt.Sprintf("addon-%d", maxEntries+4) {
		t.Errorf("front = %q", h.Recent[0])
	}
}

func TestRank(t *testing.T) {
	h := &History{Recent: []string{"a", "b"}}
	if h.Rank("a") != 0 || h.Rank("b") != 1 {
		t.Errorf("Rank(a)=%d Rank(b)=%d", h.Rank("a"), h.Rank("b"))
	}
	if h.Rank("z") != -1 {
		t.Errorf("Rank(z) = %d, want -1", h.Rank("z"))
	}
}

func TestRecordEdit_Roundtrip(t *testing.T) {
	t.Setenv("ADDONCONF_DIR", t.TempDir())

	if err := RecordEdit("night-mode"); err != nil {
		t.Fatalf("RecordEdit error: %v", err)
	}
	if err := RecordEdit("heatmap"); err != nil {
		t.Fatalf("RecordEdit error: %v", err)
	}

	h, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if !reflect.DeepEqual(h.Recent, []string{"heatmap", "night-mode"}) {
		t.Errorf("Recent = %v", h.Recent)
	}
}
