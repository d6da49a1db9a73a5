package geometry

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveLoad(t *testing.T) {
	t.Setenv("ADDONCONF_DIR", t.TempDir())

	if _, ok := Load("My Addon"); ok {
		t.Error("Load before Save reported a size")
	}

	if err := Save("My Addon", Size{Width: 100, Height: 40}); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if err := Save("Other Addon", Size{Width: 80, Height: 24}); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	got, ok := Load("My Addon")
	if !ok || got != (Size{Width: 100, Height: 40}) {
		t.Errorf("Load = %+v, %v", got, ok)
	}

	got, ok = Load("Other Addon")
	if !ok || got.Width != 80 {
		t.Errorf("Load = %+v, %v", got, ok)
	}
}

func TestSave_IgnoresEmptySize(t *testing.T) {
	t.Setenv("ADDONCONF_DIR", t.TempDir())

	if err := Save("X", Size{}); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if _, ok := Load("X"); ok {
		t.Error("zero size was persisted")
	}
}

func TestLoad_CorruptState(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("ADDONCONF_DIR", dir)

	if err := os.WriteFile(filepath.Join(dir, "geometry.json"), []byte("{bad"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, ok := Load("X"); ok {
		t.Error("Load from corrupt state reported a size")
	}
	// Saving over corrupt state must recover.
	if err := Save("X", Size{Width: 1, Height: 1}); err != nil {
		t.Fatalf("Save over corrupt state: %v", err)
	}
	if _, ok := Load("X"); !ok {
		t.Error("Save did not recover from corrupt state")
	}
}
