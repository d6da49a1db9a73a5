package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv("ADDONCONF_DIR", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Theme != "default" {
		t.Errorf("Theme = %q", cfg.Theme)
	}
	if cfg.Editor.Width != 72 {
		t.Errorf("Editor.Width = %d", cfg.Editor.Width)
	}
	if cfg.AddonsDir == "" {
		t.Error("AddonsDir fallback not applied")
	}
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("ADDONCONF_DIR", dir)

	content := `
addons_dir = "/opt/addons"
theme = "nord"

[editor]
width = 100
`
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.AddonsDir != "/opt/addons" {
		t.Errorf("AddonsDir = %q", cfg.AddonsDir)
	}
	if cfg.Theme != "nord" {
		t.Errorf("Theme = %q", cfg.Theme)
	}
	if cfg.Editor.Width != 100 {
		t.Errorf("Editor.Width = %d", cfg.Editor.Width)
	}
	// Unset values keep defaults.
	if cfg.Editor.RawIndent != 2 {
		t.Errorf("Editor.RawIndent = %d", cfg.Editor.RawIndent)
	}
}

func TestLoad_BadFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("ADDONCONF_DIR", dir)

	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("theme = ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(); err == nil {
		t.Error("Load() of malformed TOML should fail")
	}
}

func TestContext_Roundtrip(t *testing.T) {
	cfg := Defaults()
	cfg.Theme = "dracula"

	ctx := WithConfig(context.Background(), &cfg)
	got := FromContext(ctx)
	if got.Theme != "dracula" {
		t.Errorf("Theme = %q", got.Theme)
	}
}

func TestFromContext_Fallback(t *testing.T) {
	got := FromContext(context.Background())
	if got == nil || got.Theme != "default" || got.AddonsDir == "" {
		t.Errorf("FromContext fallback = %+v", got)
	}
}
