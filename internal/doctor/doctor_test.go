package doctor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/BlueGreenMagick/ankiaddonconfig/internal/addons"
)

func writeAddon(t *testing.T, dir, id string, files map[string]string) {
	t.Helper()
	addonDir := filepath.Join(dir, id)
	if err := os.MkdirAll(addonDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(addonDir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
}

func TestRun_CleanDirectory(t *testing.T) {
	dir := t.TempDir()
	writeAddon(t, dir, "good", map[string]string{
		"manifest.json":       `{"name": "Good Addon"}`,
		"config.default.json": `{"limit": 5}`,
		"config.json":         `{"limit": 10}`,
		"config.form.json":    `{"tabs":[{"name":"General","fields":[{"kind":"number","key":"limit"}]}]}`,
	})

	issues, err := Run(addons.NewDir(dir))
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if len(issues) != 0 {
		t.Errorf("issues = %v, want none", issues)
	}
}

func TestRun_BrokenUserConfig(t *testing.T) {
	dir := t.TempDir()
	writeAddon(t, dir, "broken", map[string]string{
		"config.default.json": `{"limit": 5}`,
		"config.json":         `{"limit": `,
	})

	issues, err := Run(addons.NewDir(dir))
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if len(issues) != 1 {
		t.Fatalf("issues = %v, want 1", issues)
	}
	if issues[0].Category != CategoryConfig || issues[0].Addon != "broken" {
		t.Errorf("issue = %+v", issues[0])
	}
}

func TestRun_FormKeyWithoutDefault(t *testing.T) {
	dir := t.TempDir()
	writeAddon(t, dir, "stale", map[string]string{
		"config.default.json": `{"limit": 5}`,
		"config.form.json":    `{"tabs":[{"name":"General","fields":[{"kind":"bool","key":"removed.option"}]}]}`,
	})

	issues, err := Run(addons.NewDir(dir))
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if len(issues) != 1 {
		t.Fatalf("issues = %v, want 1", issues)
	}
	if issues[0].Category != CategoryForm {
		t.Errorf("issue = %+v", issues[0])
	}
}

func TestRun_BadDefaultsAndForm(t *testing.T) {
	dir := t.TempDir()
	writeAddon(t, dir, "worse", map[string]string{
		"config.default.json": `not json`,
		"config.form.json":    `{"tabs":[]}`,
	})

	issues, err := Run(addons.NewDir(dir))
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if len(issues) != 2 {
		t.Fatalf("issues = %v, want 2", issues)
	}
	if issues[0].Category != CategoryDefaults {
		t.Errorf("first issue = %+v", issues[0])
	}
	if issues[1].Category != CategoryForm {
		t.Errorf("second issue = %+v", issues[1])
	}
}
