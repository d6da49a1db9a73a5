package extedit

import "testing"

func TestEditor(t *testing.T) {
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "")
	if got := Editor(); got != "vi" {
		t.Errorf("Editor() = %q, want vi fallback", got)
	}

	t.Setenv("EDITOR", "nano")
	if got := Editor(); got != "nano" {
		t.Errorf("Editor() = %q", got)
	}

	t.Setenv("VISUAL", "code --wait")
	if got := Editor(); got != "code --wait" {
		t.Errorf("Editor() = %q, VISUAL should win", got)
	}
}
