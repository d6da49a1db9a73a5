// Package extedit opens files in the user's external editor. Used by
// `edit --external` to hand the raw config file to $VISUAL/$EDITOR
// instead of the built-in form.
package extedit

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

const fallbackEditor = "vi"

// Editor returns the editor command from the environment.
func Editor() string {
	if v := os.Getenv("VISUAL"); v != "" {
		return v
	}
	if e := os.Getenv("EDITOR"); e != "" {
		return e
	}
	return fallbackEditor
}

// Open runs the external editor on path, attached to the terminal,
// and blocks until it exits.
func Open(ctx context.Context, path string) error {
	parts := strings.Fields(Editor())
	args := append(parts[1:], path)

	cmd := exec.CommandContext(ctx, parts[0], args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor %s: %w", parts[0], err)
	}
	return nil
}
