// Package config loads the tool's own configuration from
// ~/.addonconf/config.toml. This is distinct from the add-on config
// trees the tool edits: it controls where add-ons live and how the
// editor looks.
package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/BlueGreenMagick/ankiaddonconfig/internal/storage"
)

// EditorConfig holds form-surface settings.
type EditorConfig struct {
	Width     int `toml:"width" json:"width"`           // preferred form width in cells
	RawIndent int `toml:"raw_indent" json:"raw_indent"` // indent width in the raw JSON editor
}

// Config holds the tool configuration.
type Config struct {
	AddonsDir string       `toml:"addons_dir" json:"addons_dir"` // directory containing add-ons
	Theme     string       `toml:"theme" json:"theme"`           // color theme name
	Editor    EditorConfig `toml:"editor" json:"editor"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Theme: "default",
		Editor: EditorConfig{
			Width:     72,
			RawIndent: 2,
		},
	}
}

// Path returns the config file location.
func Path() (string, error) {
	return storage.StateFile("config.toml")
}

// Load reads the config file, applying defaults for anything unset.
// A missing file is not an error.
func Load() (Config, error) {
	cfg := Defaults()

	path, err := Path()
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg.applyFallbacks()
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.applyFallbacks()
	return cfg, nil
}

// applyFallbacks fills values that must never be empty.
func (c *Config) applyFallbacks() {
	if c.AddonsDir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			c.AddonsDir = filepath.Join(home, ".addonconf", "addons")
		} else {
			c.AddonsDir = "addons"
		}
	}
	if c.Theme == "" {
		c.Theme = "default"
	}
	if c.Editor.Width <= 0 {
		c.Editor.Width = 72
	}
	if c.Editor.RawIndent <= 0 {
		c.Editor.RawIndent = 2
	}
}

// DefaultFileContent returns the content written by `config init`.
func DefaultFileContent() string {
	return `# addonconf configuration

# Directory containing add-ons. Each add-on is a subdirectory with a
# manifest.json, config.default.json and optional config.form.json.
# addons_dir = "~/.addonconf/addons"

# Color theme: default, dracula, nord, gruvbox
theme = "default"

[editor]
# Preferred form width in terminal cells
width = 72
# Indent width in the raw JSON editor
raw_indent = 2
`
}

type ctxKey struct{}

// WithConfig attaches the config to the context.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, ctxKey{}, cfg)
}

// FromContext retrieves the config from context, falling back to
// defaults if none is attached.
func FromContext(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(ctxKey{}).(*Config); ok {
		return cfg
	}
	cfg := Defaults()
	cfg.applyFallbacks()
	return &cfg
}
