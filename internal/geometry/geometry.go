// Package geometry persists the config window's last terminal size,
// keyed by add-on display name. The values are an opaque pass-through
// between close and reopen; they are not part of any config tree.
package geometry

import (
	"errors"
	"os"

	"github.com/BlueGreenMagick/ankiaddonconfig/internal/storage"
)

const stateFile = "geometry.json"

// Size is a window size in terminal cells.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

func load() (map[string]Size, error) {
	path, err := storage.StateFile(stateFile)
	if err != nil {
		return nil, err
	}
	sizes := map[string]Size{}
	if err := storage.LoadJSON(path, &sizes); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return sizes, nil
		}
		// Corrupted state starts fresh rather than blocking the UI.
		return map[string]Size{}, nil
	}
	return sizes, nil
}

// Load returns the remembered size for a window name.
func Load(name string) (Size, bool) {
	sizes, err := load()
	if err != nil {
		return Size{}, false
	}
	s, ok := sizes[name]
	return s, ok
}

// Save remembers the size for a window name.
func Save(name string, s Size) error {
	if s.Width <= 0 || s.Height <= 0 {
		return nil
	}
	sizes, err := load()
	if err != nil {
		return err
	}
	sizes[name] = s

	path, err := storage.StateFile(stateFile)
	if err != nil {
		return err
	}
	return storage.SaveJSON(path, sizes)
}
