// Package history tracks recently edited add-ons. The interactive
// selector lists add-ons most-recently-edited first.
package history

import (
	"errors"
	"os"

	"github.com/BlueGreenMagick/ankiaddonconfig/internal/storage"
)

const stateFile = "history.json"

// maxEntries caps the remembered add-on IDs.
const maxEntries = 20

// History stores recently edited add-on IDs, most recent first.
type History struct {
	Recent []string `json:"recent"`
}

// Load reads the history from disk. Missing or corrupted state yields
// an empty history.
func Load() (*History, error) {
	path, err := storage.StateFile(stateFile)
	if err != nil {
		return nil, err
	}

	var h History
	if err := storage.LoadJSON(path, &h); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &History{}, nil
		}
		return &History{}, nil
	}
	return &h, nil
}

// Save writes the history to disk atomically.
func (h *History) Save() error {
	path, err := storage.StateFile(stateFile)
	if err != nil {
		return err
	}
	return storage.SaveJSON(path, h)
}

// Record moves id to the front of the history.
func (h *History) Record(id string) {
	recent := []string{id}
	for _, r := range h.Recent {
		if r != id {
			recent = append(recent, r)
		}
	}
	if len(recent) > maxEntries {
		recent = recent[:maxEntries]
	}
	h.Recent = recent
}

// Rank returns the position of id in the history, or -1.
func (h *History) Rank(id string) int {
	for i, r := range h.Recent {
		if r == id {
			return i
		}
	}
	return -1
}

// RecordEdit loads the history, records id and saves.
func RecordEdit(id string) error {
	h, err := Load()
	if err != nil {
		return err
	}
	h.Record(id)
	return h.Save()
}
