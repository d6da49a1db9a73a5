package addons

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"dario.cat/mergo"

	"github.com/BlueGreenMagick/ankiaddonconfig/internal/storage"
)

// Per-add-on file names inside the addons directory.
const (
	manifestFile = "manifest.json"
	defaultsFile = "config.default.json"
	userFile     = "config.json"
	formFile     = "config.form.json"
)

// DirRegistry is a Registry backed by a directory of add-ons:
//
//	<dir>/<id>/manifest.json        display name
//	<dir>/<id>/config.default.json  shipped defaults
//	<dir>/<id>/config.json          user values (absent until first save)
//	<dir>/<id>/config.form.json     optional form descriptor
type DirRegistry struct {
	dir         string
	openActions map[string]func() error
}

// NewDir creates a registry over the given addons directory.
func NewDir(dir string) *DirRegistry {
	return &DirRegistry{
		dir:         dir,
		openActions: make(map[string]func() error),
	}
}

// Dir returns the addons directory path.
func (r *DirRegistry) Dir() string {
	return r.dir
}

func (r *DirRegistry) addonPath(id, file string) string {
	return filepath.Join(r.dir, id, file)
}

// List returns the IDs of all add-ons, sorted.
func (r *DirRegistry) List() ([]string, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read addons directory: %w", err)
	}

	var ids []string
	for _, e := range entries {
		if e.IsDir() {
			ids = append(ids, e.Name())
		}
	}
	sort.Strings(ids)
	return ids, nil
}

// Meta returns the manifest metadata for an add-on. A missing
// manifest is not an error; the ID doubles as the display name.
func (r *DirRegistry) Meta(id string) (Meta, error) {
	meta := Meta{ID: id}

	if _, err := os.Stat(filepath.Join(r.dir, id)); err != nil {
		return meta, fmt.Errorf("addon %q: %w", id, err)
	}

	err := storage.LoadJSON(r.addonPath(id, manifestFile), &meta)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return meta, fmt.Errorf("addon %q: read manifest: %w", id, err)
	}
	meta.ID = id
	return meta, nil
}

// FetchDefaults returns a fresh copy of the shipped defaults.
// An add-on without a defaults file has an empty default tree.
func (r *DirRegistry) FetchDefaults(id string) (map[string]any, error) {
	tree := map[string]any{}
	err := storage.LoadJSON(r.addonPath(id, defaultsFile), &tree)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("addon %q: read defaults: %w", id, err)
	}
	return tree, nil
}

// FetchConfig returns the effective configuration: user values merged
// over shipped defaults, so keys added by an add-on update show up
// with their default value even before the user saves.
func (r *DirRegistry) FetchConfig(id string) (map[string]any, error) {
	defaults, err := r.FetchDefaults(id)
	if err != nil {
		return nil, err
	}

	user := map[string]any{}
	err = storage.LoadJSON(r.addonPath(id, userFile), &user)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaults, nil
		}
		return nil, fmt.Errorf("addon %q: read config: %w", id, err)
	}

	if err := mergo.Merge(&user, defaults); err != nil {
		return nil, fmt.Errorf("addon %q: merge defaults: %w", id, err)
	}
	return user, nil
}

// PersistConfig atomically writes the add-on's user configuration.
func (r *DirRegistry) PersistConfig(id string, tree map[string]any) error {
	if tree == nil {
		return fmt.Errorf("addon %q: nil config tree", id)
	}
	if err := storage.SaveJSON(r.addonPath(id, userFile), tree); err != nil {
		return fmt.Errorf("addon %q: write config: %w", id, err)
	}
	return nil
}

// Form returns the add-on's form descriptor, or nil when the add-on
// does not ship one.
func (r *DirRegistry) Form(id string) (*FormSpec, error) {
	data, err := os.ReadFile(r.addonPath(id, formFile))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("addon %q: read form descriptor: %w", id, err)
	}

	var spec FormSpec
	if err := json.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("addon %q: parse form descriptor: %w", id, err)
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("addon %q: form descriptor: %w", id, err)
	}
	return &spec, nil
}

// RegisterOpenAction installs a callback replacing the stock config
// surface for an add-on.
func (r *DirRegistry) RegisterOpenAction(id string, fn func() error) {
	r.openActions[id] = fn
}

// OpenAction returns the registered callback, or nil.
func (r *DirRegistry) OpenAction(id string) func() error {
	return r.openActions[id]
}
