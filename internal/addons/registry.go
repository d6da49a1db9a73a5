// Package addons provides access to the host application's add-on
// registry: per-add-on configuration, shipped defaults, manifests and
// form descriptors. The configuration core never touches storage
// directly; it goes through the Registry interface.
package addons

// Meta describes an installed add-on.
type Meta struct {
	ID   string `json:"-"`
	Name string `json:"name"` // human-readable name
}

// HumanName returns the display name, falling back to the ID.
func (m Meta) HumanName() string {
	if m.Name != "" {
		return m.Name
	}
	return m.ID
}

// Registry is the add-on registry as seen by the configuration core.
type Registry interface {
	// List returns the IDs of all installed add-ons.
	List() ([]string, error)

	// Meta returns the manifest metadata for an add-on.
	Meta(id string) (Meta, error)

	// FetchConfig returns the add-on's effective configuration:
	// user values merged over shipped defaults.
	FetchConfig(id string) (map[string]any, error)

	// FetchDefaults returns a fresh copy of the shipped defaults.
	FetchDefaults(id string) (map[string]any, error)

	// PersistConfig durably writes the add-on's configuration.
	PersistConfig(id string, tree map[string]any) error

	// RegisterOpenAction installs a callback that replaces the stock
	// config surface for an add-on. OpenAction returns nil when no
	// callback is registered.
	RegisterOpenAction(id string, fn func() error)
	OpenAction(id string) func() error
}
