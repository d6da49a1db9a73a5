package binding

// Registry is an ordered list of refresh callbacks, one per bound
// control, invoked whenever displayed state must be resynchronized
// with the store.
type Registry struct {
	refreshers []func() error
}

// Register appends a refresh callback.
func (r *Registry) Register(fn func() error) {
	r.refreshers = append(r.refreshers, fn)
}

// Add registers a binding's Pull as a refresh callback.
func (r *Registry) Add(b *Binding) {
	r.Register(b.Pull)
}

// Len returns the number of registered callbacks.
func (r *Registry) Len() int {
	return len(r.refreshers)
}

// RefreshAll invokes every callback in registration order. It stops
// at the first failure and propagates it, so one invalid value aborts
// the whole resync before a partially-refreshed UI state is shown.
func (r *Registry) RefreshAll() error {
	for _, fn := range r.refreshers {
		if err := fn(); err != nil {
			return err
		}
	}
	return nil
}
