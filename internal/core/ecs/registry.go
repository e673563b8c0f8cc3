package ecs

// Registry fans entity teardown out to every component store, so the world
// can destroy an entity without knowing which components it carries.
type Registry struct {
	stores []Removable
}

func NewRegistry() *Registry { return &Registry{} }

// Register adds a store. Stores see removals only for destroys issued after
// registration.
func (r *Registry) Register(store Removable) {
	r.stores = append(r.stores, store)
}

// RemoveAll strips id from every registered store. Ids with no components
// are a no-op.
func (r *Registry) RemoveAll(id EntityID) {
	for _, s := range r.stores {
		s.Remove(id)
	}
}
