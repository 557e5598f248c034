package mesh

import "sync"

// registry is the implementation of the Registry interface.
type registry struct {
	mu     sync.RWMutex
	meshes map[string]Mesh
}

// Registry is a concurrency-safe name-keyed mesh store shared across
// scenes.
type Registry interface {
	// Register stores a mesh under its name, replacing any previous entry.
	// Panics if the mesh has no name.
	//
	// Parameters:
	//   - m: the mesh to store
	Register(m Mesh)

	// Lookup returns the mesh registered under a name.
	//
	// Parameters:
	//   - name: the mesh name
	//
	// Returns:
	//   - Mesh: the registered mesh, or nil
	//   - bool: whether the name was present
	Lookup(name string) (Mesh, bool)

	// Remove drops the mesh registered under a name, if any.
	//
	// Parameters:
	//   - name: the mesh name
	Remove(name string)

	// Names returns the registered names in unspecified order.
	//
	// Returns:
	//   - []string: the registered names
	Names() []string
}

var _ Registry = &registry{}

// NewRegistry creates an empty mesh registry.
//
// Returns:
//   - Registry: the registry
func NewRegistry() Registry {
	return &registry{meshes: make(map[string]Mesh)}
}

func (r *registry) Register(m Mesh) {
	if m.Name() == "" {
		panic("mesh: cannot register a mesh with an empty name")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.meshes[m.Name()] = m
}

func (r *registry) Lookup(name string) (Mesh, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.meshes[name]
	return m, ok
}

func (r *registry) Remove(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.meshes, name)
}

func (r *registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.meshes))
	for name := range r.meshes {
		names = append(names, name)
	}
	return names
}
