package texture

import "sync"

// registry is the implementation of the Registry interface.
type registry struct {
	mu       sync.RWMutex
	textures map[string]Texture
}

// Registry is a name-keyed store of textures shared across a scene.
// Safe for concurrent use.
type Registry interface {
	// Register stores a texture under its name, replacing any previous entry.
	// Panics if the texture has an empty name.
	//
	// Parameters:
	//   - t: the texture to store
	Register(t Texture)

	// Lookup retrieves the texture registered under name.
	//
	// Parameters:
	//   - name: the texture name
	//
	// Returns:
	//   - Texture: the registered texture, or nil if not found
	Lookup(name string) Texture

	// Remove deletes the texture registered under name, if present.
	//
	// Parameters:
	//   - name: the texture name
	Remove(name string)

	// Names returns the registered texture names in unspecified order.
	//
	// Returns:
	//   - []string: the registered names
	Names() []string
}

var _ Registry = &registry{}

// NewRegistry creates an empty texture Registry.
//
// Returns:
//   - Registry: the new registry
func NewRegistry() Registry {
	return &registry{
		textures: make(map[string]Texture),
	}
}

func (r *registry) Register(t Texture) {
	if t.Name() == "" {
		panic("texture: cannot register a texture with an empty name")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.textures[t.Name()] = t
}

func (r *registry) Lookup(name string) Texture {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.textures[name]
}

func (r *registry) Remove(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.textures, name)
}

func (r *registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.textures))
	for name := range r.textures {
		names = append(names, name)
	}
	return names
}
