package mesh

import "github.com/Carmen-Shannon/gloam/engine/shader"

// MeshBuilderOption configures a mesh during construction.
type MeshBuilderOption func(*mesh)

// WithName sets the registry identifier for the mesh.
//
// Parameters:
//   - name: the mesh name
//
// Returns:
//   - MeshBuilderOption: the configured option
func WithName(name string) MeshBuilderOption {
	return func(m *mesh) {
		m.name = name
	}
}

// WithVertices sets the vertex stream. The slice is used directly, not
// copied.
//
// Parameters:
//   - vertices: the vertex attributes
//
// Returns:
//   - MeshBuilderOption: the configured option
func WithVertices(vertices []shader.Vertex) MeshBuilderOption {
	return func(m *mesh) {
		m.vertices = vertices
	}
}

// WithIndices sets the triangle index stream. The slice is used directly,
// not copied.
//
// Parameters:
//   - indices: the indices, three per triangle
//
// Returns:
//   - MeshBuilderOption: the configured option
func WithIndices(indices []uint32) MeshBuilderOption {
	return func(m *mesh) {
		m.indices = indices
	}
}

// WithVertexColor overwrites every vertex color with a single RGB value.
//
// Parameters:
//   - color: the color to apply
//
// Returns:
//   - MeshBuilderOption: the configured option
func WithVertexColor(color [3]float32) MeshBuilderOption {
	return func(m *mesh) {
		for i := range m.vertices {
			m.vertices[i].Color = color
		}
	}
}
