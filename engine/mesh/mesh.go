// package mesh provides CPU-side triangle geometry: an indexed vertex
// container with a precomputed bounding sphere, procedural generators for
// the built-in shapes, and a name-keyed registry.
package mesh

import (
	"math"

	"github.com/Carmen-Shannon/gloam/engine/shader"
)

// mesh is the implementation of the Mesh interface.
type mesh struct {
	name     string
	vertices []shader.Vertex
	indices  []uint32

	boundCenter [3]float32
	boundRadius float32
}

// Mesh is an immutable indexed triangle list. Indices are grouped in threes;
// every index must address a valid vertex.
type Mesh interface {
	// Name returns the registry identifier for the mesh.
	//
	// Returns:
	//   - string: the mesh name
	Name() string

	// Vertices returns the vertex stream. The slice is shared, not copied;
	// callers must treat it as read-only.
	//
	// Returns:
	//   - []shader.Vertex: the vertex attributes
	Vertices() []shader.Vertex

	// Indices returns the triangle index stream, three indices per triangle.
	//
	// Returns:
	//   - []uint32: the indices
	Indices() []uint32

	// TriangleCount returns the number of triangles in the mesh.
	//
	// Returns:
	//   - int: len(Indices()) / 3
	TriangleCount() int

	// BoundingSphere returns a model-space sphere enclosing every vertex,
	// used for visibility culling.
	//
	// Returns:
	//   - [3]float32: the sphere center
	//   - float32: the sphere radius
	BoundingSphere() ([3]float32, float32)
}

var _ Mesh = &mesh{}

// NewMesh creates a Mesh from the given options. Vertices and indices are
// required; the bounding sphere is computed once at construction.
//
// Panics if the mesh has no vertices, if the index count is not a multiple
// of three, or if any index is out of range.
//
// Parameters:
//   - options: the mesh builder options
//
// Returns:
//   - Mesh: the constructed mesh
func NewMesh(options ...MeshBuilderOption) Mesh {
	m := &mesh{}
	for _, opt := range options {
		opt(m)
	}
	if len(m.vertices) == 0 {
		panic("mesh: a mesh requires at least one vertex")
	}
	if len(m.indices)%3 != 0 {
		panic("mesh: index count must be a multiple of three")
	}
	for _, i := range m.indices {
		if int(i) >= len(m.vertices) {
			panic("mesh: index out of range")
		}
	}
	m.computeBounds()
	return m
}

func (m *mesh) Name() string {
	return m.name
}

func (m *mesh) Vertices() []shader.Vertex {
	return m.vertices
}

func (m *mesh) Indices() []uint32 {
	return m.indices
}

func (m *mesh) TriangleCount() int {
	return len(m.indices) / 3
}

func (m *mesh) BoundingSphere() ([3]float32, float32) {
	return m.boundCenter, m.boundRadius
}

// computeBounds centers the sphere on the positional AABB midpoint and
// expands the radius to the farthest vertex.
func (m *mesh) computeBounds() {
	min := m.vertices[0].Position
	max := min
	for _, v := range m.vertices[1:] {
		for i := 0; i < 3; i++ {
			if v.Position[i] < min[i] {
				min[i] = v.Position[i]
			}
			if v.Position[i] > max[i] {
				max[i] = v.Position[i]
			}
		}
	}
	for i := 0; i < 3; i++ {
		m.boundCenter[i] = (min[i] + max[i]) * 0.5
	}

	var maxSq float32
	for _, v := range m.vertices {
		dx := v.Position[0] - m.boundCenter[0]
		dy := v.Position[1] - m.boundCenter[1]
		dz := v.Position[2] - m.boundCenter[2]
		if d := dx*dx + dy*dy + dz*dz; d > maxSq {
			maxSq = d
		}
	}
	m.boundRadius = float32(math.Sqrt(float64(maxSq)))
}
