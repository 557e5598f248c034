package mesh

import (
	"math"

	"github.com/Carmen-Shannon/gloam/engine/shader"
)

// cubeFaces lists each face's outward normal and its tangent/bitangent
// axes. Corners wind counter-clockwise when viewed from outside.
var cubeFaces = [6]struct {
	normal [3]float32
	u      [3]float32
	v      [3]float32
}{
	{normal: [3]float32{0, 0, 1}, u: [3]float32{1, 0, 0}, v: [3]float32{0, 1, 0}},
	{normal: [3]float32{0, 0, -1}, u: [3]float32{-1, 0, 0}, v: [3]float32{0, 1, 0}},
	{normal: [3]float32{1, 0, 0}, u: [3]float32{0, 0, -1}, v: [3]float32{0, 1, 0}},
	{normal: [3]float32{-1, 0, 0}, u: [3]float32{0, 0, 1}, v: [3]float32{0, 1, 0}},
	{normal: [3]float32{0, 1, 0}, u: [3]float32{1, 0, 0}, v: [3]float32{0, 0, -1}},
	{normal: [3]float32{0, -1, 0}, u: [3]float32{1, 0, 0}, v: [3]float32{0, 0, 1}},
}

// NewCube creates an axis-aligned cube centered on the origin with
// per-face normals and a full [0,1] texture mapping on every face.
//
// Parameters:
//   - size: the edge length (must be > 0)
//   - options: additional mesh builder options
//
// Returns:
//   - Mesh: the cube mesh
func NewCube(size float32, options ...MeshBuilderOption) Mesh {
	if size <= 0 {
		panic("mesh: cube size must be positive")
	}
	h := size / 2
	vertices := make([]shader.Vertex, 0, 24)
	indices := make([]uint32, 0, 36)

	for _, f := range cubeFaces {
		base := uint32(len(vertices))
		corners := [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
		uvs := [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
		for i, c := range corners {
			var p [3]float32
			for axis := 0; axis < 3; axis++ {
				p[axis] = f.normal[axis]*h + f.u[axis]*c[0]*h + f.v[axis]*c[1]*h
			}
			vertices = append(vertices, shader.Vertex{
				Position: p,
				Normal:   f.normal,
				TexCoord: [3]float32{uvs[i][0], uvs[i][1], 0},
				Color:    [3]float32{1, 1, 1},
			})
		}
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}

	opts := append([]MeshBuilderOption{
		WithName("cube"),
		WithVertices(vertices),
		WithIndices(indices),
	}, options...)
	return NewMesh(opts...)
}

// NewPlane creates a square on the XZ plane at y = 0 facing +Y, centered
// on the origin.
//
// Parameters:
//   - size: the edge length (must be > 0)
//   - options: additional mesh builder options
//
// Returns:
//   - Mesh: the plane mesh
func NewPlane(size float32, options ...MeshBuilderOption) Mesh {
	if size <= 0 {
		panic("mesh: plane size must be positive")
	}
	h := size / 2
	up := [3]float32{0, 1, 0}
	vertices := []shader.Vertex{
		{Position: [3]float32{-h, 0, h}, Normal: up, TexCoord: [3]float32{0, 0, 0}, Color: [3]float32{1, 1, 1}},
		{Position: [3]float32{h, 0, h}, Normal: up, TexCoord: [3]float32{1, 0, 0}, Color: [3]float32{1, 1, 1}},
		{Position: [3]float32{h, 0, -h}, Normal: up, TexCoord: [3]float32{1, 1, 0}, Color: [3]float32{1, 1, 1}},
		{Position: [3]float32{-h, 0, -h}, Normal: up, TexCoord: [3]float32{0, 1, 0}, Color: [3]float32{1, 1, 1}},
	}
	indices := []uint32{0, 1, 2, 0, 2, 3}

	opts := append([]MeshBuilderOption{
		WithName("plane"),
		WithVertices(vertices),
		WithIndices(indices),
	}, options...)
	return NewMesh(opts...)
}

// NewUVSphere creates a latitude/longitude sphere centered on the origin.
// Normals point outward; texture coordinates wrap once around the equator
// and run pole to pole.
//
// Parameters:
//   - radius: the sphere radius (must be > 0)
//   - rings: latitude subdivisions (must be >= 2)
//   - sectors: longitude subdivisions (must be >= 3)
//   - options: additional mesh builder options
//
// Returns:
//   - Mesh: the sphere mesh
func NewUVSphere(radius float32, rings, sectors int, options ...MeshBuilderOption) Mesh {
	if radius <= 0 {
		panic("mesh: sphere radius must be positive")
	}
	if rings < 2 || sectors < 3 {
		panic("mesh: sphere requires at least 2 rings and 3 sectors")
	}

	vertices := make([]shader.Vertex, 0, (rings+1)*(sectors+1))
	for r := 0; r <= rings; r++ {
		phi := math.Pi * float64(r) / float64(rings)
		y := float32(math.Cos(phi))
		ringRadius := float32(math.Sin(phi))
		for s := 0; s <= sectors; s++ {
			theta := 2 * math.Pi * float64(s) / float64(sectors)
			n := [3]float32{
				ringRadius * float32(math.Cos(theta)),
				y,
				ringRadius * float32(math.Sin(theta)),
			}
			vertices = append(vertices, shader.Vertex{
				Position: [3]float32{n[0] * radius, n[1] * radius, n[2] * radius},
				Normal:   n,
				TexCoord: [3]float32{float32(s) / float32(sectors), float32(r) / float32(rings), 0},
				Color:    [3]float32{1, 1, 1},
			})
		}
	}

	indices := make([]uint32, 0, rings*sectors*6)
	stride := uint32(sectors + 1)
	for r := 0; r < rings; r++ {
		for s := 0; s < sectors; s++ {
			i0 := uint32(r)*stride + uint32(s)
			i1 := i0 + 1
			i2 := i0 + stride
			i3 := i2 + 1
			indices = append(indices, i0, i1, i2, i1, i3, i2)
		}
	}

	opts := append([]MeshBuilderOption{
		WithName("sphere"),
		WithVertices(vertices),
		WithIndices(indices),
	}, options...)
	return NewMesh(opts...)
}

// NewQuad2D creates a unit quad spanning [0,1] on x and y at z = 0, with
// texture coordinates matching position. Overlay draws scale it to a pixel
// rectangle through the model matrix.
//
// Parameters:
//   - options: additional mesh builder options
//
// Returns:
//   - Mesh: the quad mesh
func NewQuad2D(options ...MeshBuilderOption) Mesh {
	forward := [3]float32{0, 0, 1}
	vertices := []shader.Vertex{
		{Position: [3]float32{0, 0, 0}, Normal: forward, TexCoord: [3]float32{0, 0, 0}, Color: [3]float32{1, 1, 1}},
		{Position: [3]float32{1, 0, 0}, Normal: forward, TexCoord: [3]float32{1, 0, 0}, Color: [3]float32{1, 1, 1}},
		{Position: [3]float32{1, 1, 0}, Normal: forward, TexCoord: [3]float32{1, 1, 0}, Color: [3]float32{1, 1, 1}},
		{Position: [3]float32{0, 1, 0}, Normal: forward, TexCoord: [3]float32{0, 1, 0}, Color: [3]float32{1, 1, 1}},
	}
	indices := []uint32{0, 1, 2, 0, 2, 3}

	opts := append([]MeshBuilderOption{
		WithName("quad2d"),
		WithVertices(vertices),
		WithIndices(indices),
	}, options...)
	return NewMesh(opts...)
}
