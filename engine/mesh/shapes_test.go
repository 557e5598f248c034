package mesh

import (
	"math"
	"testing"
)

// faceNormal computes the geometric normal of one indexed triangle.
func faceNormal(m Mesh, tri int) [3]float32 {
	idx := m.Indices()[tri*3 : tri*3+3]
	a := m.Vertices()[idx[0]].Position
	b := m.Vertices()[idx[1]].Position
	c := m.Vertices()[idx[2]].Position
	e1 := [3]float32{b[0] - a[0], b[1] - a[1], b[2] - a[2]}
	e2 := [3]float32{c[0] - a[0], c[1] - a[1], c[2] - a[2]}
	return [3]float32{
		e1[1]*e2[2] - e1[2]*e2[1],
		e1[2]*e2[0] - e1[0]*e2[2],
		e1[0]*e2[1] - e1[1]*e2[0],
	}
}

func TestNewCube(t *testing.T) {
	m := NewCube(2)
	if len(m.Vertices()) != 24 {
		t.Errorf("vertex count = %d, want 24", len(m.Vertices()))
	}
	if m.TriangleCount() != 12 {
		t.Errorf("triangle count = %d, want 12", m.TriangleCount())
	}

	center, radius := m.BoundingSphere()
	if center != ([3]float32{0, 0, 0}) {
		t.Errorf("center = %v, want origin", center)
	}
	want := float32(math.Sqrt(3))
	if d := radius - want; d < -1e-5 || d > 1e-5 {
		t.Errorf("radius = %v, want %v", radius, want)
	}

	// Every triangle's geometric normal must agree with its vertices'
	// stored normal: outward faces, consistent winding.
	for tri := 0; tri < m.TriangleCount(); tri++ {
		fn := faceNormal(m, tri)
		vn := m.Vertices()[m.Indices()[tri*3]].Normal
		dot := fn[0]*vn[0] + fn[1]*vn[1] + fn[2]*vn[2]
		if dot <= 0 {
			t.Errorf("triangle %d winds against its normal %v", tri, vn)
		}
	}
}

func TestNewPlane(t *testing.T) {
	m := NewPlane(4)
	if len(m.Vertices()) != 4 || m.TriangleCount() != 2 {
		t.Fatalf("plane = %d vertices, %d triangles", len(m.Vertices()), m.TriangleCount())
	}
	for _, v := range m.Vertices() {
		if v.Normal != ([3]float32{0, 1, 0}) {
			t.Errorf("normal = %v, want +Y", v.Normal)
		}
		if v.Position[1] != 0 {
			t.Errorf("y = %v, want 0", v.Position[1])
		}
	}
	for tri := 0; tri < 2; tri++ {
		if fn := faceNormal(m, tri); fn[1] <= 0 {
			t.Errorf("triangle %d winds downward", tri)
		}
	}
}

func TestNewUVSphere(t *testing.T) {
	const radius = 2.5
	m := NewUVSphere(radius, 8, 12)

	if want := (8 + 1) * (12 + 1); len(m.Vertices()) != want {
		t.Errorf("vertex count = %d, want %d", len(m.Vertices()), want)
	}
	if want := 8 * 12 * 2; m.TriangleCount() != want {
		t.Errorf("triangle count = %d, want %d", m.TriangleCount(), want)
	}

	for i, v := range m.Vertices() {
		p := v.Position
		r := math.Sqrt(float64(p[0]*p[0] + p[1]*p[1] + p[2]*p[2]))
		if math.Abs(r-radius) > 1e-5 {
			t.Fatalf("vertex %d at distance %v, want %v", i, r, radius)
		}
		n := v.Normal
		l := math.Sqrt(float64(n[0]*n[0] + n[1]*n[1] + n[2]*n[2]))
		if math.Abs(l-1) > 1e-5 {
			t.Fatalf("vertex %d normal length %v, want 1", i, l)
		}
	}

	// Spot-check winding away from the poles, where triangles are not
	// degenerate.
	tri := 8 * 12 * 2 / 2
	fn := faceNormal(m, tri)
	vn := m.Vertices()[m.Indices()[tri*3]].Normal
	if dot := fn[0]*vn[0] + fn[1]*vn[1] + fn[2]*vn[2]; dot <= 0 {
		t.Errorf("equator triangle winds inward")
	}
}

func TestNewQuad2D(t *testing.T) {
	m := NewQuad2D()
	if len(m.Vertices()) != 4 || m.TriangleCount() != 2 {
		t.Fatalf("quad = %d vertices, %d triangles", len(m.Vertices()), m.TriangleCount())
	}
	for i, v := range m.Vertices() {
		if v.Position[2] != 0 {
			t.Errorf("vertex %d z = %v, want 0", i, v.Position[2])
		}
		if v.TexCoord[0] != v.Position[0] || v.TexCoord[1] != v.Position[1] {
			t.Errorf("vertex %d texcoord %v does not match position %v", i, v.TexCoord, v.Position)
		}
	}
}

func TestShapeNameOverride(t *testing.T) {
	m := NewCube(1, WithName("crate"))
	if m.Name() != "crate" {
		t.Errorf("name = %q, want crate", m.Name())
	}
}
