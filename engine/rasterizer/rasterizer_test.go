package rasterizer

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/gloam/engine/mesh"
	"github.com/Carmen-Shannon/gloam/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/gloam/engine/shader"
	"github.com/Carmen-Shannon/gloam/engine/texture"
)

// passthroughVertex forwards the model-space position straight to clip space
// with the w component taken from TexCoord z, so tests can place triangles
// in NDC directly and exercise the behind-eye drop path.
func passthroughVertex(_ *shader.DrawConfig, v shader.Vertex) shader.Varyings {
	return shader.Varyings{
		ClipPos: [4]float32{v.Position[0], v.Position[1], v.Position[2], v.TexCoord[2]},
		Color:   v.Color,
	}
}

func flatColor(c [4]float32) shader.FragmentFunc {
	return func(_ *shader.DrawConfig, _ shader.Varyings) [4]float32 {
		return c
	}
}

// fullscreenTriangle covers the whole viewport: it spans twice the NDC square
// so every pixel center falls inside it.
func fullscreenTriangle(z float32) mesh.Mesh {
	return mesh.NewMesh(
		mesh.WithVertices([]shader.Vertex{
			{Position: [3]float32{-1, -1, z}, TexCoord: [3]float32{0, 0, 1}, Color: [3]float32{1, 0, 0}},
			{Position: [3]float32{3, -1, z}, TexCoord: [3]float32{0, 0, 1}, Color: [3]float32{0, 1, 0}},
			{Position: [3]float32{-1, 3, z}, TexCoord: [3]float32{0, 0, 1}, Color: [3]float32{0, 0, 1}},
		}),
		mesh.WithIndices([]uint32{0, 1, 2}),
	)
}

func litPipeline(fragment shader.FragmentFunc) pipeline.Pipeline {
	return pipeline.NewPipeline("test", pipeline.ProgramLit,
		pipeline.WithVertexFunc(passthroughVertex),
		pipeline.WithFragmentFunc(fragment),
		pipeline.WithCullMode(pipeline.CullNone),
	)
}

func TestDrawMeshFillsCoveredPixels(t *testing.T) {
	r := NewRasterizer(16, 16, WithWorkers(1))
	r.Clear([4]float32{0, 0, 0, 1})

	p := litPipeline(flatColor([4]float32{1, 0, 0, 1}))
	r.DrawMesh(&shader.DrawConfig{}, fullscreenTriangle(0.5), p)

	fb := r.Framebuffer()
	for _, px := range [][2]int{{0, 0}, {8, 8}, {15, 15}, {15, 0}, {0, 15}} {
		got := fb.At(px[0], px[1])
		if got != ([4]float32{1, 0, 0, 1}) {
			t.Fatalf("pixel %v = %v, want opaque red", px, got)
		}
	}
}

func TestDrawMeshDepthTest(t *testing.T) {
	r := NewRasterizer(16, 16, WithWorkers(1))
	r.Clear([4]float32{0, 0, 0, 1})
	cfg := &shader.DrawConfig{}

	r.DrawMesh(cfg, fullscreenTriangle(0.5), litPipeline(flatColor([4]float32{1, 0, 0, 1})))
	r.DrawMesh(cfg, fullscreenTriangle(0.8), litPipeline(flatColor([4]float32{0, 1, 0, 1})))
	if got := r.Framebuffer().At(8, 8); got != ([4]float32{1, 0, 0, 1}) {
		t.Fatalf("farther draw overwrote nearer pixel: %v", got)
	}

	r.DrawMesh(cfg, fullscreenTriangle(0.2), litPipeline(flatColor([4]float32{0, 0, 1, 1})))
	if got := r.Framebuffer().At(8, 8); got != ([4]float32{0, 0, 1, 1}) {
		t.Fatalf("nearer draw did not replace pixel: %v", got)
	}
}

func TestDrawMeshEqualDepthRejected(t *testing.T) {
	r := NewRasterizer(8, 8, WithWorkers(1))
	r.Clear([4]float32{0, 0, 0, 1})
	cfg := &shader.DrawConfig{}

	r.DrawMesh(cfg, fullscreenTriangle(0.5), litPipeline(flatColor([4]float32{1, 0, 0, 1})))
	r.DrawMesh(cfg, fullscreenTriangle(0.5), litPipeline(flatColor([4]float32{0, 1, 0, 1})))
	if got := r.Framebuffer().At(4, 4); got != ([4]float32{1, 0, 0, 1}) {
		t.Fatalf("equal-depth fragment passed the strict test: %v", got)
	}
}

func TestDrawMeshCulling(t *testing.T) {
	reversed := mesh.NewMesh(
		mesh.WithVertices(fullscreenTriangle(0.5).Vertices()),
		mesh.WithIndices([]uint32{0, 2, 1}),
	)

	tests := []struct {
		name  string
		mode  pipeline.CullMode
		m     mesh.Mesh
		drawn bool
	}{
		{name: "back cull keeps front face", mode: pipeline.CullBack, m: fullscreenTriangle(0.5), drawn: true},
		{name: "back cull drops back face", mode: pipeline.CullBack, m: reversed, drawn: false},
		{name: "front cull drops front face", mode: pipeline.CullFront, m: fullscreenTriangle(0.5), drawn: false},
		{name: "front cull keeps back face", mode: pipeline.CullFront, m: reversed, drawn: true},
		{name: "no cull keeps back face", mode: pipeline.CullNone, m: reversed, drawn: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRasterizer(8, 8, WithWorkers(1))
			r.Clear([4]float32{0, 0, 0, 1})
			p := pipeline.NewPipeline("cull", pipeline.ProgramLit,
				pipeline.WithVertexFunc(passthroughVertex),
				pipeline.WithFragmentFunc(flatColor([4]float32{1, 1, 1, 1})),
				pipeline.WithCullMode(tt.mode),
			)
			r.DrawMesh(&shader.DrawConfig{}, tt.m, p)

			drawn := r.Framebuffer().At(4, 4) == [4]float32{1, 1, 1, 1}
			if drawn != tt.drawn {
				t.Fatalf("drawn = %v, want %v", drawn, tt.drawn)
			}
		})
	}
}

func TestDrawMeshDropsTrianglesBehindEye(t *testing.T) {
	m := mesh.NewMesh(
		mesh.WithVertices([]shader.Vertex{
			{Position: [3]float32{-1, -1, 0.5}, TexCoord: [3]float32{0, 0, 1}},
			{Position: [3]float32{3, -1, 0.5}, TexCoord: [3]float32{0, 0, 1}},
			{Position: [3]float32{-1, 3, 0.5}, TexCoord: [3]float32{0, 0, 0}},
		}),
		mesh.WithIndices([]uint32{0, 1, 2}),
	)

	r := NewRasterizer(8, 8, WithWorkers(1))
	r.Clear([4]float32{0, 0, 0, 1})
	r.DrawMesh(&shader.DrawConfig{}, m, litPipeline(flatColor([4]float32{1, 1, 1, 1})))
	if got := r.Framebuffer().At(4, 4); got != ([4]float32{0, 0, 0, 1}) {
		t.Fatalf("triangle with w <= 0 corner was rasterized: %v", got)
	}
}

func TestDrawMeshInterpolatesVaryings(t *testing.T) {
	r := NewRasterizer(64, 64, WithWorkers(1))
	r.Clear([4]float32{0, 0, 0, 1})

	p := litPipeline(func(_ *shader.DrawConfig, vy shader.Varyings) [4]float32 {
		return [4]float32{vy.Color[0], vy.Color[1], vy.Color[2], 1}
	})
	r.DrawMesh(&shader.DrawConfig{}, fullscreenTriangle(0.5), p)

	// At the viewport center the corner weights are 1/2, 1/4, 1/4.
	got := r.Framebuffer().At(32, 32)
	want := [4]float32{0.5, 0.25, 0.25, 1}
	for i := range got {
		if math.Abs(float64(got[i]-want[i])) > 0.05 {
			t.Fatalf("interpolated color = %v, want about %v", got, want)
		}
	}
}

func TestDrawMeshBlends(t *testing.T) {
	r := NewRasterizer(8, 8, WithWorkers(1))
	r.Clear([4]float32{0, 0, 0, 1})

	p := pipeline.NewPipeline("overlay", pipeline.ProgramSprite,
		pipeline.WithVertexFunc(passthroughVertex),
		pipeline.WithFragmentFunc(flatColor([4]float32{1, 0, 0, 0.5})),
	)
	r.DrawMesh(&shader.DrawConfig{}, fullscreenTriangle(0.5), p)

	got := r.Framebuffer().At(4, 4)
	if !approxEq(got[0], 0.5) || !approxEq(got[1], 0) || !approxEq(got[2], 0) {
		t.Fatalf("blended pixel = %v, want half red over black", got)
	}
}

func TestDrawDepthWritesTarget(t *testing.T) {
	r := NewRasterizer(8, 8, WithWorkers(1))
	r.Clear([4]float32{0.25, 0.25, 0.25, 1})

	target := texture.NewDepthTexture(32, 32)
	target.Clear(1.0)

	p := pipeline.NewPipeline("shadow", pipeline.ProgramDepth,
		pipeline.WithVertexFunc(passthroughVertex),
		pipeline.WithCullMode(pipeline.CullNone),
	)
	r.DrawDepth(&shader.DrawConfig{}, fullscreenTriangle(0.25), p, target)

	if got := target.At(16, 16); !approxEq(got, 0.25) {
		t.Fatalf("depth target center = %v, want 0.25", got)
	}
	if got := r.Framebuffer().At(4, 4); got != ([4]float32{0.25, 0.25, 0.25, 1}) {
		t.Fatalf("depth pass touched the color buffer: %v", got)
	}
}

func TestDrawMeshParallelBands(t *testing.T) {
	r := NewRasterizer(128, 128, WithWorkers(4))
	r.Clear([4]float32{0, 0, 0, 1})
	r.DrawMesh(&shader.DrawConfig{}, fullscreenTriangle(0.5), litPipeline(flatColor([4]float32{0, 1, 0, 1})))

	fb := r.Framebuffer()
	for y := 0; y < 128; y += 7 {
		for x := 0; x < 128; x += 7 {
			if got := fb.At(x, y); got != ([4]float32{0, 1, 0, 1}) {
				t.Fatalf("pixel (%d,%d) = %v, want green", x, y, got)
			}
		}
	}
}

func TestResizeReplacesBuffers(t *testing.T) {
	r := NewRasterizer(8, 8)
	r.Resize(20, 10)
	fb := r.Framebuffer()
	if fb.Width() != 20 || fb.Height() != 10 {
		t.Fatalf("framebuffer size = %dx%d, want 20x10", fb.Width(), fb.Height())
	}
}
