package scene

import (
	"sync/atomic"
	"testing"

	"github.com/Carmen-Shannon/gloam/engine/camera"
	"github.com/Carmen-Shannon/gloam/engine/game_object"
	"github.com/Carmen-Shannon/gloam/engine/light"
	"github.com/Carmen-Shannon/gloam/engine/mesh"
	"github.com/Carmen-Shannon/gloam/engine/renderer"
	"github.com/Carmen-Shannon/gloam/engine/renderer/material"
	"github.com/Carmen-Shannon/gloam/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/gloam/engine/shader"
)

// testRenderer builds a headless image-backend renderer at the given size.
func testRenderer(t *testing.T, width, height int) renderer.Renderer {
	t.Helper()
	return renderer.NewRenderer(renderer.BackendTypeImage, nil,
		renderer.WithOutputSize(width, height),
		renderer.WithRenderWorkers(1),
	)
}

// testSun keeps the shadow map small so tests stay cheap while still
// exercising the shadow pass.
func testSun() light.Light {
	return light.NewLight(light.WithShadowMapResolution(64))
}

func TestNewScenePanicsOnNilArguments(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{
			name: "nil camera",
			fn: func() {
				NewScene("broken", nil, testRenderer(t, 8, 8))
			},
		},
		{
			name: "nil renderer",
			fn: func() {
				NewScene("broken", camera.NewCamera(), nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatalf("expected panic, got none")
				}
			}()
			tt.fn()
		})
	}
}

func TestSceneRegistry(t *testing.T) {
	s := NewScene("registry", camera.NewCamera(), testRenderer(t, 8, 8), WithSun(testSun()))

	a := game_object.NewGameObject(game_object.WithMesh("cube"))
	b := game_object.NewGameObject(game_object.WithMesh("cube"))

	idA := s.Add(a)
	idB := s.Add(b)
	if idA != 1 || idB != 2 {
		t.Fatalf("expected sequential IDs 1, 2, got %d, %d", idA, idB)
	}
	if s.Count() != 2 {
		t.Fatalf("expected 2 registered objects, got %d", s.Count())
	}
	if got := s.Get(idA); got != a {
		t.Fatalf("Get(%d) returned wrong object", idA)
	}

	s.Remove(idA)
	if s.Count() != 1 {
		t.Fatalf("expected 1 object after Remove, got %d", s.Count())
	}
	if s.Get(idA) != nil {
		t.Fatalf("expected removed object to be gone")
	}

	s.Clear()
	if s.Count() != 0 {
		t.Fatalf("expected empty registry after Clear, got %d", s.Count())
	}
}

func TestSceneEphemeralObjectsLiveOneFrame(t *testing.T) {
	s := NewScene("ephemeral", camera.NewCamera(), testRenderer(t, 8, 8), WithSun(testSun()))

	s.Add(game_object.NewGameObject(
		game_object.WithEphemeral(),
		game_object.WithSprite(0, 0, 4, 4),
	))
	if s.CountEphemeral() != 1 {
		t.Fatalf("expected 1 staged ephemeral object, got %d", s.CountEphemeral())
	}
	if s.Count() != 0 {
		t.Fatalf("ephemeral object leaked into the registry")
	}

	if err := s.RenderFrame(); err != nil {
		t.Fatalf("RenderFrame failed: %v", err)
	}
	if s.CountEphemeral() != 0 {
		t.Fatalf("expected staged objects consumed by the frame, got %d", s.CountEphemeral())
	}
}

func TestSceneRenderFrameDrawsMeshObject(t *testing.T) {
	r := testRenderer(t, 32, 32)
	s := NewScene("mesh", camera.NewCamera(), r,
		WithSun(testSun()),
		WithMeshes(mesh.NewCube(1.0, mesh.WithName("cube"))),
	)
	s.Add(game_object.NewGameObject(game_object.WithMesh("cube")))

	if err := s.RenderFrame(); err != nil {
		t.Fatalf("RenderFrame failed: %v", err)
	}

	fb := r.Framebuffer()
	lit := 0
	for y := 0; y < fb.Height(); y++ {
		for x := 0; x < fb.Width(); x++ {
			c := fb.At(x, y)
			if c[0] > 0 || c[1] > 0 || c[2] > 0 {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Fatalf("expected the cube to cover some pixels, framebuffer is all black")
	}
}

func TestSceneFrustumCulling(t *testing.T) {
	// A counting vertex stage registered under the lit key before the scene
	// claims it reports whether an object's draw was issued at all.
	var invocations atomic.Int64
	countingVertex := func(cfg *shader.DrawConfig, v shader.Vertex) shader.Varyings {
		invocations.Add(1)
		return shader.TransformVertex(cfg, v)
	}

	r := testRenderer(t, 16, 16)
	if err := r.RegisterPipelines(pipeline.NewPipeline(PipelineLit, pipeline.ProgramLit,
		pipeline.WithVertexFunc(countingVertex),
	)); err != nil {
		t.Fatalf("RegisterPipelines failed: %v", err)
	}

	s := NewScene("culling", camera.NewCamera(), r,
		WithSun(light.NewLight(
			light.WithShadowMapResolution(64),
			light.WithCastsShadows(false),
		)),
		WithMeshes(mesh.NewCube(1.0, mesh.WithName("cube"))),
	)
	obj := game_object.NewGameObject(
		game_object.WithMesh("cube"),
		game_object.WithPosition(1000, 0, 0),
	)
	s.Add(obj)

	if err := s.RenderFrame(); err != nil {
		t.Fatalf("RenderFrame failed: %v", err)
	}
	if n := invocations.Load(); n != 0 {
		t.Fatalf("expected the far object to be culled, vertex stage ran %d times", n)
	}

	s.SetCullingDisabled(true)
	if err := s.RenderFrame(); err != nil {
		t.Fatalf("RenderFrame failed: %v", err)
	}
	if invocations.Load() == 0 {
		t.Fatalf("expected the draw to be issued with culling disabled")
	}
}

func TestSceneOverlayPainterOrder(t *testing.T) {
	r := testRenderer(t, 16, 16)
	s := NewScene("overlay", camera.NewCamera(), r, WithSun(testSun()))

	red := material.NewMaterial(material.WithBaseColor([3]float32{1, 0, 0}))
	green := material.NewMaterial(material.WithBaseColor([3]float32{0, 1, 0}))

	backdrop := game_object.NewGameObject(game_object.WithSprite(0, 0, 16, 16))
	backdrop.SetMaterial(red)
	s.Add(backdrop)

	inset := game_object.NewGameObject(game_object.WithSprite(4, 4, 8, 8))
	inset.SetMaterial(green)
	s.Add(inset)

	if err := s.RenderFrame(); err != nil {
		t.Fatalf("RenderFrame failed: %v", err)
	}

	fb := r.Framebuffer()
	center := fb.At(8, 8)
	if center[1] < 0.9 || center[0] > 0.1 {
		t.Fatalf("expected the later sprite on top at the center, got %v", center)
	}
	corner := fb.At(1, 1)
	if corner[0] < 0.9 || corner[1] > 0.1 {
		t.Fatalf("expected the backdrop outside the inset, got %v", corner)
	}
}

func TestSceneUpdateAdvancesObjects(t *testing.T) {
	s := NewScene("update", camera.NewCamera(), testRenderer(t, 8, 8), WithSun(testSun()))

	obj := game_object.NewGameObject(
		game_object.WithMesh("cube"),
		game_object.WithRotationSpeed(0, 1.0, 0),
	)
	s.Add(obj)
	before := obj.ModelMatrix()

	s.Update(0.5)

	if obj.ModelMatrix() == before {
		t.Fatalf("expected Update to advance the object's rotation")
	}
	_, ry, _ := obj.Rotation()
	if ry < 0.49 || ry > 0.51 {
		t.Fatalf("expected rotation.y near 0.5, got %v", ry)
	}
}
