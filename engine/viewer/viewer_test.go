package viewer

import (
	"testing"

	"github.com/Carmen-Shannon/gloam/engine/camera"
	"github.com/Carmen-Shannon/gloam/engine/light"
	"github.com/Carmen-Shannon/gloam/engine/renderer"
	"github.com/Carmen-Shannon/gloam/engine/scene"
)

func testScene(t *testing.T, width, height int) scene.Scene {
	t.Helper()
	r := renderer.NewRenderer(renderer.BackendTypeImage, nil,
		renderer.WithOutputSize(width, height),
		renderer.WithRenderWorkers(1),
	)
	return scene.NewScene("viewer", camera.NewCamera(), r,
		scene.WithSun(light.NewLight(light.WithShadowMapResolution(16))),
	)
}

func TestRunRejectsNilScene(t *testing.T) {
	if err := Run(nil); err == nil {
		t.Fatalf("expected an error for a nil scene")
	}
}

func TestLayoutReportsFramebufferSize(t *testing.T) {
	s := testScene(t, 24, 16)
	g := &game{scene: s, width: 24, height: 16}

	w, h := g.Layout(640, 480)
	if w != 24 || h != 16 {
		t.Fatalf("expected the logical size pinned to 24x16, got %dx%d", w, h)
	}
}

func TestStepRendersAndPresents(t *testing.T) {
	s := testScene(t, 8, 8)
	g := &game{scene: s, width: 8, height: 8}

	if err := g.step(1.0 / 60); err != nil {
		t.Fatalf("step failed: %v", err)
	}
	if s.Renderer().LastFrame() == nil {
		t.Fatalf("expected a presented frame after step")
	}
}
