package engine

import (
	"image"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Carmen-Shannon/gloam/engine/camera"
	"github.com/Carmen-Shannon/gloam/engine/game_object"
	"github.com/Carmen-Shannon/gloam/engine/light"
	"github.com/Carmen-Shannon/gloam/engine/renderer"
	"github.com/Carmen-Shannon/gloam/engine/scene"
)

func testScene(t *testing.T, onFrame func(*image.RGBA)) scene.Scene {
	t.Helper()
	opts := []renderer.RendererBuilderOption{
		renderer.WithOutputSize(8, 8),
		renderer.WithRenderWorkers(1),
	}
	if onFrame != nil {
		opts = append(opts, renderer.WithFrameCallback(onFrame))
	}
	r := renderer.NewRenderer(renderer.BackendTypeImage, nil, opts...)
	return scene.NewScene("test", camera.NewCamera(), r,
		scene.WithSun(light.NewLight(light.WithShadowMapResolution(16))),
		scene.WithActive(true),
	)
}

func TestEngineSceneRegistry(t *testing.T) {
	e := NewEngine()
	s := testScene(t, nil)

	e.AddScene(3, s)
	if e.Scene(3) != s {
		t.Fatalf("expected scene registered at key 3")
	}
	if e.Scene(4) != nil {
		t.Fatalf("expected nil for an unregistered key")
	}

	cp := e.Scenes()
	if len(cp) != 1 || cp[3] != s {
		t.Fatalf("expected a one-entry copy, got %v", cp)
	}
	delete(cp, 3)
	if e.Scene(3) != s {
		t.Fatalf("mutating the copy must not touch the engine's registry")
	}

	e.RemoveScene(3)
	if e.Scene(3) != nil {
		t.Fatalf("expected scene removed")
	}
}

func TestEngineRunHeadless(t *testing.T) {
	var frames atomic.Int64
	s := testScene(t, func(*image.RGBA) {
		frames.Add(1)
	})
	s.Add(game_object.NewGameObject(game_object.WithSprite(0, 0, 8, 8)))

	e := NewEngine(
		WithScene(0, s),
		WithRenderFrameLimit(240),
	)

	done := make(chan struct{})
	go func() {
		e.Run()
		close(done)
	}()

	deadline := time.Now().Add(5 * time.Second)
	for frames.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	e.Quit()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatalf("Run did not return after Quit")
	}
	if frames.Load() == 0 {
		t.Fatalf("expected at least one presented frame")
	}
}

func TestEngineQuitIsIdempotent(t *testing.T) {
	e := NewEngine()
	e.Quit()
	e.Quit()
}

func TestSetTickRateBeforeRun(t *testing.T) {
	e := NewEngine().(*engine)
	e.SetTickRate(120)
	if e.engineTickRate != time.Second/120 {
		t.Fatalf("expected tick rate of %v, got %v", time.Second/120, e.engineTickRate)
	}
	e.SetTickRate(0)
	if e.engineTickRate != time.Second/60 {
		t.Fatalf("expected default tick rate, got %v", e.engineTickRate)
	}
}
