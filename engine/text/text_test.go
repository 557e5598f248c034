package text

import (
	"testing"

	"github.com/Carmen-Shannon/gloam/engine/camera"
	"github.com/Carmen-Shannon/gloam/engine/light"
	"github.com/Carmen-Shannon/gloam/engine/renderer"
	"github.com/Carmen-Shannon/gloam/engine/scene"
)

func testScene(t *testing.T, width, height int) (scene.Scene, renderer.Renderer) {
	t.Helper()
	r := renderer.NewRenderer(renderer.BackendTypeImage, nil,
		renderer.WithOutputSize(width, height),
		renderer.WithRenderWorkers(1),
	)
	s := scene.NewScene("text", camera.NewCamera(), r,
		scene.WithSun(light.NewLight(light.WithShadowMapResolution(16))),
	)
	return s, r
}

func TestNewAtlasBakesPrintableRange(t *testing.T) {
	a := NewAtlas(nil)

	cellW, cellH := a.CellSize()
	if cellW <= 0 || cellH <= 0 {
		t.Fatalf("expected positive cell dimensions, got %dx%d", cellW, cellH)
	}

	tex := a.Texture()
	if tex.Width() != atlasColumns*cellW {
		t.Fatalf("expected atlas width %d, got %d", atlasColumns*cellW, tex.Width())
	}

	// The baked glyphs must leave visible coverage somewhere.
	covered := false
	for _, b := range tex.Pixels() {
		if b != 0 {
			covered = true
			break
		}
	}
	if !covered {
		t.Fatalf("expected baked glyph pixels, atlas is empty")
	}
}

func TestAtlasFrame(t *testing.T) {
	a := NewAtlas(nil)

	size, offset, ok := a.Frame('A')
	if !ok {
		t.Fatalf("expected 'A' in the atlas")
	}
	// 'A' is glyph index 33: column 1, row 2 of a 16-wide grid.
	if size != [2]float32{1.0 / 16, 1.0 / 6} {
		t.Fatalf("unexpected frame size %v", size)
	}
	if offset != [2]float32{1.0 / 16, 2.0 / 6} {
		t.Fatalf("unexpected frame offset %v", offset)
	}

	if _, _, ok := a.Frame('\n'); ok {
		t.Fatalf("expected control characters outside the atlas")
	}
	if _, _, ok := a.Frame('é'); ok {
		t.Fatalf("expected non-ASCII runes outside the atlas")
	}
}

func TestLoadFaceRejectsJunk(t *testing.T) {
	if _, err := LoadFace([]byte("not a font"), 12); err == nil {
		t.Fatalf("expected an error for junk font data")
	}
}

func TestDrawTextStagesGlyphSprites(t *testing.T) {
	s, _ := testScene(t, 32, 32)
	a := NewAtlas(nil)

	DrawText(s, a, "hi\nyo", 0, 0)

	if got := s.CountEphemeral(); got != 4 {
		t.Fatalf("expected 4 staged glyphs, got %d", got)
	}
	if s.Textures().Lookup("glyph_atlas") == nil {
		t.Fatalf("expected the atlas texture registered with the scene")
	}
}

func TestDrawTextRenders(t *testing.T) {
	s, r := testScene(t, 32, 32)
	a := NewAtlas(nil)

	DrawText(s, a, "M", 0, 0, WithScale(2))
	if err := s.RenderFrame(); err != nil {
		t.Fatalf("RenderFrame failed: %v", err)
	}

	fb := r.Framebuffer()
	lit := 0
	for y := 0; y < fb.Height(); y++ {
		for x := 0; x < fb.Width(); x++ {
			c := fb.At(x, y)
			if c[0] > 0.5 && c[1] > 0.5 && c[2] > 0.5 {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Fatalf("expected visible glyph pixels on the framebuffer")
	}
}
