package shader

import (
	"testing"

	"github.com/Carmen-Shannon/gloam/engine/texture"
)

// quadrants is a 2x2 texture with a distinct solid color per texel:
// red top-left, green top-right, blue bottom-left, white bottom-right.
// Alpha runs 255, 204, 153, 102 across the texels.
func quadrants() texture.Texture {
	return texture.NewTexture(texture.WithPixels([]byte{
		255, 0, 0, 255, 0, 255, 0, 204,
		0, 0, 255, 153, 255, 255, 255, 102,
	}, 2, 2))
}

func TestSampleSprite(t *testing.T) {
	cfg := &DrawConfig{
		Albedo:  solidSampler{0.5, 0.25, 0.125, 0.5},
		Opacity: 0.5,
	}
	got := SampleSprite(cfg, 0.5, 0.5)
	want := [4]float32{0.5, 0.25, 0.125, 0.25}
	if !approx4(got, want, 1e-6) {
		t.Errorf("SampleSprite = %v, want %v", got, want)
	}

	cfg.Opacity = 0
	if got := SampleSprite(cfg, 0.5, 0.5); got[3] != 0 {
		t.Errorf("alpha at zero opacity = %v, want 0", got[3])
	}
}

func TestSampleSheet(t *testing.T) {
	tests := []struct {
		name   string
		offset [2]float32
		want   [4]float32
	}{
		{name: "top left tile", offset: [2]float32{0, 0}, want: [4]float32{1, 0, 0, 1}},
		{name: "top right tile", offset: [2]float32{0.5, 0}, want: [4]float32{0, 1, 0, 0.8}},
		{name: "bottom left tile", offset: [2]float32{0, 0.5}, want: [4]float32{0, 0, 1, 0.6}},
		{name: "bottom right tile", offset: [2]float32{0.5, 0.5}, want: [4]float32{1, 1, 1, 0.4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &DrawConfig{
				Albedo: quadrants(),
				// Opacity deliberately zero: the sheet path keeps the
				// sampled alpha untouched.
				SpriteSize:   [2]float32{0.5, 0.5},
				SpriteOffset: tt.offset,
			}
			got := SampleSheet(cfg, 0.5, 0.5)
			if !approx4(got, tt.want, 1e-2) {
				t.Errorf("SampleSheet = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSampleAtlasForcesOpaque(t *testing.T) {
	// A fully transparent texture still comes back opaque on the atlas
	// path: glyph regions only carry color.
	cfg := &DrawConfig{
		Albedo:       texture.NewTexture(texture.WithSolid(0.2, 0.4, 0.6, 0)),
		AtlasTopLeft: [2]float32{0.25, 0.25},
		AtlasSize:    [2]float32{0.5, 0.5},
	}
	got := SampleAtlas(cfg, 0.5, 0.5)
	if got[3] != 1 {
		t.Fatalf("atlas alpha = %v, want 1", got[3])
	}
	want := [4]float32{0.2, 0.4, 0.6, 1}
	if !approx4(got, want, 1e-2) {
		t.Errorf("SampleAtlas = %v, want %v", got, want)
	}
}

func TestSampleAtlasRemap(t *testing.T) {
	// A region covering only the top-right quadrant maps the whole [0,1]
	// coordinate range into that texel.
	cfg := &DrawConfig{
		Albedo:       quadrants(),
		AtlasTopLeft: [2]float32{0.5, 0},
		AtlasSize:    [2]float32{0.5, 0.5},
	}
	for _, uv := range [][2]float32{{0.1, 0.1}, {0.5, 0.5}, {0.9, 0.9}} {
		got := SampleAtlas(cfg, uv[0], uv[1])
		want := [4]float32{0, 1, 0, 1}
		if !approx4(got, want, 1e-2) {
			t.Errorf("SampleAtlas(%v) = %v, want %v", uv, got, want)
		}
	}
}
