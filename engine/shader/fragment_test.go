package shader

import (
	"testing"

	"github.com/Carmen-Shannon/gloam/engine/texture"
)

// litConfig builds a lit-path draw over a solid white albedo with stock
// light color and palette, backed by the given shadow map.
func litConfig(shadow texture.DepthSampler) *DrawConfig {
	return &DrawConfig{
		LightColor: DefaultLightColor,
		Shade:      DefaultPalette,
		Opacity:    1,
		Albedo:     texture.NewTexture(texture.WithSolid(1, 1, 1, 1)),
		ShadowMap:  shadow,
	}
}

func TestFragmentLitFullyVisible(t *testing.T) {
	// Overhead light on a facing white surface, shadow map at the far
	// plane everywhere. The toon term lands in the top band:
	//   shaded = (0.9493145, 0.9485484, 0.9507661)
	// then Reinhard + gamma 2.2 gives (0.7210535, 0.7209177, 0.7213102).
	cfg := litConfig(texture.NewDepthTexture(4, 4))
	vy := Varyings{
		TexCoord: [3]float32{0.5, 0.5, 0},
		Normal:   [3]float32{0, 0, 1},
		LightDir: [3]float32{0, 0, 1},
		LightPos: [4]float32{0, 0, 0.5, 1},
	}
	got := FragmentLit(cfg, vy)
	want := [4]float32{0.7210535, 0.7209177, 0.7213102, 1}
	if !approx4(got, want, 1e-4) {
		t.Errorf("FragmentLit = %v, want %v", got, want)
	}
}

func TestFragmentLitFullyShadowed(t *testing.T) {
	// Same geometry with every stored depth nearer than the surface: all
	// nine taps occlude, visibility is exactly zero, and only the
	// palette-modulated shade color survives tone mapping:
	//   shaded = (0.1890323, 0.2251613, 0.3574194)
	//   mapped = (0.4334845, 0.4630108, 0.5452233)
	shadow := texture.NewDepthTexture(4, 4)
	shadow.Clear(0)
	cfg := litConfig(shadow)
	vy := Varyings{
		TexCoord: [3]float32{0.5, 0.5, 0},
		Normal:   [3]float32{0, 0, 1},
		LightDir: [3]float32{0, 0, 1},
		LightPos: [4]float32{0, 0, 0.5, 1},
	}
	got := FragmentLit(cfg, vy)
	want := [4]float32{0.4334845, 0.4630108, 0.5452233, 1}
	if !approx4(got, want, 1e-4) {
		t.Errorf("FragmentLit = %v, want %v", got, want)
	}
}

func TestFragmentLitAlpha(t *testing.T) {
	cfg := litConfig(texture.NewDepthTexture(2, 2))
	cfg.Albedo = solidSampler{1, 1, 1, 0.5}
	cfg.Opacity = 0.5
	vy := Varyings{
		Normal:   [3]float32{0, 0, 1},
		LightDir: [3]float32{0, 0, 1},
		LightPos: [4]float32{0, 0, 0.5, 1},
	}
	got := FragmentLit(cfg, vy)
	if !approx(got[3], 0.25, 1e-6) {
		t.Errorf("alpha = %v, want sampled alpha times opacity = 0.25", got[3])
	}
}

func TestFragmentOverlayPaths(t *testing.T) {
	tests := []struct {
		name string
		frag FragmentFunc
		cfg  DrawConfig
		want [4]float32
	}{
		{
			name: "sprite modulates alpha by opacity",
			frag: FragmentSprite,
			cfg: DrawConfig{
				Albedo:  solidSampler{0.8, 0.4, 0.2, 1},
				Opacity: 0.5,
			},
			want: [4]float32{0.8, 0.4, 0.2, 0.5},
		},
		{
			name: "sheet keeps sampled alpha",
			frag: FragmentSheet,
			cfg: DrawConfig{
				Albedo:     solidSampler{0.8, 0.4, 0.2, 0.75},
				SpriteSize: [2]float32{1, 1},
			},
			want: [4]float32{0.8, 0.4, 0.2, 0.75},
		},
		{
			name: "atlas forces alpha opaque",
			frag: FragmentAtlas,
			cfg: DrawConfig{
				Albedo:    solidSampler{0.8, 0.4, 0.2, 0},
				AtlasSize: [2]float32{1, 1},
			},
			want: [4]float32{0.8, 0.4, 0.2, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vy := Varyings{TexCoord: [3]float32{0.5, 0.5, 0}}
			got := tt.frag(&tt.cfg, vy)
			if !approx4(got, tt.want, 1e-6) {
				t.Errorf("fragment = %v, want %v", got, tt.want)
			}
		})
	}
}
