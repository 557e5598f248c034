package shader

var (
	_ VertexFunc = TransformVertex
	_ VertexFunc = TransformFlat

	_ FragmentFunc = FragmentLit
	_ FragmentFunc = FragmentSprite
	_ FragmentFunc = FragmentSheet
	_ FragmentFunc = FragmentAtlas
)

// FragmentLit is the fragment stage for the 3D toon path. It samples the
// albedo, estimates shadow visibility from the interpolated light-space
// position, shades with the toon lighting model, tone maps the result, and
// scales the sampled alpha by the draw opacity.
//
// Parameters:
//   - cfg: the per-draw uniform block
//   - vy: the interpolated varyings for this pixel
//
// Returns:
//   - [4]float32: the final display-encoded RGBA
func FragmentLit(cfg *DrawConfig, vy Varyings) [4]float32 {
	base := cfg.Albedo.Sample(vy.TexCoord[0], vy.TexCoord[1])
	visibility := ShadowVisibility(cfg, vy.LightPos)
	rgb := ShadeToon(cfg, [3]float32{base[0], base[1], base[2]}, vy.Normal, vy.LightDir, visibility)
	rgb = ToneMap(rgb)
	return [4]float32{rgb[0], rgb[1], rgb[2], base[3] * cfg.Opacity}
}

// FragmentSprite is the fragment stage for plain 2D overlay draws.
func FragmentSprite(cfg *DrawConfig, vy Varyings) [4]float32 {
	return SampleSprite(cfg, vy.TexCoord[0], vy.TexCoord[1])
}

// FragmentSheet is the fragment stage for spritesheet tile draws.
func FragmentSheet(cfg *DrawConfig, vy Varyings) [4]float32 {
	return SampleSheet(cfg, vy.TexCoord[0], vy.TexCoord[1])
}

// FragmentAtlas is the fragment stage for opaque atlas region draws, used
// by the text renderer.
func FragmentAtlas(cfg *DrawConfig, vy Varyings) [4]float32 {
	return SampleAtlas(cfg, vy.TexCoord[0], vy.TexCoord[1])
}
