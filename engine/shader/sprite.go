package shader

// SampleSprite samples the albedo at the raw texture coordinate and scales
// the sampled alpha by the draw opacity.
//
// Parameters:
//   - cfg: the per-draw uniform block
//   - u, v: the texture coordinate
//
// Returns:
//   - [4]float32: the sampled color with modulated alpha
func SampleSprite(cfg *DrawConfig, u, v float32) [4]float32 {
	c := cfg.Albedo.Sample(u, v)
	c[3] *= cfg.Opacity
	return c
}

// SampleSheet samples one spritesheet tile. The texture coordinate is
// scaled by the tile size and shifted by the tile offset before sampling,
// and the sampled alpha is kept as-is.
//
// Parameters:
//   - cfg: the per-draw uniform block
//   - u, v: the texture coordinate within the tile
//
// Returns:
//   - [4]float32: the sampled color
func SampleSheet(cfg *DrawConfig, u, v float32) [4]float32 {
	return cfg.Albedo.Sample(
		u*cfg.SpriteSize[0]+cfg.SpriteOffset[0],
		v*cfg.SpriteSize[1]+cfg.SpriteOffset[1],
	)
}

// SampleAtlas samples an atlas region. The texture coordinate is remapped
// into the region spanned from AtlasTopLeft by AtlasSize, and the alpha is
// forced to fully opaque regardless of the sampled value.
//
// Parameters:
//   - cfg: the per-draw uniform block
//   - u, v: the texture coordinate within the region
//
// Returns:
//   - [4]float32: the sampled color with alpha pinned to 1
func SampleAtlas(cfg *DrawConfig, u, v float32) [4]float32 {
	c := cfg.Albedo.Sample(
		cfg.AtlasTopLeft[0]+u*cfg.AtlasSize[0],
		cfg.AtlasTopLeft[1]+v*cfg.AtlasSize[1],
	)
	c[3] = 1
	return c
}
