package shader

// shadowSpread is the spacing between shadow map taps, in texture
// coordinates. The nine taps cover a 3x3 grid of this pitch.
const shadowSpread = 1.0 / 7000.0

// shadowBias is added to each sampled depth before the occlusion compare.
// It is zero: the compare is strict, and surfaces at exactly the stored
// depth count as visible.
const shadowBias = 0.0

// ShadowVisibility estimates how much of the light reaches a surface point
// by percentage-closer filtering of the shadow map. The homogeneous
// light-space position is perspective-divided, remapped from [-1,1] to the
// [0,1] texture domain, and compared against nine depth taps on a 3x3 grid;
// each tap that stores a strictly nearer depth blocks one ninth of the
// light.
//
// A point behind the light projection (w <= 0) has no meaningful shadow
// coordinate and is treated as fully lit.
//
// cfg.ShadowMap must be non-nil.
//
// Parameters:
//   - cfg: the per-draw uniform block
//   - lightPos: the interpolated homogeneous light-space position
//
// Returns:
//   - float32: the visibility factor in [0,1], 1 fully lit, 0 fully shadowed
func ShadowVisibility(cfg *DrawConfig, lightPos [4]float32) float32 {
	w := lightPos[3]
	if w <= 0 {
		return 1.0
	}

	u := 0.5*(lightPos[0]/w) + 0.5
	v := 0.5*(lightPos[1]/w) + 0.5
	z := 0.5*(lightPos[2]/w) + 0.5

	occluded := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			tu := u + float32(dx)*shadowSpread
			tv := v + float32(dy)*shadowSpread
			if cfg.ShadowMap.SampleDepth(tu, tv)+shadowBias < z {
				occluded++
			}
		}
	}
	return 1.0 - float32(occluded)/9.0
}
