package shader

import (
	"math"

	"github.com/Carmen-Shannon/gloam/common"
)

// Quantize16 snaps x to the lower edge of one of sixteen equal bands across
// [0,1]. Outputs are restricted to {0, 1/16, ..., 15/16}; inputs at or above
// 1 land in the top band rather than spilling past it.
//
// Parameters:
//   - x: the value to quantize
//
// Returns:
//   - float32: the banded value
func Quantize16(x float32) float32 {
	step := float32(math.Floor(float64(x) * 16))
	if step < 0 {
		step = 0
	} else if step > 15 {
		step = 15
	}
	return step / 16
}

// Luminance returns the perceptual brightness of a linear RGB color using
// the Rec. 601 weights (0.299, 0.587, 0.114).
//
// Parameters:
//   - c: the color to weigh
//
// Returns:
//   - float32: the weighted brightness
func Luminance(c [3]float32) float32 {
	return 0.299*c[0] + 0.587*c[1] + 0.114*c[2]
}

// Tint blends a color toward a tint scaled by the color's own luminance.
// At strength 0 the color is unchanged; at strength 1 it is replaced by
// tint * Luminance(c), preserving brightness while shifting hue.
//
// Parameters:
//   - c: the color to tint
//   - tint: the target hue
//   - strength: the blend factor
//
// Returns:
//   - [3]float32: the tinted color
func Tint(c, tint [3]float32, strength float32) [3]float32 {
	return common.Mix3(c, common.Scale3(tint, Luminance(c)), strength)
}

// DerivePalette builds a warm/cool shadow palette for a material by tinting
// its base color toward the stock palette hues.
//
// Parameters:
//   - base: the material base color
//   - strength: how far to pull toward the stock hues
//
// Returns:
//   - Palette: the derived palette
func DerivePalette(base [3]float32, strength float32) Palette {
	return Palette{
		Warm: Tint(base, DefaultPalette.Warm, strength),
		Cool: Tint(base, DefaultPalette.Cool, strength),
	}
}

// ShadeToon computes the stylized surface color for the lit 3D path.
//
// The diffuse term is the clamped dot product of the normalized normal and
// light direction, with the light's z component taken by magnitude, so
// lights mirrored through the z = 0 plane shade alike. The term is scaled
// by shadow visibility and snapped to sixteen bands, which produces the
// hard toon steps.
//
// A glow factor 1/(30z^2+1) of the normalized light z rises as the light
// nears the horizontal plane. It warms the shadow palette, and blends lit
// surfaces toward the light color.
//
// Shadowed regions keep 40% of the albedo modulated by the warm/cool
// palette; the banded diffuse term mixes between the shadowed and lit
// colors.
//
// Parameters:
//   - cfg: the per-draw uniform block
//   - albedo: the sampled base color
//   - normal: the interpolated surface normal
//   - lightDir: the light direction
//   - visibility: the shadow visibility factor in [0,1]
//
// Returns:
//   - [3]float32: the shaded linear color
func ShadeToon(cfg *DrawConfig, albedo, normal, lightDir [3]float32, visibility float32) [3]float32 {
	n := common.Normalize3(normal)
	l := common.Normalize3(lightDir)

	lz := l[2]
	if lz < 0 {
		lz = -lz
	}
	d := common.Clamp(common.Dot3(n, [3]float32{l[0], l[1], lz}), 0, 1)
	diff := Quantize16(d * visibility)

	glow := common.Clamp(1.0/(30.0*l[2]*l[2]+1.0), 0, 1)

	shade := common.Scale3(common.Hadamard3(albedo, common.Mix3(cfg.Shade.Cool, cfg.Shade.Warm, glow)), 0.4)
	lit := common.Mix3(albedo, common.Hadamard3(albedo, cfg.LightColor), glow)
	return common.Mix3(shade, lit, diff)
}
