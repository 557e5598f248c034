package shader

import "github.com/Carmen-Shannon/gloam/common"

// TransformVertex is the vertex stage for the 3D path. It lifts the
// model-space position to clip space through Model, View and Projection in
// that order, and to light space through LightSpace and Model, then carries
// the remaining attributes through untouched.
//
// Parameters:
//   - cfg: the per-draw uniform block
//   - v: the vertex to transform
//
// Returns:
//   - Varyings: the interpolation inputs for this vertex
func TransformVertex(cfg *DrawConfig, v Vertex) Varyings {
	var mv, mvp, lightModel [16]float32
	common.Mul4(mv[:], cfg.View[:], cfg.Model[:])
	common.Mul4(mvp[:], cfg.Projection[:], mv[:])
	common.Mul4(lightModel[:], cfg.LightSpace[:], cfg.Model[:])

	pos := [4]float32{v.Position[0], v.Position[1], v.Position[2], 1}
	return Varyings{
		ClipPos:  common.MulVec4(mvp[:], pos),
		TexCoord: v.TexCoord,
		Color:    v.Color,
		Normal:   v.Normal,
		LightDir: cfg.LightDir,
		LightPos: common.MulVec4(lightModel[:], pos),
	}
}

// TransformFlat is the vertex stage for 2D overlay draws. It skips the view
// transform entirely, applying only Projection and Model, and pins the
// clip-space depth to zero so overlays land on a single plane.
//
// Parameters:
//   - cfg: the per-draw uniform block
//   - v: the vertex to transform
//
// Returns:
//   - Varyings: the interpolation inputs for this vertex
func TransformFlat(cfg *DrawConfig, v Vertex) Varyings {
	var pm [16]float32
	common.Mul4(pm[:], cfg.Projection[:], cfg.Model[:])

	pos := [4]float32{v.Position[0], v.Position[1], v.Position[2], 1}
	clip := common.MulVec4(pm[:], pos)
	clip[2] = 0
	return Varyings{
		ClipPos:  clip,
		TexCoord: v.TexCoord,
		Color:    v.Color,
	}
}
