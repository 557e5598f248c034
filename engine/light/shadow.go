package light

import (
	"math"

	"github.com/Carmen-Shannon/gloam/common"
)

// ShadowMapResolution is the default width and height in texels of the shadow
// depth texture. Lights use this as their initial value but can override it
// via the WithShadowMapResolution builder option.
const ShadowMapResolution = 2048

// DefaultShadowHalfExtent is the orthographic half-extent (in world units)
// used for the shadow frustum when no camera matrix is available to fit
// against.
const DefaultShadowHalfExtent float32 = 40.0

// DefaultShadowFar caps the depth range of the fitted shadow projection in
// world units.
const DefaultShadowFar float32 = 800.0

// DefaultShadowPadding extends the fitted box toward the light so casters
// outside the camera frustum still land in the shadow map.
const DefaultShadowPadding float32 = 50.0

// FitShadowCamera builds the light's combined view-projection matrix by
// fitting an orthographic box around the camera's view frustum in two
// passes: an orientation-only light view over the frustum's centroid, then
// an axis-aligned bound of the frustum corners in that view. The box is
// padded toward the light, capped at DefaultShadowFar deep, and its window
// is snapped to shadow texel increments so the shadow edge stays stable
// while the camera moves.
//
// When the camera matrix cannot be inverted, the fit falls back to a fixed
// box of DefaultShadowHalfExtent around the origin.
func (l *lightImpl) FitShadowCamera(cameraViewProj []float32) [16]float32 {
	l.mu.Lock()
	dir := l.direction
	resolution := l.resolution
	l.mu.Unlock()

	corners, ok := common.FrustumCornersWorld(cameraViewProj)
	if !ok {
		corners = fallbackCorners()
	}

	var center [3]float32
	for _, c := range corners {
		center = common.Add3(center, c)
	}
	center = common.Scale3(center, 1.0/8.0)

	up := [3]float32{0, 1, 0}
	if d := common.Dot3(dir, up); d > 0.99 || d < -0.99 {
		up = [3]float32{0, 0, 1}
	}

	eye := common.Sub3(center, dir)
	var view [16]float32
	common.LookAt(view[:],
		eye[0], eye[1], eye[2],
		center[0], center[1], center[2],
		up[0], up[1], up[2],
	)

	min, max := lightSpaceBounds(view[:], corners)

	// The view looks down -Z: the box face nearest the light sits at -max
	// z, the farthest at -min z.
	near := -max[2] - DefaultShadowPadding
	far := -min[2]
	if far > near+DefaultShadowFar {
		far = near + DefaultShadowFar
	}

	snapToTexels(&min, &max, resolution)

	var proj, lightSpace [16]float32
	common.Orthographic(proj[:], min[0], max[0], min[1], max[1], near, far)
	common.Mul4(lightSpace[:], proj[:], view[:])
	return lightSpace
}

// lightSpaceBounds transforms the corners into the light view and returns
// their axis-aligned bounds.
func lightSpaceBounds(view []float32, corners [8][3]float32) (min, max [3]float32) {
	for i, c := range corners {
		p := common.MulVec4(view, [4]float32{c[0], c[1], c[2], 1})
		if i == 0 {
			min = [3]float32{p[0], p[1], p[2]}
			max = min
			continue
		}
		for axis := 0; axis < 3; axis++ {
			if p[axis] < min[axis] {
				min[axis] = p[axis]
			}
			if p[axis] > max[axis] {
				max[axis] = p[axis]
			}
		}
	}
	return min, max
}

// snapToTexels quantizes the ortho window outward to whole shadow texels.
// The window only ever grows, so every bounded corner stays inside it.
func snapToTexels(min, max *[3]float32, resolution int) {
	if resolution <= 0 {
		return
	}
	for axis := 0; axis < 2; axis++ {
		span := max[axis] - min[axis]
		if span <= 0 {
			continue
		}
		texel := float64(span) / float64(resolution)
		min[axis] = float32(math.Floor(float64(min[axis])/texel) * texel)
		max[axis] = float32(math.Ceil(float64(max[axis])/texel) * texel)
	}
}

// fallbackCorners returns a fixed world-space box around the origin.
func fallbackCorners() [8][3]float32 {
	h := DefaultShadowHalfExtent
	return [8][3]float32{
		{-h, -h, -h}, {h, -h, -h}, {-h, h, -h}, {h, h, -h},
		{-h, -h, h}, {h, -h, h}, {-h, h, h}, {h, h, h},
	}
}
