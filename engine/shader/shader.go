// package shader implements the per-vertex and per-fragment shading pipeline:
// coordinate transforms, shadow visibility estimation, stylized toon lighting,
// tone mapping, and the 2D overlay sampling variants.
//
// Every entry point is a total, side-effect-free function over a per-draw
// DrawConfig and read-only samplers. Invocations are independent and safe to
// run concurrently without synchronization; the rasterizer drives one call
// per vertex and one per covered pixel.
package shader

import (
	"github.com/Carmen-Shannon/gloam/engine/texture"
)

// Vertex is one element of the per-vertex attribute stream. The slot layout
// is fixed across all draw paths; paths that ignore a slot still consume it.
type Vertex struct {
	// Position is the model-space position.
	Position [3]float32
	// Normal is the surface normal, used as-is by the lighting model
	// (no normal-matrix re-orientation is applied).
	Normal [3]float32
	// TexCoord is the texture coordinate. Only x and y are sampled; z is
	// carried for layout compatibility.
	TexCoord [3]float32
	// Color is the vertex color, carried through interpolation for paths
	// that want it.
	Color [3]float32
}

// Varyings is the vertex stage output interpolated across a primitive by the
// rasterizer and handed to the fragment stage. Interpolation is linear
// (affine) in screen space.
type Varyings struct {
	// ClipPos is the clip-space position before perspective division.
	ClipPos [4]float32
	// TexCoord is the interpolated texture coordinate.
	TexCoord [3]float32
	// Color is the interpolated vertex color.
	Color [3]float32
	// Normal is the interpolated surface normal.
	Normal [3]float32
	// LightDir is the light direction, constant across a draw but carried
	// per-fragment like any other varying.
	LightDir [3]float32
	// LightPos is the homogeneous light-space position used for the shadow
	// map lookup after perspective division.
	LightPos [4]float32
}

// Palette holds the warm/cool tints blended into shadowed surfaces.
type Palette struct {
	// Warm is the tint applied when the light grazes the horizon.
	Warm [3]float32
	// Cool is the tint applied when the light is overhead.
	Cool [3]float32
}

// DefaultPalette is the stock shadow palette: amber warmth at the horizon,
// a cold blue under a high sun.
var DefaultPalette = Palette{
	Warm: [3]float32{1.15, 0.95, 0.70},
	Cool: [3]float32{0.45, 0.55, 0.90},
}

// DefaultLightColor is the stock sun tint blended into lit surfaces.
var DefaultLightColor = [3]float32{1.0, 0.9, 0.7}

// DrawConfig is the per-draw uniform block. The renderer fills one before
// each draw call; it is read-only for the duration of that draw and shared
// by every invocation the draw produces. Fields a given path ignores may be
// left zero.
type DrawConfig struct {
	// Model transforms model space to world space.
	Model [16]float32
	// View transforms world space to camera space.
	View [16]float32
	// Projection transforms camera space to clip space.
	Projection [16]float32
	// LightSpace is the combined light view-projection matrix. The vertex
	// stage applies Model itself: lightPos = LightSpace * Model * position.
	LightSpace [16]float32

	// LightDir is the sun direction.
	LightDir [3]float32
	// LightColor is the sun tint for lit surfaces.
	LightColor [3]float32
	// Shade is the warm/cool shadow palette.
	Shade Palette

	// Opacity scales the sampled alpha on the opacity-modulated 2D path and
	// the lit 3D path.
	Opacity float32

	// SpriteSize and SpriteOffset select a spritesheet tile in normalized
	// texture units (tile dimensions and top-left corner).
	SpriteSize   [2]float32
	SpriteOffset [2]float32

	// AtlasTopLeft and AtlasSize select an atlas region in normalized
	// texture units for the forced-opaque atlas path.
	AtlasTopLeft [2]float32
	AtlasSize    [2]float32

	// Albedo is the color sampler for every textured path.
	Albedo texture.Sampler
	// ShadowMap is the depth sampler for the lit 3D path.
	ShadowMap texture.DepthSampler
}

// VertexFunc is the signature of a vertex stage program: one invocation per
// mesh vertex, producing the varyings the rasterizer interpolates.
type VertexFunc func(cfg *DrawConfig, v Vertex) Varyings

// FragmentFunc is the signature of a fragment stage program: one invocation
// per covered pixel, producing the final RGBA color.
type FragmentFunc func(cfg *DrawConfig, vy Varyings) [4]float32
