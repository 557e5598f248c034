package material

import (
	"github.com/Carmen-Shannon/gloam/engine/shader"
)

// material is the implementation of the Material interface.
type material struct {
	name        string
	textureName string
	baseColor   [3]float32
	opacity     float32
	doubleSided bool
	palette     *shader.Palette
	lightColor  *[3]float32
}

// Material describes the surface a mesh object renders with: the albedo
// texture reference, an opacity, and optional overrides for the toon
// shading palette. Materials are resolved against the scene's texture
// registry at draw time; they hold names, not samplers.
//
// Surface properties are fixed at construction and read-only through this
// interface, so a material can be shared between objects without locking.
type Material interface {
	// Name retrieves the material identifier.
	//
	// Returns:
	//   - string: the name of the material
	Name() string

	// TextureName retrieves the registry name of the albedo texture, or an
	// empty string when the material renders with its base color only.
	//
	// Returns:
	//   - string: the albedo texture name
	TextureName() string

	// BaseColor retrieves the flat albedo color used when no texture is set.
	//
	// Returns:
	//   - [3]float32: the base color as RGB
	BaseColor() [3]float32

	// Opacity retrieves the opacity multiplier applied to the sampled alpha.
	//
	// Returns:
	//   - float32: the opacity in [0,1]
	Opacity() float32

	// DoubleSided reports whether back-face culling is disabled for this
	// material.
	//
	// Returns:
	//   - bool: true when both triangle windings render
	DoubleSided() bool

	// Palette retrieves the warm/cool shadow palette override, or nil to use
	// the stock palette.
	//
	// Returns:
	//   - *shader.Palette: the palette override, or nil
	Palette() *shader.Palette

	// LightColor retrieves the sun tint override, or nil to use the stock
	// light color.
	//
	// Returns:
	//   - *[3]float32: the light color override, or nil
	LightColor() *[3]float32
}

var _ Material = &material{}

// NewMaterial creates a new Material configured with the provided options.
// The zero material is fully opaque white with the stock palette.
//
// Parameters:
//   - options: variadic list of MaterialBuilderOption functions to configure the material
//
// Returns:
//   - Material: a new Material instance
func NewMaterial(options ...MaterialBuilderOption) Material {
	m := &material{
		baseColor: [3]float32{1, 1, 1},
		opacity:   1.0,
	}
	for _, opt := range options {
		opt(m)
	}
	return m
}

func (m *material) Name() string {
	return m.name
}

func (m *material) TextureName() string {
	return m.textureName
}

func (m *material) BaseColor() [3]float32 {
	return m.baseColor
}

func (m *material) Opacity() float32 {
	return m.opacity
}

func (m *material) DoubleSided() bool {
	return m.doubleSided
}

func (m *material) Palette() *shader.Palette {
	return m.palette
}

func (m *material) LightColor() *[3]float32 {
	return m.lightColor
}
