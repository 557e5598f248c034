package material

import (
	"github.com/Carmen-Shannon/gloam/engine/shader"
)

// MaterialBuilderOption is a function that configures a material instance during construction.
type MaterialBuilderOption func(*material)

// WithName is an option builder that sets the name of the material.
//
// Parameters:
//   - name: the identifier for the material
//
// Returns:
//   - MaterialBuilderOption: a function that applies the name option to a material
func WithName(name string) MaterialBuilderOption {
	return func(m *material) {
		m.name = name
	}
}

// WithTextureName is an option builder that sets the registry name of the
// albedo texture.
//
// Parameters:
//   - name: the texture registry name
//
// Returns:
//   - MaterialBuilderOption: a function that applies the texture name option to a material
func WithTextureName(name string) MaterialBuilderOption {
	return func(m *material) {
		m.textureName = name
	}
}

// WithBaseColor is an option builder that sets the flat albedo color used
// when no texture is set.
//
// Parameters:
//   - color: the base color as RGB float32 values
//
// Returns:
//   - MaterialBuilderOption: a function that applies the base color option to a material
func WithBaseColor(color [3]float32) MaterialBuilderOption {
	return func(m *material) {
		m.baseColor = color
	}
}

// WithOpacity is an option builder that sets the opacity multiplier applied
// to the sampled alpha.
//
// Parameters:
//   - opacity: the opacity in [0,1]
//
// Returns:
//   - MaterialBuilderOption: a function that applies the opacity option to a material
func WithOpacity(opacity float32) MaterialBuilderOption {
	return func(m *material) {
		m.opacity = opacity
	}
}

// WithDoubleSided is an option builder that disables back-face culling for
// this material.
//
// Parameters:
//   - doubleSided: true to render both triangle windings
//
// Returns:
//   - MaterialBuilderOption: a function that applies the double-sided option to a material
func WithDoubleSided(doubleSided bool) MaterialBuilderOption {
	return func(m *material) {
		m.doubleSided = doubleSided
	}
}

// WithPalette is an option builder that overrides the warm/cool shadow
// palette for this material.
//
// Parameters:
//   - p: the palette to shade shadowed regions with
//
// Returns:
//   - MaterialBuilderOption: a function that applies the palette option to a material
func WithPalette(p shader.Palette) MaterialBuilderOption {
	return func(m *material) {
		m.palette = &p
	}
}

// WithLightColor is an option builder that overrides the sun tint blended
// into lit surfaces.
//
// Parameters:
//   - color: the light color as RGB
//
// Returns:
//   - MaterialBuilderOption: a function that applies the light color option to a material
func WithLightColor(color [3]float32) MaterialBuilderOption {
	return func(m *material) {
		m.lightColor = &color
	}
}
