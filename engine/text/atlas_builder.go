package text

import "image/color"

// AtlasBuilderOption is a functional option for configuring an Atlas.
// Use the With* functions to create options.
type AtlasBuilderOption func(a *atlas)

// WithName sets the name the atlas texture registers under. Default is
// "glyph_atlas". Distinct atlases sharing a scene must use distinct names.
//
// Parameters:
//   - name: the texture name
//
// Returns:
//   - AtlasBuilderOption: option function to apply
func WithName(name string) AtlasBuilderOption {
	return func(a *atlas) {
		a.name = name
	}
}

// WithColor sets the color glyphs are baked with. Default is white. Text
// color is fixed per atlas; bake one atlas per color in use.
//
// Parameters:
//   - c: the glyph color
//
// Returns:
//   - AtlasBuilderOption: option function to apply
func WithColor(c color.Color) AtlasBuilderOption {
	return func(a *atlas) {
		a.color = c
	}
}
