package text

import (
	"github.com/Carmen-Shannon/gloam/engine/game_object"
	"github.com/Carmen-Shannon/gloam/engine/renderer/material"
	"github.com/Carmen-Shannon/gloam/engine/scene"
)

// drawOptions collects the per-call DrawText settings.
type drawOptions struct {
	scale      float32
	opacity    float32
	persistent bool
}

// DrawTextOption is a functional option for a single DrawText call.
type DrawTextOption func(*drawOptions)

// WithScale multiplies the glyph cell size on screen. Default is 1.
//
// Parameters:
//   - scale: the glyph scale factor
//
// Returns:
//   - DrawTextOption: option function to apply
func WithScale(scale float32) DrawTextOption {
	return func(o *drawOptions) {
		if scale > 0 {
			o.scale = scale
		}
	}
}

// WithOpacity scales the glyph alpha. Default is 1.
//
// Parameters:
//   - opacity: the alpha multiplier in [0,1]
//
// Returns:
//   - DrawTextOption: option function to apply
func WithOpacity(opacity float32) DrawTextOption {
	return func(o *drawOptions) {
		o.opacity = opacity
	}
}

// WithPersistent registers the glyphs in the scene instead of staging them
// for a single frame. Use it for static labels that should survive without
// a DrawText call per frame; remove them through the scene registry.
//
// Returns:
//   - DrawTextOption: option function to apply
func WithPersistent() DrawTextOption {
	return func(o *drawOptions) {
		o.persistent = true
	}
}

// DrawText stages one ephemeral spritesheet sprite per glyph of text into
// the scene, anchored at the pixel position (x, y) of the first glyph's
// top-left corner. Glyphs advance on the atlas's fixed cell width; newlines
// reset to x and advance one cell height. The staged sprites live for
// exactly one rendered frame, so call DrawText every frame the text should
// stay visible. The atlas texture is registered in the scene's texture
// registry on first use.
//
// Parameters:
//   - s: the scene to stage glyphs into
//   - a: the glyph atlas to draw with
//   - content: the text to draw
//   - x: the left edge of the first glyph in pixels
//   - y: the top edge of the first line in pixels
//   - options: functional options for this call
func DrawText(s scene.Scene, a Atlas, content string, x, y float32, options ...DrawTextOption) {
	opts := drawOptions{scale: 1, opacity: 1}
	for _, option := range options {
		option(&opts)
	}

	atlasName := a.Texture().Name()
	if s.Textures().Lookup(atlasName) == nil {
		s.Textures().Register(a.Texture())
	}

	cellW, cellH := a.CellSize()
	glyphW := float32(cellW) * opts.scale
	glyphH := float32(cellH) * opts.scale

	mat := material.NewMaterial(
		material.WithTextureName(atlasName),
		material.WithOpacity(opts.opacity),
	)

	penX, penY := x, y
	for _, r := range content {
		if r == '\n' {
			penX = x
			penY += glyphH
			continue
		}
		size, offset, ok := a.Frame(r)
		if !ok {
			penX += glyphW
			continue
		}
		objOpts := []game_object.GameObjectBuilderOption{
			game_object.WithSpriteSheet(penX, penY, glyphW, glyphH, size, offset),
			game_object.WithMaterial(mat),
		}
		if !opts.persistent {
			objOpts = append(objOpts, game_object.WithEphemeral())
		}
		s.Add(game_object.NewGameObject(objOpts...))
		penX += glyphW
	}
}
