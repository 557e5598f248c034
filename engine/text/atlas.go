// package text renders text through the 2D overlay path: a font face is
// rasterized once into a fixed-cell glyph atlas texture, and each drawn
// string becomes one spritesheet-variant sprite object per glyph.
package text

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/Carmen-Shannon/gloam/engine/texture"
)

// The printable ASCII range baked into every atlas.
const (
	firstRune = ' '
	lastRune  = '~'

	atlasColumns = 16
)

// Atlas is a glyph atlas: a font face rasterized into a grid of fixed-size
// cells on a single texture, with per-glyph sheet frames for the spritesheet
// overlay path.
type Atlas interface {
	// Texture returns the atlas texture holding every baked glyph.
	Texture() texture.Texture

	// CellSize returns the fixed glyph cell dimensions in pixels.
	//
	// Returns:
	//   - int: cell width in pixels
	//   - int: cell height in pixels
	CellSize() (width, height int)

	// Frame returns the normalized sheet frame for a rune: the tile size
	// and top-left offset in texture units, as consumed by the spritesheet
	// sampling path. Runes outside the baked range report ok = false.
	//
	// Parameters:
	//   - r: the rune to look up
	//
	// Returns:
	//   - [2]float32: the tile size in normalized texture units
	//   - [2]float32: the tile top-left offset in normalized texture units
	//   - bool: false if the rune is not in the atlas
	Frame(r rune) (size, offset [2]float32, ok bool)
}

type atlas struct {
	name  string
	color color.Color

	tex        texture.Texture
	cellWidth  int
	cellHeight int
	rows       int
}

var _ Atlas = &atlas{}

// NewAtlas bakes the printable ASCII range of the given face into a glyph
// atlas. A nil face falls back to basicfont.Face7x13. Cell dimensions come
// from the face metrics: the widest glyph advance by ascent plus descent.
//
// Parameters:
//   - face: the font face to rasterize (nil for the builtin 7x13 face)
//   - options: functional options to further configure the atlas
//
// Returns:
//   - Atlas: the baked atlas
func NewAtlas(face font.Face, options ...AtlasBuilderOption) Atlas {
	if face == nil {
		face = basicfont.Face7x13
	}

	a := &atlas{
		name:  "glyph_atlas",
		color: color.White,
	}
	for _, option := range options {
		option(a)
	}

	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	a.cellHeight = ascent + metrics.Descent.Ceil()

	for r := rune(firstRune); r <= lastRune; r++ {
		if advance, ok := face.GlyphAdvance(r); ok {
			if w := advance.Ceil(); w > a.cellWidth {
				a.cellWidth = w
			}
		}
	}
	if a.cellWidth < 1 {
		a.cellWidth = 1
	}

	glyphCount := int(lastRune-firstRune) + 1
	a.rows = (glyphCount + atlasColumns - 1) / atlasColumns

	img := image.NewRGBA(image.Rect(0, 0, atlasColumns*a.cellWidth, a.rows*a.cellHeight))
	drawer := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(a.color),
		Face: face,
	}
	for r := rune(firstRune); r <= lastRune; r++ {
		index := int(r - firstRune)
		cellX := (index % atlasColumns) * a.cellWidth
		cellY := (index / atlasColumns) * a.cellHeight
		drawer.Dot = fixed.P(cellX, cellY+ascent)
		drawer.DrawString(string(r))
	}

	a.tex = texture.NewTextureFromImage(img, texture.WithName(a.name))
	return a
}

// LoadFace parses TTF/OTF font data and returns a face at the given point
// size, hinted for 72 DPI rendering.
//
// Parameters:
//   - data: the raw font file contents
//   - size: the point size
//
// Returns:
//   - font.Face: the created face
//   - error: error if the font data cannot be parsed
func LoadFace(data []byte, size float64) (font.Face, error) {
	ft, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("text: failed to create face: %w", err)
	}
	return face, nil
}

// LoadFaceFile reads a TTF/OTF file from disk and returns a face at the
// given point size.
//
// Parameters:
//   - path: the font file path
//   - size: the point size
//
// Returns:
//   - font.Face: the created face
//   - error: error if the file cannot be read or parsed
func LoadFaceFile(path string, size float64) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	return LoadFace(data, size)
}

func (a *atlas) Texture() texture.Texture {
	return a.tex
}

func (a *atlas) CellSize() (width, height int) {
	return a.cellWidth, a.cellHeight
}

func (a *atlas) Frame(r rune) (size, offset [2]float32, ok bool) {
	if r < firstRune || r > lastRune {
		return size, offset, false
	}
	index := int(r - firstRune)
	size = [2]float32{1.0 / atlasColumns, 1.0 / float32(a.rows)}
	offset = [2]float32{
		float32(index%atlasColumns) / atlasColumns,
		float32(index/atlasColumns) / float32(a.rows),
	}
	return size, offset, true
}
