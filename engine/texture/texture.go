package texture

import (
	"fmt"
	"image"

	"github.com/Carmen-Shannon/gloam/common"
)

// FilterMode selects how a texture is sampled between texels.
type FilterMode int

const (
	// FilterNearest snaps to the closest texel. Deterministic, the default.
	FilterNearest FilterMode = iota
	// FilterBilinear blends the four surrounding texels.
	FilterBilinear
)

// Sampler is the read-only color sampling surface consumed by fragment
// programs. Sample coordinates are normalized [0,1] with clamp-to-edge
// addressing; results are RGBA components in [0,1].
type Sampler interface {
	// Sample reads the texture at a normalized coordinate.
	//
	// Parameters:
	//   - u: horizontal coordinate in [0,1] (values outside clamp to the edge)
	//   - v: vertical coordinate in [0,1] (values outside clamp to the edge)
	//
	// Returns:
	//   - [4]float32: RGBA color with components in [0,1]
	Sample(u, v float32) [4]float32
}

// texture is the implementation of the Texture interface.
type texture struct {
	name   string
	width  int
	height int
	pix    []byte // RGBA, 4 bytes per texel, row-major
	filter FilterMode
}

// Texture is an immutable 2D RGBA image sampled by fragment programs.
// Construction fixes the pixel contents; sampling is safe for concurrent use.
type Texture interface {
	Sampler

	// Name returns the registry identifier for this texture.
	//
	// Returns:
	//   - string: the texture name (may be empty when unregistered)
	Name() string

	// Width returns the texture width in texels.
	//
	// Returns:
	//   - int: width in texels
	Width() int

	// Height returns the texture height in texels.
	//
	// Returns:
	//   - int: height in texels
	Height() int

	// Pixels returns the backing RGBA bytes (4 per texel, row-major).
	// The slice is shared, not copied; treat it as read-only.
	//
	// Returns:
	//   - []byte: the RGBA pixel data
	Pixels() []byte
}

var _ Texture = &texture{}

// NewTexture creates a Texture from the provided options.
// With no pixel source option the texture is a single opaque white texel,
// which samples as (1,1,1,1) everywhere.
//
// Parameters:
//   - options: functional options for texture configuration
//
// Returns:
//   - Texture: the constructed texture
func NewTexture(options ...TextureBuilderOption) Texture {
	t := &texture{
		width:  1,
		height: 1,
		pix:    []byte{255, 255, 255, 255},
		filter: FilterNearest,
	}
	for _, opt := range options {
		opt(t)
	}
	return t
}

// NewTextureFromFile creates a Texture by decoding the PNG or JPEG file at path.
//
// Parameters:
//   - path: image file path
//   - options: additional options applied after the pixels are loaded
//
// Returns:
//   - Texture: the decoded texture
//   - error: error if the file cannot be read or decoded
func NewTextureFromFile(path string, options ...TextureBuilderOption) (Texture, error) {
	buf, err := common.DecodePixels(nil, path)
	if err != nil {
		return nil, fmt.Errorf("texture: %w", err)
	}
	opts := append([]TextureBuilderOption{withPixelBuffer(buf)}, options...)
	return NewTexture(opts...), nil
}

// NewTextureFromImage creates a Texture from an in-memory image.
//
// Parameters:
//   - img: the source image (converted to RGBA)
//   - options: additional options applied after the pixels are loaded
//
// Returns:
//   - Texture: the constructed texture
func NewTextureFromImage(img image.Image, options ...TextureBuilderOption) Texture {
	buf := common.PixelsFromImage(img)
	opts := append([]TextureBuilderOption{withPixelBuffer(buf)}, options...)
	return NewTexture(opts...)
}

func (t *texture) Name() string {
	return t.name
}

func (t *texture) Width() int {
	return t.width
}

func (t *texture) Height() int {
	return t.height
}

func (t *texture) Pixels() []byte {
	return t.pix
}

func (t *texture) Sample(u, v float32) [4]float32 {
	switch t.filter {
	case FilterBilinear:
		return t.sampleBilinear(u, v)
	default:
		return t.sampleNearest(u, v)
	}
}

// texelAt reads one texel, clamping coordinates to the image edge.
func (t *texture) texelAt(x, y int) [4]float32 {
	if x < 0 {
		x = 0
	} else if x >= t.width {
		x = t.width - 1
	}
	if y < 0 {
		y = 0
	} else if y >= t.height {
		y = t.height - 1
	}
	i := (y*t.width + x) * 4
	const inv = 1.0 / 255.0
	return [4]float32{
		float32(t.pix[i]) * inv,
		float32(t.pix[i+1]) * inv,
		float32(t.pix[i+2]) * inv,
		float32(t.pix[i+3]) * inv,
	}
}

func (t *texture) sampleNearest(u, v float32) [4]float32 {
	x := int(u * float32(t.width))
	y := int(v * float32(t.height))
	return t.texelAt(x, y)
}

func (t *texture) sampleBilinear(u, v float32) [4]float32 {
	// Texel centers sit at (i+0.5)/size.
	fx := u*float32(t.width) - 0.5
	fy := v*float32(t.height) - 0.5
	x0 := int(floor32(fx))
	y0 := int(floor32(fy))
	tx := fx - floor32(fx)
	ty := fy - floor32(fy)

	c00 := t.texelAt(x0, y0)
	c10 := t.texelAt(x0+1, y0)
	c01 := t.texelAt(x0, y0+1)
	c11 := t.texelAt(x0+1, y0+1)

	var out [4]float32
	for i := 0; i < 4; i++ {
		top := c00[i] + (c10[i]-c00[i])*tx
		bot := c01[i] + (c11[i]-c01[i])*tx
		out[i] = top + (bot-top)*ty
	}
	return out
}

func floor32(x float32) float32 {
	i := float32(int(x))
	if x < 0 && i != x {
		i--
	}
	return i
}
