package texture

import "github.com/Carmen-Shannon/gloam/common"

// TextureBuilderOption configures a texture during construction.
type TextureBuilderOption func(*texture)

// WithName sets the registry identifier for the texture.
//
// Parameters:
//   - name: the texture name
//
// Returns:
//   - TextureBuilderOption: the configured option
func WithName(name string) TextureBuilderOption {
	return func(t *texture) {
		t.name = name
	}
}

// WithFilter sets the sampling filter mode.
//
// Parameters:
//   - filter: FilterNearest or FilterBilinear
//
// Returns:
//   - TextureBuilderOption: the configured option
func WithFilter(filter FilterMode) TextureBuilderOption {
	return func(t *texture) {
		t.filter = filter
	}
}

// WithPixels sets the texture contents from raw RGBA bytes.
// The slice is used directly, not copied. Panics if the byte count does not
// match width*height*4.
//
// Parameters:
//   - pix: RGBA pixel data, 4 bytes per texel, row-major
//   - width: width in texels
//   - height: height in texels
//
// Returns:
//   - TextureBuilderOption: the configured option
func WithPixels(pix []byte, width, height int) TextureBuilderOption {
	return func(t *texture) {
		if len(pix) != width*height*4 {
			panic("texture: pixel data does not match dimensions")
		}
		t.pix = pix
		t.width = width
		t.height = height
	}
}

// WithSolid fills the texture with a single RGBA color at 1x1.
//
// Parameters:
//   - r, g, b, a: color components in [0,1]
//
// Returns:
//   - TextureBuilderOption: the configured option
func WithSolid(r, g, b, a float32) TextureBuilderOption {
	return func(t *texture) {
		t.width = 1
		t.height = 1
		t.pix = []byte{
			byte(common.Clamp(r, 0, 1) * 255),
			byte(common.Clamp(g, 0, 1) * 255),
			byte(common.Clamp(b, 0, 1) * 255),
			byte(common.Clamp(a, 0, 1) * 255),
		}
	}
}

// WithChecker fills the texture with a two-color checkerboard. Useful as a
// stand-in albedo for tools and tests.
//
// Parameters:
//   - size: texture width and height in texels
//   - cell: checker cell size in texels
//   - dark: RGB components of the dark cells in [0,1]
//   - light: RGB components of the light cells in [0,1]
//
// Returns:
//   - TextureBuilderOption: the configured option
func WithChecker(size, cell int, dark, light [3]float32) TextureBuilderOption {
	return func(t *texture) {
		if size <= 0 || cell <= 0 {
			panic("texture: checker size and cell must be positive")
		}
		pix := make([]byte, size*size*4)
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				c := light
				if ((x/cell)+(y/cell))%2 == 0 {
					c = dark
				}
				i := (y*size + x) * 4
				pix[i] = byte(common.Clamp(c[0], 0, 1) * 255)
				pix[i+1] = byte(common.Clamp(c[1], 0, 1) * 255)
				pix[i+2] = byte(common.Clamp(c[2], 0, 1) * 255)
				pix[i+3] = 255
			}
		}
		t.pix = pix
		t.width = size
		t.height = size
	}
}

// withPixelBuffer adopts a decoded pixel buffer as the texture contents.
func withPixelBuffer(buf *common.PixelBuffer) TextureBuilderOption {
	return func(t *texture) {
		t.pix = buf.Pix
		t.width = int(buf.Width)
		t.height = int(buf.Height)
	}
}
