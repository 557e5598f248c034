package rasterizer

import (
	"image"
)

// framebuffer is the implementation of the Framebuffer interface.
type framebuffer struct {
	width  int
	height int
	// pix holds RGBA components in [0,1], 4 floats per pixel, row-major.
	pix []float32
}

// Framebuffer is the CPU render target: a grid of linear float RGBA pixels
// written by the rasterizer and converted to 8-bit for presentation. Pixel
// writes are not synchronized; the rasterizer guarantees that concurrent
// workers own disjoint rows.
type Framebuffer interface {
	// Width returns the framebuffer width in pixels.
	//
	// Returns:
	//   - int: width in pixels
	Width() int

	// Height returns the framebuffer height in pixels.
	//
	// Returns:
	//   - int: height in pixels
	Height() int

	// Clear fills every pixel with the given color.
	//
	// Parameters:
	//   - c: the RGBA fill color
	Clear(c [4]float32)

	// At reads one pixel. Out-of-range coordinates return zero.
	//
	// Parameters:
	//   - x: pixel column
	//   - y: pixel row
	//
	// Returns:
	//   - [4]float32: the stored RGBA color
	At(x, y int) [4]float32

	// Set overwrites one pixel. Out-of-range coordinates are ignored.
	//
	// Parameters:
	//   - x: pixel column
	//   - y: pixel row
	//   - c: the RGBA color to store
	Set(x, y int, c [4]float32)

	// Blend composites a color over one pixel with source-over blending.
	// Out-of-range coordinates are ignored.
	//
	// Parameters:
	//   - x: pixel column
	//   - y: pixel row
	//   - c: the RGBA color to composite
	Blend(x, y int, c [4]float32)

	// Raw returns the backing float slice (4 components per pixel,
	// row-major). The slice is shared, not copied.
	//
	// Returns:
	//   - []float32: the pixel components
	Raw() []float32

	// ToRGBA converts the framebuffer to an 8-bit RGBA image, clamping each
	// component to [0,1]. A fresh image is allocated per call.
	//
	// Returns:
	//   - *image.RGBA: the converted image
	ToRGBA() *image.RGBA
}

var _ Framebuffer = &framebuffer{}

// NewFramebuffer creates a Framebuffer cleared to transparent black.
//
// Parameters:
//   - width: width in pixels (must be > 0)
//   - height: height in pixels (must be > 0)
//
// Returns:
//   - Framebuffer: the cleared framebuffer
func NewFramebuffer(width, height int) Framebuffer {
	if width <= 0 || height <= 0 {
		panic("rasterizer: framebuffer dimensions must be positive")
	}
	return &framebuffer{
		width:  width,
		height: height,
		pix:    make([]float32, width*height*4),
	}
}

func (f *framebuffer) Width() int {
	return f.width
}

func (f *framebuffer) Height() int {
	return f.height
}

func (f *framebuffer) Clear(c [4]float32) {
	for i := 0; i < len(f.pix); i += 4 {
		f.pix[i] = c[0]
		f.pix[i+1] = c[1]
		f.pix[i+2] = c[2]
		f.pix[i+3] = c[3]
	}
}

func (f *framebuffer) At(x, y int) [4]float32 {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return [4]float32{}
	}
	i := (y*f.width + x) * 4
	return [4]float32{f.pix[i], f.pix[i+1], f.pix[i+2], f.pix[i+3]}
}

func (f *framebuffer) Set(x, y int, c [4]float32) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	i := (y*f.width + x) * 4
	f.pix[i] = c[0]
	f.pix[i+1] = c[1]
	f.pix[i+2] = c[2]
	f.pix[i+3] = c[3]
}

func (f *framebuffer) Blend(x, y int, c [4]float32) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	i := (y*f.width + x) * 4
	a := c[3]
	inv := 1 - a
	f.pix[i] = c[0]*a + f.pix[i]*inv
	f.pix[i+1] = c[1]*a + f.pix[i+1]*inv
	f.pix[i+2] = c[2]*a + f.pix[i+2]*inv
	f.pix[i+3] = a + f.pix[i+3]*inv
}

func (f *framebuffer) Raw() []float32 {
	return f.pix
}

func (f *framebuffer) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	for i := 0; i < len(f.pix); i += 4 {
		img.Pix[i] = quantizeByte(f.pix[i])
		img.Pix[i+1] = quantizeByte(f.pix[i+1])
		img.Pix[i+2] = quantizeByte(f.pix[i+2])
		img.Pix[i+3] = quantizeByte(f.pix[i+3])
	}
	return img
}

// quantizeByte maps a [0,1] component to an 8-bit value, clamping out-of-range
// inputs instead of wrapping.
func quantizeByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
