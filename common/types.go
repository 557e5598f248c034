// package common contains common types that are used throughout this engine. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"
)

// PixelBuffer holds decoded RGBA pixel data shared between the texture layer
// and the present backends. Pixels are 4 bytes per texel, row-major order.
type PixelBuffer struct {
	// Pix is the byte slice representing the actual pixel data. It should be in RGBA format, with 4 bytes per pixel.
	Pix []byte
	// Width is the width in pixels. This is required to correctly interpret the pixel data.
	Width uint32
	// Height is the height in pixels. This is required to correctly interpret the pixel data.
	Height uint32
}

// DecodePixels decodes an image into a PixelBuffer.
// Exactly one of data or path should be provided: embedded bytes win when both
// are set. Supports PNG and JPEG formats.
// Reference: https://pkg.go.dev/image
//
// Parameters:
//   - data: raw image bytes (PNG/JPEG), or nil to load from path
//   - path: file path to load when data is empty
//
// Returns:
//   - *PixelBuffer: decoded RGBA pixels with dimensions
//   - error: error if decoding fails
func DecodePixels(data []byte, path string) (*PixelBuffer, error) {
	var img image.Image
	var err error

	if len(data) > 0 {
		img, _, err = image.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode embedded image: %w", err)
		}
	} else if path != "" {
		file, fileErr := os.Open(path)
		if fileErr != nil {
			return nil, fmt.Errorf("failed to open image file %s: %w", path, fileErr)
		}
		defer file.Close()

		img, _, err = image.Decode(file)
		if err != nil {
			return nil, fmt.Errorf("failed to decode image file %s: %w", path, err)
		}
	} else {
		return nil, fmt.Errorf("image has neither data nor path")
	}

	return PixelsFromImage(img), nil
}

// PixelsFromImage converts any image.Image into an RGBA PixelBuffer.
//
// Parameters:
//   - img: the source image
//
// Returns:
//   - *PixelBuffer: RGBA pixels with the image's dimensions
func PixelsFromImage(img image.Image) *PixelBuffer {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)

	return &PixelBuffer{
		Pix:    rgba.Pix,
		Width:  uint32(width),
		Height: uint32(height),
	}
}
