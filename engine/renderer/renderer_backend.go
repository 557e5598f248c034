package renderer

import (
	"github.com/Carmen-Shannon/gloam/engine/rasterizer"
)

// RendererBackendType identifies the presentation backend used by the Renderer.
type RendererBackendType int

const (
	// BackendTypeWGPU presents frames by uploading the framebuffer to a GPU
	// texture and blitting it to a window surface via WebGPU.
	BackendTypeWGPU RendererBackendType = iota

	// BackendTypeImage delivers frames as in-memory images without a window.
	// Used for headless rendering, export, and tests.
	BackendTypeImage
)

// PresentMode controls how rendered frames are presented to the display surface.
// Only meaningful for the WGPU backend; the image backend ignores it.
type PresentMode int

const (
	// PresentModeVSync waits for the next vertical blank before presenting, capping frame rate
	// to the monitor's refresh rate. Eliminates tearing.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents frames immediately without waiting for vertical blank.
	// May cause screen tearing but provides the lowest latency.
	PresentModeUncapped
)

// RendererBackend receives finished frames from the Renderer and delivers
// them somewhere visible. Rendering itself happens on the CPU before the
// backend is involved; a backend only moves pixels.
type RendererBackend interface {
	// ConfigureSurface prepares the backend's output target for a new size.
	// Called once at startup and again whenever the output resizes.
	//
	// Parameters:
	//   - width: the new width of the output in pixels
	//   - height: the new height of the output in pixels
	ConfigureSurface(width, height int)

	// SetPresentMode sets how frames are delivered to the display.
	//
	// Parameters:
	//   - mode: the PresentMode to use (VSync or Uncapped)
	SetPresentMode(mode PresentMode)

	// Present delivers one finished frame.
	//
	// Parameters:
	//   - fb: the framebuffer holding the frame to present
	//
	// Returns:
	//   - error: an error if the frame could not be delivered
	Present(fb rasterizer.Framebuffer) error

	// Release frees any resources held by the backend. The backend must not
	// be used after Release.
	Release()
}
