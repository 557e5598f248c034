package renderer

import (
	"image"

	"github.com/Carmen-Shannon/gloam/engine/renderer/pipeline"
)

// RendererBuilderOption is a functional option applied to a renderer during construction via NewRenderer.
type RendererBuilderOption func(*renderer)

// WithPipeline pre-registers a single Pipeline in the renderer's pipeline cache under the given key.
//
// Parameters:
//   - key: the unique identifier for the pipeline
//   - p: the Pipeline to cache
//
// Returns:
//   - RendererBuilderOption: a function that applies the pipeline option to a renderer
func WithPipeline(key string, p pipeline.Pipeline) RendererBuilderOption {
	return func(r *renderer) {
		r.pipelineCache[key] = p
	}
}

// WithPipelines replaces the renderer's entire pipeline cache with the provided map.
//
// Parameters:
//   - pipelines: a map of pipeline keys to their corresponding Pipeline objects
//
// Returns:
//   - RendererBuilderOption: a function that applies the pipelines option to a renderer
func WithPipelines(pipelines map[string]pipeline.Pipeline) RendererBuilderOption {
	return func(r *renderer) {
		r.pipelineCache = pipelines
	}
}

// WithPresentMode sets the surface present mode which controls how frames are delivered to the display.
//
// Parameters:
//   - mode: the PresentMode to use (VSync or Uncapped)
//
// Returns:
//   - RendererBuilderOption: a function that applies the present mode option to a renderer
func WithPresentMode(mode PresentMode) RendererBuilderOption {
	return func(r *renderer) {
		r.pendingPresentMode = &mode
	}
}

// WithOutputSize sets the render target size used when no window supplies
// one. Ignored when a window is passed to NewRenderer.
//
// Parameters:
//   - width: the output width in pixels
//   - height: the output height in pixels
//
// Returns:
//   - RendererBuilderOption: a function that applies the output size option to a renderer
func WithOutputSize(width, height int) RendererBuilderOption {
	return func(r *renderer) {
		if width < 1 || height < 1 {
			return
		}
		r.width = width
		r.height = height
	}
}

// WithRenderWorkers sets the number of worker goroutines the rasterizer uses
// for parallel fragment fill. Defaults to one less than the CPU count.
//
// Parameters:
//   - n: the worker count
//
// Returns:
//   - RendererBuilderOption: a function that applies the worker count option to a renderer
func WithRenderWorkers(n int) RendererBuilderOption {
	return func(r *renderer) {
		r.pendingWorkers = n
	}
}

// WithFrameCallback registers a function invoked with each presented frame.
// Only delivered by the image backend; the export, terminal, and viewer
// consumers receive frames this way.
//
// Parameters:
//   - onFrame: the function to call with each presented frame
//
// Returns:
//   - RendererBuilderOption: a function that applies the frame callback option to a renderer
func WithFrameCallback(onFrame func(*image.RGBA)) RendererBuilderOption {
	return func(r *renderer) {
		r.onFrame = onFrame
	}
}

// WithForceSoftwareRenderer forces WGPU to use a CPU/software fallback adapter instead of
// hardware GPU acceleration. This requires a software Vulkan ICD to be installed on the system
// (e.g. SwiftShader or lavapipe). Only meaningful for the WGPU backend.
//
// Parameters:
//   - force: true to force the software fallback adapter, false to use hardware (default)
//
// Returns:
//   - RendererBuilderOption: a function that applies the force software renderer option to a renderer
func WithForceSoftwareRenderer(force bool) RendererBuilderOption {
	return func(r *renderer) {
		r.forceFallbackAdapter = force
	}
}
