package renderer

import (
	"fmt"
	"image"
	"sync"

	"github.com/Carmen-Shannon/gloam/engine/mesh"
	"github.com/Carmen-Shannon/gloam/engine/rasterizer"
	"github.com/Carmen-Shannon/gloam/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/gloam/engine/shader"
	"github.com/Carmen-Shannon/gloam/engine/texture"
	"github.com/Carmen-Shannon/gloam/engine/window"
)

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu *sync.Mutex

	pipelineCache map[string]pipeline.Pipeline

	backendType RendererBackendType
	backend     RendererBackend

	ras    rasterizer.Rasterizer
	width  int
	height int

	// shadowTarget is non-nil between BeginShadowFrame and EndShadowFrame.
	shadowTarget texture.DepthTexture

	// Pre-creation config collected from builder options
	forceFallbackAdapter bool
	pendingPresentMode   *PresentMode
	pendingWorkers       int
	onFrame              func(*image.RGBA)
}

// Renderer defines the interface for the rendering system.
//
// This is a high-level API designed to simplify rendering tasks into a streamlined and idiomatic flow.
// The Renderer manages a cache of pipelines, runs draw calls through the CPU rasterizer, and presents
// finished frames through a backend, allowing for multiple presentation implementations to exist.
type Renderer interface {
	// Pipeline retrieves the cached Pipeline associated with the given key.
	// If the Pipeline does not exist, this will return nil.
	//
	// Parameters:
	//   - key: the unique identifier for the Pipeline to retrieve
	//
	// Returns:
	//   - pipeline.Pipeline: the Pipeline associated with the key, or nil if not found
	Pipeline(key string) pipeline.Pipeline

	// Pipelines retrieves the entire cache of Pipelines.
	//
	// Returns:
	//   - map[string]pipeline.Pipeline: a map of pipeline keys to their corresponding Pipeline objects
	Pipelines() map[string]pipeline.Pipeline

	// RegisterPipelines caches one or more pipelines by PipelineKey.
	// Pipelines whose keys are already registered are skipped.
	//
	// Parameters:
	//   - pipelines: the Pipelines to register
	//
	// Returns:
	//   - error: an error if any pipeline has an empty key
	RegisterPipelines(pipelines ...pipeline.Pipeline) error

	// SetPipeline adds or updates a Pipeline in the cache with the given key.
	//
	// Parameters:
	//   - key: the unique identifier for the Pipeline to add or update in the cache
	//   - p: the Pipeline to add or update in the cache
	SetPipeline(key string, p pipeline.Pipeline)

	// SetPipelines replaces the entire pipeline cache with the provided map of Pipelines.
	//
	// Parameters:
	//   - pipelines: a map of pipeline keys to their corresponding Pipeline objects to set as the new cache
	SetPipelines(pipelines map[string]pipeline.Pipeline)

	// Resize reallocates the rasterizer targets and reconfigures the backend
	// for a new output size. This should be called when re-sizing the window
	// or when the output size should change.
	//
	// Parameters:
	//   - width: the new width of the output in pixels
	//   - height: the new height of the output in pixels
	Resize(width, height int)

	// Framebuffer returns the color target draw calls render into. The
	// contents are only complete between EndFrame and the next BeginFrame.
	//
	// Returns:
	//   - rasterizer.Framebuffer: the current framebuffer
	Framebuffer() rasterizer.Framebuffer

	// LastFrame returns the most recently presented frame when using the
	// image backend, or nil for backends that present directly to a surface.
	//
	// Returns:
	//   - *image.RGBA: the last presented frame, or nil
	LastFrame() *image.RGBA

	// BeginShadowFrame starts a depth-only pass targeting the given shadow
	// map, clearing it to the far plane. Must be paired with EndShadowFrame
	// after all ShadowDrawCall invocations.
	//
	// Parameters:
	//   - target: the shadow map depth texture to render into
	BeginShadowFrame(target texture.DepthTexture)

	// ShadowDrawCall renders a mesh's depth into the current shadow target.
	//
	// Parameters:
	//   - pipelineKey: the unique identifier for the cached depth Pipeline to use
	//   - cfg: the per-draw uniform block
	//   - m: the mesh to draw
	//
	// Returns:
	//   - error: an error if the pipeline is not found or no shadow frame is active
	ShadowDrawCall(pipelineKey string, cfg *shader.DrawConfig, m mesh.Mesh) error

	// EndShadowFrame ends the current shadow pass. The shadow target may be
	// sampled once this returns.
	EndShadowFrame()

	// BeginFrame clears the framebuffer and depth buffer and begins the main
	// pass. Must be paired with EndFrame after all DrawCall invocations
	// within a single frame.
	//
	// Parameters:
	//   - clearColor: the RGBA color the framebuffer is cleared to
	BeginFrame(clearColor [4]float32)

	// DrawCall renders a single mesh within the current frame. Multiple
	// DrawCall invocations can be made between BeginFrame and EndFrame.
	//
	// Parameters:
	//   - pipelineKey: the unique identifier for the cached Pipeline to use
	//   - cfg: the per-draw uniform block
	//   - m: the mesh to draw
	//
	// Returns:
	//   - error: an error if the pipeline is not found
	DrawCall(pipelineKey string, cfg *shader.DrawConfig, m mesh.Mesh) error

	// EndFrame ends the main pass. Does not present — call Present() after
	// EndFrame to display the frame.
	EndFrame()

	// Present delivers the finished frame through the backend.
	// Must be called once per frame after EndFrame.
	//
	// Returns:
	//   - error: an error if the frame could not be delivered
	Present() error

	// SetPresentMode sets how frames are delivered to the display.
	// Only meaningful for the WGPU backend.
	//
	// Parameters:
	//   - mode: the PresentMode to use (VSync or Uncapped)
	SetPresentMode(mode PresentMode)

	// Release frees backend resources. The renderer must not be used after
	// Release.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates a new Renderer instance with the specified backend type.
// For BackendTypeWGPU a window is required to supply the platform surface;
// BackendTypeImage accepts a nil window and renders headless at the size set
// via WithOutputSize.
//
// Parameters:
//   - backendType: the type of presentation backend to use (WGPU or Image)
//   - win: the window to present into, or nil for headless rendering
//   - options: variadic list of RendererBuilderOption functions to configure the Renderer
//
// Returns:
//   - Renderer: a new instance of Renderer configured with the specified backend and options
func NewRenderer(backendType RendererBackendType, win window.Window, options ...RendererBuilderOption) Renderer {
	r := &renderer{
		mu:            &sync.Mutex{},
		pipelineCache: make(map[string]pipeline.Pipeline),
		backendType:   backendType,
		width:         800,
		height:        600,
	}

	// Apply options first so config flags (e.g. forceFallbackAdapter) are
	// available before the backend requests a GPU adapter.
	for _, opt := range options {
		opt(r)
	}

	if win != nil {
		r.width = win.Width()
		r.height = win.Height()
	}

	switch backendType {
	case BackendTypeImage:
		r.backend = newImageRendererBackend(r.onFrame)
	case BackendTypeWGPU:
		fallthrough
	default:
		if win == nil {
			panic("renderer: WGPU backend requires a window")
		}
		r.backend = newWGPURendererBackend(win.SurfaceDescriptor(), r.forceFallbackAdapter)
	}

	if r.pendingPresentMode != nil {
		r.backend.SetPresentMode(*r.pendingPresentMode)
	}

	rasOptions := []rasterizer.RasterizerBuilderOption{}
	if r.pendingWorkers > 0 {
		rasOptions = append(rasOptions, rasterizer.WithWorkers(r.pendingWorkers))
	}
	r.ras = rasterizer.NewRasterizer(r.width, r.height, rasOptions...)

	r.backend.ConfigureSurface(r.width, r.height)
	return r
}

func (r *renderer) Resize(width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if width < 1 || height < 1 {
		return
	}
	r.width = width
	r.height = height
	r.ras.Resize(width, height)
	r.backend.ConfigureSurface(width, height)
}

func (r *renderer) SetPresentMode(mode PresentMode) {
	r.backend.SetPresentMode(mode)
}

func (r *renderer) Framebuffer() rasterizer.Framebuffer {
	return r.ras.Framebuffer()
}

func (r *renderer) LastFrame() *image.RGBA {
	if b, ok := r.backend.(*imageRendererBackendImpl); ok {
		return b.LastFrame()
	}
	return nil
}

func (r *renderer) Pipeline(key string) pipeline.Pipeline {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pipelineCache[key]
}

func (r *renderer) Pipelines() map[string]pipeline.Pipeline {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pipelineCache
}

func (r *renderer) RegisterPipelines(pipelines ...pipeline.Pipeline) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range pipelines {
		key := p.PipelineKey()
		if key == "" {
			return fmt.Errorf("pipeline has an empty key")
		}
		if _, exists := r.pipelineCache[key]; exists {
			continue
		}
		r.pipelineCache[key] = p
	}
	return nil
}

func (r *renderer) SetPipeline(key string, p pipeline.Pipeline) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pipelineCache[key] = p
}

func (r *renderer) SetPipelines(pipelines map[string]pipeline.Pipeline) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pipelineCache = pipelines
}

func (r *renderer) BeginShadowFrame(target texture.DepthTexture) {
	r.mu.Lock()
	defer r.mu.Unlock()
	target.Clear(1.0)
	r.shadowTarget = target
}

func (r *renderer) ShadowDrawCall(pipelineKey string, cfg *shader.DrawConfig, m mesh.Mesh) error {
	r.mu.Lock()
	p, exists := r.pipelineCache[pipelineKey]
	target := r.shadowTarget
	r.mu.Unlock()

	if !exists {
		return fmt.Errorf("shadow pipeline %q not found in cache", pipelineKey)
	}
	if target == nil {
		return fmt.Errorf("no shadow frame active")
	}

	r.ras.DrawDepth(cfg, m, p, target)
	return nil
}

func (r *renderer) EndShadowFrame() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shadowTarget = nil
}

func (r *renderer) BeginFrame(clearColor [4]float32) {
	r.ras.Clear(clearColor)
}

func (r *renderer) DrawCall(pipelineKey string, cfg *shader.DrawConfig, m mesh.Mesh) error {
	r.mu.Lock()
	p, exists := r.pipelineCache[pipelineKey]
	r.mu.Unlock()

	if !exists {
		return fmt.Errorf("render pipeline %q not found in cache", pipelineKey)
	}

	r.ras.DrawMesh(cfg, m, p)
	return nil
}

func (r *renderer) EndFrame() {
	// All draw calls complete synchronously; nothing to flush.
}

func (r *renderer) Present() error {
	return r.backend.Present(r.ras.Framebuffer())
}

func (r *renderer) Release() {
	r.backend.Release()
}
