package renderer

import (
	"image"
	"sync"

	"github.com/Carmen-Shannon/gloam/engine/rasterizer"
)

// imageRendererBackendImpl delivers frames as in-memory images. Each Present
// converts the framebuffer to an RGBA image, hands it to the frame callback
// when one is set, and retains it for LastFrame.
type imageRendererBackendImpl struct {
	mu *sync.Mutex

	onFrame   func(*image.RGBA)
	lastFrame *image.RGBA
}

var _ RendererBackend = &imageRendererBackendImpl{}

func newImageRendererBackend(onFrame func(*image.RGBA)) RendererBackend {
	return &imageRendererBackendImpl{
		mu:      &sync.Mutex{},
		onFrame: onFrame,
	}
}

func (b *imageRendererBackendImpl) ConfigureSurface(width, height int) {
	// No surface to configure; frames carry their own dimensions.
}

func (b *imageRendererBackendImpl) SetPresentMode(mode PresentMode) {
	// Frame pacing is the consumer's concern for in-memory delivery.
}

func (b *imageRendererBackendImpl) Present(fb rasterizer.Framebuffer) error {
	img := fb.ToRGBA()

	b.mu.Lock()
	b.lastFrame = img
	onFrame := b.onFrame
	b.mu.Unlock()

	if onFrame != nil {
		onFrame(img)
	}
	return nil
}

func (b *imageRendererBackendImpl) Release() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lastFrame = nil
}

// lastFrame returns the most recently presented frame, or nil before the
// first Present.
func (b *imageRendererBackendImpl) LastFrame() *image.RGBA {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastFrame
}
