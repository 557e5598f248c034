package texture

// DepthSampler is the read-only depth sampling surface consumed by the shadow
// visibility estimator. Coordinates are normalized [0,1] with clamp-to-edge
// addressing; samples are depths in [0,1].
type DepthSampler interface {
	// SampleDepth reads the depth at a normalized coordinate (nearest texel).
	//
	// Parameters:
	//   - u: horizontal coordinate in [0,1] (values outside clamp to the edge)
	//   - v: vertical coordinate in [0,1] (values outside clamp to the edge)
	//
	// Returns:
	//   - float32: the stored depth in [0,1]
	SampleDepth(u, v float32) float32
}

// depthTexture is the implementation of the DepthTexture interface.
type depthTexture struct {
	width  int
	height int
	depth  []float32
}

// DepthTexture is a 2D grid of normalized depth samples. It doubles as the
// shadow pass render target and the read-only sampling source for the lit
// pass: the renderer guarantees the write pass completes before any sampling
// begins, so no locking is needed.
type DepthTexture interface {
	DepthSampler

	// Width returns the depth texture width in texels.
	//
	// Returns:
	//   - int: width in texels
	Width() int

	// Height returns the depth texture height in texels.
	//
	// Returns:
	//   - int: height in texels
	Height() int

	// Clear fills every sample with the given depth (typically 1.0, the far plane).
	//
	// Parameters:
	//   - d: the depth value to fill with
	Clear(d float32)

	// Set writes one depth sample. Out-of-range coordinates are ignored.
	//
	// Parameters:
	//   - x: texel column
	//   - y: texel row
	//   - d: the depth value to store
	Set(x, y int, d float32)

	// At reads one depth sample without normalization. Out-of-range
	// coordinates clamp to the edge.
	//
	// Parameters:
	//   - x: texel column
	//   - y: texel row
	//
	// Returns:
	//   - float32: the stored depth
	At(x, y int) float32

	// Raw returns the backing depth slice (row-major). The slice is shared,
	// not copied; writers must not race with samplers.
	//
	// Returns:
	//   - []float32: the depth samples
	Raw() []float32
}

var _ DepthTexture = &depthTexture{}

// NewDepthTexture creates a DepthTexture cleared to the far plane (1.0).
//
// Parameters:
//   - width: width in texels (must be > 0)
//   - height: height in texels (must be > 0)
//
// Returns:
//   - DepthTexture: the cleared depth texture
func NewDepthTexture(width, height int) DepthTexture {
	if width <= 0 || height <= 0 {
		panic("texture: depth texture dimensions must be positive")
	}
	d := &depthTexture{
		width:  width,
		height: height,
		depth:  make([]float32, width*height),
	}
	d.Clear(1.0)
	return d
}

func (d *depthTexture) Width() int {
	return d.width
}

func (d *depthTexture) Height() int {
	return d.height
}

func (d *depthTexture) Clear(v float32) {
	for i := range d.depth {
		d.depth[i] = v
	}
}

func (d *depthTexture) Set(x, y int, v float32) {
	if x < 0 || x >= d.width || y < 0 || y >= d.height {
		return
	}
	d.depth[y*d.width+x] = v
}

func (d *depthTexture) At(x, y int) float32 {
	if x < 0 {
		x = 0
	} else if x >= d.width {
		x = d.width - 1
	}
	if y < 0 {
		y = 0
	} else if y >= d.height {
		y = d.height - 1
	}
	return d.depth[y*d.width+x]
}

func (d *depthTexture) Raw() []float32 {
	return d.depth
}

func (d *depthTexture) SampleDepth(u, v float32) float32 {
	x := int(u * float32(d.width))
	y := int(v * float32(d.height))
	return d.At(x, y)
}
