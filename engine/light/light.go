package light

import (
	"sync"

	"github.com/Carmen-Shannon/gloam/engine/shader"
	"github.com/Carmen-Shannon/gloam/engine/texture"
)

// lightImpl is the implementation of the Light interface.
type lightImpl struct {
	mu *sync.Mutex

	direction [3]float32
	color     [3]float32
	intensity float32

	enabled      bool
	castsShadows bool

	resolution int
	shadowMap  texture.DepthTexture
}

// Light is the scene's directional sun. It carries the travel direction and
// color blended into lit surfaces, and owns the depth texture the shadow
// pass renders into.
//
// Direction is the direction the light travels through the scene; draw
// configuration uses the opposite vector as the shading light direction.
type Light interface {
	// Direction returns the normalized direction the light travels.
	//
	// Returns:
	//   - [3]float32: normalized direction as (x, y, z)
	Direction() [3]float32

	// Color returns the RGB color of the light.
	//
	// Returns:
	//   - [3]float32: color as (r, g, b)
	Color() [3]float32

	// Intensity returns the scalar intensity multiplier for the light.
	//
	// Returns:
	//   - float32: the intensity value
	Intensity() float32

	// Enabled returns whether this light is active for rendering.
	//
	// Returns:
	//   - bool: true if the light is enabled
	Enabled() bool

	// CastsShadows returns whether the shadow pass runs for this light.
	//
	// Returns:
	//   - bool: true if the light casts shadows
	CastsShadows() bool

	// Resolution returns the shadow map width and height in texels.
	//
	// Returns:
	//   - int: the shadow map resolution
	Resolution() int

	// ShadowMap returns the depth texture owned by this light. The shadow
	// pass renders into it and the lit pass samples it; the renderer
	// guarantees the passes do not overlap.
	//
	// Returns:
	//   - texture.DepthTexture: the shadow depth texture
	ShadowMap() texture.DepthTexture

	// FitShadowCamera builds the light's combined view-projection matrix
	// for the current frame by fitting an orthographic box around the
	// camera's view frustum. See the function documentation in shadow.go
	// for the fitting rules.
	//
	// Parameters:
	//   - cameraViewProj: the camera's combined view-projection matrix (16 floats, column-major)
	//
	// Returns:
	//   - [16]float32: the light view-projection matrix
	FitShadowCamera(cameraViewProj []float32) [16]float32

	// SetDirection sets the direction of the light and normalizes it.
	//
	// Parameters:
	//   - x, y, z: direction components (will be normalized)
	SetDirection(x, y, z float32)

	// SetColor sets the RGB color of the light.
	//
	// Parameters:
	//   - r, g, b: color components
	SetColor(r, g, b float32)

	// SetIntensity sets the scalar intensity multiplier.
	//
	// Parameters:
	//   - intensity: the intensity value
	SetIntensity(intensity float32)

	// SetEnabled enables or disables the light for rendering.
	//
	// Parameters:
	//   - enabled: true to enable
	SetEnabled(enabled bool)

	// SetCastsShadows sets whether the shadow pass runs for this light.
	//
	// Parameters:
	//   - castsShadows: true to enable shadow casting
	SetCastsShadows(castsShadows bool)
}

var _ Light = &lightImpl{}

// NewLight creates a directional sun light with sensible defaults: a
// morning-sun angle, the stock warm light color, shadows enabled at
// ShadowMapResolution.
//
// Parameters:
//   - opts: variadic list of LightBuilderOption functions to configure the light
//
// Returns:
//   - Light: a new Light instance
func NewLight(opts ...LightBuilderOption) Light {
	l := &lightImpl{
		mu:           &sync.Mutex{},
		direction:    normalize3(-0.4, -1.0, -0.3),
		color:        shader.DefaultLightColor,
		intensity:    1.0,
		enabled:      true,
		castsShadows: true,
		resolution:   ShadowMapResolution,
	}
	for _, opt := range opts {
		opt(l)
	}
	l.shadowMap = texture.NewDepthTexture(l.resolution, l.resolution)
	return l
}

func (l *lightImpl) Direction() [3]float32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.direction
}

func (l *lightImpl) Color() [3]float32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.color
}

func (l *lightImpl) Intensity() float32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.intensity
}

func (l *lightImpl) Enabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.enabled
}

func (l *lightImpl) CastsShadows() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.castsShadows
}

func (l *lightImpl) Resolution() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.resolution
}

func (l *lightImpl) ShadowMap() texture.DepthTexture {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.shadowMap
}

func (l *lightImpl) SetDirection(x, y, z float32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.direction = normalize3(x, y, z)
}

func (l *lightImpl) SetColor(r, g, b float32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.color = [3]float32{r, g, b}
}

func (l *lightImpl) SetIntensity(intensity float32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.intensity = intensity
}

func (l *lightImpl) SetEnabled(enabled bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.enabled = enabled
}

func (l *lightImpl) SetCastsShadows(castsShadows bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.castsShadows = castsShadows
}
