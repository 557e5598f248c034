package game_object

import (
	"sync"
	"sync/atomic"

	"github.com/Carmen-Shannon/gloam/common"
	"github.com/Carmen-Shannon/gloam/engine/renderer/material"
)

// ObjectKind identifies which render pass an object belongs to.
type ObjectKind int

const (
	// KindMesh is a 3D object drawn in the lit pass (and the shadow pass
	// when its material casts shadows).
	KindMesh ObjectKind = iota

	// KindSprite is a 2D overlay object drawn after the 3D passes in
	// painter's order.
	KindSprite
)

// SpriteMode selects which overlay sampling variant a sprite uses.
type SpriteMode int

const (
	// SpriteModeBasic samples the whole texture with opacity modulation.
	SpriteModeBasic SpriteMode = iota

	// SpriteModeSheet samples one spritesheet tile selected by the sprite's
	// frame size and offset.
	SpriteModeSheet

	// SpriteModeAtlas samples an atlas region at full opacity.
	SpriteModeAtlas
)

type gameObject struct {
	id        uint64
	enabled   atomic.Bool
	ephemeral bool
	kind      ObjectKind

	meshName string
	mat      material.Material

	// transform state, guarded by mu since the tick goroutine writes it
	// while the render goroutine reads it
	mu            sync.Mutex
	position      [3]float32
	rotation      [3]float32
	scale         [3]float32
	rotationSpeed [3]float32
	modelMatrix   [16]float32
	dirty         bool

	// sprite state
	spriteMode   SpriteMode
	destRect     [4]float32
	spriteSize   [2]float32
	spriteOffset [2]float32
	atlasTopLeft [2]float32
	atlasSize    [2]float32
}

// GameObject defines the interface for a scene entity: a 3D mesh instance or
// a 2D overlay sprite. Transform reads and writes are safe across goroutines;
// the model matrix is cached and only rebuilt after the transform changes.
type GameObject interface {
	// ID returns the object's unique identifier.
	//
	// Returns:
	//   - uint64: the object ID
	ID() uint64

	// SetID sets the object's unique identifier.
	//
	// Parameters:
	//   - id: the ID to assign
	SetID(id uint64)

	// Enabled returns whether this object is enabled for rendering.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// SetEnabled sets whether the object is enabled for rendering.
	//
	// Parameters:
	//   - enabled: true to enable
	SetEnabled(enabled bool)

	// Ephemeral returns whether this object is ephemeral.
	// Ephemeral objects are rebuilt every frame by their producer (e.g. text
	// layout) and are not persisted in the scene's registry when added.
	//
	// Returns:
	//   - bool: true if ephemeral
	Ephemeral() bool

	// Kind returns whether this is a mesh or sprite object.
	//
	// Returns:
	//   - ObjectKind: the object kind
	Kind() ObjectKind

	// MeshName returns the name of the mesh this object draws, resolved
	// against the scene's mesh registry. Empty for sprites.
	//
	// Returns:
	//   - string: the mesh name
	MeshName() string

	// SetMeshName sets the name of the mesh this object draws.
	//
	// Parameters:
	//   - name: the mesh name
	SetMeshName(name string)

	// Material returns the surface description for this object, or nil when
	// the scene's default material should apply.
	//
	// Returns:
	//   - material.Material: the material or nil
	Material() material.Material

	// SetMaterial assigns a surface description to this object.
	//
	// Parameters:
	//   - m: the material to assign
	SetMaterial(m material.Material)

	// Position returns the object's world-space position.
	//
	// Returns:
	//   - x, y, z: position components
	Position() (x, y, z float32)

	// SetPosition sets the object's world-space position.
	//
	// Parameters:
	//   - x, y, z: new position components
	SetPosition(x, y, z float32)

	// Rotation returns the object's rotation in radians per axis.
	//
	// Returns:
	//   - rx, ry, rz: rotation angles
	Rotation() (rx, ry, rz float32)

	// SetRotation sets the object's rotation in radians per axis.
	//
	// Parameters:
	//   - rx, ry, rz: new rotation angles
	SetRotation(rx, ry, rz float32)

	// RotationSpeed returns the spin animation rate in radians per second.
	//
	// Returns:
	//   - rx, ry, rz: rotation speed values
	RotationSpeed() (rx, ry, rz float32)

	// SetRotationSpeed sets the spin animation rate in radians per second.
	// Update advances the rotation by this amount each tick.
	//
	// Parameters:
	//   - rx, ry, rz: new rotation speed values
	SetRotationSpeed(rx, ry, rz float32)

	// Scale returns the object's per-axis scale factors.
	//
	// Returns:
	//   - sx, sy, sz: scale components
	Scale() (sx, sy, sz float32)

	// SetScale sets the object's per-axis scale factors.
	//
	// Parameters:
	//   - sx, sy, sz: new scale factors
	SetScale(sx, sy, sz float32)

	// ModelMatrix returns the model-to-world matrix for the current
	// transform, rebuilding the cached matrix if the transform changed.
	//
	// Returns:
	//   - [16]float32: the column-major model matrix
	ModelMatrix() [16]float32

	// Update advances the spin animation by the elapsed time.
	//
	// Parameters:
	//   - dt: elapsed time in seconds
	Update(dt float32)

	// SpriteMode returns which overlay sampling variant this sprite uses.
	// Meaningless for mesh objects.
	//
	// Returns:
	//   - SpriteMode: the sprite mode
	SpriteMode() SpriteMode

	// DestRect returns the sprite's destination rectangle in pixels
	// (x, y, width, height with y down from the top-left corner).
	//
	// Returns:
	//   - [4]float32: the destination rectangle
	DestRect() [4]float32

	// SetDestRect sets the sprite's destination rectangle in pixels.
	//
	// Parameters:
	//   - x, y: top-left corner
	//   - width, height: extent in pixels
	SetDestRect(x, y, width, height float32)

	// SpriteFrame returns the spritesheet tile size and offset in normalized
	// texture units for SpriteModeSheet.
	//
	// Returns:
	//   - size: the tile dimensions
	//   - offset: the tile's top-left corner
	SpriteFrame() (size, offset [2]float32)

	// SetSpriteFrame selects a spritesheet tile in normalized texture units.
	//
	// Parameters:
	//   - size: the tile dimensions
	//   - offset: the tile's top-left corner
	SetSpriteFrame(size, offset [2]float32)

	// AtlasRegion returns the atlas region for SpriteModeAtlas in normalized
	// texture units.
	//
	// Returns:
	//   - topLeft: the region's top-left corner
	//   - size: the region dimensions
	AtlasRegion() (topLeft, size [2]float32)

	// SetAtlasRegion selects an atlas region in normalized texture units.
	//
	// Parameters:
	//   - topLeft: the region's top-left corner
	//   - size: the region dimensions
	SetAtlasRegion(topLeft, size [2]float32)
}

var _ GameObject = &gameObject{}

// NewGameObject creates a new GameObject configured with the given options.
// Objects default to an enabled mesh object at the origin with unit scale.
//
// Parameters:
//   - options: functional options to configure the object
//
// Returns:
//   - GameObject: the newly created object
func NewGameObject(options ...GameObjectBuilderOption) GameObject {
	obj := &gameObject{
		scale:      [3]float32{1, 1, 1},
		spriteSize: [2]float32{1, 1},
		atlasSize:  [2]float32{1, 1},
		dirty:      true,
	}
	obj.enabled.Store(true)
	for _, option := range options {
		option(obj)
	}
	return obj
}

func (g *gameObject) ID() uint64 {
	return g.id
}

func (g *gameObject) SetID(id uint64) {
	g.id = id
}

func (g *gameObject) Enabled() bool {
	return g.enabled.Load()
}

func (g *gameObject) SetEnabled(enabled bool) {
	g.enabled.Store(enabled)
}

func (g *gameObject) Ephemeral() bool {
	return g.ephemeral
}

func (g *gameObject) Kind() ObjectKind {
	return g.kind
}

func (g *gameObject) MeshName() string {
	return g.meshName
}

func (g *gameObject) SetMeshName(name string) {
	g.meshName = name
}

func (g *gameObject) Material() material.Material {
	return g.mat
}

func (g *gameObject) SetMaterial(m material.Material) {
	g.mat = m
}

func (g *gameObject) Position() (x, y, z float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.position[0], g.position[1], g.position[2]
}

func (g *gameObject) SetPosition(x, y, z float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.position = [3]float32{x, y, z}
	g.dirty = true
}

func (g *gameObject) Rotation() (rx, ry, rz float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rotation[0], g.rotation[1], g.rotation[2]
}

func (g *gameObject) SetRotation(rx, ry, rz float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.rotation = [3]float32{rx, ry, rz}
	g.dirty = true
}

func (g *gameObject) RotationSpeed() (rx, ry, rz float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rotationSpeed[0], g.rotationSpeed[1], g.rotationSpeed[2]
}

func (g *gameObject) SetRotationSpeed(rx, ry, rz float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.rotationSpeed = [3]float32{rx, ry, rz}
}

func (g *gameObject) Scale() (sx, sy, sz float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.scale[0], g.scale[1], g.scale[2]
}

func (g *gameObject) SetScale(sx, sy, sz float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.scale = [3]float32{sx, sy, sz}
	g.dirty = true
}

func (g *gameObject) ModelMatrix() [16]float32 {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.dirty {
		common.BuildModelMatrix(g.modelMatrix[:],
			g.position[0], g.position[1], g.position[2],
			g.rotation[0], g.rotation[1], g.rotation[2],
			g.scale[0], g.scale[1], g.scale[2],
		)
		g.dirty = false
	}
	return g.modelMatrix
}

func (g *gameObject) Update(dt float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.rotationSpeed == ([3]float32{}) {
		return
	}
	g.rotation[0] += g.rotationSpeed[0] * dt
	g.rotation[1] += g.rotationSpeed[1] * dt
	g.rotation[2] += g.rotationSpeed[2] * dt
	g.dirty = true
}

func (g *gameObject) SpriteMode() SpriteMode {
	return g.spriteMode
}

func (g *gameObject) DestRect() [4]float32 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.destRect
}

func (g *gameObject) SetDestRect(x, y, width, height float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.destRect = [4]float32{x, y, width, height}
}

func (g *gameObject) SpriteFrame() (size, offset [2]float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.spriteSize, g.spriteOffset
}

func (g *gameObject) SetSpriteFrame(size, offset [2]float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.spriteSize = size
	g.spriteOffset = offset
}

func (g *gameObject) AtlasRegion() (topLeft, size [2]float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.atlasTopLeft, g.atlasSize
}

func (g *gameObject) SetAtlasRegion(topLeft, size [2]float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.atlasTopLeft = topLeft
	g.atlasSize = size
}
