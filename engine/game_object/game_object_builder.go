package game_object

import (
	"github.com/Carmen-Shannon/gloam/engine/renderer/material"
)

// GameObjectBuilderOption is a functional option for configuring a GameObject during construction.
type GameObjectBuilderOption func(*gameObject)

// WithID sets the ID of the GameObject.
//
// Parameters:
//   - id: unique identifier for the GameObject
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the ID
func WithID(id uint64) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.id = id
	}
}

// WithEnabled sets whether the GameObject starts enabled for rendering.
//
// Parameters:
//   - enabled: true to enable
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the enabled state
func WithEnabled(enabled bool) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.enabled.Store(enabled)
	}
}

// WithEphemeral marks the GameObject as ephemeral. Ephemeral objects are not
// persisted in the scene's registry when added.
//
// Returns:
//   - GameObjectBuilderOption: functional option to mark the object ephemeral
func WithEphemeral() GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.ephemeral = true
	}
}

// WithMesh makes the GameObject a 3D mesh object drawing the named mesh.
//
// Parameters:
//   - meshName: the mesh name, resolved against the scene's mesh registry
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the mesh
func WithMesh(meshName string) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.kind = KindMesh
		obj.meshName = meshName
	}
}

// WithMaterial assigns a surface description to the GameObject.
//
// Parameters:
//   - m: the material to assign
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the material
func WithMaterial(m material.Material) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.mat = m
	}
}

// WithPosition sets the initial world-space position.
//
// Parameters:
//   - x, y, z: position components
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the position
func WithPosition(x, y, z float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.position = [3]float32{x, y, z}
	}
}

// WithRotation sets the initial rotation in radians per axis.
//
// Parameters:
//   - rx, ry, rz: rotation angles
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the rotation
func WithRotation(rx, ry, rz float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.rotation = [3]float32{rx, ry, rz}
	}
}

// WithRotationSpeed sets the spin animation rate in radians per second.
//
// Parameters:
//   - rx, ry, rz: rotation speed values
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the rotation speed
func WithRotationSpeed(rx, ry, rz float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.rotationSpeed = [3]float32{rx, ry, rz}
	}
}

// WithScale sets the initial per-axis scale factors.
//
// Parameters:
//   - sx, sy, sz: scale factors
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the scale
func WithScale(sx, sy, sz float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.scale = [3]float32{sx, sy, sz}
	}
}

// WithSprite makes the GameObject a 2D overlay sprite drawn with opacity
// modulation at the given pixel rectangle.
//
// Parameters:
//   - x, y: top-left corner in pixels
//   - width, height: extent in pixels
//
// Returns:
//   - GameObjectBuilderOption: functional option to configure the sprite
func WithSprite(x, y, width, height float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.kind = KindSprite
		obj.spriteMode = SpriteModeBasic
		obj.destRect = [4]float32{x, y, width, height}
	}
}

// WithSpriteSheet makes the GameObject a 2D spritesheet sprite showing one
// tile of its texture.
//
// Parameters:
//   - x, y: top-left corner in pixels
//   - width, height: extent in pixels
//   - frameSize: the tile dimensions in normalized texture units
//   - frameOffset: the tile's top-left corner in normalized texture units
//
// Returns:
//   - GameObjectBuilderOption: functional option to configure the sprite
func WithSpriteSheet(x, y, width, height float32, frameSize, frameOffset [2]float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.kind = KindSprite
		obj.spriteMode = SpriteModeSheet
		obj.destRect = [4]float32{x, y, width, height}
		obj.spriteSize = frameSize
		obj.spriteOffset = frameOffset
	}
}

// WithSpriteAtlas makes the GameObject a 2D atlas sprite showing a region of
// its texture at full opacity.
//
// Parameters:
//   - x, y: top-left corner in pixels
//   - width, height: extent in pixels
//   - topLeft: the region's top-left corner in normalized texture units
//   - size: the region dimensions in normalized texture units
//
// Returns:
//   - GameObjectBuilderOption: functional option to configure the sprite
func WithSpriteAtlas(x, y, width, height float32, topLeft, size [2]float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.kind = KindSprite
		obj.spriteMode = SpriteModeAtlas
		obj.destRect = [4]float32{x, y, width, height}
		obj.atlasTopLeft = topLeft
		obj.atlasSize = size
	}
}
