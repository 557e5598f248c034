package scene

import (
	"github.com/Carmen-Shannon/gloam/engine/game_object"
	"github.com/Carmen-Shannon/gloam/engine/light"
	"github.com/Carmen-Shannon/gloam/engine/mesh"
	"github.com/Carmen-Shannon/gloam/engine/texture"
)

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithActive sets whether the scene is active for rendering.
//
// Parameters:
//   - active: whether the scene is active
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithActive(active bool) SceneBuilderOption {
	return func(s *scene) {
		s.active = active
	}
}

// WithObjects adds initial objects to the scene.
// Objects without IDs will be assigned new IDs. Non-ephemeral objects are
// persisted in the registry; ephemeral objects are staged for the first
// rendered frame.
//
// Parameters:
//   - objects: the objects to add
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithObjects(objects ...game_object.GameObject) SceneBuilderOption {
	return func(s *scene) {
		for _, obj := range objects {
			s.addLocked(obj)
		}
	}
}

// WithSun replaces the scene's default directional light. Passing nil
// disables shadows and falls back to a fixed overhead light for the lit
// pass.
//
// Parameters:
//   - l: the sun or nil
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithSun(l light.Light) SceneBuilderOption {
	return func(s *scene) {
		s.sun = l
	}
}

// WithClearColor sets the RGBA color the framebuffer is cleared to at the
// start of each frame. Default is opaque black.
//
// Parameters:
//   - color: the clear RGBA
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithClearColor(color [4]float32) SceneBuilderOption {
	return func(s *scene) {
		s.clearColor = color
	}
}

// WithCullingDisabled disables frustum culling for the scene. When set to
// true every enabled mesh object is drawn regardless of its bounding
// sphere's relation to the camera frustum. By default culling is enabled
// (disabled = false).
//
// Parameters:
//   - disabled: true to disable frustum culling, false to enable it (default)
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithCullingDisabled(disabled bool) SceneBuilderOption {
	return func(s *scene) {
		s.cullingDisabled = disabled
	}
}

// WithMeshes registers initial meshes in the scene's mesh registry.
//
// Parameters:
//   - meshes: the meshes to register
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithMeshes(meshes ...mesh.Mesh) SceneBuilderOption {
	return func(s *scene) {
		for _, m := range meshes {
			s.meshes.Register(m)
		}
	}
}

// WithTextures registers initial textures in the scene's texture registry.
//
// Parameters:
//   - textures: the textures to register
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithTextures(textures ...texture.Texture) SceneBuilderOption {
	return func(s *scene) {
		for _, t := range textures {
			s.textures.Register(t)
		}
	}
}
