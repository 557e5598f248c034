package scene

import (
	"sync"

	"github.com/Carmen-Shannon/gloam/common"
	"github.com/Carmen-Shannon/gloam/engine/camera"
	"github.com/Carmen-Shannon/gloam/engine/game_object"
	"github.com/Carmen-Shannon/gloam/engine/light"
	"github.com/Carmen-Shannon/gloam/engine/mesh"
	"github.com/Carmen-Shannon/gloam/engine/renderer"
	"github.com/Carmen-Shannon/gloam/engine/renderer/material"
	"github.com/Carmen-Shannon/gloam/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/gloam/engine/shader"
	"github.com/Carmen-Shannon/gloam/engine/texture"
)

// Stock pipeline keys registered on the renderer by NewScene. Custom
// pipelines may be registered alongside them under other keys.
const (
	// PipelineLit is the 3D toon path with back-face culling.
	PipelineLit = "lit"

	// PipelineLitDoubleSided is the 3D toon path with culling off, selected
	// for objects whose material is double-sided.
	PipelineLitDoubleSided = "lit_double_sided"

	// PipelineShadow is the depth-only shadow pass with front-face culling.
	PipelineShadow = "shadow"

	// PipelineSprite is the plain 2D overlay path.
	PipelineSprite = "sprite"

	// PipelineSheet is the spritesheet tile overlay path.
	PipelineSheet = "sheet"

	// PipelineAtlas is the forced-opaque atlas region overlay path.
	PipelineAtlas = "atlas"
)

// Scene manages a registry of GameObjects together with a Camera, a sun
// Light, and mesh/texture registries, and drives the renderer through the
// three per-frame phases: the depth-only shadow pass, the 3D lit pass, and
// the 2D overlay pass. Scenes can be hot-swapped via the Active flag to
// switch between different views or levels.
// Thread-safe for concurrent access.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// SetName sets the scene's identifier.
	SetName(name string)

	// Active returns whether this scene is currently active for rendering.
	Active() bool

	// SetActive sets whether this scene is active for rendering.
	SetActive(active bool)

	// Camera returns the scene's camera.
	Camera() camera.Camera

	// SetCamera replaces the scene's camera.
	//
	// Parameters:
	//   - cam: the new camera
	SetCamera(cam camera.Camera)

	// Renderer returns the scene's renderer.
	Renderer() renderer.Renderer

	// SetRenderer replaces the scene's renderer.
	//
	// Parameters:
	//   - r: the new renderer
	SetRenderer(r renderer.Renderer)

	// Sun returns the scene's directional light, or nil if it was unset.
	Sun() light.Light

	// SetSun replaces the scene's directional light. A nil sun disables
	// shadows and falls back to a fixed overhead light for the lit pass.
	//
	// Parameters:
	//   - l: the new sun or nil
	SetSun(l light.Light)

	// ClearColor returns the RGBA color the framebuffer is cleared to at
	// the start of each frame.
	ClearColor() [4]float32

	// SetClearColor sets the frame clear color.
	//
	// Parameters:
	//   - color: the clear RGBA
	SetClearColor(color [4]float32)

	// CullingDisabled returns whether frustum culling is explicitly disabled
	// for this scene. When true every enabled mesh object is drawn regardless
	// of its bounding sphere's relation to the camera frustum.
	//
	// Returns:
	//   - bool: true if culling is disabled
	CullingDisabled() bool

	// SetCullingDisabled enables or disables frustum culling for this scene.
	//
	// Parameters:
	//   - disabled: true to disable culling, false to enable it
	SetCullingDisabled(disabled bool)

	// Meshes returns the scene's mesh registry. Mesh objects reference
	// meshes by name through it.
	Meshes() mesh.Registry

	// Textures returns the scene's texture registry. Materials and sprite
	// objects reference textures by name through it.
	Textures() texture.Registry

	// Count returns the number of persisted GameObjects in the scene's
	// registry. Does not include ephemeral objects.
	//
	// Returns:
	//   - int: count of non-ephemeral GameObjects in the registry
	Count() int

	// CountEphemeral returns the number of ephemeral GameObjects staged for
	// the next rendered frame.
	//
	// Returns:
	//   - int: count of staged ephemeral GameObjects
	CountEphemeral() int

	// Add adds a GameObject to the scene and assigns it an ID if it does not
	// carry one. Non-ephemeral objects are persisted in the registry for
	// later lookup or removal; ephemeral objects are staged for the next
	// rendered frame only and discarded after it.
	//
	// Parameters:
	//   - obj: the GameObject to add
	//
	// Returns:
	//   - uint64: the assigned object ID
	Add(obj game_object.GameObject) uint64

	// Get retrieves a non-ephemeral GameObject by its ID.
	// Returns nil if not found.
	//
	// Parameters:
	//   - id: the object's unique ID
	//
	// Returns:
	//   - game_object.GameObject: the object or nil
	Get(id uint64) game_object.GameObject

	// Remove removes a non-ephemeral GameObject from the registry by ID.
	//
	// Parameters:
	//   - id: the object's unique ID
	Remove(id uint64)

	// Clear removes all persisted and staged objects from the scene.
	Clear()

	// Update advances the scene's simulation state: object spin animations
	// and the camera controller.
	//
	// Parameters:
	//   - deltaTime: elapsed time since the last update in seconds
	Update(deltaTime float32)

	// RenderFrame renders one frame into the renderer's framebuffer: the
	// depth-only shadow pass when the sun casts shadows, the 3D lit pass
	// with frustum culling, and the 2D overlay pass in painter's order.
	// Staged ephemeral objects are consumed by the frame. Presentation is
	// left to the caller.
	//
	// Returns:
	//   - error: error if a draw call fails
	RenderFrame() error
}

type scene struct {
	mu *sync.RWMutex

	name   string
	active bool

	registry map[uint64]game_object.GameObject // non-ephemeral objects by ID
	order    []uint64                          // insertion order, drives the overlay painter's order
	staged   []game_object.GameObject          // ephemeral objects for the next frame
	nextID   uint64

	cam camera.Camera
	r   renderer.Renderer
	sun light.Light

	meshes   mesh.Registry
	textures texture.Registry

	clearColor      [4]float32
	cullingDisabled bool

	// quad is the shared unit geometry every overlay draw stretches over
	// its destination rect.
	quad mesh.Mesh

	// Albedo fallbacks: a white texture for untextured materials and a
	// cache of solid textures keyed by material base color.
	white  texture.Texture
	solids map[[3]float32]texture.Texture

	// fallbackShadow backs the lit pass shadow sampler when no sun is set.
	// It stays cleared to full depth so every lookup reads unoccluded.
	fallbackShadow texture.DepthTexture
}

// drawItem pairs a mesh object with its resolved geometry and model matrix
// for one frame.
type drawItem struct {
	obj   game_object.GameObject
	mesh  mesh.Mesh
	model [16]float32
}

var _ Scene = &scene{}

// NewScene creates a new Scene with the given camera and renderer. Both are
// required and NewScene panics if either is nil. The stock pipelines (lit,
// double-sided lit, shadow, sprite, sheet, atlas) are registered on the
// renderer; keys already present are left untouched, so callers may swap in
// custom pipelines before constructing the scene. The scene starts with a
// default sun, empty registries, and an opaque black clear color.
//
// Parameters:
//   - name: the name of the scene
//   - cam: the camera to attach (must not be nil)
//   - r: the renderer to attach (must not be nil)
//   - options: functional options to further configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(name string, cam camera.Camera, r renderer.Renderer, options ...SceneBuilderOption) Scene {
	if cam == nil {
		panic("scene: NewScene requires a non-nil Camera")
	}
	if r == nil {
		panic("scene: NewScene requires a non-nil Renderer")
	}

	s := &scene{
		mu:         &sync.RWMutex{},
		name:       name,
		active:     false,
		cam:        cam,
		r:          r,
		sun:        light.NewLight(),
		registry:   make(map[uint64]game_object.GameObject),
		nextID:     1,
		meshes:     mesh.NewRegistry(),
		textures:   texture.NewRegistry(),
		clearColor: [4]float32{0, 0, 0, 1},
		quad:       mesh.NewQuad2D(),
		white:      texture.NewTexture(texture.WithSolid(1, 1, 1, 1)),
		solids:     make(map[[3]float32]texture.Texture),
	}
	s.fallbackShadow = texture.NewDepthTexture(1, 1)
	s.fallbackShadow.Clear(1.0)

	for _, option := range options {
		option(s)
	}

	// RegisterPipelines skips keys that already exist, which keeps caller
	// overrides installed before the scene intact.
	_ = r.RegisterPipelines(
		pipeline.NewPipeline(PipelineLit, pipeline.ProgramLit),
		pipeline.NewPipeline(PipelineLitDoubleSided, pipeline.ProgramLit, pipeline.WithCullMode(pipeline.CullNone)),
		pipeline.NewPipeline(PipelineShadow, pipeline.ProgramDepth),
		pipeline.NewPipeline(PipelineSprite, pipeline.ProgramSprite),
		pipeline.NewPipeline(PipelineSheet, pipeline.ProgramSheet),
		pipeline.NewPipeline(PipelineAtlas, pipeline.ProgramAtlas),
	)

	return s
}

func (s *scene) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *scene) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

func (s *scene) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

func (s *scene) SetActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = active
}

func (s *scene) Camera() camera.Camera {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cam
}

func (s *scene) SetCamera(cam camera.Camera) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cam = cam
}

func (s *scene) Renderer() renderer.Renderer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.r
}

func (s *scene) SetRenderer(r renderer.Renderer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.r = r
}

func (s *scene) Sun() light.Light {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sun
}

func (s *scene) SetSun(l light.Light) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sun = l
}

func (s *scene) ClearColor() [4]float32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.clearColor
}

func (s *scene) SetClearColor(color [4]float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearColor = color
}

func (s *scene) CullingDisabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cullingDisabled
}

func (s *scene) SetCullingDisabled(disabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cullingDisabled = disabled
}

func (s *scene) Meshes() mesh.Registry {
	return s.meshes
}

func (s *scene) Textures() texture.Registry {
	return s.textures
}

func (s *scene) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.registry)
}

func (s *scene) CountEphemeral() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.staged)
}

func (s *scene) Add(obj game_object.GameObject) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addLocked(obj)
}

func (s *scene) addLocked(obj game_object.GameObject) uint64 {
	if obj.ID() == 0 {
		obj.SetID(s.nextID)
		s.nextID++
	} else if obj.ID() >= s.nextID {
		s.nextID = obj.ID() + 1
	}
	if obj.Ephemeral() {
		s.staged = append(s.staged, obj)
		return obj.ID()
	}
	if _, exists := s.registry[obj.ID()]; !exists {
		s.order = append(s.order, obj.ID())
	}
	s.registry[obj.ID()] = obj
	return obj.ID()
}

func (s *scene) Get(id uint64) game_object.GameObject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.registry[id]
}

func (s *scene) Remove(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.registry[id]; !exists {
		return
	}
	delete(s.registry, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *scene) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.registry = make(map[uint64]game_object.GameObject)
	s.order = s.order[:0]
	s.staged = s.staged[:0]
}

func (s *scene) Update(deltaTime float32) {
	s.mu.RLock()
	cam := s.cam
	objects := make([]game_object.GameObject, 0, len(s.order))
	for _, id := range s.order {
		objects = append(objects, s.registry[id])
	}
	s.mu.RUnlock()

	for _, obj := range objects {
		obj.Update(deltaTime)
	}
	if cam != nil {
		cam.Update()
	}
}

func (s *scene) RenderFrame() error {
	s.mu.RLock()
	cam := s.cam
	r := s.r
	sun := s.sun
	clearColor := s.clearColor
	cullingDisabled := s.cullingDisabled
	objects := make([]game_object.GameObject, 0, len(s.order)+len(s.staged))
	for _, id := range s.order {
		objects = append(objects, s.registry[id])
	}
	objects = append(objects, s.staged...)
	s.mu.RUnlock()

	view := cam.ViewMatrix()
	proj := cam.ProjectionMatrix()
	viewProj := cam.ViewProjectionMatrix()

	// Split the draw list. Mesh objects without registered geometry are
	// silently skipped; sprite objects keep insertion order for the
	// painter's pass.
	var casters []drawItem
	var sprites []game_object.GameObject
	for _, obj := range objects {
		if obj == nil || !obj.Enabled() {
			continue
		}
		switch obj.Kind() {
		case game_object.KindMesh:
			m, ok := s.meshes.Lookup(obj.MeshName())
			if !ok {
				continue
			}
			casters = append(casters, drawItem{obj: obj, mesh: m, model: obj.ModelMatrix()})
		case game_object.KindSprite:
			sprites = append(sprites, obj)
		}
	}

	visible := casters
	if !cullingDisabled {
		frustum := common.ExtractFrustumFromMatrix(viewProj[:])
		visible = visible[:0:0]
		for _, item := range casters {
			if frustum.ContainsSphere(worldBoundingSphere(item)) {
				visible = append(visible, item)
			}
		}
	}

	// Phase 1: shadow depth pass over every caster, culled or not, so
	// geometry just outside the view frustum still darkens what is inside.
	var lightSpace [16]float32
	shadowSampler := texture.DepthSampler(s.fallbackShadow)
	sunEnabled := sun != nil && sun.Enabled()
	if sunEnabled {
		shadowSampler = sun.ShadowMap()
		if sun.CastsShadows() {
			lightSpace = sun.FitShadowCamera(viewProj[:])
			r.BeginShadowFrame(sun.ShadowMap())
			for _, item := range casters {
				cfg := shader.DrawConfig{
					Model:      item.model,
					LightSpace: lightSpace,
				}
				if err := r.ShadowDrawCall(PipelineShadow, &cfg, item.mesh); err != nil {
					r.EndShadowFrame()
					return err
				}
			}
			r.EndShadowFrame()
		}
	}

	lightDir := [3]float32{0, -1, 0}
	lightColor := shader.DefaultLightColor
	if sunEnabled {
		lightDir = sun.Direction()
		c := sun.Color()
		intensity := sun.Intensity()
		lightColor = [3]float32{c[0] * intensity, c[1] * intensity, c[2] * intensity}
	}

	// Phase 2: the 3D lit pass over the frustum-visible set.
	r.BeginFrame(clearColor)
	for _, item := range visible {
		mat := item.obj.Material()
		cfg := shader.DrawConfig{
			Model:      item.model,
			View:       view,
			Projection: proj,
			LightSpace: lightSpace,
			LightDir:   lightDir,
			LightColor: lightColor,
			Shade:      shader.DefaultPalette,
			Opacity:    1.0,
			Albedo:     s.resolveAlbedo(mat),
			ShadowMap:  shadowSampler,
		}
		key := PipelineLit
		if mat != nil {
			cfg.Opacity = mat.Opacity()
			if p := mat.Palette(); p != nil {
				cfg.Shade = *p
			}
			if lc := mat.LightColor(); lc != nil {
				cfg.LightColor = *lc
			}
			if mat.DoubleSided() {
				key = PipelineLitDoubleSided
			}
		}
		if err := r.DrawCall(key, &cfg, item.mesh); err != nil {
			return err
		}
	}

	// Phase 3: the 2D overlay pass in painter's order. The orthographic
	// window maps framebuffer pixel coordinates with y growing downward, so
	// destination rects are plain screen rects.
	fb := r.Framebuffer()
	var ortho [16]float32
	common.Orthographic(ortho[:], 0, float32(fb.Width()), float32(fb.Height()), 0, -1, 1)
	for _, obj := range sprites {
		mat := obj.Material()
		dest := obj.DestRect()
		var model [16]float32
		common.BuildModelMatrix(model[:], dest[0], dest[1], 0, 0, 0, 0, dest[2], dest[3], 1)
		cfg := shader.DrawConfig{
			Model:      model,
			Projection: ortho,
			Opacity:    1.0,
			Albedo:     s.resolveAlbedo(mat),
		}
		if mat != nil {
			cfg.Opacity = mat.Opacity()
		}
		key := PipelineSprite
		switch obj.SpriteMode() {
		case game_object.SpriteModeSheet:
			cfg.SpriteSize, cfg.SpriteOffset = obj.SpriteFrame()
			key = PipelineSheet
		case game_object.SpriteModeAtlas:
			cfg.AtlasTopLeft, cfg.AtlasSize = obj.AtlasRegion()
			key = PipelineAtlas
		}
		if err := r.DrawCall(key, &cfg, s.quad); err != nil {
			return err
		}
	}
	r.EndFrame()

	// Staged ephemeral objects live for exactly one rendered frame.
	s.mu.Lock()
	s.staged = s.staged[:0]
	s.mu.Unlock()

	return nil
}

// resolveAlbedo maps a material to its color sampler: the registered texture
// when one is named, a cached solid of the base color otherwise, and plain
// white when there is no material at all.
func (s *scene) resolveAlbedo(mat material.Material) texture.Sampler {
	if mat == nil {
		return s.white
	}
	if name := mat.TextureName(); name != "" {
		if t := s.textures.Lookup(name); t != nil {
			return t
		}
	}
	base := mat.BaseColor()
	if base == [3]float32{1, 1, 1} {
		return s.white
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.solids[base]; ok {
		return t
	}
	t := texture.NewTexture(texture.WithSolid(base[0], base[1], base[2], 1))
	s.solids[base] = t
	return t
}

// worldBoundingSphere lifts a mesh's local bounding sphere into world space
// using the object's model matrix and the largest scale axis.
func worldBoundingSphere(item drawItem) ([3]float32, float32) {
	center, radius := item.mesh.BoundingSphere()
	world := common.MulVec4(item.model[:], [4]float32{center[0], center[1], center[2], 1})
	sx, sy, sz := item.obj.Scale()
	scale := abs32(sx)
	if a := abs32(sy); a > scale {
		scale = a
	}
	if a := abs32(sz); a > scale {
		scale = a
	}
	return [3]float32{world[0], world[1], world[2]}, radius * scale
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
