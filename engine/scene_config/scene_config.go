// package scene_config builds live scenes from YAML descriptions: camera
// orbit, sun, procedural textures and meshes, mesh objects, overlay sprites,
// and static text lines. Intended for tools and examples that want a scene
// without wiring one up in code.
package scene_config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Carmen-Shannon/gloam/common"
	"github.com/Carmen-Shannon/gloam/engine/camera"
	"github.com/Carmen-Shannon/gloam/engine/game_object"
	"github.com/Carmen-Shannon/gloam/engine/light"
	"github.com/Carmen-Shannon/gloam/engine/mesh"
	"github.com/Carmen-Shannon/gloam/engine/renderer"
	"github.com/Carmen-Shannon/gloam/engine/renderer/material"
	"github.com/Carmen-Shannon/gloam/engine/scene"
	"github.com/Carmen-Shannon/gloam/engine/text"
	"github.com/Carmen-Shannon/gloam/engine/texture"
)

// Config is a YAML scene description. Zero-value fields fall back to the
// package defaults of whatever they configure.
type Config struct {
	Name string `yaml:"name"`

	// Size is the render target size in pixels. Consulted by callers when
	// constructing the renderer; Build itself renders at whatever size the
	// given renderer carries.
	Size struct {
		Width  int `yaml:"width"`
		Height int `yaml:"height"`
	} `yaml:"size"`

	ClearColor      *[4]float32 `yaml:"clear_color"`
	CullingDisabled bool        `yaml:"culling_disabled"`

	Camera *CameraConfig `yaml:"camera"`
	Sun    *SunConfig    `yaml:"sun"`

	Textures []TextureConfig `yaml:"textures"`
	Meshes   []MeshConfig    `yaml:"meshes"`
	Objects  []ObjectConfig  `yaml:"objects"`
	Sprites  []SpriteConfig  `yaml:"sprites"`
	Text     []TextConfig    `yaml:"text"`
}

// CameraConfig describes an orbit camera: perspective settings plus the
// controller's spherical coordinates around a target.
type CameraConfig struct {
	FovDegrees float32    `yaml:"fov_degrees"`
	Near       float32    `yaml:"near"`
	Far        float32    `yaml:"far"`
	Radius     float32    `yaml:"radius"`
	Azimuth    float32    `yaml:"azimuth"`
	Elevation  float32    `yaml:"elevation"`
	Target     [3]float32 `yaml:"target"`
}

// SunConfig describes the scene's directional light.
type SunConfig struct {
	Direction        *[3]float32 `yaml:"direction"`
	Color            *[3]float32 `yaml:"color"`
	Intensity        *float32    `yaml:"intensity"`
	CastsShadows     *bool       `yaml:"casts_shadows"`
	ShadowResolution int         `yaml:"shadow_resolution"`
}

// TextureConfig describes one registered texture: a file on disk, a solid
// color, or a procedural checker. Exactly one source must be set.
type TextureConfig struct {
	Name string `yaml:"name"`
	File string `yaml:"file"`

	Solid *[4]float32 `yaml:"solid"`

	Checker *struct {
		Size  int        `yaml:"size"`
		Cell  int        `yaml:"cell"`
		Dark  [3]float32 `yaml:"dark"`
		Light [3]float32 `yaml:"light"`
	} `yaml:"checker"`
}

// MeshConfig describes one registered procedural mesh.
type MeshConfig struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"` // cube | plane | sphere | quad

	Size    float32 `yaml:"size"`    // cube, plane
	Radius  float32 `yaml:"radius"`  // sphere
	Rings   int     `yaml:"rings"`   // sphere
	Sectors int     `yaml:"sectors"` // sphere
}

// MaterialConfig describes an object's surface.
type MaterialConfig struct {
	Texture     string      `yaml:"texture"`
	BaseColor   *[3]float32 `yaml:"base_color"`
	Opacity     *float32    `yaml:"opacity"`
	DoubleSided bool        `yaml:"double_sided"`
}

// ObjectConfig describes one 3D mesh object.
type ObjectConfig struct {
	Mesh          string          `yaml:"mesh"`
	Position      [3]float32      `yaml:"position"`
	Rotation      [3]float32      `yaml:"rotation"`
	RotationSpeed [3]float32      `yaml:"rotation_speed"`
	Scale         *[3]float32     `yaml:"scale"`
	Material      *MaterialConfig `yaml:"material"`
}

// SpriteConfig describes one 2D overlay sprite. Rect is x, y, width, height
// in pixels. Mode selects the sampling variant; frame and atlas fields only
// apply to their modes.
type SpriteConfig struct {
	Texture string     `yaml:"texture"`
	Rect    [4]float32 `yaml:"rect"`
	Mode    string     `yaml:"mode"` // basic (default) | sheet | atlas
	Opacity *float32   `yaml:"opacity"`

	FrameSize   [2]float32 `yaml:"frame_size"`   // sheet
	FrameOffset [2]float32 `yaml:"frame_offset"` // sheet

	AtlasTopLeft [2]float32 `yaml:"atlas_top_left"` // atlas
	AtlasSize    [2]float32 `yaml:"atlas_size"`     // atlas
}

// TextConfig describes one static text line drawn with the builtin face.
type TextConfig struct {
	Content  string     `yaml:"content"`
	Position [2]float32 `yaml:"position"`
	Scale    float32    `yaml:"scale"`
}

// Parse decodes a YAML scene description.
//
// Parameters:
//   - data: the raw YAML
//
// Returns:
//   - *Config: the decoded config
//   - error: error if the YAML cannot be decoded
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("scene_config: failed to decode: %w", err)
	}
	return &cfg, nil
}

// Load reads and decodes a YAML scene description from disk.
//
// Parameters:
//   - path: the file path
//
// Returns:
//   - *Config: the decoded config
//   - error: error if the file cannot be read or decoded
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene_config: failed to read %s: %w", path, err)
	}
	return Parse(data)
}

// Build constructs a live scene from the config on the given renderer:
// camera, sun, registered textures and meshes, mesh objects, sprites, and
// persistent text. References to unregistered textures or meshes are
// reported as errors rather than silently dropped draws.
//
// Parameters:
//   - r: the renderer the scene draws through (must not be nil)
//
// Returns:
//   - scene.Scene: the built scene, marked active
//   - error: error if the config is inconsistent or a texture fails to load
func (c *Config) Build(r renderer.Renderer) (scene.Scene, error) {
	if r == nil {
		return nil, fmt.Errorf("scene_config: Build requires a renderer")
	}

	cam := c.buildCamera()
	sun := c.buildSun()

	opts := []scene.SceneBuilderOption{
		scene.WithActive(true),
		scene.WithSun(sun),
		scene.WithCullingDisabled(c.CullingDisabled),
	}
	if c.ClearColor != nil {
		opts = append(opts, scene.WithClearColor(*c.ClearColor))
	}
	s := scene.NewScene(c.Name, cam, r, opts...)

	registered := make(map[string]bool, len(c.Textures))
	for _, tc := range c.Textures {
		t, err := buildTexture(tc)
		if err != nil {
			return nil, err
		}
		s.Textures().Register(t)
		registered[tc.Name] = true
	}

	meshNames := make(map[string]bool, len(c.Meshes))
	for _, mc := range c.Meshes {
		m, err := buildMesh(mc)
		if err != nil {
			return nil, err
		}
		s.Meshes().Register(m)
		meshNames[mc.Name] = true
	}

	for i, oc := range c.Objects {
		if !meshNames[oc.Mesh] {
			return nil, fmt.Errorf("scene_config: object %d references unknown mesh %q", i, oc.Mesh)
		}
		if oc.Material != nil && oc.Material.Texture != "" && !registered[oc.Material.Texture] {
			return nil, fmt.Errorf("scene_config: object %d references unknown texture %q", i, oc.Material.Texture)
		}
		s.Add(buildObject(oc))
	}

	for i, sc := range c.Sprites {
		if sc.Texture != "" && !registered[sc.Texture] {
			return nil, fmt.Errorf("scene_config: sprite %d references unknown texture %q", i, sc.Texture)
		}
		obj, err := buildSprite(i, sc)
		if err != nil {
			return nil, err
		}
		s.Add(obj)
	}

	if len(c.Text) > 0 {
		atlas := text.NewAtlas(nil)
		for _, tc := range c.Text {
			scale := tc.Scale
			if scale <= 0 {
				scale = 1
			}
			text.DrawText(s, atlas, tc.Content, tc.Position[0], tc.Position[1],
				text.WithScale(scale),
				text.WithPersistent(),
			)
		}
	}

	return s, nil
}

func (c *Config) buildCamera() camera.Camera {
	var opts []camera.CameraBuilderOption
	var ctrlOpts []camera.CameraControllerOption

	if cc := c.Camera; cc != nil {
		if cc.FovDegrees > 0 {
			opts = append(opts, camera.WithFov(common.DegToRad(cc.FovDegrees)))
		}
		if cc.Near > 0 {
			opts = append(opts, camera.WithNear(cc.Near))
		}
		if cc.Far > 0 {
			opts = append(opts, camera.WithFar(cc.Far))
		}
		if cc.Radius > 0 {
			ctrlOpts = append(ctrlOpts, camera.WithRadius(cc.Radius))
		}
		ctrlOpts = append(ctrlOpts,
			camera.WithAzimuth(common.DegToRad(cc.Azimuth)),
			camera.WithElevation(common.DegToRad(cc.Elevation)),
			camera.WithTarget(cc.Target),
		)
	}
	if c.Size.Width > 0 && c.Size.Height > 0 {
		opts = append(opts, camera.WithAspect(float32(c.Size.Width)/float32(c.Size.Height)))
	}

	opts = append(opts, camera.WithController(camera.NewCameraController(ctrlOpts...)))
	return camera.NewCamera(opts...)
}

func (c *Config) buildSun() light.Light {
	if c.Sun == nil {
		return light.NewLight()
	}
	var opts []light.LightBuilderOption
	if d := c.Sun.Direction; d != nil {
		opts = append(opts, light.WithDirection(d[0], d[1], d[2]))
	}
	if col := c.Sun.Color; col != nil {
		opts = append(opts, light.WithColor(col[0], col[1], col[2]))
	}
	if c.Sun.Intensity != nil {
		opts = append(opts, light.WithIntensity(*c.Sun.Intensity))
	}
	if c.Sun.CastsShadows != nil {
		opts = append(opts, light.WithCastsShadows(*c.Sun.CastsShadows))
	}
	if c.Sun.ShadowResolution > 0 {
		opts = append(opts, light.WithShadowMapResolution(c.Sun.ShadowResolution))
	}
	return light.NewLight(opts...)
}

func buildTexture(tc TextureConfig) (texture.Texture, error) {
	if tc.Name == "" {
		return nil, fmt.Errorf("scene_config: texture without a name")
	}
	switch {
	case tc.File != "":
		t, err := texture.NewTextureFromFile(tc.File, texture.WithName(tc.Name))
		if err != nil {
			return nil, fmt.Errorf("scene_config: texture %q: %w", tc.Name, err)
		}
		return t, nil
	case tc.Solid != nil:
		c := *tc.Solid
		return texture.NewTexture(
			texture.WithName(tc.Name),
			texture.WithSolid(c[0], c[1], c[2], c[3]),
		), nil
	case tc.Checker != nil:
		ch := tc.Checker
		return texture.NewTexture(
			texture.WithName(tc.Name),
			texture.WithChecker(ch.Size, ch.Cell, ch.Dark, ch.Light),
		), nil
	default:
		return nil, fmt.Errorf("scene_config: texture %q has no source (file, solid, or checker)", tc.Name)
	}
}

func buildMesh(mc MeshConfig) (mesh.Mesh, error) {
	if mc.Name == "" {
		return nil, fmt.Errorf("scene_config: mesh without a name")
	}
	size := mc.Size
	if size <= 0 {
		size = 1
	}
	switch mc.Kind {
	case "cube":
		return mesh.NewCube(size, mesh.WithName(mc.Name)), nil
	case "plane":
		return mesh.NewPlane(size, mesh.WithName(mc.Name)), nil
	case "sphere":
		radius := mc.Radius
		if radius <= 0 {
			radius = 0.5
		}
		rings, sectors := mc.Rings, mc.Sectors
		if rings <= 0 {
			rings = 16
		}
		if sectors <= 0 {
			sectors = 32
		}
		return mesh.NewUVSphere(radius, rings, sectors, mesh.WithName(mc.Name)), nil
	case "quad":
		return mesh.NewQuad2D(mesh.WithName(mc.Name)), nil
	default:
		return nil, fmt.Errorf("scene_config: mesh %q has unknown kind %q", mc.Name, mc.Kind)
	}
}

func buildObject(oc ObjectConfig) game_object.GameObject {
	opts := []game_object.GameObjectBuilderOption{
		game_object.WithMesh(oc.Mesh),
		game_object.WithPosition(oc.Position[0], oc.Position[1], oc.Position[2]),
		game_object.WithRotation(oc.Rotation[0], oc.Rotation[1], oc.Rotation[2]),
		game_object.WithRotationSpeed(oc.RotationSpeed[0], oc.RotationSpeed[1], oc.RotationSpeed[2]),
	}
	if oc.Scale != nil {
		opts = append(opts, game_object.WithScale(oc.Scale[0], oc.Scale[1], oc.Scale[2]))
	}
	if oc.Material != nil {
		opts = append(opts, game_object.WithMaterial(buildMaterial(*oc.Material)))
	}
	return game_object.NewGameObject(opts...)
}

func buildMaterial(mc MaterialConfig) material.Material {
	var opts []material.MaterialBuilderOption
	if mc.Texture != "" {
		opts = append(opts, material.WithTextureName(mc.Texture))
	}
	if mc.BaseColor != nil {
		opts = append(opts, material.WithBaseColor(*mc.BaseColor))
	}
	if mc.Opacity != nil {
		opts = append(opts, material.WithOpacity(*mc.Opacity))
	}
	if mc.DoubleSided {
		opts = append(opts, material.WithDoubleSided(true))
	}
	return material.NewMaterial(opts...)
}

func buildSprite(index int, sc SpriteConfig) (game_object.GameObject, error) {
	x, y, w, h := sc.Rect[0], sc.Rect[1], sc.Rect[2], sc.Rect[3]

	var spriteOpt game_object.GameObjectBuilderOption
	switch sc.Mode {
	case "", "basic":
		spriteOpt = game_object.WithSprite(x, y, w, h)
	case "sheet":
		spriteOpt = game_object.WithSpriteSheet(x, y, w, h, sc.FrameSize, sc.FrameOffset)
	case "atlas":
		spriteOpt = game_object.WithSpriteAtlas(x, y, w, h, sc.AtlasTopLeft, sc.AtlasSize)
	default:
		return nil, fmt.Errorf("scene_config: sprite %d has unknown mode %q", index, sc.Mode)
	}

	var matOpts []material.MaterialBuilderOption
	if sc.Texture != "" {
		matOpts = append(matOpts, material.WithTextureName(sc.Texture))
	}
	if sc.Opacity != nil {
		matOpts = append(matOpts, material.WithOpacity(*sc.Opacity))
	}
	return game_object.NewGameObject(
		spriteOpt,
		game_object.WithMaterial(material.NewMaterial(matOpts...)),
	), nil
}
