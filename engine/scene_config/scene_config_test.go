package scene_config

import (
	"strings"
	"testing"

	"github.com/Carmen-Shannon/gloam/engine/game_object"
	"github.com/Carmen-Shannon/gloam/engine/renderer"
)

const demoYAML = `
name: demo
size:
  width: 64
  height: 48
clear_color: [0.1, 0.2, 0.3, 1.0]
camera:
  fov_degrees: 60
  radius: 8
  azimuth: 45
  elevation: 30
sun:
  direction: [-0.5, -1.0, -0.2]
  intensity: 1.5
  shadow_resolution: 64
textures:
  - name: ground
    checker:
      size: 64
      cell: 8
      dark: [0.2, 0.2, 0.2]
      light: [0.8, 0.8, 0.8]
  - name: red
    solid: [1, 0, 0, 1]
meshes:
  - name: box
    kind: cube
    size: 2
  - name: ball
    kind: sphere
    radius: 0.5
objects:
  - mesh: box
    position: [0, 1, 0]
    rotation_speed: [0, 0.5, 0]
    material:
      texture: ground
  - mesh: ball
    position: [2, 0, 0]
    material:
      base_color: [0.9, 0.3, 0.2]
      double_sided: true
sprites:
  - texture: red
    rect: [4, 4, 16, 16]
text:
  - content: "demo"
    position: [2, 2]
`

func testRenderer(t *testing.T) renderer.Renderer {
	t.Helper()
	return renderer.NewRenderer(renderer.BackendTypeImage, nil,
		renderer.WithOutputSize(64, 48),
		renderer.WithRenderWorkers(1),
	)
}

func TestParseDemoConfig(t *testing.T) {
	cfg, err := Parse([]byte(demoYAML))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Name != "demo" {
		t.Fatalf("expected name %q, got %q", "demo", cfg.Name)
	}
	if cfg.Size.Width != 64 || cfg.Size.Height != 48 {
		t.Fatalf("unexpected size %dx%d", cfg.Size.Width, cfg.Size.Height)
	}
	if len(cfg.Textures) != 2 || len(cfg.Meshes) != 2 || len(cfg.Objects) != 2 {
		t.Fatalf("unexpected counts: %d textures, %d meshes, %d objects",
			len(cfg.Textures), len(cfg.Meshes), len(cfg.Objects))
	}
	if cfg.Sun == nil || cfg.Sun.Intensity == nil || *cfg.Sun.Intensity != 1.5 {
		t.Fatalf("expected sun intensity 1.5, got %+v", cfg.Sun)
	}
}

func TestParseRejectsJunk(t *testing.T) {
	if _, err := Parse([]byte("name: [unclosed")); err == nil {
		t.Fatalf("expected a decode error")
	}
}

func TestBuildDemoScene(t *testing.T) {
	cfg, err := Parse([]byte(demoYAML))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	s, err := cfg.Build(testRenderer(t))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if !s.Active() {
		t.Fatalf("expected the built scene active")
	}
	if s.Textures().Lookup("ground") == nil || s.Textures().Lookup("red") == nil {
		t.Fatalf("expected configured textures registered")
	}
	if _, ok := s.Meshes().Lookup("box"); !ok {
		t.Fatalf("expected configured meshes registered")
	}
	// 2 mesh objects + 1 sprite + 4 persistent glyphs for "demo".
	if got := s.Count(); got != 7 {
		t.Fatalf("expected 7 registered objects, got %d", got)
	}

	// The first object carries the configured spin.
	obj := s.Get(1)
	if obj == nil || obj.Kind() != game_object.KindMesh {
		t.Fatalf("expected object 1 to be a mesh object")
	}
	_, ry, _ := obj.RotationSpeed()
	if ry != 0.5 {
		t.Fatalf("expected rotation speed 0.5 on y, got %v", ry)
	}

	if err := s.RenderFrame(); err != nil {
		t.Fatalf("RenderFrame on the built scene failed: %v", err)
	}
}

func TestBuildRejectsDanglingReferences(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "unknown mesh",
			yaml: "objects:\n  - mesh: ghost\n",
			want: "unknown mesh",
		},
		{
			name: "unknown object texture",
			yaml: "meshes:\n  - name: box\n    kind: cube\nobjects:\n  - mesh: box\n    material:\n      texture: ghost\n",
			want: "unknown texture",
		},
		{
			name: "unknown sprite texture",
			yaml: "sprites:\n  - texture: ghost\n    rect: [0, 0, 8, 8]\n",
			want: "unknown texture",
		},
		{
			name: "unknown mesh kind",
			yaml: "meshes:\n  - name: box\n    kind: torus\n",
			want: "unknown kind",
		},
		{
			name: "sourceless texture",
			yaml: "textures:\n  - name: empty\n",
			want: "no source",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.yaml))
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			_, err = cfg.Build(testRenderer(t))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestBuildRequiresRenderer(t *testing.T) {
	cfg := &Config{}
	if _, err := cfg.Build(nil); err == nil {
		t.Fatalf("expected an error for a nil renderer")
	}
}
