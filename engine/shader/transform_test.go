package shader

import "testing"

func TestTransformVertexMatrixOrder(t *testing.T) {
	// With Model = translate(+1 on x) and View = scale(2 on x), the point
	// (1,0,0) must translate first and scale second: ((1+1)*2) = 4. The
	// reversed order would give (1*2)+1 = 3, so the expected value pins the
	// Projection*View*Model composition exactly.
	cfg := &DrawConfig{
		Model:      translate(1, 0, 0),
		View:       scale(2, 1, 1),
		Projection: identity(),
		LightSpace: identity(),
	}
	vy := TransformVertex(cfg, Vertex{Position: [3]float32{1, 0, 0}})
	want := [4]float32{4, 0, 0, 1}
	if vy.ClipPos != want {
		t.Fatalf("clip position = %v, want %v", vy.ClipPos, want)
	}
}

func TestTransformVertexLightSpaceOrder(t *testing.T) {
	// The light-space position applies Model before LightSpace: the
	// combined light matrix never includes the model transform itself.
	cfg := &DrawConfig{
		Model:      translate(1, 0, 0),
		View:       identity(),
		Projection: identity(),
		LightSpace: scale(2, 1, 1),
	}
	vy := TransformVertex(cfg, Vertex{Position: [3]float32{1, 0, 0}})
	want := [4]float32{4, 0, 0, 1}
	if vy.LightPos != want {
		t.Fatalf("light-space position = %v, want %v", vy.LightPos, want)
	}
}

func TestTransformVertexCarriesAttributes(t *testing.T) {
	cfg := &DrawConfig{
		Model:      identity(),
		View:       identity(),
		Projection: identity(),
		LightSpace: identity(),
		LightDir:   [3]float32{0.3, -0.5, 0.8},
	}
	v := Vertex{
		Position: [3]float32{1, 2, 3},
		Normal:   [3]float32{0, 1, 0},
		TexCoord: [3]float32{0.25, 0.75, 0},
		Color:    [3]float32{0.1, 0.2, 0.3},
	}
	vy := TransformVertex(cfg, v)
	if vy.Normal != v.Normal {
		t.Errorf("normal = %v, want %v", vy.Normal, v.Normal)
	}
	if vy.TexCoord != v.TexCoord {
		t.Errorf("texcoord = %v, want %v", vy.TexCoord, v.TexCoord)
	}
	if vy.Color != v.Color {
		t.Errorf("color = %v, want %v", vy.Color, v.Color)
	}
	if vy.LightDir != cfg.LightDir {
		t.Errorf("light dir = %v, want %v", vy.LightDir, cfg.LightDir)
	}
	if vy.ClipPos != ([4]float32{1, 2, 3, 1}) {
		t.Errorf("clip position = %v, want identity transform of position", vy.ClipPos)
	}
}

func TestTransformFlat(t *testing.T) {
	tests := []struct {
		name     string
		cfg      DrawConfig
		position [3]float32
		want     [4]float32
	}{
		{
			name: "depth pinned to zero",
			cfg: DrawConfig{
				Model:      identity(),
				Projection: identity(),
			},
			position: [3]float32{0.5, -0.5, 7},
			want:     [4]float32{0.5, -0.5, 0, 1},
		},
		{
			name: "view matrix ignored",
			cfg: DrawConfig{
				Model:      translate(0, 1, 0),
				View:       scale(99, 99, 99),
				Projection: identity(),
			},
			position: [3]float32{0, 0, 0},
			want:     [4]float32{0, 1, 0, 1},
		},
		{
			name: "projection applied after model",
			cfg: DrawConfig{
				Model:      translate(1, 0, 0),
				Projection: scale(2, 1, 1),
			},
			position: [3]float32{1, 0, 0},
			want:     [4]float32{4, 0, 0, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vy := TransformFlat(&tt.cfg, Vertex{Position: tt.position})
			if vy.ClipPos != tt.want {
				t.Errorf("clip position = %v, want %v", vy.ClipPos, tt.want)
			}
		})
	}
}
