package game_object

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/gloam/common"
	"github.com/Carmen-Shannon/gloam/engine/renderer/material"
)

func TestNewGameObjectDefaults(t *testing.T) {
	obj := NewGameObject()
	if !obj.Enabled() {
		t.Fatal("new object should start enabled")
	}
	if obj.Kind() != KindMesh {
		t.Fatalf("default kind = %v, want KindMesh", obj.Kind())
	}
	if sx, sy, sz := obj.Scale(); sx != 1 || sy != 1 || sz != 1 {
		t.Fatalf("default scale = %v %v %v, want unit", sx, sy, sz)
	}
}

func TestModelMatrixCaching(t *testing.T) {
	obj := NewGameObject(WithMesh("cube"), WithPosition(1, 2, 3))

	var want [16]float32
	common.BuildModelMatrix(want[:], 1, 2, 3, 0, 0, 0, 1, 1, 1)
	if got := obj.ModelMatrix(); got != want {
		t.Fatalf("model matrix = %v, want %v", got, want)
	}

	// Unchanged transform returns the same matrix.
	if got := obj.ModelMatrix(); got != want {
		t.Fatalf("cached model matrix = %v, want %v", got, want)
	}

	obj.SetPosition(4, 5, 6)
	common.BuildModelMatrix(want[:], 4, 5, 6, 0, 0, 0, 1, 1, 1)
	if got := obj.ModelMatrix(); got != want {
		t.Fatalf("model matrix after move = %v, want %v", got, want)
	}
}

func TestUpdateAdvancesSpin(t *testing.T) {
	obj := NewGameObject(WithMesh("cube"), WithRotationSpeed(0, math.Pi, 0))

	obj.Update(0.5)
	_, ry, _ := obj.Rotation()
	if math.Abs(float64(ry)-math.Pi/2) > 1e-6 {
		t.Fatalf("rotation.y after half second = %v, want pi/2", ry)
	}

	// The advanced rotation must flow into the model matrix.
	before := obj.ModelMatrix()
	obj.Update(0.5)
	if obj.ModelMatrix() == before {
		t.Fatal("model matrix did not change after spin update")
	}
}

func TestUpdateWithoutSpinKeepsRotation(t *testing.T) {
	obj := NewGameObject(WithMesh("cube"), WithRotation(0.1, 0.2, 0.3))
	obj.Update(1.0)
	rx, ry, rz := obj.Rotation()
	if rx != 0.1 || ry != 0.2 || rz != 0.3 {
		t.Fatalf("rotation drifted without spin: %v %v %v", rx, ry, rz)
	}
}

func TestSpriteVariants(t *testing.T) {
	tests := []struct {
		name string
		obj  GameObject
		mode SpriteMode
	}{
		{
			name: "basic",
			obj:  NewGameObject(WithSprite(10, 20, 64, 32)),
			mode: SpriteModeBasic,
		},
		{
			name: "sheet",
			obj:  NewGameObject(WithSpriteSheet(10, 20, 64, 32, [2]float32{0.25, 0.25}, [2]float32{0.5, 0})),
			mode: SpriteModeSheet,
		},
		{
			name: "atlas",
			obj:  NewGameObject(WithSpriteAtlas(10, 20, 64, 32, [2]float32{0.1, 0.2}, [2]float32{0.3, 0.4})),
			mode: SpriteModeAtlas,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.obj.Kind() != KindSprite {
				t.Fatalf("kind = %v, want KindSprite", tt.obj.Kind())
			}
			if tt.obj.SpriteMode() != tt.mode {
				t.Fatalf("mode = %v, want %v", tt.obj.SpriteMode(), tt.mode)
			}
			if got := tt.obj.DestRect(); got != ([4]float32{10, 20, 64, 32}) {
				t.Fatalf("dest rect = %v", got)
			}
		})
	}
}

func TestSpriteFrameAndAtlasAccessors(t *testing.T) {
	obj := NewGameObject(WithSprite(0, 0, 10, 10))

	obj.SetSpriteFrame([2]float32{0.5, 0.5}, [2]float32{0.5, 0})
	size, offset := obj.SpriteFrame()
	if size != ([2]float32{0.5, 0.5}) || offset != ([2]float32{0.5, 0}) {
		t.Fatalf("sprite frame = %v %v", size, offset)
	}

	obj.SetAtlasRegion([2]float32{0.1, 0.1}, [2]float32{0.2, 0.2})
	topLeft, regionSize := obj.AtlasRegion()
	if topLeft != ([2]float32{0.1, 0.1}) || regionSize != ([2]float32{0.2, 0.2}) {
		t.Fatalf("atlas region = %v %v", topLeft, regionSize)
	}
}

func TestMaterialAssignment(t *testing.T) {
	mat := material.NewMaterial(material.WithName("stone"))
	obj := NewGameObject(WithMesh("cube"), WithMaterial(mat))
	if obj.Material() != mat {
		t.Fatal("material accessor did not return the assigned material")
	}
	if obj.MeshName() != "cube" {
		t.Fatalf("mesh name = %q, want cube", obj.MeshName())
	}
}
