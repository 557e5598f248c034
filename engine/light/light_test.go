package light

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/gloam/common"
	"github.com/Carmen-Shannon/gloam/engine/camera"
)

func TestNewLightDefaults(t *testing.T) {
	l := NewLight()

	dir := l.Direction()
	length := math.Sqrt(float64(dir[0]*dir[0] + dir[1]*dir[1] + dir[2]*dir[2]))
	if math.Abs(length-1) > 1e-6 {
		t.Errorf("default direction length = %v, want 1", length)
	}
	if dir[1] >= 0 {
		t.Errorf("default direction %v does not point downward", dir)
	}
	if !l.Enabled() || !l.CastsShadows() {
		t.Error("default light should be enabled and cast shadows")
	}
	if l.Resolution() != ShadowMapResolution {
		t.Errorf("resolution = %d, want %d", l.Resolution(), ShadowMapResolution)
	}
	sm := l.ShadowMap()
	if sm.Width() != ShadowMapResolution || sm.Height() != ShadowMapResolution {
		t.Errorf("shadow map %dx%d, want %dx%d", sm.Width(), sm.Height(), ShadowMapResolution, ShadowMapResolution)
	}
}

func TestLightOptionsAndSetters(t *testing.T) {
	l := NewLight(
		WithDirection(0, -2, 0),
		WithColor(0.5, 0.6, 0.7),
		WithIntensity(2),
		WithCastsShadows(false),
		WithShadowMapResolution(64),
	)
	if got := l.Direction(); got != ([3]float32{0, -1, 0}) {
		t.Errorf("Direction() = %v, want normalized (0,-1,0)", got)
	}
	if got := l.Color(); got != ([3]float32{0.5, 0.6, 0.7}) {
		t.Errorf("Color() = %v", got)
	}
	if l.Intensity() != 2 || l.CastsShadows() {
		t.Error("intensity or shadow flag not applied")
	}
	if sm := l.ShadowMap(); sm.Width() != 64 {
		t.Errorf("shadow map width = %d, want 64", sm.Width())
	}

	l.SetDirection(3, 0, 4)
	want := [3]float32{0.6, 0, 0.8}
	if got := l.Direction(); got != want {
		t.Errorf("SetDirection normalized to %v, want %v", got, want)
	}
}

func TestWithShadowMapResolutionRejectsNonPositive(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for zero resolution")
		}
	}()
	NewLight(WithShadowMapResolution(0))
}

// fitCoversFrustum asserts every corner of the camera frustum lands inside
// the light's clip box after the fit.
func fitCoversFrustum(t *testing.T, l Light, viewProj [16]float32) {
	t.Helper()
	lightSpace := l.FitShadowCamera(viewProj[:])
	corners, ok := common.FrustumCornersWorld(viewProj[:])
	if !ok {
		t.Fatal("camera frustum could not be unprojected")
	}
	for i, c := range corners {
		p := common.MulVec4(lightSpace[:], [4]float32{c[0], c[1], c[2], 1})
		const eps = 1e-3
		if p[0] < -1-eps || p[0] > 1+eps || p[1] < -1-eps || p[1] > 1+eps {
			t.Errorf("corner %d maps to (%v, %v) outside the light window", i, p[0], p[1])
		}
		if p[2] < -eps || p[2] > 1+eps {
			t.Errorf("corner %d maps to depth %v outside [0,1]", i, p[2])
		}
	}
}

func TestFitShadowCameraCoversFrustum(t *testing.T) {
	cam := camera.NewCamera(
		camera.WithController(camera.NewCameraController(camera.WithRadius(10))),
		camera.WithNear(0.1),
		camera.WithFar(50),
	)
	fitCoversFrustum(t, NewLight(), cam.ViewProjectionMatrix())
}

func TestFitShadowCameraStraightDownLight(t *testing.T) {
	// A light pointing straight down exercises the alternate up vector in
	// the orientation pass.
	cam := camera.NewCamera(
		camera.WithController(camera.NewCameraController(camera.WithRadius(6))),
		camera.WithFar(40),
	)
	fitCoversFrustum(t, NewLight(WithDirection(0, -1, 0)), cam.ViewProjectionMatrix())
}

func TestFitShadowCameraFallback(t *testing.T) {
	// A singular camera matrix falls back to the fixed box: the origin must
	// still land inside the light's clip volume.
	var singular [16]float32
	lightSpace := NewLight().FitShadowCamera(singular[:])
	p := common.MulVec4(lightSpace[:], [4]float32{0, 0, 0, 1})
	if p[0] < -1 || p[0] > 1 || p[1] < -1 || p[1] > 1 || p[2] < 0 || p[2] > 1 {
		t.Errorf("origin maps to %v, outside the fallback box", p)
	}
}
