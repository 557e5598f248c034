package camera

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/gloam/common"
)

func approx(a, b, eps float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}

func approx3(a, b [3]float32, eps float32) bool {
	return approx(a[0], b[0], eps) && approx(a[1], b[1], eps) && approx(a[2], b[2], eps)
}

func TestControllerSphericalPosition(t *testing.T) {
	tests := []struct {
		name      string
		radius    float32
		azimuth   float32
		elevation float32
		want      [3]float32
	}{
		{
			// azimuth 0 places the camera on +Z; elevation lifts along +Y.
			name:      "down the z axis",
			radius:    10,
			azimuth:   0,
			elevation: 0.05,
			want:      [3]float32{0, 10 * 0.0499792, 10 * 0.9987503},
		},
		{
			name:      "quarter turn",
			radius:    5,
			azimuth:   float32(math.Pi / 2),
			elevation: 0.05,
			want:      [3]float32{5 * 0.9987503, 5 * 0.0499792, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cc := NewCameraController(
				WithRadius(tt.radius),
				WithAzimuth(tt.azimuth),
				WithElevation(tt.elevation),
			)
			if got := cc.Position(); !approx3(got, tt.want, 1e-4) {
				t.Errorf("Position() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestControllerClamps(t *testing.T) {
	cc := NewCameraController(
		WithRadiusBounds(2, 20),
		WithElevationBounds(0.1, 1.0),
	)

	cc.SetRadius(100)
	if got := cc.Radius(); got != 20 {
		t.Errorf("Radius() after overshoot = %v, want 20", got)
	}
	cc.SetRadius(0.5)
	if got := cc.Radius(); got != 2 {
		t.Errorf("Radius() after undershoot = %v, want 2", got)
	}

	cc.SetElevation(3)
	if got := cc.Elevation(); got != 1.0 {
		t.Errorf("Elevation() after overshoot = %v, want 1", got)
	}
	for i := 0; i < 100; i++ {
		cc.OrbitDown()
	}
	if got := cc.Elevation(); got != 0.1 {
		t.Errorf("Elevation() after repeated OrbitDown = %v, want 0.1", got)
	}
}

func TestControllerZoomDirection(t *testing.T) {
	cc := NewCameraController(WithRadius(10), WithZoomSpeed(1))
	cc.Zoom(2)
	if got := cc.Radius(); got != 8 {
		t.Errorf("Radius() after zooming in = %v, want 8", got)
	}
	cc.Zoom(-4)
	if got := cc.Radius(); got != 12 {
		t.Errorf("Radius() after zooming out = %v, want 12", got)
	}
}

func TestControllerPanPreservesOrbit(t *testing.T) {
	cc := NewCameraController(WithRadius(6), WithPanSpeed(1))
	before := common.Sub3(cc.Position(), cc.Target())

	cc.PanRight(3)
	cc.PanUp(-2)
	cc.PanForward(1)

	after := common.Sub3(cc.Position(), cc.Target())
	if !approx3(before, after, 1e-5) {
		t.Errorf("orbit offset changed from %v to %v", before, after)
	}
	if approx3(cc.Target(), [3]float32{}, 1e-6) {
		t.Error("target did not move")
	}
}

func TestCameraMatrices(t *testing.T) {
	cc := NewCameraController(WithRadius(8), WithAzimuth(0), WithElevation(0.3))
	cam := NewCamera(
		WithController(cc),
		WithAspect(16.0/9.0),
		WithFov(float32(math.Pi/3)),
	)

	// The view matrix maps the target to a point straight ahead of the
	// camera: x and y vanish, z is the negative orbit radius.
	view := cam.ViewMatrix()
	target := cc.Target()
	eye := common.MulVec4(view[:], [4]float32{target[0], target[1], target[2], 1})
	if !approx(eye[0], 0, 1e-5) || !approx(eye[1], 0, 1e-5) || !approx(eye[2], -8, 1e-4) {
		t.Errorf("view * target = %v, want (0, 0, -8, 1)", eye)
	}

	proj := cam.ProjectionMatrix()
	var want [16]float32
	common.Mul4(want[:], proj[:], view[:])
	if got := cam.ViewProjectionMatrix(); got != want {
		t.Errorf("ViewProjectionMatrix() = %v, want projection*view", got)
	}
}

func TestCameraFrustumContainsTarget(t *testing.T) {
	cc := NewCameraController(WithRadius(8))
	cam := NewCamera(WithController(cc))

	f := cam.Frustum()
	if !f.ContainsSphere(cc.Target(), 0.5) {
		t.Error("frustum rejects a sphere at the look-at point")
	}
	behind := common.Add3(cc.Position(), common.Normalize3(common.Sub3(cc.Position(), cc.Target())))
	if f.ContainsSphere(behind, 0.1) {
		t.Error("frustum accepts a sphere behind the camera")
	}
}

func TestCameraUpdateTracksController(t *testing.T) {
	cc := NewCameraController(WithRadius(5))
	cam := NewCamera(WithController(cc))
	before := cam.ViewMatrix()

	cc.OrbitRight()
	cc.OrbitRight()
	cam.Update()

	if cam.ViewMatrix() == before {
		t.Error("view matrix unchanged after orbiting and Update()")
	}
}
