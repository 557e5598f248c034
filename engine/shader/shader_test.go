package shader

import (
	"github.com/Carmen-Shannon/gloam/engine/texture"
)

// solidSampler is a color sampler returning one fixed RGBA everywhere.
type solidSampler [4]float32

var _ texture.Sampler = solidSampler{}

func (s solidSampler) Sample(u, v float32) [4]float32 {
	return [4]float32(s)
}

// depthFunc adapts a plain function into a depth sampler.
type depthFunc func(u, v float32) float32

var _ texture.DepthSampler = depthFunc(nil)

func (f depthFunc) SampleDepth(u, v float32) float32 {
	return f(u, v)
}

// constDepth is a depth sampler returning one fixed depth everywhere.
func constDepth(d float32) depthFunc {
	return func(u, v float32) float32 { return d }
}

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

func approx4(a, b [4]float32, eps float32) bool {
	return approx(a[0], b[0], eps) && approx(a[1], b[1], eps) &&
		approx(a[2], b[2], eps) && approx(a[3], b[3], eps)
}

// identity returns a fresh 4x4 identity in column-major order.
func identity() [16]float32 {
	var m [16]float32
	m[0], m[5], m[10], m[15] = 1, 1, 1, 1
	return m
}

// translate returns a column-major translation matrix.
func translate(x, y, z float32) [16]float32 {
	m := identity()
	m[12], m[13], m[14] = x, y, z
	return m
}

// scale returns a column-major axis scale matrix.
func scale(x, y, z float32) [16]float32 {
	var m [16]float32
	m[0], m[5], m[10], m[15] = x, y, z, 1
	return m
}
