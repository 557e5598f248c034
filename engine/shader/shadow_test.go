package shader

import "testing"

// tapCenter computes the shadow texture coordinate and compare depth for a
// homogeneous light-space position, mirroring the perspective divide and
// [-1,1] to [0,1] remap of the visibility estimator.
func tapCenter(lightPos [4]float32) (u, v, z float32) {
	w := lightPos[3]
	return 0.5*(lightPos[0]/w) + 0.5, 0.5*(lightPos[1]/w) + 0.5, 0.5*(lightPos[2]/w) + 0.5
}

// tapGrid lists the nine tap coordinates around a center in the same order
// the estimator visits them.
func tapGrid(u, v float32) [][2]float32 {
	taps := make([][2]float32, 0, 9)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			taps = append(taps, [2]float32{
				u + float32(dx)*shadowSpread,
				v + float32(dy)*shadowSpread,
			})
		}
	}
	return taps
}

func TestShadowVisibilityOcclusionCounts(t *testing.T) {
	lightPos := [4]float32{0.2, -0.4, 0.5, 1}
	u, v, z := tapCenter(lightPos)
	taps := tapGrid(u, v)

	for k := 0; k <= 9; k++ {
		occluded := make(map[[2]float32]bool, k)
		for _, tap := range taps[:k] {
			occluded[tap] = true
		}
		cfg := &DrawConfig{
			ShadowMap: depthFunc(func(tu, tv float32) float32 {
				if occluded[[2]float32{tu, tv}] {
					return z - 0.2
				}
				return 1.0
			}),
		}
		got := ShadowVisibility(cfg, lightPos)
		want := 1.0 - float32(k)/9.0
		if got != want {
			t.Errorf("visibility with %d of 9 taps occluded = %v, want exactly %v", k, got, want)
		}
	}
}

func TestShadowVisibilityStrictCompare(t *testing.T) {
	// The stored depth must be strictly nearer to occlude: a tap equal to
	// the compare depth leaves the point fully lit.
	lightPos := [4]float32{0, 0, 0.5, 1}
	_, _, z := tapCenter(lightPos)

	cfg := &DrawConfig{ShadowMap: constDepth(z)}
	if got := ShadowVisibility(cfg, lightPos); got != 1.0 {
		t.Errorf("visibility at equal depth = %v, want 1", got)
	}

	cfg.ShadowMap = constDepth(z - 1e-3)
	if got := ShadowVisibility(cfg, lightPos); got != 0.0 {
		t.Errorf("visibility with all taps nearer = %v, want 0", got)
	}
}

func TestShadowVisibilityBehindLight(t *testing.T) {
	tests := []struct {
		name string
		w    float32
	}{
		{name: "zero w", w: 0},
		{name: "negative w", w: -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Nil shadow map: a point behind the light projection must not
			// be sampled at all.
			cfg := &DrawConfig{}
			got := ShadowVisibility(cfg, [4]float32{0.1, 0.2, 0.3, tt.w})
			if got != 1.0 {
				t.Errorf("visibility = %v, want 1", got)
			}
		})
	}
}

func TestShadowVisibilityTapPattern(t *testing.T) {
	lightPos := [4]float32{0.4, -0.6, 0.9, 2}
	u, v, _ := tapCenter(lightPos)

	seen := make(map[[2]float32]int, 9)
	cfg := &DrawConfig{
		ShadowMap: depthFunc(func(tu, tv float32) float32 {
			seen[[2]float32{tu, tv}]++
			return 1.0
		}),
	}
	ShadowVisibility(cfg, lightPos)

	if len(seen) != 9 {
		t.Fatalf("distinct taps = %d, want 9", len(seen))
	}
	for _, tap := range tapGrid(u, v) {
		if seen[tap] != 1 {
			t.Errorf("tap %v sampled %d times, want once", tap, seen[tap])
		}
	}
}
