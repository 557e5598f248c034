package shader

import "math"

// invGamma is the exponent of the final display transfer curve.
const invGamma = 1.0 / 2.2

// ToneMap compresses a linear HDR color into displayable range with the
// Reinhard curve x/(x+1) followed by gamma encoding at 2.2, applied per
// channel. Zero maps to zero, the curve is strictly increasing, and every
// finite input lands in [0,1). Negative channels are treated as zero.
//
// Parameters:
//   - c: the linear color
//
// Returns:
//   - [3]float32: the display-encoded color
func ToneMap(c [3]float32) [3]float32 {
	var out [3]float32
	for i, x := range c {
		if x <= 0 {
			continue
		}
		mapped := x / (x + 1)
		out[i] = float32(math.Pow(float64(mapped), invGamma))
	}
	return out
}
