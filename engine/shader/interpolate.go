package shader

// LerpVaryings combines three vertices' varyings with the given barycentric
// weights. The weights are expected to sum to one; attributes that are
// constant across the primitive pass through unchanged under that
// expectation.
//
// Parameters:
//   - a, b, c: the triangle's vertex varyings
//   - wa, wb, wc: the barycentric weights
//
// Returns:
//   - Varyings: the interpolated varyings
func LerpVaryings(a, b, c Varyings, wa, wb, wc float32) Varyings {
	return Varyings{
		ClipPos:  lerp4(a.ClipPos, b.ClipPos, c.ClipPos, wa, wb, wc),
		TexCoord: lerp3(a.TexCoord, b.TexCoord, c.TexCoord, wa, wb, wc),
		Color:    lerp3(a.Color, b.Color, c.Color, wa, wb, wc),
		Normal:   lerp3(a.Normal, b.Normal, c.Normal, wa, wb, wc),
		LightDir: lerp3(a.LightDir, b.LightDir, c.LightDir, wa, wb, wc),
		LightPos: lerp4(a.LightPos, b.LightPos, c.LightPos, wa, wb, wc),
	}
}

func lerp3(a, b, c [3]float32, wa, wb, wc float32) [3]float32 {
	return [3]float32{
		a[0]*wa + b[0]*wb + c[0]*wc,
		a[1]*wa + b[1]*wb + c[1]*wc,
		a[2]*wa + b[2]*wb + c[2]*wc,
	}
}

func lerp4(a, b, c [4]float32, wa, wb, wc float32) [4]float32 {
	return [4]float32{
		a[0]*wa + b[0]*wb + c[0]*wc,
		a[1]*wa + b[1]*wb + c[1]*wc,
		a[2]*wa + b[2]*wb + c[2]*wc,
		a[3]*wa + b[3]*wb + c[3]*wc,
	}
}
