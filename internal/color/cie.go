package color

import "math"

// CIE Lab constants (exact rational forms).
const (
	labEpsilon = 216.0 / 24389
	labKappa   = 24389.0 / 27
)

// achromaticChroma is the chroma below which LCH and OKLCH report a gray.
// Matrix round-off leaves neutral sRGB grays with a residual chroma near
// 2e-5 in Lab and 4e-5 in OKLab.
const achromaticChroma = 1e-4

// RGBToXYZ converts sRGB-encoded channels to CIE XYZ relative to D65,
// with Y = 1 for white.
func RGBToXYZ(r, g, b float64) (x, y, z float64) {
	return srgbToXYZ.apply(srgbTransfer.linearize(r, g, b))
}

// XYZToRGB converts CIE XYZ (D65) to sRGB-encoded channels. The result is
// not clipped; values outside [0,1] are out of the sRGB gamut.
func XYZToRGB(x, y, z float64) (r, g, b float64) {
	return srgbTransfer.delinearize(xyzToSRGB.apply(x, y, z))
}

// D65ToD50 adapts XYZ from the D65 to the D50 white point (Bradford).
func D65ToD50(x, y, z float64) (float64, float64, float64) {
	return bradfordD65ToD50.apply(x, y, z)
}

// D50ToD65 adapts XYZ from the D50 to the D65 white point (Bradford).
func D50ToD65(x, y, z float64) (float64, float64, float64) {
	return bradfordD50ToD65.apply(x, y, z)
}

// XYZToLab converts XYZ to CIE L*a*b* relative to the given white point.
func XYZToLab(x, y, z float64, white [3]float64) (l, a, b float64) {
	f := func(t float64) float64 {
		if t > labEpsilon {
			return math.Cbrt(t)
		}
		return (labKappa*t + 16) / 116
	}
	fx := f(x / white[0])
	fy := f(y / white[1])
	fz := f(z / white[2])
	return 116*fy - 16, 500 * (fx - fy), 200 * (fy - fz)
}

// LabToXYZ converts CIE L*a*b* to XYZ relative to the given white point.
func LabToXYZ(l, a, b float64, white [3]float64) (x, y, z float64) {
	fy := (l + 16) / 116
	fx := a/500 + fy
	fz := fy - b/200
	inv := func(f float64) float64 {
		if f3 := f * f * f; f3 > labEpsilon {
			return f3
		}
		return (116*f - 16) / labKappa
	}
	var yr float64
	if l > labKappa*labEpsilon {
		yr = fy * fy * fy
	} else {
		yr = l / labKappa
	}
	return inv(fx) * white[0], yr * white[1], inv(fz) * white[2]
}

// LabToLCH converts rectangular a/b to chroma and hue (degrees).
// Achromatic input reports chroma 0 and hue 0.
func LabToLCH(l, a, b float64) (float64, float64, float64) {
	c := math.Hypot(a, b)
	if c < achromaticChroma {
		return l, 0, 0
	}
	return l, c, normalizeHue(math.Atan2(b, a) * 180 / math.Pi)
}

// LCHToLab converts chroma and hue back to rectangular a/b.
func LCHToLab(l, c, h float64) (float64, float64, float64) {
	rad := h * math.Pi / 180
	return l, c * math.Cos(rad), c * math.Sin(rad)
}

// XYZToOKLab converts XYZ (D65) to OKLab.
func XYZToOKLab(x, y, z float64) (l, a, b float64) {
	lc, mc, sc := xyzToLMS.apply(x, y, z)
	return lmsToOKLab.apply(math.Cbrt(lc), math.Cbrt(mc), math.Cbrt(sc))
}

// OKLabToXYZ converts OKLab to XYZ (D65).
func OKLabToXYZ(l, a, b float64) (x, y, z float64) {
	lc, mc, sc := okLabToLMS.apply(l, a, b)
	return lmsToXYZ.apply(lc*lc*lc, mc*mc*mc, sc*sc*sc)
}

// OKLabToOKLCH is LabToLCH for the OKLab geometry.
func OKLabToOKLCH(l, a, b float64) (float64, float64, float64) {
	c := math.Hypot(a, b)
	if c < achromaticChroma {
		return l, 0, 0
	}
	return l, c, normalizeHue(math.Atan2(b, a) * 180 / math.Pi)
}

// OKLCHToOKLab is LCHToLab for the OKLab geometry.
func OKLCHToOKLab(l, c, h float64) (float64, float64, float64) {
	return LCHToLab(l, c, h)
}

// RGBToLab converts sRGB channels to Lab with the D65 white point.
func RGBToLab(r, g, b float64) (l, a, bb float64) {
	x, y, z := RGBToXYZ(r, g, b)
	return XYZToLab(x, y, z, WhiteD65)
}

// LabToRGB converts D65 Lab to unclipped sRGB channels.
func LabToRGB(l, a, b float64) (r, g, bb float64) {
	return XYZToRGB(LabToXYZ(l, a, b, WhiteD65))
}

// RGBToOKLab converts sRGB channels to OKLab.
func RGBToOKLab(r, g, b float64) (l, a, bb float64) {
	return XYZToOKLab(RGBToXYZ(r, g, b))
}

// OKLabToRGB converts OKLab to unclipped sRGB channels.
func OKLabToRGB(l, a, b float64) (r, g, bb float64) {
	return XYZToRGB(OKLabToXYZ(l, a, b))
}
