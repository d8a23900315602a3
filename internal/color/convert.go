package color

import (
	"fmt"
	"math"
)

// Convert returns c expressed in the target space, rounded to precision
// digits (DefaultPrecision for the target's default, FullPrecision for
// none).
//
// Every conversion goes through encoded sRGB as the hub; the CIE and OK
// spaces additionally go through XYZ D65. The hub is not clipped, so
// conversions between wide-gamut, XYZ, Lab and OK spaces keep colors that
// sRGB cannot display. Targets that are only defined on the sRGB cube
// (RGB, HSL, HSV, HSI, CMYK) and the wide-gamut RGB spaces clip each
// channel of their RGB encoding to [0,1].
//
// Convert fails with ErrUnsupportedColorSpace for an unknown target and
// with ErrInvalidComponentRange when c carries non-finite components.
// Alpha is carried over unchanged.
func Convert(c Color, target Space, precision int) (Color, error) {
	if !target.Valid() {
		return Color{}, fmt.Errorf("%w: target %s", ErrUnsupportedColorSpace, target)
	}
	if !c.space.Valid() {
		return Color{}, fmt.Errorf("%w: source %s", ErrUnsupportedColorSpace, c.space)
	}
	for i := 0; i < c.space.Len(); i++ {
		if v := c.comps[i]; math.IsNaN(v) || math.IsInf(v, 0) {
			return Color{}, fmt.Errorf("%w: %s component %d is %v", ErrInvalidComponentRange, c.space, i, v)
		}
	}

	var comps [4]float64
	switch {
	case c.space == target:
		comps = c.comps
	case direct(c, target, &comps):
	default:
		r, g, b := toRGB(c)
		comps = fromRGB(target, r, g, b)
	}

	out := Color{space: target, comps: comps, alpha: c.alpha, hasAlpha: c.hasAlpha}
	for i := 0; i < target.Len(); i++ {
		if v := out.comps[i]; math.IsNaN(v) || math.IsInf(v, 0) {
			return Color{}, fmt.Errorf("%w: converting %s to %s produced %v", ErrInvalidComponentRange, c.space, target, v)
		}
	}
	if h := target.HueIndex(); h >= 0 {
		out.comps[h] = normalizeHue(out.comps[h])
	}
	return Round(out, precision), nil
}

// To converts c to target without rounding.
func (c Color) To(target Space) (Color, error) {
	return Convert(c, target, FullPrecision)
}

// direct handles pairs that share an intermediate closer than the sRGB hub.
// It reports whether it filled out.
func direct(c Color, target Space, out *[4]float64) bool {
	v := c.comps
	var x, y, z float64
	switch {
	case c.space == Lab && target == LCH:
		x, y, z = LabToLCH(v[0], v[1], v[2])
	case c.space == LCH && target == Lab:
		x, y, z = LCHToLab(v[0], v[1], v[2])
	case c.space == OKLab && target == OKLCH:
		x, y, z = OKLabToOKLCH(v[0], v[1], v[2])
	case c.space == OKLCH && target == OKLab:
		x, y, z = OKLCHToOKLab(v[0], v[1], v[2])
	case c.space == XYZD65 && target == XYZD50:
		x, y, z = D65ToD50(v[0], v[1], v[2])
	case c.space == XYZD50 && target == XYZD65:
		x, y, z = D50ToD65(v[0], v[1], v[2])
	default:
		return false
	}
	*out = [4]float64{x, y, z}
	return true
}

// toRGB returns the encoded, unclipped sRGB channels of c.
func toRGB(c Color) (r, g, b float64) {
	v := c.comps
	switch c.space {
	case RGB:
		return v[0], v[1], v[2]
	case HSL:
		return HSLToRGB(v[0], v[1], v[2])
	case HSV:
		return HSVToRGB(v[0], v[1], v[2])
	case HSI:
		return HSIToRGB(v[0], v[1], v[2])
	case CMYK:
		return CMYKToRGB(v[0], v[1], v[2], v[3])
	case XYZD65:
		return XYZToRGB(v[0], v[1], v[2])
	case XYZD50:
		return XYZToRGB(D50ToD65(v[0], v[1], v[2]))
	case Lab:
		return LabToRGB(v[0], v[1], v[2])
	case LCH:
		return LabToRGB(LCHToLab(v[0], v[1], v[2]))
	case OKLab:
		return OKLabToRGB(v[0], v[1], v[2])
	case OKLCH:
		return OKLabToRGB(OKLCHToOKLab(v[0], v[1], v[2]))
	case DisplayP3, Rec2020, ProPhotoRGB, A98RGB:
		lin, _ := FromWideGamut([3]float64{v[0], v[1], v[2]}, c.space, false)
		return srgbTransfer.delinearize(lin[0], lin[1], lin[2])
	}
	return 0, 0, 0
}

// fromRGB expresses encoded, unclipped sRGB channels in target.
func fromRGB(target Space, r, g, b float64) [4]float64 {
	clipped := func() (float64, float64, float64) {
		return clamp01(r), clamp01(g), clamp01(b)
	}
	var out [4]float64
	switch target {
	case RGB:
		out[0], out[1], out[2] = clipped()
	case HSL:
		out[0], out[1], out[2] = RGBToHSL(clipped())
	case HSV:
		out[0], out[1], out[2] = RGBToHSV(clipped())
	case HSI:
		out[0], out[1], out[2] = RGBToHSI(clipped())
	case CMYK:
		out[0], out[1], out[2], out[3] = RGBToCMYK(clipped())
	case XYZD65:
		out[0], out[1], out[2] = RGBToXYZ(r, g, b)
	case XYZD50:
		out[0], out[1], out[2] = D65ToD50(RGBToXYZ(r, g, b))
	case Lab:
		out[0], out[1], out[2] = RGBToLab(r, g, b)
	case LCH:
		out[0], out[1], out[2] = LabToLCH(RGBToLab(r, g, b))
	case OKLab:
		out[0], out[1], out[2] = RGBToOKLab(r, g, b)
	case OKLCH:
		out[0], out[1], out[2] = OKLabToOKLCH(RGBToOKLab(r, g, b))
	case DisplayP3, Rec2020, ProPhotoRGB, A98RGB:
		lr, lg, lb := srgbTransfer.linearize(r, g, b)
		w, _ := ToWideGamutE(LinearRGB{lr, lg, lb}, target, false)
		copy(out[:3], w[:])
	}
	return out
}
