package color

import "math"

// Precision values accepted by Convert and FormatWith besides an explicit
// digit count.
const (
	// DefaultPrecision selects the space's own rounding (see Space.Precision).
	DefaultPrecision = -1

	// FullPrecision disables rounding entirely.
	FullPrecision = -2
)

// Precision returns the default number of digits after the decimal point
// used when rounding components of this space. RGB-family spaces count
// digits of the 0-255 value for sRGB and of the 0-1 value otherwise.
func (s Space) Precision() int {
	switch s {
	case RGB:
		return 0
	case HSL, HSV, HSI, CMYK:
		return 1
	case Lab, LCH:
		return 2
	case XYZD50, XYZD65, OKLab, OKLCH, DisplayP3, Rec2020, ProPhotoRGB, A98RGB:
		return 4
	}
	return 4
}

// roundTo rounds v to digits after the decimal point, half away from zero.
// Negative digit counts return v unchanged.
func roundTo(v float64, digits int) float64 {
	if digits < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	p := math.Pow(10, float64(digits))
	r := math.Round(v*p) / p
	if r == 0 {
		return 0 // drop negative zero
	}
	return r
}

// Round returns c with every component rounded to precision digits.
// DefaultPrecision uses the space default; FullPrecision returns c as is.
// Alpha is rounded to three digits.
func Round(c Color, precision int) Color {
	if precision == FullPrecision {
		return c
	}
	if precision < 0 {
		precision = c.space.Precision()
	}
	out := c
	for i := 0; i < c.space.Len(); i++ {
		v := c.comps[i]
		if c.space == RGB {
			v = roundTo(v*255, precision) / 255
		} else {
			v = roundTo(v, precision)
		}
		out.comps[i] = v
	}
	if h := c.space.HueIndex(); h >= 0 {
		out.comps[h] = normalizeHue(out.comps[h])
	}
	if out.hasAlpha {
		out.alpha = roundTo(out.alpha, 3)
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clamp01(v float64) float64 { return clamp(v, 0, 1) }

// normalizeHue wraps h into [0,360).
func normalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 || h == 0 {
		// math.Mod of tiny negatives can land exactly on 360 after the add
		return 0
	}
	return h
}
