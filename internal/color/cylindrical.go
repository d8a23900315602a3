package color

import "math"

// The cylindrical spaces all take and return sRGB channels in 0-1, hue in
// degrees [0,360), and the remaining components as percentages 0-100.

func maxMin(r, g, b float64) (max, min float64) {
	return math.Max(r, math.Max(g, b)), math.Min(r, math.Min(g, b))
}

// rgbHue returns the sector-based hue shared by HSL, HSV and HWB.
func rgbHue(r, g, b, max, delta float64) float64 {
	if delta == 0 {
		return 0
	}
	var h float64
	switch max {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	default:
		h = (r-g)/delta + 4
	}
	return normalizeHue(h * 60)
}

// RGBToHSL converts sRGB channels to hue, saturation and lightness.
// Achromatic input reports hue 0.
func RGBToHSL(r, g, b float64) (h, s, l float64) {
	max, min := maxMin(r, g, b)
	delta := max - min
	l = (max + min) / 2
	if delta == 0 {
		return 0, 0, l * 100
	}
	if l < 0.5 {
		s = delta / (max + min)
	} else {
		s = delta / (2 - max - min)
	}
	return rgbHue(r, g, b, max, delta), s * 100, l * 100
}

// HSLToRGB converts hue, saturation and lightness to sRGB channels.
// Hue may be any real number; it is taken modulo 360.
func HSLToRGB(h, s, l float64) (r, g, b float64) {
	h = normalizeHue(h)
	s = clamp(s, 0, 100) / 100
	l = clamp(l, 0, 100) / 100
	// CSS Color 4 formulation: each channel is l - a*max(-1, min(k-3, 9-k, 1)).
	a := s * math.Min(l, 1-l)
	f := func(n float64) float64 {
		k := math.Mod(n+h/30, 12)
		return l - a*math.Max(-1, math.Min(math.Min(k-3, 9-k), 1))
	}
	return f(0), f(8), f(4)
}

// RGBToHSV converts sRGB channels to hue, saturation and value.
func RGBToHSV(r, g, b float64) (h, s, v float64) {
	max, min := maxMin(r, g, b)
	delta := max - min
	if max > 0 {
		s = delta / max
	}
	return rgbHue(r, g, b, max, delta), s * 100, max * 100
}

// HSVToRGB converts hue, saturation and value to sRGB channels.
func HSVToRGB(h, s, v float64) (r, g, b float64) {
	h = normalizeHue(h)
	s = clamp(s, 0, 100) / 100
	v = clamp(v, 0, 100) / 100
	f := func(n float64) float64 {
		k := math.Mod(n+h/60, 6)
		return v - v*s*math.Max(0, math.Min(math.Min(k, 4-k), 1))
	}
	return f(5), f(3), f(1)
}

// RGBToHSI converts sRGB channels to hue, saturation and intensity using
// the geometric (arccos) hue definition.
func RGBToHSI(r, g, b float64) (h, s, i float64) {
	i = (r + g + b) / 3
	if i == 0 {
		return 0, 0, 0
	}
	_, min := maxMin(r, g, b)
	s = 1 - min/i
	if s < 1e-12 {
		return 0, 0, i * 100
	}
	num := 0.5 * ((r - g) + (r - b))
	den := math.Sqrt((r-g)*(r-g) + (r-b)*(g-b))
	if den == 0 {
		return 0, s * 100, i * 100
	}
	theta := math.Acos(clamp(num/den, -1, 1)) * 180 / math.Pi
	if b > g {
		theta = 360 - theta
	}
	return normalizeHue(theta), s * 100, i * 100
}

// HSIToRGB converts hue, saturation and intensity to sRGB channels. Some
// HSI triples lie outside the RGB cube; callers that need displayable
// values clip the result.
func HSIToRGB(h, s, i float64) (r, g, b float64) {
	h = normalizeHue(h)
	s = clamp(s, 0, 100) / 100
	i = clamp(i, 0, 100) / 100
	rad := func(d float64) float64 { return d * math.Pi / 180 }
	// sector formula: the channel opposite the sector starts at i(1-s)
	sector := func(hh float64) (x, y, z float64) {
		x = i * (1 - s)
		y = i * (1 + s*math.Cos(rad(hh))/math.Cos(rad(60-hh)))
		z = 3*i - (x + y)
		return
	}
	switch {
	case h < 120:
		b, r, g = sector(h)
	case h < 240:
		r, g, b = sector(h - 120)
	default:
		g, b, r = sector(h - 240)
	}
	return r, g, b
}

// RGBToHWB converts sRGB channels to hue, whiteness and blackness.
func RGBToHWB(r, g, b float64) (h, w, bl float64) {
	max, min := maxMin(r, g, b)
	return rgbHue(r, g, b, max, max-min), min * 100, (1 - max) * 100
}

// HWBToRGB converts hue, whiteness and blackness to sRGB channels.
// When whiteness plus blackness reaches 100 the result is the gray
// w/(w+b), as CSS specifies.
func HWBToRGB(h, w, bl float64) (r, g, b float64) {
	w = clamp(w, 0, 100) / 100
	bl = clamp(bl, 0, 100) / 100
	if w+bl >= 1 {
		gray := w / (w + bl)
		return gray, gray, gray
	}
	r, g, b = HSVToRGB(h, 100, 100)
	scale := 1 - w - bl
	return r*scale + w, g*scale + w, b*scale + w
}
