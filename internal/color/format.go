package color

import (
	"fmt"
	"strconv"
	"strings"
)

// Style selects the output notation of FormatWith.
type Style uint8

const (
	// StyleModern is the space separated CSS Color 4 notation.
	StyleModern Style = iota
	// StyleLegacy uses the comma form (rgb/rgba, hsl/hsla) where CSS has
	// one. Other spaces fall back to StyleModern.
	StyleLegacy
	// StyleHex prints the clipped 8-bit sRGB value as #rrggbb or #rrggbbaa.
	StyleHex
)

func (s Style) String() string {
	switch s {
	case StyleModern:
		return "modern"
	case StyleLegacy:
		return "legacy"
	case StyleHex:
		return "hex"
	}
	return fmt.Sprintf("Style(%d)", uint8(s))
}

// ParseStyle resolves a style name. The empty string selects StyleModern.
func ParseStyle(name string) (Style, error) {
	switch strings.ToLower(name) {
	case "", "modern", "css4":
		return StyleModern, nil
	case "legacy", "comma":
		return StyleLegacy, nil
	case "hex":
		return StyleHex, nil
	}
	return 0, fmt.Errorf("%w: unknown format style %q", ErrInvalidColorSyntax, name)
}

// FormatOptions controls FormatWith. Note that the zero value asks for zero
// digits; use DefaultPrecision for the space defaults.
type FormatOptions struct {
	Precision int
	Style     Style
}

// Format renders c in its own space with default precision and the modern
// notation. The output parses back with Parse.
func Format(c Color) string {
	return FormatWith(c, FormatOptions{Precision: DefaultPrecision})
}

// String implements fmt.Stringer using Format.
func (c Color) String() string {
	return Format(c)
}

// Hex returns the #rrggbb form of c, or #rrggbbaa when c has alpha below 1.
// Out-of-gamut colors are clipped.
func Hex(c Color) string {
	v := c.RGB8()
	if v.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", v.R, v.G, v.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", v.R, v.G, v.B, v.A)
}

// FormatWith renders c according to opts.
//
// HSL, HSV and HSI saturation and lightness are printed as percentages, as
// are CMYK inks and the lightness of Lab, LCH, OKLab and OKLCH. XYZ and
// the wide-gamut RGB spaces are written with color(). Alpha is appended
// only when c carries one.
func FormatWith(c Color, opts FormatOptions) string {
	if opts.Style == StyleHex {
		return Hex(c)
	}
	prec := opts.Precision
	if prec == DefaultPrecision || prec < FullPrecision {
		prec = c.space.Precision()
	}
	legacy := opts.Style == StyleLegacy
	v := c.comps

	num := func(x float64) string { return formatNumber(x, prec) }
	pct := func(x float64) string { return formatNumber(x, prec) + "%" }
	// lightness stored as 0..1 and printed as a percentage loses two digits
	unitPct := func(x float64) string {
		p := prec
		if p > 2 {
			p -= 2
		} else if p >= 0 {
			p = 0
		}
		return formatNumber(x*100, p) + "%"
	}
	hue := func(x float64) string {
		if prec == FullPrecision {
			return num(x)
		}
		return num(normalizeHue(roundTo(x, prec)))
	}

	var name string
	var args []string
	switch c.space {
	case RGB:
		name = "rgb"
		args = []string{num(v[0] * 255), num(v[1] * 255), num(v[2] * 255)}
	case HSL:
		name = "hsl"
		args = []string{hue(v[0]), pct(v[1]), pct(v[2])}
	case HSV:
		name = "hsv"
		args = []string{hue(v[0]), pct(v[1]), pct(v[2])}
	case HSI:
		name = "hsi"
		args = []string{hue(v[0]), pct(v[1]), pct(v[2])}
	case CMYK:
		name = "device-cmyk"
		args = []string{pct(v[0]), pct(v[1]), pct(v[2]), pct(v[3])}
	case Lab:
		name = "lab"
		args = []string{pct(v[0]), num(v[1]), num(v[2])}
	case LCH:
		name = "lch"
		args = []string{pct(v[0]), num(v[1]), hue(v[2])}
	case OKLab:
		name = "oklab"
		args = []string{unitPct(v[0]), num(v[1]), num(v[2])}
	case OKLCH:
		name = "oklch"
		args = []string{unitPct(v[0]), num(v[1]), hue(v[2])}
	case XYZD50, XYZD65, DisplayP3, Rec2020, ProPhotoRGB, A98RGB:
		name = "color"
		args = []string{c.space.String(), num(v[0]), num(v[1]), num(v[2])}
	default:
		return fmt.Sprintf("invalid(%s)", c.space)
	}

	var alpha string
	if c.hasAlpha {
		alpha = formatNumber(c.alpha, 3)
	}

	if legacy && (c.space == RGB || c.space == HSL) {
		if c.hasAlpha {
			return name + "a(" + strings.Join(append(args, alpha), ", ") + ")"
		}
		return name + "(" + strings.Join(args, ", ") + ")"
	}
	s := name + "(" + strings.Join(args, " ")
	if c.hasAlpha {
		s += " / " + alpha
	}
	return s + ")"
}

// formatNumber prints v rounded to prec digits (FullPrecision for the
// shortest exact form) without trailing zeros.
func formatNumber(v float64, prec int) string {
	if prec != FullPrecision {
		v = roundTo(v, prec)
	}
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
