package color

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Parser turns CSS color strings into Colors.
//
// The zero Parser is permissive: out-of-range components are clamped into
// the space's domain. With Strict set the same inputs fail with
// ErrInvalidComponentRange instead. Syntax errors fail in both modes with
// ErrInvalidColorSyntax. Hues always wrap and are never rejected.
//
// A Parser has no mutable state and is safe for concurrent use.
type Parser struct {
	Strict bool
}

// Parse parses s with the permissive default parser.
func Parse(s string) (Color, error) {
	return Parser{}.Parse(s)
}

// ParseStrict parses s rejecting out-of-range components.
func ParseStrict(s string) (Color, error) {
	return Parser{Strict: true}.Parse(s)
}

// ParseToRGB parses s and returns its 8-bit sRGB value, clipping colors
// outside the sRGB gamut. It reports false for anything Parse rejects.
func ParseToRGB(s string) (RGBA8, bool) {
	c, err := Parse(s)
	if err != nil {
		return RGBA8{}, false
	}
	return c.RGB8(), true
}

// IsValidCSSColor reports whether s is a single, self-contained CSS color
// value. The non-CSS hsv()/hsb()/hsi() notations accepted by Parse are not
// valid CSS and report false.
func IsValidCSSColor(s string) bool {
	_, css, err := Parser{}.parse(s)
	return err == nil && css
}

// Parse parses one color value.
//
// Input is trimmed and lower-cased. A leading identifier followed by "("
// selects a function parser (rgb, rgba, hsl, hsla, hwb, lab, lch, oklab,
// oklch, color, device-cmyk, and the non-CSS hsv, hsb and hsi); otherwise a
// leading "#" selects hex; otherwise the named-color table is consulted.
func (p Parser) Parse(s string) (Color, error) {
	c, _, err := p.parse(s)
	return c, err
}

func (p Parser) parse(input string) (c Color, css bool, err error) {
	s := strings.ToLower(strings.TrimSpace(input))
	if s == "" {
		return Color{}, false, fmt.Errorf("%w: empty input", ErrInvalidColorSyntax)
	}
	if i := strings.IndexByte(s, '('); i > 0 {
		name := strings.TrimSpace(s[:i])
		if isIdent(name) {
			c, err = p.parseFunc(name, s[i+1:])
			if err != nil {
				return Color{}, false, fmt.Errorf("%w (input %q)", err, input)
			}
			return c, !nonCSSFuncs[name], nil
		}
	}
	if s[0] == '#' {
		c, err = parseHex(s[1:])
		if err != nil {
			return Color{}, false, fmt.Errorf("%w (input %q)", err, input)
		}
		return c, true, nil
	}
	if c, ok := NamedColor(s); ok {
		return c, true, nil
	}
	return Color{}, false, fmt.Errorf("%w: %q", ErrInvalidColorSyntax, input)
}

var nonCSSFuncs = map[string]bool{"hsv": true, "hsb": true, "hsi": true}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !(r >= 'a' && r <= 'z') && r != '-' && !(r >= '0' && r <= '9') {
			return false
		}
	}
	return true
}

func parseHex(h string) (Color, error) {
	switch len(h) {
	case 3, 4, 6, 8:
	default:
		return Color{}, fmt.Errorf("%w: hex color must have 3, 4, 6 or 8 digits", ErrInvalidColorSyntax)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: bad hex digits %q", ErrInvalidColorSyntax, h)
	}
	var r, g, b, a uint8
	hasAlpha := false
	switch len(h) {
	case 3:
		r, g, b = uint8(v>>8&0xf)*0x11, uint8(v>>4&0xf)*0x11, uint8(v&0xf)*0x11
	case 4:
		r, g, b, a = uint8(v>>12&0xf)*0x11, uint8(v>>8&0xf)*0x11, uint8(v>>4&0xf)*0x11, uint8(v&0xf)*0x11
		hasAlpha = true
	case 6:
		r, g, b = uint8(v>>16), uint8(v>>8), uint8(v)
	case 8:
		r, g, b, a = uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)
		hasAlpha = true
	}
	c := FromRGB8(r, g, b)
	if hasAlpha {
		c = c.WithAlpha(float64(a) / 255)
	}
	return c, nil
}

// channel describes how one numeric argument maps to a native component.
type channel struct {
	name   string
	pct    float64 // native value of 100%
	unit   float64 // bare numbers are divided by unit
	lo, hi float64 // native domain
	hue    bool
}

var (
	rgbChannel   = channel{pct: 1, unit: 255, lo: 0, hi: 1}
	unitChannel  = channel{pct: 1, unit: 1, lo: 0, hi: 1}
	percentChan  = channel{pct: 100, unit: 1, lo: 0, hi: 100}
	hueChannel   = channel{name: "hue", hue: true}
	labL         = channel{name: "lightness", pct: 100, unit: 1, lo: 0, hi: 100}
	labAB        = channel{pct: 125, unit: 1, lo: -128, hi: 128}
	lchC         = channel{name: "chroma", pct: 150, unit: 1, lo: 0, hi: 230}
	okL          = channel{name: "lightness", pct: 1, unit: 1, lo: 0, hi: 1}
	okAB         = channel{pct: 0.4, unit: 1, lo: -0.4, hi: 0.4}
	okC          = channel{name: "chroma", pct: 0.4, unit: 1, lo: 0, hi: 0.5}
	xyzChannel   = channel{pct: 1, unit: 1, lo: 0, hi: math.Inf(1)}
	cmykChannel  = channel{pct: 100, unit: 0.01, lo: 0, hi: 100}
	alphaChannel = channel{name: "alpha", pct: 1, unit: 1, lo: 0, hi: 1}
)

func named(ch channel, name string) channel {
	ch.name = name
	return ch
}

type funcSpec struct {
	space    Space
	channels []channel
	// convert maps native channel values of a notation without its own
	// Space (hwb, srgb-linear) to sRGB.
	convert func(v []float64) []float64
}

var funcSpecs = map[string]funcSpec{
	"rgb":  {space: RGB, channels: []channel{named(rgbChannel, "red"), named(rgbChannel, "green"), named(rgbChannel, "blue")}},
	"rgba": {space: RGB, channels: []channel{named(rgbChannel, "red"), named(rgbChannel, "green"), named(rgbChannel, "blue")}},
	"hsl":  {space: HSL, channels: []channel{hueChannel, named(percentChan, "saturation"), named(percentChan, "lightness")}},
	"hsla": {space: HSL, channels: []channel{hueChannel, named(percentChan, "saturation"), named(percentChan, "lightness")}},
	"hsv":  {space: HSV, channels: []channel{hueChannel, named(percentChan, "saturation"), named(percentChan, "value")}},
	"hsb":  {space: HSV, channels: []channel{hueChannel, named(percentChan, "saturation"), named(percentChan, "brightness")}},
	"hsi":  {space: HSI, channels: []channel{hueChannel, named(percentChan, "saturation"), named(percentChan, "intensity")}},
	"hwb": {space: RGB, channels: []channel{hueChannel, named(percentChan, "whiteness"), named(percentChan, "blackness")},
		convert: func(v []float64) []float64 {
			r, g, b := HWBToRGB(v[0], v[1], v[2])
			return []float64{r, g, b}
		}},
	"lab":   {space: Lab, channels: []channel{labL, named(labAB, "a"), named(labAB, "b")}},
	"lch":   {space: LCH, channels: []channel{labL, lchC, hueChannel}},
	"oklab": {space: OKLab, channels: []channel{okL, named(okAB, "a"), named(okAB, "b")}},
	"oklch": {space: OKLCH, channels: []channel{okL, okC, hueChannel}},
	"device-cmyk": {space: CMYK, channels: []channel{
		named(cmykChannel, "cyan"), named(cmykChannel, "magenta"),
		named(cmykChannel, "yellow"), named(cmykChannel, "black")}},
}

var rgbTriple = []channel{named(unitChannel, "red"), named(unitChannel, "green"), named(unitChannel, "blue")}

// colorFuncSpecs are the predefined spaces of color().
var colorFuncSpecs = map[string]funcSpec{
	"srgb": {space: RGB, channels: rgbTriple},
	"srgb-linear": {space: RGB, channels: rgbTriple, convert: func(v []float64) []float64 {
		r, g, b := srgbTransfer.delinearize(v[0], v[1], v[2])
		return []float64{r, g, b}
	}},
	"display-p3":   {space: DisplayP3, channels: rgbTriple},
	"rec2020":      {space: Rec2020, channels: rgbTriple},
	"prophoto-rgb": {space: ProPhotoRGB, channels: rgbTriple},
	"a98-rgb":      {space: A98RGB, channels: rgbTriple},
	"xyz":          {space: XYZD65, channels: []channel{named(xyzChannel, "x"), named(xyzChannel, "y"), named(xyzChannel, "z")}},
	"xyz-d65":      {space: XYZD65, channels: []channel{named(xyzChannel, "x"), named(xyzChannel, "y"), named(xyzChannel, "z")}},
	"xyz-d50":      {space: XYZD50, channels: []channel{named(xyzChannel, "x"), named(xyzChannel, "y"), named(xyzChannel, "z")}},
}

func (p Parser) parseFunc(name, rest string) (Color, error) {
	inner, ok := strings.CutSuffix(strings.TrimSpace(rest), ")")
	if !ok {
		return Color{}, fmt.Errorf("%w: missing closing parenthesis", ErrInvalidColorSyntax)
	}
	if strings.ContainsAny(inner, "()") {
		return Color{}, fmt.Errorf("%w: nested functions are not supported", ErrInvalidColorSyntax)
	}
	values, alpha, err := splitArgs(inner)
	if err != nil {
		return Color{}, err
	}

	var spec funcSpec
	if name == "color" {
		if len(values) == 0 {
			return Color{}, fmt.Errorf("%w: color() needs a color space", ErrInvalidColorSyntax)
		}
		spec, ok = colorFuncSpecs[values[0]]
		if !ok {
			return Color{}, fmt.Errorf("%w: color(%s ...)", ErrUnsupportedColorSpace, values[0])
		}
		values = values[1:]
	} else if spec, ok = funcSpecs[name]; !ok {
		return Color{}, fmt.Errorf("%w: unknown function %s()", ErrInvalidColorSyntax, name)
	}

	n := len(spec.channels)
	if alpha == "" && len(values) == n+1 {
		// legacy form: the trailing positional value is alpha
		alpha, values = values[n], values[:n]
	}
	if len(values) != n {
		return Color{}, fmt.Errorf("%w: %s() takes %d components, got %d", ErrInvalidColorSyntax, name, n, len(values))
	}

	comps := make([]float64, n)
	for i, ch := range spec.channels {
		if comps[i], err = p.component(values[i], ch); err != nil {
			return Color{}, err
		}
	}
	if spec.convert != nil {
		comps = spec.convert(comps)
	}
	c, err := New(spec.space, comps...)
	if err != nil {
		return Color{}, err
	}
	if alpha != "" {
		a, err := p.component(alpha, alphaChannel)
		if err != nil {
			return Color{}, err
		}
		c = c.WithAlpha(a)
	}
	return c, nil
}

// splitArgs splits a function body into positional values and an optional
// "/"-separated alpha. Values may be separated by commas or whitespace.
func splitArgs(inner string) (values []string, alpha string, err error) {
	left := inner
	if i := strings.IndexByte(inner, '/'); i >= 0 {
		left = inner[:i]
		alpha = strings.TrimSpace(inner[i+1:])
		if alpha == "" || strings.ContainsAny(alpha, "/,") || strings.IndexFunc(alpha, unicode.IsSpace) >= 0 {
			return nil, "", fmt.Errorf("%w: malformed alpha %q", ErrInvalidColorSyntax, alpha)
		}
	}
	if strings.Contains(left, ",") {
		for _, part := range strings.Split(left, ",") {
			part = strings.TrimSpace(part)
			if part == "" || strings.IndexFunc(part, unicode.IsSpace) >= 0 {
				// color() mixes a space identifier with commas: allow "srgb 1, 0, 0"
				fields := strings.Fields(part)
				if part == "" || len(values) > 0 {
					return nil, "", fmt.Errorf("%w: malformed argument list %q", ErrInvalidColorSyntax, inner)
				}
				values = append(values, fields...)
				continue
			}
			values = append(values, part)
		}
	} else {
		values = strings.Fields(left)
	}
	if len(values) == 0 {
		return nil, "", fmt.Errorf("%w: no arguments", ErrInvalidColorSyntax)
	}
	return values, alpha, nil
}

// component converts one argument token to its native value, applying the
// range policy.
func (p Parser) component(tok string, ch channel) (float64, error) {
	if tok == "none" {
		return 0, nil
	}
	if ch.hue {
		h, err := parseHue(tok)
		if err != nil {
			return 0, err
		}
		return normalizeHue(h), nil
	}
	var v float64
	if num, ok := strings.CutSuffix(tok, "%"); ok {
		f, err := parseNumber(num)
		if err != nil {
			return 0, err
		}
		v = f / 100 * ch.pct
	} else {
		f, err := parseNumber(tok)
		if err != nil {
			return 0, err
		}
		v = f / ch.unit
	}
	return p.fit(v, ch)
}

// fit applies the range policy: clamp, or reject in strict mode.
func (p Parser) fit(v float64, ch channel) (float64, error) {
	if v >= ch.lo && v <= ch.hi {
		return v, nil
	}
	if p.Strict {
		return 0, fmt.Errorf("%w: %s %g outside [%g, %g]", ErrInvalidComponentRange, ch.name, v, ch.lo, ch.hi)
	}
	return clamp(v, ch.lo, ch.hi), nil
}

// hueUnits maps angle units to degrees-per-unit. "grad" is listed before
// "rad" so that suffix matching picks the longer unit.
var hueUnits = []struct {
	suffix string
	scale  float64
}{
	{"deg", 1},
	{"grad", 0.9},
	{"rad", 180 / math.Pi},
	{"turn", 360},
}

// parseHue parses an angle. Unrecognized unit suffixes are treated as
// degrees. The angle is reduced to one turn in its own unit before scaling,
// so large finite hues such as 1e308turn stay finite.
func parseHue(tok string) (float64, error) {
	if strings.HasSuffix(tok, "%") {
		return 0, fmt.Errorf("%w: hue cannot be a percentage", ErrInvalidColorSyntax)
	}
	for _, u := range hueUnits {
		if num, ok := strings.CutSuffix(tok, u.suffix); ok {
			f, err := parseNumber(num)
			if err != nil {
				return 0, err
			}
			return math.Mod(f, 360/u.scale) * u.scale, nil
		}
	}
	num := strings.TrimRightFunc(tok, func(r rune) bool { return r >= 'a' && r <= 'z' })
	return parseNumber(num)
}

// parseNumber accepts CSS numbers: optional sign, digits, optional
// fraction and exponent. Hex floats, underscores, "inf" and "nan" are
// rejected.
func parseNumber(s string) (float64, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: missing number", ErrInvalidColorSyntax)
	}
	digits := false
	for i, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits = true
		case r == '.' || r == 'e' || r == 'E':
		case (r == '+' || r == '-') && (i == 0 || s[i-1] == 'e' || s[i-1] == 'E'):
		default:
			return 0, fmt.Errorf("%w: bad number %q", ErrInvalidColorSyntax, s)
		}
	}
	if !digits {
		return 0, fmt.Errorf("%w: bad number %q", ErrInvalidColorSyntax, s)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: bad number %q", ErrInvalidColorSyntax, s)
	}
	return f, nil
}
