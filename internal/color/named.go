package color

import (
	stdcolor "image/color"
	"sort"

	"golang.org/x/image/colornames"
)

// extraNames holds CSS Level 4 names missing from the SVG 1.1 list that
// colornames is generated from.
var extraNames = map[string]stdcolor.RGBA{
	"rebeccapurple": {0x66, 0x33, 0x99, 0xff},
}

// names is the read-only lookup table behind NamedColor, keyed by
// lower-case name. "transparent" is handled separately since it carries
// alpha 0.
var names = func() map[string]RGBA8 {
	m := make(map[string]RGBA8, len(colornames.Map)+len(extraNames))
	for _, src := range []map[string]stdcolor.RGBA{colornames.Map, extraNames} {
		for name, c := range src {
			m[name] = RGBA8{R: c.R, G: c.G, B: c.B, A: 255}
		}
	}
	return m
}()

var sortedNames = func() []string {
	out := make([]string, 0, len(names)+1)
	for name := range names {
		out = append(out, name)
	}
	out = append(out, "transparent")
	sort.Strings(out)
	return out
}()

// NamedColor looks up a CSS named color. name must already be lower case.
// "transparent" is black with alpha 0.
func NamedColor(name string) (Color, bool) {
	if name == "transparent" {
		return FromRGB8(0, 0, 0).WithAlpha(0), true
	}
	v, ok := names[name]
	if !ok {
		return Color{}, false
	}
	return FromRGB8(v.R, v.G, v.B), true
}

// Names returns every recognized color name, sorted. The slice is a copy.
func Names() []string {
	out := make([]string, len(sortedNames))
	copy(out, sortedNames)
	return out
}

// NameOf returns the CSS name whose value exactly equals the 8-bit sRGB
// form of c, preferring the alphabetically first of aliases such as
// "aqua"/"cyan". Colors with alpha below 1 have no name except fully
// transparent black.
func NameOf(c Color) (string, bool) {
	v := c.RGB8()
	if v.A == 0 && v.R == 0 && v.G == 0 && v.B == 0 {
		return "transparent", true
	}
	if v.A != 255 {
		return "", false
	}
	for _, name := range sortedNames {
		if n, ok := names[name]; ok && n.R == v.R && n.G == v.G && n.B == v.B {
			return name, true
		}
	}
	return "", false
}
