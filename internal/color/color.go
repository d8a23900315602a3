package color

import (
	"fmt"
	"math"
)

// Color is an immutable color value: a fixed-length component vector tagged
// with the space it is expressed in, plus an optional alpha.
//
// Components are stored in each space's native range (see the package
// documentation). The zero Color is opaque black in RGB with no explicit
// alpha. Color values are small and are passed and returned by value; every
// conversion returns a new Color.
type Color struct {
	space    Space
	comps    [4]float64
	alpha    float64
	hasAlpha bool
}

// New builds a Color from components in the native range of space.
//
// Hue components are wrapped into [0,360). New fails with
// ErrUnsupportedColorSpace for an unknown space or a component count that
// does not match the space, and with ErrInvalidComponentRange for NaN or
// infinite components. No other range checks are applied; Parser is the
// boundary that clamps or rejects out-of-range input.
func New(space Space, components ...float64) (Color, error) {
	n := space.Len()
	if n == 0 {
		return Color{}, fmt.Errorf("%w: %s", ErrUnsupportedColorSpace, space)
	}
	if len(components) != n {
		return Color{}, fmt.Errorf("%w: %s takes %d components, got %d",
			ErrUnsupportedColorSpace, space, n, len(components))
	}
	c := Color{space: space}
	for i, v := range components {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Color{}, fmt.Errorf("%w: %s component %d is %v", ErrInvalidComponentRange, space, i, v)
		}
		c.comps[i] = v
	}
	if h := space.HueIndex(); h >= 0 {
		c.comps[h] = normalizeHue(c.comps[h])
	}
	return c, nil
}

// NewWithAlpha is New followed by WithAlpha. A NaN alpha is rejected.
func NewWithAlpha(space Space, alpha float64, components ...float64) (Color, error) {
	if math.IsNaN(alpha) {
		return Color{}, fmt.Errorf("%w: alpha is NaN", ErrInvalidComponentRange)
	}
	c, err := New(space, components...)
	if err != nil {
		return Color{}, err
	}
	return c.WithAlpha(alpha), nil
}

// MustNew is like New but panics on error. It is intended for package-level
// tables and tests with literal components.
func MustNew(space Space, components ...float64) Color {
	c, err := New(space, components...)
	if err != nil {
		panic(err)
	}
	return c
}

// FromRGB8 returns the sRGB color for 8-bit channel values.
func FromRGB8(r, g, b uint8) Color {
	return Color{space: RGB, comps: [4]float64{float64(r) / 255, float64(g) / 255, float64(b) / 255}}
}

// Space returns the space the components are expressed in.
func (c Color) Space() Space { return c.space }

// Components returns a copy of the component vector.
func (c Color) Components() []float64 {
	n := c.space.Len()
	out := make([]float64, n)
	copy(out, c.comps[:n])
	return out
}

// Component returns component i, or 0 when i is out of range.
func (c Color) Component(i int) float64 {
	if i < 0 || i >= c.space.Len() {
		return 0
	}
	return c.comps[i]
}

// Alpha returns the alpha value and whether one was set. A color without
// explicit alpha is fully opaque.
func (c Color) Alpha() (float64, bool) {
	if !c.hasAlpha {
		return 1, false
	}
	return c.alpha, true
}

// Opacity returns alpha, or 1 when none is set.
func (c Color) Opacity() float64 {
	a, _ := c.Alpha()
	return a
}

// WithAlpha returns a copy of c with alpha clamped to [0,1].
func (c Color) WithAlpha(a float64) Color {
	if math.IsNaN(a) {
		a = 1
	}
	c.alpha = clamp01(a)
	c.hasAlpha = true
	return c
}

// WithoutAlpha returns a copy of c with alpha removed.
func (c Color) WithoutAlpha() Color {
	c.alpha = 0
	c.hasAlpha = false
	return c
}

// Equal reports whether two colors have the same space, components and alpha.
func (c Color) Equal(o Color) bool {
	return c == o
}

// RGBA8 is an 8-bit sRGB triple with alpha, the representation handed to
// callers that only deal in web colors.
type RGBA8 struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// Color returns the sRGB Color for an 8-bit triple. Alpha is attached only
// when it is not fully opaque.
func (v RGBA8) Color() Color {
	c := FromRGB8(v.R, v.G, v.B)
	if v.A != 255 {
		c = c.WithAlpha(float64(v.A) / 255)
	}
	return c
}

// SRGB returns the color as clipped, encoded sRGB channels in [0,1].
//
// This is the total accessor used by the metrics packages: every Color
// built through New has finite components, so the conversion cannot fail.
func (c Color) SRGB() (r, g, b float64) {
	r, g, b = toRGB(c)
	return clamp01(r), clamp01(g), clamp01(b)
}

// RGB8 returns the color as an 8-bit sRGB triple, clipping out-of-gamut
// channels. Alpha is 255 when the color has none.
func (c Color) RGB8() RGBA8 {
	r, g, b := c.SRGB()
	return RGBA8{R: to8(r), G: to8(g), B: to8(b), A: to8(c.Opacity())}
}

func to8(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}

// InGamut reports whether c is representable in sRGB without clipping.
// A small tolerance absorbs floating point noise from matrix round trips.
func InGamut(c Color) bool {
	const eps = 1e-6
	r, g, b := toRGB(c)
	for _, v := range [3]float64{r, g, b} {
		if v < -eps || v > 1+eps {
			return false
		}
	}
	return true
}
