package color

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHexRed(t *testing.T) {
	c, err := Parse("#ff0000")
	require.NoError(t, err)
	assert.Equal(t, RGB, c.Space())
	assert.Equal(t, RGBA8{R: 255, G: 0, B: 0, A: 255}, c.RGB8())
}

func TestParsePercentMatchesHex(t *testing.T) {
	hex, err := Parse("#ff0000")
	require.NoError(t, err)
	pct, err := Parse("rgb(100%, 0%, 0%)")
	require.NoError(t, err)
	assert.Equal(t, hex, pct)
}

func TestParseForms(t *testing.T) {
	tests := []struct {
		in    string
		space Space
		comps []float64
		alpha float64 // -1 when no alpha is expected
	}{
		{"#abc", RGB, []float64{0xaa / 255.0, 0xbb / 255.0, 0xcc / 255.0}, -1},
		{"#11223380", RGB, []float64{0x11 / 255.0, 0x22 / 255.0, 0x33 / 255.0}, 128 / 255.0},
		{"#fff8", RGB, []float64{1, 1, 1}, 0x88 / 255.0},
		{"rgb(255 0 0)", RGB, []float64{1, 0, 0}, -1},
		{"rgba(255, 0, 0, 0.5)", RGB, []float64{1, 0, 0}, 0.5},
		{"rgb(255 0 0 / 50%)", RGB, []float64{1, 0, 0}, 0.5},
		{"  RGB( 0 , 255 , 0 )  ", RGB, []float64{0, 1, 0}, -1},
		{"rgb(none 0 255)", RGB, []float64{0, 0, 1}, -1},
		{"hsl(120deg 100% 50%)", HSL, []float64{120, 100, 50}, -1},
		{"hsla(120, 50%, 25%, .25)", HSL, []float64{120, 50, 25}, 0.25},
		{"hsl(0.5turn 10% 20%)", HSL, []float64{180, 10, 20}, -1},
		{"hsl(200grad 10% 20%)", HSL, []float64{180, 10, 20}, -1},
		{"hsl(-90 10% 20%)", HSL, []float64{270, 10, 20}, -1},
		{"hsl(400 10% 20%)", HSL, []float64{40, 10, 20}, -1},
		{"hsl(30foo 10% 20%)", HSL, []float64{30, 10, 20}, -1},
		{"hwb(0 0% 0%)", RGB, []float64{1, 0, 0}, -1},
		{"hwb(0 60% 40%)", RGB, []float64{0.6, 0.6, 0.6}, -1},
		{"lab(50% 20 -30)", Lab, []float64{50, 20, -30}, -1},
		{"lab(50 100% -100%)", Lab, []float64{50, 125, -125}, -1},
		{"lch(60 100% 90)", LCH, []float64{60, 150, 90}, -1},
		{"oklab(50% 0.1 -0.1)", OKLab, []float64{0.5, 0.1, -0.1}, -1},
		{"oklab(0.5 100% 0)", OKLab, []float64{0.5, 0.4, 0}, -1},
		{"oklch(70% 0.1 2turn)", OKLCH, []float64{0.7, 0.1, 0}, -1},
		{"oklch(0.7 50% 45 / 0.3)", OKLCH, []float64{0.7, 0.2, 45}, 0.3},
		{"color(display-p3 1 0 0)", DisplayP3, []float64{1, 0, 0}, -1},
		{"color(rec2020 0.5 50% 0)", Rec2020, []float64{0.5, 0.5, 0}, -1},
		{"color(prophoto-rgb 0.1 0.2 0.3 / 1)", ProPhotoRGB, []float64{0.1, 0.2, 0.3}, 1},
		{"color(a98-rgb 0 0 1)", A98RGB, []float64{0, 0, 1}, -1},
		{"color(xyz 0.95047 1 1.08883)", XYZD65, []float64{0.95047, 1, 1.08883}, -1},
		{"color(xyz-d50 0.2 0.3 0.4)", XYZD50, []float64{0.2, 0.3, 0.4}, -1},
		{"color(srgb 1 0.5 0)", RGB, []float64{1, 0.5, 0}, -1},
		{"color(srgb-linear 1 0 0)", RGB, []float64{1, 0, 0}, -1},
		{"device-cmyk(0 1 1 0)", CMYK, []float64{0, 100, 100, 0}, -1},
		{"device-cmyk(0% 0% 0% 100% / 0.5)", CMYK, []float64{0, 0, 0, 100}, 0.5},
		{"hsv(240 100% 100%)", HSV, []float64{240, 100, 100}, -1},
		{"hsb(240, 50%, 50%)", HSV, []float64{240, 50, 50}, -1},
		{"hsi(0 100% 33%)", HSI, []float64{0, 100, 33}, -1},
		{"red", RGB, []float64{1, 0, 0}, -1},
		{"RebeccaPurple", RGB, []float64{0x66 / 255.0, 0x33 / 255.0, 0x99 / 255.0}, -1},
		{"transparent", RGB, []float64{0, 0, 0}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.space, c.Space())
			assert.InDeltaSlice(t, tt.comps, c.Components(), 1e-9)
			a, ok := c.Alpha()
			if tt.alpha < 0 {
				assert.False(t, ok, "unexpected alpha %v", a)
			} else {
				assert.True(t, ok)
				assert.InDelta(t, tt.alpha, a, 1e-9)
			}
		})
	}
}

func TestParseSyntaxErrors(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"notacolor",
		"#12345",
		"#ggg",
		"#",
		"rgb(1 2 3",
		"rgb(1 2)",
		"rgb(1 2 3 4 5)",
		"rgb(1,,2,3)",
		"rgb(1, 2, 3,)",
		"rgb(1 2 3 /)",
		"rgb(1 2 3 / 0.5 / 0.5)",
		"rgb(calc(1) 2 3)",
		"rgb(1 2 3) trailing",
		"rgb(0x10 0 0)",
		"rgb(inf 0 0)",
		"rgb(nan 0 0)",
		"rgb(1e 0 0)",
		"hsl(50% 10% 10%)",
		"foo(1 2 3)",
	}
	for _, in := range inputs {
		_, err := Parse(in)
		assert.True(t, errors.Is(err, ErrInvalidColorSyntax), "%q: got %v", in, err)
	}
}

func TestParseUnknownColorSpace(t *testing.T) {
	_, err := Parse("color(cmyk 1 2 3)")
	assert.True(t, errors.Is(err, ErrUnsupportedColorSpace))
}

func TestParseRangePolicy(t *testing.T) {
	tests := []struct {
		in    string
		comps []float64
		alpha float64
	}{
		{"rgb(300, -5, 128)", []float64{1, 0, 128 / 255.0}, -1},
		{"hsl(10 150% -3%)", []float64{10, 100, 0}, -1},
		{"lab(120 200 -200)", []float64{100, 128, -128}, -1},
		{"oklch(2 0.9 10)", []float64{1, 0.5, 10}, -1},
		{"rgb(0 0 0 / 1.5)", []float64{0, 0, 0}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := Parse(tt.in)
			require.NoError(t, err)
			assert.InDeltaSlice(t, tt.comps, c.Components(), 1e-9)
			if tt.alpha >= 0 {
				assert.Equal(t, tt.alpha, c.Opacity())
			}

			_, err = ParseStrict(tt.in)
			assert.True(t, errors.Is(err, ErrInvalidComponentRange), "strict %q: got %v", tt.in, err)
		})
	}
}

func TestParseHugeHueWraps(t *testing.T) {
	tests := []struct {
		in  string
		hue int
	}{
		{"hsl(1e308turn 50% 50%)", 0},
		{"hsl(-1e308grad 50% 50%)", 0},
		{"lch(50 20 1e308rad)", 2},
		{"oklch(0.5 0.1 1e308deg)", 2},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			for _, p := range []Parser{{}, {Strict: true}} {
				c, err := p.Parse(tt.in)
				require.NoError(t, err)
				h := c.Component(tt.hue)
				assert.False(t, math.IsNaN(h) || math.IsInf(h, 0), "hue %v", h)
				assert.GreaterOrEqual(t, h, 0.0)
				assert.Less(t, h, 360.0)
			}
		})
	}

	c, err := Parse("hsl(1.25turn 50% 50%)")
	require.NoError(t, err)
	assert.InDelta(t, 90.0, c.Component(0), 1e-9)
}

func TestParseStrictAgreesInRange(t *testing.T) {
	inputs := []string{
		"#336699", "rgb(10 20 30 / 0.5)", "hsl(300 40% 60%)", "lab(40% -30 60)",
		"oklch(0.6 0.2 300)", "color(display-p3 0.2 0.4 0.6)", "hsl(720 0% 0%)",
	}
	for _, in := range inputs {
		loose, err := Parse(in)
		require.NoError(t, err, in)
		strict, err := ParseStrict(in)
		require.NoError(t, err, in)
		assert.Equal(t, loose, strict, in)
	}
}

func TestParseToRGB(t *testing.T) {
	v, ok := ParseToRGB("hsl(120 100% 50%)")
	assert.True(t, ok)
	assert.Equal(t, RGBA8{R: 0, G: 255, B: 0, A: 255}, v)

	v, ok = ParseToRGB("color(display-p3 1 0 0)")
	assert.True(t, ok)
	assert.Equal(t, uint8(255), v.R)

	_, ok = ParseToRGB("nope")
	assert.False(t, ok)
}

func TestRGBA8(t *testing.T) {
	v := RGBA8{R: 16, G: 32, B: 64, A: 128}
	data, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"r":16,"g":32,"b":64,"a":128}`, string(data))

	c := v.Color()
	assert.Equal(t, RGB, c.Space())
	assert.InDelta(t, 128.0/255, c.Opacity(), 1e-12)
	assert.Equal(t, v, c.RGB8())

	_, ok := RGBA8{R: 1, G: 2, B: 3, A: 255}.Color().Alpha()
	assert.False(t, ok, "opaque triple should carry no alpha")

	var zero Color
	assert.Equal(t, RGB, zero.Space())
	_, ok = zero.Alpha()
	assert.False(t, ok)
	assert.Equal(t, RGBA8{A: 255}, zero.RGB8())
}

func TestIsValidCSSColor(t *testing.T) {
	valid := []string{"#fff", "red", "Transparent", "rgb(1 2 3)", "oklch(0.5 0.1 10)", "color(xyz-d50 0 0 0)", "device-cmyk(0 0 0 1)"}
	for _, s := range valid {
		assert.True(t, IsValidCSSColor(s), s)
	}
	invalid := []string{"", "hsv(0 100% 100%)", "hsi(0 0% 0%)", "#ff", "rgb(1 2)"}
	for _, s := range invalid {
		assert.False(t, IsValidCSSColor(s), s)
	}
}
