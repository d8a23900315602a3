package color

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRGBToHSLRed(t *testing.T) {
	h, s, l := RGBToHSL(1, 0, 0)
	assert.Equal(t, 0.0, h)
	assert.Equal(t, 100.0, s)
	assert.Equal(t, 50.0, l)
}

func TestRGBToLabWhite(t *testing.T) {
	l, a, b := RGBToLab(1, 1, 1)
	assert.InDelta(t, 100.0, l, 0.1)
	assert.InDelta(t, 0.0, a, 0.1)
	assert.InDelta(t, 0.0, b, 0.1)
}

func TestCMYKBlack(t *testing.T) {
	c, m, y, k := RGBToCMYK(0, 0, 0)
	assert.Equal(t, []float64{0, 0, 0, 100}, []float64{c, m, y, k})

	r, g, b := CMYKToRGB(0, 0, 0, 100)
	assert.Equal(t, []float64{0, 0, 0}, []float64{r, g, b})
}

func TestPrimitiveScenarios(t *testing.T) {
	tests := []struct {
		name    string
		fn      func(r, g, b float64) (float64, float64, float64)
		in      [3]float64
		want    [3]float64
		epsilon float64
	}{
		{"hsl green", RGBToHSL, [3]float64{0, 1, 0}, [3]float64{120, 100, 50}, 1e-9},
		{"hsl gray", RGBToHSL, [3]float64{0.5, 0.5, 0.5}, [3]float64{0, 0, 50}, 1e-9},
		{"hsv blue", RGBToHSV, [3]float64{0, 0, 1}, [3]float64{240, 100, 100}, 1e-9},
		{"hsi red", RGBToHSI, [3]float64{1, 0, 0}, [3]float64{0, 100, 100.0 / 3}, 1e-9},
		{"hwb white", RGBToHWB, [3]float64{1, 1, 1}, [3]float64{0, 100, 0}, 1e-9},
		{"xyz white", RGBToXYZ, [3]float64{1, 1, 1}, WhiteD65, 1e-6},
		{"oklab white", RGBToOKLab, [3]float64{1, 1, 1}, [3]float64{1, 0, 0}, 1e-4},
		{"lab red", RGBToLab, [3]float64{1, 0, 0}, [3]float64{53.24, 80.09, 67.20}, 0.05},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, z := tt.fn(tt.in[0], tt.in[1], tt.in[2])
			assert.InDeltaSlice(t, tt.want[:], []float64{x, y, z}, tt.epsilon)
		})
	}
}

func TestInversePrimitives(t *testing.T) {
	samples := [][3]float64{
		{0, 0, 0}, {1, 1, 1}, {1, 0, 0}, {0.2, 0.6, 0.9}, {0.01, 0.02, 0.5}, {0.75, 0.75, 0.1},
	}
	pairs := []struct {
		name string
		to   func(r, g, b float64) (float64, float64, float64)
		from func(a, b, c float64) (float64, float64, float64)
	}{
		{"hsl", RGBToHSL, HSLToRGB},
		{"hsv", RGBToHSV, HSVToRGB},
		{"hsi", RGBToHSI, HSIToRGB},
		{"hwb", RGBToHWB, HWBToRGB},
		{"xyz", RGBToXYZ, XYZToRGB},
		{"lab", RGBToLab, LabToRGB},
		{"oklab", RGBToOKLab, OKLabToRGB},
	}
	for _, p := range pairs {
		t.Run(p.name, func(t *testing.T) {
			for _, s := range samples {
				a, b, c := p.to(s[0], s[1], s[2])
				r, g, bl := p.from(a, b, c)
				assert.InDeltaSlice(t, s[:], []float64{r, g, bl}, 1e-5, "%v", s)
			}
		})
	}
}

func TestWhitePointAdaptation(t *testing.T) {
	x, y, z := D65ToD50(WhiteD65[0], WhiteD65[1], WhiteD65[2])
	assert.InDeltaSlice(t, WhiteD50[:], []float64{x, y, z}, 1e-3)

	x, y, z = D50ToD65(D65ToD50(0.3, 0.4, 0.5))
	assert.InDeltaSlice(t, []float64{0.3, 0.4, 0.5}, []float64{x, y, z}, 1e-7)
}

func TestLinearize(t *testing.T) {
	assert.Equal(t, 0.0, Linearize(0))
	assert.Equal(t, 1.0, Linearize(1))
	assert.InDelta(t, 0.04045/12.92, Linearize(0.04045), 1e-15)
	// sign preserving
	assert.Equal(t, -Linearize(0.5), Linearize(-0.5))
	for _, v := range []float64{0, 0.001, 0.04, 0.2, 0.5, 0.99, 1} {
		assert.InDelta(t, v, Delinearize(Linearize(v)), 1e-12)
	}
}

func TestHuePeriodicity(t *testing.T) {
	hues := []float64{0, 37.5, 120, 200, 359.9}
	for _, h := range hues {
		for _, k := range []float64{-2, -1, 1, 3} {
			shift := h + 360*k

			r1, g1, b1 := HSLToRGB(h, 80, 40)
			r2, g2, b2 := HSLToRGB(shift, 80, 40)
			assert.InDeltaSlice(t, []float64{r1, g1, b1}, []float64{r2, g2, b2}, 1e-9, "hsl h=%v", shift)

			r1, g1, b1 = HSVToRGB(h, 60, 90)
			r2, g2, b2 = HSVToRGB(shift, 60, 90)
			assert.InDeltaSlice(t, []float64{r1, g1, b1}, []float64{r2, g2, b2}, 1e-9, "hsv h=%v", shift)

			l1, a1, bb1 := LCHToLab(50, 30, h)
			l2, a2, bb2 := LCHToLab(50, 30, shift)
			assert.InDeltaSlice(t, []float64{l1, a1, bb1}, []float64{l2, a2, bb2}, 1e-9, "lch h=%v", shift)

			c1, err := New(HSL, shift, 80, 40)
			require.NoError(t, err)
			assert.InDelta(t, h, c1.Component(0), 1e-9)
		}
	}
}

func TestConvertAchromaticHue(t *testing.T) {
	gray := FromRGB8(128, 128, 128)
	for _, s := range []Space{HSL, HSV, HSI, LCH, OKLCH} {
		c, err := gray.To(s)
		require.NoError(t, err)
		assert.Equal(t, 0.0, c.Component(s.HueIndex()), "%s hue", s)
	}
}

func TestConvertClipsSRGBTargets(t *testing.T) {
	// pure Display P3 red lies outside sRGB
	p3red := MustNew(DisplayP3, 1, 0, 0)
	assert.False(t, InGamut(p3red))

	rgb, err := Convert(p3red, RGB, FullPrecision)
	require.NoError(t, err)
	for _, v := range rgb.Components() {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
	}

	// Lab keeps the out-of-gamut color; back to P3 recovers it
	lab, err := p3red.To(Lab)
	require.NoError(t, err)
	back, err := lab.To(DisplayP3)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 0, 0}, back.Components(), 1e-4)
}

func TestConvertPrecision(t *testing.T) {
	c := MustNew(RGB, 0.5, 0.25, 0.123456)

	rounded, err := Convert(c, RGB, DefaultPrecision)
	require.NoError(t, err)
	assert.Equal(t, opaque(128, 64, 31), rounded.RGB8())
	assert.InDelta(t, 128.0, rounded.Component(0)*255, 1e-9)

	full, err := Convert(c, RGB, FullPrecision)
	require.NoError(t, err)
	assert.Equal(t, c, full)

	lab, err := Convert(FromRGB8(255, 0, 0), Lab, 2)
	require.NoError(t, err)
	assert.Equal(t, 53.24, lab.Component(0))

	lab1, err := Convert(FromRGB8(255, 0, 0), Lab, 1)
	require.NoError(t, err)
	assert.Equal(t, 53.2, lab1.Component(0))
}

// opaque is shorthand for an opaque 8-bit triple.
func opaque(r, g, b uint8) RGBA8 { return RGBA8{R: r, G: g, B: b, A: 255} }

func TestConvertCarriesAlpha(t *testing.T) {
	c := FromRGB8(10, 20, 30).WithAlpha(0.25)
	out, err := Convert(c, OKLCH, DefaultPrecision)
	require.NoError(t, err)
	a, ok := out.Alpha()
	assert.True(t, ok)
	assert.Equal(t, 0.25, a)
}

func TestConvertErrors(t *testing.T) {
	_, err := Convert(FromRGB8(1, 2, 3), Space(200), DefaultPrecision)
	assert.True(t, errors.Is(err, ErrUnsupportedColorSpace))

	bad := Color{space: RGB, comps: [4]float64{math.NaN(), 0, 0}}
	_, err = Convert(bad, HSL, DefaultPrecision)
	assert.True(t, errors.Is(err, ErrInvalidComponentRange))

	_, err = New(RGB, 1, 2)
	assert.True(t, errors.Is(err, ErrUnsupportedColorSpace))

	_, err = New(Lab, 50, math.Inf(1), 0)
	assert.True(t, errors.Is(err, ErrInvalidComponentRange))

	_, err = New(Space(99), 1, 2, 3)
	assert.True(t, errors.Is(err, ErrUnsupportedColorSpace))
}

// Pairs without a direct route go through the encoded sRGB hub and must
// agree with composing the primitives by hand.
func TestConvertThroughHub(t *testing.T) {
	tests := []struct {
		name string
		from Color
		to   Space
		want func() (float64, float64, float64)
	}{
		{"hsl to lab", MustNew(HSL, 120, 100, 50), Lab, func() (float64, float64, float64) { return RGBToLab(0, 1, 0) }},
		{"hsv to oklab", MustNew(HSV, 240, 50, 80), OKLab, func() (float64, float64, float64) { return RGBToOKLab(HSVToRGB(240, 50, 80)) }},
		{"cmyk to xyz-d50", MustNew(CMYK, 0, 50, 100, 20), XYZD50, func() (float64, float64, float64) {
			return D65ToD50(RGBToXYZ(CMYKToRGB(0, 50, 100, 20)))
		}},
		{"lab to hsl", MustNew(Lab, 60, 20, -30), HSL, func() (float64, float64, float64) {
			r, g, b := LabToRGB(60, 20, -30)
			return RGBToHSL(clamp01(r), clamp01(g), clamp01(b))
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Convert(tt.from, tt.to, FullPrecision)
			require.NoError(t, err)
			assert.Equal(t, tt.to, out.Space())
			x, y, z := tt.want()
			assert.InDeltaSlice(t, []float64{x, y, z}, out.Components()[:3], 1e-9)
		})
	}
}

// TestConvertRoundTrip checks rgb -> X -> rgb within one 8-bit step for
// every space over the whole 8-bit cube (every fifth value with -short).
func TestConvertRoundTrip(t *testing.T) {
	stride := 1
	if testing.Short() {
		stride = 5
	}
	for _, s := range Spaces {
		if s == RGB {
			continue
		}
		s := s
		t.Run(s.String(), func(t *testing.T) {
			t.Parallel()
			for r := 0; r < 256; r += stride {
				for g := 0; g < 256; g += stride {
					for b := 0; b < 256; b += stride {
						src := FromRGB8(uint8(r), uint8(g), uint8(b))
						mid, err := Convert(src, s, DefaultPrecision)
						if err != nil {
							t.Fatalf("convert %v to %s: %v", src, s, err)
						}
						got := mid.RGB8()
						if d := channelDiff(src.RGB8(), got); d > 1 {
							t.Fatalf("rgb(%d %d %d) -> %s -> %+v: off by %d", r, g, b, mid, got, d)
						}
					}
				}
			}
		})
	}
}

func channelDiff(a, b RGBA8) int {
	d := 0
	for _, p := range [][2]uint8{{a.R, b.R}, {a.G, b.G}, {a.B, b.B}} {
		v := int(p[0]) - int(p[1])
		if v < 0 {
			v = -v
		}
		if v > d {
			d = v
		}
	}
	return d
}

func TestParseSpace(t *testing.T) {
	tests := []struct {
		in   string
		want Space
	}{
		{"srgb", RGB},
		{"rgb", RGB},
		{"hsb", HSV},
		{"device-cmyk", CMYK},
		{"xyz", XYZD65},
		{"xyz-d50", XYZD50},
		{"p3", DisplayP3},
		{"adobe-rgb", A98RGB},
		{"prophoto-rgb", ProPhotoRGB},
		{"oklch", OKLCH},
	}
	for _, tt := range tests {
		got, err := ParseSpace(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
	_, err := ParseSpace("ycbcr")
	assert.True(t, errors.Is(err, ErrUnsupportedColorSpace))

	for _, s := range Spaces {
		got, err := ParseSpace(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
}
