package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		c    Color
		opts FormatOptions
		want string
	}{
		{FromRGB8(255, 0, 0), FormatOptions{Precision: DefaultPrecision}, "rgb(255 0 0)"},
		{FromRGB8(255, 0, 0).WithAlpha(0.5), FormatOptions{Precision: DefaultPrecision}, "rgb(255 0 0 / 0.5)"},
		{FromRGB8(255, 0, 0).WithAlpha(0.5), FormatOptions{Precision: DefaultPrecision, Style: StyleLegacy}, "rgba(255, 0, 0, 0.5)"},
		{FromRGB8(1, 2, 3), FormatOptions{Precision: DefaultPrecision, Style: StyleLegacy}, "rgb(1, 2, 3)"},
		{FromRGB8(255, 0, 0), FormatOptions{Style: StyleHex}, "#ff0000"},
		{FromRGB8(255, 0, 0).WithAlpha(0.5), FormatOptions{Style: StyleHex}, "#ff000080"},
		{MustNew(HSL, 120, 50, 25), FormatOptions{Precision: DefaultPrecision}, "hsl(120 50% 25%)"},
		{MustNew(HSL, 120, 50, 25).WithAlpha(0.25), FormatOptions{Precision: DefaultPrecision, Style: StyleLegacy}, "hsla(120, 50%, 25%, 0.25)"},
		{MustNew(HSL, 359.96, 50, 25), FormatOptions{Precision: 1}, "hsl(0 50% 25%)"},
		{MustNew(HSV, 10, 20, 30), FormatOptions{Precision: DefaultPrecision}, "hsv(10 20% 30%)"},
		{MustNew(HSI, 10, 20, 30), FormatOptions{Precision: DefaultPrecision}, "hsi(10 20% 30%)"},
		{MustNew(CMYK, 0, 100, 100, 0), FormatOptions{Precision: DefaultPrecision}, "device-cmyk(0% 100% 100% 0%)"},
		{MustNew(Lab, 53.2408, 80.0912, 67.2032), FormatOptions{Precision: DefaultPrecision}, "lab(53.24% 80.09 67.2)"},
		{MustNew(LCH, 50, 30.123, 270), FormatOptions{Precision: 1}, "lch(50% 30.1 270)"},
		{MustNew(OKLab, 0.62796, 0.22486, 0.12587), FormatOptions{Precision: DefaultPrecision}, "oklab(62.8% 0.2249 0.1259)"},
		{MustNew(OKLCH, 0.5, 0.1, 45), FormatOptions{Precision: DefaultPrecision}, "oklch(50% 0.1 45)"},
		{MustNew(DisplayP3, 1, 0.5, 0), FormatOptions{Precision: DefaultPrecision}, "color(display-p3 1 0.5 0)"},
		{MustNew(XYZD50, 0.1, 0.2, 0.3), FormatOptions{Precision: DefaultPrecision}, "color(xyz-d50 0.1 0.2 0.3)"},
		{MustNew(Lab, 50, -0.0001, 0), FormatOptions{Precision: DefaultPrecision}, "lab(50% 0 0)"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatWith(tt.c, tt.opts))
		})
	}
}

func TestFormatDefaultAndString(t *testing.T) {
	c := FromRGB8(18, 52, 86)
	assert.Equal(t, "rgb(18 52 86)", Format(c))
	assert.Equal(t, "rgb(18 52 86)", c.String())
	assert.Equal(t, "#123456", Hex(c))
}

func TestParseStyle(t *testing.T) {
	for in, want := range map[string]Style{"": StyleModern, "modern": StyleModern, "LEGACY": StyleLegacy, "hex": StyleHex} {
		got, err := ParseStyle(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseStyle("fancy")
	assert.Error(t, err)
}

// TestFormatParseRoundTrip formats a color converted to every space and
// parses it back, strictly, to the same 8-bit value.
func TestFormatParseRoundTrip(t *testing.T) {
	samples := []Color{
		FromRGB8(0, 0, 0),
		FromRGB8(255, 255, 255),
		FromRGB8(255, 0, 0),
		FromRGB8(18, 200, 93),
		FromRGB8(75, 0, 130),
		FromRGB8(250, 128, 114).WithAlpha(0.25),
	}
	for _, s := range Spaces {
		for _, src := range samples {
			mid, err := Convert(src, s, DefaultPrecision)
			require.NoError(t, err)
			text := Format(mid)

			back, err := ParseStrict(text)
			require.NoError(t, err, text)
			assert.Equal(t, s, back.Space(), text)
			assert.LessOrEqual(t, channelDiff(src.RGB8(), back.RGB8()), 1, "%s -> %s", Format(src), text)
			assert.InDelta(t, src.Opacity(), back.Opacity(), 1e-9, text)
		}
	}
}

func TestHexRoundTrip(t *testing.T) {
	for _, v := range []RGBA8{{0, 0, 0, 255}, {1, 2, 3, 255}, {255, 254, 253, 0}, {16, 32, 64, 128}} {
		c, err := Parse(Hex(v.Color()))
		require.NoError(t, err)
		assert.Equal(t, v, c.RGB8())
	}
}
