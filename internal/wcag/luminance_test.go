package wcag

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ironsheep/color-tools-mcp/internal/color"
)

var (
	black = color.FromRGB8(0, 0, 0)
	white = color.FromRGB8(255, 255, 255)
)

func TestRelativeLuminanceBounds(t *testing.T) {
	assert.Equal(t, 0.0, RelativeLuminance(black))
	assert.Equal(t, 1.0, RelativeLuminance(white))

	// non-sRGB spaces are measured through their sRGB value
	whiteLab, err := white.To(color.Lab)
	assert.NoError(t, err)
	assert.InDelta(t, 1.0, RelativeLuminance(whiteLab), 1e-6)
}

func TestContrastRatio(t *testing.T) {
	tests := []struct {
		a, b color.Color
		want float64
	}{
		{black, white, 21},
		{white, black, 21},
		{color.FromRGB8(100, 100, 100), color.FromRGB8(100, 100, 100), 1},
		{color.FromRGB8(0, 0, 255), white, 8.59},
		{color.FromRGB8(0x77, 0x77, 0x77), white, 4.48},
	}
	for i, tt := range tests {
		assert.InDelta(t, tt.want, ContrastRatio(tt.a, tt.b), 0.01, "case %d", i)
	}
}

func TestContrastSymmetry(t *testing.T) {
	var samples []color.Color
	for v := 0; v < 256; v += 37 {
		samples = append(samples, color.FromRGB8(uint8(v), uint8(255-v), uint8(v/2)))
	}
	for _, a := range samples {
		for _, b := range samples {
			r := ContrastRatio(a, b)
			assert.Equal(t, r, ContrastRatio(b, a))
			assert.GreaterOrEqual(t, r, 1.0)
			assert.LessOrEqual(t, r, 21.0)
		}
	}
}
