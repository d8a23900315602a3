package wcag

import "github.com/ironsheep/color-tools-mcp/internal/color"

// ITU-R BT.709 luminance weights. They sum to exactly 1 in float64.
const (
	weightR = 0.2126
	weightG = 0.7152
	weightB = 0.0722
)

// RelativeLuminance returns the WCAG relative luminance of c in [0,1].
// Black is exactly 0 and white exactly 1.
func RelativeLuminance(c color.Color) float64 {
	r, g, b := c.SRGB()
	r, g, b = color.Linearize(r), color.Linearize(g), color.Linearize(b)
	// explicit conversions keep each product rounded on its own, so no
	// fused multiply-add can move white off 1
	return float64(weightR*r) + float64(weightG*g) + float64(weightB*b)
}

// ContrastRatio returns (L1 + 0.05) / (L2 + 0.05) with L1 the lighter of
// the two luminances. The result lies in [1, 21] and does not depend on
// argument order.
func ContrastRatio(a, b color.Color) float64 {
	return ratio(RelativeLuminance(a), RelativeLuminance(b))
}

func ratio(la, lb float64) float64 {
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// Assess measures a color pair and classifies the result.
func Assess(a, b color.Color) Report {
	return AssessRatio(ContrastRatio(a, b))
}
