package wcag

import (
	"fmt"
	"math"

	"github.com/ironsheep/color-tools-mcp/internal/color"
)

// Direction selects which way the accessible-color search moves lightness.
type Direction uint8

const (
	// Lighter walks HSL lightness up toward 100.
	Lighter Direction = iota
	// Darker walks HSL lightness down toward 0.
	Darker
	// Auto tries the side with more contrast headroom first and falls back
	// to the other.
	Auto
)

func (d Direction) String() string {
	switch d {
	case Lighter:
		return "lighter"
	case Darker:
		return "darker"
	case Auto:
		return "auto"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// ParseDirection resolves "lighter", "darker" or "auto". The empty string
// selects Auto.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "lighter", "light":
		return Lighter, nil
	case "darker", "dark":
		return Darker, nil
	case "", "auto":
		return Auto, nil
	}
	return 0, fmt.Errorf("unknown direction %q (want lighter, darker or auto)", s)
}

// MaxSearchSteps bounds the number of lightness steps per direction.
const MaxSearchSteps = 50

// FindAccessibleColor returns a color with the hue and saturation of bg
// whose contrast against bg is at least target.
//
// The search starts at the lightness estimated from the luminance the
// target needs (lightness ≈ sqrt(luminance) * 100) and moves monotonically
// to the end of the range in dir, testing at most MaxSearchSteps+1
// candidates. The candidate is checked after rounding to 8-bit sRGB, so the
// returned color meets the ratio as displayed. When the end of the range
// still fails the search returns ErrNoAccessibleColorFound; it never hands
// back a non-compliant color.
func FindAccessibleColor(bg color.Color, target float64, dir Direction) (color.Color, error) {
	return AdjustForeground(bg, bg, target, dir)
}

// AdjustForeground is FindAccessibleColor starting from the hue and
// saturation of fg instead of bg. A fg that already meets target is
// returned unchanged.
func AdjustForeground(fg, bg color.Color, target float64, dir Direction) (color.Color, error) {
	if math.IsNaN(target) || target < 1 || target > 21 {
		return color.Color{}, fmt.Errorf("%w: target ratio %v outside [1, 21]", color.ErrNoAccessibleColorFound, target)
	}
	bgLum := RelativeLuminance(bg)
	if fg != bg && ratio(RelativeLuminance(fg), bgLum) >= target {
		return fg, nil
	}

	hsl, err := color.Convert(fg, color.HSL, color.FullPrecision)
	if err != nil {
		return color.Color{}, err
	}
	h, s := hsl.Component(0), hsl.Component(1)

	dirs := []Direction{dir}
	if dir == Auto {
		// more headroom on the side whose extreme contrasts more with bg
		if ratio(1, bgLum) >= ratio(0, bgLum) {
			dirs = []Direction{Lighter, Darker}
		} else {
			dirs = []Direction{Darker, Lighter}
		}
	}
	for _, d := range dirs {
		if c, ok := walk(h, s, bgLum, target, d); ok {
			return c, nil
		}
	}
	return color.Color{}, fmt.Errorf("%w: ratio %.2f against luminance %.4f (%s)",
		color.ErrNoAccessibleColorFound, target, bgLum, dir)
}

// walk tests lightness values from the estimated start to the end of the
// range in d.
func walk(h, s, bgLum, target float64, d Direction) (color.Color, bool) {
	var need, end float64
	switch d {
	case Lighter:
		need, end = target*(bgLum+0.05)-0.05, 100
	case Darker:
		need, end = (bgLum+0.05)/target-0.05, 0
	default:
		return color.Color{}, false
	}
	start := math.Sqrt(math.Min(math.Max(need, 0), 1)) * 100

	for i := 0; i <= MaxSearchSteps; i++ {
		l := start + (end-start)*float64(i)/MaxSearchSteps
		r, g, b := color.HSLToRGB(h, s, l)
		c := color.RGBA8{R: to8(r), G: to8(g), B: to8(b), A: 255}.Color()
		if ratio(RelativeLuminance(c), bgLum) >= target {
			return c, true
		}
	}
	return color.Color{}, false
}

func to8(v float64) uint8 {
	return uint8(math.Round(math.Min(math.Max(v, 0), 1) * 255))
}
